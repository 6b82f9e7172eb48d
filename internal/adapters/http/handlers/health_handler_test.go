package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-business-service/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.HealthResponse](t, rec)
	require.Equal(t, "ok", resp.Status)
	require.Empty(t, resp.Checks)
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{},
		},
		{
			name:       "database healthy",
			results:    map[string]error{"database": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{"database": "ok"},
		},
		{
			name: "remote proxy circuit open",
			results: map[string]error{
				"database":     nil,
				"business-api": errors.New("circuit breaker open"),
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]string{"database": "ok", "business-api": "circuit breaker open"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

			requireStatus(t, rec, tt.wantCode)
			resp := decodeJSON[dto.HealthResponse](t, rec)
			require.Equal(t, tt.wantStatus, resp.Status)
			if len(tt.wantChecks) == 0 {
				require.Empty(t, resp.Checks)
				return
			}
			require.Equal(t, tt.wantChecks, resp.Checks)
		})
	}
}
