package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/middleware"
)

// idChain runs RequestID then CorrelationID and captures both IDs as the
// handler saw them.
func idChain(reqHeaders map[string]string) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	handler := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		reqID = middleware.RequestIDFromContext(r.Context())
		corrID = middleware.CorrelationIDFromContext(r.Context())
	})))

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", http.NoBody)
	for k, v := range reqHeaders {
		req.Header.Set(k, v)
	}
	handler.ServeHTTP(rec, req)
	return reqID, corrID, rec
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := idChain(nil)

	_, err := uuid.Parse(reqID)
	require.NoError(t, err)
	require.Equal(t, reqID, rec.Header().Get("X-Request-ID"))
	require.Equal(t, reqID, corrID, "correlation ID falls back to the request ID")
	require.Equal(t, reqID, rec.Header().Get("X-Correlation-ID"))
}

func TestRequestID_ReusesIncomingIDs(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := idChain(map[string]string{
		"X-Request-ID":     "req-7f3a",
		"X-Correlation-ID": "checkout:2026-10-15.1",
	})

	require.Equal(t, "req-7f3a", reqID)
	require.Equal(t, "checkout:2026-10-15.1", corrID)
	require.Equal(t, "req-7f3a", rec.Header().Get("X-Request-ID"))
	require.Equal(t, "checkout:2026-10-15.1", rec.Header().Get("X-Correlation-ID"))
}

func TestRequestID_RejectsMalformedIncomingIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
	}{
		{name: "whitespace", id: "req 1"},
		{name: "log injection", id: "abc\nlevel=ERROR"},
		{name: "quotes", id: `"abc"`},
		{name: "too long", id: strings.Repeat("a", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reqID, corrID, _ := idChain(map[string]string{
				"X-Request-ID":     tt.id,
				"X-Correlation-ID": tt.id,
			})

			require.NotEqual(t, tt.id, reqID)
			_, err := uuid.Parse(reqID)
			require.NoError(t, err)
			require.Equal(t, reqID, corrID)
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 50 {
		id, _, _ := idChain(nil)
		require.False(t, seen[id], "duplicate request ID %q", id)
		seen[id] = true
	}
}

func TestIDsFromEmptyContext(t *testing.T) {
	t.Parallel()

	require.Empty(t, middleware.RequestIDFromContext(context.Background()))
	require.Empty(t, middleware.CorrelationIDFromContext(context.Background()))
}

func TestWithIDs_StoreInContext(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithRequestID(context.Background(), "req-1")
	ctx = middleware.WithCorrelationID(ctx, "corr-1")

	require.Equal(t, "req-1", middleware.RequestIDFromContext(ctx))
	require.Equal(t, "corr-1", middleware.CorrelationIDFromContext(ctx))
}
