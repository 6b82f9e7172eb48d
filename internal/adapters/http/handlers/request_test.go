package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/dto"
)

type probeRequest struct {
	Total int64 `json:"total"`
}

func (p *probeRequest) Validate() error { return nil }

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestDecodeJSONBody_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "", want: "request body is required"},
		{name: "malformed", body: `{"total":`, want: "invalid JSON"},
		{name: "wrong type", body: `{"total":"ten"}`, want: "total has the wrong type"},
		{name: "two values", body: `{"total":1} {"total":2}`, want: "request body must hold a single JSON value"},
		{name: "too large", body: `{"total":1,"pad":"` + strings.Repeat("x", maxBodyBytes) + `"}`, want: "request body exceeds 1048576 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(tt.body))

			var dst probeRequest
			require.False(t, decodeAndValidate(rec, req, &dst))
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.Equal(t, []dto.ErrorDetail{{Location: "body", Message: tt.want}}, resp.Errors)
		})
	}
}

func TestDecodeJSONBody_Accepts(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader("{\"total\":42}\n"))

	var dst probeRequest
	require.True(t, decodeAndValidate(rec, req, &dst))
	require.Equal(t, int64(42), dst.Total)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	for raw, ok := range map[string]bool{"7": true, "0": true, "-3": true, "abc": false, "": false, "9223372036854775808": false} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+raw, nil)
		req = withParam(req, "id", raw)

		_, err := parseID(req, "id")
		require.Equal(t, ok, err == nil, "parseID(%q) = %v", raw, err)
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusCreated, map[string]int{"id": 7})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"id":7}`, rec.Body.String())
}
