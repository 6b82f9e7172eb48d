package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-business-service/internal/platform/logging"
)

// logRecords decodes every JSON log line written to buf, keyed by message.
func logRecords(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()
	out := make(map[string]map[string]any)
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec), "log line %s", sc.Text())
		out[rec[slog.MessageKey].(string)] = rec
	}
	require.NoError(t, sc.Err())
	return out
}

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogging_RequestLifecycle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.CorrelationID(), middleware.Logging(jsonLogger(&buf)))
	r.Put("/api/v1/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).InfoContext(r.Context(), "order updated")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":7}`))
	})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/orders/7", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log")
	req.Header.Set("X-Correlation-ID", "corr-log")
	r.ServeHTTP(httptest.NewRecorder(), req)

	recs := logRecords(t, &buf)

	started := recs["request started"]
	require.NotNil(t, started)
	require.Equal(t, "PUT", started["method"])
	require.Equal(t, "/api/v1/orders/7", started["path"])

	handler := recs["order updated"]
	require.NotNil(t, handler, "handler logger must come from the request context")
	require.Equal(t, "req-log", handler["request_id"])
	require.Equal(t, "corr-log", handler["correlation_id"])

	done := recs["request completed"]
	require.NotNil(t, done)
	require.Equal(t, "/api/v1/orders/{id}", done["route"])
	require.EqualValues(t, http.StatusOK, done["status"])
	require.EqualValues(t, len(`{"id":7}`), done["bytes"])
	require.Contains(t, done, "duration")
	require.Equal(t, "req-log", done["request_id"])
}

func TestLogging_DebugHeadersAreRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", http.NoBody)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	req.Header.Set("Accept", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)

	headers := logRecords(t, &buf)["request headers"]
	require.NotNil(t, headers)
	require.Equal(t, "[REDACTED]", headers["Authorization"])
	require.Equal(t, "application/json", headers["Accept"])
}

func TestLogging_NoHeaderDumpAboveDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := middleware.Logging(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/livez", http.NoBody))

	recs := logRecords(t, &buf)
	require.NotContains(t, recs, "request headers")
	require.Contains(t, recs, "request completed")
}

func TestLogging_CompletionLevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{status: http.StatusOK, want: "INFO"},
		{status: http.StatusNoContent, want: "INFO"},
		{status: http.StatusConflict, want: "WARN"},
		{status: http.StatusNotFound, want: "WARN"},
		{status: http.StatusBadGateway, want: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/v1/orders/7", http.NoBody))

			done := logRecords(t, &buf)["request completed"]
			require.Equal(t, tt.want, done[slog.LevelKey])
			require.EqualValues(t, tt.status, done["status"])
		})
	}
}
