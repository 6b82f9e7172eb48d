package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *responseWriter)
		wantStatus int
		wantBytes  int64
		wantHeader bool
	}{
		{
			name:       "untouched",
			write:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			write:      func(rw *responseWriter) { rw.WriteHeader(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
			wantHeader: true,
		},
		{
			name: "first status wins",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusCreated)
				rw.WriteHeader(http.StatusConflict)
			},
			wantStatus: http.StatusCreated,
			wantHeader: true,
		},
		{
			name: "implicit ok on write",
			write: func(rw *responseWriter) {
				_, _ = rw.Write([]byte(`{"orders":[]`))
				_, _ = rw.Write([]byte(`,"count":0}`))
			},
			wantStatus: http.StatusOK,
			wantBytes:  int64(len(`{"orders":[],"count":0}`)),
			wantHeader: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			require.Equal(t, tt.wantStatus, rw.statusCode)
			require.Equal(t, tt.wantBytes, rw.written)
			require.Equal(t, tt.wantHeader, rw.headerWritten)
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	require.Same(t, rec, rw.Unwrap())
	require.NoError(t, http.NewResponseController(rw).Flush())
}
