package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-business-service/internal/adapters/http/dto"
)

// Recovery returns middleware that turns a handler panic into a logged
// stack trace and a 500 problem response. The panic value never reaches the
// client. When the handler already wrote its status, only the log entry is
// emitted. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", r.Header.Get(headerRequestID)),
				)

				if rw.headerWritten {
					return
				}
				dto.WriteProblem(rw, r, dto.NewProblem(r, http.StatusInternalServerError, "internal server error"))
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
