// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
// Services log expected failures (validation, not found, concurrency) at warn
// and everything else at error, always with the operation, the entity type,
// the key and the error chain:
//
//	logging.FromContext(ctx).WarnContext(ctx, "update rejected",
//	    slog.String("operation", "Update"),
//	    slog.String("entity", "Order"),
//	    slog.Any("id", id),
//	    slog.Any("error", err),
//	)
//
// Loggers stored by the HTTP middleware already carry request_id and
// correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/go-business-service/internal/platform/config"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New builds a logger for cfg writing to w. Unknown levels fall back to info
// and unknown formats to JSON. Debug loggers include the source location.
// attrs are attached to every record, typically the service name.
func New(cfg config.LogConfig, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	level := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case FormatText:
		h = slog.NewTextHandler(w, opts)
	default:
		h = slog.NewJSONHandler(w, opts)
	}
	if len(attrs) > 0 {
		h = h.WithAttrs(attrs)
	}
	return slog.New(h)
}

// ParseLevel accepts the slog level names in any case, including offsets
// such as "warn+2". Anything else is info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With derives a child of the context logger carrying attrs and stores it in
// the returned context.
func With(ctx context.Context, attrs ...slog.Attr) (context.Context, *slog.Logger) {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	child := FromContext(ctx).With(args...)
	return WithLogger(ctx, child), child
}
