// Package command runs a single business operation through its pipeline:
//
//	validate (local, no I/O) → business rules → execute
//
// Validation and business-rule failures short-circuit before execute and are
// returned together as one *domain.ValidationError. The same pipeline serves
// blocking callers (Execute) and non-blocking callers (ExecuteAsync).
package command

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-business-service/internal/domain"
)

// Result is the outcome of an asynchronous command.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[T any] struct {
	Value T
	Err   error
}

// Command is one business operation. Build it with New and the With* options.
type Command[T any] struct {
	name          string
	validate      func() []domain.ValidationResult
	businessRules func(ctx context.Context) ([]domain.ValidationResult, error)
	execute       func(ctx context.Context) (T, error)
	logger        *slog.Logger
}

// Option configures a Command.
type Option[T any] func(*Command[T])

// WithValidation sets the local validation stage. It must not perform I/O.
func WithValidation[T any](fn func() []domain.ValidationResult) Option[T] {
	return func(c *Command[T]) {
		c.validate = fn
	}
}

// WithBusinessRules sets the business-rule stage. It runs only when
// validation passed and may read through the data proxy. A returned error is
// a proxy failure and is propagated unchanged.
func WithBusinessRules[T any](fn func(ctx context.Context) ([]domain.ValidationResult, error)) Option[T] {
	return func(c *Command[T]) {
		c.businessRules = fn
	}
}

// WithLogger sets the logger used for short-circuit diagnostics.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *Command[T]) {
		c.logger = logger
	}
}

// New creates a command named name (used in logs) whose final stage is
// execute.
func New[T any](name string, execute func(ctx context.Context) (T, error), opts ...Option[T]) *Command[T] {
	c := &Command[T]{
		name:    name,
		execute: execute,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute runs the pipeline and blocks until execute returns.
func (c *Command[T]) Execute(ctx context.Context) (T, error) {
	var zero T

	if c.validate != nil {
		if results := c.validate(); len(results) > 0 {
			c.logger.DebugContext(ctx, "command rejected by validation",
				slog.String("command", c.name),
				slog.Int("failures", len(results)),
			)
			return zero, &domain.ValidationError{Results: results}
		}
	}

	if c.businessRules != nil {
		results, err := c.businessRules(ctx)
		if err != nil {
			return zero, err
		}
		if len(results) > 0 {
			c.logger.DebugContext(ctx, "command rejected by business rules",
				slog.String("command", c.name),
				slog.Int("failures", len(results)),
			)
			return zero, &domain.ValidationError{Results: results}
		}
	}

	return c.execute(ctx)
}

// ExecuteAsync runs Execute on a new goroutine. The returned channel receives
// exactly one Result and is then closed. Cancellation is carried by ctx into
// the data proxy; the pipeline itself holds no partial state to undo.
func (c *Command[T]) ExecuteAsync(ctx context.Context) <-chan Result[T] {
	return Go(ctx, c.Execute)
}

// Go runs fn on a new goroutine and delivers its outcome on the returned
// buffered channel, which is closed after the single send.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)
	go func() {
		defer close(out)
		v, err := fn(ctx)
		out <- Result[T]{Value: v, Err: err}
	}()
	return out
}

// Await blocks until r delivers, or ctx is done first.
func Await[T any](ctx context.Context, r <-chan Result[T]) (T, error) {
	select {
	case res := <-r:
		return res.Value, res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
