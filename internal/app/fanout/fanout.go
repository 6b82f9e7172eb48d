// Package fanout runs one function over a slice of items with a bounded
// number of workers. Results keep input order and one item's failure never
// stops the others.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrPanic wraps a panic recovered from fn.
var ErrPanic = errors.New("fanout: item panicked")

// Result holds the outcome of one item. Err is nil on success.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines and
// returns the results in input order. Values of maxWorkers below 1 are
// treated as 1.
//
// Items not yet started when ctx is canceled get ctx.Err() and fn is never
// called for them. Items already running are left to observe ctx themselves.
// A panic in fn is recorded as that item's error, wrapping ErrPanic.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i] = call(ctx, fn, item)
			return nil
		})
	}

	// Workers report through results; Wait only joins them.
	_ = g.Wait()
	return results
}

// Errors returns the non-nil item errors joined, or nil when every item
// succeeded.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, r.Err))
		}
	}
	return errors.Join(errs...)
}

func call[T, R any](ctx context.Context, fn func(context.Context, T) (R, error), item T) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanic, p)}
		}
	}()
	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
