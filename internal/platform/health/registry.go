// Package health provides a thread-safe registry of dependency health checks
// (storage, remote business APIs). The readiness endpoint uses it to decide
// whether the service can accept traffic.
package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-business-service/internal/ports"
)

// DefaultCheckTimeout bounds a single health check when no timeout is given.
const DefaultCheckTimeout = 2 * time.Second

// ErrCheckPanicked is reported for a checker that panicked.
var ErrCheckPanicked = errors.New("health check panicked")

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

type entry struct {
	name    string
	checker ports.HealthChecker
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Checkers are keyed by name; registering a second checker under an existing
// name replaces the first.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	timeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the deadline applied to each individual check.
// A non-positive value disables the per-check deadline.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].name == name {
			r.entries[i].checker = checker
			return
		}
	}
	r.entries = append(r.entries, entry{name: name, checker: checker})
}

// CheckAll runs all registered checks concurrently and returns results keyed
// by checker name. Nil values indicate healthy components. A failing check
// does not cancel the others.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.RUnlock()

	errs := make([]error, len(entries))
	var g errgroup.Group
	for i, e := range entries {
		g.Go(func() error {
			errs[i] = r.check(ctx, e.checker)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(entries))
	for i, e := range entries {
		results[e.name] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrCheckPanicked, p)
		}
	}()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return c.HealthCheck(ctx)
}
