package ports

import "context"

// HealthChecker reports whether a backend a data proxy depends on can serve
// requests. The SQL proxies register their connection pool ("database") and
// the remote proxy registers its client ("business-api", answered from the
// circuit breaker without a network call). The memory proxy has nothing to
// check.
type HealthChecker interface {
	// Name keys the checker's result in the readiness response.
	Name() string

	// HealthCheck returns nil when the backend is usable. It must return
	// once ctx is done, since the registry gives each check a deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry holds the checkers behind GET /health/ready.
type HealthRegistry interface {
	// Register adds checker, replacing any checker with the same name.
	Register(checker HealthChecker)

	// CheckAll runs every checker concurrently and returns each error keyed
	// by name; a nil value means healthy. A panicking checker is reported
	// as failed.
	CheckAll(ctx context.Context) map[string]error
}
