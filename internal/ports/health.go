package ports

import "context"

// HealthChecker is a dependency the readiness probe asks about: the
// character store behind its breaker, or the character API from the CLI.
type HealthChecker interface {
	// Name keys the checker in readiness output, e.g. "storage-sqlite".
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It must
	// give up once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for GET /health/ready.
type HealthRegistry interface {
	// Register adds checker, replacing any earlier checker with the same name.
	Register(checker HealthChecker)

	// CheckAll runs all checkers concurrently and maps each name to its
	// result; a nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
