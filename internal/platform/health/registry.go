// Package health provides a thread-safe registry of health checkers used by
// the readiness endpoint. Checkers typically wrap the storage backend and any
// downstream API clients.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/character-service/internal/ports"
)

// DefaultCheckTimeout bounds a single checker when no timeout is configured.
const DefaultCheckTimeout = 2 * time.Second

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the deadline applied to each individual check.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Checkers are keyed by name; registering a name twice replaces the first.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	checkers map[string]ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		checkers: make(map[string]ports.HealthChecker),
		timeout:  DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds or replaces a health checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.checkers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// CheckAll runs every registered check concurrently, each under its own
// timeout, and returns results keyed by checker name. Nil values indicate
// healthy components.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, 0, len(r.order))
	for _, name := range r.order {
		checkers = append(checkers, r.checkers[name])
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)
	for _, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			err := c.HealthCheck(checkCtx)

			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
		}()
	}
	wg.Wait()

	return results
}
