package health

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/character-service/internal/platform/config"
)

// NewBreaker builds the circuit breaker shared by the storage decorator and
// the character API client. It trips after cfg.MaxFailures consecutive
// failures, stays open for cfg.Timeout and then lets cfg.HalfOpenLimit probes
// through. Errors for which isSuccessful returns true do not count; a nil
// isSuccessful counts every non-nil error. State changes are logged at warn.
func NewBreaker(
	name string,
	cfg config.CircuitBreakerConfig,
	isSuccessful func(error) bool,
	logger *slog.Logger,
) *gobreaker.CircuitBreaker[struct{}] {
	if logger == nil {
		logger = slog.Default()
	}
	maxFailures := max(cfg.MaxFailures, 1)

	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= clampUint32(maxFailures)
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// FromBreaker maps a circuit breaker state to a health result for the
// dependency called name. A closed breaker is healthy; half-open reports
// degraded and open reports failing. No call is made to the dependency.
func FromBreaker(name string, state gobreaker.State) error {
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", name, state)
	}
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
