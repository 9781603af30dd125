// Package storage wraps character repository backends with a circuit
// breaker, OpenTelemetry spans, and storage operation metrics, and selects
// the backend named in configuration.
//
// Construction:
//
//	backend, err := storage.Open(ctx, cfg.Storage, logger)
//	defer backend.Close(ctx)
//	repo := storage.NewResilient(backend.Repository, backend.Driver, &cfg.Storage.CircuitBreaker, metrics, logger)
//
// Backend failures surface as domain.ErrUnavailable so the HTTP layer can
// answer 503. Conflicts and caller cancellations pass through unchanged and
// never count against the breaker.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/platform/config"
	"github.com/jsamuelsen11/character-service/internal/platform/health"
	"github.com/jsamuelsen11/character-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

// Compile-time checks.
var (
	_ ports.CharacterRepository = (*Resilient)(nil)
	_ ports.HealthChecker       = (*Resilient)(nil)
)

// Resilient decorates a ports.CharacterRepository.
type Resilient struct {
	next    ports.CharacterRepository
	driver  string
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewResilient wraps next. The driver names the backend in spans, metrics,
// and the health check. If metrics is nil, metric recording is skipped.
func NewResilient(
	next ports.CharacterRepository,
	driver string,
	cfg *config.CircuitBreakerConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Resilient {
	if logger == nil {
		logger = slog.Default()
	}

	cb := health.NewBreaker("storage-"+driver, *cfg, isSuccessful, logger)

	return &Resilient{
		next:    next,
		driver:  driver,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Add implements ports.CharacterRepository.
func (r *Resilient) Add(ctx context.Context, c character.Character) (character.ID, error) {
	var id character.ID
	err := r.execute(ctx, "add", func(ctx context.Context) error {
		var err error
		id, err = r.next.Add(ctx, c)
		return err
	})
	return id, err
}

// Get implements ports.CharacterRepository.
func (r *Resilient) Get(ctx context.Context, id character.ID) (*character.Character, error) {
	var found *character.Character
	err := r.execute(ctx, "get", func(ctx context.Context) error {
		var err error
		found, err = r.next.Get(ctx, id)
		return err
	})
	return found, err
}

// Update implements ports.CharacterRepository.
func (r *Resilient) Update(ctx context.Context, c character.Character) (bool, error) {
	var ok bool
	err := r.execute(ctx, "update", func(ctx context.Context) error {
		var err error
		ok, err = r.next.Update(ctx, c)
		return err
	})
	return ok, err
}

// Delete implements ports.CharacterRepository.
func (r *Resilient) Delete(ctx context.Context, id character.ID) (bool, error) {
	var ok bool
	err := r.execute(ctx, "delete", func(ctx context.Context) error {
		var err error
		ok, err = r.next.Delete(ctx, id)
		return err
	})
	return ok, err
}

// List implements ports.CharacterRepository.
func (r *Resilient) List(ctx context.Context) ([]character.Character, error) {
	var all []character.Character
	err := r.execute(ctx, "list", func(ctx context.Context) error {
		var err error
		all, err = r.next.List(ctx)
		return err
	})
	return all, err
}

// Name returns the health check identifier, e.g. "storage-sqlite".
func (r *Resilient) Name() string {
	return "storage-" + r.driver
}

// HealthCheck reports backend availability from the breaker state without
// touching the backend.
func (r *Resilient) HealthCheck(_ context.Context) error {
	return health.FromBreaker(r.Name(), r.breaker.State())
}

func (r *Resilient) execute(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()

	spanCtx, span := r.startSpan(ctx, op)
	defer span.End()

	_, err := r.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn(spanCtx)
	})

	r.recordMetrics(ctx, op, start, err)

	if err != nil {
		err = r.classify(ctx, op, err)
		if !isSuccessful(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	return err
}

// classify maps backend failures to domain.ErrUnavailable. Domain errors and
// context errors are returned unchanged.
func (r *Resilient) classify(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %s: %w", domain.ErrUnavailable, r.Name(), err)
	default:
		r.logger.ErrorContext(ctx, "storage operation failed",
			slog.String("driver", r.driver),
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %s %s: %w", domain.ErrUnavailable, r.Name(), op, err)
	}
}

func (r *Resilient) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("storage")
	return tracer.Start(ctx, "storage "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", r.driver),
			attribute.String("db.operation", op),
		),
	)
}

// recordMetrics is safe to call with nil metrics.
func (r *Resilient) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case !isSuccessful(err):
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(r.driver),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	r.metrics.StorageOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	r.metrics.StorageOperationTotal.Add(ctx, 1, attrs)
}

// isSuccessful reports whether err leaves the breaker's failure count alone.
// A conflict or a caller giving up says nothing about backend health.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, context.Canceled)
}
