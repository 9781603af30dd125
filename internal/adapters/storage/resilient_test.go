package storage_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/character-service/internal/adapters/storage"
	"github.com/jsamuelsen11/character-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/character-service/internal/adapters/storage/storagetest"
	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/platform/config"
	"github.com/jsamuelsen11/character-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/character-service/internal/ports"
	"github.com/jsamuelsen11/character-service/mocks"
)

var errBackendDown = errors.New("connection reset by peer")

func breakerConfig() *config.CircuitBreakerConfig {
	return &config.CircuitBreakerConfig{
		MaxFailures:   2,
		Timeout:       100 * time.Millisecond,
		HalfOpenLimit: 1,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestCharacter(t *testing.T, name string) character.Character {
	t.Helper()
	c, err := character.New(character.NewID(), name, character.ClassNone)
	if err != nil {
		t.Fatalf("character.New(%q) error = %v", name, err)
	}
	return c
}

func TestResilient_RepositoryContract(t *testing.T) {
	t.Parallel()

	storagetest.Run(t, func(t *testing.T) ports.CharacterRepository {
		return storage.NewResilient(memory.New(), config.StorageMemory, breakerConfig(), nil, testLogger())
	})
}

func TestResilient_BackendErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	id := character.NewID()
	repo := mocks.NewMockCharacterRepository(t)
	repo.EXPECT().Get(mock.Anything, id).Return(nil, errBackendDown)

	r := storage.NewResilient(repo, config.StorageSQLite, breakerConfig(), nil, testLogger())

	_, err := r.Get(context.Background(), id)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Get() error = %v, want domain.ErrUnavailable", err)
	}
	if !errors.Is(err, errBackendDown) {
		t.Errorf("Get() error = %v, want it to wrap the backend error", err)
	}
}

type traceKey struct{}

// traceHandler stamps each record with the trace value carried by its context.
type traceHandler struct{ slog.Handler }

func (h traceHandler) Handle(ctx context.Context, rec slog.Record) error {
	if v, ok := ctx.Value(traceKey{}).(string); ok {
		rec.AddAttrs(slog.String("trace", v))
	}
	return h.Handler.Handle(ctx, rec)
}

func TestResilient_FailureLogCarriesRequestContext(t *testing.T) {
	t.Parallel()

	id := character.NewID()
	repo := mocks.NewMockCharacterRepository(t)
	repo.EXPECT().Get(mock.Anything, id).Return(nil, errBackendDown)

	var buf bytes.Buffer
	logger := slog.New(traceHandler{slog.NewTextHandler(&buf, nil)})
	r := storage.NewResilient(repo, config.StorageSQLite, breakerConfig(), nil, logger)

	ctx := context.WithValue(context.Background(), traceKey{}, "req-42")
	if _, err := r.Get(ctx, id); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("Get() error = %v, want domain.ErrUnavailable", err)
	}

	out := buf.String()
	if !strings.Contains(out, "storage operation failed") || !strings.Contains(out, "trace=req-42") {
		t.Errorf("log = %q, want the failure logged with the caller's context", out)
	}
}

func TestResilient_ConflictPassesThrough(t *testing.T) {
	t.Parallel()

	c := newTestCharacter(t, "Korva")
	repo := mocks.NewMockCharacterRepository(t)
	repo.EXPECT().Add(mock.Anything, c).Return(character.ID{}, domain.ErrConflict)

	r := storage.NewResilient(repo, config.StorageSQLite, breakerConfig(), nil, testLogger())

	for range 3 {
		_, err := r.Add(context.Background(), c)
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("Add() error = %v, want domain.ErrConflict", err)
		}
		if errors.Is(err, domain.ErrUnavailable) {
			t.Fatalf("Add() error = %v, conflict must not read as unavailable", err)
		}
	}

	if err := r.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil (conflicts do not trip the breaker)", err)
	}
}

func TestResilient_CanceledContextDoesNotTrip(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockCharacterRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, context.Canceled)

	r := storage.NewResilient(repo, config.StorageMongoDB, breakerConfig(), nil, testLogger())

	for range 3 {
		if _, err := r.List(context.Background()); !errors.Is(err, context.Canceled) {
			t.Fatalf("List() error = %v, want context.Canceled", err)
		}
	}

	if err := r.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestResilient_BreakerOpens(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockCharacterRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errBackendDown).Times(2)

	r := storage.NewResilient(repo, config.StorageMongoDB, breakerConfig(), nil, testLogger())

	for range 2 {
		_, _ = r.List(context.Background())
	}

	// The mock allows exactly two calls; a third backend hit fails the test.
	_, err := r.List(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("List() error = %v, want gobreaker.ErrOpenState", err)
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("List() error = %v, want domain.ErrUnavailable", err)
	}

	hcErr := r.HealthCheck(context.Background())
	if hcErr == nil || !strings.Contains(hcErr.Error(), "failing") {
		t.Errorf("HealthCheck() = %v, want error containing %q", hcErr, "failing")
	}
}

func TestResilient_BreakerRecovers(t *testing.T) {
	t.Parallel()

	id := character.NewID()
	repo := mocks.NewMockCharacterRepository(t)
	repo.EXPECT().Delete(mock.Anything, id).Return(false, errBackendDown).Times(2)
	repo.EXPECT().Delete(mock.Anything, id).Return(true, nil).Once()

	r := storage.NewResilient(repo, config.StorageSQLite, breakerConfig(), nil, testLogger())

	for range 2 {
		_, _ = r.Delete(context.Background(), id)
	}

	time.Sleep(150 * time.Millisecond)

	if err := r.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Fatalf("HealthCheck() = %v, want half-open degraded error", err)
	}

	found, err := r.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("Delete() error = %v, want nil after recovery", err)
	}
	if !found {
		t.Error("Delete() found = false, want true")
	}
	if err := r.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil after recovery", err)
	}
}

func TestResilient_Name(t *testing.T) {
	t.Parallel()

	r := storage.NewResilient(memory.New(), config.StorageSQLite, breakerConfig(), nil, testLogger())
	if got := r.Name(); got != "storage-sqlite" {
		t.Errorf("Name() = %q, want %q", got, "storage-sqlite")
	}
}

func TestResilient_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	r := storage.NewResilient(memory.New(), config.StorageMemory, breakerConfig(), metrics, testLogger())
	if _, err := r.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "storage.operation.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("storage.operation.total data = %T, want metricdata.Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	if total != 1 {
		t.Errorf("storage.operation.total = %d, want 1", total)
	}
}
