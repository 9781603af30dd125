// Package main is the entry point for the character service. It wires all
// dependencies using samber/do v2, opens the configured character store,
// starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/character-service/internal/adapters/http"
	"github.com/jsamuelsen11/character-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/character-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/character-service/internal/adapters/storage"
	"github.com/jsamuelsen11/character-service/internal/app"
	"github.com/jsamuelsen11/character-service/internal/platform/config"
	"github.com/jsamuelsen11/character-service/internal/platform/health"
	"github.com/jsamuelsen11/character-service/internal/platform/logging"
	"github.com/jsamuelsen11/character-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

const (
	storageShutdownTimeout = 5 * time.Second
	otelShutdownTimeout    = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Info("starting character service",
		slog.String("profile", profile),
		slog.String("storage", cfg.Storage.Driver),
	)

	ctx := context.Background()
	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer shutdownTelemetry(providers, logger)

	backend, err := storage.Open(ctx, cfg.Storage, logging.Component(logger, "storage"))
	if err != nil {
		return fmt.Errorf("opening character store: %w", err)
	}
	defer closeBackend(backend, logger)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	do.ProvideValue(injector, backend)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*storage.Resilient](injector))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests before the store closes.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func closeBackend(backend *storage.Backend, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), storageShutdownTimeout)
	defer cancel()

	if err := backend.Close(ctx); err != nil {
		logger.Error("storage shutdown error",
			slog.String("driver", backend.Driver),
			slog.Any("error", err),
		)
	}
}

func shutdownTelemetry(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := p.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*storage.Resilient, error) {
		backend := do.MustInvoke[*storage.Backend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return storage.NewResilient(
			backend.Repository,
			backend.Driver,
			&cfg.Storage.CircuitBreaker,
			metrics,
			logging.Component(logger, "storage"),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CharacterService, error) {
		repo := do.MustInvoke[*storage.Resilient](i)
		return app.NewCharacterService(repo, logging.Component(logger, "characters")), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CharacterHandler, error) {
		svc := do.MustInvoke[ports.CharacterService](i)
		return handlers.NewCharacterHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		characterH := do.MustInvoke[*handlers.CharacterHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(characterH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
