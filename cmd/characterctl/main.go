// Package main is the entry point for characterctl, the operator CLI for the
// character service. Configuration comes from the same layered config files
// as the server (profile from APP_PROFILE, "local" when unset), skipping any
// file that is missing; only the client section is used.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/character-service/internal/adapters/cli"
	"github.com/jsamuelsen11/character-service/internal/adapters/clients/characterapi"
	"github.com/jsamuelsen11/character-service/internal/app"
	"github.com/jsamuelsen11/character-service/internal/platform/config"
	"github.com/jsamuelsen11/character-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/character-service/internal/platform/logging"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

const (
	defaultProfile = "local"
	peerService    = "character-api"
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
		profile = defaultProfile
	}

	cfg, err := config.Load(profile, config.WithOptionalFiles())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Operator output goes to stdout; only warnings and errors are logged.
	logger := logging.New("warn", "text", os.Stderr)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	registerDependencies(injector)

	root := cli.NewRootCommand(
		do.MustInvoke[cli.ClientFactory](injector),
		do.MustInvoke[cli.SeederFactory](injector),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return root.ExecuteContext(ctx)
}

func registerDependencies(injector *do.RootScope) {
	do.Provide(injector, func(i do.Injector) (cli.ClientFactory, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)

		return func(baseURL string) (ports.CharacterClient, error) {
			clientCfg := cfg.Client
			if baseURL != "" {
				clientCfg.BaseURL = baseURL
			}
			if clientCfg.BaseURL == "" {
				return nil, errors.New("no base URL: set client.base_url or pass --base-url")
			}

			hc := httpclient.New(&clientCfg, peerService, nil, logging.Component(logger, "httpclient"))
			return characterapi.New(hc, logger), nil
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (cli.SeederFactory, error) {
		logger := do.MustInvoke[*slog.Logger](i)

		return func(client ports.CharacterClient, workers int) ports.SeedService {
			return app.NewSeeder(client, workers, logging.Component(logger, "seeder"))
		}, nil
	})
}
