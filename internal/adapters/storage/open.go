package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/character-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/character-service/internal/adapters/storage/mongodb"
	"github.com/jsamuelsen11/character-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/character-service/internal/platform/config"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

// Backend is an opened character store.
type Backend struct {
	Driver     string
	Repository ports.CharacterRepository
	close      func(context.Context) error
}

// Close releases the backend's connections. Safe to call on a zero Backend.
func (b *Backend) Close(ctx context.Context) error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close(ctx)
}

// Open connects to the backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Driver {
	case config.StorageMemory:
		logger.Info("using in-memory character store; data is lost on restart")
		return &Backend{Driver: cfg.Driver, Repository: memory.New()}, nil

	case config.StorageSQLite:
		repo, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("opened sqlite character store", slog.String("path", cfg.SQLite.Path))
		return &Backend{
			Driver:     cfg.Driver,
			Repository: repo,
			close:      func(context.Context) error { return repo.Close() },
		}, nil

	case config.StorageMongoDB:
		repo, err := mongodb.Open(ctx, mongodb.Options{
			URI:            cfg.MongoDB.URI,
			Database:       cfg.MongoDB.Database,
			Collection:     cfg.MongoDB.Collection,
			ConnectTimeout: cfg.MongoDB.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("connected to mongodb character store",
			slog.String("database", cfg.MongoDB.Database),
			slog.String("collection", cfg.MongoDB.Collection),
		)
		return &Backend{Driver: cfg.Driver, Repository: repo, close: repo.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
