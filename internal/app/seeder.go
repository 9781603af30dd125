package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/character-service/internal/app/fanout"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

// DefaultSeedWorkers bounds the number of concurrent create calls when the
// caller does not choose a worker count.
const DefaultSeedWorkers = 4

// Compile-time check that Seeder implements ports.SeedService.
var _ ports.SeedService = (*Seeder)(nil)

// Seeder creates characters in bulk through a CharacterClient. Each create
// succeeds or fails independently.
type Seeder struct {
	client  ports.CharacterClient
	workers int
	logger  *slog.Logger
}

// NewSeeder creates a Seeder. Worker counts below one fall back to DefaultSeedWorkers.
func NewSeeder(client ports.CharacterClient, workers int, logger *slog.Logger) *Seeder {
	if workers < 1 {
		workers = DefaultSeedWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Seeder{client: client, workers: workers, logger: logger}
}

// Seed creates every input concurrently and returns one result per input, in order.
func (s *Seeder) Seed(ctx context.Context, inputs []character.CreateCommand) ([]ports.SeedResult, error) {
	s.logger.InfoContext(ctx, "seeding characters",
		slog.Int("count", len(inputs)),
		slog.Int("workers", s.workers),
	)

	outcomes := fanout.Run(ctx, s.workers, inputs,
		func(ctx context.Context, cmd character.CreateCommand) (*character.Character, error) {
			return s.client.CreateCharacter(ctx, cmd)
		},
	)

	results := make([]ports.SeedResult, len(inputs))
	failed := 0
	for i, out := range outcomes {
		results[i] = ports.SeedResult{Input: inputs[i], Character: out.Value, Err: out.Err}
		if out.Err != nil {
			failed++
			s.logger.WarnContext(ctx, "failed to seed character",
				slog.String("operation", "Seed"),
				slog.String("name", inputs[i].Name),
				slog.Any("error", out.Err),
			)
		}
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}

	s.logger.InfoContext(ctx, "seeding finished",
		slog.Int("created", len(inputs)-failed),
		slog.Int("failed", failed),
	)
	return results, nil
}
