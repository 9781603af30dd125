package ports

import (
	"context"

	"github.com/jsamuelsen11/character-service/internal/domain/character"
)

// CharacterService defines the service port for character operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type CharacterService interface {
	// Create checks business rules, assigns a new ID and stores the character.
	// Returns a *domain.ValidationError if the name is blank or the class unknown.
	Create(ctx context.Context, cmd character.CreateCommand) (character.Character, error)

	// Get returns the character with the given ID, or nil when none exists.
	Get(ctx context.Context, id character.ID) (*character.Character, error)

	// Update replaces the character's name and returns the stored result,
	// or nil when the character does not exist.
	// Returns a *domain.ValidationError if the new name is blank.
	Update(ctx context.Context, cmd character.UpdateCommand) (*character.Character, error)

	// Delete removes the character and reports whether it existed.
	Delete(ctx context.Context, id character.ID) (bool, error)

	// List returns all characters ordered by name (ordinal comparison).
	List(ctx context.Context) ([]character.Character, error)
}

// SeedService bulk-creates characters through a CharacterClient.
// Implemented by the application layer; called by the CLI.
type SeedService interface {
	// Seed creates one character per input concurrently. The returned results
	// are in input order; per-item failures are recorded, not returned.
	Seed(ctx context.Context, inputs []character.CreateCommand) ([]SeedResult, error)
}

// SeedResult records the outcome of creating a single character during seeding.
// Exactly one of Character or Err is set.
type SeedResult struct {
	Input     character.CreateCommand
	Character *character.Character
	Err       error
}
