package ports

import (
	"context"

	"github.com/jsamuelsen11/character-service/internal/domain/character"
)

// CharacterRepository is the persistence port for characters. Implemented by
// the storage adapters (memory, mongodb, sqlite); called by the application layer.
// Absence is reported through return values, never through an error.
type CharacterRepository interface {
	// Add stores a new character and returns its ID.
	// Returns domain.ErrConflict if the ID is already stored and an error
	// wrapping domain.ErrUnavailable when the store cannot be reached.
	Add(ctx context.Context, c character.Character) (character.ID, error)

	// Get returns the character with the given ID, or nil when none exists.
	Get(ctx context.Context, id character.ID) (*character.Character, error)

	// Update replaces the stored document for c.ID.
	// Returns false when no document matched.
	Update(ctx context.Context, c character.Character) (bool, error)

	// Delete removes the character with the given ID.
	// Returns false when nothing was removed; repeated deletes never fail.
	Delete(ctx context.Context, id character.ID) (bool, error)

	// List returns every stored character in unspecified order.
	List(ctx context.Context) ([]character.Character, error)
}
