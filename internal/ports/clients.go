package ports

import (
	"context"

	"github.com/jsamuelsen11/character-service/internal/domain/character"
)

// CharacterClient defines the client port for a remote character API.
// Implemented by the characterapi adapter; called by the seeder and the CLI.
// Methods map 1:1 to the REST endpoints using domain types.
type CharacterClient interface {
	// ListCharacters returns all characters in the order the API returns them.
	ListCharacters(ctx context.Context) ([]character.Character, error)

	// GetCharacter returns a single character by ID.
	// Returns domain.ErrNotFound if the character does not exist.
	GetCharacter(ctx context.Context, id character.ID) (*character.Character, error)

	// CreateCharacter creates a character and returns the created entity.
	CreateCharacter(ctx context.Context, cmd character.CreateCommand) (*character.Character, error)

	// UpdateCharacter renames a character and returns the updated entity.
	// Returns domain.ErrNotFound if the character does not exist.
	UpdateCharacter(ctx context.Context, cmd character.UpdateCommand) (*character.Character, error)

	// DeleteCharacter deletes a character by ID. Deleting a missing
	// character is not an error.
	DeleteCharacter(ctx context.Context, id character.ID) error
}
