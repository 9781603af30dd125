// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

// Compile-time check that CharacterService implements ports.CharacterService.
var _ ports.CharacterService = (*CharacterService)(nil)

// CharacterService implements ports.CharacterService on top of a
// CharacterRepository. It owns the character business rules (non-blank
// names, known classes, server-assigned IDs) and logs every repository failure.
type CharacterService struct {
	repo   ports.CharacterRepository
	logger *slog.Logger
}

// NewCharacterService creates a CharacterService. A nil logger is replaced
// with one that discards output.
func NewCharacterService(repo ports.CharacterRepository, logger *slog.Logger) *CharacterService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CharacterService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates the command, assigns a fresh ID and stores the character.
func (s *CharacterService) Create(ctx context.Context, cmd character.CreateCommand) (character.Character, error) {
	s.logger.InfoContext(ctx, "creating character", slog.String("class", cmd.Class.String()))

	c, err := character.New(character.NewID(), cmd.Name, cmd.Class)
	if err != nil {
		return character.Character{}, err
	}

	id, err := s.repo.Add(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create character",
			slog.String("operation", "Create"),
			slog.String("id", c.ID.String()),
			slog.Any("error", err),
		)
		return character.Character{}, err
	}

	c.ID = id
	return c, nil
}

// Get returns the character with the given ID, or nil when it does not exist.
func (s *CharacterService) Get(ctx context.Context, id character.ID) (*character.Character, error) {
	s.logger.DebugContext(ctx, "fetching character", slog.String("id", id.String()))

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch character",
			slog.String("operation", "Get"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return c, nil
}

// Update replaces the name of an existing character. The stored class is kept.
// Returns nil, nil when the character does not exist.
func (s *CharacterService) Update(ctx context.Context, cmd character.UpdateCommand) (*character.Character, error) {
	s.logger.InfoContext(ctx, "updating character", slog.String("id", cmd.ID.String()))

	if character.IsBlankName(cmd.Name) {
		return nil, &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}

	current, err := s.repo.Get(ctx, cmd.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load character for update",
			slog.String("operation", "Update"),
			slog.String("id", cmd.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	updated := current.WithName(cmd.Name)
	found, err := s.repo.Update(ctx, updated)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update character",
			slog.String("operation", "Update"),
			slog.String("id", cmd.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !found {
		// Deleted between the read and the replace.
		return nil, nil
	}

	return &updated, nil
}

// Delete removes the character and reports whether it existed.
func (s *CharacterService) Delete(ctx context.Context, id character.ID) (bool, error) {
	s.logger.InfoContext(ctx, "deleting character", slog.String("id", id.String()))

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete character",
			slog.String("operation", "Delete"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return false, err
	}

	return deleted, nil
}

// List returns all characters sorted by name using an ordinal comparison.
// Equal names are ordered by ID so the output is deterministic.
func (s *CharacterService) List(ctx context.Context) ([]character.Character, error) {
	s.logger.DebugContext(ctx, "listing characters")

	all, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list characters",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing characters: %w", err)
	}

	sorted := slices.Clone(all)
	slices.SortFunc(sorted, func(a, b character.Character) int {
		return cmp.Or(
			strings.Compare(a.Name, b.Name),
			strings.Compare(a.ID.String(), b.ID.String()),
		)
	})
	return sorted, nil
}
