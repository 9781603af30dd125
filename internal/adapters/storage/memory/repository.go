// Package memory provides an in-process CharacterRepository backed by a map.
// Data does not survive a restart; it serves the local profile and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

// Compile-time check that Repository implements ports.CharacterRepository.
var _ ports.CharacterRepository = (*Repository)(nil)

// Repository is a concurrency-safe in-memory character store.
type Repository struct {
	mu    sync.RWMutex
	items map[character.ID]character.Character
}

// New creates an empty Repository.
func New() *Repository {
	return &Repository{items: make(map[character.ID]character.Character)}
}

// Add stores c. Adding an ID that already exists fails with domain.ErrConflict.
func (r *Repository) Add(ctx context.Context, c character.Character) (character.ID, error) {
	if err := ctx.Err(); err != nil {
		return character.ID{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[c.ID]; exists {
		return character.ID{}, fmt.Errorf("character %s: %w", c.ID, domain.ErrConflict)
	}
	r.items[c.ID] = c
	return c.ID, nil
}

// Get returns the character with the given ID, or nil.
func (r *Repository) Get(ctx context.Context, id character.ID) (*character.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Update replaces the stored character with the same ID.
func (r *Repository) Update(ctx context.Context, c character.Character) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; !ok {
		return false, nil
	}
	r.items[c.ID] = c
	return true, nil
}

// Delete removes the character with the given ID.
func (r *Repository) Delete(ctx context.Context, id character.ID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// List returns a snapshot of all stored characters.
func (r *Repository) List(ctx context.Context) ([]character.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]character.Character, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	return out, nil
}
