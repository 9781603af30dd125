// Package storagetest holds the behavioral checks every CharacterRepository
// backend must pass. Backend test files call Run with a constructor.
package storagetest

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

// Run exercises the repository contract against fresh repositories built by newRepo.
func Run(t *testing.T, newRepo func(t *testing.T) ports.CharacterRepository) {
	t.Helper()

	t.Run("add then get", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c := character.Character{ID: character.NewID(), Name: "Aria", Class: character.ClassTactician}

		id, err := repo.Add(ctx, c)
		require.NoError(t, err)
		require.Equal(t, c.ID, id)

		got, err := repo.Get(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, c, *got)
	})

	t.Run("get absent returns nil", func(t *testing.T) {
		repo := newRepo(t)

		got, err := repo.Get(context.Background(), character.NewID())
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("add duplicate id conflicts", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c := character.Character{ID: character.NewID(), Name: "Aria"}

		_, err := repo.Add(ctx, c)
		require.NoError(t, err)

		_, err = repo.Add(ctx, c.WithName("Bran"))
		require.True(t, errors.Is(err, domain.ErrConflict), "Add(duplicate) error = %v, want ErrConflict", err)
	})

	t.Run("update replaces document", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c := character.Character{ID: character.NewID(), Name: "Aria", Class: character.ClassWarrior}
		_, err := repo.Add(ctx, c)
		require.NoError(t, err)

		found, err := repo.Update(ctx, c.WithName("Bran"))
		require.NoError(t, err)
		require.True(t, found)

		got, err := repo.Get(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "Bran", got.Name)
		require.Equal(t, character.ClassWarrior, got.Class)
	})

	t.Run("update absent reports false", func(t *testing.T) {
		repo := newRepo(t)

		found, err := repo.Update(context.Background(), character.Character{ID: character.NewID(), Name: "Ghost"})
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		c := character.Character{ID: character.NewID(), Name: "Aria"}
		_, err := repo.Add(ctx, c)
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, c.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		deleted, err = repo.Delete(ctx, c.ID)
		require.NoError(t, err)
		require.False(t, deleted)

		got, err := repo.Get(ctx, c.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("list returns every character", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		empty, err := repo.List(ctx)
		require.NoError(t, err)
		require.Empty(t, empty)

		names := []string{"Cato", "Aria", "Bran"}
		for _, n := range names {
			_, err := repo.Add(ctx, character.Character{ID: character.NewID(), Name: n})
			require.NoError(t, err)
		}

		all, err := repo.List(ctx)
		require.NoError(t, err)
		got := make([]string, 0, len(all))
		for _, c := range all {
			got = append(got, c.Name)
		}
		slices.Sort(got)
		require.Equal(t, []string{"Aria", "Bran", "Cato"}, got)
	})

	t.Run("concurrent adds", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		const n = 20
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.Add(ctx, character.Character{ID: character.NewID(), Name: "Twin"}); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, n)
	})
}
