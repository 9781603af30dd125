package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/character-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/character-service/internal/adapters/storage/storagetest"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

func TestRepository_Contract(t *testing.T) {
	t.Parallel()

	storagetest.Run(t, func(_ *testing.T) ports.CharacterRepository {
		return memory.New()
	})
}

func TestRepository_CanceledContext(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Add(ctx, character.Character{ID: character.NewID(), Name: "Aria"})
	require.ErrorIs(t, err, context.Canceled)

	_, err = repo.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRepository_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	ctx := context.Background()
	c := character.Character{ID: character.NewID(), Name: "Aria"}
	_, err := repo.Add(ctx, c)
	require.NoError(t, err)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	got.Name = "Mutated"

	again, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Aria", again.Name)
}
