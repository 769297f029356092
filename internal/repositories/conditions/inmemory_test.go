package conditions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	_, err := repo.Get(ctx, "hero")
	assert.True(t, dngerr.IsNotFound(err))

	data := snapshot()
	require.NoError(t, repo.Save(ctx, "hero", data))

	// stored snapshots are isolated from the caller's slice
	data[0].AttackDelta = 99
	got, err := repo.Get(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, 3, got[0].AttackDelta)

	got[1].HitRateMultiplier = 2
	again, err := repo.Get(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, 1.05, again[1].HitRateMultiplier)

	many, err := repo.GetMany(ctx, []string{"hero", "ghost"})
	require.NoError(t, err)
	assert.Len(t, many, 1)

	require.NoError(t, repo.Delete(ctx, "hero"))
	require.NoError(t, repo.Delete(ctx, "hero"))
	_, err = repo.Get(ctx, "hero")
	assert.True(t, dngerr.IsNotFound(err))

	assert.True(t, dngerr.IsInvalidArgument(repo.Save(ctx, "", nil)))
}
