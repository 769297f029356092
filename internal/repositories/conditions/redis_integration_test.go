//go:build integration

package conditions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dngerr "github.com/KirkDiggler/dungeon-effects/internal/errors"
	"github.com/KirkDiggler/dungeon-effects/internal/repositories/conditions"
	"github.com/KirkDiggler/dungeon-effects/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.RedisClient(t)
	repo := conditions.NewRedisRepository(&conditions.RedisRepoConfig{Client: client})
	ctx := context.Background()

	t.Run("save and restore snapshot", func(t *testing.T) {
		data := testutils.CreateTestConditionData()
		require.NoError(t, repo.Save(ctx, "hero", data))

		got, err := repo.Get(ctx, "hero")
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("get many omits missing creatures", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "rat", nil))

		got, err := repo.GetMany(ctx, []string{"hero", "rat", "ghost"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Empty(t, got["rat"])
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "hero"))
		_, err := repo.Get(ctx, "hero")
		assert.True(t, dngerr.IsNotFound(err))
	})
}
