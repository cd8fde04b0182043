package storage

import (
	"context"
	"testing"

	"pantry-matcher/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryRecipes(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	recipes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	require.NoError(t, repo.Put(ctx, common.Recipe{ID: 42, Title: "Test Bowl"}))
	require.NoError(t, repo.Put(ctx, common.Recipe{ID: 43, Title: "Another Bowl"}))

	recipes, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	require.NoError(t, repo.Delete(ctx, 42))
	recipes, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, 43, recipes[0].ID)

	// 刪除不存在的 id 不報錯
	assert.NoError(t, repo.Delete(ctx, 999))
}

func TestMemoryRepositoryTombstones(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	tombstones, err := repo.Tombstones(ctx)
	require.NoError(t, err)
	assert.Empty(t, tombstones)

	require.NoError(t, repo.AddTombstone(ctx, 3001))
	require.NoError(t, repo.AddTombstone(ctx, 3001))

	tombstones, err = repo.Tombstones(ctx)
	require.NoError(t, err)
	require.Len(t, tombstones, 1)
	_, ok := tombstones[3001]
	assert.True(t, ok)

	require.NoError(t, repo.RemoveTombstone(ctx, 3001))
	tombstones, err = repo.Tombstones(ctx)
	require.NoError(t, err)
	assert.Empty(t, tombstones)
}

func TestMemoryRepositoryCopiesOnRead(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, common.Recipe{ID: 1, Title: "Original"}))

	recipes, err := repo.List(ctx)
	require.NoError(t, err)
	recipes[0].Title = "Mutated"

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Original", fresh[0].Title)
}
