package catalog

import (
	"context"
	"testing"

	"pantry-matcher/internal/infrastructure/storage"
	"pantry-matcher/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryRepository) {
	t.Helper()
	repo := storage.NewMemoryRepository()
	return NewStore(repo), repo
}

func findByID(recipes []common.Recipe, id int) (common.Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return common.Recipe{}, false
}

func TestStoreGetAll(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	all := store.GetAll(ctx)
	require.NotEmpty(t, all)

	// 內建常備與社群種子都要在集合裡
	_, ok := findByID(all, 1)
	assert.True(t, ok, "pantry seed missing")
	_, ok = findByID(all, 3001)
	assert.True(t, ok, "community seed missing")
	_, ok = findByID(all, 1000)
	assert.True(t, ok, "scraped collection recipe missing")

	for _, recipe := range all {
		assert.NotEmpty(t, recipe.Appliances, "recipe %d has empty appliances", recipe.ID)
		assert.NotNil(t, recipe.Dietary.Vegetarian, "recipe %d missing vegetarian flag", recipe.ID)
		assert.NotNil(t, recipe.Allergens, "recipe %d missing allergen view", recipe.ID)
	}
}

func TestStoreGetCommunity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	community := store.GetCommunity(ctx)
	require.NotEmpty(t, community)
	for _, recipe := range community {
		assert.Equal(t, common.SourceCommunity, recipe.Source)
	}
}

func TestStoreAdd(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	recipe, err := store.Add(ctx, common.NewCommunityRecipe{
		Title:        "Test Chickpea Bowl",
		Ingredients:  []string{" chickpeas ", "rice", ""},
		Instructions: []string{"1. Mix everything", "2. Serve"},
		PrepTime:     0,
		CookTime:     10,
		Servings:     0,
		DietaryTags:  []string{"vegan", "gluten-free"},
	})
	require.NoError(t, err)

	assert.Greater(t, recipe.ID, 0)
	assert.Equal(t, common.SourceCommunity, recipe.Source)
	assert.Equal(t, "dinner", recipe.Category)
	assert.Equal(t, 2, recipe.Servings)

	// 空白食材被剔除，步驟序號被移除
	assert.Equal(t, []string{"chickpeas", "rice"}, recipe.Ingredients)
	assert.Equal(t, []string{"Mix everything", "Serve"}, recipe.Instructions)

	// prep 缺值取總時間一半，cook 不為負
	assert.GreaterOrEqual(t, recipe.PrepTime, 1)
	assert.GreaterOrEqual(t, recipe.CookTime, 0)
	assert.GreaterOrEqual(t, recipe.TotalTime(), 5)

	// 飲食標籤只放寬不收緊
	assert.True(t, recipe.Dietary.Vegan)
	assert.True(t, recipe.Dietary.GlutenFree)

	assert.Contains(t, recipe.Tags, "community")
	assert.Contains(t, recipe.Tags, "vegan")

	// 新投稿要能從完整集合讀回
	found, ok := findByID(store.GetAll(ctx), recipe.ID)
	require.True(t, ok)
	assert.Equal(t, recipe.Title, found.Title)
}

func TestStoreAddClampsShortTimes(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	recipe, err := store.Add(ctx, common.NewCommunityRecipe{
		Title:        "Instant Snack",
		Ingredients:  []string{"crackers"},
		Instructions: []string{"Open and eat"},
		PrepTime:     1,
		CookTime:     0,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, recipe.TotalTime(), 5)
	assert.GreaterOrEqual(t, recipe.PrepTime, 1)
}

func TestStoreGetByID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	recipe, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, recipe.ID)

	_, err = store.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, common.ErrRecipeNotFound)
}

func TestStoreAddRejectsIncompleteInput(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, common.NewCommunityRecipe{
		Ingredients:  []string{"rice"},
		Instructions: []string{"Cook it"},
	})
	assert.True(t, common.IsValidationError(err))

	_, err = store.Add(ctx, common.NewCommunityRecipe{
		Title:        "No Ingredients",
		Instructions: []string{"Cook it"},
	})
	assert.True(t, common.IsValidationError(err))

	// 空白字串不算有效食材
	_, err = store.Add(ctx, common.NewCommunityRecipe{
		Title:       "No Instructions",
		Ingredients: []string{"  "},
	})
	assert.True(t, common.IsValidationError(err))
}

func TestStoreDelete(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	t.Run("deleting a stored recipe hides it", func(t *testing.T) {
		recipe, err := store.Add(ctx, common.NewCommunityRecipe{
			Title:        "Temp Recipe",
			Ingredients:  []string{"rice"},
			Instructions: []string{"Cook the rice"},
			PrepTime:     5,
			CookTime:     10,
		})
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, recipe.ID))

		_, ok := findByID(store.GetAll(ctx), recipe.ID)
		assert.False(t, ok)
	})

	t.Run("deleting a seed community recipe survives rebuild", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, 3001))

		_, ok := findByID(store.GetAll(ctx), 3001)
		assert.False(t, ok)

		// 模擬重啟：同一儲存庫上重建目錄，墓碑仍然生效
		rebuilt := NewStore(repo)
		_, ok = findByID(rebuilt.GetAll(ctx), 3001)
		assert.False(t, ok)
	})

	t.Run("deleting pantry recipes has no effect on base", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, 1))

		// 墓碑只隱藏社群來源，常備食譜不受影響
		_, ok := findByID(store.GetAll(ctx), 1)
		assert.True(t, ok)
	})
}
