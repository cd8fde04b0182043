package match

import (
	"testing"

	"pantry-matcher/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool() []common.Recipe {
	return []common.Recipe{
		{
			ID:          1,
			Title:       "Simple Rice & Beans Bowl",
			Ingredients: []string{"rice", "beans", "onion", "garlic", "cumin"},
		},
		{
			ID:          2,
			Title:       "Quick Pasta Marinara",
			Ingredients: []string{"pasta", "tomatoes", "garlic", "olive oil", "basil"},
		},
		{
			ID:          3,
			Title:       "Fruit & Yogurt Parfait",
			Ingredients: []string{"yogurt", "granola", "banana", "berries", "honey"},
		},
	}
}

func TestMatchesEmptyInput(t *testing.T) {
	matches := Matches(nil, common.MatchModePartial, testPool())

	// 空輸入回傳整個池，不過濾不排序
	require.Len(t, matches, 3)
	for i, m := range matches {
		assert.Equal(t, testPool()[i].ID, m.Recipe.ID, "original order preserved")
		assert.Zero(t, m.Score)
		assert.Zero(t, m.MatchCount)
		assert.Empty(t, m.MatchedIngredients)
		assert.Equal(t, m.Recipe.Ingredients, m.MissingIngredients)
	}
}

func TestMatchesScoring(t *testing.T) {
	matches := Matches([]string{"rice", "beans", "onion"}, common.MatchModePartial, testPool())

	// 零命中的食譜被丟棄
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, 1, m.Recipe.ID)
	assert.Equal(t, 3, m.MatchCount)
	assert.Equal(t, []string{"rice", "beans", "onion"}, m.MatchedIngredients)
	assert.Equal(t, []string{"garlic", "cumin"}, m.MissingIngredients)
	// 聯集為 5 個食材，3/5
	assert.InDelta(t, 0.6, m.Score, 1e-9)
}

func TestMatchesModes(t *testing.T) {
	t.Run("partial matches substrings both ways", func(t *testing.T) {
		matches := Matches([]string{"brown rice"}, common.MatchModePartial, testPool())
		require.Len(t, matches, 1)
		assert.Equal(t, 1, matches[0].Recipe.ID)
		assert.Equal(t, []string{"rice"}, matches[0].MatchedIngredients)
	})

	t.Run("exact requires equality", func(t *testing.T) {
		matches := Matches([]string{"brown rice"}, common.MatchModeExact, testPool())
		assert.Empty(t, matches)

		matches = Matches([]string{"rice"}, common.MatchModeExact, testPool())
		require.Len(t, matches, 1)
		assert.Equal(t, 1, matches[0].Recipe.ID)
	})

	t.Run("unknown mode falls back to partial", func(t *testing.T) {
		matches := Matches([]string{"brown rice"}, "fuzzy", testPool())
		assert.Len(t, matches, 1)
	})
}

func TestMatchesNormalization(t *testing.T) {
	matches := Matches([]string{"  RICE  ", "Garlic"}, common.MatchModeExact, testPool())

	require.Len(t, matches, 2)
	for _, m := range matches {
		for _, ing := range m.MatchedIngredients {
			// 命中清單保留食譜內的原始寫法
			assert.Contains(t, m.Recipe.Ingredients, ing)
		}
	}
}

func TestMatchesOrdering(t *testing.T) {
	pool := []common.Recipe{
		{ID: 10, Title: "Two of four", Ingredients: []string{"rice", "beans", "corn", "lime"}},
		{ID: 11, Title: "Two of two", Ingredients: []string{"rice", "beans"}},
		{ID: 12, Title: "One of two", Ingredients: []string{"rice", "salt"}},
	}

	matches := Matches([]string{"rice", "beans"}, common.MatchModeExact, pool)
	require.Len(t, matches, 3)

	// 2/2 = 1.0 > 2/4 = 0.5 > 1/3 ≈ 0.33
	assert.Equal(t, 11, matches[0].Recipe.ID)
	assert.Equal(t, 10, matches[1].Recipe.ID)
	assert.Equal(t, 12, matches[2].Recipe.ID)

	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
	assert.InDelta(t, 0.5, matches[1].Score, 1e-9)
	assert.InDelta(t, 1.0/3.0, matches[2].Score, 1e-9)
}

func TestMatchedRecipes(t *testing.T) {
	recipes := MatchedRecipes([]string{"garlic"}, common.MatchModePartial, testPool())
	require.Len(t, recipes, 2)
	for _, r := range recipes {
		assert.Contains(t, r.Ingredients, "garlic")
	}
}
