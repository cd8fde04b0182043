package ai

import (
	"testing"

	"pantry-matcher/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleModelOutput = `Here are some ideas for you:
Mango Smoothie
- mango
- ice
- yogurt
1. Blend everything for 30 sec.
2. Serve cold.
Add-on: honey for sweetness

Mango Salsa
- mango
- red onion
- lime
fine dice
1. Dice the mango and onion.
2. Stir with lime juice and let the flavors mingle for ten minutes.`

func TestParseIdeas(t *testing.T) {
	ideas := ParseIdeas(sampleModelOutput, []string{"mango"})
	require.Len(t, ideas, 2)

	first := ideas[0]
	assert.Equal(t, "Mango Smoothie", first.Title)
	assert.Equal(t, []string{"mango", "ice", "yogurt"}, first.Ingredients)
	assert.Equal(t, []string{"Blend everything for 30 sec.", "Serve cold."}, first.Instructions)
	assert.Equal(t, []string{"Add-on: honey for sweetness"}, first.AddOns)

	second := ideas[1]
	assert.Equal(t, "Mango Salsa", second.Title)
	// 無前綴的短行視為食材，長行視為步驟
	assert.Contains(t, second.Ingredients, "fine dice")
	require.Len(t, second.Instructions, 2)
}

func TestParseIdeasOptionalLines(t *testing.T) {
	text := "Banana Toast\n- banana\n- bread\nOptional: drizzle of honey\n1. Toast the bread.\n2. Top with sliced banana."
	ideas := ParseIdeas(text, []string{"banana"})
	require.Len(t, ideas, 1)
	assert.Equal(t, []string{"Optional: drizzle of honey"}, ideas[0].AddOns)
	assert.Equal(t, []string{"banana", "bread"}, ideas[0].Ingredients)
}

func TestParseIdeasFallback(t *testing.T) {
	t.Run("empty text yields exactly one smoothie idea", func(t *testing.T) {
		ideas := ParseIdeas("", []string{"mango", "rice"})
		require.Len(t, ideas, 1)
		assert.Equal(t, "mango smoothie", ideas[0].Title)
		assert.Contains(t, ideas[0].Ingredients, "mango")
		assert.Contains(t, ideas[0].Ingredients, "ice")
		assert.Len(t, ideas[0].Instructions, 3)
	})

	t.Run("blank ingredient list falls back to pantry", func(t *testing.T) {
		ideas := ParseIdeas("   ", []string{"  "})
		require.Len(t, ideas, 1)
		assert.Equal(t, "Pantry smoothie", ideas[0].Title)
	})
}

func TestIdeaToRecipe(t *testing.T) {
	t.Run("negative ids keep suggestions apart from stored recipes", func(t *testing.T) {
		r0 := IdeaToRecipe(RecipeIdea{Title: "Mango Salsa"}, 0, []string{"mango"})
		r1 := IdeaToRecipe(RecipeIdea{Title: "Mango Lassi"}, 1, []string{"mango"})
		assert.Equal(t, -1000, r0.ID)
		assert.Equal(t, -1001, r1.ID)
	})

	t.Run("title is cleaned and suffixed", func(t *testing.T) {
		r := IdeaToRecipe(RecipeIdea{Title: "- 2. Mango Salsa"}, 0, nil)
		assert.Equal(t, "Mango Salsa (Suggested)", r.Title)

		r = IdeaToRecipe(RecipeIdea{Title: ""}, 0, nil)
		assert.Equal(t, "Pantry Idea (Suggested)", r.Title)
	})

	t.Run("empty fields fall back to defaults", func(t *testing.T) {
		r := IdeaToRecipe(RecipeIdea{Title: "Quick Bowl"}, 0, []string{"rice", "egg"})
		assert.Equal(t, []string{"rice", "egg"}, r.Ingredients)
		assert.Equal(t, []string{"Combine ingredients and serve."}, r.Instructions)
	})

	t.Run("suggestion recipes are transient community snacks", func(t *testing.T) {
		r := IdeaToRecipe(RecipeIdea{Title: "Mango Salsa"}, 0, nil)
		assert.Equal(t, common.SourceCommunity, r.Source)
		assert.Equal(t, "snack", r.Category)
		assert.Contains(t, r.Tags, "Suggested")
		assert.Contains(t, r.Tags, "AI")
		assert.Equal(t, []string{common.ApplianceNone}, r.Appliances)
		assert.True(t, r.Dietary.Halal)
		assert.False(t, r.Dietary.Vegan)
	})
}
