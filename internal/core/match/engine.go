package match

import (
	"sort"
	"strings"

	"pantry-matcher/internal/pkg/common"
)

// ingredientMatches 單一食材是否命中
// exact 為完全相等；partial 只要任一方包含另一方即命中
func ingredientMatches(recipeIng string, userIngs []string, mode string) bool {
	for _, userIng := range userIngs {
		if mode == common.MatchModeExact {
			if recipeIng == userIng {
				return true
			}
			continue
		}
		if strings.Contains(recipeIng, userIng) || strings.Contains(userIng, recipeIng) {
			return true
		}
	}
	return false
}

// Matches 以使用者食材對食譜池評分
// 空食材清單回傳整個池、分數為零且不過濾不排序；否則丟棄零命中的
// 食譜，依分數、命中數遞減穩定排序。分數為命中數除以雙方正規化
// 食材的聯集大小
func Matches(userIngredients []string, mode string, pool []common.Recipe) []common.RecipeMatch {
	if len(userIngredients) == 0 {
		out := make([]common.RecipeMatch, 0, len(pool))
		for _, recipe := range pool {
			out = append(out, common.RecipeMatch{
				Recipe:             recipe,
				MatchCount:         0,
				MatchedIngredients: []string{},
				MissingIngredients: recipe.Ingredients,
				Score:              0,
			})
		}
		return out
	}

	if mode != common.MatchModeExact {
		mode = common.MatchModePartial
	}

	normalizedUser := make([]string, len(userIngredients))
	for i, ing := range userIngredients {
		normalizedUser[i] = common.NormalizeIngredient(ing)
	}

	out := make([]common.RecipeMatch, 0, len(pool))
	for _, recipe := range pool {
		normalizedRecipe := make([]string, len(recipe.Ingredients))
		for i, ing := range recipe.Ingredients {
			normalizedRecipe[i] = common.NormalizeIngredient(ing)
		}

		matched := []string{}
		missing := []string{}
		for idx, ing := range normalizedRecipe {
			if ingredientMatches(ing, normalizedUser, mode) {
				// 保留食譜內的原始大小寫與順序
				matched = append(matched, recipe.Ingredients[idx])
			} else {
				missing = append(missing, recipe.Ingredients[idx])
			}
		}

		matchCount := len(matched)
		if matchCount == 0 {
			continue
		}

		union := make(map[string]struct{}, len(normalizedRecipe)+len(normalizedUser))
		for _, ing := range normalizedRecipe {
			union[ing] = struct{}{}
		}
		for _, ing := range normalizedUser {
			union[ing] = struct{}{}
		}

		out = append(out, common.RecipeMatch{
			Recipe:             recipe,
			MatchCount:         matchCount,
			MatchedIngredients: matched,
			MissingIngredients: missing,
			Score:              float64(matchCount) / float64(len(union)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].MatchCount > out[j].MatchCount
	})
	return out
}

// MatchedRecipes 只取排序後的食譜本體
func MatchedRecipes(userIngredients []string, mode string, pool []common.Recipe) []common.Recipe {
	matches := Matches(userIngredients, mode, pool)
	out := make([]common.Recipe, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Recipe)
	}
	return out
}
