package match

import (
	"sort"

	"pantry-matcher/internal/pkg/common"
)

// dietarySatisfies 單一飲食條件判定
// vegetarian 缺值時以 vegan 回退，未知條件一律視為不符
func dietarySatisfies(recipe common.Recipe, diet string) bool {
	switch diet {
	case "vegan":
		return recipe.Dietary.Vegan
	case "vegetarian":
		if recipe.Dietary.Vegetarian != nil {
			return *recipe.Dietary.Vegetarian
		}
		return recipe.Dietary.Vegan
	case "glutenFree":
		return recipe.Dietary.GlutenFree
	case "halal":
		return recipe.Dietary.Halal
	case "nutFree":
		return recipe.Dietary.NutFree
	case "dairyFree":
		return common.BoolOrDefault(recipe.Dietary.DairyFree, false)
	case "eggFree":
		return common.BoolOrDefault(recipe.Dietary.EggFree, false)
	}
	return false
}

// allergenSatisfies 過敏原條件判定，以 AllergenView 為準
func allergenSatisfies(recipe common.Recipe, allergen string) bool {
	view := recipe.AllergenView()
	switch allergen {
	case "dairyFree":
		return view.DairyFree
	case "eggFree":
		return view.EggFree
	case "nutFree":
		return view.NutFree
	}
	return false
}

// Apply 套用過濾條件
// 飲食與過敏原為 AND 全部命中，設備為 OR 任一命中，maxTime 以總時間判定
func Apply(recipes []common.Recipe, filters common.FilterState) []common.Recipe {
	out := make([]common.Recipe, 0, len(recipes))

recipeLoop:
	for _, recipe := range recipes {
		if filters.Source != "" && filters.Source != "all" && recipe.Source != filters.Source {
			continue
		}

		for _, diet := range filters.Dietary {
			if !dietarySatisfies(recipe, diet) {
				continue recipeLoop
			}
		}

		for _, allergen := range filters.Allergens {
			if !allergenSatisfies(recipe, allergen) {
				continue recipeLoop
			}
		}

		if len(filters.Appliances) > 0 {
			hit := false
		applianceLoop:
			for _, want := range filters.Appliances {
				for _, have := range recipe.Appliances {
					if have == want {
						hit = true
						break applianceLoop
					}
				}
			}
			if !hit {
				continue
			}
		}

		if filters.MaxTime != nil && recipe.TotalTime() > *filters.MaxTime {
			continue
		}

		out = append(out, recipe)
	}
	return out
}

// matchMeta 過濾後重排所需的評分摘要
type matchMeta struct {
	score        float64
	matchCount   int
	missingCount int
}

// SortByMatch 依先前評分重排過濾後的食譜
// 分數、命中數遞減，缺少食材數遞增；查無評分者視為零分
func SortByMatch(recipes []common.Recipe, matches []common.RecipeMatch) []common.Recipe {
	meta := make(map[int]matchMeta, len(matches))
	for _, m := range matches {
		meta[m.Recipe.ID] = matchMeta{
			score:        m.Score,
			matchCount:   m.MatchCount,
			missingCount: len(m.MissingIngredients),
		}
	}

	out := make([]common.Recipe, len(recipes))
	copy(out, recipes)
	sort.SliceStable(out, func(i, j int) bool {
		a := meta[out[i].ID]
		b := meta[out[j].ID]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.matchCount != b.matchCount {
			return a.matchCount > b.matchCount
		}
		return a.missingCount < b.missingCount
	})
	return out
}
