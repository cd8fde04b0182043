package catalog

import (
	"regexp"
	"strings"

	"pantry-matcher/internal/pkg/common"
)

// 食材關鍵字集合，推斷飲食屬性用（子字串比對，food 原文為小寫）
var (
	meatKeywords   = []string{"chicken", "beef", "pork", "turkey", "bacon", "sausage", "fish", "tuna", "shrimp"}
	dairyKeywords  = []string{"cheese", "milk", "butter", "cream", "yogurt", "alfredo", "half and half", "parmesan"}
	eggKeywords    = []string{"egg", "eggs"}
	glutenKeywords = []string{"pasta", "noodle", "bread", "flour", "tortilla", "spaghetti", "udon", "orzo"}
	nutKeywords    = []string{"peanut", "almond", "cashew", "pecan", "walnut"}
)

// 固定圖片池，依標題字元碼和決定性選圖
var imagePool = []string{
	"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&auto=format&fit=crop&q=80",
	"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&auto=format&fit=crop&q=80&sat=-50",
	"https://images.unsplash.com/photo-1529006557810-274b9b2fc783?w=800&auto=format&fit=crop&q=80",
	"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&auto=format&fit=crop&q=80&hue=20",
	"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&auto=format&fit=crop&q=80&blur=0.2",
	"https://images.unsplash.com/photo-1528715471579-d1bcf0ba5e83?w=800&auto=format&fit=crop&q=80",
	"https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800&auto=format&fit=crop&q=80",
	"https://images.unsplash.com/photo-1473093295043-cdd812d0e601?w=800&auto=format&fit=crop&q=80",
}

// 句界：標點 + 空白 + 大寫字母或數字
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+[A-Z0-9]`)

// 步驟前綴「N. 」
var stepNumberPrefix = regexp.MustCompile(`^\d+\.\s*`)

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// InferDietary 由食材文字推斷飲食屬性
// 純函數：同一份食材清單永遠得到同一組屬性
func InferDietary(ingredients []string) common.Dietary {
	lower := make([]string, len(ingredients))
	for i, ing := range ingredients {
		lower[i] = strings.ToLower(ing)
	}

	var hasMeat, hasDairy, hasEgg, hasGluten, hasNuts, hasPork bool
	for _, ing := range lower {
		if containsAny(ing, meatKeywords) {
			hasMeat = true
		}
		if containsAny(ing, dairyKeywords) {
			hasDairy = true
		}
		if containsAny(ing, eggKeywords) {
			hasEgg = true
		}
		if containsAny(ing, glutenKeywords) {
			hasGluten = true
		}
		if containsAny(ing, nutKeywords) {
			hasNuts = true
		}
		if strings.Contains(ing, "pork") || strings.Contains(ing, "bacon") {
			hasPork = true
		}
	}

	return common.Dietary{
		Vegan:      !hasMeat && !hasDairy && !hasEgg,
		Vegetarian: common.BoolPtr(!hasMeat),
		GlutenFree: !hasGluten,
		Halal:      !hasPork,
		NutFree:    !hasNuts,
		DairyFree:  common.BoolPtr(!hasDairy),
		EggFree:    common.BoolPtr(!hasEgg),
	}
}

// InferAppliances 掃描作法文字推斷所需設備；無關鍵字時回傳 [none]
func InferAppliances(text string) []string {
	lower := strings.ToLower(text)
	var appliances []string

	if strings.Contains(lower, "microwave") {
		appliances = append(appliances, common.ApplianceMicrowave)
	}
	if strings.Contains(lower, "oven") || strings.Contains(lower, "bake") {
		appliances = append(appliances, common.ApplianceOven)
	}
	for _, k := range []string{"stove", "pan", "skillet", "boil", "heat", "cook", "saute", "sauté"} {
		if strings.Contains(lower, k) {
			appliances = append(appliances, common.ApplianceStove)
			break
		}
	}

	if len(appliances) == 0 {
		return []string{common.ApplianceNone}
	}
	return dedupe(appliances)
}

// InferDifficulty 食材超過 10 項視為 Medium，否則 Easy
func InferDifficulty(ingredients []string) string {
	if len(ingredients) > 10 {
		return common.DifficultyMedium
	}
	return common.DifficultyEasy
}

// PickImageForTitle 依標題字元碼和自圖片池決定性選圖
// 穩定可重現的偽隨機指派，與品質無關
func PickImageForTitle(title string) string {
	hash := 0
	for _, r := range title {
		hash += int(r)
	}
	return imagePool[hash%len(imagePool)]
}

// NormalizeIngredients 去除空白與空項
func NormalizeIngredients(ingredients []string) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if trimmed := strings.TrimSpace(ing); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NormalizeSteps 逐步去除空白與空項
func NormalizeSteps(steps []string) []string {
	out := make([]string, 0, len(steps))
	for _, step := range steps {
		if trimmed := strings.TrimSpace(step); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// SplitPreparation 將整段作法文字依句界切成步驟
// 切不出任何句子時退化為整段文字單一步驟
func SplitPreparation(prose string) []string {
	trimmed := strings.TrimSpace(prose)
	if trimmed == "" {
		return nil
	}

	var steps []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(trimmed, -1) {
		// 在標點之後切開，下一句自大寫字元開始
		if step := strings.TrimSpace(trimmed[start : loc[0]+1]); step != "" {
			steps = append(steps, step)
		}
		start = loc[1] - 1
	}
	if tail := strings.TrimSpace(trimmed[start:]); tail != "" {
		steps = append(steps, tail)
	}

	if len(steps) == 0 {
		return []string{trimmed}
	}
	return steps
}

// StripStepNumber 去除行首「N. 」編號
func StripStepNumber(line string) string {
	return strings.TrimSpace(stepNumberPrefix.ReplaceAllString(line, ""))
}

// Enrich 補全推斷欄位的冪等處理
// 明確給定的飲食欄位優先於推斷；過敏原視圖與缺漏圖片一併補上
func Enrich(recipe common.Recipe) common.Recipe {
	inferred := InferDietary(recipe.Ingredients)

	dietary := recipe.Dietary
	if dietary.Vegetarian == nil {
		dietary.Vegetarian = inferred.Vegetarian
	}
	if dietary.DairyFree == nil {
		dietary.DairyFree = inferred.DairyFree
	}
	if dietary.EggFree == nil {
		dietary.EggFree = inferred.EggFree
	}

	allergens := common.Allergens{
		DairyFree: common.BoolOrDefault(dietary.DairyFree, true),
		EggFree:   common.BoolOrDefault(dietary.EggFree, true),
		NutFree:   dietary.NutFree,
	}

	recipe.Dietary = dietary
	recipe.Allergens = &allergens
	if recipe.ImageURL == "" {
		recipe.ImageURL = PickImageForTitle(recipe.Title)
	}
	if len(recipe.Appliances) == 0 {
		recipe.Appliances = []string{common.ApplianceNone}
	}
	return recipe
}

// EnrichAll 對整組食譜套用 Enrich
func EnrichAll(recipes []common.Recipe) []common.Recipe {
	out := make([]common.Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = Enrich(r)
	}
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
