package ai

import (
	"regexp"
	"strings"

	"pantry-matcher/internal/pkg/common"
)

// RecipeIdea 模型回傳的單一點子
type RecipeIdea struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	AddOns       []string `json:"addOns,omitempty"`
}

var (
	introLine       = regexp.MustCompile(`(?i)^Here are[^\n]*\n?`)
	blockSeparator  = regexp.MustCompile(`\n\n+`)
	lineSeparator   = regexp.MustCompile(`\n+`)
	bulletPrefix    = regexp.MustCompile(`^[-*]\s*`)
	numberedPrefix  = regexp.MustCompile(`^\d+\.`)
	numberedStrip   = regexp.MustCompile(`^\d+\.\s*`)
	titleListPrefix = regexp.MustCompile(`^[-*\s]*\d+\.\s*`)
	titleBulletTrim = regexp.MustCompile(`^[-*\s]+`)
)

// ParseIdeas 解析模型純文字輸出
// 以空行分段，段內首行為標題；其餘行依前綴分類：破折號為食材、
// 數字為步驟、add-on 或 optional 為加料，無前綴時短行（六字以內）
// 視為食材。完全解析不出時退回一筆 smoothie 點子，保證永遠有輸出
func ParseIdeas(text string, userIngredients []string) []RecipeIdea {
	normalized := introLine.ReplaceAllString(text, "")

	var parsed []RecipeIdea
	for _, block := range blockSeparator.Split(normalized, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		var lines []string
		for _, line := range lineSeparator.Split(block, -1) {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}

		idea := RecipeIdea{
			Title:        lines[0],
			Ingredients:  []string{},
			Instructions: []string{},
			AddOns:       []string{},
		}

		for _, line := range lines[1:] {
			lower := strings.ToLower(line)
			switch {
			case strings.HasPrefix(lower, "add-on") || strings.HasPrefix(lower, "add on") || strings.Contains(lower, "optional"):
				idea.AddOns = append(idea.AddOns, bulletPrefix.ReplaceAllString(line, ""))
			case bulletPrefix.MatchString(line):
				idea.Ingredients = append(idea.Ingredients, bulletPrefix.ReplaceAllString(line, ""))
			case numberedPrefix.MatchString(line):
				idea.Instructions = append(idea.Instructions, numberedStrip.ReplaceAllString(line, ""))
			case len(strings.Fields(line)) <= 6:
				idea.Ingredients = append(idea.Ingredients, line)
			default:
				idea.Instructions = append(idea.Instructions, line)
			}
		}

		parsed = append(parsed, idea)
	}

	if len(parsed) > 0 {
		return parsed
	}
	return []RecipeIdea{fallbackIdea(userIngredients)}
}

// fallbackIdea 模型無輸出時的保底點子
func fallbackIdea(userIngredients []string) RecipeIdea {
	hero := "Pantry"
	if len(userIngredients) > 0 {
		if trimmed := strings.TrimSpace(userIngredients[0]); trimmed != "" {
			hero = trimmed
		}
	}

	return RecipeIdea{
		Title:       hero + " smoothie",
		Ingredients: []string{hero, "ice", "milk or yogurt", "honey or sugar", "pinch of salt"},
		Instructions: []string{
			"Blend hero ingredient with ice, dairy (or alt), and sweetener for 30 seconds.",
			"Taste and adjust sweetness; add a pinch of salt to brighten.",
			"Serve cold; freeze 20 minutes for a slushier texture.",
		},
		AddOns: []string{"Add lime or lemon for brightness", "Swap dairy with coconut milk for dairy-free"},
	}
}

// IdeaToRecipe 將點子轉成臨時食譜
// id 固定為負值避免與任何持久化食譜碰撞，標題加註 (Suggested)
func IdeaToRecipe(idea RecipeIdea, idx int, userIngredients []string) common.Recipe {
	ingredients := idea.Ingredients
	if len(ingredients) == 0 {
		ingredients = userIngredients
	}
	instructions := idea.Instructions
	if len(instructions) == 0 {
		instructions = []string{"Combine ingredients and serve."}
	}

	title := titleListPrefix.ReplaceAllString(idea.Title, "")
	title = titleBulletTrim.ReplaceAllString(title, "")
	if title == "" {
		title = "Pantry Idea"
	}

	return common.Recipe{
		ID:           -(1000 + idx),
		Title:        title + " (Suggested)",
		Ingredients:  ingredients,
		Instructions: instructions,
		PrepTime:     5,
		CookTime:     0,
		Servings:     2,
		Difficulty:   common.DifficultyEasy,
		Tags:         []string{"Suggested", "AI"},
		Dietary: common.Dietary{
			Vegan:      false,
			Vegetarian: common.BoolPtr(false),
			GlutenFree: false,
			Halal:      true,
			NutFree:    true,
			DairyFree:  common.BoolPtr(true),
			EggFree:    common.BoolPtr(true),
		},
		Appliances: []string{common.ApplianceNone},
		Category:   "snack",
		Source:     common.SourceCommunity,
	}
}
