package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"pantry-matcher/internal/pkg/common"

	"go.uber.org/zap"
)

// 兩份爬取來源隨程式內嵌，啟動時解析一次
var (
	//go:embed data/pantry_collection.json
	pantryCollectionRaw []byte

	//go:embed data/pantry_book.json
	pantryBookRaw []byte
)

// CollectionRecipe 爬取集合 A 的原始項目
type CollectionRecipe struct {
	RecipeName          string   `json:"recipe_name"`
	IngredientsAll      []string `json:"ingredients_all"`
	IngredientsAtPantry []string `json:"ingredients_at_pantry,omitempty"`
	Preparation         string   `json:"preparation"`
}

type collectionFile struct {
	PantryRecipesCollection []CollectionRecipe `json:"pantry_recipes_collection"`
}

// BookRecipe 爬取來源 B（分節食譜書）的原始項目
type BookRecipe struct {
	Name        string          `json:"name"`
	ReadyIn     string          `json:"ready_in,omitempty"`
	Serves      int             `json:"serves,omitempty"`
	Calories    int             `json:"calories,omitempty"`
	Ingredients []string        `json:"ingredients"`
	Preparation PreparationText `json:"preparation"`
	Tips        string          `json:"tips,omitempty"`
}

// BookSection 食譜書分節
type BookSection struct {
	Item    string       `json:"item,omitempty"`
	Recipes []BookRecipe `json:"recipes,omitempty"`
}

type bookFile struct {
	PantryRecipeBook struct {
		Sections []BookSection `json:"sections,omitempty"`
	} `json:"pantry_recipe_book"`
}

// PreparationText 作法欄位，來源可能是整段文字或步驟陣列
type PreparationText struct {
	Prose string
	Steps []string
}

// UnmarshalJSON 接受 string 或 []string 兩種形態
func (p *PreparationText) UnmarshalJSON(data []byte) error {
	var prose string
	if err := json.Unmarshal(data, &prose); err == nil {
		p.Prose = prose
		p.Steps = nil
		return nil
	}
	var steps []string
	if err := json.Unmarshal(data, &steps); err == nil {
		p.Steps = steps
		p.Prose = ""
		return nil
	}
	return fmt.Errorf("preparation must be string or string array")
}

// ToSteps 轉為步驟清單
func (p PreparationText) ToSteps() []string {
	if p.Steps != nil {
		return NormalizeSteps(p.Steps)
	}
	return SplitPreparation(p.Prose)
}

var leadingDigits = regexp.MustCompile(`(\d+)`)

// parseReadyMinutes 自 ready_in 取首段數字；取不到回傳 0
func parseReadyMinutes(ready string) int {
	m := leadingDigits.FindString(ready)
	if m == "" {
		return 0
	}
	var minutes int
	fmt.Sscanf(m, "%d", &minutes)
	return minutes
}

// splitTotalTime 依 40/60 拆分總時間，雙邊下限 5 分鐘
func splitTotalTime(total int) (prep, cook int) {
	prep = int(float64(total)*0.4 + 0.5)
	if prep < 5 {
		prep = 5
	}
	cook = total - prep
	if cook < 5 {
		cook = 5
	}
	return prep, cook
}

// NormalizeCollection 將爬取集合 A 轉為標準食譜
// id 自 1000 起連號，總時間固定 20 分鐘，份量固定 2，分類固定 dinner
func NormalizeCollection(items []CollectionRecipe) []common.Recipe {
	out := make([]common.Recipe, 0, len(items))
	for idx, item := range items {
		ingredients := NormalizeIngredients(item.IngredientsAll)
		instructions := SplitPreparation(item.Preparation)
		appliances := InferAppliances(item.Preparation)
		prepTime, cookTime := splitTotalTime(20)

		out = append(out, common.Recipe{
			ID:           1000 + idx,
			Title:        item.RecipeName,
			Ingredients:  ingredients,
			Instructions: instructions,
			PrepTime:     prepTime,
			CookTime:     cookTime,
			Servings:     2,
			Difficulty:   InferDifficulty(ingredients),
			Tags:         append([]string{"pantry-collection"}, appliances...),
			ImageURL:     PickImageForTitle(item.RecipeName),
			Dietary:      InferDietary(ingredients),
			Appliances:   appliances,
			Category:     "dinner",
			Source:       common.SourcePantry,
		})
	}
	return out
}

// NormalizeBook 將分節食譜書轉為標準食譜
// id 以 2000 為基底、每節位移 100，保證跨節不碰撞
func NormalizeBook(sections []BookSection) []common.Recipe {
	var out []common.Recipe
	for sectionIdx, section := range sections {
		for idx, recipe := range section.Recipes {
			ingredients := NormalizeIngredients(recipe.Ingredients)
			instructions := recipe.Preparation.ToSteps()

			title := recipe.Name
			if title == "" {
				title = fmt.Sprintf("Recipe %d-%d", sectionIdx+1, idx+1)
			}

			totalTime := parseReadyMinutes(recipe.ReadyIn)
			if totalTime == 0 {
				totalTime = 20
			}
			prepTime, cookTime := splitTotalTime(totalTime)

			servings := recipe.Serves
			if servings == 0 {
				servings = 2
			}

			sectionTag := section.Item
			if sectionTag == "" {
				sectionTag = "pantry"
			}

			appliances := InferAppliances(strings.Join(instructions, " "))

			out = append(out, common.Recipe{
				ID:           2000 + sectionIdx*100 + idx,
				Title:        title,
				Ingredients:  ingredients,
				Instructions: instructions,
				PrepTime:     prepTime,
				CookTime:     cookTime,
				Servings:     servings,
				Difficulty:   InferDifficulty(ingredients),
				Tags:         []string{"pantry-book", sectionTag},
				ImageURL:     PickImageForTitle(title),
				Dietary:      InferDietary(ingredients),
				Appliances:   appliances,
				Category:     "dinner",
				Source:       common.SourcePantry,
			})
		}
	}
	return out
}

// loadScrapedRecipes 解析內嵌來源；內容損毀時退化為空集合並告警
func loadScrapedRecipes() []common.Recipe {
	var collection collectionFile
	if err := common.ParseJSONBytes(pantryCollectionRaw, &collection); err != nil {
		common.LogWarn("pantry collection 來源解析失敗", zap.Error(err))
	}

	var book bookFile
	if err := common.ParseJSONBytes(pantryBookRaw, &book); err != nil {
		common.LogWarn("pantry book 來源解析失敗", zap.Error(err))
	}

	recipes := NormalizeCollection(collection.PantryRecipesCollection)
	return append(recipes, NormalizeBook(book.PantryRecipeBook.Sections)...)
}
