package common

import "strings"

// 食譜來源
const (
	SourcePantry    = "pantry"
	SourceCommunity = "community"
)

// 難度等級
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// 設備標籤，ApplianceNone 表示免烹煮
const (
	ApplianceNone      = "none"
	ApplianceMicrowave = "microwave"
	ApplianceKettle    = "kettle"
	ApplianceStove     = "stove"
	ApplianceOven      = "oven"
)

// 匹配模式
const (
	MatchModeExact   = "exact"
	MatchModePartial = "partial"
)

// Dietary 飲食屬性
// vegan/glutenFree/halal/nutFree 一律推斷；vegetarian/dairyFree/eggFree
// 允許缺值，缺值時由推斷結果補上（明確值優先）
type Dietary struct {
	Vegan      bool  `json:"vegan"`
	Vegetarian *bool `json:"vegetarian,omitempty"`
	GlutenFree bool  `json:"glutenFree"`
	Halal      bool  `json:"halal"`
	NutFree    bool  `json:"nutFree"`
	DairyFree  *bool `json:"dairyFree,omitempty"`
	EggFree    *bool `json:"eggFree,omitempty"`
}

// Allergens 過敏原視圖，由 Dietary 衍生
type Allergens struct {
	DairyFree bool `json:"dairyFree"`
	EggFree   bool `json:"eggFree"`
	NutFree   bool `json:"nutFree"`
}

// Recipe 食譜
// 欄位名稱與前端介面一致，不可隨意更動
type Recipe struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	PrepTime     int        `json:"prepTime"`
	CookTime     int        `json:"cookTime"`
	Servings     int        `json:"servings"`
	Difficulty   string     `json:"difficulty"`
	Tags         []string   `json:"tags"`
	ImageURL     string     `json:"imageUrl"`
	Dietary      Dietary    `json:"dietary"`
	Allergens    *Allergens `json:"allergens,omitempty"`
	Appliances   []string   `json:"appliances"`
	Category     string     `json:"category"`
	Source       string     `json:"source"`
}

// TotalTime 總耗時（分鐘）
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// AllergenView 取得過敏原視圖；未填時以 Dietary 的預設值回退
func (r Recipe) AllergenView() Allergens {
	if r.Allergens != nil {
		return *r.Allergens
	}
	return Allergens{
		DairyFree: BoolOrDefault(r.Dietary.DairyFree, true),
		EggFree:   BoolOrDefault(r.Dietary.EggFree, true),
		NutFree:   r.Dietary.NutFree,
	}
}

// RecipeMatch 單次查詢的評分紀錄，不做持久化
type RecipeMatch struct {
	Recipe             Recipe   `json:"recipe"`
	MatchCount         int      `json:"matchCount"`
	MatchedIngredients []string `json:"matchedIngredients"`
	MissingIngredients []string `json:"missingIngredients"`
	Score              float64  `json:"score"`
}

// FilterState 過濾條件，由呈現層傳入
type FilterState struct {
	Dietary    []string `json:"dietary"`
	Appliances []string `json:"appliances"`
	Allergens  []string `json:"allergens"`
	MaxTime    *int     `json:"maxTime"`
	MatchMode  string   `json:"matchMode"`
	Source     string   `json:"source"`
}

// NewCommunityRecipe 社群食譜投稿輸入
type NewCommunityRecipe struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prepTime"`
	CookTime     int      `json:"cookTime"`
	Servings     int      `json:"servings"`
	DietaryTags  []string `json:"dietaryTags,omitempty"`
}

// BoolOrDefault 取指標值，nil 時回傳預設值
func BoolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// BoolPtr 取 bool 指標
func BoolPtr(v bool) *bool {
	return &v
}

// IntPtr 取 int 指標
func IntPtr(v int) *int {
	return &v
}

// NormalizeIngredient 統一食材字串格式供比對使用
func NormalizeIngredient(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
