package catalog

import (
	"context"
	"strings"
	"time"

	"pantry-matcher/internal/infrastructure/storage"
	"pantry-matcher/internal/pkg/common"

	"go.uber.org/zap"
)

// Store 食譜目錄
// 基底集合每次啟動自來源重建，社群新增與刪除透過注入的儲存庫持久化；
// 刪除一律寫入墓碑，基底重建後仍能保持隱藏
type Store struct {
	repo storage.CommunityRepository
	base []common.Recipe
}

// NewStore 建立目錄並組裝基底集合
func NewStore(repo storage.CommunityRepository) *Store {
	base := loadScrapedRecipes()
	base = append(base, communitySeedRecipes()...)
	base = append(base, pantrySeedRecipes()...)

	return &Store{
		repo: repo,
		base: EnrichAll(base),
	}
}

// GetAll 取得完整食譜集合：未被墓碑標記的基底 + 持久化的社群食譜
// 儲存庫異常時退化為只回基底，不中斷請求
func (s *Store) GetAll(ctx context.Context) []common.Recipe {
	tombstones, err := s.repo.Tombstones(ctx)
	if err != nil {
		common.LogWarn("讀取墓碑清單失敗", zap.Error(err))
		tombstones = map[int]struct{}{}
	}

	stored, err := s.repo.List(ctx)
	if err != nil {
		common.LogWarn("讀取社群食譜失敗", zap.Error(err))
		stored = nil
	}

	out := make([]common.Recipe, 0, len(s.base)+len(stored))
	for _, recipe := range s.base {
		if recipe.Source == common.SourceCommunity {
			if _, dead := tombstones[recipe.ID]; dead {
				continue
			}
		}
		out = append(out, recipe)
	}
	for _, recipe := range stored {
		if _, dead := tombstones[recipe.ID]; dead {
			continue
		}
		out = append(out, Enrich(recipe))
	}
	return out
}

// GetCommunity 只取社群來源食譜
func (s *Store) GetCommunity(ctx context.Context) []common.Recipe {
	all := s.GetAll(ctx)
	out := make([]common.Recipe, 0, len(all))
	for _, recipe := range all {
		if recipe.Source == common.SourceCommunity {
			out = append(out, recipe)
		}
	}
	return out
}

// GetByID 依 id 取食譜，找不到時回傳 ErrRecipeNotFound
func (s *Store) GetByID(ctx context.Context, id int) (common.Recipe, error) {
	for _, recipe := range s.GetAll(ctx) {
		if recipe.ID == id {
			return recipe, nil
		}
	}
	return common.Recipe{}, common.ErrRecipeNotFound
}

// Add 新增社群投稿
// 時間欄位規整：總時間至少 5 分鐘、prep 至少 1 分鐘（缺值取總時間一半）、
// cook 不為負；飲食標籤只會放寬推斷結果，不會收緊
func (s *Store) Add(ctx context.Context, input common.NewCommunityRecipe) (common.Recipe, error) {
	if strings.TrimSpace(input.Title) == "" {
		return common.Recipe{}, common.NewValidationError("title is required")
	}
	ingredients := NormalizeIngredients(input.Ingredients)
	instructions := NormalizeSteps(input.Instructions)
	for i, step := range instructions {
		instructions[i] = StripStepNumber(step)
	}
	if len(ingredients) == 0 || len(instructions) == 0 {
		return common.Recipe{}, common.NewValidationError("ingredients and instructions are required")
	}

	totalTime := input.PrepTime + input.CookTime
	if totalTime < 5 {
		totalTime = 5
	}
	prepTime := input.PrepTime
	if prepTime == 0 {
		prepTime = int(float64(totalTime)*0.5 + 0.5)
	}
	if prepTime < 1 {
		prepTime = 1
	}
	cookTime := totalTime - prepTime
	if cookTime < 0 {
		cookTime = 0
	}

	servings := input.Servings
	if servings == 0 {
		servings = 2
	}

	appliances := InferAppliances(strings.Join(instructions, " "))
	dietary := InferDietary(ingredients)

	hasTag := func(tag string) bool {
		for _, t := range input.DietaryTags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	}
	dietary.Vegan = dietary.Vegan || hasTag("vegan")
	dietary.GlutenFree = dietary.GlutenFree || hasTag("gluten-free") || hasTag("glutenFree")
	dietary.NutFree = dietary.NutFree || hasTag("nut-free") || hasTag("nutFree")
	dietary.Vegetarian = common.BoolPtr(common.BoolOrDefault(dietary.Vegetarian, false) || hasTag("vegetarian"))
	dietary.DairyFree = common.BoolPtr(common.BoolOrDefault(dietary.DairyFree, false) || hasTag("dairy-free") || hasTag("dairyFree"))
	dietary.EggFree = common.BoolPtr(common.BoolOrDefault(dietary.EggFree, false) || hasTag("egg-free") || hasTag("eggFree"))

	recipe := Enrich(common.Recipe{
		ID:           int(time.Now().UnixMilli()),
		Title:        input.Title,
		Ingredients:  ingredients,
		Instructions: instructions,
		PrepTime:     prepTime,
		CookTime:     cookTime,
		Servings:     servings,
		Difficulty:   InferDifficulty(ingredients),
		Tags:         append([]string{"community"}, input.DietaryTags...),
		ImageURL:     PickImageForTitle(input.Title),
		Dietary:      dietary,
		Appliances:   appliances,
		Category:     "dinner",
		Source:       common.SourceCommunity,
	})

	if err := s.repo.Put(ctx, recipe); err != nil {
		return common.Recipe{}, err
	}
	// 同 id 曾被刪除時清掉墓碑，讓重新投稿可見
	if err := s.repo.RemoveTombstone(ctx, recipe.ID); err != nil {
		common.LogWarn("清除墓碑失敗", zap.Int("recipe_id", recipe.ID), zap.Error(err))
	}
	return recipe, nil
}

// Delete 刪除社群食譜
// 不論 id 來自持久化或內建種子，一律寫入墓碑
func (s *Store) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.repo.AddTombstone(ctx, id)
}
