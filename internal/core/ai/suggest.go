package ai

import (
	"context"
	"strings"
	"sync/atomic"

	"pantry-matcher/internal/core/ai/cache"
	"pantry-matcher/internal/infrastructure/config"
	"pantry-matcher/internal/pkg/common"

	"go.uber.org/zap"
)

// suggestPromptHeader 建議提示詞，食材清單附加於結尾
const suggestPromptHeader = `You are a helpful cooking assistant. Given the user's available ingredients, propose 3-5 concise recipe ideas that mostly use those ingredients.
- Ground every idea in the provided ingredients first; pantry staples (salt, pepper, oil, sugar, vinegar, soy sauce, garlic/onion powder) are okay as helpers, not main items.
- Keep each idea short: clear title plus 3-6 ingredients and 2-4 quick steps.
- Prefer no-cook or minimal equipment; blender/ice/chill/freezer is okay.
- If an idea needs extra ingredients, list only 1-2 small add-ons.
- Use clear, familiar dish names (smoothie, salsa, lassi, parfait, toast, bowl, sorbet). Avoid vague titles like "mix" or "med".
- Steps must be actionable (blend, chill, stir, toast, simmer) and make culinary sense for the listed ingredients; include quick timings (e.g., "blend 30 sec", "toast 4 min", "simmer 8 min").
- If an allergen is likely (dairy, nuts), note a one-line alternative.
- Always use the provided ingredients as the hero; if you see only one item, pair it with pantry staples to make a viable recipe.
- If an ingredient is unfamiliar or rare, still propose a sensible dish with it—never say you cannot; lean on simple prep and pantry basics.
- Output only the ideas with no intro text or numbering; separate ideas with blank lines.
- Avoid unsafe suggestions (no raw/undercooked meat, no toxic combinations).

User ingredients: `

// Suggester AI 建議服務
// generation 為遞增世代號：每次請求取一個新世代，模型回應較慢時
// 若已有更新的請求進來，舊回應直接丟棄不回傳
type Suggester struct {
	config     *config.Config
	client     *GeminiClient
	cache      *cache.Manager
	generation atomic.Int64
}

// NewSuggester 創建建議服務
func NewSuggester(cfg *config.Config, client *GeminiClient, cacheManager *cache.Manager) *Suggester {
	return &Suggester{
		config: cfg,
		client: client,
		cache:  cacheManager,
	}
}

// buildPrompt 組合提示詞
func buildPrompt(userIngredients []string) string {
	return suggestPromptHeader + strings.Join(userIngredients, ", ")
}

// Suggest 依使用者食材產生建議食譜
// 任何失敗（服務停用、呼叫逾時、解析異常）一律回傳空集合，
// 不阻塞主要的配對流程
func (s *Suggester) Suggest(ctx context.Context, userIngredients []string) []common.Recipe {
	if len(userIngredients) == 0 {
		return []common.Recipe{}
	}
	if !s.config.Gemini.Enabled || s.config.Gemini.APIKey == "" {
		return []common.Recipe{}
	}

	generation := s.generation.Add(1)
	prompt := buildPrompt(userIngredients)

	text, cached := s.lookupCache(ctx, prompt)
	if !cached {
		var err error
		text, err = s.client.GenerateText(ctx, prompt)
		if err != nil {
			common.LogWarn("AI 建議取得失敗",
				zap.Strings("ingredients", userIngredients),
				zap.Error(err),
			)
			return []common.Recipe{}
		}
		s.storeCache(ctx, prompt, text)
	}

	// 等待期間有更新的請求時丟棄本次結果
	if s.generation.Load() != generation {
		common.LogDebug("捨棄過期的 AI 建議回應",
			zap.Int64("generation", generation),
		)
		return []common.Recipe{}
	}

	ideas := ParseIdeas(text, userIngredients)
	if len(ideas) > s.config.Gemini.MaxIdeas {
		ideas = ideas[:s.config.Gemini.MaxIdeas]
	}

	out := make([]common.Recipe, 0, len(ideas))
	for idx, idea := range ideas {
		out = append(out, IdeaToRecipe(idea, idx, userIngredients))
	}
	return out
}

func (s *Suggester) lookupCache(ctx context.Context, prompt string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	value, err := s.cache.Get(ctx, prompt)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *Suggester) storeCache(ctx context.Context, prompt, value string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, prompt, value); err != nil {
		common.LogWarn("AI 建議寫入快取失敗", zap.Error(err))
	}
}
