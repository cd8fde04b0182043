package recipe

import (
	"net/http"
	"strconv"

	"pantry-matcher/internal/core/ai"
	"pantry-matcher/internal/core/catalog"
	"pantry-matcher/internal/core/match"
	"pantry-matcher/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchRequest 食材配對請求
type MatchRequest struct {
	Ingredients        []string           `json:"ingredients"`                  // 使用者現有食材
	MatchMode          string             `json:"matchMode,omitempty"`          // exact 或 partial，預設 partial
	Filters            common.FilterState `json:"filters"`                      // 過濾條件
	IncludeSuggestions bool               `json:"includeSuggestions,omitempty"` // 是否併入 AI 建議
}

// MatchResponse 配對結果
type MatchResponse struct {
	Recipes []common.Recipe      `json:"recipes"`
	Matches []common.RecipeMatch `json:"matches"`
}

// Handler 食譜處理程序
type Handler struct {
	store     *catalog.Store
	suggester *ai.Suggester
}

// NewHandler 創建食譜處理程序
func NewHandler(store *catalog.Store, suggester *ai.Suggester) *Handler {
	return &Handler{
		store:     store,
		suggester: suggester,
	}
}

// requestID 取得或補發請求 ID
func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.New().String()
		c.Header("X-Request-ID", id)
	}
	return id
}

// respondError 回覆統一的錯誤結構
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, common.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// HandleListRecipes 列出全部食譜，可依 source 查詢參數過濾
func (h *Handler) HandleListRecipes(c *gin.Context) {
	recipes := h.store.GetAll(c.Request.Context())

	source := c.Query("source")
	if source != "" && source != "all" {
		filtered := make([]common.Recipe, 0, len(recipes))
		for _, recipe := range recipes {
			if recipe.Source == source {
				filtered = append(filtered, recipe)
			}
		}
		recipes = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

// HandleGetRecipe 依 id 取單筆食譜
func (h *Handler) HandleGetRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, common.ErrCodeInvalidRequest, "Invalid recipe id")
		return
	}

	recipe, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, common.ErrCodeNotFound, "Recipe not found")
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// HandleMatch 依食材對食譜池評分、過濾並重排
// 流程：組食譜池（可併入 AI 建議）、評分、套過濾條件、依配對強度排序
func (h *Handler) HandleMatch(c *gin.Context) {
	reqID := requestID(c)

	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		respondError(c, http.StatusBadRequest, common.ErrCodeInvalidRequest, "Invalid request format")
		return
	}

	common.LogInfo("開始處理食譜配對請求",
		zap.String("request_id", reqID),
		zap.Int("ingredient_count", len(req.Ingredients)),
		zap.String("match_mode", req.MatchMode),
	)

	ctx := c.Request.Context()
	pool := h.store.GetAll(ctx)

	if req.IncludeSuggestions && len(req.Ingredients) > 0 {
		pool = append(pool, h.suggester.Suggest(ctx, req.Ingredients)...)
	}

	matches := match.Matches(req.Ingredients, req.MatchMode, pool)

	recipes := make([]common.Recipe, 0, len(matches))
	for _, m := range matches {
		recipes = append(recipes, m.Recipe)
	}

	recipes = match.Apply(recipes, req.Filters)
	recipes = match.SortByMatch(recipes, matches)

	c.JSON(http.StatusOK, MatchResponse{
		Recipes: recipes,
		Matches: matches,
	})
}
