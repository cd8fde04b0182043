package recipe

import (
	"net/http"
	"strconv"
	"strings"

	"pantry-matcher/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddCommunityRequest 社群投稿請求
// 食材與步驟可給陣列，也可給換行分隔的整段文字
type AddCommunityRequest struct {
	Title            string   `json:"title" binding:"required"`
	Ingredients      []string `json:"ingredients,omitempty"`
	IngredientsText  string   `json:"ingredientsText,omitempty"`
	Instructions     []string `json:"instructions,omitempty"`
	InstructionsText string   `json:"instructionsText,omitempty"`
	PrepTime         int      `json:"prepTime,omitempty"`
	CookTime         int      `json:"cookTime,omitempty"`
	Servings         int      `json:"servings,omitempty"`
	DietaryTags      []string `json:"dietaryTags,omitempty"`
}

// splitLines 將換行分隔文字切為非空行
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// HandleListCommunity 列出社群食譜
func (h *Handler) HandleListCommunity(c *gin.Context) {
	recipes := h.store.GetCommunity(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

// HandleAddCommunity 新增社群投稿
func (h *Handler) HandleAddCommunity(c *gin.Context) {
	reqID := requestID(c)

	var req AddCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		respondError(c, http.StatusBadRequest, common.ErrCodeInvalidRequest, "Invalid request format")
		return
	}

	ingredients := req.Ingredients
	if len(ingredients) == 0 {
		ingredients = splitLines(req.IngredientsText)
	}
	instructions := req.Instructions
	if len(instructions) == 0 {
		instructions = splitLines(req.InstructionsText)
	}

	recipe, err := h.store.Add(c.Request.Context(), common.NewCommunityRecipe{
		Title:        req.Title,
		Ingredients:  ingredients,
		Instructions: instructions,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		DietaryTags:  req.DietaryTags,
	})
	if err != nil {
		if common.IsValidationError(err) {
			respondError(c, http.StatusBadRequest, common.ErrCodeInvalidRequest, err.Error())
			return
		}
		common.LogError("社群投稿儲存失敗",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		respondError(c, http.StatusInternalServerError, common.ErrCodeInternalError, "Failed to save recipe")
		return
	}

	common.LogInfo("社群投稿已建立",
		zap.String("request_id", reqID),
		zap.Int("recipe_id", recipe.ID),
		zap.String("title", recipe.Title),
	)
	c.JSON(http.StatusCreated, recipe)
}

// HandleDeleteCommunity 刪除社群食譜
func (h *Handler) HandleDeleteCommunity(c *gin.Context) {
	reqID := requestID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, common.ErrCodeInvalidRequest, "Invalid recipe id")
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		common.LogError("社群食譜刪除失敗",
			zap.Error(err),
			zap.String("request_id", reqID),
			zap.Int("recipe_id", id),
		)
		respondError(c, http.StatusInternalServerError, common.ErrCodeInternalError, "Failed to delete recipe")
		return
	}

	common.LogInfo("社群食譜已刪除",
		zap.String("request_id", reqID),
		zap.Int("recipe_id", id),
	)
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
