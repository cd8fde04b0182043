package recipe

import (
	"net/http"

	"pantry-matcher/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuggestRequest AI 建議請求
type SuggestRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
}

// HandleSuggest 依使用者食材產生 AI 建議食譜
// 建議為暫時性資料，id 為負值且不落地
func (h *Handler) HandleSuggest(c *gin.Context) {
	reqID := requestID(c)

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		respondError(c, http.StatusBadRequest, common.ErrCodeInvalidRequest, "Invalid request format")
		return
	}

	recipes := h.suggester.Suggest(c.Request.Context(), req.Ingredients)

	common.LogInfo("AI 建議請求完成",
		zap.String("request_id", reqID),
		zap.Int("ingredient_count", len(req.Ingredients)),
		zap.Int("suggestion_count", len(recipes)),
	)

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}
