package health

import (
	"net/http"
	"runtime"
	"time"

	"pantry-matcher/internal/core/ai/cache"
	"pantry-matcher/internal/infrastructure/config"
	"pantry-matcher/internal/infrastructure/storage"
	"pantry-matcher/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	cfg, exists := c.Get("config")
	if !exists {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Code:    common.ErrCodeInternalError,
			Message: "Configuration not found",
		})
		return
	}
	config, ok := cfg.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Code:    common.ErrCodeInternalError,
			Message: "Invalid configuration type",
		})
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if managerValue, ok := c.Get("cache_manager"); ok {
		if manager, ok := managerValue.(*cache.Manager); ok && manager != nil {
			response.Cache = manager.GetStats()
		}
	}

	common.LogInfo("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器
// 以墓碑查詢探測儲存庫，後端無法連線時回報未就緒
func ReadinessCheck(c *gin.Context) {
	repoValue, exists := c.Get("community_repository")
	if exists {
		if repo, ok := repoValue.(storage.CommunityRepository); ok {
			if _, err := repo.Tombstones(c.Request.Context()); err != nil {
				common.LogWarn("儲存庫就緒檢查失敗", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
					Code:    common.ErrCodeServiceUnavailable,
					Message: "storage unavailable",
				})
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
