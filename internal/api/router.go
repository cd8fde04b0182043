package api

import (
	"context"
	"net/http"
	"time"

	"pantry-matcher/internal/api/handlers/health"
	recipeHandler "pantry-matcher/internal/api/handlers/recipe"
	"pantry-matcher/internal/api/middleware"
	"pantry-matcher/internal/core/ai"
	"pantry-matcher/internal/core/ai/cache"
	"pantry-matcher/internal/core/catalog"
	"pantry-matcher/internal/infrastructure/config"
	"pantry-matcher/internal/infrastructure/storage"
	"pantry-matcher/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 請求超時
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (1MB)，純文字 API 不需要更大
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, repo storage.CommunityRepository, cacheManager *cache.Manager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("gemini_enabled", cfg.Gemini.Enabled),
		zap.String("model", cfg.Gemini.Model),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	// 初始化目錄與 AI 建議服務
	store := catalog.NewStore(repo)
	geminiClient := ai.NewGeminiClient(cfg)
	suggester := ai.NewSuggester(cfg, geminiClient, cacheManager)

	// 全局中間件：設置超時與共享依賴
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("community_repository", repo)
		if cacheManager != nil {
			c.Set("cache_manager", cacheManager)
		}

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, common.ErrorResponse{
				Code:    common.ErrCodeGatewayTimeout,
				Message: "Request timeout",
				Details: timeoutDuration.String(),
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := recipeHandler.NewHandler(store, suggester)

		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("", handler.HandleListRecipes)
			recipeGroup.GET("/:id", handler.HandleGetRecipe)
			recipeGroup.POST("/match", handler.HandleMatch)
			recipeGroup.POST("/suggest", handler.HandleSuggest)

			communityGroup := recipeGroup.Group("/community")
			{
				communityGroup.GET("", handler.HandleListCommunity)
				communityGroup.POST("", middleware.Deduplication(cfg), handler.HandleAddCommunity)
				communityGroup.DELETE("/:id", handler.HandleDeleteCommunity)
			}
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
