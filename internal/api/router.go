package api

import (
	"time"

	"foodprint/internal/api/handlers"
	estimateHandler "foodprint/internal/api/handlers/estimate"
	"foodprint/internal/api/handlers/factor"
	"foodprint/internal/api/handlers/health"
	"foodprint/internal/api/handlers/mcp"
	"foodprint/internal/api/middleware"
	"foodprint/internal/core/ai/image"
	"foodprint/internal/core/ai/service"
	"foodprint/internal/core/estimate"
	"foodprint/internal/core/ingredient"
	"foodprint/internal/infrastructure/config"
	"foodprint/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies 路由使用的服務
type Dependencies struct {
	Estimator estimateHandler.Estimator
	Images    *image.Processor
	AI        handlers.StatusReporter // 可為 nil
}

// SetupRouter 以 AI 服務組裝估算流程並設置路由
func SetupRouter(cfg *config.Config, aiService *service.Service) *gin.Engine {
	source := ingredient.NewSource(aiService)
	return NewRouter(cfg, Dependencies{
		Estimator: estimate.NewService(source),
		Images:    image.NewProcessor(cfg.Image.MaxSizeBytes),
		AI:        aiService,
	})
}

// NewRouter 設置路由
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.BodyLimitBytes, deps.Images.MaxSizeBytes()))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// 健康檢查路由
	healthHandler := health.NewHandler(cfg.App.Version, deps.AI)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	limited := []gin.HandlerFunc{}
	if cfg.RateLimit.Enabled {
		limited = append(limited, middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	limited = append(limited, middleware.Deduplication(cfg.DedupWindow))

	debug := cfg.App.Debug
	estimateH := estimateHandler.NewHandler(deps.Estimator, deps.Images, debug)
	mcpH := mcp.NewHandler(deps.Estimator, debug)

	api := router.Group("/api", limited...)
	{
		api.POST("/estimate", estimateH.HandleDish)
		api.POST("/estimate/image", estimateH.HandleImage)

		api.GET("/factors", factor.HandleList)
		api.GET("/factors/resolve", factor.HandleResolve(debug))

		if deps.AI != nil {
			api.GET("/ai/status", handlers.NewAIHandler(deps.AI).Status)
		}
	}

	router.POST("/mcp", append(limited, mcpH.Handle)...)

	common.LogInfo("Router setup completed successfully",
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Int("rate_limit_requests", cfg.RateLimit.Requests),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("body_limit_bytes", cfg.Server.BodyLimitBytes),
	)

	return router
}
