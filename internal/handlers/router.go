package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tldm-bits/ordnance-service/internal/database"
	"github.com/tldm-bits/ordnance-service/internal/middleware"
	"github.com/tldm-bits/ordnance-service/internal/rfid"
	"github.com/tldm-bits/ordnance-service/internal/service"
	"github.com/tldm-bits/ordnance-service/pkg/metrics"
)

// RouterConfig contains configuration for setting up routes
type RouterConfig struct {
	InventoryService      service.InventoryService
	RecommendationService service.RecommendationService
	ForecastService       service.ForecastService
	RFIDSimulator         *rfid.Simulator
	Metrics               *metrics.Metrics
	RecommendRatePerMin   int
	Logger                *slog.Logger
}

// SetupRoutes configures all public routes for the ordnance service
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	inventoryHandler := NewInventoryHandler(config.InventoryService, config.Logger)
	recommendationHandler := NewRecommendationHandler(config.RecommendationService, config.Logger)
	forecastHandler := NewForecastHandler(config.ForecastService, config.Logger)
	rfidHandler := NewRFIDHandler(config.RFIDSimulator, config.Logger)

	loggingMiddleware := middleware.NewLoggingMiddleware(config.Logger)
	recommendLimiter := middleware.NewRateLimiter(config.RecommendRatePerMin)

	router.Use(gin.Recovery())
	router.Use(loggingMiddleware.LogRequests())
	router.Use(middleware.MetricsMiddleware(config.Metrics))

	api := router.Group("/api/ordnance")
	{
		api.GET("/items", inventoryHandler.ListItems)
		api.POST("/items", inventoryHandler.CreateItem)
		api.PUT("/items/:id", inventoryHandler.UpdateItem)
		api.DELETE("/items/:id", inventoryHandler.DeleteItem)

		api.POST("/transfers", inventoryHandler.CreateTransfer)
		api.GET("/transfers", inventoryHandler.ListTransfers)

		api.GET("/readiness", inventoryHandler.GetReadiness)

		api.POST("/recommendations/generate", recommendLimiter.Limit(), recommendationHandler.Generate)
		api.GET("/recommendations/status", recommendationHandler.Status)

		api.POST("/forecasts/generate", forecastHandler.Generate)
		api.POST("/forecasts/scenarios", forecastHandler.Scenarios)
		api.GET("/forecasts", forecastHandler.List)
		api.GET("/forecasts/alerts/active", forecastHandler.ActiveAlerts)
		api.GET("/forecasts/:id", forecastHandler.Get)
		api.POST("/forecasts/:id/accuracy", forecastHandler.RecordAccuracy)

		api.GET("/rfid/tags", rfidHandler.ListTags)
		api.POST("/rfid/scan", rfidHandler.Scan)
		api.POST("/rfid/transfer", rfidHandler.Transfer)
		api.GET("/rfid/alerts", rfidHandler.ListAlerts)
		api.POST("/rfid/audit", rfidHandler.RunAudit)
	}
}

// SetupInternalRoutes configures health and metrics endpoints served on
// the internal port.
func SetupInternalRoutes(router *gin.Engine, logger *slog.Logger, postgres *database.PostgresDB, redis *database.RedisDB) {
	healthHandler := NewHealthHandler(logger, postgres, redis)

	router.Use(gin.Recovery())
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
