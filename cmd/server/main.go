package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tldm-bits/ordnance-service/internal/config"
	"github.com/tldm-bits/ordnance-service/internal/database"
	"github.com/tldm-bits/ordnance-service/internal/forecast"
	"github.com/tldm-bits/ordnance-service/internal/handlers"
	"github.com/tldm-bits/ordnance-service/internal/recommend"
	"github.com/tldm-bits/ordnance-service/internal/repository"
	"github.com/tldm-bits/ordnance-service/internal/rfid"
	"github.com/tldm-bits/ordnance-service/internal/service"
	"github.com/tldm-bits/ordnance-service/pkg/logger"
	"github.com/tldm-bits/ordnance-service/pkg/metrics"
)

func main() {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting ordnance-service", "config", cfg.String())

	// Initialize metrics
	metricsCollector := metrics.New()
	metricsCollector.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize PostgreSQL
	postgres, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DatabaseMaxConns, log, metricsCollector)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer postgres.Close()

	// Initialize Redis
	redis, err := database.NewRedisDB(cfg.RedisURL, cfg.RedisMaxConns, log, metricsCollector)
	if err != nil {
		log.Error("Failed to initialize Redis", "error", err)
		os.Exit(1)
	}
	defer redis.Close()

	// Initialize storage layer
	repos := repository.NewRepositories(postgres.DB())
	cache := repository.NewRedisCache(redis.Client())

	// Initialize service layer
	serviceDeps := &service.ServiceDependencies{
		Repositories: repos,
		Cache:        cache,
		Logger:       log,
		Metrics:      metricsCollector,
	}
	inventoryService := service.NewInventoryService(serviceDeps)

	// Recommendation pipeline: simulated provider behind the retry/fallback
	// orchestrator.
	generator := recommend.NewGenerator(nil)
	providerCfg := recommend.DefaultSimulatedProviderConfig()
	providerCfg.FailureRate = cfg.ProviderFailureRate
	provider := recommend.NewSimulatedProvider(generator, providerCfg, nil)
	orchestrator := recommend.NewOrchestrator(provider, generator, recommend.Config{
		MaxAttempts:   cfg.RecommendMaxAttempts,
		BackoffBase:   cfg.RecommendBackoffBase,
		MinConfidence: cfg.RecommendMinConfidence,
		CallTimeout:   cfg.RecommendCallTimeout,
		ProbeDegraded: 3 * time.Second,
	}, log)
	orchestrator.SetRecorder(metricsCollector)
	recommendationService := service.NewRecommendationService(orchestrator, log)

	forecastService := service.NewForecastService(inventoryService, forecast.NewEngine(nil), repos.Forecast, metricsCollector, log)

	// RFID simulation: seeded when RFID_SEED is set so demos are reproducible
	var rng *rand.Rand
	if cfg.RFIDSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.RFIDSeed))
	}
	rfidSimulator := rfid.NewSimulator(rng, cfg.RFIDTagCount, nil)

	// Seed demo inventory into an empty database
	if cfg.SeedDemoData {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := inventoryService.SeedIfEmpty(seedCtx); err != nil {
			log.Error("Failed to seed demo inventory", "error", err)
		}
		cancel()
	}

	// Create Gin router for public API
	publicRouter := gin.New()
	handlers.SetupRoutes(publicRouter, &handlers.RouterConfig{
		InventoryService:      inventoryService,
		RecommendationService: recommendationService,
		ForecastService:       forecastService,
		RFIDSimulator:         rfidSimulator,
		Metrics:               metricsCollector,
		RecommendRatePerMin:   cfg.RecommendRatePerMinute,
		Logger:                log,
	})

	// Create Gin router for internal API
	internalRouter := gin.New()
	handlers.SetupInternalRoutes(internalRouter, log, postgres, redis)

	// Create public HTTP server
	publicServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServiceHost, cfg.ServicePort),
		Handler:      publicRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Create internal HTTP server
	internalServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServiceHost, cfg.InternalServicePort),
		Handler:      internalRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start health monitoring goroutine
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			postgresHealthy := postgres.Health(ctx) == nil
			redisHealthy := redis.Health(ctx) == nil
			metricsCollector.UpdateDependencyHealth("postgres", postgresHealthy)
			metricsCollector.UpdateDependencyHealth("redis", redisHealthy)

			cancel()
		}
	}()

	// Start public server in a goroutine
	go func() {
		log.Info("Public server starting", "address", publicServer.Addr)
		if err := publicServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Public server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Start internal server in a goroutine
	go func() {
		log.Info("Internal server starting", "address", internalServer.Addr)
		if err := internalServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Internal server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	go func() {
		if err := publicServer.Shutdown(ctx); err != nil {
			log.Error("Public server forced to shutdown", "error", err)
		}
	}()

	if err := internalServer.Shutdown(ctx); err != nil {
		log.Error("Internal server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
