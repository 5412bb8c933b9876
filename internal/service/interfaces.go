package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tldm-bits/ordnance-service/internal/models"
	"github.com/tldm-bits/ordnance-service/internal/repository"
	"github.com/tldm-bits/ordnance-service/pkg/metrics"
)

// InventoryService defines the main business logic interface for ordnance
// inventory operations
type InventoryService interface {
	// Item operations
	ListItems(ctx context.Context, category *models.Category) ([]models.OrdnanceItem, error)
	CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.OrdnanceItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, req *models.UpdateItemRequest) (*models.OrdnanceItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// Transfer operations
	TransferItem(ctx context.Context, req *models.TransferRequest) (*models.Transfer, error)
	ListTransfers(ctx context.Context, limit int) ([]models.Transfer, error)

	// Readiness
	GetReadiness(ctx context.Context) (*models.ReadinessMetrics, error)

	// SeedIfEmpty loads the demo dataset when the items table is empty
	SeedIfEmpty(ctx context.Context) error
}

// RecommendationService produces mission ordnance recommendations
type RecommendationService interface {
	Generate(ctx context.Context, req *models.GenerateRecommendationRequest) (*models.AIRecommendation, error)
	Status(ctx context.Context) models.ServiceStatus
}

// ForecastService projects readiness, evaluates what-if scenarios and
// maintains the forecast history
type ForecastService interface {
	GenerateForecast(ctx context.Context, req *models.GenerateForecastRequest) (*models.ForecastResult, error)
	GetForecast(ctx context.Context, forecastID string) (*models.ForecastResult, error)
	ListForecasts(ctx context.Context, limit, offset int) ([]models.ForecastSummary, error)
	RecordAccuracy(ctx context.Context, forecastID string, req *models.RecordAccuracyRequest) (*models.ForecastAccuracy, error)
	ActiveAlerts(ctx context.Context, severity *models.AlertSeverity, category *string) ([]models.ForecastAlert, error)
	AnalyzeScenarios(ctx context.Context, req *models.ScenarioAnalysisRequest) ([]models.ScenarioResult, error)
}

// ServiceDependencies groups shared dependencies injected into services.
// Metrics may be nil in tests.
type ServiceDependencies struct {
	Repositories *repository.Repositories
	Cache        repository.Cache
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
}
