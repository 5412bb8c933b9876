package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// MockInventoryService is a mock implementation of InventoryService for testing
type MockInventoryService struct {
	ListItemsFunc     func(ctx context.Context, category *models.Category) ([]models.OrdnanceItem, error)
	CreateItemFunc    func(ctx context.Context, req *models.CreateItemRequest) (*models.OrdnanceItem, error)
	UpdateItemFunc    func(ctx context.Context, itemID uuid.UUID, req *models.UpdateItemRequest) (*models.OrdnanceItem, error)
	DeleteItemFunc    func(ctx context.Context, itemID uuid.UUID) error
	TransferItemFunc  func(ctx context.Context, req *models.TransferRequest) (*models.Transfer, error)
	ListTransfersFunc func(ctx context.Context, limit int) ([]models.Transfer, error)
	GetReadinessFunc  func(ctx context.Context) (*models.ReadinessMetrics, error)
	SeedIfEmptyFunc   func(ctx context.Context) error
}

func (m *MockInventoryService) ListItems(ctx context.Context, category *models.Category) ([]models.OrdnanceItem, error) {
	if m.ListItemsFunc != nil {
		return m.ListItemsFunc(ctx, category)
	}
	return []models.OrdnanceItem{}, nil
}

func (m *MockInventoryService) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.OrdnanceItem, error) {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, req)
	}
	return &models.OrdnanceItem{}, nil
}

func (m *MockInventoryService) UpdateItem(ctx context.Context, itemID uuid.UUID, req *models.UpdateItemRequest) (*models.OrdnanceItem, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, itemID, req)
	}
	return &models.OrdnanceItem{}, nil
}

func (m *MockInventoryService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, itemID)
	}
	return nil
}

func (m *MockInventoryService) TransferItem(ctx context.Context, req *models.TransferRequest) (*models.Transfer, error) {
	if m.TransferItemFunc != nil {
		return m.TransferItemFunc(ctx, req)
	}
	return &models.Transfer{}, nil
}

func (m *MockInventoryService) ListTransfers(ctx context.Context, limit int) ([]models.Transfer, error) {
	if m.ListTransfersFunc != nil {
		return m.ListTransfersFunc(ctx, limit)
	}
	return []models.Transfer{}, nil
}

func (m *MockInventoryService) GetReadiness(ctx context.Context) (*models.ReadinessMetrics, error) {
	if m.GetReadinessFunc != nil {
		return m.GetReadinessFunc(ctx)
	}
	return &models.ReadinessMetrics{}, nil
}

func (m *MockInventoryService) SeedIfEmpty(ctx context.Context) error {
	if m.SeedIfEmptyFunc != nil {
		return m.SeedIfEmptyFunc(ctx)
	}
	return nil
}

// MockRecommendationService is a mock implementation of RecommendationService for testing
type MockRecommendationService struct {
	GenerateFunc func(ctx context.Context, req *models.GenerateRecommendationRequest) (*models.AIRecommendation, error)
	StatusFunc   func(ctx context.Context) models.ServiceStatus
}

func (m *MockRecommendationService) Generate(ctx context.Context, req *models.GenerateRecommendationRequest) (*models.AIRecommendation, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return &models.AIRecommendation{}, nil
}

func (m *MockRecommendationService) Status(ctx context.Context) models.ServiceStatus {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx)
	}
	return models.StatusAvailable
}

// MockForecastService is a mock implementation of ForecastService for testing
type MockForecastService struct {
	GenerateForecastFunc func(ctx context.Context, req *models.GenerateForecastRequest) (*models.ForecastResult, error)
	GetForecastFunc      func(ctx context.Context, forecastID string) (*models.ForecastResult, error)
	ListForecastsFunc    func(ctx context.Context, limit, offset int) ([]models.ForecastSummary, error)
	RecordAccuracyFunc   func(ctx context.Context, forecastID string, req *models.RecordAccuracyRequest) (*models.ForecastAccuracy, error)
	ActiveAlertsFunc     func(ctx context.Context, severity *models.AlertSeverity, category *string) ([]models.ForecastAlert, error)
	AnalyzeScenariosFunc func(ctx context.Context, req *models.ScenarioAnalysisRequest) ([]models.ScenarioResult, error)
}

func (m *MockForecastService) GenerateForecast(ctx context.Context, req *models.GenerateForecastRequest) (*models.ForecastResult, error) {
	if m.GenerateForecastFunc != nil {
		return m.GenerateForecastFunc(ctx, req)
	}
	return &models.ForecastResult{}, nil
}

func (m *MockForecastService) GetForecast(ctx context.Context, forecastID string) (*models.ForecastResult, error) {
	if m.GetForecastFunc != nil {
		return m.GetForecastFunc(ctx, forecastID)
	}
	return &models.ForecastResult{}, nil
}

func (m *MockForecastService) ListForecasts(ctx context.Context, limit, offset int) ([]models.ForecastSummary, error) {
	if m.ListForecastsFunc != nil {
		return m.ListForecastsFunc(ctx, limit, offset)
	}
	return []models.ForecastSummary{}, nil
}

func (m *MockForecastService) RecordAccuracy(ctx context.Context, forecastID string, req *models.RecordAccuracyRequest) (*models.ForecastAccuracy, error) {
	if m.RecordAccuracyFunc != nil {
		return m.RecordAccuracyFunc(ctx, forecastID, req)
	}
	return &models.ForecastAccuracy{ForecastID: forecastID}, nil
}

func (m *MockForecastService) ActiveAlerts(ctx context.Context, severity *models.AlertSeverity, category *string) ([]models.ForecastAlert, error) {
	if m.ActiveAlertsFunc != nil {
		return m.ActiveAlertsFunc(ctx, severity, category)
	}
	return []models.ForecastAlert{}, nil
}

func (m *MockForecastService) AnalyzeScenarios(ctx context.Context, req *models.ScenarioAnalysisRequest) ([]models.ScenarioResult, error) {
	if m.AnalyzeScenariosFunc != nil {
		return m.AnalyzeScenariosFunc(ctx, req)
	}
	return []models.ScenarioResult{}, nil
}
