package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// MockOrdnanceRepository is a mock implementation of OrdnanceRepository
type MockOrdnanceRepository struct {
	ListItemsFunc               func(ctx context.Context, category *models.Category) ([]models.OrdnanceItem, error)
	GetItemByIDFunc             func(ctx context.Context, itemID uuid.UUID) (*models.OrdnanceItem, error)
	CreateItemFunc              func(ctx context.Context, item *models.OrdnanceItem) error
	UpdateItemFunc              func(ctx context.Context, item *models.OrdnanceItem) error
	DeleteItemFunc              func(ctx context.Context, itemID uuid.UUID) error
	CountItemsFunc              func(ctx context.Context) (int64, error)
	BeginTransactionFunc        func(ctx context.Context) (*sqlx.Tx, error)
	UpdateItemInTransactionFunc func(ctx context.Context, tx *sqlx.Tx, item *models.OrdnanceItem) error
	CreateItemInTransactionFunc func(ctx context.Context, tx *sqlx.Tx, item *models.OrdnanceItem) error
}

func (m *MockOrdnanceRepository) ListItems(ctx context.Context, category *models.Category) ([]models.OrdnanceItem, error) {
	if m.ListItemsFunc != nil {
		return m.ListItemsFunc(ctx, category)
	}
	return []models.OrdnanceItem{}, nil
}

func (m *MockOrdnanceRepository) GetItemByID(ctx context.Context, itemID uuid.UUID) (*models.OrdnanceItem, error) {
	if m.GetItemByIDFunc != nil {
		return m.GetItemByIDFunc(ctx, itemID)
	}
	return nil, ErrNotFound
}

func (m *MockOrdnanceRepository) CreateItem(ctx context.Context, item *models.OrdnanceItem) error {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, item)
	}
	return nil
}

func (m *MockOrdnanceRepository) UpdateItem(ctx context.Context, item *models.OrdnanceItem) error {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, item)
	}
	return nil
}

func (m *MockOrdnanceRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, itemID)
	}
	return nil
}

func (m *MockOrdnanceRepository) CountItems(ctx context.Context) (int64, error) {
	if m.CountItemsFunc != nil {
		return m.CountItemsFunc(ctx)
	}
	return 0, nil
}

func (m *MockOrdnanceRepository) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	if m.BeginTransactionFunc != nil {
		return m.BeginTransactionFunc(ctx)
	}
	return nil, nil
}

func (m *MockOrdnanceRepository) UpdateItemInTransaction(ctx context.Context, tx *sqlx.Tx, item *models.OrdnanceItem) error {
	if m.UpdateItemInTransactionFunc != nil {
		return m.UpdateItemInTransactionFunc(ctx, tx, item)
	}
	return nil
}

func (m *MockOrdnanceRepository) CreateItemInTransaction(ctx context.Context, tx *sqlx.Tx, item *models.OrdnanceItem) error {
	if m.CreateItemInTransactionFunc != nil {
		return m.CreateItemInTransactionFunc(ctx, tx, item)
	}
	return nil
}

// MockTransferRepository is a mock implementation of TransferRepository
type MockTransferRepository struct {
	ListTransfersFunc               func(ctx context.Context, limit int) ([]models.Transfer, error)
	CreateTransferInTransactionFunc func(ctx context.Context, tx *sqlx.Tx, transfer *models.Transfer) error
}

func (m *MockTransferRepository) ListTransfers(ctx context.Context, limit int) ([]models.Transfer, error) {
	if m.ListTransfersFunc != nil {
		return m.ListTransfersFunc(ctx, limit)
	}
	return []models.Transfer{}, nil
}

func (m *MockTransferRepository) CreateTransferInTransaction(ctx context.Context, tx *sqlx.Tx, transfer *models.Transfer) error {
	if m.CreateTransferInTransactionFunc != nil {
		return m.CreateTransferInTransactionFunc(ctx, tx, transfer)
	}
	return nil
}

// MockForecastRepository is a mock implementation of ForecastRepository
type MockForecastRepository struct {
	CreateForecastFunc   func(ctx context.Context, record *models.ForecastRecord, alerts []models.ForecastAlert) error
	GetForecastFunc      func(ctx context.Context, forecastID string) (*models.ForecastRecord, error)
	ListForecastsFunc    func(ctx context.Context, limit, offset int) ([]models.ForecastRecord, error)
	UpdateAccuracyFunc   func(ctx context.Context, forecastID string, score float64, updatedAt time.Time) error
	ListActiveAlertsFunc func(ctx context.Context, severity *models.AlertSeverity, category *string) ([]models.ForecastAlert, error)
}

func (m *MockForecastRepository) CreateForecast(ctx context.Context, record *models.ForecastRecord, alerts []models.ForecastAlert) error {
	if m.CreateForecastFunc != nil {
		return m.CreateForecastFunc(ctx, record, alerts)
	}
	return nil
}

func (m *MockForecastRepository) GetForecast(ctx context.Context, forecastID string) (*models.ForecastRecord, error) {
	if m.GetForecastFunc != nil {
		return m.GetForecastFunc(ctx, forecastID)
	}
	return nil, ErrNotFound
}

func (m *MockForecastRepository) ListForecasts(ctx context.Context, limit, offset int) ([]models.ForecastRecord, error) {
	if m.ListForecastsFunc != nil {
		return m.ListForecastsFunc(ctx, limit, offset)
	}
	return []models.ForecastRecord{}, nil
}

func (m *MockForecastRepository) UpdateAccuracy(ctx context.Context, forecastID string, score float64, updatedAt time.Time) error {
	if m.UpdateAccuracyFunc != nil {
		return m.UpdateAccuracyFunc(ctx, forecastID, score, updatedAt)
	}
	return nil
}

func (m *MockForecastRepository) ListActiveAlerts(ctx context.Context, severity *models.AlertSeverity, category *string) ([]models.ForecastAlert, error) {
	if m.ListActiveAlertsFunc != nil {
		return m.ListActiveAlertsFunc(ctx, severity, category)
	}
	return []models.ForecastAlert{}, nil
}
