package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// OrdnanceRepository defines methods for working with ordnance items
type OrdnanceRepository interface {
	// ListItems retrieves all ordnance items, optionally filtered by category
	ListItems(ctx context.Context, category *models.Category) ([]models.OrdnanceItem, error)

	// GetItemByID retrieves an item by its ID
	GetItemByID(ctx context.Context, itemID uuid.UUID) (*models.OrdnanceItem, error)

	// CreateItem inserts a new ordnance item
	CreateItem(ctx context.Context, item *models.OrdnanceItem) error

	// UpdateItem persists quantity, condition and holder changes
	UpdateItem(ctx context.Context, item *models.OrdnanceItem) error

	// DeleteItem removes an item
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// CountItems returns the number of stored items
	CountItems(ctx context.Context) (int64, error)

	// BeginTransaction starts a new database transaction
	BeginTransaction(ctx context.Context) (*sqlx.Tx, error)

	// UpdateItemInTransaction persists item changes within a transaction
	UpdateItemInTransaction(ctx context.Context, tx *sqlx.Tx, item *models.OrdnanceItem) error

	// CreateItemInTransaction inserts an item within a transaction
	CreateItemInTransaction(ctx context.Context, tx *sqlx.Tx, item *models.OrdnanceItem) error
}

// TransferRepository defines methods for working with transfer records
type TransferRepository interface {
	// ListTransfers retrieves transfer history, newest first
	ListTransfers(ctx context.Context, limit int) ([]models.Transfer, error)

	// CreateTransferInTransaction records a transfer within a transaction
	CreateTransferInTransaction(ctx context.Context, tx *sqlx.Tx, transfer *models.Transfer) error
}

// ForecastRepository defines methods for working with stored forecasts and
// their alerts
type ForecastRepository interface {
	// CreateForecast stores a forecast and its raised alerts atomically
	CreateForecast(ctx context.Context, record *models.ForecastRecord, alerts []models.ForecastAlert) error

	// GetForecast retrieves a stored forecast by its ID
	GetForecast(ctx context.Context, forecastID string) (*models.ForecastRecord, error)

	// ListForecasts retrieves stored forecasts, newest first
	ListForecasts(ctx context.Context, limit, offset int) ([]models.ForecastRecord, error)

	// UpdateAccuracy records the accuracy score of a stored forecast
	UpdateAccuracy(ctx context.Context, forecastID string, score float64, updatedAt time.Time) error

	// ListActiveAlerts retrieves active alerts with optional filters
	ListActiveAlerts(ctx context.Context, severity *models.AlertSeverity, category *string) ([]models.ForecastAlert, error)
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Ordnance OrdnanceRepository
	Transfer TransferRepository
	Forecast ForecastRepository
}

// NewRepositories creates a new Repositories instance
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Ordnance: NewOrdnanceRepository(db),
		Transfer: NewTransferRepository(db),
		Forecast: NewForecastRepository(db),
	}
}

// Cache defines caching interface
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string, value interface{}) error

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error
}

// ErrNotFound indicates that the requested resource was not found
var ErrNotFound = sql.ErrNoRows
