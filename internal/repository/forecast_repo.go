package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// forecastRepo implements ForecastRepository
type forecastRepo struct {
	db *sqlx.DB
}

// NewForecastRepository creates a new ForecastRepository
func NewForecastRepository(db *sqlx.DB) ForecastRepository {
	return &forecastRepo{
		db: db,
	}
}

const forecastColumns = `forecast_id, generated_at, result, accuracy_score, accuracy_updated_at`

const alertColumns = `id, forecast_id, category, severity, predicted_date, status, created_at`

// CreateForecast stores a forecast and its raised alerts in one transaction
func (r *forecastRepo) CreateForecast(ctx context.Context, record *models.ForecastRecord, alerts []models.ForecastAlert) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin forecast transaction")
	}
	defer tx.Rollback()

	insertForecast := `
		INSERT INTO forecast_history (forecast_id, generated_at, result, accuracy_score, accuracy_updated_at)
		VALUES (:forecast_id, :generated_at, :result, :accuracy_score, :accuracy_updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, insertForecast, record); err != nil {
		return errors.Wrap(err, "failed to store forecast")
	}

	insertAlert := `
		INSERT INTO forecast_alerts (id, forecast_id, category, severity, predicted_date, status, created_at)
		VALUES (:id, :forecast_id, :category, :severity, :predicted_date, :status, :created_at)
	`
	for i := range alerts {
		if _, err := tx.NamedExecContext(ctx, insertAlert, &alerts[i]); err != nil {
			return errors.Wrap(err, "failed to store forecast alert")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit forecast transaction")
	}
	return nil
}

// GetForecast retrieves a stored forecast by its ID
func (r *forecastRepo) GetForecast(ctx context.Context, forecastID string) (*models.ForecastRecord, error) {
	query := `
		SELECT ` + forecastColumns + `
		FROM forecast_history
		WHERE forecast_id = $1
	`

	var record models.ForecastRecord
	err := r.db.GetContext(ctx, &record, query, forecastID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get forecast by ID")
	}

	return &record, nil
}

// ListForecasts retrieves stored forecasts, newest first
func (r *forecastRepo) ListForecasts(ctx context.Context, limit, offset int) ([]models.ForecastRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + forecastColumns + `
		FROM forecast_history
		ORDER BY generated_at DESC
		LIMIT $1 OFFSET $2
	`

	records := []models.ForecastRecord{}
	err := r.db.SelectContext(ctx, &records, query, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list forecasts")
	}

	return records, nil
}

// UpdateAccuracy records the accuracy score of a stored forecast
func (r *forecastRepo) UpdateAccuracy(ctx context.Context, forecastID string, score float64, updatedAt time.Time) error {
	query := `
		UPDATE forecast_history
		SET accuracy_score = $1, accuracy_updated_at = $2
		WHERE forecast_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, score, updatedAt, forecastID)
	if err != nil {
		return errors.Wrap(err, "failed to update forecast accuracy")
	}
	return checkRowsAffected(result)
}

// ListActiveAlerts retrieves active alerts, optionally filtered by severity
// and category, newest first
func (r *forecastRepo) ListActiveAlerts(ctx context.Context, severity *models.AlertSeverity, category *string) ([]models.ForecastAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM forecast_alerts
		WHERE status = $1
	`
	args := []interface{}{models.AlertStatusActive}

	if severity != nil {
		args = append(args, *severity)
		query += fmt.Sprintf(" AND severity = $%d", len(args))
	}
	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY created_at DESC LIMIT 100"

	alerts := []models.ForecastAlert{}
	err := r.db.SelectContext(ctx, &alerts, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active forecast alerts")
	}

	return alerts, nil
}
