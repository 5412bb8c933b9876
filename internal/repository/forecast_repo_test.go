package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

func newForecastRepo(t *testing.T) (ForecastRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewForecastRepository(sqlxDB), mock, func() { db.Close() }
}

func sampleForecastRecord() *models.ForecastRecord {
	return &models.ForecastRecord{
		ForecastID:  "fcst_2025_06_01_ab12cd34",
		GeneratedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		Result:      types.JSONText(`{"forecast_id":"fcst_2025_06_01_ab12cd34"}`),
	}
}

func TestForecastRepo_CreateForecast(t *testing.T) {
	t.Run("stores forecast and alerts in one transaction", func(t *testing.T) {
		repo, mock, cleanup := newForecastRepo(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO forecast_history`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO forecast_alerts`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		alerts := []models.ForecastAlert{{
			ID:            uuid.New(),
			ForecastID:    "fcst_2025_06_01_ab12cd34",
			Category:      "General Ordnance",
			Severity:      models.SeverityMedium,
			PredictedDate: "2025-07-16",
			Status:        models.AlertStatusActive,
			CreatedAt:     time.Now(),
		}}

		err := repo.CreateForecast(context.Background(), sampleForecastRecord(), alerts)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the forecast insert fails", func(t *testing.T) {
		repo, mock, cleanup := newForecastRepo(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO forecast_history`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.CreateForecast(context.Background(), sampleForecastRecord(), nil)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestForecastRepo_GetForecast(t *testing.T) {
	repo, mock, cleanup := newForecastRepo(t)
	defer cleanup()

	columns := []string{"forecast_id", "generated_at", "result", "accuracy_score", "accuracy_updated_at"}

	t.Run("returns stored record", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow("fcst_2025_06_01_ab12cd34", time.Now(), []byte(`{"generated_as":"rule_based"}`), nil, nil)

		mock.ExpectQuery(`SELECT (.+) FROM forecast_history WHERE forecast_id = \$1`).
			WithArgs("fcst_2025_06_01_ab12cd34").
			WillReturnRows(rows)

		record, err := repo.GetForecast(context.Background(), "fcst_2025_06_01_ab12cd34")
		require.NoError(t, err)
		assert.Equal(t, "fcst_2025_06_01_ab12cd34", record.ForecastID)
		assert.Nil(t, record.AccuracyScore)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM forecast_history WHERE forecast_id = \$1`).
			WithArgs("fcst_missing").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetForecast(context.Background(), "fcst_missing")
		assert.ErrorIs(t, err, ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestForecastRepo_ListForecasts(t *testing.T) {
	repo, mock, cleanup := newForecastRepo(t)
	defer cleanup()

	columns := []string{"forecast_id", "generated_at", "result", "accuracy_score", "accuracy_updated_at"}

	t.Run("pages newest first", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow("fcst_b", time.Now(), []byte(`{}`), nil, nil).
			AddRow("fcst_a", time.Now().Add(-time.Hour), []byte(`{}`), nil, nil)

		mock.ExpectQuery(`SELECT (.+) FROM forecast_history ORDER BY generated_at DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 5).
			WillReturnRows(rows)

		records, err := repo.ListForecasts(context.Background(), 10, 5)
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "fcst_b", records[0].ForecastID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-positive limit uses default", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM forecast_history ORDER BY generated_at DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(columns))

		records, err := repo.ListForecasts(context.Background(), 0, -3)
		assert.NoError(t, err)
		assert.Empty(t, records)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestForecastRepo_UpdateAccuracy(t *testing.T) {
	repo, mock, cleanup := newForecastRepo(t)
	defer cleanup()

	updatedAt := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("updates the stored score", func(t *testing.T) {
		mock.ExpectExec(`UPDATE forecast_history SET accuracy_score = \$1, accuracy_updated_at = \$2 WHERE forecast_id = \$3`).
			WithArgs(0.91, updatedAt, "fcst_2025_06_01_ab12cd34").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateAccuracy(context.Background(), "fcst_2025_06_01_ab12cd34", 0.91, updatedAt)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown forecast maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE forecast_history SET accuracy_score = \$1, accuracy_updated_at = \$2 WHERE forecast_id = \$3`).
			WithArgs(0.91, updatedAt, "fcst_missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateAccuracy(context.Background(), "fcst_missing", 0.91, updatedAt)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestForecastRepo_ListActiveAlerts(t *testing.T) {
	repo, mock, cleanup := newForecastRepo(t)
	defer cleanup()

	columns := []string{"id", "forecast_id", "category", "severity", "predicted_date", "status", "created_at"}

	t.Run("filters on active status only", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(uuid.New(), "fcst_a", "General Ordnance", "medium", "2025-07-16", "active", time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM forecast_alerts WHERE status = \$1 ORDER BY created_at DESC`).
			WithArgs(models.AlertStatusActive).
			WillReturnRows(rows)

		alerts, err := repo.ListActiveAlerts(context.Background(), nil, nil)
		assert.NoError(t, err)
		assert.Len(t, alerts, 1)
		assert.Equal(t, models.SeverityMedium, alerts[0].Severity)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies severity and category filters", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM forecast_alerts WHERE status = \$1 AND severity = \$2 AND category = \$3 ORDER BY created_at DESC`).
			WithArgs(models.AlertStatusActive, models.SeverityHigh, "Missile").
			WillReturnRows(sqlmock.NewRows(columns))

		severity := models.SeverityHigh
		category := "Missile"
		alerts, err := repo.ListActiveAlerts(context.Background(), &severity, &category)
		assert.NoError(t, err)
		assert.Empty(t, alerts)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
