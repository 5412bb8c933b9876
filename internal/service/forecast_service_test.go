package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tldm-bits/ordnance-service/internal/forecast"
	"github.com/tldm-bits/ordnance-service/internal/models"
	"github.com/tldm-bits/ordnance-service/internal/repository"
)

func fixedForecastClock() time.Time {
	return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
}

// newForecastService wires a forecast service over an inventory holding the
// given missile count (target 100, weight 0.42) and the given history store.
func newForecastService(missiles int64, forecasts repository.ForecastRepository) ForecastService {
	ordnance := &repository.MockOrdnanceRepository{
		ListItemsFunc: func(ctx context.Context, category *models.Category) ([]models.OrdnanceItem, error) {
			return []models.OrdnanceItem{
				{Category: models.CategoryMissile, Quantity: missiles},
			}, nil
		},
	}
	inventory := NewInventoryService(newTestDeps(ordnance, &repository.MockTransferRepository{}))
	return NewForecastService(inventory, forecast.NewEngine(fixedForecastClock), forecasts, nil, testLogger())
}

func TestGenerateForecast_UsesCurrentReadiness(t *testing.T) {
	// 100 missiles and nothing else: overall = 0.42 x 100 = 42.
	svc := newForecastService(100, &repository.MockForecastRepository{})

	result, err := svc.GenerateForecast(context.Background(), &models.GenerateForecastRequest{HorizonDays: 90})
	require.NoError(t, err)

	assert.Equal(t, 42.0, result.Timeframe.CurrentReadiness)
	assert.Len(t, result.Timeframe.Projections, 3)
	assert.NotEmpty(t, result.CriticalAlerts, "readiness this low projects a shortage")
	assert.NotEmpty(t, result.Procurement)
}

func TestGenerateForecast_ConsumptionSharpensProcurement(t *testing.T) {
	svc := newForecastService(100, &repository.MockForecastRepository{})

	usage := make([]models.UsageRecord, 10)
	for i := range usage {
		usage[i] = models.UsageRecord{
			Date:         "2025-05-01",
			Category:     models.CategoryAmmunition,
			QuantityUsed: 50,
		}
	}

	result, err := svc.GenerateForecast(context.Background(), &models.GenerateForecastRequest{
		HorizonDays: 90,
		UsageTrends: usage,
	})
	require.NoError(t, err)

	// expected consumption 50/day x 90 days dwarfs the default quantity.
	require.NotEmpty(t, result.Procurement)
	assert.Equal(t, int64(4500), result.Procurement[0].RecommendedQuantity)
}

func TestGenerateForecast_StoresHistoryAndAlerts(t *testing.T) {
	var stored *models.ForecastRecord
	var storedAlerts []models.ForecastAlert
	forecasts := &repository.MockForecastRepository{
		CreateForecastFunc: func(ctx context.Context, record *models.ForecastRecord, alerts []models.ForecastAlert) error {
			stored = record
			storedAlerts = alerts
			return nil
		},
	}
	svc := newForecastService(100, forecasts)

	result, err := svc.GenerateForecast(context.Background(), &models.GenerateForecastRequest{HorizonDays: 90})
	require.NoError(t, err)

	require.NotNil(t, stored, "generated forecast should be persisted")
	assert.Equal(t, result.ForecastID, stored.ForecastID)
	assert.Equal(t, result.GeneratedAt, stored.GeneratedAt)

	var roundTripped models.ForecastResult
	require.NoError(t, json.Unmarshal(stored.Result, &roundTripped))
	assert.Equal(t, result.Timeframe, roundTripped.Timeframe)

	// readiness 42 raises one shortage alert, stored as active.
	require.Len(t, storedAlerts, 1)
	assert.Equal(t, result.ForecastID, storedAlerts[0].ForecastID)
	assert.Equal(t, models.AlertStatusActive, storedAlerts[0].Status)
	assert.Equal(t, models.SeverityMedium, storedAlerts[0].Severity)
}

func TestGenerateForecast_StorageFailureDoesNotFailGeneration(t *testing.T) {
	forecasts := &repository.MockForecastRepository{
		CreateForecastFunc: func(ctx context.Context, record *models.ForecastRecord, alerts []models.ForecastAlert) error {
			return assert.AnError
		},
	}
	svc := newForecastService(100, forecasts)

	result, err := svc.GenerateForecast(context.Background(), &models.GenerateForecastRequest{HorizonDays: 90})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ForecastID)
}

func storedForecastFixture(t *testing.T) *models.ForecastRecord {
	t.Helper()
	result := forecast.NewEngine(fixedForecastClock).Generate(42, 90)
	result.ForecastID = "fcst_2025_06_01_ab12cd34"

	payload, err := json.Marshal(result)
	require.NoError(t, err)

	return &models.ForecastRecord{
		ForecastID:  result.ForecastID,
		GeneratedAt: result.GeneratedAt,
		Result:      types.JSONText(payload),
	}
}

func TestGetForecast(t *testing.T) {
	t.Run("decodes the stored result", func(t *testing.T) {
		forecasts := &repository.MockForecastRepository{
			GetForecastFunc: func(ctx context.Context, forecastID string) (*models.ForecastRecord, error) {
				assert.Equal(t, "fcst_2025_06_01_ab12cd34", forecastID)
				return storedForecastFixture(t), nil
			},
		}
		svc := newForecastService(100, forecasts)

		result, err := svc.GetForecast(context.Background(), "fcst_2025_06_01_ab12cd34")
		require.NoError(t, err)
		assert.Equal(t, 42.0, result.Timeframe.CurrentReadiness)
		assert.Equal(t, "rule_based", result.GeneratedAs)
	})

	t.Run("propagates ErrNotFound", func(t *testing.T) {
		svc := newForecastService(100, &repository.MockForecastRepository{})

		_, err := svc.GetForecast(context.Background(), "fcst_missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestListForecasts_Summarises(t *testing.T) {
	score := 0.91
	record := storedForecastFixture(t)
	record.AccuracyScore = &score

	forecasts := &repository.MockForecastRepository{
		ListForecastsFunc: func(ctx context.Context, limit, offset int) ([]models.ForecastRecord, error) {
			assert.Equal(t, 20, limit)
			assert.Equal(t, 0, offset)
			return []models.ForecastRecord{*record}, nil
		},
	}
	svc := newForecastService(100, forecasts)

	summaries, err := svc.ListForecasts(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Equal(t, "fcst_2025_06_01_ab12cd34", summaries[0].ForecastID)
	assert.Equal(t, 42.0, summaries[0].CurrentReadiness)
	require.NotNil(t, summaries[0].ProjectedReadiness)
	assert.Equal(t, 40.5, *summaries[0].ProjectedReadiness)
	assert.Equal(t, 1, summaries[0].CriticalAlertsCount)
	assert.Equal(t, 0.70, summaries[0].ConfidenceScore)
	require.NotNil(t, summaries[0].AccuracyScore)
	assert.Equal(t, 0.91, *summaries[0].AccuracyScore)
}

func TestRecordAccuracy(t *testing.T) {
	t.Run("scores against projections and persists", func(t *testing.T) {
		var persistedScore float64
		forecasts := &repository.MockForecastRepository{
			GetForecastFunc: func(ctx context.Context, forecastID string) (*models.ForecastRecord, error) {
				return storedForecastFixture(t), nil
			},
			UpdateAccuracyFunc: func(ctx context.Context, forecastID string, score float64, updatedAt time.Time) error {
				assert.Equal(t, "fcst_2025_06_01_ab12cd34", forecastID)
				persistedScore = score
				return nil
			},
		}
		svc := newForecastService(100, forecasts)

		// 90-day projection from 42 is 40.5; observing 45 gives a 10% error.
		accuracy, err := svc.RecordAccuracy(context.Background(), "fcst_2025_06_01_ab12cd34", &models.RecordAccuracyRequest{
			ActualReadiness: map[int]float64{90: 45.0},
		})
		require.NoError(t, err)

		assert.Equal(t, 0.9, accuracy.AccuracyScore)
		assert.Equal(t, 0.9, persistedScore)
		assert.False(t, accuracy.UpdatedAt.IsZero())
	})

	t.Run("horizons without projections score zero", func(t *testing.T) {
		forecasts := &repository.MockForecastRepository{
			GetForecastFunc: func(ctx context.Context, forecastID string) (*models.ForecastRecord, error) {
				return storedForecastFixture(t), nil
			},
		}
		svc := newForecastService(100, forecasts)

		accuracy, err := svc.RecordAccuracy(context.Background(), "fcst_2025_06_01_ab12cd34", &models.RecordAccuracyRequest{
			ActualReadiness: map[int]float64{7: 80.0},
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, accuracy.AccuracyScore)
	})

	t.Run("unknown forecast propagates ErrNotFound", func(t *testing.T) {
		svc := newForecastService(100, &repository.MockForecastRepository{})

		_, err := svc.RecordAccuracy(context.Background(), "fcst_missing", &models.RecordAccuracyRequest{
			ActualReadiness: map[int]float64{90: 45.0},
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestActiveAlerts_PassesFilters(t *testing.T) {
	forecasts := &repository.MockForecastRepository{
		ListActiveAlertsFunc: func(ctx context.Context, severity *models.AlertSeverity, category *string) ([]models.ForecastAlert, error) {
			require.NotNil(t, severity)
			assert.Equal(t, models.SeverityHigh, *severity)
			assert.Nil(t, category)
			return []models.ForecastAlert{{ForecastID: "fcst_a", Severity: models.SeverityHigh}}, nil
		},
	}
	svc := newForecastService(100, forecasts)

	severity := models.SeverityHigh
	alerts, err := svc.ActiveAlerts(context.Background(), &severity, nil)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "fcst_a", alerts[0].ForecastID)
}

func TestAnalyzeScenarios_AgainstFreshBase(t *testing.T) {
	svc := newForecastService(100, &repository.MockForecastRepository{})

	results, err := svc.AnalyzeScenarios(context.Background(), &models.ScenarioAnalysisRequest{
		Scenarios: []models.ScenarioParameters{
			{Name: "Extended Exercise", ReadinessImpact: -10},
			{Name: "Emergency Procurement", ReadinessImpact: 20},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 42.0, results[0].BaseReadiness)
	assert.Equal(t, 32.0, results[0].ScenarioReadiness)
	assert.Equal(t, 62.0, results[1].ScenarioReadiness)
}

func TestGenerateForecast_PropagatesReadinessErrors(t *testing.T) {
	ordnance := &repository.MockOrdnanceRepository{
		ListItemsFunc: func(ctx context.Context, category *models.Category) ([]models.OrdnanceItem, error) {
			return nil, assert.AnError
		},
	}
	inventory := NewInventoryService(newTestDeps(ordnance, &repository.MockTransferRepository{}))
	svc := NewForecastService(inventory, forecast.NewEngine(fixedForecastClock), &repository.MockForecastRepository{}, nil, testLogger())

	_, err := svc.GenerateForecast(context.Background(), &models.GenerateForecastRequest{})
	assert.ErrorIs(t, err, assert.AnError)
}
