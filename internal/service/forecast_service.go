package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/pkg/errors"

	"github.com/tldm-bits/ordnance-service/internal/forecast"
	"github.com/tldm-bits/ordnance-service/internal/models"
	"github.com/tldm-bits/ordnance-service/internal/repository"
	"github.com/tldm-bits/ordnance-service/pkg/metrics"
)

// forecastService implements ForecastService on top of the inventory
// readiness snapshot, the rule-based projection engine and the forecast
// history store
type forecastService struct {
	inventory InventoryService
	engine    *forecast.Engine
	forecasts repository.ForecastRepository
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewForecastService creates a new forecast service. metricsCollector may
// be nil.
func NewForecastService(inventory InventoryService, engine *forecast.Engine, forecasts repository.ForecastRepository, metricsCollector *metrics.Metrics, logger *slog.Logger) ForecastService {
	return &forecastService{
		inventory: inventory,
		engine:    engine,
		forecasts: forecasts,
		metrics:   metricsCollector,
		logger:    logger,
		now:       time.Now,
	}
}

// GenerateForecast projects current readiness over the requested horizon,
// folding historical usage and scheduled exercises into the risk factors.
// The result and its alerts are stored for later retrieval and accuracy
// scoring; a storage failure is logged but never fails the generation.
func (fs *forecastService) GenerateForecast(ctx context.Context, req *models.GenerateForecastRequest) (*models.ForecastResult, error) {
	snapshot, err := fs.inventory.GetReadiness(ctx)
	if err != nil {
		return nil, err
	}

	result := fs.engine.Generate(snapshot.Overall, req.HorizonDays)

	if len(req.UsageTrends) > 0 || len(req.Exercises) > 0 {
		pattern := forecast.AnalyzePattern(req.UsageTrends)
		projection := forecast.ProjectConsumption(pattern, req.HorizonDays, req.Exercises)

		// Heavy projected consumption sharpens the procurement advice.
		for i := range result.Procurement {
			if projection.ExpectedConsumption > float64(result.Procurement[i].RecommendedQuantity) {
				result.Procurement[i].RecommendedQuantity = int64(projection.ExpectedConsumption)
			}
		}
	}

	if err := fs.storeForecast(ctx, result); err != nil {
		fs.logger.Warn("Failed to store forecast history",
			"forecast_id", result.ForecastID, "error", err)
	}

	if fs.metrics != nil {
		fs.metrics.ForecastsTotal.Inc()
	}

	fs.logger.Info("forecast generated",
		"forecast_id", result.ForecastID,
		"current_readiness", snapshot.Overall,
		"horizon_days", req.HorizonDays)
	return result, nil
}

// GetForecast retrieves a previously generated forecast
func (fs *forecastService) GetForecast(ctx context.Context, forecastID string) (*models.ForecastResult, error) {
	record, err := fs.forecasts.GetForecast(ctx, forecastID)
	if err != nil {
		return nil, err
	}

	var result models.ForecastResult
	if err := json.Unmarshal(record.Result, &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode stored forecast")
	}
	return &result, nil
}

// ListForecasts summarises stored forecasts, newest first
func (fs *forecastService) ListForecasts(ctx context.Context, limit, offset int) ([]models.ForecastSummary, error) {
	records, err := fs.forecasts.ListForecasts(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ForecastSummary, 0, len(records))
	for _, record := range records {
		var result models.ForecastResult
		if err := json.Unmarshal(record.Result, &result); err != nil {
			return nil, errors.Wrapf(err, "failed to decode stored forecast %s", record.ForecastID)
		}

		summary := models.ForecastSummary{
			ForecastID:          record.ForecastID,
			GeneratedAt:         record.GeneratedAt,
			CurrentReadiness:    result.Timeframe.CurrentReadiness,
			CriticalAlertsCount: len(result.CriticalAlerts),
			ConfidenceScore:     result.Confidence.ModelAccuracy,
			AccuracyScore:       record.AccuracyScore,
		}
		if n := len(result.Timeframe.Projections); n > 0 {
			projected := result.Timeframe.Projections[n-1].Readiness
			summary.ProjectedReadiness = &projected
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// RecordAccuracy scores a stored forecast against observed readiness and
// persists the score
func (fs *forecastService) RecordAccuracy(ctx context.Context, forecastID string, req *models.RecordAccuracyRequest) (*models.ForecastAccuracy, error) {
	record, err := fs.forecasts.GetForecast(ctx, forecastID)
	if err != nil {
		return nil, err
	}

	var result models.ForecastResult
	if err := json.Unmarshal(record.Result, &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode stored forecast")
	}

	score := accuracyScore(&result, req.ActualReadiness)
	updatedAt := fs.now().UTC()
	if err := fs.forecasts.UpdateAccuracy(ctx, forecastID, score, updatedAt); err != nil {
		return nil, err
	}

	fs.logger.Info("forecast accuracy recorded",
		"forecast_id", forecastID, "accuracy_score", score)
	return &models.ForecastAccuracy{
		ForecastID:    forecastID,
		AccuracyScore: score,
		UpdatedAt:     updatedAt,
	}, nil
}

// ActiveAlerts lists unresolved alerts raised by stored forecasts
func (fs *forecastService) ActiveAlerts(ctx context.Context, severity *models.AlertSeverity, category *string) ([]models.ForecastAlert, error) {
	return fs.forecasts.ListActiveAlerts(ctx, severity, category)
}

// AnalyzeScenarios evaluates what-if scenarios against a fresh base forecast
func (fs *forecastService) AnalyzeScenarios(ctx context.Context, req *models.ScenarioAnalysisRequest) ([]models.ScenarioResult, error) {
	snapshot, err := fs.inventory.GetReadiness(ctx)
	if err != nil {
		return nil, err
	}

	base := fs.engine.Generate(snapshot.Overall, forecast.DefaultHorizonDays)
	return forecast.ApplyScenarios(base, req.Scenarios), nil
}

// storeForecast writes the forecast and its raised alerts to the history
// store
func (fs *forecastService) storeForecast(ctx context.Context, result *models.ForecastResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "failed to encode forecast")
	}

	record := &models.ForecastRecord{
		ForecastID:  result.ForecastID,
		GeneratedAt: result.GeneratedAt,
		Result:      types.JSONText(payload),
	}

	alerts := make([]models.ForecastAlert, 0, len(result.CriticalAlerts))
	for _, alert := range result.CriticalAlerts {
		alerts = append(alerts, models.ForecastAlert{
			ID:            uuid.New(),
			ForecastID:    result.ForecastID,
			Category:      alert.Category,
			Severity:      alert.Severity,
			PredictedDate: alert.ExpectedShortageDate,
			Status:        models.AlertStatusActive,
			CreatedAt:     result.GeneratedAt,
		})
	}

	return fs.forecasts.CreateForecast(ctx, record, alerts)
}

// accuracyScore converts the mean absolute percentage error between
// projected and observed readiness into a 0..1 score, rounded to three
// decimals. Horizons without a matching projection are skipped.
func accuracyScore(result *models.ForecastResult, actual map[int]float64) float64 {
	projected := make(map[int]float64, len(result.Timeframe.Projections))
	for _, p := range result.Timeframe.Projections {
		projected[p.Days] = p.Readiness
	}

	var errSum float64
	samples := 0
	for days, observed := range actual {
		predicted, ok := projected[days]
		if !ok || observed == 0 {
			continue
		}
		errSum += math.Abs(predicted-observed) / observed
		samples++
	}
	if samples == 0 {
		return 0
	}

	mape := errSum / float64(samples)
	return math.Round(math.Max(0, 1-mape)*1000) / 1000
}
