// Package forecast projects ordnance readiness over 30/60/90 day horizons
// using a conservative rule-based model, and evaluates what-if scenarios
// against a base forecast.
package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

const (
	// monthlyDecline is the assumed readiness decline per month without
	// intervention, in percentage points.
	monthlyDecline = 0.5

	// confidenceMargin is the half-width of projection confidence intervals.
	confidenceMargin = 5.0

	// DefaultHorizonDays caps projections when the request does not set one.
	DefaultHorizonDays = 90
)

// horizons are the projection checkpoints in days.
var horizons = []int{30, 60, 90}

// Engine generates rule-based readiness forecasts.
type Engine struct {
	now func() time.Time
}

// NewEngine creates a forecast engine with an injectable clock.
func NewEngine(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Generate projects readiness from the current level over the horizon and
// derives alerts, procurement advice and mitigations from the projections.
func (e *Engine) Generate(currentReadiness float64, horizonDays int) *models.ForecastResult {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	generatedAt := e.now().UTC()

	projections := e.project(currentReadiness, horizonDays)

	result := &models.ForecastResult{
		ForecastID:  forecastID(generatedAt),
		GeneratedAt: generatedAt,
		Timeframe: models.TimeframeProjections{
			CurrentReadiness: currentReadiness,
			Projections:      projections,
		},
		CriticalAlerts:       e.alerts(currentReadiness, projections, generatedAt),
		Procurement:          e.procurement(currentReadiness, generatedAt),
		MitigationStrategies: standingMitigations(),
		Confidence: models.ConfidenceMetrics{
			ModelAccuracy:       0.70,
			DataQualityScore:    0.65,
			ForecastReliability: "medium",
		},
		GeneratedAs: "rule_based",
	}

	return result
}

// project applies the linear decline model at each horizon checkpoint.
func (e *Engine) project(current float64, horizonDays int) []models.ReadinessProjection {
	projections := make([]models.ReadinessProjection, 0, len(horizons))
	for _, days := range horizons {
		if days > horizonDays {
			continue
		}

		months := float64(days) / 30
		readiness := math.Max(0, current-monthlyDecline*months)

		projections = append(projections, models.ReadinessProjection{
			Days:      days,
			Readiness: readiness,
			ConfidenceInterval: [2]float64{
				math.Max(0, readiness-confidenceMargin),
				math.Min(100, readiness+confidenceMargin),
			},
			RiskLevel: RiskLevelFor(readiness),
		})
	}
	return projections
}

// RiskLevelFor grades projected readiness: below 50 critical, below 65
// high, below 80 medium.
func RiskLevelFor(readiness float64) models.RiskLevel {
	switch {
	case readiness < 50:
		return models.RiskCritical
	case readiness < 65:
		return models.RiskHigh
	case readiness < 80:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// alerts raises a shortage alert when any projection drops below 70.
func (e *Engine) alerts(current float64, projections []models.ReadinessProjection, generatedAt time.Time) []models.CriticalAlert {
	low := false
	for _, p := range projections {
		if p.Readiness < 70 {
			low = true
			break
		}
	}
	if !low {
		return []models.CriticalAlert{}
	}

	return []models.CriticalAlert{{
		Category:             "General Ordnance",
		ExpectedShortageDate: generatedAt.AddDate(0, 0, 45).Format("2006-01-02"),
		Severity:             models.SeverityMedium,
		ImpactedOperations:   []string{"Standard Operations"},
		CurrentStockLevel:    int64(current),
		ProjectedNeed:        80,
	}}
}

// procurement advises restocking when current readiness is under 80.
func (e *Engine) procurement(current float64, generatedAt time.Time) []models.ProcurementRecommendation {
	if current >= 80 {
		return []models.ProcurementRecommendation{}
	}

	cost := decimal.NewFromInt(100).Mul(decimal.NewFromFloat(1250.00))
	return []models.ProcurementRecommendation{{
		Priority:            "high",
		Category:            "Critical Ordnance",
		RecommendedQuantity: 100,
		Deadline:            generatedAt.AddDate(0, 0, 30).Format("2006-01-02"),
		Rationale:           "Restock to hold readiness above 80%",
		SupplierLeadTime:    30,
		EstimatedCost:       &cost,
	}}
}

func standingMitigations() []models.MitigationStrategy {
	return []models.MitigationStrategy{{
		Strategy:           "Inventory Optimization",
		Effectiveness:      0.7,
		ImplementationTime: 14,
		Impact:             "Improve readiness by 5-10%",
		ItemsAffected:      []string{"All Categories"},
	}}
}

func forecastID(t time.Time) string {
	return fmt.Sprintf("fcst_%s_%s", t.Format("2006_01_02"), uuid.NewString()[:8])
}
