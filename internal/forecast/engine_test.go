package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
}

func TestGenerate_LinearDeclineAcrossHorizons(t *testing.T) {
	engine := NewEngine(fixedClock)
	result := engine.Generate(90, 90)

	require.Len(t, result.Timeframe.Projections, 3)
	assert.Equal(t, 90.0, result.Timeframe.CurrentReadiness)

	// 0.5 points per month.
	assert.InDelta(t, 89.5, result.Timeframe.Projections[0].Readiness, 1e-9)
	assert.InDelta(t, 89.0, result.Timeframe.Projections[1].Readiness, 1e-9)
	assert.InDelta(t, 88.5, result.Timeframe.Projections[2].Readiness, 1e-9)

	for _, p := range result.Timeframe.Projections {
		assert.InDelta(t, p.Readiness-5, p.ConfidenceInterval[0], 1e-9)
		assert.InDelta(t, p.Readiness+5, p.ConfidenceInterval[1], 1e-9)
		assert.Equal(t, models.RiskLow, p.RiskLevel)
	}
}

func TestGenerate_HorizonCapsProjections(t *testing.T) {
	engine := NewEngine(fixedClock)

	result := engine.Generate(85, 30)
	require.Len(t, result.Timeframe.Projections, 1)
	assert.Equal(t, 30, result.Timeframe.Projections[0].Days)

	result = engine.Generate(85, 0)
	assert.Len(t, result.Timeframe.Projections, 3)
}

func TestRiskLevelThresholds(t *testing.T) {
	tests := []struct {
		readiness float64
		expected  models.RiskLevel
	}{
		{49.9, models.RiskCritical},
		{50, models.RiskHigh},
		{64.9, models.RiskHigh},
		{65, models.RiskMedium},
		{79.9, models.RiskMedium},
		{80, models.RiskLow},
		{100, models.RiskLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, RiskLevelFor(tt.readiness), "readiness %.1f", tt.readiness)
	}
}

func TestGenerate_AlertsBelowSeventy(t *testing.T) {
	engine := NewEngine(fixedClock)

	healthy := engine.Generate(90, 90)
	assert.Empty(t, healthy.CriticalAlerts)

	low := engine.Generate(68, 90)
	require.Len(t, low.CriticalAlerts, 1)
	alert := low.CriticalAlerts[0]
	assert.Equal(t, models.SeverityMedium, alert.Severity)
	assert.Equal(t, "2025-07-16", alert.ExpectedShortageDate)
	assert.Equal(t, int64(68), alert.CurrentStockLevel)
}

func TestGenerate_ProcurementBelowEighty(t *testing.T) {
	engine := NewEngine(fixedClock)

	assert.Empty(t, engine.Generate(85, 90).Procurement)

	result := engine.Generate(72, 90)
	require.Len(t, result.Procurement, 1)
	rec := result.Procurement[0]
	assert.Equal(t, "high", rec.Priority)
	assert.Equal(t, int64(100), rec.RecommendedQuantity)
	assert.Equal(t, "2025-07-01", rec.Deadline)
	assert.Equal(t, 30, rec.SupplierLeadTime)
	require.NotNil(t, rec.EstimatedCost)
	assert.Equal(t, "125000", rec.EstimatedCost.String())
}

func TestGenerate_ConfidenceAndProvenance(t *testing.T) {
	engine := NewEngine(fixedClock)
	result := engine.Generate(75, 90)

	assert.Equal(t, 0.70, result.Confidence.ModelAccuracy)
	assert.Equal(t, 0.65, result.Confidence.DataQualityScore)
	assert.Equal(t, "medium", result.Confidence.ForecastReliability)
	assert.Equal(t, "rule_based", result.GeneratedAs)
	assert.Regexp(t, `^fcst_2025_06_01_[0-9a-f]{8}$`, result.ForecastID)
	assert.NotEmpty(t, result.MitigationStrategies)
}

func TestGenerate_ReadinessNeverNegative(t *testing.T) {
	engine := NewEngine(fixedClock)
	result := engine.Generate(0.5, 90)

	for _, p := range result.Timeframe.Projections {
		assert.GreaterOrEqual(t, p.Readiness, 0.0)
		assert.GreaterOrEqual(t, p.ConfidenceInterval[0], 0.0)
	}
}
