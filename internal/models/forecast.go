package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// RiskLevel grades forecast and scenario risk.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// AlertSeverity grades critical alerts.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// UsageRecord is one historical consumption data point.
type UsageRecord struct {
	Date          string   `json:"date"`
	Category      Category `json:"category"`
	QuantityUsed  int64    `json:"quantity_used"`
	OperationType string   `json:"operation_type"`
	Location      string   `json:"location"`
}

// ExerciseIntensity grades a scheduled exercise.
type ExerciseIntensity string

const (
	IntensityLow      ExerciseIntensity = "low"
	IntensityMedium   ExerciseIntensity = "medium"
	IntensityHigh     ExerciseIntensity = "high"
	IntensityCritical ExerciseIntensity = "critical"
)

// ExerciseEvent is a scheduled exercise that will draw down inventory.
type ExerciseEvent struct {
	Name               string            `json:"name"`
	StartDate          string            `json:"start_date"`
	EndDate            string            `json:"end_date"`
	Intensity          ExerciseIntensity `json:"intensity"`
	ParticipatingUnits []string          `json:"participating_units"`
}

// ReadinessProjection is the projected readiness at a horizon.
type ReadinessProjection struct {
	Days               int        `json:"days"`
	Readiness          float64    `json:"readiness"`
	ConfidenceInterval [2]float64 `json:"confidence_interval"`
	RiskLevel          RiskLevel  `json:"risk_level"`
}

// CriticalAlert flags a projected shortage.
type CriticalAlert struct {
	Category             string        `json:"category"`
	ExpectedShortageDate string        `json:"expected_shortage_date"`
	Severity             AlertSeverity `json:"severity"`
	ImpactedOperations   []string      `json:"impacted_operations"`
	CurrentStockLevel    int64         `json:"current_stock_level"`
	ProjectedNeed        int64         `json:"projected_need"`
}

// ProcurementRecommendation advises a purchase to preserve readiness.
type ProcurementRecommendation struct {
	Priority            string           `json:"priority"`
	Category            string           `json:"category"`
	RecommendedQuantity int64            `json:"recommended_quantity"`
	Deadline            string           `json:"deadline"`
	Rationale           string           `json:"rationale"`
	SupplierLeadTime    int              `json:"supplier_lead_time"`
	EstimatedCost       *decimal.Decimal `json:"estimated_cost,omitempty"`
}

// MitigationStrategy is a proposed action against an identified risk.
type MitigationStrategy struct {
	Strategy           string   `json:"strategy"`
	Effectiveness      float64  `json:"effectiveness"`
	ImplementationTime int      `json:"implementation_time"`
	Impact             string   `json:"impact"`
	ItemsAffected      []string `json:"items_affected"`
}

// ConfidenceMetrics qualifies how much to trust a forecast.
type ConfidenceMetrics struct {
	ModelAccuracy       float64 `json:"model_accuracy"`
	DataQualityScore    float64 `json:"data_quality_score"`
	ForecastReliability string  `json:"forecast_reliability"`
}

// TimeframeProjections groups the current readiness with its projections.
type TimeframeProjections struct {
	CurrentReadiness float64               `json:"current_readiness"`
	Projections      []ReadinessProjection `json:"projections"`
}

// ForecastResult is the full output of a forecast generation.
type ForecastResult struct {
	ForecastID           string                      `json:"forecast_id"`
	GeneratedAt          time.Time                   `json:"generated_at"`
	Timeframe            TimeframeProjections        `json:"timeframe"`
	CriticalAlerts       []CriticalAlert             `json:"critical_alerts"`
	Procurement          []ProcurementRecommendation `json:"procurement_recommendations"`
	MitigationStrategies []MitigationStrategy        `json:"mitigation_strategies"`
	Confidence           ConfidenceMetrics           `json:"confidence_metrics"`
	GeneratedAs          string                      `json:"generated_as"`
}

// ForecastRecord is the persisted form of a generated forecast. The full
// ForecastResult is stored as JSONB; accuracy fields are filled in later
// when actual readiness data comes back.
type ForecastRecord struct {
	ForecastID        string         `db:"forecast_id"`
	GeneratedAt       time.Time      `db:"generated_at"`
	Result            types.JSONText `db:"result"`
	AccuracyScore     *float64       `db:"accuracy_score"`
	AccuracyUpdatedAt *time.Time     `db:"accuracy_updated_at"`
}

// ForecastSummary is the listing view of a stored forecast.
type ForecastSummary struct {
	ForecastID          string    `json:"forecast_id"`
	GeneratedAt         time.Time `json:"generated_at"`
	CurrentReadiness    float64   `json:"current_readiness"`
	ProjectedReadiness  *float64  `json:"projected_readiness_90d"`
	CriticalAlertsCount int       `json:"critical_alerts_count"`
	ConfidenceScore     float64   `json:"confidence_score"`
	AccuracyScore       *float64  `json:"accuracy_score,omitempty"`
}

// ForecastAlert is a persisted shortage alert raised by a forecast.
type ForecastAlert struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	ForecastID    string        `db:"forecast_id" json:"forecast_id"`
	Category      string        `db:"category" json:"category"`
	Severity      AlertSeverity `db:"severity" json:"severity"`
	PredictedDate string        `db:"predicted_date" json:"predicted_date"`
	Status        string        `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

// AlertStatusActive marks alerts that have not been resolved or superseded.
const AlertStatusActive = "active"

// ForecastAccuracy reports the scored accuracy of a past forecast.
type ForecastAccuracy struct {
	ForecastID    string    `json:"forecast_id"`
	AccuracyScore float64   `json:"accuracy_score"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ConsumptionPattern summarises historical consumption behaviour.
type ConsumptionPattern struct {
	BaseConsumptionRate float64  `json:"base_consumption_rate"`
	TrendDirection      string   `json:"trend_direction"`
	Volatility          float64  `json:"volatility"`
	AnomalyFlags        []string `json:"anomaly_flags"`
}

// ConsumptionProjection projects consumption over a horizon.
type ConsumptionProjection struct {
	ExpectedConsumption float64    `json:"expected_consumption"`
	ConfidenceRange     [2]float64 `json:"confidence_range"`
	RiskFactors         []string   `json:"risk_factors"`
}

// ScenarioParameters define a what-if adjustment applied to a base forecast.
type ScenarioParameters struct {
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	ReadinessImpact float64 `json:"readiness_impact"`
}

// ScenarioResult compares a scenario against the base forecast.
type ScenarioResult struct {
	ScenarioName       string                `json:"scenario_name"`
	Description        string                `json:"description,omitempty"`
	BaseReadiness      float64               `json:"base_readiness"`
	ScenarioReadiness  float64               `json:"scenario_readiness"`
	ReadinessImpact    float64               `json:"readiness_impact"`
	OverallRisk        string                `json:"overall_risk"`
	TimelineComparison []ReadinessProjection `json:"timeline_comparison"`
}
