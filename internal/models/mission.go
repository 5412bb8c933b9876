package models

import (
	"time"
)

// MissionType enumerates the supported mission profiles.
type MissionType string

const (
	MissionCoastalPatrol       MissionType = "Coastal Patrol"
	MissionAntiSubmarine       MissionType = "Anti-Submarine Warfare"
	MissionSurfaceWarfare      MissionType = "Surface Warfare"
	MissionMineCountermeasures MissionType = "Mine Countermeasures"
	MissionEscortOperations    MissionType = "Escort Operations"
	MissionMaritimeInterdict   MissionType = "Maritime Interdiction"
	MissionTrainingExercise    MissionType = "Training Exercise"
)

// MissionTypes lists every supported mission type.
var MissionTypes = []MissionType{
	MissionCoastalPatrol,
	MissionAntiSubmarine,
	MissionSurfaceWarfare,
	MissionMineCountermeasures,
	MissionEscortOperations,
	MissionMaritimeInterdict,
	MissionTrainingExercise,
}

// ThreatLevel expresses the expected opposition for a mission.
type ThreatLevel string

const (
	ThreatLow      ThreatLevel = "Low"
	ThreatMedium   ThreatLevel = "Medium"
	ThreatHigh     ThreatLevel = "High"
	ThreatCritical ThreatLevel = "Critical"
)

// WeatherCondition enumerates forecast weather over the operational area.
type WeatherCondition string

const (
	WeatherClear     WeatherCondition = "Clear"
	WeatherCloudy    WeatherCondition = "Cloudy"
	WeatherRain      WeatherCondition = "Rain"
	WeatherRoughSeas WeatherCondition = "Rough Seas"
	WeatherMonsoon   WeatherCondition = "Monsoon"
	WeatherStorm     WeatherCondition = "Storm"
)

// MissionParams are the inputs to a recommendation request.
type MissionParams struct {
	MissionType         MissionType      `json:"mission_type"`
	DurationDays        int              `json:"duration_days"`
	ThreatLevel         ThreatLevel      `json:"threat_level"`
	SelectedShips       []string         `json:"selected_ships"`
	Weather             WeatherCondition `json:"weather"`
	OperationalArea     string           `json:"operational_area"`
	SpecialRequirements []string         `json:"special_requirements,omitempty"`
}

// TemplateItem is one primary ordnance line in a mission template.
type TemplateItem struct {
	Name         string `json:"name"`
	BaseQuantity int64  `json:"base_quantity"`
	Priority     string `json:"priority"`
}

// BackupItem is one backup ordnance line in a mission template. Backup
// quantities are never scaled.
type BackupItem struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason"`
}

// MissionTemplate is the immutable baseline loadout for one mission type.
type MissionTemplate struct {
	MissionType    MissionType    `json:"mission_type"`
	Primary        []TemplateItem `json:"primary"`
	Backup         []BackupItem   `json:"backup"`
	RiskLevel      string         `json:"risk_level"`
	ComplexityBase int            `json:"complexity_base"`
}

// RecommendationSource labels who produced a recommendation.
type RecommendationSource string

const (
	SourceAIService    RecommendationSource = "ai_service"
	SourceFallbackMock RecommendationSource = "fallback_mock"
)

// MissionAnalysis summarises the computed difficulty of the mission.
type MissionAnalysis struct {
	ComplexityScore     int    `json:"complexity_score"`
	RiskLevel           string `json:"risk_level"`
	ConsumptionEstimate string `json:"consumption_estimate"`
}

// PrimaryRecommendation is one scaled ordnance line with its per-ship
// allocation.
type PrimaryRecommendation struct {
	Name          string           `json:"name"`
	Quantity      int64            `json:"quantity"`
	Allocation    map[string]int64 `json:"allocation"`
	Confidence    int              `json:"confidence"`
	Justification string           `json:"justification"`
	Priority      string           `json:"priority"`
}

// RiskAssessment reports shortages and mitigations for the recommendation.
type RiskAssessment struct {
	Shortages   []string `json:"shortages"`
	Mitigations []string `json:"mitigations"`
	OverallRisk string   `json:"overall_risk"`
}

// DistributionStrategy describes how the loadout is spread across the
// selected ships.
type DistributionStrategy struct {
	PrimaryShip       string   `json:"primary_ship"`
	SupportShips      []string `json:"support_ships"`
	ReserveAllocation string   `json:"reserve_allocation"`
}

// RecommendationMetadata carries provenance for a recommendation.
type RecommendationMetadata struct {
	GeneratedAs   RecommendationSource `json:"generated_as"`
	GeneratedAt   time.Time            `json:"generated_at"`
	ServiceStatus string               `json:"service_status"`
	Confidence    *int                 `json:"confidence,omitempty"`
}

// AIRecommendation is the full output envelope of a recommendation request.
// It is constructed once per request and never mutated afterwards.
type AIRecommendation struct {
	MissionAnalysis MissionAnalysis         `json:"mission_analysis"`
	Primary         []PrimaryRecommendation `json:"primary_recommendations"`
	Backup          []BackupItem            `json:"backup_recommendations"`
	Risk            RiskAssessment          `json:"risk_assessment"`
	Distribution    DistributionStrategy    `json:"distribution_strategy"`
	Metadata        RecommendationMetadata  `json:"metadata"`
}

// ServiceStatus is the result of the recommendation provider health probe.
type ServiceStatus string

const (
	StatusAvailable   ServiceStatus = "available"
	StatusDegraded    ServiceStatus = "degraded"
	StatusUnavailable ServiceStatus = "unavailable"
)
