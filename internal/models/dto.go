package models

import (
	"github.com/google/uuid"
)

// CreateItemRequest represents a request to add an ordnance item.
type CreateItemRequest struct {
	Category        string  `json:"category" validate:"required"`
	Name            string  `json:"name" validate:"required,max=200"`
	Quantity        int64   `json:"quantity" validate:"required,min=1"`
	Condition       string  `json:"condition" validate:"required,oneof=New Serviceable Damage"`
	Depot           *string `json:"depot,omitempty" validate:"omitempty,max=100"`
	Ship            *string `json:"ship,omitempty" validate:"omitempty,max=100"`
	BatchNumber     string  `json:"batch_number" validate:"required,max=50"`
	ManufactureDate *string `json:"manufacture_date,omitempty"`
	ExpiryDate      *string `json:"expiry_date,omitempty"`
}

// UpdateItemRequest represents an in-place edit of an existing item.
type UpdateItemRequest struct {
	Quantity  *int64  `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Condition *string `json:"condition,omitempty" validate:"omitempty,oneof=New Serviceable Damage"`
	Depot     *string `json:"depot,omitempty" validate:"omitempty,max=100"`
	Ship      *string `json:"ship,omitempty" validate:"omitempty,max=100"`
}

// ItemListResponse is the envelope for inventory listings.
type ItemListResponse struct {
	Items []OrdnanceItem `json:"items"`
	Total int            `json:"total"`
}

// TransferRequest represents a request to move quantity between holders.
type TransferRequest struct {
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	ToHolder string    `json:"to_holder" validate:"required,max=100"`
	ToShip   bool      `json:"to_ship"`
	Quantity int64     `json:"quantity" validate:"required,min=1"`
	Reason   *string   `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// TransferListResponse is the envelope for transfer listings.
type TransferListResponse struct {
	Transfers []Transfer `json:"transfers"`
	Total     int        `json:"total"`
}

// GenerateRecommendationRequest represents a mission recommendation request.
// MaxRetries is optional; the orchestrator default applies when omitted.
type GenerateRecommendationRequest struct {
	MissionType         string   `json:"mission_type" validate:"required"`
	DurationDays        int      `json:"duration_days" validate:"required,min=1,max=365"`
	ThreatLevel         string   `json:"threat_level" validate:"required,oneof=Low Medium High Critical"`
	SelectedShips       []string `json:"selected_ships" validate:"required,min=1,dive,required"`
	Weather             string   `json:"weather" validate:"required,oneof=Clear Cloudy Rain 'Rough Seas' Monsoon Storm"`
	OperationalArea     string   `json:"operational_area" validate:"required,max=200"`
	SpecialRequirements []string `json:"special_requirements,omitempty" validate:"omitempty,dive,max=200"`
	MaxRetries          *int     `json:"max_retries,omitempty" validate:"omitempty,min=0,max=5"`
}

// Params converts the validated request into MissionParams.
func (r *GenerateRecommendationRequest) Params() *MissionParams {
	return &MissionParams{
		MissionType:         MissionType(r.MissionType),
		DurationDays:        r.DurationDays,
		ThreatLevel:         ThreatLevel(r.ThreatLevel),
		SelectedShips:       r.SelectedShips,
		Weather:             WeatherCondition(r.Weather),
		OperationalArea:     r.OperationalArea,
		SpecialRequirements: r.SpecialRequirements,
	}
}

// GenerateForecastRequest represents a readiness forecast request.
type GenerateForecastRequest struct {
	HorizonDays int             `json:"horizon_days,omitempty" validate:"omitempty,min=30,max=365"`
	UsageTrends []UsageRecord   `json:"usage_trends,omitempty" validate:"omitempty,dive"`
	Exercises   []ExerciseEvent `json:"scheduled_exercises,omitempty" validate:"omitempty,dive"`
}

// RecordAccuracyRequest carries observed readiness keyed by horizon days,
// used to score a stored forecast against what actually happened.
type RecordAccuracyRequest struct {
	ActualReadiness map[int]float64 `json:"actual_readiness" validate:"required,min=1"`
}

// ForecastListResponse is the envelope for forecast history listings.
type ForecastListResponse struct {
	Forecasts []ForecastSummary `json:"forecasts"`
	Total     int               `json:"total"`
}

// ScenarioAnalysisRequest asks for what-if analysis against a base forecast.
type ScenarioAnalysisRequest struct {
	Scenarios []ScenarioParameters `json:"scenarios" validate:"required,min=1,dive"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
