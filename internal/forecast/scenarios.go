package forecast

import (
	"math"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// ApplyScenarios evaluates each what-if scenario against a base forecast by
// shifting every projection by the scenario's readiness impact and regrading
// risk at the shifted levels.
func ApplyScenarios(base *models.ForecastResult, scenarios []models.ScenarioParameters) []models.ScenarioResult {
	results := make([]models.ScenarioResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		baseReadiness := base.Timeframe.CurrentReadiness
		shifted := clampReadiness(baseReadiness + scenario.ReadinessImpact)

		timeline := make([]models.ReadinessProjection, 0, len(base.Timeframe.Projections))
		worst := RiskLevelFor(shifted)
		for _, projection := range base.Timeframe.Projections {
			readiness := clampReadiness(projection.Readiness + scenario.ReadinessImpact)
			risk := RiskLevelFor(readiness)
			if riskRank(risk) > riskRank(worst) {
				worst = risk
			}

			timeline = append(timeline, models.ReadinessProjection{
				Days:      projection.Days,
				Readiness: readiness,
				ConfidenceInterval: [2]float64{
					clampReadiness(readiness - confidenceMargin),
					clampReadiness(readiness + confidenceMargin),
				},
				RiskLevel: risk,
			})
		}

		results = append(results, models.ScenarioResult{
			ScenarioName:       scenario.Name,
			Description:        scenario.Description,
			BaseReadiness:      baseReadiness,
			ScenarioReadiness:  shifted,
			ReadinessImpact:    scenario.ReadinessImpact,
			OverallRisk:        string(worst),
			TimelineComparison: timeline,
		})
	}

	return results
}

func clampReadiness(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func riskRank(level models.RiskLevel) int {
	switch level {
	case models.RiskCritical:
		return 3
	case models.RiskHigh:
		return 2
	case models.RiskMedium:
		return 1
	default:
		return 0
	}
}
