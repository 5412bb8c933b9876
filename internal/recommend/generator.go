package recommend

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

const (
	// mockConfidence is the fixed per-line confidence emitted by the
	// deterministic generator.
	mockConfidence = 75

	complexityMin = 10
	complexityMax = 95
)

var threatMultipliers = map[models.ThreatLevel]float64{
	models.ThreatLow:      1,
	models.ThreatMedium:   1.5,
	models.ThreatHigh:     2,
	models.ThreatCritical: 3,
}

var threatBonuses = map[models.ThreatLevel]int{
	models.ThreatLow:      0,
	models.ThreatMedium:   15,
	models.ThreatHigh:     30,
	models.ThreatCritical: 45,
}

var weatherBonuses = map[models.WeatherCondition]int{
	models.WeatherClear:     0,
	models.WeatherCloudy:    5,
	models.WeatherRain:      10,
	models.WeatherRoughSeas: 15,
	models.WeatherMonsoon:   20,
	models.WeatherStorm:     25,
}

// Generator produces loadout recommendations by deterministic scaling of
// mission templates. It backs both the fallback path and the payload of the
// simulated remote provider, so identical MissionParams always yield
// identical quantities, allocations and scores.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a generator with an injectable clock (only the
// request timestamp in the metadata varies between invocations).
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Generate builds a full recommendation envelope from mission parameters.
// Callers must have validated the parameters; an unknown mission type falls
// back to the default template rather than failing.
func (g *Generator) Generate(params *models.MissionParams) *models.AIRecommendation {
	tpl := TemplateFor(params.MissionType)

	threat := threatMultipliers[params.ThreatLevel]
	if threat == 0 {
		threat = 1
	}
	duration := durationFactor(params.DurationDays)
	weather := weatherFactor(params.Weather)

	primary := make([]models.PrimaryRecommendation, 0, len(tpl.Primary))
	var totalQuantity int64
	for _, line := range tpl.Primary {
		adjusted := int64(math.Ceil(float64(line.BaseQuantity) * threat * duration * weather))
		totalQuantity += adjusted
		primary = append(primary, models.PrimaryRecommendation{
			Name:          line.Name,
			Quantity:      adjusted,
			Allocation:    DistributeAcrossShips(adjusted, params.SelectedShips),
			Confidence:    mockConfidence,
			Justification: justification(line, adjusted, threat, duration, weather),
			Priority:      line.Priority,
		})
	}

	backup := make([]models.BackupItem, len(tpl.Backup))
	copy(backup, tpl.Backup)

	return &models.AIRecommendation{
		MissionAnalysis: models.MissionAnalysis{
			ComplexityScore:     complexityScore(tpl, params),
			RiskLevel:           riskLevel(tpl, params.ThreatLevel),
			ConsumptionEstimate: consumptionEstimate(totalQuantity, params.DurationDays),
		},
		Primary:      primary,
		Backup:       backup,
		Risk:         riskAssessment(tpl, params),
		Distribution: distributionStrategy(params),
		Metadata: models.RecommendationMetadata{
			GeneratedAs: models.SourceFallbackMock,
			GeneratedAt: g.now().UTC(),
		},
	}
}

// durationFactor scales baselines that assume a one-week mission. Durations
// under a week never scale below the baseline.
func durationFactor(days int) float64 {
	return math.Max(1, float64(days)/7)
}

func weatherFactor(weather models.WeatherCondition) float64 {
	if weather == models.WeatherStorm {
		return 1.2
	}
	return 1
}

func justification(line models.TemplateItem, adjusted int64, threat, duration, weather float64) string {
	return fmt.Sprintf(
		"Baseline %d %s scaled by threat x%.1f, duration x%.2f, weather x%.1f to %d units",
		line.BaseQuantity, line.Name, threat, duration, weather, adjusted,
	)
}

func complexityScore(tpl models.MissionTemplate, params *models.MissionParams) int {
	score := tpl.ComplexityBase +
		threatBonuses[params.ThreatLevel] +
		min(30, 2*params.DurationDays) +
		min(15, 3*len(params.SelectedShips)) +
		weatherBonuses[params.Weather]

	if score < complexityMin {
		return complexityMin
	}
	if score > complexityMax {
		return complexityMax
	}
	return score
}

// riskLevel raises the template risk one notch under critical threat.
func riskLevel(tpl models.MissionTemplate, threat models.ThreatLevel) string {
	if threat != models.ThreatCritical {
		return tpl.RiskLevel
	}
	switch tpl.RiskLevel {
	case "low":
		return "medium"
	case "medium":
		return "high"
	default:
		return "critical"
	}
}

func consumptionEstimate(total int64, days int) string {
	perDay := float64(total) / float64(days)
	grade := "Low"
	switch {
	case perDay >= 100:
		grade = "High"
	case perDay >= 20:
		grade = "Moderate"
	}
	return fmt.Sprintf("%s: approximately %d units over %d days", grade, total, days)
}

func riskAssessment(tpl models.MissionTemplate, params *models.MissionParams) models.RiskAssessment {
	assessment := models.RiskAssessment{
		Shortages:   []string{},
		Mitigations: []string{"Stage replenishment stock at the supporting depot"},
		OverallRisk: riskLevel(tpl, params.ThreatLevel),
	}

	if params.ThreatLevel == models.ThreatHigh || params.ThreatLevel == models.ThreatCritical {
		assessment.Mitigations = append(assessment.Mitigations,
			"Pre-position emergency resupply for high-threat tasking")
	}
	if params.ThreatLevel == models.ThreatCritical {
		for _, line := range tpl.Primary {
			if line.Priority == "critical" {
				assessment.Shortages = append(assessment.Shortages, line.Name)
			}
		}
	}

	return assessment
}

func distributionStrategy(params *models.MissionParams) models.DistributionStrategy {
	strategy := models.DistributionStrategy{
		PrimaryShip:  "No ships selected",
		SupportShips: []string{},
		ReserveAllocation: fmt.Sprintf(
			"Reserve stock held at the depot nearest to %s",
			strings.TrimSpace(params.OperationalArea),
		),
	}
	if len(params.SelectedShips) > 0 {
		strategy.PrimaryShip = params.SelectedShips[0]
		strategy.SupportShips = params.SelectedShips[1:]
	}
	return strategy
}
