package forecast

import (
	"fmt"
	"math"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// intensityMultipliers scale projected consumption for scheduled exercises.
var intensityMultipliers = map[models.ExerciseIntensity]float64{
	models.IntensityLow:      1.2,
	models.IntensityMedium:   1.5,
	models.IntensityHigh:     2.0,
	models.IntensityCritical: 3.0,
}

// AnalyzePattern summarises historical usage: average daily draw, trend
// direction from first-half vs second-half means, volatility as the sample
// standard deviation, and 2-sigma outliers flagged as anomalies.
func AnalyzePattern(usage []models.UsageRecord) models.ConsumptionPattern {
	pattern := models.ConsumptionPattern{
		TrendDirection: "stable",
		AnomalyFlags:   []string{},
	}
	if len(usage) == 0 {
		return pattern
	}

	quantities := make([]float64, len(usage))
	var total float64
	for i, record := range usage {
		quantities[i] = float64(record.QuantityUsed)
		total += quantities[i]
	}
	mean := total / float64(len(quantities))
	pattern.BaseConsumptionRate = mean

	if len(quantities) >= 2 {
		pattern.Volatility = stdev(quantities, mean)
		pattern.TrendDirection = trendDirection(quantities)
	}

	threshold := 2 * pattern.Volatility
	if threshold > 0 {
		for _, record := range usage {
			if math.Abs(float64(record.QuantityUsed)-mean) > threshold {
				pattern.AnomalyFlags = append(pattern.AnomalyFlags,
					fmt.Sprintf("%s: %s used %d (outside 2-sigma band)",
						record.Date, record.Category, record.QuantityUsed))
			}
		}
	}

	return pattern
}

// ProjectConsumption extrapolates the pattern over the horizon, inflating
// the estimate for each scheduled exercise by its intensity multiplier.
func ProjectConsumption(pattern models.ConsumptionPattern, horizonDays int, exercises []models.ExerciseEvent) models.ConsumptionProjection {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	expected := pattern.BaseConsumptionRate * float64(horizonDays)
	riskFactors := []string{}

	for _, exercise := range exercises {
		multiplier, ok := intensityMultipliers[exercise.Intensity]
		if !ok {
			multiplier = intensityMultipliers[models.IntensityMedium]
		}
		// Each exercise draws an extra share on top of baseline usage.
		expected += pattern.BaseConsumptionRate * (multiplier - 1) * float64(exerciseDuration(exercise))
		riskFactors = append(riskFactors,
			fmt.Sprintf("exercise %q (%s intensity)", exercise.Name, exercise.Intensity))
	}

	if pattern.TrendDirection == "increasing" {
		riskFactors = append(riskFactors, "consumption trending upward")
	}
	if len(pattern.AnomalyFlags) > 0 {
		riskFactors = append(riskFactors, "historical anomalies detected")
	}

	spread := pattern.Volatility * math.Sqrt(float64(horizonDays))
	return models.ConsumptionProjection{
		ExpectedConsumption: expected,
		ConfidenceRange: [2]float64{
			math.Max(0, expected-spread),
			expected + spread,
		},
		RiskFactors: riskFactors,
	}
}

// trendDirection compares the mean of the second half of the series against
// the first; a 10% shift either way breaks the "stable" reading.
func trendDirection(values []float64) string {
	half := len(values) / 2
	firstMean := meanOf(values[:half])
	secondMean := meanOf(values[half:])

	if firstMean == 0 {
		if secondMean > 0 {
			return "increasing"
		}
		return "stable"
	}

	change := (secondMean - firstMean) / firstMean
	switch {
	case change > 0.1:
		return "increasing"
	case change < -0.1:
		return "decreasing"
	default:
		return "stable"
	}
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func stdev(values []float64, mean float64) float64 {
	var sum float64
	for _, v := range values {
		sum += (v - mean) * (v - mean)
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func exerciseDuration(exercise models.ExerciseEvent) int {
	start, err := models.ParseDate(&exercise.StartDate)
	if err != nil || start == nil {
		return 1
	}
	end, err := models.ParseDate(&exercise.EndDate)
	if err != nil || end == nil || end.Before(*start) {
		return 1
	}
	return int(end.Sub(*start).Hours()/24) + 1
}
