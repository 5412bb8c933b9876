// Package readiness converts the inventory collection into weighted
// operational-readiness percentages.
package readiness

import (
	"math"

	"github.com/tldm-bits/ordnance-service/internal/models"
)

// Weights are the fixed per-category contributions to overall readiness.
// They sum to 1.0.
var Weights = map[models.Category]float64{
	models.CategoryMissile:     0.42,
	models.CategoryTorpedo:     0.26,
	models.CategorySeamine:     0.16,
	models.CategoryAmmunition:  0.10,
	models.CategoryPyrotechnic: 0.06,
	models.CategoryDemolition:  0.03,
	models.CategoryNavalMines:  0.03,
}

// Targets are the reference stock levels against which readiness is
// measured. All targets are positive constants.
var Targets = map[models.Category]int64{
	models.CategoryMissile:     100,
	models.CategoryTorpedo:     80,
	models.CategorySeamine:     60,
	models.CategoryAmmunition:  50000,
	models.CategoryPyrotechnic: 1000,
	models.CategoryDemolition:  500,
	models.CategoryNavalMines:  40,
}

// Compute aggregates inventory items into per-category readiness
// percentages and the weighted overall percentage. It is a pure function:
// an empty inventory yields all zeros, and categories absent from the data
// count as zero stock.
func Compute(items []models.OrdnanceItem) models.ReadinessMetrics {
	totals := make(map[models.Category]int64, len(Targets))
	for _, item := range items {
		category, ok := models.NormalizeCategory(string(item.Category))
		if !ok {
			continue
		}
		totals[category] += item.Quantity
	}

	var metrics models.ReadinessMetrics
	var overall float64
	for _, category := range models.Categories {
		pct := percentage(totals[category], Targets[category])
		metrics.SetCategory(category, pct)
		overall += Weights[category] * pct
	}
	metrics.Overall = round1(overall)

	return metrics
}

// percentage clamps stock-vs-target to [0,100].
func percentage(quantity, target int64) float64 {
	if quantity <= 0 {
		return 0
	}
	pct := 100 * float64(quantity) / float64(target)
	return math.Min(100, round1(pct))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
