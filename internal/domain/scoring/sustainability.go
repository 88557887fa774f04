// Package scoring derives the sustainability score attached to every catalog product.
package scoring

import "math"

const (
	// BaseScore is awarded before any penalty is applied.
	BaseScore = 100.0

	// CostThreshold is the cost at or above which no cost penalty applies.
	CostThreshold = 50.0
	// CostWeight is the maximum cost penalty, reached at cost 0.
	CostWeight = 20.0

	// EmissionThreshold is the carbon emission at or above which no emission penalty applies.
	EmissionThreshold = 20.0
	// EmissionWeight is the maximum emission penalty, reached at emission 0.
	EmissionWeight = 80.0
)

// SustainabilityScore computes a product's score from its cost and carbon emission.
//
// Each penalty scales linearly from zero at its threshold up to its weight at zero input.
// The result is truncated toward zero and is not clamped, so it may be negative.
func SustainabilityScore(cost, carbonEmission float64) float64 {
	costFactor := math.Max(0, (CostThreshold-cost)/CostThreshold) * CostWeight
	emissionFactor := math.Max(0, (EmissionThreshold-carbonEmission)/EmissionThreshold) * EmissionWeight

	return math.Trunc(BaseScore - costFactor - emissionFactor)
}
