package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSustainabilityScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		cost           float64
		carbonEmission float64
		expected       float64
	}{
		{name: "both at thresholds", cost: 50, carbonEmission: 20, expected: 100},
		{name: "both above thresholds", cost: 120, carbonEmission: 75.5, expected: 100},
		{name: "zero cost and zero emission", cost: 0, carbonEmission: 0, expected: 0},
		{name: "worked example", cost: 10, carbonEmission: 5, expected: 24},
		{name: "cost penalty only", cost: 25, carbonEmission: 40, expected: 90},
		{name: "emission penalty only", cost: 80, carbonEmission: 10, expected: 60},
		{name: "fraction truncated toward zero", cost: 49, carbonEmission: 19, expected: 95},
		{name: "negative inputs are not clamped", cost: -50, carbonEmission: 0, expected: -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SustainabilityScore(tt.cost, tt.carbonEmission))
		})
	}
}

func TestSustainabilityScore_MonotonicBelowThresholds(t *testing.T) {
	t.Parallel()

	t.Run("decreasing cost never raises the score", func(t *testing.T) {
		t.Parallel()

		prev := SustainabilityScore(CostThreshold, 30)
		for cost := CostThreshold; cost >= 0; cost -= 0.5 {
			got := SustainabilityScore(cost, 30)
			assert.LessOrEqual(t, got, prev, "cost=%v", cost)
			prev = got
		}
	})

	t.Run("decreasing emission never raises the score", func(t *testing.T) {
		t.Parallel()

		prev := SustainabilityScore(70, EmissionThreshold)
		for emission := EmissionThreshold; emission >= 0; emission -= 0.25 {
			got := SustainabilityScore(70, emission)
			assert.LessOrEqual(t, got, prev, "emission=%v", emission)
			prev = got
		}
	})
}
