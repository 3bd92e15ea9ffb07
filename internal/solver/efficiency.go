package solver

import (
	"fmt"
	"math"
)

// NoRecommendation is returned by BestIndex when no upgrade is worth buying
const NoRecommendation = -1

// EfficiencyMetric represents the components of an efficiency calculation
type EfficiencyMetric struct {
	TimeSaved float64 // Seconds saved toward the target
	Cost      float64 // Resource cost of the purchase
}

// Calculate computes the final efficiency value.
// Free purchases, negative savings and non-finite ratios all score 0.
func (m EfficiencyMetric) Calculate() float64 {
	if m.Cost <= 0 || m.TimeSaved <= 0 {
		return 0
	}
	eff := m.TimeSaved / m.Cost
	if math.IsNaN(eff) || math.IsInf(eff, 0) || eff < 0 {
		return 0
	}
	return eff
}

// TimeToTarget returns the seconds needed to afford targetCost from balance
// at ratePerSecond. A non-positive rate never reaches the target.
func TimeToTarget(targetCost, balance, ratePerSecond float64) float64 {
	if ratePerSecond <= 0 {
		return math.Inf(1)
	}
	return (targetCost - balance) / ratePerSecond
}

// TimeSaved returns baseline - next, treating two infinite times as no change
func TimeSaved(baseline, next float64) float64 {
	if math.IsInf(baseline, 1) && math.IsInf(next, 1) {
		return 0
	}
	return baseline - next
}

// BestIndex returns the index with strictly the highest positive efficiency,
// skipping excluded indices. Ties keep the lowest index.
func BestIndex(efficiencies []float64, excluded map[int]bool) int {
	best := NoRecommendation
	var bestEff float64
	for i, eff := range efficiencies {
		if excluded[i] {
			continue
		}
		if eff > bestEff {
			bestEff = eff
			best = i
		}
	}
	return best
}

// Icon returns the static icon path for an upgrade
func Icon(economy string, index int) string {
	return fmt.Sprintf("/%s/upg-%d.png", economy, index)
}

// Saturate maps overflowed magnitudes to the largest finite value and NaN to 0
func Saturate(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// UpgradeAnalysis is the per-upgrade output consumed by the presentation layer
type UpgradeAnalysis struct {
	Index       int
	Name        string
	Cost        float64
	TimeSaved   float64
	Efficiency  float64
	Icon        string
	Description string
	Excluded    bool
}

// Target is the milestone the ranking optimizes toward
type Target struct {
	Index int
	Name  string
	Cost  float64
}

// Efficiencies extracts the efficiency column of an analysis
func Efficiencies(analysis []UpgradeAnalysis) []float64 {
	effs := make([]float64, len(analysis))
	for i, a := range analysis {
		effs[i] = a.Efficiency
	}
	return effs
}
