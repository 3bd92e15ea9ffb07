package orion

import (
	"math"

	"github.com/napolitain/solver-idle/internal/solver"
)

// UpgradeCost returns the feather cost of buying upgrade index at level,
// with the cheapeners and unlocks read from lv.
func UpgradeCost(index, level int, lv Levels) float64 {
	factor := BaseFactors[index]
	if index == FeatherGeneration && lv.mega() >= MegaCheaperGeneration {
		factor = 1.075
	}

	cost := BaseCosts[index] * math.Pow(factor, float64(level))
	if index == FeatherGeneration && level > 0 {
		cost *= float64(level)
	}

	cost /= 1 + float64(lv[FeatherCheapener])/10
	cost /= 1 + float64(lv[SuperFeatherCheapener])/5

	if lv.mega() >= MegaSelfDiscount && lv[FeatherGeneration] > 0 {
		cost /= 1 + float64(lv[FeatherGeneration])/100
	}
	return solver.Saturate(math.Round(cost))
}

// costOf prices upgrade i at its level in lv
func costOf(i int, lv Levels) float64 {
	return UpgradeCost(i, lv[i], lv)
}

// Cost returns the cost of the next level of upgrade i
func (s *State) Cost(i int) float64 {
	return costOf(i, s.Levels)
}
