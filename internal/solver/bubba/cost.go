package bubba

import (
	"math"

	"github.com/napolitain/solver-idle/internal/solver"
)

// UpgradeCost returns the meat cost of buying the next level of an upgrade.
// The offset credits levels that are not charged for; lv and b supply the
// discounts in effect.
func UpgradeCost(index, level, offset int, lv Levels, b CharismaBonuses) float64 {
	costLv := float64(max(0, level-offset))
	linear := math.Pow(float64(index+1), 2) * costLv
	exponential := math.Pow(2.4+float64(index)/3.65, float64(index)) * math.Pow(Factors[index], costLv)

	cost := math.Round(CostMultiplier(lv, b) * (linear + exponential) * CostMultipliers[index])
	return solver.Saturate(cost)
}

// costOf prices upgrade i against the level vector lv
func (s *State) costOf(i int, lv Levels) float64 {
	b := computeBonuses(lv, s.Charisma, s.EmulsifiedIndex)
	return UpgradeCost(i, lv[i], s.MindfulOffsets[i], lv, b)
}

// Cost returns the cost of the next level of upgrade i
func (s *State) Cost(i int) float64 {
	return s.costOf(i, s.Levels)
}
