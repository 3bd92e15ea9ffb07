package orion

import "github.com/napolitain/solver-idle/internal/solver"

// Plan is the greedy purchase path simulated ahead of the next reset
type Plan struct {
	Steps     []int   // Upgrade indices in purchase order
	TotalCost float64 // Sum of the feathers spent along the path
}

// cheaperTarget returns whichever reset is cheaper at lv and its cost.
// Ties go to Feather Restart.
func cheaperTarget(lv Levels) (int, float64) {
	restart := costOf(FeatherRestart, lv)
	mega := costOf(MegaReset, lv)
	if mega < restart {
		return MegaReset, mega
	}
	return FeatherRestart, restart
}

// Lookahead greedily buys the most efficient generation upgrade until none
// helps or MaxLookaheadSteps is reached. It works on a copy of from.
func (s *State) Lookahead(from Levels, shiny float64) Plan {
	var plan Plan
	lv := from

	for range MaxLookaheadSteps {
		targetIdx, targetCost := cheaperTarget(lv)
		gen := s.FeatherGen(lv, shiny)
		if gen <= 0 {
			break
		}

		best := solver.NoRecommendation
		var bestEff, bestCost float64
		for _, idx := range lookaheadCandidates {
			cost := costOf(idx, lv)
			sim := lv.Bought(idx)
			nextTarget := UpgradeCost(targetIdx, lv[targetIdx], sim)
			saved := targetCost/gen - nextTarget/s.FeatherGen(sim, shiny)

			eff := solver.EfficiencyMetric{TimeSaved: saved, Cost: cost}.Calculate()
			if eff > bestEff {
				best, bestEff, bestCost = idx, eff, cost
			}
		}
		if best == solver.NoRecommendation {
			break
		}

		plan.Steps = append(plan.Steps, best)
		plan.TotalCost = solver.Saturate(plan.TotalCost + bestCost)
		lv[best]++
	}
	return plan
}

// FutureBurden returns the feathers the lookahead expects to spend from lv
func (s *State) FutureBurden(lv Levels, shiny float64) float64 {
	return s.Lookahead(lv, shiny).TotalCost
}
