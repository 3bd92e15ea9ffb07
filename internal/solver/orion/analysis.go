package orion

import (
	"math"

	"github.com/napolitain/solver-idle/internal/solver"
)

// Generation returns feathers per second with the recorded shiny count
func (s *State) Generation() float64 {
	return s.FeatherGen(s.Levels, s.ShinyCount)
}

// Target returns the cheaper of the two resets
func (s *State) Target() solver.Target {
	idx, cost := cheaperTarget(s.Levels)
	return solver.Target{Index: idx, Name: Names[idx], Cost: cost}
}

// TimeToTarget returns the seconds until the target is affordable.
// An already affordable target is 0 and a stalled economy never gets there.
func (s *State) TimeToTarget() float64 {
	gen := s.Generation()
	if gen <= 0 {
		return math.Inf(1)
	}
	diff := s.Target().Cost - s.Feathers
	if diff <= 0 {
		return 0
	}
	return diff / gen
}

// burdenTime is the seconds to afford burden from balance at gen
func burdenTime(burden, balance, gen float64) float64 {
	if gen <= 0 {
		return math.Inf(1)
	}
	return (burden - balance) / gen
}

// Analyze ranks every upgrade by how much sooner it gets the economy past
// the next reset, counting the purchases the lookahead expects on the way.
func (s *State) Analyze() []solver.UpgradeAnalysis {
	shiny := s.effectiveShiny()
	target := s.Target()

	burden := target.Cost + s.FutureBurden(s.Levels, shiny)
	baseline := burdenTime(burden, s.Feathers, s.FeatherGen(s.Levels, shiny))

	analysis := make([]solver.UpgradeAnalysis, NumUpgrades)
	for i := range NumUpgrades {
		cost := s.Cost(i)
		next := s.Levels.Bought(i)

		nextBurden := UpgradeCost(target.Index, s.Levels[target.Index], next) + s.FutureBurden(next, shiny)
		after := burdenTime(nextBurden, s.Feathers-cost, s.FeatherGen(next, shiny))
		saved := solver.TimeSaved(baseline, after)

		analysis[i] = solver.UpgradeAnalysis{
			Index:       i,
			Name:        Names[i],
			Cost:        cost,
			TimeSaved:   saved,
			Efficiency:  solver.EfficiencyMetric{TimeSaved: saved, Cost: cost}.Calculate(),
			Icon:        solver.Icon(Economy, i),
			Description: Description(i, s.Levels),
			Excluded:    excludedFromBest[i],
		}
	}
	return analysis
}

// Best returns the index of the most efficient upgrade, or
// solver.NoRecommendation when nothing is worth buying.
func Best(analysis []solver.UpgradeAnalysis) int {
	return solver.BestIndex(solver.Efficiencies(analysis), excludedFromBest)
}
