package orion

import (
	"math"

	"github.com/napolitain/solver-idle/internal/solver"
)

// baseFeathers is the additive generation term before any multiplier
func baseFeathers(lv Levels) float64 {
	base := float64(lv[FeatherGeneration]) + 5*float64(lv[SuperFeatherProduction])
	if lv.mega() >= MegaCheapenersProduce {
		base += 2*float64(lv[FeatherCheapener]) + 4*float64(lv[SuperFeatherCheapener])
	}
	return base
}

// FeatherGen returns feathers per second for lv with the given shiny count
func (s *State) FeatherGen(lv Levels, shiny float64) float64 {
	base := baseFeathers(lv)
	if base == 0 {
		return 0
	}

	restartBase := 3.0
	if lv.mega() >= MegaRestartBoost {
		restartBase = 5
	}
	megaMult := 1.0
	if lv.mega() >= MegaTenfoldGeneration {
		megaMult = 10
	}
	gambitMult := 1.0
	if s.GambitBonus > 0 {
		gambitMult = s.GambitBonus
	}

	gen := (1 + s.GoGoOwl/100) *
		math.Pow(restartBase, float64(lv[FeatherRestart])) *
		base *
		(1 + float64(lv[FeatherMultiplier])/20) *
		(1 + shiny*float64(lv[ShinyFeathers])/100) *
		megaMult * gambitMult
	return solver.Saturate(gen)
}

// EstimatedShiny guesses the shiny feather count reached at generation gen
func EstimatedShiny(gen float64) float64 {
	if gen <= 0 {
		return 0
	}
	return math.Floor(max(0, math.Log(gen*1e-6/0.2)/math.Log(1.1)))
}

// effectiveShiny is the recorded shiny count, or an estimate when none is recorded
func (s *State) effectiveShiny() float64 {
	if s.ShinyCount > 0 {
		return s.ShinyCount
	}
	return EstimatedShiny(s.FeatherGen(s.Levels, s.ShinyCount))
}
