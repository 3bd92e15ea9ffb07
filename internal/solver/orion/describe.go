package orion

import (
	"fmt"
	"math"

	"github.com/napolitain/solver-idle/internal/format"
)

// Description returns the in-game text for upgrade i at the levels lv
func Description(i int, lv Levels) string {
	n := func(v int) string { return format.Number(float64(v)) }

	switch i {
	case FeatherGeneration:
		text := fmt.Sprintf("Generates +%s feather per second", n(lv[FeatherGeneration]))
		if lv.mega() >= MegaSelfDiscount {
			red := float64(lv[FeatherGeneration]) / float64(lv[FeatherGeneration]+100) * 100
			text += fmt.Sprintf(", and lowers all costs by %.1f%%", red)
		}
		return text
	case BonusesOfOrion:
		return "Gain a permanent bonus in the real game! This upgrade never resets."
	case FeatherMultiplier:
		return fmt.Sprintf("Boosts feather generation by +%s%%", n(lv[FeatherMultiplier]*5))
	case FeatherCheapener:
		red := float64(lv[FeatherCheapener]) / float64(lv[FeatherCheapener]+10) * 100
		return fmt.Sprintf("All feather upgrades are %.1f%% cheaper.", red) +
			cheapenerBonus(lv, lv[FeatherCheapener]*2)
	case FeatherRestart:
		base := 3.0
		if lv.mega() >= MegaRestartBoost {
			base = 5
		}
		mult := format.Number(math.Pow(base, float64(lv[FeatherRestart])))
		return fmt.Sprintf("Reset almost all Upgrades and Feathers. Generate %sx Feathers", mult)
	case SuperFeatherProduction:
		return fmt.Sprintf("Generates +%s more feathers per second", n(lv[SuperFeatherProduction]*5))
	case ShinyFeathers:
		return fmt.Sprintf("Rare chance for Shiny Feather, each one gives +%d%% feather generation", lv[ShinyFeathers])
	case SuperFeatherCheapener:
		return fmt.Sprintf("All feather upgrades are %s%% cheaper.", n(lv[SuperFeatherCheapener]*20)) +
			cheapenerBonus(lv, lv[SuperFeatherCheapener]*4)
	case MegaReset:
		return "Reset almost everything. Gain a permanent Megafeather"
	}
	return ""
}

// cheapenerBonus is the generation suffix cheapeners show once they produce
func cheapenerBonus(lv Levels, perSecond int) string {
	if lv.mega() < MegaCheapenersProduce {
		return ""
	}
	return fmt.Sprintf(" (+%s f/s)", format.Number(float64(perSecond)))
}
