package bubba

import "math"

// CharismaBonuses are the factors derived from the charisma slots
type CharismaBonuses struct {
	Hustle   float64 // Generation multiplier
	RizzDisc float64 // Cost discount in [0, 1)
	Joy      float64 // Happiness multiplier
	Mindful  float64 // Mindful credit rate
}

// superChartBonus amplifies the hustle and rizz bonuses
func superChartBonus(lv Levels) float64 {
	return 1 + float64(lv[SuperChart])*0.01
}

// computeBonuses derives charisma bonuses for the given main levels
func computeBonuses(lv Levels, charisma [CharismaSlots]int, emulsified int) CharismaBonuses {
	sc := superChartBonus(lv)
	unlocked := lv[Megaflesh] >= EmulsifyMegafleshLevel
	emulsify := func(slot int) float64 {
		if unlocked && emulsified == slot {
			return EmulsifyFactor
		}
		return 1
	}

	return CharismaBonuses{
		Hustle:   float64(charisma[Hustle])*0.1*sc*emulsify(Hustle) + 1,
		RizzDisc: saturatingDiscount(0.02 * float64(charisma[Rizz]) * sc * emulsify(Rizz)),
		Joy:      (1 + float64(charisma[Joy])*0.05*1.2) * emulsify(Joy),
		Mindful:  0.1 * float64(charisma[Mindful]) * emulsify(Mindful),
	}
}

// Bonuses returns the charisma bonuses for the current state
func (s *State) Bonuses() CharismaBonuses {
	return computeBonuses(s.Levels, s.Charisma, s.EmulsifiedIndex)
}

// saturatingDiscount maps k*level onto [0, 1) with diminishing returns
func saturatingDiscount(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1 - 1/(1+x)
}

// discountSources lists the independent discounts in effect
func discountSources(lv Levels, b CharismaBonuses) [4]float64 {
	return [4]float64{
		b.RizzDisc,
		saturatingDiscount(0.01 * float64(lv[Bargain])),
		saturatingDiscount(0.02 * float64(lv[CostSaver])),
		saturatingDiscount(0.04 * float64(lv[PermaSale])),
	}
}

// CostMultiplier is the share of the list price still paid after all discounts
func CostMultiplier(lv Levels, b CharismaBonuses) float64 {
	m := 1.0
	for _, d := range discountSources(lv, b) {
		m *= 1 - d
	}
	return m
}

// CompositeDiscount combines the independent discounts as 1 - Π(1 - d)
func CompositeDiscount(lv Levels, b CharismaBonuses) float64 {
	return 1 - CostMultiplier(lv, b)
}

// DiceMultiplier converts the active dice rolls into a generation multiplier
func DiceMultiplier(lv Levels, rolls []int) float64 {
	if lv[DiceRoll] <= 0 {
		return 1
	}

	count := min(1+lv[MoreDice], len(rolls))
	sides := float64(BaseDieSides + lv[MoreSides])
	loaded := 1 + 0.05*float64(lv[LoadedDice])

	product := 1.0
	active := false
	for _, roll := range rolls[:count] {
		v := math.Min(float64(roll), sides)
		if v <= 0 {
			continue
		}
		if v > BaseDieSides {
			v = BaseDieSides + (v-BaseDieSides)*HighRollCompression
		}
		product *= v * loaded
		active = true
	}

	if !active {
		return 1
	}
	return 1 + product/100
}
