package bubba

import "github.com/napolitain/solver-idle/internal/solver"

// baseSlices is the additive generation term before any multiplier
func baseSlices(lv Levels) float64 {
	return float64(lv[FirstSlice])*1 + float64(lv[SecondSlice])*6 + float64(lv[ThirdSlice])*50
}

// MeatGen returns meat generated per minute for the level vector lv,
// with hMult the happiness multiplier supplied by the caller.
func (s *State) MeatGen(lv Levels, hMult float64) float64 {
	base := baseSlices(lv)
	if base == 0 {
		return 0
	}

	b := computeBonuses(lv, s.Charisma, s.EmulsifiedIndex)

	d84 := float64(lv[GoodMeat]*2+lv[GreatMeat]*8+lv[BestMeat]*25) + 100

	mf1Mult := 1.0
	if lv[Megaflesh] >= 1 {
		mf1Mult = 1 + float64(lv.Sum())/100
	}

	poppyMult := 1 + float64(lv[Crossover])*0.05*s.PoppyFishPower
	coinsMult := 1 + s.CoinsFound*(float64(lv[SpareCoins])/100)

	beegSliceMult := 1.0
	if s.HasGift(GiftBeegSlice) {
		beegSliceMult = 2 + float64(lv[UberGifts])/100
	}

	gen := base * 60 * (d84 / 100) * mf1Mult * DiceMultiplier(lv, s.DiceRolls) *
		b.Hustle * coinsMult * poppyMult * beegSliceMult * hMult
	return solver.Saturate(gen)
}
