package bubba

import "math"

// HappinessMultiplier is the engagement curve: 1 up to happiness 1, then
// 1 + 0.1·(log2 h + 25·log10 h + h^0.75).
func HappinessMultiplier(h float64) float64 {
	if h <= 1 {
		return 1
	}
	return 1 + 0.1*(math.Log2(h)+25*math.Log10(h)+math.Pow(h, 0.75))
}

// AverageHappinessMultiplier estimates the hour-averaged curve for a player
// patting patsPerHour times, each pat worth perPat happiness.
func AverageHappinessMultiplier(perPat, patsPerHour float64) float64 {
	if perPat <= 0 {
		return 1
	}
	peakBoost := HappinessMultiplier(perPat) - 1
	effectiveSeconds := peakBoost * math.Sqrt(perPat) * 1.2
	return 1 + patsPerHour*effectiveSeconds/3600
}

// giftHappyMult boosts happiness when the happy gift is selected
func (s *State) giftHappyMult() float64 {
	if s.HasGift(GiftHappy) {
		return 1.5
	}
	return 1
}

// happinessPerPat is the happiness granted by one pat at the given levels
func (s *State) happinessPerPat(lv Levels) float64 {
	b := computeBonuses(lv, s.Charisma, s.EmulsifiedIndex)
	return float64(lv[HappiBoi]) * b.Joy * s.giftHappyMult()
}

// Happiness is the accumulated happiness of the current session
func (s *State) Happiness() float64 {
	return s.ActivePats * s.happinessPerPat(s.Levels)
}

// currentHMult is the happiness multiplier right now
func (s *State) currentHMult() float64 {
	return HappinessMultiplier(s.Happiness())
}

// averageHMult is the averaged multiplier for the level vector lv
func (s *State) averageHMult(lv Levels) float64 {
	rate := s.PatsPerHour
	if rate < 0 {
		rate = 0
	}
	return AverageHappinessMultiplier(s.happinessPerPat(lv), rate)
}
