package bubba

import (
	"math"

	"github.com/napolitain/solver-idle/internal/solver"
)

// Generation returns the current meat generation per minute
func (s *State) Generation() float64 {
	return s.MeatGen(s.Levels, s.currentHMult())
}

// Target returns the milestone the ranking is measured against
func (s *State) Target() solver.Target {
	return solver.Target{
		Index: TargetIndex,
		Name:  Names[TargetIndex],
		Cost:  s.Cost(TargetIndex),
	}
}

// timeToTarget converts a per-minute generation into seconds until the
// target is affordable from balance.
func timeToTarget(targetCost, balance, genPerMinute float64) float64 {
	return solver.TimeToTarget(targetCost, balance, genPerMinute/60)
}

// TimeToTarget returns the seconds until the target is affordable
func (s *State) TimeToTarget() float64 {
	return timeToTarget(s.Cost(TargetIndex), s.Meat, s.Generation())
}

// Analyze computes cost, time saved and efficiency for every upgrade
func (s *State) Analyze() []solver.UpgradeAnalysis {
	hMult := s.currentHMult()
	targetCost := s.Cost(TargetIndex)
	baseline := timeToTarget(targetCost, s.Meat, s.MeatGen(s.Levels, hMult))

	analysis := make([]solver.UpgradeAnalysis, NumUpgrades)
	for i := range NumUpgrades {
		cost := s.Cost(i)
		timeSaved := s.timeSaved(i, cost, hMult, baseline)

		analysis[i] = solver.UpgradeAnalysis{
			Index:      i,
			Name:       Names[i],
			Cost:       cost,
			TimeSaved:  timeSaved,
			Efficiency: solver.EfficiencyMetric{TimeSaved: timeSaved, Cost: cost}.Calculate(),
			Icon:       solver.Icon(Economy, i),
			Excluded:   excludedFromBest[i],
		}
	}
	return analysis
}

// timeSaved estimates how much sooner the target is reached after buying i
func (s *State) timeSaved(i int, cost, hMult, baseline float64) float64 {
	switch i {
	case Charisma:
		return s.charismaTimeSaved(baseline)
	case SuperChart:
		return s.superChartTimeSaved(baseline)
	}

	next := s.Levels.Bought(i)
	before := baseline
	var nextGen float64
	if i == HappiBoi {
		// Happi Boi changes the pat rate itself, so both sides use the averaged curve
		before = timeToTarget(s.Cost(TargetIndex), s.Meat, s.MeatGen(s.Levels, s.averageHMult(s.Levels)))
		nextGen = s.MeatGen(next, s.averageHMult(next))
	} else {
		nextGen = s.MeatGen(next, hMult)
	}

	nextTarget := s.costOf(TargetIndex, next)
	after := timeToTarget(nextTarget, s.Meat-cost, nextGen)
	saved := solver.TimeSaved(before, after)

	switch i {
	case RealLove:
		if s.HasGift(GiftHappy) {
			saved += RealLoveGiftBonus
		}
	case BuyerGrin:
		saved *= BuyerGrinScale
	}
	return saved
}

// charismaTimeSaved values a Charisma level by the hustle it adds, weighted
// by how much room the other charisma slots still have to grow.
func (s *State) charismaTimeSaved(baseline float64) float64 {
	if !usableTime(baseline) {
		return 0
	}

	before := s.Bonuses().Hustle
	bumped := s.Charisma
	bumped[Hustle]++
	after := computeBonuses(s.Levels, bumped, s.EmulsifiedIndex).Hustle

	rel := after/before - 1
	capacity := s.remainingCapacity(capacityWeights)
	return baseline * rel / (1 + rel) * (1 + capacity)
}

// superChartTimeSaved values Super Chart by the relative boost it gives the
// hustle and rizz bonuses, weighted across the charisma slots.
func (s *State) superChartTimeSaved(baseline float64) float64 {
	if !usableTime(baseline) {
		return 0
	}

	rel := superChartBonus(s.Levels.Bought(SuperChart))/superChartBonus(s.Levels) - 1
	capacity := s.remainingCapacity(metaWeights)
	return baseline * rel / (1 + rel) * capacity
}

// remainingCapacity sums the weighted unfilled share of each listed slot
func (s *State) remainingCapacity(weights []slotWeight) float64 {
	aw := s.activityWeight()
	var total float64
	for _, w := range weights {
		level := min(max(s.Charisma[w.slot], 0), CharismaCap)
		room := float64(CharismaCap-level) / CharismaCap
		weight := w.weight
		if w.activity {
			weight *= aw
		}
		total += weight * room
	}
	return total
}

func usableTime(t float64) bool {
	return t > 0 && !math.IsInf(t, 0) && !math.IsNaN(t)
}

// Best returns the index of the most efficient upgrade, or
// solver.NoRecommendation when nothing is worth buying.
func Best(analysis []solver.UpgradeAnalysis) int {
	return solver.BestIndex(solver.Efficiencies(analysis), excludedFromBest)
}
