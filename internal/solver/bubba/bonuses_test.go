package bubba

import (
	"math"
	"testing"
)

func TestBonusesAllZero(t *testing.T) {
	b := NewState().Bonuses()

	if b.Hustle != 1 {
		t.Errorf("Hustle = %v, want 1", b.Hustle)
	}
	if b.RizzDisc != 0 {
		t.Errorf("RizzDisc = %v, want 0", b.RizzDisc)
	}
	if b.Joy != 1 {
		t.Errorf("Joy = %v, want 1", b.Joy)
	}
	if b.Mindful != 0 {
		t.Errorf("Mindful = %v, want 0", b.Mindful)
	}
}

func TestEmulsifyRequiresMegaflesh(t *testing.T) {
	s := NewState()
	s.Charisma[Hustle] = 10
	s.EmulsifiedIndex = Hustle

	s.Levels[Megaflesh] = EmulsifyMegafleshLevel - 1
	if got := s.Bonuses().Hustle; math.Abs(got-2) > 1e-12 {
		t.Errorf("Hustle before unlock = %v, want 2", got)
	}

	s.Levels[Megaflesh] = EmulsifyMegafleshLevel
	if got := s.Bonuses().Hustle; math.Abs(got-4) > 1e-12 {
		t.Errorf("Hustle after unlock = %v, want 4", got)
	}

	// Only the emulsified slot is tripled
	s.Charisma[Joy] = 10
	if got, want := s.Bonuses().Joy, 1+10*0.05*1.2; math.Abs(got-want) > 1e-12 {
		t.Errorf("Joy = %v, want %v", got, want)
	}
}

func TestEmulsifiedJoyWithoutLevels(t *testing.T) {
	s := NewState()
	s.Levels[Megaflesh] = EmulsifyMegafleshLevel
	s.EmulsifiedIndex = Joy

	if got := s.Bonuses().Joy; got != 3 {
		t.Errorf("Joy = %v, want 3", got)
	}
}

func TestSuperChartLeavesJoyAndMindful(t *testing.T) {
	s := NewState()
	s.Levels[SuperChart] = 50
	s.Charisma[Hustle] = 10
	s.Charisma[Rizz] = 10
	s.Charisma[Joy] = 10
	s.Charisma[Mindful] = 10

	b := s.Bonuses()
	if math.Abs(b.Joy-1.6) > 1e-12 {
		t.Errorf("Joy = %v, want 1.6", b.Joy)
	}
	if math.Abs(b.Mindful-1.0) > 1e-12 {
		t.Errorf("Mindful = %v, want 1", b.Mindful)
	}

	// Hustle and rizz still carry the 1.5x chart factor
	if math.Abs(b.Hustle-2.5) > 1e-12 {
		t.Errorf("Hustle = %v, want 2.5", b.Hustle)
	}
	if want := 1 - 1/1.3; math.Abs(b.RizzDisc-want) > 1e-12 {
		t.Errorf("RizzDisc = %v, want %v", b.RizzDisc, want)
	}
}

func TestCompositeDiscountBounds(t *testing.T) {
	for _, lv := range []int{0, 1, 10, 100, 1000, 100000} {
		s := NewState()
		s.Charisma[Rizz] = lv
		s.Levels[Bargain] = lv
		s.Levels[CostSaver] = lv
		s.Levels[PermaSale] = lv

		d := CompositeDiscount(s.Levels, s.Bonuses())
		if d < 0 || d >= 1 {
			t.Errorf("level %d: composite discount %v outside [0, 1)", lv, d)
		}
	}

	s := NewState()
	if d := CompositeDiscount(s.Levels, s.Bonuses()); d != 0 {
		t.Errorf("no discounts should give 0, got %v", d)
	}
}

func TestCompositeDiscountCombinesIndependently(t *testing.T) {
	s := NewState()
	s.Levels[Bargain] = 100  // 1 - 1/2 = 0.5
	s.Levels[PermaSale] = 25 // 1 - 1/2 = 0.5

	got := CompositeDiscount(s.Levels, s.Bonuses())
	if math.Abs(got-0.75) > 1e-12 {
		t.Errorf("CompositeDiscount = %v, want 0.75", got)
	}
}

func TestDiceMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Levels)
		rolls []int
		want  float64
	}{
		{"locked", func(l *Levels) {}, []int{6}, 1},
		{"single die", func(l *Levels) { l[DiceRoll] = 1 }, []int{4}, 1.04},
		{"roll capped at sides", func(l *Levels) { l[DiceRoll] = 1 }, []int{10}, 1.06},
		{"high roll compressed", func(l *Levels) { l[DiceRoll] = 1; l[MoreSides] = 4 }, []int{10}, 1 + 7.6/100},
		{"only first die active", func(l *Levels) { l[DiceRoll] = 1 }, []int{2, 5}, 1.02},
		{"two dice multiply", func(l *Levels) { l[DiceRoll] = 1; l[MoreDice] = 1 }, []int{2, 5}, 1.10},
		{"zero rolls", func(l *Levels) { l[DiceRoll] = 1; l[MoreDice] = 2 }, []int{0, 0, 0}, 1},
		{"zero die skipped", func(l *Levels) { l[DiceRoll] = 1; l[MoreDice] = 1 }, []int{0, 3}, 1.03},
		{"no rolls", func(l *Levels) { l[DiceRoll] = 3 }, nil, 1},
		{"loaded", func(l *Levels) { l[DiceRoll] = 1; l[LoadedDice] = 2 }, []int{5}, 1.055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lv Levels
			tt.setup(&lv)
			got := DiceMultiplier(lv, tt.rolls)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DiceMultiplier = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHappinessMultiplier(t *testing.T) {
	if got := HappinessMultiplier(0); got != 1 {
		t.Errorf("HappinessMultiplier(0) = %v, want 1", got)
	}
	if got := HappinessMultiplier(1); got != 1 {
		t.Errorf("HappinessMultiplier(1) = %v, want 1", got)
	}
	if got := HappinessMultiplier(10); math.Abs(got-4.394534134679086) > 1e-9 {
		t.Errorf("HappinessMultiplier(10) = %v", got)
	}

	prev := HappinessMultiplier(1)
	for h := 1.5; h < 1e9; h *= 1.7 {
		cur := HappinessMultiplier(h)
		if cur <= prev {
			t.Fatalf("not strictly increasing at h=%v: %v <= %v", h, cur, prev)
		}
		prev = cur
	}
}

func TestAverageHappinessMultiplier(t *testing.T) {
	if got := AverageHappinessMultiplier(0, 10); got != 1 {
		t.Errorf("no happiness per pat should give 1, got %v", got)
	}

	perPat := 50.0
	peak := HappinessMultiplier(perPat)
	low := AverageHappinessMultiplier(perPat, 10)
	high := AverageHappinessMultiplier(perPat, 20)

	if low <= 1 || high <= low {
		t.Errorf("averaged multiplier should grow with pat rate: %v, %v", low, high)
	}
	want := 1 + 10*(peak-1)*math.Sqrt(perPat)*1.2/3600
	if math.Abs(low-want) > 1e-12 {
		t.Errorf("AverageHappinessMultiplier = %v, want %v", low, want)
	}
}
