package bubba

// Levels holds one level per upgrade, indexed by upgrade id.
// It is an array so assignment yields an independent copy.
type Levels [NumUpgrades]int

// Sum returns the total of all levels
func (l Levels) Sum() int {
	total := 0
	for _, v := range l {
		total += v
	}
	return total
}

// Bought returns a copy with upgrade i one level higher
func (l Levels) Bought(i int) Levels {
	l[i]++
	return l
}

// State is the live game state of the meat economy
type State struct {
	Levels         Levels
	MindfulOffsets Levels // Credited levels ignored when pricing each upgrade
	Charisma       [CharismaSlots]int

	EmulsifiedIndex int    // Charisma slot tripled once unlocked, or NotEmulsified
	SelectedGifts   [2]int // Gift choices, NoGift when empty

	Meat           float64 // Current balance
	ActivePats     float64 // Accumulated pats of the current session
	PatsPerHour    float64 // Pat rate used to average future happiness
	PoppyFishPower float64
	CoinsFound     float64
	DiceRolls      []int // Most recent roll of each die
}

// NewState creates a zeroed state
func NewState() *State {
	return &State{
		EmulsifiedIndex: NotEmulsified,
		SelectedGifts:   [2]int{NoGift, NoGift},
		PatsPerHour:     DefaultPatsPerHour,
	}
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	c := *s
	if s.DiceRolls != nil {
		c.DiceRolls = append([]int(nil), s.DiceRolls...)
	}
	return &c
}

// HasGift reports whether gift g is selected in either slot
func (s *State) HasGift(g int) bool {
	return s.SelectedGifts[0] == g || s.SelectedGifts[1] == g
}

// activityWeight is the share of full engagement reached by the player
func (s *State) activityWeight() float64 {
	if s.ActivePats <= 0 {
		return 0
	}
	return min(1, s.ActivePats/ActivityWeightPats)
}
