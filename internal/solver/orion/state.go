package orion

// Levels holds one level per upgrade, indexed by upgrade id
type Levels [NumUpgrades]int

// Bought returns a copy with upgrade i one level higher
func (l Levels) Bought(i int) Levels {
	l[i]++
	return l
}

// State is the live game state of the feather economy
type State struct {
	Levels      Levels
	Feathers    float64 // Current balance
	ShinyCount  float64 // Shiny feathers found; 0 means estimate from generation
	GoGoOwl     float64 // Owl bonus in percent
	GambitBonus float64 // Gambit multiplier; ignored unless positive
}

// NewState creates a zeroed state
func NewState() *State {
	return &State{}
}

// Clone returns a copy of the state
func (s *State) Clone() *State {
	c := *s
	return &c
}

// mega returns the Mega Reset level, which gates most unlocks
func (l Levels) mega() int {
	return l[MegaReset]
}
