package bubba

import (
	"fmt"

	"github.com/napolitain/solver-idle/internal/memo"
	"github.com/napolitain/solver-idle/internal/solver"
)

// Session owns one meat economy and caches everything derived from it.
// Derived values are recomputed on read only after a relevant mutation.
type Session struct {
	state *State

	levels   memo.Signal // Levels and mindful offsets
	charisma memo.Signal // Charisma slots, emulsify
	dynamics memo.Signal // Pats, gifts, dice, finds
	balance  memo.Signal // Meat

	generation *memo.Derived[float64]
	target     *memo.Derived[solver.Target]
	analysis   *memo.Derived[[]solver.UpgradeAnalysis]
	best       *memo.Derived[int]
}

// NewSession creates a session over a private copy of state
func NewSession(state *State) *Session {
	s := &Session{state: state.Clone()}

	s.generation = memo.NewDerived(s.state.Generation, &s.levels, &s.charisma, &s.dynamics)
	s.target = memo.NewDerived(s.state.Target, &s.levels, &s.charisma)
	s.analysis = memo.NewDerived(s.state.Analyze, &s.levels, &s.charisma, &s.dynamics, &s.balance)
	s.best = memo.NewDerived(func() int { return Best(s.analysis.Get()) },
		&s.levels, &s.charisma, &s.dynamics, &s.balance)

	return s
}

// State returns a copy of the current state
func (s *Session) State() *State {
	return s.state.Clone()
}

// Generation returns meat per minute
func (s *Session) Generation() float64 {
	return s.generation.Get()
}

// Target returns the current milestone
func (s *Session) Target() solver.Target {
	return s.target.Get()
}

// TimeToTarget returns the seconds until the target is affordable
func (s *Session) TimeToTarget() float64 {
	return timeToTarget(s.Target().Cost, s.state.Meat, s.Generation())
}

// Analysis returns the per-upgrade analysis
func (s *Session) Analysis() []solver.UpgradeAnalysis {
	return s.analysis.Get()
}

// Best returns the recommended upgrade or solver.NoRecommendation
func (s *Session) Best() int {
	return s.best.Get()
}

// Buy records the purchase of one level of upgrade i.
// The balance is not debited; the game reports it on the next sync.
func (s *Session) Buy(i int) error {
	if err := checkUpgrade(i); err != nil {
		return err
	}
	s.state.Levels[i]++
	s.levels.Bump()
	return nil
}

// SetLevel overwrites the level of upgrade i
func (s *Session) SetLevel(i, level int) error {
	if err := checkUpgrade(i); err != nil {
		return err
	}
	if level < 0 {
		return fmt.Errorf("negative level %d for %s", level, Names[i])
	}
	s.state.Levels[i] = level
	s.levels.Bump()
	return nil
}

// SetCharisma overwrites the level of a charisma slot
func (s *Session) SetCharisma(slot, level int) error {
	if slot < 0 || slot >= CharismaSlots {
		return fmt.Errorf("unknown charisma slot %d", slot)
	}
	if level < 0 {
		return fmt.Errorf("negative level %d for %s", level, CharismaNames[slot])
	}
	s.state.Charisma[slot] = level
	s.charisma.Bump()
	return nil
}

// SetMeat syncs the meat balance
func (s *Session) SetMeat(meat float64) {
	s.state.Meat = meat
	s.balance.Bump()
}

// SetActivePats syncs the accumulated pats
func (s *Session) SetActivePats(pats float64) {
	s.state.ActivePats = pats
	s.dynamics.Bump()
}

// SetDiceRolls syncs the latest dice rolls
func (s *Session) SetDiceRolls(rolls []int) {
	s.state.DiceRolls = append([]int(nil), rolls...)
	s.dynamics.Bump()
}

// Update applies an arbitrary state change and invalidates everything
func (s *Session) Update(fn func(*State)) {
	fn(s.state)
	s.levels.Bump()
	s.charisma.Bump()
	s.dynamics.Bump()
	s.balance.Bump()
}

func checkUpgrade(i int) error {
	if i < 0 || i >= NumUpgrades {
		return fmt.Errorf("unknown upgrade index %d", i)
	}
	return nil
}
