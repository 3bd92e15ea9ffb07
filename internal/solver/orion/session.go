package orion

import (
	"fmt"

	"github.com/napolitain/solver-idle/internal/memo"
	"github.com/napolitain/solver-idle/internal/solver"
)

// Session owns one feather economy and caches everything derived from it
type Session struct {
	state *State

	levels  memo.Signal
	boosts  memo.Signal // Shiny count, owl, gambit
	balance memo.Signal // Feathers

	generation *memo.Derived[float64]
	target     *memo.Derived[solver.Target]
	plan       *memo.Derived[Plan]
	analysis   *memo.Derived[[]solver.UpgradeAnalysis]
	best       *memo.Derived[int]
}

// NewSession creates a session over a private copy of state
func NewSession(state *State) *Session {
	s := &Session{state: state.Clone()}

	s.generation = memo.NewDerived(s.state.Generation, &s.levels, &s.boosts)
	s.target = memo.NewDerived(s.state.Target, &s.levels)
	s.plan = memo.NewDerived(func() Plan {
		return s.state.Lookahead(s.state.Levels, s.state.effectiveShiny())
	}, &s.levels, &s.boosts)
	s.analysis = memo.NewDerived(s.state.Analyze, &s.levels, &s.boosts, &s.balance)
	s.best = memo.NewDerived(func() int { return Best(s.analysis.Get()) },
		&s.levels, &s.boosts, &s.balance)

	return s
}

// State returns a copy of the current state
func (s *Session) State() *State {
	return s.state.Clone()
}

// Generation returns feathers per second
func (s *Session) Generation() float64 {
	return s.generation.Get()
}

// Target returns the cheaper reset
func (s *Session) Target() solver.Target {
	return s.target.Get()
}

// TimeToTarget returns the seconds until the target is affordable
func (s *Session) TimeToTarget() float64 {
	return s.state.TimeToTarget()
}

// Plan returns the purchases the lookahead expects before the next reset
func (s *Session) Plan() Plan {
	return s.plan.Get()
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

// SetFeathers syncs the feather balance
func (s *Session) SetFeathers(feathers float64) {
	s.state.Feathers = feathers
	s.balance.Bump()
}

// SetShinyCount syncs the shiny feathers found
func (s *Session) SetShinyCount(count float64) {
	s.state.ShinyCount = count
	s.boosts.Bump()
}

// SetBoosts syncs the owl and gambit bonuses
func (s *Session) SetBoosts(goGoOwl, gambit float64) {
	s.state.GoGoOwl = goGoOwl
	s.state.GambitBonus = gambit
	s.boosts.Bump()
}

func checkUpgrade(i int) error {
	if i < 0 || i >= NumUpgrades {
		return fmt.Errorf("unknown upgrade index %d", i)
	}
	return nil
}
