// Package memo provides pull-based memoized derivations.
//
// A Signal is a versioned input owned by whoever mutates it. A Derived value
// declares the signals it reads and is recomputed lazily, on Get, only when
// one of those signals has been bumped since the cached value was produced.
// Nothing here is safe for concurrent use; callers own one graph per session.
package memo

// Signal is a versioned input
type Signal struct {
	version uint64
}

// Bump marks the input as changed
func (s *Signal) Bump() {
	s.version++
}

// Version returns the current version of the input
func (s *Signal) Version() uint64 {
	return s.version
}

// Derived caches the result of compute until a dependency changes
type Derived[T any] struct {
	compute func() T
	deps    []*Signal
	seen    []uint64
	value   T
	valid   bool
	runs    int
}

// NewDerived creates a derivation over the given signals
func NewDerived[T any](compute func() T, deps ...*Signal) *Derived[T] {
	return &Derived[T]{
		compute: compute,
		deps:    deps,
		seen:    make([]uint64, len(deps)),
	}
}

// Get returns the cached value, recomputing it if any dependency moved
func (d *Derived[T]) Get() T {
	if d.valid && !d.stale() {
		return d.value
	}
	d.value = d.compute()
	for i, dep := range d.deps {
		d.seen[i] = dep.Version()
	}
	d.valid = true
	d.runs++
	return d.value
}

// Runs reports how many times the value has been computed
func (d *Derived[T]) Runs() int {
	return d.runs
}

func (d *Derived[T]) stale() bool {
	for i, dep := range d.deps {
		if d.seen[i] != dep.Version() {
			return true
		}
	}
	return false
}
