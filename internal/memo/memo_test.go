package memo

import "testing"

func TestDerivedRecomputesOnlyWhenInputChanges(t *testing.T) {
	var levels, balance Signal
	x := 2

	d := NewDerived(func() int { return x * 10 }, &levels)

	if got := d.Get(); got != 20 {
		t.Fatalf("Get() = %d, want 20", got)
	}
	d.Get()
	if d.Runs() != 1 {
		t.Errorf("expected 1 computation, got %d", d.Runs())
	}

	// Unrelated input must not trigger recompute
	balance.Bump()
	d.Get()
	if d.Runs() != 1 {
		t.Errorf("unrelated bump recomputed: runs=%d", d.Runs())
	}

	x = 3
	levels.Bump()
	if got := d.Get(); got != 30 {
		t.Errorf("Get() after bump = %d, want 30", got)
	}
	if d.Runs() != 2 {
		t.Errorf("expected 2 computations, got %d", d.Runs())
	}
}

func TestDerivedMultipleDeps(t *testing.T) {
	var a, b Signal
	calls := 0
	d := NewDerived(func() int { calls++; return calls }, &a, &b)

	d.Get()
	b.Bump()
	d.Get()
	a.Bump()
	a.Bump()
	d.Get()

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}
