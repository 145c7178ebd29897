package rng

import "testing"

// TestNewSeed checks the documented seed==1 state vector.
func TestNewSeed(t *testing.T) {
	x := New(1)
	lo, hi := x.State()
	if lo != 5272463233947570727 || hi != 1927618558350093866 {
		t.Fatalf("New(1) = (%d, %d), want (5272463233947570727, 1927618558350093866)", lo, hi)
	}
}

// TestNextU64Forced checks next_u64 from a forced state, per the documented
// scenario: state (2, 1) yields 0x60002 on the first draw.
func TestNextU64Forced(t *testing.T) {
	x := NewFromState(2, 1)
	if got := x.NextU64(); got != 0x60002 {
		t.Fatalf("NextU64() = %#x, want 0x60002", got)
	}
}

// TestForkPositional checks the documented positional-fork scenario against
// the reference's recorded vector.
func TestForkPositional(t *testing.T) {
	x := New(0x9B9B46C40A)
	f := x.ForkPositional()
	lo, hi := f.State()
	wantLo := uint64(5394267108863772786)
	wantHi := uint64(9976885368611085932) // -8469858705098465684 as u64
	if lo != wantLo || hi != wantHi {
		t.Fatalf("ForkPositional() = (%d, %d), want (%d, %d)", lo, hi, wantLo, wantHi)
	}

	at := f.At(20, -10, 9512)
	got := int64(at.NextU64())
	if got != -2162372296719048723 {
		t.Fatalf("At(20,-10,9512).NextU64() = %d, want -2162372296719048723", got)
	}
}

// TestSkipDrawCount verifies Skip advances the state identically to calling
// NextU64 the same number of times, which is the invariant zero-amplitude
// noise octaves rely on.
func TestSkipDrawCount(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 262; i++ {
		a.NextU64()
	}
	b.Skip(262)
	aLo, aHi := a.State()
	bLo, bHi := b.State()
	if aLo != bLo || aHi != bHi {
		t.Fatalf("Skip(262) diverged from 262x NextU64()")
	}
}
