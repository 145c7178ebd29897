package chunk

import "testing"

// TestPackedArrayGetSetRoundTrips checks every index can be written and
// read back independently at a representative bit width.
func TestPackedArrayGetSetRoundTrips(t *testing.T) {
	p := NewPackedArray(5, 40)
	for i := 0; i < p.Len(); i++ {
		p.Set(i, uint32(i%32))
	}
	for i := 0; i < p.Len(); i++ {
		want := uint32(i % 32)
		if got := p.Get(i); got != want {
			t.Fatalf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

// TestPackedArrayValuesDontStraddleWords checks that writing a value at one
// index never perturbs its neighbors, i.e. each value occupies its own
// fixed-width lane within a word.
func TestPackedArrayValuesDontStraddleWords(t *testing.T) {
	p := NewPackedArray(4, 20)
	for i := 0; i < p.Len(); i++ {
		p.Set(i, 0xF)
	}
	p.Set(3, 0)
	for i := 0; i < p.Len(); i++ {
		want := uint32(0xF)
		if i == 3 {
			want = 0
		}
		if got := p.Get(i); got != want {
			t.Fatalf("Get(%d) = %d, want %d (neighbor corrupted)", i, got, want)
		}
	}
}

// TestPackedArrayZeroBitsAlwaysReadsZero checks the degenerate bits==0 case:
// every Get returns 0, and Set with a non-zero value panics.
func TestPackedArrayZeroBitsAlwaysReadsZero(t *testing.T) {
	p := NewPackedArray(0, 10)
	for i := 0; i < p.Len(); i++ {
		if got := p.Get(i); got != 0 {
			t.Fatalf("Get(%d) = %d, want 0", i, got)
		}
	}
	p.Set(0, 0) // must not panic

	defer func() {
		if recover() == nil {
			t.Fatalf("Set(non-zero) on a zero-width array did not panic")
		}
	}()
	p.Set(0, 1)
}

// TestPackedArrayGetAndSetReturnsPreviousValue checks GetAndSet both writes
// the new value and returns what was previously stored.
func TestPackedArrayGetAndSetReturnsPreviousValue(t *testing.T) {
	p := NewPackedArray(6, 4)
	p.Set(2, 17)
	old := p.GetAndSet(2, 40)
	if old != 17 {
		t.Fatalf("GetAndSet returned %d, want 17", old)
	}
	if got := p.Get(2); got != 40 {
		t.Fatalf("Get(2) after GetAndSet = %d, want 40", got)
	}
}

// TestPackedArrayResizePreservesValues checks Resize to a wider bit width
// preserves every logical value.
func TestPackedArrayResizePreservesValues(t *testing.T) {
	p := NewPackedArray(3, 16)
	for i := 0; i < p.Len(); i++ {
		p.Set(i, uint32(i%8))
	}
	wide := p.Resize(8)
	if wide.Bits() != 8 {
		t.Fatalf("Resize(8).Bits() = %d, want 8", wide.Bits())
	}
	for i := 0; i < wide.Len(); i++ {
		want := uint32(i % 8)
		if got := wide.Get(i); got != want {
			t.Fatalf("wide.Get(%d) = %d, want %d", i, got, want)
		}
	}
}

// TestPackedArrayResizeToSameBitsIsNoOp checks Resize returns the receiver
// itself (not a copy) when newBits already matches.
func TestPackedArrayResizeToSameBitsIsNoOp(t *testing.T) {
	p := NewPackedArray(5, 10)
	if p.Resize(5) != p {
		t.Fatalf("Resize(same bits) allocated a new array")
	}
}
