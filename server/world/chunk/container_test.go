package chunk

import "testing"

// TestPalettedContainerStartsAllInitial checks every cell reads back the
// constructor's initial value before any Set call.
func TestPalettedContainerStartsAllInitial(t *testing.T) {
	c := NewPalettedContainer(64, 9, 4, 9, 15)
	for i := 0; i < c.Count(); i++ {
		if got := c.Get(i); got != 9 {
			t.Fatalf("Get(%d) = %d, want 9", i, got)
		}
	}
	if c.Variant() != "single" {
		t.Fatalf("Variant() = %q, want single", c.Variant())
	}
}

// TestPalettedContainerSetAndGetRoundTrips checks a handful of distinct
// writes across the container's lifetime (spanning single -> hash_map ->
// direct escalations) all read back correctly afterward.
func TestPalettedContainerSetAndGetRoundTrips(t *testing.T) {
	const n = 4096 // 16^3
	c := NewPalettedContainer(n, 0, 4, 9, 15)
	writes := map[int]uint32{0: 5, 1: 5, 100: 42, 200: 4095, 4095: 1}
	for i, v := range writes {
		c.Set(i, v)
	}
	for i := 0; i < n; i++ {
		want := uint32(0)
		if v, ok := writes[i]; ok {
			want = v
		}
		if got := c.Get(i); got != want {
			t.Fatalf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

// TestPalettedContainerEscalatesPastDirectThreshold checks that writing more
// distinct GlobalIDs than directThreshold allows forces the container into
// Direct storage, after which every written value still round-trips.
func TestPalettedContainerEscalatesPastDirectThreshold(t *testing.T) {
	c := NewPalettedContainer(16, 0, 1, 2, 6) // tiny thresholds to force escalation quickly
	for i := 0; i < 10; i++ {
		c.Set(i, uint32(i+1))
	}
	if c.Variant() != "direct" {
		t.Fatalf("Variant() = %q, want direct after exceeding directThreshold", c.Variant())
	}
	for i := 0; i < 10; i++ {
		if got := c.Get(i); got != uint32(i+1) {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i+1)
		}
	}
	if c.BitsPerEntry() != 6 {
		t.Fatalf("BitsPerEntry() = %d, want maxBits 6", c.BitsPerEntry())
	}
}

// TestPalettedContainerNonEmptyCount checks the linear-scan count matches
// the number of cells not equal to the designated empty GlobalID.
func TestPalettedContainerNonEmptyCount(t *testing.T) {
	c := NewPalettedContainer(8, 0, 4, 9, 15)
	c.Set(0, 1)
	c.Set(3, 2)
	c.Set(5, 0) // writing the empty value back explicitly changes nothing
	if got := c.NonEmptyCount(0); got != 2 {
		t.Fatalf("NonEmptyCount(0) = %d, want 2", got)
	}
}

// TestPalettedContainerPaletteEntriesMatchByLocalIDOrder checks
// PaletteEntries lists every registered GlobalID in local-ID order, while
// the palette is still in the hash-map variant.
func TestPalettedContainerPaletteEntriesMatchByLocalIDOrder(t *testing.T) {
	c := NewPalettedContainer(8, 0, 4, 9, 15)
	c.Set(0, 10)
	c.Set(1, 20)
	c.Set(2, 30)
	entries := c.PaletteEntries()
	want := map[uint32]bool{0: true, 10: true, 20: true, 30: true}
	if len(entries) != len(want) {
		t.Fatalf("PaletteEntries() = %v, want %d entries", entries, len(want))
	}
	for _, e := range entries {
		if !want[e] {
			t.Fatalf("PaletteEntries() contains unexpected %d", e)
		}
	}
}
