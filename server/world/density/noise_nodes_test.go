package density

import (
	"testing"

	"github.com/dm-vev/adamant/server/world/rng"
)

func resolvedHolder(tag string, firstOctave int, amps []float64) *NoiseHolder {
	h := NewNoiseHolder(tag, firstOctave, amps)
	h.Resolve(rng.New(12345).ForkTag(tag))
	return h
}

// TestNoiseHolderSampleBeforeResolvePanics checks the documented programmer
// error: sampling a holder SetupNoise never reached must panic rather than
// silently dereference a nil octave stack.
func TestNoiseHolderSampleBeforeResolvePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Sample on unresolved NoiseHolder did not panic")
		}
	}()
	h := NewNoiseHolder("minecraft:test", 0, []float64{1})
	h.Sample(0, 0, 0)
}

// TestNoiseHolderResolveIsIdempotent checks a second Resolve call does not
// replace the already-resolved instance (so deduplicated holders keep the
// draws from their first resolution).
func TestNoiseHolderResolveIsIdempotent(t *testing.T) {
	h := NewNoiseHolder("minecraft:test", 0, []float64{1, 1})
	r1 := rng.New(1)
	h.Resolve(r1)
	first := h.instance
	h.Resolve(rng.New(999))
	if h.instance != first {
		t.Fatalf("second Resolve replaced the holder's instance")
	}
}

// TestNoiseSamplesScaledPosition checks Noise scales X/Z by XZScale and Y by
// YScale before delegating to the holder, by comparing against a direct
// holder call at the pre-scaled coordinates.
func TestNoiseSamplesScaledPosition(t *testing.T) {
	h := resolvedHolder("minecraft:continentalness", -7, []float64{1, 1, 1})
	n := NewNoise(h, 0.25, 0.125)
	pos := Pos{X: 40, Y: 16, Z: -80}
	want := h.Sample(40*0.25, 16*0.125, -80*0.25)
	if got := n.Sample(pos, ctx()); got != want {
		t.Fatalf("Noise.Sample() = %v, want %v", got, want)
	}
	if n.Min() != -h.maxValue() || n.Max() != h.maxValue() {
		t.Fatalf("Noise bounds = (%v, %v), want (%v, %v)", n.Min(), n.Max(), -h.maxValue(), h.maxValue())
	}
}

// TestShiftAAndShiftBUseDocumentedAxes checks ShiftA samples (0.25x, 0,
// 0.25z)*4 and ShiftB samples (0.25z, 0.25x, 0)*4, matching the documented
// axis permutation used to offset terrain noise sampling.
func TestShiftAAndShiftBUseDocumentedAxes(t *testing.T) {
	h := resolvedHolder("minecraft:offset", 0, []float64{1})
	a := NewShiftA(h)
	b := NewShiftB(h)
	pos := Pos{X: 8, Y: 0, Z: 20}

	wantA := h.Sample(8*0.25, 0, 20*0.25) * 4
	if got := a.Sample(pos, ctx()); got != wantA {
		t.Fatalf("ShiftA.Sample() = %v, want %v", got, wantA)
	}
	wantB := h.Sample(20*0.25, 8*0.25, 0) * 4
	if got := b.Sample(pos, ctx()); got != wantB {
		t.Fatalf("ShiftB.Sample() = %v, want %v", got, wantB)
	}
}

// TestShiftedNoiseAppliesPerAxisShifts checks ShiftedNoise adds each shift
// function's own sampled value onto the scaled base coordinate before
// delegating to the holder.
func TestShiftedNoiseAppliesPerAxisShifts(t *testing.T) {
	h := resolvedHolder("minecraft:terrain", 0, []float64{1, 1})
	sx := NewConst(1)
	sy := NewConst(2)
	sz := NewConst(3)
	s := NewShiftedNoise(h, sx, sy, sz, 0.5, 0.25)
	pos := Pos{X: 10, Y: 20, Z: 30}
	cx := ctx()

	want := h.Sample(10*0.5+1, 20*0.25+2, 30*0.5+3)
	if got := s.Sample(pos, cx); got != want {
		t.Fatalf("ShiftedNoise.Sample() = %v, want %v", got, want)
	}
}

// TestRarityScaleType1Thresholds checks RarityType1's four-way piecewise
// scale mapping at representative points in each bucket.
func TestRarityScaleType1Thresholds(t *testing.T) {
	cases := []struct {
		v    float64
		want float64
	}{
		{-0.9, 0.75},
		{-0.2, 1},
		{0.2, 1.5},
		{0.9, 2},
	}
	for _, c := range cases {
		if got := rarityScale(RarityType1, c.v); got != c.want {
			t.Fatalf("rarityScale(Type1, %v) = %v, want %v", c.v, got, c.want)
		}
	}
}

// TestRarityScaleType2Thresholds checks RarityType2's five-way piecewise
// scale mapping.
func TestRarityScaleType2Thresholds(t *testing.T) {
	cases := []struct {
		v    float64
		want float64
	}{
		{-0.9, 0.5},
		{-0.6, 0.75},
		{0, 1},
		{0.6, 2},
		{0.9, 3},
	}
	for _, c := range cases {
		if got := rarityScale(RarityType2, c.v); got != c.want {
			t.Fatalf("rarityScale(Type2, %v) = %v, want %v", c.v, got, c.want)
		}
	}
}

// TestWeirdScaledSamplerNeverNegative checks the sampler always returns a
// non-negative value (it takes |holder sample|) scaled by the rarity factor,
// and reports Min()==0.
func TestWeirdScaledSamplerNeverNegative(t *testing.T) {
	h := resolvedHolder("minecraft:ore_vein", 0, []float64{1, 1, 1})
	w := NewWeirdScaledSampler(NewConst(-0.9), h, RarityType1)
	cx := ctx()
	for _, p := range []Pos{{X: 0}, {X: 17, Y: -3, Z: 42}, {X: -100, Y: 100, Z: 100}} {
		if got := w.Sample(p, cx); got < 0 {
			t.Fatalf("Sample(%v) = %v, want >= 0", p, got)
		}
	}
	if w.Min() != 0 {
		t.Fatalf("Min() = %v, want 0", w.Min())
	}
}
