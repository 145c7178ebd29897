package density

import "testing"

// TestSetupNoiseDeduplicatesSharedHolder checks that two leaf nodes
// referencing the same *NoiseHolder (by pointer, as JSON decoding
// deduplicates via Resolver) only get resolved once: the holder ends up
// resolved and the router collects it exactly once.
func TestSetupNoiseDeduplicatesSharedHolder(t *testing.T) {
	shared := NewNoiseHolder("minecraft:continentalness", 0, []float64{1, 1})
	r := &NoiseRouter{
		Continents: NewNoise(shared, 1, 1),
		Erosion:    NewShiftA(shared),
	}
	SetupNoise(r, 42, 0, 0, 4, 4, 48, 64)

	if shared.instance == nil {
		t.Fatalf("shared holder was not resolved by SetupNoise")
	}
	if len(r.holders) != 1 {
		t.Fatalf("r.holders = %d, want 1 (deduplicated)", len(r.holders))
	}
}

// TestSetupNoiseSizesInterpolatedSlices checks that every *Interpolated
// node reachable from the router gets its slice buffers sized per the
// requested cell geometry.
func TestSetupNoiseSizesInterpolatedSlices(t *testing.T) {
	inner := NewConst(0)
	in := NewInterpolated(inner)
	r := &NoiseRouter{FinalDensity: in}
	SetupNoise(r, 7, 0, 0, 4, 4, 48, 64)

	if len(in.slice0) != 5 || len(in.slice0[0]) != 49 {
		t.Fatalf("slice0 shape = %dx%d, want 5x49", len(in.slice0), len(in.slice0[0]))
	}
	got := r.Interpolated()
	if len(got) != 1 || got[0] != in {
		t.Fatalf("Interpolated() = %v, want [in]", got)
	}
}

// TestSetupNoiseMaterializesFlatCache checks a *FlatCache reachable from
// the router gets Materialize called so in-lattice Sample calls no longer
// fall through to Arg.
func TestSetupNoiseMaterializesFlatCache(t *testing.T) {
	inner := &countingFn{Function: NewConst(5)}
	fc := NewFlatCache(inner)
	r := &NoiseRouter{Temperature: fc}
	SetupNoise(r, 3, 0, 0, 4, 4, 48, 64)

	callsAfterSetup := inner.calls
	if got := fc.Sample(Pos{X: 0, Y: 0, Z: 0}, ctx()); got != 5 {
		t.Fatalf("Sample() = %v, want 5", got)
	}
	if inner.calls != callsAfterSetup {
		t.Fatalf("inner.calls grew by %d after an in-lattice Sample, want 0 (materialized)", inner.calls-callsAfterSetup)
	}
}

// TestCollectNodesWalksNestedCombinators checks collectNodes reaches a
// *NoiseHolder buried under Add/Mul/Clamp wrappers, not just direct leaves.
func TestCollectNodesWalksNestedCombinators(t *testing.T) {
	h := NewNoiseHolder("minecraft:buried", 0, []float64{1})
	nested := NewClamp(NewAdd(NewConst(1), NewMul(NewNoise(h, 1, 1), NewConst(2))), -5, 5)
	r := &NoiseRouter{Ridges: nested}
	SetupNoise(r, 9, 0, 0, 4, 4, 48, 64)

	if h.instance == nil {
		t.Fatalf("NoiseHolder nested under Clamp/Add/Mul was not resolved")
	}
}
