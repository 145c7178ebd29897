package density

import "testing"

// TestAbsSample checks NewAbs returns the absolute value pointwise and
// derives Min()=0 when the argument's range straddles zero.
func TestAbsSample(t *testing.T) {
	arg := NewYClampedGradient(0, 10, -5, 5)
	f := NewAbs(arg)
	if got := f.Sample(Pos{Y: 0}, ctx()); got != 5 {
		t.Fatalf("Abs(-5) = %v, want 5", got)
	}
	if got := f.Sample(Pos{Y: 10}, ctx()); got != 5 {
		t.Fatalf("Abs(5) = %v, want 5", got)
	}
	if f.Min() != 0 {
		t.Fatalf("Abs.Min() = %v, want 0 (range straddles zero)", f.Min())
	}
}

// TestSquareSample checks NewSquare squares pointwise.
func TestSquareSample(t *testing.T) {
	f := NewSquare(NewConst(-3))
	if got := f.Sample(Pos{}, ctx()); got != 9 {
		t.Fatalf("Square(-3) = %v, want 9", got)
	}
}

// TestCubeSample checks NewCube cubes pointwise, preserving sign.
func TestCubeSample(t *testing.T) {
	f := NewCube(NewConst(-2))
	if got := f.Sample(Pos{}, ctx()); got != -8 {
		t.Fatalf("Cube(-2) = %v, want -8", got)
	}
}

// TestHalfNegativeSample checks positive values pass through unchanged and
// negative values are halved.
func TestHalfNegativeSample(t *testing.T) {
	f := NewHalfNegative(NewConst(4))
	if got := f.Sample(Pos{}, ctx()); got != 4 {
		t.Fatalf("HalfNegative(4) = %v, want 4", got)
	}
	fn := NewHalfNegative(NewConst(-4))
	if got := fn.Sample(Pos{}, ctx()); got != -2 {
		t.Fatalf("HalfNegative(-4) = %v, want -2", got)
	}
}

// TestQuarterNegativeSample checks positive values pass through and
// negative values are quartered.
func TestQuarterNegativeSample(t *testing.T) {
	f := NewQuarterNegative(NewConst(8))
	if got := f.Sample(Pos{}, ctx()); got != 8 {
		t.Fatalf("QuarterNegative(8) = %v, want 8", got)
	}
	fn := NewQuarterNegative(NewConst(-8))
	if got := fn.Sample(Pos{}, ctx()); got != -2 {
		t.Fatalf("QuarterNegative(-8) = %v, want -2", got)
	}
}

// TestSqueezeClampsThenApplies checks Squeeze clamps its input to ±1 before
// applying x/2 - x^3/24, so values outside ±1 saturate at the endpoint
// formula rather than growing unboundedly.
func TestSqueezeClampsThenApplies(t *testing.T) {
	f := NewSqueeze(NewConst(5))
	want := 1.0/2 - 1.0/24
	if got := f.Sample(Pos{}, ctx()); got != want {
		t.Fatalf("Squeeze(5) = %v, want %v (clamped to 1)", got, want)
	}
	if f.Max() != want {
		t.Fatalf("Squeeze.Max() = %v, want %v", f.Max(), want)
	}
}
