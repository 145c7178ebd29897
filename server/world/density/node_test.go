package density

import "testing"

// TestConstSampleAndFillArray checks Const returns its fixed value for any
// position and fills an entire buffer with it.
func TestConstSampleAndFillArray(t *testing.T) {
	c := NewConst(2.5)
	if got := c.Sample(Pos{X: 100, Y: -50, Z: 7}, ctx()); got != 2.5 {
		t.Fatalf("Sample() = %v, want 2.5", got)
	}
	if c.Min() != 2.5 || c.Max() != 2.5 {
		t.Fatalf("Min/Max = (%v, %v), want (2.5, 2.5)", c.Min(), c.Max())
	}
	buf := make([]float64, 4)
	c.FillArray(buf, ctx())
	for i, v := range buf {
		if v != 2.5 {
			t.Fatalf("buf[%d] = %v, want 2.5", i, v)
		}
	}
}

// TestYClampedGradientClampsOutsideRange checks the gradient saturates at
// FromV/ToV outside [FromY, ToY] and interpolates linearly inside it.
func TestYClampedGradientClampsOutsideRange(t *testing.T) {
	g := NewYClampedGradient(0, 10, -1, 1)
	if got := g.Sample(Pos{Y: -100}, ctx()); got != -1 {
		t.Fatalf("Sample(Y=-100) = %v, want -1", got)
	}
	if got := g.Sample(Pos{Y: 1000}, ctx()); got != 1 {
		t.Fatalf("Sample(Y=1000) = %v, want 1", got)
	}
	if got := g.Sample(Pos{Y: 5}, ctx()); got != 0 {
		t.Fatalf("Sample(Y=5) = %v, want 0 (midpoint)", got)
	}
}

// TestYClampedGradientMinMaxHandlesInvertedRange checks Min/Max still report
// the correct low/high bound when FromV > ToV (a descending gradient).
func TestYClampedGradientMinMaxHandlesInvertedRange(t *testing.T) {
	g := NewYClampedGradient(0, 10, 5, -5)
	if g.Min() != -5 || g.Max() != 5 {
		t.Fatalf("Min/Max = (%v, %v), want (-5, 5)", g.Min(), g.Max())
	}
}

// TestFillArrayDefaultSliceFillerWalksCellColumn checks that with
// ctx.Filler == FillerSlice, FillArray samples one value per Y cell
// boundary at the fixed (CellStartBlockX, CellStartBlockZ) column.
func TestFillArrayDefaultSliceFillerWalksCellColumn(t *testing.T) {
	cx := ctx()
	cx.Filler = FillerSlice
	cx.CellNoiseMinY = -2
	g := NewYClampedGradient(-1000, 1000, -1000, 1000) // identity-ish: Sample == Y
	buf := make([]float64, cx.CellCountY+1)
	g.FillArray(buf, cx)
	for i, v := range buf {
		wantY := float64((cx.CellNoiseMinY + i) * cx.CellHeight)
		if v != wantY {
			t.Fatalf("buf[%d] = %v, want %v", i, v, wantY)
		}
	}
}

// TestFillArrayDefaultCellFillerWalksXYZGrid checks that with the default
// filler, FillArray visits the (cellWidth+1)x(cellHeight+1)x(cellWidth+1)
// grid in X-outer, Y-middle, Z-inner order.
func TestFillArrayDefaultCellFillerWalksXYZGrid(t *testing.T) {
	cx := ctx()
	cx.CellStartBlockX, cx.CellStartBlockY, cx.CellStartBlockZ = 0, 0, 0
	recorded := make([]Pos, 0)
	probe := &probeFn{record: &recorded}
	buf := make([]float64, (cx.CellWidth+1)*(cx.CellHeight+1)*(cx.CellWidth+1))
	fillArrayDefault(probe, buf, cx)

	want := Pos{X: 0, Y: 0, Z: 1}
	if len(recorded) < 2 || recorded[1] != want {
		t.Fatalf("second visited pos = %v, want %v (Z innermost)", recorded[1], want)
	}
}

type probeFn struct {
	record *[]Pos
}

func (p *probeFn) Sample(pos Pos, _ *Context) float64 {
	*p.record = append(*p.record, pos)
	return 0
}
func (p *probeFn) FillArray([]float64, *Context) {}
func (p *probeFn) Min() float64                  { return 0 }
func (p *probeFn) Max() float64                  { return 0 }
