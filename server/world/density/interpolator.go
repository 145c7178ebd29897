package density

// Interpolated wraps Inner with the trilinear cell interpolator: instead of
// sampling Inner at every block position, the generator drives it through
// Initialize/AdvanceCellX/SelectCellYZ/swapSlices once per cell grid and
// lets Sample read back cheap interpolated values for every block inside
// the current cell. Samples taken while ctx.FillingCell is true use the
// live trilinear formula over the eight corners; otherwise Value is
// returned as-is (the value last computed by an UpdateFor* step).
type Interpolated struct {
	Inner Function

	slice0, slice1 [][]float64 // [z][y] for one X layer each, length cell_count_xz+1 each
	cellCountXZ    int
	cellCountY     int

	noise000, noise001, noise010, noise011 float64
	noise100, noise101, noise110, noise111 float64

	value float64
}

func NewInterpolated(inner Function) *Interpolated { return &Interpolated{Inner: inner} }

// AllocateSlices sizes the two slice buffers for one chunk's cell grid,
// called by SetupNoise.
func (n *Interpolated) AllocateSlices(cellCountXZ, cellCountY int) {
	n.cellCountXZ, n.cellCountY = cellCountXZ, cellCountY
	n.slice0 = newSliceBuf(cellCountXZ, cellCountY)
	n.slice1 = newSliceBuf(cellCountXZ, cellCountY)
}

func newSliceBuf(cellCountXZ, cellCountY int) [][]float64 {
	s := make([][]float64, cellCountXZ+1)
	for i := range s {
		s[i] = make([]float64, cellCountY+1)
	}
	return s
}

// Initialize fills every row of slice0 at the current X, setting
// ctx.Filler to Slice itself before invoking Inner.FillArray.
func (n *Interpolated) Initialize(ctx *Context) {
	ctx.Filler = FillerSlice
	for z := 0; z <= n.cellCountXZ; z++ {
		n.fillSliceColumn(n.slice0[z], ctx)
	}
}

// AdvanceCellX fills slice1 for the next X layer the same way.
func (n *Interpolated) AdvanceCellX(ctx *Context) {
	ctx.Filler = FillerSlice
	for z := 0; z <= n.cellCountXZ; z++ {
		n.fillSliceColumn(n.slice1[z], ctx)
	}
}

func (n *Interpolated) fillSliceColumn(buf []float64, ctx *Context) {
	n.Inner.FillArray(buf, ctx)
}

// SelectCellYZ loads the eight corner values surrounding cell (y, z) from
// slice0/slice1.
func (n *Interpolated) SelectCellYZ(y, z int) {
	n.noise000 = n.slice0[z][y]
	n.noise001 = n.slice0[z+1][y]
	n.noise100 = n.slice1[z][y]
	n.noise101 = n.slice1[z+1][y]
	n.noise010 = n.slice0[z][y+1]
	n.noise011 = n.slice0[z+1][y+1]
	n.noise110 = n.slice1[z][y+1]
	n.noise111 = n.slice1[z+1][y+1]
}

// UpdateForY linearly interpolates the eight corners down to four along Y.
func (n *Interpolated) UpdateForY(inCellY float64) {
	n.noise000 = lerp(inCellY, n.noise000, n.noise010)
	n.noise100 = lerp(inCellY, n.noise100, n.noise110)
	n.noise001 = lerp(inCellY, n.noise001, n.noise011)
	n.noise101 = lerp(inCellY, n.noise101, n.noise111)
}

// UpdateForX interpolates the remaining pair along X.
func (n *Interpolated) UpdateForX(inCellX float64) {
	n.noise000 = lerp(inCellX, n.noise000, n.noise100)
	n.noise001 = lerp(inCellX, n.noise001, n.noise101)
}

// UpdateForZ collapses to the final scalar along Z and stores it in Value.
func (n *Interpolated) UpdateForZ(inCellZ float64) {
	n.value = lerp(inCellZ, n.noise000, n.noise001)
}

// SwapSlices moves slice1 into slice0's place at the end of an X step.
func (n *Interpolated) SwapSlices() {
	n.slice0, n.slice1 = n.slice1, n.slice0
}

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func (n *Interpolated) Sample(pos Pos, ctx *Context) float64 {
	if !ctx.FillingCell {
		return n.value
	}
	tx := ctx.InCellX
	ty := ctx.InCellY
	tz := ctx.InCellZ
	return trilerp(tx, ty, tz,
		n.noise000, n.noise001, n.noise010, n.noise011,
		n.noise100, n.noise101, n.noise110, n.noise111)
}

func trilerp(tx, ty, tz float64, v000, v001, v010, v011, v100, v101, v110, v111 float64) float64 {
	x00 := lerp(tx, v000, v100)
	x01 := lerp(tx, v001, v101)
	x10 := lerp(tx, v010, v110)
	x11 := lerp(tx, v011, v111)
	y0 := lerp(ty, x00, x10)
	y1 := lerp(ty, x01, x11)
	return lerp(tz, y0, y1)
}

func (n *Interpolated) FillArray(buf []float64, ctx *Context) { fillArrayDefault(n, buf, ctx) }
func (n *Interpolated) Min() float64                          { return n.Inner.Min() }
func (n *Interpolated) Max() float64                          { return n.Inner.Max() }
