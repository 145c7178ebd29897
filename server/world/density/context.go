// Package density implements the lazily-evaluated DAG of numeric density
// functions that the noise-based chunk generator samples to decide terrain
// shape: noise leaves, arithmetic combinators, splines, caches and the
// trilinear cell interpolator that amortizes expensive samples across a
// 4x8x4 cell. Every node is a small, directly-dispatched struct rather than
// an interface hierarchy with per-kind virtual calls, because sample() is
// invoked on the order of billions of times per chunk and per-call
// dispatch overhead compounds quickly.
package density

// Pos is an integer position in the density graph's sample space: always
// full block coordinates, never quart or section-relative ones. Callers
// convert at the boundary (biome sampling uses quart positions; the
// generator passes absolute block coordinates).
type Pos struct {
	X, Y, Z int
}

// Filler selects which bulk-fill strategy FillArray uses when asked to
// populate a buffer: an in-cell grid (Default) or a single vertical column
// of samples (Slice), matching the two shapes the generator's interpolator
// driver needs.
type Filler int

const (
	FillerDefault Filler = iota
	FillerSlice
)

// Blender mixes freshly generated densities with densities carried over
// from adjacent, already-generated ("old") terrain. This core never
// actually blends across chunk boundaries — world stitching belongs to the
// chunk-loading layer, out of scope here — so Blender is the documented
// no-op: BlendDensity returns its argument unchanged and BlendAlpha/Offset
// return neutral constants. The interface is still exercised by every
// Context so the BlendDensity/BlendAlpha/BlendOffset nodes have something
// concrete to call.
type Blender struct {
	lastAlpha, lastOffset float64
}

// NewBlender returns the no-op Blender used by the generator.
func NewBlender() *Blender { return &Blender{lastAlpha: 1, lastOffset: 0} }

// Blend mixes arg with any old-terrain density at pos. The no-op
// implementation returns arg unchanged but still records (alpha, offset)
// so BlendAlpha/BlendOffset observe a consistent pair.
func (b *Blender) Blend(pos Pos, arg float64) float64 {
	b.lastAlpha, b.lastOffset = 1, 0
	return arg
}

// Alpha returns the blend weight last computed by Blend.
func (b *Blender) Alpha() float64 { return b.lastAlpha }

// Offset returns the blend offset last computed by Blend.
func (b *Blender) Offset() float64 { return b.lastOffset }

// Context carries the per-column mutable state a density-function graph
// needs while it's being scanned: cell geometry, the current in-cell
// fractional coordinates, invalidation counters for the cache nodes, and
// the active Blender. One Context is created per chunk generation pass and
// discarded afterwards; it is never shared between concurrently generating
// chunks.
type Context struct {
	CellWidth, CellHeight     int
	CellCountXZ, CellCountY   int
	CellNoiseMinY             int
	FirstCellX, FirstCellZ    int
	FirstNoiseX, FirstNoiseZ  int
	NoiseSizeXZ               int

	CellStartBlockX, CellStartBlockY, CellStartBlockZ int
	InCellX, InCellY, InCellZ                         float64

	InterpolationCounter      int64
	ArrayInterpolationCounter int64

	Filler      Filler
	FillingCell bool

	Blender *Blender
}

// NewContext creates a Context sized for one chunk, given the generator's
// cell geometry (cellWidth/cellHeight blocks per cell horizontally and
// vertically) and the noise section's vertical extent in cells.
func NewContext(cellWidth, cellHeight, cellCountXZ, cellCountY, cellNoiseMinY int) *Context {
	return &Context{
		CellWidth:     cellWidth,
		CellHeight:    cellHeight,
		CellCountXZ:   cellCountXZ,
		CellCountY:    cellCountY,
		CellNoiseMinY: cellNoiseMinY,
		Blender:       NewBlender(),
	}
}

// BumpInterpolation increments the interpolation-invalidation counter,
// called on every slice advance so CacheOnce nodes know their memoized
// value is stale.
func (c *Context) BumpInterpolation() { c.InterpolationCounter++ }

// BumpArrayInterpolation increments the array-interpolation counter,
// called on every Y step within a cell.
func (c *Context) BumpArrayInterpolation() { c.ArrayInterpolationCounter++ }
