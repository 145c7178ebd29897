package density

import (
	"math"

	"github.com/brentp/intintmap"
)

// CacheOnce memoizes the last sample taken against Context's
// InterpolationCounter, so repeated Sample calls at the same interpolation
// step reuse one evaluation instead of re-walking Arg.
type CacheOnce struct {
	Arg Function

	hasValue   bool
	lastCount  int64
	lastValue  float64
	hasArray   bool
	lastBuf    []float64
}

func NewCacheOnce(arg Function) *CacheOnce { return &CacheOnce{Arg: arg} }

func (c *CacheOnce) Sample(pos Pos, ctx *Context) float64 {
	if c.hasValue && c.lastCount == ctx.InterpolationCounter {
		return c.lastValue
	}
	c.lastValue = c.Arg.Sample(pos, ctx)
	c.lastCount = ctx.InterpolationCounter
	c.hasValue = true
	return c.lastValue
}

func (c *CacheOnce) FillArray(buf []float64, ctx *Context) {
	if c.hasArray && c.lastCount == ctx.InterpolationCounter && len(c.lastBuf) == len(buf) {
		copy(buf, c.lastBuf)
		return
	}
	c.Arg.FillArray(buf, ctx)
	if cap(c.lastBuf) < len(buf) {
		c.lastBuf = make([]float64, len(buf))
	}
	c.lastBuf = c.lastBuf[:len(buf)]
	copy(c.lastBuf, buf)
	c.lastCount = ctx.InterpolationCounter
	c.hasArray = true
}

func (c *CacheOnce) Min() float64 { return c.Arg.Min() }
func (c *CacheOnce) Max() float64 { return c.Arg.Max() }

// packXZ packs two i32 block coordinates into one int64 key for Cache2D's
// intintmap, matching the reference's x<<32|z&0xffffffff convention.
func packXZ(x, z int) int64 {
	return int64(x)<<32 | int64(int32(z))&0xffffffff
}

// Cache2D memoizes by (x, z), ignoring y, since many density functions
// (continentalness, erosion, ...) never vary with height.
type Cache2D struct {
	Arg Function

	m *intintmap.Map
}

func NewCache2D(arg Function) *Cache2D {
	return &Cache2D{Arg: arg, m: intintmap.New(64, 0.75)}
}

func (c *Cache2D) Sample(pos Pos, ctx *Context) float64 {
	key := packXZ(pos.X, pos.Z)
	if bits, ok := c.m.Get(key); ok {
		return math.Float64frombits(uint64(bits))
	}
	v := c.Arg.Sample(pos, ctx)
	c.m.Put(key, int64(math.Float64bits(v)))
	return v
}

func (c *Cache2D) FillArray(buf []float64, ctx *Context) { fillArrayDefault(c, buf, ctx) }
func (c *Cache2D) Min() float64                          { return c.Arg.Min() }
func (c *Cache2D) Max() float64                          { return c.Arg.Max() }

// CacheAllInCell precomputes one cell_width x cell_width x cell_height
// block of samples up front, then serves Sample from that block whenever
// ctx.Filler is Default; outside that (e.g. during setup or slice fills)
// it falls through to Arg directly.
type CacheAllInCell struct {
	Arg Function

	filled bool
	w, h   int
	values []float64
}

func NewCacheAllInCell(arg Function) *CacheAllInCell { return &CacheAllInCell{Arg: arg} }

func (c *CacheAllInCell) ensure(ctx *Context) {
	w, h := ctx.CellWidth, ctx.CellHeight
	if c.filled && c.w == w && c.h == h {
		return
	}
	c.w, c.h = w, h
	n := (w + 1) * (h + 1) * (w + 1)
	if cap(c.values) < n {
		c.values = make([]float64, n)
	}
	c.values = c.values[:n]
	c.Arg.FillArray(c.values, ctx)
	c.filled = true
}

func (c *CacheAllInCell) Sample(pos Pos, ctx *Context) float64 {
	if ctx.Filler != FillerDefault || !ctx.FillingCell {
		return c.Arg.Sample(pos, ctx)
	}
	c.ensure(ctx)
	ix := pos.X - ctx.CellStartBlockX
	iy := pos.Y - ctx.CellStartBlockY
	iz := pos.Z - ctx.CellStartBlockZ
	if ix < 0 || iy < 0 || iz < 0 || ix > c.w || iy > c.h || iz > c.w {
		return c.Arg.Sample(pos, ctx)
	}
	idx := (ix*(c.h+1)+iy)*(c.w+1) + iz
	return c.values[idx]
}

func (c *CacheAllInCell) FillArray(buf []float64, ctx *Context) { fillArrayDefault(c, buf, ctx) }
func (c *CacheAllInCell) Min() float64                          { return c.Arg.Min() }
func (c *CacheAllInCell) Max() float64                          { return c.Arg.Max() }

// FlatCache precomputes a dense 2D lattice of Arg's value at quart
// resolution covering one chunk (NoiseSizeXZ+1 square) during
// SetupNoise; samples whose quart position falls inside the
// lattice hit the cache, everything else falls through to Arg.
type FlatCache struct {
	Arg Function

	firstQuartX, firstQuartZ int
	size                     int
	values                   []float64
}

func NewFlatCache(arg Function) *FlatCache { return &FlatCache{Arg: arg} }

// Materialize fills the lattice; called once by SetupNoise per
// chunk, not by the graph itself.
func (c *FlatCache) Materialize(firstQuartX, firstQuartZ, size int, yForSample int) {
	c.firstQuartX, c.firstQuartZ, c.size = firstQuartX, firstQuartZ, size
	n := (size + 1) * (size + 1)
	c.values = make([]float64, n)
	ctx := &Context{}
	for ix := 0; ix <= size; ix++ {
		for iz := 0; iz <= size; iz++ {
			pos := Pos{X: (firstQuartX + ix) * 4, Y: yForSample, Z: (firstQuartZ + iz) * 4}
			c.values[ix*(size+1)+iz] = c.Arg.Sample(pos, ctx)
		}
	}
}

func (c *FlatCache) Sample(pos Pos, ctx *Context) float64 {
	if c.values == nil {
		return c.Arg.Sample(pos, ctx)
	}
	qx := pos.X / 4
	qz := pos.Z / 4
	ix := qx - c.firstQuartX
	iz := qz - c.firstQuartZ
	if ix < 0 || iz < 0 || ix > c.size || iz > c.size {
		return c.Arg.Sample(pos, ctx)
	}
	return c.values[ix*(c.size+1)+iz]
}

func (c *FlatCache) FillArray(buf []float64, ctx *Context) { fillArrayDefault(c, buf, ctx) }
func (c *FlatCache) Min() float64                          { return c.Arg.Min() }
func (c *FlatCache) Max() float64                          { return c.Arg.Max() }

// Marker is a transparent wrapper the setup pass looks for (by Kind) to
// decide which caching form to wrap a subgraph in; by itself it just
// delegates.
type MarkerKind int

const (
	MarkerNone MarkerKind = iota
	MarkerInterpolated
	MarkerFlatCache
	MarkerCache2D
	MarkerCacheOnce
	MarkerCacheAllInCell
)

type Marker struct {
	Kind MarkerKind
	Arg  Function
}

func NewMarker(kind MarkerKind, arg Function) *Marker { return &Marker{Kind: kind, Arg: arg} }
func (m *Marker) Sample(pos Pos, ctx *Context) float64 { return m.Arg.Sample(pos, ctx) }
func (m *Marker) FillArray(buf []float64, ctx *Context) { m.Arg.FillArray(buf, ctx) }
func (m *Marker) Min() float64                          { return m.Arg.Min() }
func (m *Marker) Max() float64                          { return m.Arg.Max() }
