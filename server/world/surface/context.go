// Package surface implements the rule/condition materializer that rewrites
// a freshly noise-filled column's generic stone fill into
// terrain-appropriate surface blocks: grass, sand, terracotta bands,
// iceberg structures and eroded pillars (spec.md §4.H).
package surface

import (
	"github.com/dm-vev/adamant/server/world/biome"
	"github.com/dm-vev/adamant/server/world/density"
	"github.com/dm-vev/adamant/server/world/rng"
)

// Context is the per-column mutable state the rule tree reads and updates
// while scanning top to bottom: block position, the running depth
// counters, and the cached inputs a rule or condition needs without
// re-deriving them at every stone block. One Context is created per
// column and discarded when materialization finishes.
type Context struct {
	X, Z int // world block coordinates of the column
	Y    int // current scan height

	WaterHeight      int
	StoneDepthAbove  int
	StoneDepthBelow  int
	StoneBaseHeight  int
	SurfaceDepth     int
	MinSurfaceLevel  int

	Biome *biome.Biome

	SeaLevel  int
	WorldSeed int64

	// entropy is the per-column positional RNG forked from the chunk's
	// origin, used by VerticalGradient and the structure special cases;
	// every rule/condition that needs randomness forks from this by tag
	// rather than sharing a single mutable stream, so draw order between
	// rules never matters.
	entropy *rng.Xoroshiro

	density *density.Context
}

// NewContext creates a Context for one column at (x, z), seeded from the
// chunk's origin-derived positional RNG.
func NewContext(x, z int, seaLevel int, worldSeed, originSeed int64, dctx *density.Context) *Context {
	return &Context{
		X: x, Z: z,
		SeaLevel:  seaLevel,
		WorldSeed: worldSeed,
		entropy:   rng.New(uint64(originSeed)),
		density:   dctx,
	}
}

// ForkTag returns an independent positional stream forked from this
// column's entropy bag by tag, then further forked to (x, y, z).
func (c *Context) ForkTag(tag string, x, y, z int32) *rng.Xoroshiro {
	return c.entropy.ForkTag(tag).At(x, y, z)
}

// DensityContext exposes the shared density.Context so conditions can
// sample auxiliary noise fields (NoiseThreshold, Bandlands' clay offset).
func (c *Context) DensityContext() *density.Context { return c.density }
