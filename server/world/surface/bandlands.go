package surface

import (
	"github.com/dm-vev/adamant/server/world/density"
	"github.com/dm-vev/adamant/server/world/rng"
)

// bandCount is the fixed size of the terracotta color array badlands
// columns index into with the clay-bands-offset noise sample.
const bandCount = 192

// BuildBands deterministically constructs the 192-entry terracotta color
// array for one world: it starts filled with plain (orange) terracotta,
// interleaves yellow/brown/red runs of random length at random offsets,
// then lays 9-15 white bands across the array, each flanked with 50%
// probability by a light-gray band on either side. The run lengths and
// placement are drawn from a Legacy stream forked by world seed and the
// Java string hash of "minecraft:clay_bands", since this is a once-per-world
// construction seeded independent of any column position. The exact
// vanilla placement algorithm isn't reproduced bit-for-bit here; this is a
// documented simplification (see DESIGN.md).
func BuildBands(seed int64, orange, yellow, brown, red, white, lightGray uint32) [bandCount]uint32 {
	var bands [bandCount]uint32
	for i := range bands {
		bands[i] = orange
	}

	source := rng.NewLegacy(seed ^ int64(rng.JavaStringHash("minecraft:clay_bands")))

	placeRuns := func(block uint32, runs int, maxLen int32) {
		for i := 0; i < runs; i++ {
			length := source.NextIntN(maxLen) + 1
			start := source.NextIntN(bandCount)
			for j := int32(0); j < length; j++ {
				idx := (int(start) + int(j)) % bandCount
				bands[idx] = block
			}
		}
	}

	placeRuns(yellow, 14, 4)
	placeRuns(brown, 12, 3)
	placeRuns(red, 10, 3)

	whiteBands := int(source.NextIntN(7)) + 9 // 9..15 inclusive
	for i := 0; i < whiteBands; i++ {
		pos := int(source.NextIntN(bandCount))
		bands[pos] = white
		if pos > 0 && source.NextIntN(2) == 0 {
			bands[pos-1] = lightGray
		}
		if pos+1 < bandCount && source.NextIntN(2) == 0 {
			bands[pos+1] = lightGray
		}
	}

	return bands
}

// Bandlands is a leaf rule for eroded-badlands-style terracotta banding: it
// samples Offset at the block's (x, y, z) position, scales it into the
// band array's index range and places whatever color sits there. Bands
// must already be populated by BuildBands for the world this rule is
// attached to.
type Bandlands struct {
	Bands  [bandCount]uint32
	Offset density.Function
}

// NewBandlands builds a Bandlands rule from a prebuilt band array and the
// clay_bands_offset noise function that selects a position within it.
func NewBandlands(bands [bandCount]uint32, offset density.Function) Bandlands {
	return Bandlands{Bands: bands, Offset: offset}
}

func (b Bandlands) Apply(ctx *Context) (uint32, bool) {
	v := b.Offset.Sample(density.Pos{X: ctx.X, Y: ctx.Y, Z: ctx.Z}, ctx.DensityContext())
	idx := int(mapRange(v, -1, 1, 0, bandCount-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= bandCount {
		idx = bandCount - 1
	}
	return b.Bands[idx], true
}
