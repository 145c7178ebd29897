package chunk

import "github.com/dm-vev/adamant/server/block/cube"

// HeightmapType names one of the per-column heightmap kinds a ChunkColumn
// tracks. Only the two the noise generator itself updates during block
// fill are modelled; the client-facing "_wg" variants (computed once, at
// world-gen time, as opposed to kept live afterwards) are what the
// generator and surface materializer consult.
type HeightmapType int

const (
	WorldSurfaceWG HeightmapType = iota
	OceanFloorWG
	heightmapTypeCount
)

// heightmapBits is wide enough to hold every Y value in the build range
// plus one (height values are "first Y above the highest matching block",
// so they can equal r.Max()+1).
func heightmapBits(r cube.Range) int {
	n := r.Height() + 1
	b := 0
	for (1 << uint(b)) < n {
		b++
	}
	return b
}

// Heightmap stores, for every (x, z) in [0, 16)^2, the lowest Y such that
// every cell at or above it fails the heightmap's predicate: equivalently,
// one more than the Y of the topmost block satisfying the predicate, or
// the build range's minimum if no such block exists.
type Heightmap struct {
	kind    HeightmapType
	bottom  int
	array   *PackedArray
}

// NewHeightmap creates a heightmap over the given build range, with every
// column initialised to r.Min() (no qualifying block placed yet).
func NewHeightmap(kind HeightmapType, r cube.Range) *Heightmap {
	h := &Heightmap{kind: kind, bottom: r.Min(), array: NewPackedArray(heightmapBits(r), 256)}
	return h
}

func hIndex(x, z int) int { return z*16 + x }

// Get returns the stored height at (x, z).
func (h *Heightmap) Get(x, z int) int {
	return h.bottom + int(h.array.Get(hIndex(x, z)))
}

// set is an internal setter taking an already-bottom-relative height.
func (h *Heightmap) set(x, z, relHeight int) {
	h.array.Set(hIndex(x, z), uint32(relHeight))
}

// Update is called by the block-fill pass each time a block is placed; it
// records this (x, y, z) as the new height for this column if y+1 is
// higher than the last recorded value and matches predicate's requirement.
// Because the generator scans each column strictly top-down, the first
// matching block it reports is already the maximum, so Update only ever
// needs to fire once per column in practice; the explicit comparison keeps
// the type correct even if a caller updates out of order (e.g. the surface
// materializer patching blocks back in near the heightmap).
func (h *Heightmap) Update(x, y, z int, matches bool) {
	if !matches {
		return
	}
	rel := y + 1 - h.bottom
	if rel < 0 {
		return
	}
	if rel > int(h.array.Get(hIndex(x, z))) {
		h.set(x, z, rel)
	}
}
