package chunk

import (
	"sync"

	"github.com/dm-vev/adamant/server/block/cube"
)

// Status tracks how far a ChunkColumn has progressed through the
// generation pipeline.
type Status int

const (
	StatusEmpty Status = iota
	StatusBiomes
	StatusNoise
	StatusSurface
)

// sectionCount is the fixed number of 16-block-tall sections spanning the
// overworld's build range [-64, 319].
const sectionCount = 24

// sectionIndex converts a world Y coordinate to its covering section index.
func sectionIndex(y int) int { return (y >> 4) + 4 }

// ChunkColumn is a full 16x16x384 vertical column of sections plus the
// heightmaps the generator maintains as it fills blocks. Two accessor
// families are exposed: a guarded one (takes the section's lock on every
// call, for use by anything that might race with other readers) and an
// unguarded one used by the single-threaded generation pass, which is safe
// only because no other goroutine can observe the column before it is
// published to the coordinator's sink.
type ChunkColumn struct {
	Pos    Pos
	Range  cube.Range
	Status Status

	sections   [sectionCount]*ChunkSection
	sectionMus [sectionCount]sync.RWMutex

	heightmaps [heightmapTypeCount]*Heightmap
}

// NewChunkColumn allocates an empty column at pos, every section filled
// with air and the default biome, and every heightmap tracked over r.
func NewChunkColumn(pos Pos, r cube.Range, airGlobal, defaultBiome uint32, blockMaxBits, biomeMaxBits int) *ChunkColumn {
	c := &ChunkColumn{Pos: pos, Range: r}
	for i := range c.sections {
		c.sections[i] = NewChunkSection(airGlobal, defaultBiome, blockMaxBits, biomeMaxBits)
	}
	for i := range c.heightmaps {
		c.heightmaps[i] = NewHeightmap(HeightmapType(i), r)
	}
	return c
}

// Section returns the section covering world Y y, or nil if y falls
// outside the column's build range.
func (c *ChunkColumn) Section(y int) *ChunkSection {
	idx := sectionIndex(y)
	if idx < 0 || idx >= sectionCount {
		return nil
	}
	return c.sections[idx]
}

// SectionAt returns the section at raw section index i (0..23).
func (c *ChunkColumn) SectionAt(i int) *ChunkSection { return c.sections[i] }

// SectionCount returns the fixed number of sections a column holds.
func (c *ChunkColumn) SectionCount() int { return sectionCount }

// Block reads the block at (x, y, z) through the section's read lock, safe
// for concurrent callers racing the generator's publish.
func (c *ChunkColumn) Block(x, y, z int) uint32 {
	idx := sectionIndex(y)
	c.sectionMus[idx].RLock()
	defer c.sectionMus[idx].RUnlock()
	return c.sections[idx].Block(x, y&15, z)
}

// SetBlock writes the block at (x, y, z) through the section's write lock.
func (c *ChunkColumn) SetBlock(x, y, z int, global uint32) {
	idx := sectionIndex(y)
	c.sectionMus[idx].Lock()
	defer c.sectionMus[idx].Unlock()
	c.sections[idx].SetBlock(x, y&15, z, global)
}

// BlockUnguarded reads the block at (x, y, z) without taking any lock.
// Only safe when the caller holds exclusive ownership of the column (the
// generator, before publish).
func (c *ChunkColumn) BlockUnguarded(x, y, z int) uint32 {
	idx := sectionIndex(y)
	return c.sections[idx].Block(x, y&15, z)
}

// SetBlockUnguarded writes the block at (x, y, z) without taking any lock.
// See BlockUnguarded for the safety contract.
func (c *ChunkColumn) SetBlockUnguarded(x, y, z int, global uint32) {
	idx := sectionIndex(y)
	c.sections[idx].SetBlock(x, y&15, z, global)
}

// biomeSectionAndLocal converts a quart-Y (yQuart, a quarter-resolution Y)
// to the section and local quarter-Y position a biome query needs,
// following the spec's clamped-quarter-position formula.
func biomeSectionAndLocal(yQuart int, buildMinY int) (sectionIdx, localQuartY int) {
	i := buildMinY / 4
	k := i + 96 - 1
	l := yQuart
	if l < i {
		l = i
	}
	if l > k {
		l = k
	}
	sectionIdx = (l*4)>>4 + 4
	localQuartY = l & 3
	return
}

// Biome reads the biome at quarter position (xQuart, yQuart, zQuart),
// through the section's read lock.
func (c *ChunkColumn) Biome(xQuart, yQuart, zQuart int) uint32 {
	idx, localY := biomeSectionAndLocal(yQuart, c.Range.Min())
	if idx < 0 || idx >= sectionCount {
		return c.sections[0].Biome(0, 0, 0)
	}
	c.sectionMus[idx].RLock()
	defer c.sectionMus[idx].RUnlock()
	return c.sections[idx].Biome(xQuart&3, localY, zQuart&3)
}

// SetBiome writes the biome at quarter position (xQuart, yQuart, zQuart).
func (c *ChunkColumn) SetBiome(xQuart, yQuart, zQuart int, global uint32) {
	idx, localY := biomeSectionAndLocal(yQuart, c.Range.Min())
	if idx < 0 || idx >= sectionCount {
		return
	}
	c.sectionMus[idx].Lock()
	defer c.sectionMus[idx].Unlock()
	c.sections[idx].SetBiome(xQuart&3, localY, zQuart&3, global)
}

// SetBiomeUnguarded is the lock-free counterpart of SetBiome, used by the
// generator's single-threaded biome fill pass.
func (c *ChunkColumn) SetBiomeUnguarded(xQuart, yQuart, zQuart int, global uint32) {
	idx, localY := biomeSectionAndLocal(yQuart, c.Range.Min())
	if idx < 0 || idx >= sectionCount {
		return
	}
	c.sections[idx].SetBiome(xQuart&3, localY, zQuart&3, global)
}

// Heightmap returns the named heightmap.
func (c *ChunkColumn) Heightmap(t HeightmapType) *Heightmap { return c.heightmaps[t] }

// FillLight sets every section's sky-light to full and block-light to
// full, the state the noise generator leaves a freshly filled column in.
func (c *ChunkColumn) FillLight() {
	for _, s := range c.sections {
		s.FillSkyLightFull()
		s.FillBlockLightFull()
	}
}
