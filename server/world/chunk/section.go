package chunk

// Section geometry constants. Blocks are stored at full (16^3) resolution;
// biomes at quarter resolution (4^3 per section, since one biome cell
// spans a 4x4x4 block volume).
const (
	sectionBlocks = 16
	sectionCells  = sectionBlocks * sectionBlocks * sectionBlocks
	biomeCells    = 4 * 4 * 4

	blockMinBits, blockDirectThreshold = 4, 9
	biomeMinBits, biomeDirectThreshold = 1, 4

	lightArrayBytes = 2048
)

// ChunkSection is one 16x16x16 vertical slab of a ChunkColumn: a paletted
// block container, a (quarter-resolution) paletted biome container, the
// running count of non-air cells, and the two 4-bit light arrays filled by
// generation (sky light to full, block light to full pending client-side
// recompute).
type ChunkSection struct {
	blocks *PalettedContainer
	biomes *PalettedContainer

	nonEmpty int

	skyLight   []byte
	blockLight []byte

	airGlobal uint32
}

// NewChunkSection creates an empty section, every block cell initialised to
// airGlobal and every biome cell to defaultBiome, with blockMaxBits/biomeMaxBits
// taken from the owning GlobalPalettes' BitsPerEntry (15 and 6 respectively
// per the data model).
func NewChunkSection(airGlobal, defaultBiome uint32, blockMaxBits, biomeMaxBits int) *ChunkSection {
	return &ChunkSection{
		blocks:    NewPalettedContainer(sectionCells, airGlobal, blockMinBits, blockDirectThreshold, blockMaxBits),
		biomes:    NewPalettedContainer(biomeCells, defaultBiome, biomeMinBits, biomeDirectThreshold, biomeMaxBits),
		airGlobal: airGlobal,
	}
}

func blockIndex(x, y, z int) int { return (y<<8 | z<<4 | x) }

func biomeIndex(x, y, z int) int { return (y<<4 | z<<2 | x) }

// Block returns the GlobalID of the block at local (x, y, z) in [0, 16)^3.
func (s *ChunkSection) Block(x, y, z int) uint32 {
	return s.blocks.Get(blockIndex(x, y, z))
}

// SetBlock stores global at local (x, y, z), updating the section's
// non-empty count as the cell transitions to/from air.
func (s *ChunkSection) SetBlock(x, y, z int, global uint32) {
	idx := blockIndex(x, y, z)
	was := s.blocks.Get(idx)
	if was == global {
		return
	}
	s.blocks.Set(idx, global)
	switch {
	case was == s.airGlobal && global != s.airGlobal:
		s.nonEmpty++
	case was != s.airGlobal && global == s.airGlobal:
		s.nonEmpty--
	}
}

// NonEmptyBlockCount returns the number of cells whose block is not air.
func (s *ChunkSection) NonEmptyBlockCount() int { return s.nonEmpty }

// Biome returns the GlobalID of the biome at local quarter position
// (x, y, z) in [0, 4)^3.
func (s *ChunkSection) Biome(x, y, z int) uint32 {
	return s.biomes.Get(biomeIndex(x, y, z))
}

// SetBiome stores global at local quarter position (x, y, z).
func (s *ChunkSection) SetBiome(x, y, z int, global uint32) {
	s.biomes.Set(biomeIndex(x, y, z), global)
}

// BlockContainer exposes the section's paletted block storage directly, for
// the network encoder.
func (s *ChunkSection) BlockContainer() *PalettedContainer { return s.blocks }

// BiomeContainer exposes the section's paletted biome storage directly, for
// the network encoder.
func (s *ChunkSection) BiomeContainer() *PalettedContainer { return s.biomes }

// FillSkyLightFull sets the section's sky-light array to full (0xFF every
// nibble), the value generation leaves every section in; lighting
// propagation beyond this initial fill is out of scope.
func (s *ChunkSection) FillSkyLightFull() {
	s.skyLight = fullNibbleArray()
}

// FillBlockLightFull sets the section's block-light array to full,
// matching the reference's "recomputed client-side" placeholder.
func (s *ChunkSection) FillBlockLightFull() {
	s.blockLight = fullNibbleArray()
}

func fullNibbleArray() []byte {
	b := make([]byte, lightArrayBytes)
	for i := range b {
		b[i] = 0xFF
	}
	return b
}

// SkyLight returns the nibble-packed 2048-byte sky-light array, or nil if
// it was never filled.
func (s *ChunkSection) SkyLight() []byte { return s.skyLight }

// BlockLight returns the nibble-packed 2048-byte block-light array, or nil
// if it was never filled.
func (s *ChunkSection) BlockLight() []byte { return s.blockLight }

// nibbleGet reads the 4-bit light value at local (x, y, z) from arr, the lo
// nibble of the byte at even x, the hi nibble at odd x.
func nibbleGet(arr []byte, x, y, z int) byte {
	if arr == nil {
		return 0
	}
	idx := blockIndex(x, y, z)
	b := arr[idx/2]
	if idx%2 == 0 {
		return b & 0xF
	}
	return b >> 4
}

// SkyLightAt returns the sky-light level at local (x, y, z).
func (s *ChunkSection) SkyLightAt(x, y, z int) byte { return nibbleGet(s.skyLight, x, y, z) }

// BlockLightAt returns the block-light level at local (x, y, z).
func (s *ChunkSection) BlockLightAt(x, y, z int) byte { return nibbleGet(s.blockLight, x, y, z) }
