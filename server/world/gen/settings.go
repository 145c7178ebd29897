// Package gen implements the noise-based chunk generator: given a seeded
// NoiseRouter and a ChunkPos, it drives the density graph's interpolators
// cell by cell to fill a ChunkColumn's blocks and biomes (spec.md §4.G).
package gen

import "github.com/dm-vev/adamant/server/block/cube"

// NoiseSettings is the fixed set of dimension-level constants the noise
// chunk generator is parametrized by. The overworld values below are taken
// from the reference implementation's noise settings resource rather than
// invented: sea level 63, build range [-64, 319] (height 384),
// size_horizontal 1 and size_vertical 2, which together fix this
// generator's cell geometry at 4 blocks wide by 8 blocks tall (spec.md
// §4.G gives that cell geometry directly; SizeHorizontal/SizeVertical are
// kept here as the named source of those two constants rather than
// hard-coding 4/8 in the generator itself).
type NoiseSettings struct {
	SeaLevel       int
	MinY           int
	Height         int
	SizeHorizontal int
	SizeVertical   int

	// DefaultBlock and DefaultFluid are the GlobalIDs the aquifer/final
	// density step falls back to: stone below the fluid level, water (or
	// nothing, for the disabled aquifer) above it.
	DefaultBlock uint32
	DefaultFluid uint32
	AirBlock     uint32
}

// OverworldNoiseSettings returns the vanilla overworld defaults. Block IDs
// are left to the caller to fill in after loading the palette (they are
// network/world-dependent, unlike the geometry constants).
func OverworldNoiseSettings(stone, water, air uint32) NoiseSettings {
	return NoiseSettings{
		SeaLevel:       63,
		MinY:           -64,
		Height:         384,
		SizeHorizontal: 1,
		SizeVertical:   2,
		DefaultBlock:   stone,
		DefaultFluid:   water,
		AirBlock:       air,
	}
}

// CellWidth is the horizontal block span of one interpolation cell.
func (s NoiseSettings) CellWidth() int { return 4 * s.SizeHorizontal }

// CellHeight is the vertical block span of one interpolation cell.
func (s NoiseSettings) CellHeight() int { return 4 * s.SizeVertical }

// CellCountXZ is the number of cells spanning one 16-block chunk edge.
func (s NoiseSettings) CellCountXZ() int { return 16 / s.CellWidth() }

// CellCountY is the number of cells spanning the full build height.
func (s NoiseSettings) CellCountY() int { return s.Height / s.CellHeight() }

// Range returns the vertical build range the settings describe.
func (s NoiseSettings) Range() cube.Range { return cube.Range{s.MinY, s.MinY + s.Height - 1} }
