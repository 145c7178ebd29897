package surface

import (
	"github.com/dm-vev/adamant/server/world/chunk"
	"github.com/dm-vev/adamant/server/world/density"
)

// SpecialCases bundles the noise inputs and block IDs the two biome-gated
// structure overrides need: eroded-badlands pillars and frozen-ocean
// icebergs. Both run after the main rule-tree scan, directly patching
// blocks the scan already materialized.
type SpecialCases struct {
	PillarNoise     density.Function
	PillarRoofNoise density.Function
	IcebergNoise    density.Function

	TerracottaID uint32
	PackedIceID  uint32
	SnowBlockID  uint32
}

// ErodedBadlandsPillar raises a narrow terracotta pillar above the
// materialized surface at (x, z) when PillarNoise gates this column in,
// capped by PillarRoofNoise. This reproduces the shape of vanilla's
// eroded-badlands pillars, not its literal thresholds, which aren't
// otherwise specified; see DESIGN.md.
func (s SpecialCases) ErodedBadlandsPillar(col *chunk.ChunkColumn, dctx *density.Context, x, z, baseY int) {
	wx, wz := col.Pos.OriginBlockX()+x, col.Pos.OriginBlockZ()+z
	pos := density.Pos{X: wx, Y: baseY, Z: wz}

	gate := s.PillarNoise.Sample(pos, dctx)
	if gate <= 0 {
		return
	}

	roof := s.PillarRoofNoise.Sample(pos, dctx)
	height := int(roof * 64)
	if height <= 0 {
		return
	}

	top := baseY + height
	if top > col.Range.Max() {
		top = col.Range.Max()
	}
	for y := baseY + 1; y <= top; y++ {
		col.SetBlockUnguarded(x, y, z, s.TerracottaID)
		col.Heightmap(chunk.WorldSurfaceWG).Update(x, y, z, true)
	}
}

// FrozenOceanIceberg caps a frozen-ocean column with a packed-ice/snow
// iceberg structure when IcebergNoise selects it. This reproduces the
// shape of vanilla icebergs, not the dedicated structure-placement
// algorithm that selects where they spawn, which this module doesn't
// implement; see DESIGN.md.
func (s SpecialCases) FrozenOceanIceberg(col *chunk.ChunkColumn, dctx *density.Context, x, z, seaLevel int) {
	wx, wz := col.Pos.OriginBlockX()+x, col.Pos.OriginBlockZ()+z
	pos := density.Pos{X: wx, Y: seaLevel, Z: wz}

	gate := s.IcebergNoise.Sample(pos, dctx)
	if gate <= 0.4 {
		return
	}

	height := int((gate - 0.4) * 40)
	if height <= 0 {
		return
	}

	top := seaLevel + height
	if top > col.Range.Max() {
		top = col.Range.Max()
	}
	for y := seaLevel - 2; y <= top; y++ {
		id := s.PackedIceID
		if y == top {
			id = s.SnowBlockID
		}
		col.SetBlockUnguarded(x, y, z, id)
		col.Heightmap(chunk.WorldSurfaceWG).Update(x, y, z, true)
	}
}
