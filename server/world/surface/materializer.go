package surface

import (
	"github.com/dm-vev/adamant/server/world/biome"
	"github.com/dm-vev/adamant/server/world/chunk"
	"github.com/dm-vev/adamant/server/world/density"
)

// Materializer drives the rule tree over a freshly noise-filled column,
// replacing the generic stone fill the chunk generator left behind with
// biome-appropriate surface blocks, then applies the eroded-badlands and
// frozen-ocean structure overrides to the biome-gated subset of columns
// that need them.
type Materializer struct {
	Rules Rule

	StoneID uint32
	WaterID uint32
	AirID   uint32

	SeaLevel  int
	WorldSeed int64

	// SurfaceDepthNoise seeds each column's running SurfaceDepth counter;
	// MinSurfaceNoise is sampled at the four corners of the chunk and
	// bilinearly interpolated to seed MinSurfaceLevel, matching the
	// AbovePreliminary condition's documented contract.
	SurfaceDepthNoise density.Function
	MinSurfaceNoise   density.Function

	Special SpecialCases

	ErodedBadlandsBiomes map[string]bool
	FrozenOceanBiomes    map[string]bool
}

// Materialize runs the rule tree, then the special cases, over every
// column of chunk col. biomeAt resolves the already-computed biome for a
// local (x, z) column (quarter-resolution biome data sampled at the
// column's surface height).
func (m *Materializer) Materialize(col *chunk.ChunkColumn, dctx *density.Context, biomeAt func(x, z int) *biome.Biome) {
	originX, originZ := col.Pos.OriginBlockX(), col.Pos.OriginBlockZ()

	corners := [4]float64{
		m.MinSurfaceNoise.Sample(density.Pos{X: originX, Y: 0, Z: originZ}, dctx),
		m.MinSurfaceNoise.Sample(density.Pos{X: originX + 16, Y: 0, Z: originZ}, dctx),
		m.MinSurfaceNoise.Sample(density.Pos{X: originX, Y: 0, Z: originZ + 16}, dctx),
		m.MinSurfaceNoise.Sample(density.Pos{X: originX + 16, Y: 0, Z: originZ + 16}, dctx),
	}

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			wx, wz := originX+x, originZ+z
			tx, tz := float64(x)/16, float64(z)/16
			top := bilerp(corners, tx, tz)

			b := biomeAt(x, z)
			ctx := NewContext(wx, wz, m.SeaLevel, m.WorldSeed, col.Pos.Seed(), dctx)
			ctx.Biome = b
			ctx.MinSurfaceLevel = int(top) - 8

			depthSample := m.SurfaceDepthNoise.Sample(density.Pos{X: wx, Y: 0, Z: wz}, dctx)
			ctx.SurfaceDepth = 2 + int(depthSample*1.5)

			surfaceY := m.scanColumn(col, ctx, x, z)

			if b == nil {
				continue
			}
			if m.ErodedBadlandsBiomes[b.Name] {
				m.Special.ErodedBadlandsPillar(col, dctx, x, z, surfaceY)
			}
			if m.FrozenOceanBiomes[b.Name] {
				m.Special.FrozenOceanIceberg(col, dctx, x, z, m.SeaLevel)
			}
		}
	}
}

func bilerp(c [4]float64, tx, tz float64) float64 {
	top := c[0] + (c[1]-c[0])*tx
	bottom := c[2] + (c[3]-c[2])*tx
	return top + (bottom-top)*tz
}

// scanColumn walks (x, z) from the column's highest recorded block down to
// the build range's floor, maintaining the stone-depth, surface-depth and
// water-height counters the rule tree's conditions read, invoking Rules at
// every stone block it passes. It returns the topmost Y the scan found
// stone or a rule-placed block at, the anchor the special cases build
// structures from.
func (m *Materializer) scanColumn(col *chunk.ChunkColumn, ctx *Context, x, z int) int {
	ctx.WaterHeight = m.SeaLevel
	ctx.StoneDepthAbove = 0
	ctx.StoneDepthBelow = 0

	top := col.Heightmap(chunk.WorldSurfaceWG).Get(x, z) - 1
	bottom := col.Range.Min()
	surfaceY := bottom

	for y := top; y >= bottom; y-- {
		ctx.Y = y
		block := col.BlockUnguarded(x, y, z)

		switch block {
		case m.AirID:
			ctx.StoneDepthAbove = 0
		case m.WaterID:
			ctx.WaterHeight = y
			ctx.StoneDepthAbove = 0
		case m.StoneID:
			ctx.StoneDepthAbove++
			ctx.StoneDepthBelow = top - y
			if id, ok := m.Rules.Apply(ctx); ok {
				col.SetBlockUnguarded(x, y, z, id)
			}
			if surfaceY == bottom {
				surfaceY = y
			}
		default:
			ctx.StoneDepthAbove = 0
		}

		ctx.SurfaceDepth--
	}

	return surfaceY
}
