package gen

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/dm-vev/adamant/server/world/biome"
	"github.com/dm-vev/adamant/server/world/chunk"
	"github.com/dm-vev/adamant/server/world/density"
)

// Pos is re-exported for callers that only need the density graph's
// integer sample position type without importing density directly.
type Pos = density.Pos

// ClimateSampler pulls one axis of a climate point from a position's
// 6 independent density functions (every axis is sampled individually;
// there is no single "climate" node in the router).
type ClimateSampler struct {
	Temperature, Humidity, Continentalness, Erosion, Depth, Weirdness density.Function
}

// Sample evaluates every climate axis at the given quart position
// (expressed in full block coordinates, as every density Function expects)
// and returns the resulting fixed-point ClimatePoint.
func (c ClimateSampler) Sample(pos density.Pos, ctx *density.Context) biome.ClimatePoint {
	return biome.ClimatePoint{
		Temperature:     biome.ToFixedPoint(c.Temperature.Sample(pos, ctx)),
		Humidity:        biome.ToFixedPoint(c.Humidity.Sample(pos, ctx)),
		Continentalness: biome.ToFixedPoint(c.Continentalness.Sample(pos, ctx)),
		Erosion:         biome.ToFixedPoint(c.Erosion.Sample(pos, ctx)),
		Depth:           biome.ToFixedPoint(c.Depth.Sample(pos, ctx)),
		Weirdness:       biome.ToFixedPoint(c.Weirdness.Sample(pos, ctx)),
	}
}

// NoiseChunkGenerator fills a ChunkColumn's biomes and blocks from a
// seeded NoiseRouter, following the cell-scanned interpolator drive and
// disabled-aquifer final-density rule spec.md §4.G describes.
type NoiseChunkGenerator struct {
	Settings NoiseSettings
	Router   *density.NoiseRouter
	Climate  ClimateSampler
	Biomes   *biome.Index
	Aquifer  Aquifer

	// WorldSeed seeds the per-chunk biome-gradient positional RNG used by
	// the 8-corner vote (biome.FiddledDistance).
	WorldSeed int64

	biomePalette *biome.Palette
}

// NewNoiseChunkGenerator wires together an already-seeded router (SetupNoise
// must have been called for this generator's cell geometry before use) with
// the settings, climate sampler, biome index and aquifer it fills a column
// with.
func NewNoiseChunkGenerator(settings NoiseSettings, router *density.NoiseRouter, climate ClimateSampler, biomes *biome.Index, aquifer Aquifer, worldSeed int64) *NoiseChunkGenerator {
	return &NoiseChunkGenerator{
		Settings:  settings,
		Router:    router,
		Climate:   climate,
		Biomes:    biomes,
		Aquifer:   aquifer,
		WorldSeed: worldSeed,
	}
}

// GenerateChunk fills col's biomes and blocks in place and advances its
// Status to StatusNoise, mirroring the generator interface convention
// (GenerateChunk(pos, column)) every generator implementation in this
// lineage exposes.
func (g *NoiseChunkGenerator) GenerateChunk(pos chunk.Pos, col *chunk.ChunkColumn) {
	ctx := density.NewContext(g.Settings.CellWidth(), g.Settings.CellHeight(), g.Settings.CellCountXZ(), g.Settings.CellCountY(), g.Settings.MinY/g.Settings.CellHeight())

	firstQuartX := (pos.OriginBlockX()) / 4
	firstQuartZ := (pos.OriginBlockZ()) / 4

	g.fillBiomes(col, ctx, firstQuartX, firstQuartZ)
	g.fillBlocks(col, ctx, pos)

	col.FillLight()
	col.Status = chunk.StatusNoise
}

// fillBiomes assigns every quarter-resolution biome cell in the column,
// per section, following the section/local quart-position formula the
// column's own accessors already implement.
func (g *NoiseChunkGenerator) fillBiomes(col *chunk.ChunkColumn, ctx *density.Context, firstQuartX, firstQuartZ int) {
	for secIdx := 0; secIdx < col.SectionCount(); secIdx++ {
		baseQuartY := (secIdx - 4) * 4
		for k := 0; k < 4; k++ {
			for l := 0; l < 4; l++ {
				for i1 := 0; i1 < 4; i1++ {
					qx := firstQuartX + k
					qy := baseQuartY + l
					qz := firstQuartZ + i1

					id := g.nearestBiome(ctx, qx, qy, qz)
					col.SetBiomeUnguarded(k, qy, i1, id)
				}
			}
		}
	}
}

// nearestBiome resolves the biome at one quart position via the 8-corner
// fiddled-distance vote spec.md §4.F describes: evaluate the climate point
// at every corner of the quart-aligned cube around (qx, qy, qz), perturb
// each corner's offset from the query point by the positional biome
// gradient, and keep whichever corner's perturbed distance to its nearest
// parameter box is smallest.
func (g *NoiseChunkGenerator) nearestBiome(ctx *density.Context, qx, qy, qz int) uint32 {
	type corner struct{ dx, dy, dz int }
	corners := [8]corner{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}

	var (
		best     *biome.Biome
		bestDist = -1.0
	)
	for _, c := range corners {
		cx, cy, cz := qx+c.dx, qy+c.dy, qz+c.dz
		pos := density.Pos{X: cx * 4, Y: cy * 4, Z: cz * 4}
		point := g.Climate.Sample(pos, ctx)

		candidate, boxDist := g.Biomes.Nearest(point)
		if candidate == nil {
			continue
		}

		diff := mgl64.Vec3{float64(cx - qx), float64(cy - qy), float64(cz - qz)}
		fiddled := biome.FiddledDistance(g.WorldSeed, int32(cx), int32(cy), int32(cz), diff)
		total := float64(boxDist) + fiddled

		if bestDist < 0 || total < bestDist {
			bestDist = total
			best = candidate
		}
	}
	if best == nil {
		return 0
	}
	// Caller (the biome palette's owner) is responsible for having already
	// registered every biome referenced by the index; GlobalID lookup
	// happens at palette-registration time, not here, since Index stores
	// *Biome directly rather than a GlobalID to avoid a palette dependency
	// in the distance-query hot path.
	return g.biomeGlobalID(best)
}

// biomeGlobalID translates a resolved *biome.Biome back into the GlobalID
// its container expects, via the palette attached by SetBiomePalette.
func (g *NoiseChunkGenerator) biomeGlobalID(b *biome.Biome) uint32 {
	if g.biomePalette == nil {
		return 0
	}
	if id, ok := g.biomePalette.IDOf(b); ok {
		return id
	}
	return 0
}

// SetBiomePalette attaches the GlobalPalette used to translate resolved
// biomes into the GlobalIDs the chunk's biome containers store.
func (g *NoiseChunkGenerator) SetBiomePalette(pal *biome.Palette) { g.biomePalette = pal }

// fillBlocks drives every Interpolated node in the router through the
// cell-scanned fill the spec's Block fill algorithm describes: advance X,
// select the YZ cell, collapse Y/X/Z, then evaluate FinalDensity and the
// aquifer at every block inside the cell.
func (g *NoiseChunkGenerator) fillBlocks(col *chunk.ChunkColumn, ctx *density.Context, pos chunk.Pos) {
	cellWidth := g.Settings.CellWidth()
	cellHeight := g.Settings.CellHeight()
	cellCountXZ := g.Settings.CellCountXZ()
	cellCountY := g.Settings.CellCountY()

	interp := g.Router.Interpolated()

	// slice0 starts out holding the X=0 edge of the chunk; each loop
	// iteration fills slice1 with the next edge (cellX+1), processes the
	// cell lying between those two edges, then swaps slice1 into slice0's
	// place so the next iteration's "left edge" is already filled.
	ctx.FillingCell = false
	ctx.CellStartBlockX = pos.OriginBlockX()
	for _, in := range interp {
		in.Initialize(ctx)
	}

	for cellX := 0; cellX < cellCountXZ; cellX++ {
		leftEdgeX := pos.OriginBlockX() + cellX*cellWidth

		ctx.CellStartBlockX = pos.OriginBlockX() + (cellX+1)*cellWidth
		for _, in := range interp {
			in.AdvanceCellX(ctx)
		}
		ctx.BumpInterpolation()
		ctx.CellStartBlockX = leftEdgeX

		for cellZ := 0; cellZ < cellCountXZ; cellZ++ {
			ctx.CellStartBlockZ = pos.OriginBlockZ() + cellZ*cellWidth

			for cellY := cellCountY - 1; cellY >= 0; cellY-- {
				for _, in := range interp {
					in.SelectCellYZ(cellY, cellZ)
				}

				for inCellY := cellHeight - 1; inCellY >= 0; inCellY-- {
					y := (g.Settings.MinY/cellHeight+cellY)*cellHeight + inCellY
					tY := float64(inCellY) / float64(cellHeight)
					for _, in := range interp {
						in.UpdateForY(tY)
					}
					ctx.BumpArrayInterpolation()

					for inCellX := 0; inCellX < cellWidth; inCellX++ {
						x := ctx.CellStartBlockX + inCellX
						tX := float64(inCellX) / float64(cellWidth)
						for _, in := range interp {
							in.UpdateForX(tX)
						}

						for inCellZ := 0; inCellZ < cellWidth; inCellZ++ {
							z := ctx.CellStartBlockZ + inCellZ
							tZ := float64(inCellZ) / float64(cellWidth)
							for _, in := range interp {
								in.UpdateForZ(tZ)
							}

							ctx.FillingCell = true
							ctx.InCellX, ctx.InCellY, ctx.InCellZ = tX, tY, tZ
							samplePos := density.Pos{X: x, Y: y, Z: z}
							finalDensity := g.Router.FinalDensity.Sample(samplePos, ctx)
							ctx.FillingCell = false

							id, ok := g.Aquifer.Compute(samplePos, finalDensity)
							if !ok || id == g.Settings.AirBlock {
								continue
							}

							lx, lz := x&15, z&15
							col.SetBlockUnguarded(lx, y, lz, id)
							col.Heightmap(chunk.WorldSurfaceWG).Update(lx, y, lz, true)
							col.Heightmap(chunk.OceanFloorWG).Update(lx, y, lz, true)
						}
					}
				}
			}
		}

		for _, in := range interp {
			in.SwapSlices()
		}
	}
}
