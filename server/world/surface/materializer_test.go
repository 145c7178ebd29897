package surface

import (
	"testing"

	"github.com/dm-vev/adamant/server/block/cube"
	"github.com/dm-vev/adamant/server/world/biome"
	"github.com/dm-vev/adamant/server/world/chunk"
	"github.com/dm-vev/adamant/server/world/density"
)

const (
	airID   = uint32(0)
	stoneID = uint32(1)
	grassID = uint32(2)
	waterID = uint32(3)
)

// filledColumn returns a column whose every cell from the build floor up to
// (but not including) topY is stone, with topY and above left air, and the
// world-surface heightmap updated to match (the shape Materialize expects
// the noise generator to have already produced).
func filledColumn(topY int) *chunk.ChunkColumn {
	col := chunk.NewChunkColumn(chunk.Pos{0, 0}, cube.Range{-64, 319}, airID, 0, 15, 6)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := -64; y < topY; y++ {
				col.SetBlockUnguarded(x, y, z, stoneID)
				col.Heightmap(chunk.WorldSurfaceWG).Update(x, y, z, true)
			}
		}
	}
	return col
}

func newDensityContext() *density.Context {
	return density.NewContext(4, 8, 4, 48, -8)
}

// TestMaterializeReplacesTopStoneWithGrass checks the common case: a rule
// tree that places grass above the preliminary surface level rewrites the
// topmost stone block of a filled column, and leaves stone below that
// level untouched.
func TestMaterializeReplacesTopStoneWithGrass(t *testing.T) {
	col := filledColumn(65)
	dctx := newDensityContext()

	m := &Materializer{
		Rules:             NewCondition(AbovePreliminary{}, NewState(grassID)),
		StoneID:           stoneID,
		WaterID:           waterID,
		AirID:             airID,
		SeaLevel:          63,
		SurfaceDepthNoise: density.NewConst(0),
		MinSurfaceNoise:   density.NewConst(0), // MinSurfaceLevel = 0 - 8 = -8, always satisfied
	}

	m.Materialize(col, dctx, func(x, z int) *biome.Biome { return nil })

	if got := col.BlockUnguarded(0, 64, 0); got != grassID {
		t.Fatalf("BlockUnguarded(0,64,0) = %d, want grass (%d)", got, grassID)
	}
	// A block deep underground should remain stone: AbovePreliminary is
	// false for y far below MinSurfaceLevel once SurfaceDepth/offset pulls
	// it down, but even with a constant MinSurfaceLevel of -8 a block at
	// y=-60 is still "above" -8 is false only when y < -8; pick a y below.
	if got := col.BlockUnguarded(0, -60, 0); got != stoneID {
		t.Fatalf("BlockUnguarded(0,-60,0) = %d, want unchanged stone (%d)", got, stoneID)
	}
}

// TestMaterializeLeavesStoneWhenRuleDeclines checks that a rule tree with
// no matching branch leaves the scanned blocks as stone.
func TestMaterializeLeavesStoneWhenRuleDeclines(t *testing.T) {
	col := filledColumn(65)
	dctx := newDensityContext()

	m := &Materializer{
		Rules:             NewCondition(NewBiome("minecraft:desert"), NewState(grassID)),
		StoneID:           stoneID,
		WaterID:           waterID,
		AirID:             airID,
		SeaLevel:          63,
		SurfaceDepthNoise: density.NewConst(0),
		MinSurfaceNoise:   density.NewConst(0),
	}

	plains := &biome.Biome{Name: "minecraft:plains"}
	m.Materialize(col, dctx, func(x, z int) *biome.Biome { return plains })

	if got := col.BlockUnguarded(0, 64, 0); got != stoneID {
		t.Fatalf("BlockUnguarded(0,64,0) = %d, want stone (%d) since the biome condition never matches", got, stoneID)
	}
}

// TestMaterializeTriggersErodedBadlandsSpecialCase checks that a column
// resolved to an eroded-badlands biome runs the pillar special case, which
// (with a positive-constant pillar gate/roof) patches terracotta above the
// surface.
func TestMaterializeTriggersErodedBadlandsSpecialCase(t *testing.T) {
	col := filledColumn(65)
	dctx := newDensityContext()

	m := &Materializer{
		Rules:             NewSequence(),
		StoneID:           stoneID,
		WaterID:           waterID,
		AirID:             airID,
		SeaLevel:          63,
		SurfaceDepthNoise: density.NewConst(0),
		MinSurfaceNoise:   density.NewConst(0),
		Special: SpecialCases{
			PillarNoise:     density.NewConst(1),
			PillarRoofNoise: density.NewConst(0.5),
			TerracottaID:    5,
		},
		ErodedBadlandsBiomes: map[string]bool{"minecraft:eroded_badlands": true},
	}

	badlands := &biome.Biome{Name: "minecraft:eroded_badlands"}
	m.Materialize(col, dctx, func(x, z int) *biome.Biome { return badlands })

	if got := col.BlockUnguarded(0, 65, 0); got != 5 {
		t.Fatalf("BlockUnguarded(0,65,0) = %d, want terracotta (5) from the eroded-badlands pillar", got)
	}
}

// TestMaterializeSkipsSpecialCaseForUnrelatedBiome checks that the special
// cases never run for a biome outside their gated sets, even with noise
// inputs that would otherwise trigger them.
func TestMaterializeSkipsSpecialCaseForUnrelatedBiome(t *testing.T) {
	col := filledColumn(65)
	dctx := newDensityContext()

	m := &Materializer{
		Rules:             NewSequence(),
		StoneID:           stoneID,
		WaterID:           waterID,
		AirID:             airID,
		SeaLevel:          63,
		SurfaceDepthNoise: density.NewConst(0),
		MinSurfaceNoise:   density.NewConst(0),
		Special: SpecialCases{
			PillarNoise:     density.NewConst(1),
			PillarRoofNoise: density.NewConst(0.5),
			TerracottaID:    5,
		},
		ErodedBadlandsBiomes: map[string]bool{"minecraft:eroded_badlands": true},
	}

	plains := &biome.Biome{Name: "minecraft:plains"}
	m.Materialize(col, dctx, func(x, z int) *biome.Biome { return plains })

	if got := col.BlockUnguarded(0, 65, 0); got != airID {
		t.Fatalf("BlockUnguarded(0,65,0) = %d, want untouched air (%d)", got, airID)
	}
}
