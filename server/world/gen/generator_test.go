package gen

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
)

// wideBox returns a biome.Box spanning every climate axis, wide enough that
// any ClimatePoint these tests construct falls inside it.
func wideBox() biome.Box {
	var b biome.Box
	for i := range b {
		b[i] = biome.ParameterRange{-1_000_000, 1_000_000}
	}
	return b
}

// newTestGenerator builds a NoiseChunkGenerator whose entire router is
// constant: FinalDensity is always positive (so every cell fills with
// stone) and every climate axis samples to 0, which a single wide biome box
// always matches. This exercises the cell-scan/interpolator-drive and
// biome-fill algorithms without depending on any real noise resource.
func newTestGenerator(t *testing.T, finalDensity float64) (*NoiseChunkGenerator, *biome.Palette) {
	t.Helper()

	settings := OverworldNoiseSettings(stoneID, 0, airID)

	router := &density.NoiseRouter{
		Temperature:     density.NewConst(0),
		Vegetation:      density.NewConst(0),
		Continents:      density.NewConst(0),
		Erosion:         density.NewConst(0),
		Depth:           density.NewConst(0),
		Ridges:          density.NewConst(0),
		FinalDensity:    density.NewInterpolated(density.NewConst(finalDensity)),
	}
	density.SetupNoise(router, 1, 0, 0, 4, settings.CellCountXZ(), settings.CellCountY(), 64)

	biomePalette := biome.NewPalette()
	plains := &biome.Biome{Name: "minecraft:plains"}
	biomePalette.Register(plains, true)

	idx := &biome.Index{}
	idx.Add(wideBox(), plains)

	climate := ClimateSampler{
		Temperature:     router.Temperature,
		Humidity:        router.Vegetation,
		Continentalness: router.Continents,
		Erosion:         router.Erosion,
		Depth:           router.Depth,
		Weirdness:       router.Ridges,
	}

	g := NewNoiseChunkGenerator(settings, router, climate, idx, NewDisabledAquifer(stoneID), 1)
	g.SetBiomePalette(biomePalette)
	return g, biomePalette
}

func newTestColumn(pos chunk.Pos) *chunk.ChunkColumn {
	return chunk.NewChunkColumn(pos, cube.Range{-64, 319}, airID, 0, 15, 6)
}

// TestGenerateChunkFillsEveryColumnWhenDensityPositive checks that a router
// whose FinalDensity is a constant positive value fills every block in the
// column with the dimension's default block, per the disabled-aquifer rule
// (final_density > 0 places the default block).
func TestGenerateChunkFillsEveryColumnWhenDensityPositive(t *testing.T) {
	g, _ := newTestGenerator(t, 1)
	col := newTestColumn(chunk.Pos{0, 0})

	g.GenerateChunk(chunk.Pos{0, 0}, col)

	if col.Status != chunk.StatusNoise {
		t.Fatalf("Status = %v, want StatusNoise", col.Status)
	}
	if got := col.BlockUnguarded(0, 64, 0); got != stoneID {
		t.Fatalf("BlockUnguarded(0,64,0) = %d, want %d", got, stoneID)
	}
	if got := col.BlockUnguarded(15, -64, 15); got != stoneID {
		t.Fatalf("BlockUnguarded(15,-64,15) = %d, want %d", got, stoneID)
	}
}

// TestGenerateChunkLeavesColumnEmptyWhenDensityNegative checks the
// complementary case: a constant non-positive density places nothing.
func TestGenerateChunkLeavesColumnEmptyWhenDensityNegative(t *testing.T) {
	g, _ := newTestGenerator(t, -1)
	col := newTestColumn(chunk.Pos{0, 0})

	g.GenerateChunk(chunk.Pos{0, 0}, col)

	if got := col.BlockUnguarded(0, 64, 0); got != airID {
		t.Fatalf("BlockUnguarded(0,64,0) = %d, want air (%d)", got, airID)
	}
}

// TestGenerateChunkUpdatesHeightmap checks that filling a column with solid
// blocks raises the world-surface heightmap to one past the topmost filled
// Y, the build range's ceiling in this always-solid case.
func TestGenerateChunkUpdatesHeightmap(t *testing.T) {
	g, _ := newTestGenerator(t, 1)
	col := newTestColumn(chunk.Pos{0, 0})

	g.GenerateChunk(chunk.Pos{0, 0}, col)

	got := col.Heightmap(chunk.WorldSurfaceWG).Get(0, 0)
	if got != 320 {
		t.Fatalf("Heightmap.Get(0,0) = %d, want 320 (one past the build ceiling 319)", got)
	}
}

// TestGenerateChunkFillsBiomes checks that every quarter-resolution biome
// cell in the column resolves to the single registered biome, and that the
// resulting GlobalID round-trips through the attached palette.
func TestGenerateChunkFillsBiomes(t *testing.T) {
	g, pal := newTestGenerator(t, 1)
	col := newTestColumn(chunk.Pos{2, 3})

	g.GenerateChunk(chunk.Pos{2, 3}, col)

	wantID, ok := pal.IDOf(&biome.Biome{Name: "minecraft:plains"})
	if !ok {
		t.Fatalf("test setup: plains biome not registered")
	}
	if got := col.Biome(0, 0, 0); got != wantID {
		t.Fatalf("Biome(0,0,0) = %d, want %d", got, wantID)
	}
	if got := col.Biome(3, 15, 3); got != wantID {
		t.Fatalf("Biome(3,15,3) = %d, want %d", got, wantID)
	}
}

// TestGenerateChunkFillsLight checks that FillLight leaves every section's
// sky-light full, the initial value spec.md §4.D documents.
func TestGenerateChunkFillsLight(t *testing.T) {
	g, _ := newTestGenerator(t, 1)
	col := newTestColumn(chunk.Pos{0, 0})
	g.GenerateChunk(chunk.Pos{0, 0}, col)

	sec := col.SectionAt(10)
	if sec == nil {
		t.Fatalf("SectionAt(10) = nil")
	}
	sky := sec.SkyLight()
	for i, b := range sky {
		if b != 0xFF {
			t.Fatalf("SkyLight()[%d] = %#x, want 0xFF", i, b)
		}
	}
}
