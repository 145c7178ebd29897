package surface

import (
	"github.com/dm-vev/adamant/server/world/biome"
	"github.com/dm-vev/adamant/server/world/density"
)

// Condition is a boolean predicate a rule tree node gates on.
type Condition interface {
	Test(ctx *Context) bool
}

// AbovePreliminary reports whether the current Y is at or above the
// column's preliminary minimum surface level. The materializer sets it to
// the bilinear interpolation of four MinSurfaceNoise corner samples minus
// 8; surface depth is not subtracted. MinSurfaceLevel is expected to already be
// populated on ctx by the materializer before the rule tree runs (it is
// computed once per 16x16 surface cell, not per block).
type AbovePreliminary struct{}

func (AbovePreliminary) Test(ctx *Context) bool { return ctx.Y >= ctx.MinSurfaceLevel }

// Biome matches when the column's resolved biome name is in the given set.
type Biome struct{ Names map[string]bool }

// NewBiome builds a Biome condition from a list of biome names.
func NewBiome(names ...string) Biome {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return Biome{Names: set}
}

func (b Biome) Test(ctx *Context) bool {
	if ctx.Biome == nil {
		return false
	}
	return b.Names[ctx.Biome.Name]
}

// Hole matches when the scan has gone past the surface without finding
// solid ground (surface_depth has gone non-positive), the signal used to
// stop placing surface blocks and fall through to stone.
type Hole struct{}

func (Hole) Test(ctx *Context) bool { return ctx.SurfaceDepth <= 0 }

// NoiseThreshold matches when sampling noise at (x, 0, z) falls in [Lo, Hi].
type NoiseThreshold struct {
	Noise  density.Function
	Lo, Hi float64
}

func (n NoiseThreshold) Test(ctx *Context) bool {
	v := n.Noise.Sample(density.Pos{X: ctx.X, Y: 0, Z: ctx.Z}, ctx.DensityContext())
	return v >= n.Lo && v <= n.Hi
}

// Not inverts another condition.
type Not struct{ Inner Condition }

func (n Not) Test(ctx *Context) bool { return !n.Inner.Test(ctx) }

// SteepMaterial matches when a neighbouring heightmap column differs from
// this one by at least 4, the signal used to place stone instead of soil
// on steep slopes. HeightHere/HeightNeighbors are supplied by the
// materializer from the world-surface heightmap before the rule runs.
type SteepMaterial struct {
	HeightHere      int
	HeightNeighbors [4]int
}

func (s SteepMaterial) Test(_ *Context) bool {
	for _, h := range s.HeightNeighbors {
		d := h - s.HeightHere
		if d < 0 {
			d = -d
		}
		if d >= 4 {
			return true
		}
	}
	return false
}

// stoneDepthKind selects whether a StoneDepth condition reads the
// above-surface or below-surface running depth counter.
type stoneDepthKind int

const (
	StoneDepthAbove stoneDepthKind = iota
	StoneDepthBelow
)

// StoneDepth matches when the relevant depth counter is within the
// computed threshold: 1 + offset + (surface_depth, if AddSurfaceDepth) +
// map(secondary, -1..1, 0..SecondaryRange), where secondary is a noise
// sample provided by Secondary (nil means the map term is 0).
type StoneDepth struct {
	Kind             stoneDepthKind
	AddSurfaceDepth  bool
	Offset           int
	SecondaryRange   float64
	Secondary        density.Function
}

func (s StoneDepth) Test(ctx *Context) bool {
	threshold := 1 + s.Offset
	if s.AddSurfaceDepth {
		threshold += ctx.SurfaceDepth
	}
	if s.Secondary != nil {
		v := s.Secondary.Sample(density.Pos{X: ctx.X, Y: ctx.Y, Z: ctx.Z}, ctx.DensityContext())
		threshold += int(mapRange(v, -1, 1, 0, s.SecondaryRange))
	}
	depth := ctx.StoneDepthAbove
	if s.Kind == StoneDepthBelow {
		depth = ctx.StoneDepthBelow
	}
	return depth <= threshold
}

func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	t := (v - inLo) / (inHi - inLo)
	return outLo + t*(outHi-outLo)
}

// Temperature matches when the biome is cold enough to snow: its
// height-adjusted temperature is below biome.SnowThreshold. The frozen
// modifier's adjustment recipe is approximated here as the plain biome
// temperature (the frozen-specific noise recipe spec.md alludes to is not
// otherwise specified); see DESIGN.md for that simplification.
type Temperature struct{}

func (Temperature) Test(ctx *Context) bool {
	if ctx.Biome == nil {
		return false
	}
	return ctx.Biome.Climate.Temperature < biome.SnowThreshold
}

// VerticalGradient returns true with probability lerp(y, TrueAt, FalseAt,
// 1, 0) for y strictly between TrueAt and FalseAt (always true at or below
// TrueAt, always false at or above FalseAt), using a positional RNG forked
// by Tag.
type VerticalGradient struct {
	Tag            string
	TrueAt, FalseAt int
}

func (v VerticalGradient) Test(ctx *Context) bool {
	y := ctx.Y
	if y <= v.TrueAt {
		return true
	}
	if y >= v.FalseAt {
		return false
	}
	p := mapRange(float64(y), float64(v.TrueAt), float64(v.FalseAt), 1, 0)
	stream := ctx.ForkTag(v.Tag, int32(ctx.X), int32(y), int32(ctx.Z))
	return stream.NextF64() < p
}

// depthRelation is the shared shape of Water/Y: a linear relation between
// the current Y and an anchor (sea level for Water, an explicit Y for Y),
// scaled by Mult, plus an optional AddStone term.
type depthRelation struct {
	Offset, Mult int
	AddStone     bool
}

func (d depthRelation) test(ctx *Context, anchor int) bool {
	stone := 0
	if d.AddStone {
		stone = ctx.StoneDepthAbove
	}
	return ctx.Y+stone <= anchor+d.Offset*d.Mult
}

// Water matches the Water(offset, mult, add_stone) depth relation against
// sea level (plus the column's tracked water height).
type Water struct{ depthRelation }

func (w Water) Test(ctx *Context) bool { return w.depthRelation.test(ctx, ctx.WaterHeight) }

// Y matches the Y(anchor, mult, add_stone) depth relation against an
// explicit anchor height.
type Y struct {
	depthRelation
	Anchor int
}

func (y Y) Test(ctx *Context) bool { return y.depthRelation.test(ctx, y.Anchor) }
