package density

import "github.com/dm-vev/adamant/server/world/rng"

// NoiseRouter is the fixed record of named density functions a dimension's
// noise settings resolve to: everything the generator needs to carve
// terrain, decide biome climate and place aquifers/ore veins comes from
// one of these fields.
type NoiseRouter struct {
	BarrierNoise               Function
	FluidLevelFloodednessNoise Function
	FluidLevelSpreadNoise      Function
	LavaNoise                  Function
	Temperature                Function
	Vegetation                 Function
	Continents                 Function
	Erosion                    Function
	Depth                      Function
	Ridges                     Function
	InitialDensityWithoutJaggedness Function
	FinalDensity               Function
	VeinToggle                 Function
	VeinRidged                 Function
	VeinGap                    Function

	interpolated []*Interpolated
	flatCaches   []*FlatCache
	holders      []*NoiseHolder
}

// collectNodes walks every field of r depth-first, gathering the
// *Interpolated, *FlatCache and *NoiseHolder nodes reachable from it so
// SetupNoise can resolve and size them exactly once, deduplicated.
func (r *NoiseRouter) collectNodes() {
	seenInterp := map[*Interpolated]bool{}
	seenFlat := map[*FlatCache]bool{}
	seenHolder := map[*NoiseHolder]bool{}
	var walk func(f Function)
	walk = func(f Function) {
		if f == nil {
			return
		}
		switch n := f.(type) {
		case *Interpolated:
			if !seenInterp[n] {
				seenInterp[n] = true
				r.interpolated = append(r.interpolated, n)
			}
			walk(n.Inner)
		case *FlatCache:
			if !seenFlat[n] {
				seenFlat[n] = true
				r.flatCaches = append(r.flatCaches, n)
			}
			walk(n.Arg)
		case *CacheOnce:
			walk(n.Arg)
		case *Cache2D:
			walk(n.Arg)
		case *CacheAllInCell:
			walk(n.Arg)
		case *Marker:
			walk(n.Arg)
		case *Add:
			walk(n.Arg1)
			walk(n.Arg2)
		case *Mul:
			walk(n.Arg1)
			walk(n.Arg2)
		case *Min2:
			walk(n.Arg1)
			walk(n.Arg2)
		case *Max2:
			walk(n.Arg1)
			walk(n.Arg2)
		case *Clamp:
			walk(n.Input)
		case *RangeChoice:
			walk(n.Input)
			walk(n.WhenIn)
			walk(n.WhenOut)
		case *unary:
			walk(n.Arg)
		case *BlendDensity:
			walk(n.Arg)
		case *Noise:
			registerHolder(seenHolder, r, n.Holder)
		case *ShiftA:
			registerHolder(seenHolder, r, n.Holder)
		case *ShiftB:
			registerHolder(seenHolder, r, n.Holder)
		case *ShiftedNoise:
			registerHolder(seenHolder, r, n.Holder)
			walk(n.ShiftX)
			walk(n.ShiftY)
			walk(n.ShiftZ)
		case *WeirdScaledSampler:
			registerHolder(seenHolder, r, n.Holder)
			walk(n.Input)
		case *SplineNode:
			if mp, ok := n.S.(*MultiPoint); ok {
				walk(mp.Coordinate)
			}
		}
	}
	for _, f := range r.all() {
		walk(f)
	}
}

func registerHolder(seen map[*NoiseHolder]bool, r *NoiseRouter, h *NoiseHolder) {
	if h == nil || seen[h] {
		return
	}
	seen[h] = true
	r.holders = append(r.holders, h)
}

func (r *NoiseRouter) all() []Function {
	return []Function{
		r.BarrierNoise, r.FluidLevelFloodednessNoise, r.FluidLevelSpreadNoise, r.LavaNoise,
		r.Temperature, r.Vegetation, r.Continents, r.Erosion, r.Depth, r.Ridges,
		r.InitialDensityWithoutJaggedness, r.FinalDensity,
		r.VeinToggle, r.VeinRidged, r.VeinGap,
	}
}

// SetupNoise runs the one-shot mapper pipeline described by the graph's
// setup contract: seed every NoiseHolder (deduplicated) from rng.New(seed)
// forked by the holder's tag, materialize FlatCache lattices, and size
// every Interpolated node's slice buffers for the chunk geometry about to
// be generated. The seed stream is forked by tag directly; no positional
// fork is taken first.
func SetupNoise(r *NoiseRouter, seed uint64, firstQuartX, firstQuartZ, lastQuartXZSize, cellCountXZ, cellCountY int, flatCacheY int) {
	r.interpolated = nil
	r.flatCaches = nil
	r.holders = nil
	r.collectNodes()

	base := rng.New(seed)
	for _, h := range r.holders {
		tagRNG := base.ForkTag(h.Tag)
		h.Resolve(tagRNG)
	}
	for _, fc := range r.flatCaches {
		fc.Materialize(firstQuartX, firstQuartZ, lastQuartXZSize, flatCacheY)
	}
	for _, in := range r.interpolated {
		in.AllocateSlices(cellCountXZ, cellCountY)
	}
}

// Interpolated returns every *Interpolated node SetupNoise collected,
// in graph-walk order, so the generator can drive them in lockstep.
func (r *NoiseRouter) Interpolated() []*Interpolated { return r.interpolated }
