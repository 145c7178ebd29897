package gen

import "github.com/dm-vev/adamant/server/world/density"

// Aquifer decides what block (if any) the final-density step should place
// at a position, given the density graph's FinalDensity sample there. A
// real aquifer (not modelled here — structure/fluid-level carving is out
// of this core's scope) would consult FluidLevelFloodedness/Spread/Barrier
// noises to carve out caves and flood them appropriately; this core only
// ever runs the degenerate case the spec calls out explicitly.
type Aquifer interface {
	// Compute returns the GlobalID to place at pos and whether any block
	// should be placed at all (a false ok means leave the cell as air).
	Compute(pos density.Pos, finalDensity float64) (id uint32, ok bool)
}

// DisabledAquifer is the only Aquifer this generator implements: it places
// the dimension's default block wherever final_density is positive, and
// nothing otherwise. Named "disabled" because it never floods a carved
// cavity with fluid the way a real aquifer does.
type DisabledAquifer struct {
	DefaultBlock uint32
}

// NewDisabledAquifer returns a DisabledAquifer that fills with defaultBlock.
func NewDisabledAquifer(defaultBlock uint32) *DisabledAquifer {
	return &DisabledAquifer{DefaultBlock: defaultBlock}
}

func (a *DisabledAquifer) Compute(_ density.Pos, finalDensity float64) (uint32, bool) {
	if finalDensity > 0 {
		return a.DefaultBlock, true
	}
	return 0, false
}
