// Package biome implements the Biome record, its JSON-loaded global
// palette, and the BiomeIndex nearest-neighbour lookup that resolves a
// climate sample into a concrete biome (spec.md §3, §4.F, §6).
package biome

// Modifier is a biome's special-case behaviour flag; "frozen" changes how
// surface rules compute snow/ice thresholds (see Temperature condition in
// server/world/surface).
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierFrozen
)

// Effects holds the ambient rendering parameters a biome carries (fog,
// water, sky colours, ...). The core only reads Name/Climate for terrain
// decisions; Effects is carried through because the loader decodes it and
// a downstream renderer (out of scope here) needs it verbatim.
type Effects map[string]any

// Climate is a biome's fixed per-biome climate record: base temperature
// and downfall (used by the surface materializer's snow/ice thresholds and
// by the per-position temperature adjustment), its Modifier, and its
// render Effects.
type Climate struct {
	Temperature float64
	Downfall    float64
	Modifier    Modifier
	Effects     Effects
}

// Biome is an immutable record of a name and its climate. Equality is
// structural (two Biomes with the same Name are the same biome); the name
// alone is what surface rules and the biome palette key off of.
type Biome struct {
	Name    string
	Climate Climate
}

// Key returns the biome's identity key for GlobalPalette registration.
func (b *Biome) Key() string { return b.Name }

// SnowThreshold is the height-adjusted-temperature cutoff below which a
// biome's surface is cold enough to snow (spec.md §4.H's Temperature
// condition).
const SnowThreshold = 0.15
