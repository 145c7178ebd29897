package biome

import (
	"encoding/json"
	"fmt"

	"github.com/dm-vev/adamant/server/block"
)

// Palette is a biome GlobalPalette: a 6-bit-wide bijection between a Biome
// and its compact numeric ID, keyed by name (biomes carry no variant
// properties the way blocks do, so the lookup key and identity key
// coincide).
type Palette = block.GlobalPalette[Biome]

// NewPalette creates an empty biome Palette.
func NewPalette() *Palette {
	return block.NewGlobalPalette[Biome](6, func(b *Biome) string { return b.Name }, func(b *Biome) string { return b.Name })
}

// rawClimate mirrors one Biome JSON entry's climate object.
type rawClimate struct {
	Temperature float64 `json:"temperature"`
	Downfall    float64 `json:"downfall"`
	Modifier    string  `json:"modifier"`
}

type rawBiome struct {
	ID      uint32     `json:"id"`
	Name    string     `json:"name"`
	Climate rawClimate `json:"climate"`
}

func parseModifier(s string) Modifier {
	if s == "frozen" {
		return ModifierFrozen
	}
	return ModifierNone
}

// LoadBiomeJSON decodes the Biome JSON resource: a flat array of
// { id, name, climate }. Entries are registered in ascending id order so
// GlobalID assignment matches the resource's own numbering, identically to
// how LoadPaletteJSON handles the block resource's dense ids.
func LoadBiomeJSON(data []byte) (*Palette, error) {
	var raw []rawBiome
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode biome palette: %w", err)
	}

	byID := make(map[uint32]*Biome, len(raw))
	max := uint32(0)
	for _, rb := range raw {
		byID[rb.ID] = &Biome{
			Name: rb.Name,
			Climate: Climate{
				Temperature: rb.Climate.Temperature,
				Downfall:    rb.Climate.Downfall,
				Modifier:    parseModifier(rb.Climate.Modifier),
			},
		}
		if rb.ID > max {
			max = rb.ID
		}
	}

	pal := NewPalette()
	for id := uint32(0); id <= max; id++ {
		b, ok := byID[id]
		if !ok {
			continue
		}
		pal.Register(b, false)
	}
	return pal, nil
}

// rawParameterRange is one [min, max] pair as shipped in the
// Biome-parameter JSON, already pre-multiplied by FixedPointScale.
type rawParameterRange [2]int64

// rawParameters mirrors a Biome-parameter JSON entry's six distance axes
// plus the non-distance Offset field.
type rawParameters struct {
	Temperature     rawParameterRange `json:"temperature"`
	Humidity        rawParameterRange `json:"humidity"`
	Continentalness rawParameterRange `json:"continentalness"`
	Erosion         rawParameterRange `json:"erosion"`
	Depth           rawParameterRange `json:"depth"`
	Weirdness       rawParameterRange `json:"weirdness"`
	Offset          int64             `json:"offset"`
}

type rawParameterEntry struct {
	Parameters rawParameters `json:"parameters"`
	Biome      string        `json:"biome"`
}

// LoadIndexJSON decodes a Biome-parameter JSON resource into an Index over
// the biomes already registered in pal, looked up by name.
func LoadIndexJSON(data []byte, pal *Palette) (*Index, error) {
	var raw []rawParameterEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode biome parameter index: %w", err)
	}

	idx := &Index{entries: make([]entry, 0, len(raw))}
	for _, re := range raw {
		variants := pal.Variants(re.Biome)
		if len(variants) == 0 {
			return nil, fmt.Errorf("decode biome parameter index: unknown biome %q", re.Biome)
		}
		b := pal.ByID(variants[0])
		box := Box{
			re.Parameters.Temperature.toRange(),
			re.Parameters.Humidity.toRange(),
			re.Parameters.Continentalness.toRange(),
			re.Parameters.Erosion.toRange(),
			re.Parameters.Depth.toRange(),
			re.Parameters.Weirdness.toRange(),
		}
		idx.entries = append(idx.entries, entry{box: box, biome: b})
	}
	return idx, nil
}

func (r rawParameterRange) toRange() ParameterRange { return ParameterRange{r[0], r[1]} }
