package block

import (
	"encoding/json"
	"fmt"
)

// GlobalID is the compact numeric identifier a GlobalPalette assigns to a
// value of type T. Blocks use a 15-bit-wide space, biomes a 6-bit-wide one;
// the palette itself does not enforce the width, callers size BitsPerEntry
// to the domain they're registering (see NewGlobalPalette).
type GlobalID = uint32

// GlobalPalette is a bijection between a GlobalID and a shared *T, plus a
// secondary "lookup key" index so that every variant of one block (or biome)
// kind can be found from just the kind name, ordered with the default
// variant first. Insertion never overwrites an existing entry: once a
// GlobalID has been handed out for a given value it is permanent for the
// lifetime of the palette.
type GlobalPalette[T any] struct {
	// BitsPerEntry is the fixed width reserved for GlobalIDs handed out by
	// this palette (15 for blocks, 6 for biomes per the data model).
	BitsPerEntry int

	byID  []*T
	ids   map[string]GlobalID
	byKey map[string][]GlobalID

	keyOf      func(*T) string
	identityOf func(*T) string
}

// NewGlobalPalette creates an empty GlobalPalette. keyOf extracts the
// secondary lookup key (block/biome kind name); identityOf extracts the
// structural-equality key (which may be the same string, or more specific
// when T carries variant properties) from a value.
func NewGlobalPalette[T any](bitsPerEntry int, keyOf func(*T) string, identityOf func(*T) string) *GlobalPalette[T] {
	return &GlobalPalette[T]{
		BitsPerEntry: bitsPerEntry,
		ids:          make(map[string]GlobalID),
		byKey:        make(map[string][]GlobalID),
		keyOf:        keyOf,
		identityOf:   identityOf,
	}
}

// Register inserts value under the next free GlobalID and indexes it by its
// lookup key. Register never overwrites: calling it twice with structurally
// identical values returns the GlobalID from the first call.
func (p *GlobalPalette[T]) Register(value *T, def bool) GlobalID {
	id := p.identityOf(value)
	if existing, ok := p.ids[id]; ok {
		return existing
	}
	gid := GlobalID(len(p.byID))
	p.byID = append(p.byID, value)
	p.ids[id] = gid

	key := p.keyOf(value)
	if def {
		p.byKey[key] = append([]GlobalID{gid}, p.byKey[key]...)
	} else {
		p.byKey[key] = append(p.byKey[key], gid)
	}
	return gid
}

// ByID returns the value registered under id, or nil if no such id exists.
func (p *GlobalPalette[T]) ByID(id GlobalID) *T {
	if int(id) >= len(p.byID) {
		return nil
	}
	return p.byID[id]
}

// IDOf returns the GlobalID a structurally-identical value was registered
// under, if any.
func (p *GlobalPalette[T]) IDOf(value *T) (GlobalID, bool) {
	id, ok := p.ids[p.identityOf(value)]
	return id, ok
}

// Variants returns every GlobalID registered under the given lookup key,
// default variant first.
func (p *GlobalPalette[T]) Variants(key string) []GlobalID {
	return p.byKey[key]
}

// Len returns the number of distinct values registered in the palette.
func (p *GlobalPalette[T]) Len() int { return len(p.byID) }

// rawBlockDef mirrors the shape of one entry in the Palette JSON resource:
// a map of property name to the list of values it may take, plus the
// flattened list of concrete states.
type rawBlockDef struct {
	Properties map[string][]any `json:"properties"`
	States     []rawBlockState  `json:"states"`
}

type rawBlockState struct {
	ID         GlobalID       `json:"id"`
	Default    bool           `json:"default"`
	Properties map[string]any `json:"properties"`
}

// LoadPaletteJSON decodes the Palette JSON resource described in the
// external interfaces section of the spec: a map of block-kind name to its
// property domain and the enumerated list of concrete states. Every decoded
// state is inserted under its numeric ID; names and properties from older
// exports are run through upgradeLegacy first, mirroring how dragonfly's
// disk/network decoders fall back to df-mc/worldupgrader for
// pre-flattening block data. No decoded state is dropped.
func LoadPaletteJSON(data []byte) (*GlobalPalette[State], error) {
	var raw map[string]rawBlockDef
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode block palette: %w", err)
	}

	pal := NewGlobalPalette[State](15, func(s *State) string { return s.Name }, func(s *State) string { return s.key() })

	ids := make(map[GlobalID]*State)
	for name, def := range raw {
		for _, rs := range def.States {
			name, props := name, rs.Properties
			if upgraded, ok := upgradeLegacy(name, props); ok {
				name, props = upgraded.Name, upgraded.Properties
			}
			st := &State{Name: name, Properties: props, Default: rs.Default}
			ids[rs.ID] = st
		}
	}

	// Insert in ID order so that GlobalID assignment matches the resource's
	// own numbering: Register assigns sequential IDs starting at 0, so the
	// resource's IDs must already be dense starting at 0 for the two
	// numbering schemes to agree (true of every shipped block_states
	// resource, since flattening reassigns ids density-first).
	max := GlobalID(0)
	for id := range ids {
		if id > max {
			max = id
		}
	}
	for id := GlobalID(0); id <= max; id++ {
		st, ok := ids[id]
		if !ok {
			continue
		}
		pal.Register(st, st.Default)
	}
	return pal, nil
}
