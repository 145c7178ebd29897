package block

import "sort"

// State is an immutable tuple of a block kind and the set of variant
// properties that distinguish one state of that kind from another (for
// example the "facing" of a lever or the "power" of redstone dust). Equality
// between two states is structural: two State values with the same Name and
// the same Properties are considered the same block state regardless of
// where they were constructed, which is what lets the GlobalPalette dedupe
// identical states on insert.
type State struct {
	// Name is the block kind identifier, e.g. "minecraft:stone".
	Name string
	// Properties holds the variant properties of this state, e.g.
	// {"facing": "north"}. It is never mutated after construction.
	Properties map[string]any
	// Default reports whether this State is the kind's default variant,
	// the one states decode to when properties are missing or malformed.
	Default bool
}

// key returns a canonical string built from Name and the sorted Properties,
// used as the map key for structural equality; the palette's "lookup by
// block kind" key is Name alone.
func (s State) key() string {
	if len(s.Properties) == 0 {
		return s.Name
	}
	names := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		names = append(names, k)
	}
	sort.Strings(names)

	b := make([]byte, 0, len(s.Name)+16*len(names))
	b = append(b, s.Name...)
	for _, n := range names {
		b = append(b, ';')
		b = append(b, n...)
		b = append(b, '=')
		b = appendValue(b, s.Properties[n])
	}
	return string(b)
}

func appendValue(b []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(b, val...)
	case bool:
		if val {
			return append(b, '1')
		}
		return append(b, '0')
	case int:
		return appendInt(b, int64(val))
	case int32:
		return appendInt(b, int64(val))
	case int64:
		return appendInt(b, val)
	case float64:
		return appendInt(b, int64(val))
	default:
		return b
	}
}

func appendInt(b []byte, v int64) []byte {
	if v == 0 {
		return append(b, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	if neg {
		b = append(b, '-')
	}
	// reverse the digits appended.
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// Kind returns the block kind identifier of the State, e.g.
// "minecraft:grass_block".
func (s State) Kind() string { return s.Name }
