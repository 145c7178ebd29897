package block

import "testing"

// TestStateKeyIgnoresPropertyOrder checks that two States built with the
// same properties in different insertion order produce the same key, since
// key() is what GlobalPalette relies on for structural equality.
func TestStateKeyIgnoresPropertyOrder(t *testing.T) {
	a := State{Name: "minecraft:lever", Properties: map[string]any{"facing": "north", "powered": false}}
	b := State{Name: "minecraft:lever", Properties: map[string]any{"powered": false, "facing": "north"}}
	if a.key() != b.key() {
		t.Fatalf("key() differs by property insertion order: %q vs %q", a.key(), b.key())
	}
}

// TestStateKeyDistinguishesValues checks that differing property values
// produce differing keys.
func TestStateKeyDistinguishesValues(t *testing.T) {
	a := State{Name: "minecraft:lever", Properties: map[string]any{"facing": "north"}}
	b := State{Name: "minecraft:lever", Properties: map[string]any{"facing": "south"}}
	if a.key() == b.key() {
		t.Fatalf("key() should differ for facing=north vs facing=south, got %q", a.key())
	}
}

// TestStateKeyNoProperties checks that a property-less state's key is just
// its name, the fast path key() takes.
func TestStateKeyNoProperties(t *testing.T) {
	s := State{Name: "minecraft:stone"}
	if s.key() != "minecraft:stone" {
		t.Fatalf("key() = %q, want %q", s.key(), "minecraft:stone")
	}
}

// TestStateKindReturnsName checks the Kind accessor.
func TestStateKindReturnsName(t *testing.T) {
	s := State{Name: "minecraft:dirt"}
	if s.Kind() != "minecraft:dirt" {
		t.Fatalf("Kind() = %q, want %q", s.Kind(), "minecraft:dirt")
	}
}

// TestAppendValueTypes checks every scalar property type appendValue
// supports renders to a distinct, stable encoding.
func TestAppendValueTypes(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want string
	}{
		{"string", "north", "north"},
		{"bool true", true, "1"},
		{"bool false", false, "0"},
		{"int", int(7), "7"},
		{"int32", int32(-3), "-3"},
		{"int64", int64(42), "42"},
		{"float64", float64(5), "5"},
		{"zero", int(0), "0"},
	}
	for _, c := range cases {
		got := string(appendValue(nil, c.v))
		if got != c.want {
			t.Errorf("appendValue(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}
