// Command inspect_palette loads a block palette JSON resource (and
// optionally a biome palette + parameter index pair) and prints a summary:
// entry counts, and every state or biome matching a name substring filter.
// It also accepts an optional legacy block_states.nbt resource (the format
// the original devtools version of this tool read) and cross-checks it
// against the JSON palette, reporting any legacy name the JSON resource
// doesn't carry, a fallback sanity check for exports regenerated from an
// older block_states.nbt.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dm-vev/adamant/server/block"
	"github.com/dm-vev/adamant/server/world/biome"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// legacyBlockState mirrors the field layout of a block_states.nbt entry.
type legacyBlockState struct {
	Name       string         `nbt:"name"`
	Properties map[string]any `nbt:"states"`
	Version    int32          `nbt:"version"`
}

// crossCheckLegacyNBT decodes a legacy block_states.nbt resource and
// reports every name it carries that pal doesn't, one per line, to stderr.
func crossCheckLegacyNBT(path string, pal *block.GlobalPalette[block.State]) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read legacy nbt: %w", err)
	}
	known := make(map[string]bool, pal.Len())
	for id := block.GlobalID(0); id < block.GlobalID(pal.Len()); id++ {
		known[pal.ByID(id).Name] = true
	}

	dec := nbt.NewDecoder(bytes.NewBuffer(data))
	total, missing := 0, 0
	for {
		var s legacyBlockState
		if err := dec.Decode(&s); err != nil {
			if err == io.EOF || err.Error() == "EOF" {
				break
			}
			return fmt.Errorf("decode legacy nbt: %w", err)
		}
		total++
		if !known[s.Name] {
			missing++
			fmt.Fprintf(os.Stderr, "legacy-only: %s %+v (version %d)\n", s.Name, s.Properties, s.Version)
		}
	}
	fmt.Printf("legacy nbt: %d entries, %d missing from the JSON palette\n", total, missing)
	return nil
}

func main() {
	blockPath := flag.String("blocks", "server/world/block_states.json", "path to the block palette JSON resource")
	legacyNBTPath := flag.String("legacy-nbt", "", "path to a legacy block_states.nbt resource to cross-check against -blocks (optional)")
	biomePath := flag.String("biomes", "", "path to the biome palette JSON resource (optional)")
	paramPath := flag.String("params", "", "path to the biome parameter index JSON resource (optional, requires -biomes)")
	filter := flag.String("filter", "", "only print entries whose name contains this substring")
	flag.Parse()

	data, err := os.ReadFile(*blockPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read block palette:", err)
		os.Exit(1)
	}
	pal, err := block.LoadPaletteJSON(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load block palette:", err)
		os.Exit(1)
	}
	fmt.Printf("blocks: %d states\n", pal.Len())
	for id := block.GlobalID(0); id < block.GlobalID(pal.Len()); id++ {
		st := pal.ByID(id)
		if *filter != "" && !strings.Contains(st.Name, *filter) {
			continue
		}
		fmt.Printf("  %5d %s %+v\n", id, st.Name, st.Properties)
	}

	if *legacyNBTPath != "" {
		if err := crossCheckLegacyNBT(*legacyNBTPath, pal); err != nil {
			fmt.Fprintln(os.Stderr, "cross-check legacy nbt:", err)
			os.Exit(1)
		}
	}

	if *biomePath == "" {
		return
	}
	bdata, err := os.ReadFile(*biomePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read biome palette:", err)
		os.Exit(1)
	}
	bpal, err := biome.LoadBiomeJSON(bdata)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load biome palette:", err)
		os.Exit(1)
	}
	fmt.Printf("biomes: %d entries\n", bpal.Len())
	for id := block.GlobalID(0); id < block.GlobalID(bpal.Len()); id++ {
		b := bpal.ByID(id)
		if *filter != "" && !strings.Contains(b.Name, *filter) {
			continue
		}
		fmt.Printf("  %5d %s temp=%.3f downfall=%.3f\n", id, b.Name, b.Climate.Temperature, b.Climate.Downfall)
	}

	if *paramPath == "" {
		return
	}
	pdata, err := os.ReadFile(*paramPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read biome parameter index:", err)
		os.Exit(1)
	}
	idx, err := biome.LoadIndexJSON(pdata, bpal)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load biome parameter index:", err)
		os.Exit(1)
	}
	fmt.Printf("biome parameter index: %d boxes\n", idx.Len())
}
