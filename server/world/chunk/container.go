package chunk

// PalettedContainer composes a LocalPalette with a PackedArray to store one
// densely-packed 3D grid of values (blocks at full resolution, biomes at
// quarter resolution) as compact local IDs, translating to and from the
// owning GlobalPalette's wider GlobalIDs on every access.
type PalettedContainer struct {
	count int // total number of cells (16^3 for blocks, 4^3 for biomes)

	palette *LocalPalette
	array   *PackedArray // nil while palette is single-valued
}

// NewPalettedContainer creates a container for count cells, all initially
// reading initial, using minBits/directThreshold/maxBits to size the
// owning domain's LocalPalette escalation thresholds (4/9/15 for blocks,
// 1/4/6 for biomes per spec.md's notation).
func NewPalettedContainer(count int, initial uint32, minBits, directThreshold, maxBits int) *PalettedContainer {
	return &PalettedContainer{
		count:   count,
		palette: NewLocalPalette(initial, minBits, directThreshold, maxBits),
	}
}

// Get returns the GlobalID stored at the given cell index.
func (c *PalettedContainer) Get(index int) uint32 {
	if c.array == nil {
		return c.palette.ByLocalID(0)
	}
	return c.palette.ByLocalID(c.array.Get(index))
}

// Set stores global at the given cell index, growing the local palette (and
// resizing the backing array) as many times as needed until global fits.
func (c *PalettedContainer) Set(index int, global uint32) {
	if id, ok := c.palette.IDOf(global); ok {
		c.writeLocal(index, id)
		return
	}
	res := c.palette.Put(global)
	for !res.stored {
		c.resizeTo(res.newBits)
		res = c.palette.Put(global)
	}
	c.writeLocal(index, res.localID)
}

func (c *PalettedContainer) writeLocal(index int, id uint32) {
	if c.palette.Variant() == "single" {
		return
	}
	c.array.Set(index, id)
}

// resizeTo grows the container to hold newBits-wide local IDs, snapshotting
// every currently-stored GlobalID before escalating the palette (escalation
// to Direct discards the hash-map's entries table, so the mapping must be
// captured first) and rebuilding the packed array against the post-escalate
// palette.
func (c *PalettedContainer) resizeTo(newBits int) {
	snapshot := make([]uint32, c.palette.Len())
	for i := range snapshot {
		snapshot[i] = c.palette.ByLocalID(uint32(i))
	}
	wasSingle := c.palette.Variant() == "single"
	oldArray := c.array

	c.palette.Escalate(newBits)

	if c.palette.Variant() == "direct" {
		newArray := NewPackedArray(newBits, c.count)
		for i := 0; i < c.count; i++ {
			var oldLocal uint32
			if oldArray != nil {
				oldLocal = oldArray.Get(i)
			}
			newArray.Set(i, snapshot[oldLocal])
		}
		c.array = newArray
		return
	}

	// Still hash-map: entries were preserved by Escalate, only the bit
	// width grew, so every existing local ID remains valid as-is.
	if wasSingle {
		c.array = NewPackedArray(newBits, c.count)
		return
	}
	c.array = oldArray.Resize(newBits)
}

// NonEmptyCount reports how many cells do not read back as the value
// emptyGlobal (air for blocks); it is computed by a linear scan
// rather than tracked incrementally, since ChunkSection is the one that
// maintains the running count as blocks are placed.
func (c *PalettedContainer) NonEmptyCount(emptyGlobal uint32) int {
	n := 0
	for i := 0; i < c.count; i++ {
		if c.Get(i) != emptyGlobal {
			n++
		}
	}
	return n
}

// Variant exposes the current LocalPalette strategy, used by the network
// encoder to decide the wire shape (single ID / varint-prefixed list /
// empty-for-direct).
func (c *PalettedContainer) Variant() string { return c.palette.Variant() }

// BitsPerEntry returns the current packed-array width (0 for single-valued).
func (c *PalettedContainer) BitsPerEntry() int { return c.palette.Bits() }

// PaletteEntries returns every GlobalID currently registered in the
// container's local palette, in local-ID order; used by the hash-map wire
// encoding, which writes a varint-prefixed list of GlobalIDs.
func (c *PalettedContainer) PaletteEntries() []uint32 {
	n := c.palette.Len()
	out := make([]uint32, n)
	for i := range out {
		out[i] = c.palette.ByLocalID(uint32(i))
	}
	return out
}

// Array returns the backing PackedArray, nil when the container is
// single-valued.
func (c *PalettedContainer) Array() *PackedArray { return c.array }

// Count returns the number of cells the container holds.
func (c *PalettedContainer) Count() int { return c.count }
