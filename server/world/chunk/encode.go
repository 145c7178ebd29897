package chunk

import (
	"bytes"
	"fmt"

	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// EncodeSection writes one section's wire body into w, following the
// "chunk-data packet body" format: a 16-bit non-empty block count followed
// by the block paletted container then the biome paletted container.
func EncodeSection(w *protocol.Writer, s *ChunkSection) {
	count := int16(s.NonEmptyBlockCount())
	w.Int16(&count)
	EncodePalettedContainer(w, s.BlockContainer())
	EncodePalettedContainer(w, s.BiomeContainer())
}

// EncodePalettedContainer writes a single paletted container: a one-byte
// bits-per-entry, a palette body shaped by the container's current variant
// (nothing for single/direct beyond the one implicit value or the local-ID
// space itself, a varint-prefixed list of GlobalIDs for hash-map), and a
// varint-prefixed array of the backing PackedArray's 64-bit words.
func EncodePalettedContainer(w *protocol.Writer, c *PalettedContainer) {
	bits := uint8(c.BitsPerEntry())
	w.Uint8(&bits)

	switch c.Variant() {
	case "single":
		id := uint32(c.Get(0))
		w.Varuint32(&id)
	case "hash_map":
		entries := c.PaletteEntries()
		n := uint32(len(entries))
		w.Varuint32(&n)
		for i := range entries {
			w.Varuint32(&entries[i])
		}
	case "direct":
		// No palette body: local IDs are GlobalIDs directly.
	}

	var words []uint64
	if arr := c.Array(); arr != nil {
		words = arr.Words()
	}
	n := uint32(len(words))
	w.Varuint32(&n)
	for i := range words {
		v := int64(words[i])
		w.Varint64(&v)
	}
}

// EncodeColumn writes every section of col, bottom to top, into a single
// buffer using EncodeSection, the shape a network chunk-data packet body
// is assembled from.
func EncodeColumn(col *ChunkColumn) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := protocol.NewWriter(buf, 0)
	for i := 0; i < col.SectionCount(); i++ {
		sec := col.SectionAt(i)
		if sec == nil {
			return nil, fmt.Errorf("chunk: encode column %v: missing section %d", col.Pos, i)
		}
		EncodeSection(w, sec)
	}
	return buf.Bytes(), nil
}
