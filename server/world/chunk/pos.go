package chunk

import "github.com/dm-vev/adamant/server/world/rng"

// Pos identifies a chunk column by its horizontal coordinate pair, in units
// of 16-block chunks (not blocks).
type Pos [2]int32

// X returns the chunk's X coordinate.
func (p Pos) X() int32 { return p[0] }

// Z returns the chunk's Z coordinate.
func (p Pos) Z() int32 { return p[1] }

// Pack encodes the position as a single i64, 26 bits per axis, matching
// the reference's ChunkPos.asLong() packing.
func (p Pos) Pack() int64 {
	const mask = (int64(1) << 26) - 1
	return (int64(p[0]) & mask) | ((int64(p[1]) & mask) << 26)
}

// Seed returns the positional-RNG hash of the chunk's origin block
// position (x*16, 0, z*16), the seed used by every per-chunk positional
// fork (biome gradient, surface rule gradients, ...).
func (p Pos) Seed() int64 {
	return rng.VecSeed(p[0]*16, 0, p[1]*16)
}

// OriginBlockX returns the X coordinate of the chunk's lowest-X block
// column.
func (p Pos) OriginBlockX() int { return int(p[0]) * 16 }

// OriginBlockZ returns the Z coordinate of the chunk's lowest-Z block
// column.
func (p Pos) OriginBlockZ() int { return int(p[1]) * 16 }
