package rng

import (
	"crypto/md5"
	"encoding/binary"

	"github.com/segmentio/fasthash/fnv1a"
)

// ForkTag derives a new independent stream from a string tag by MD5-hashing
// the tag and XORing both 64-bit halves of the digest into the stream's
// state, matching the reference's string-tagged fork used to seed named
// noises (e.g. "minecraft:temperature") from a single world seed.
func (x *Xoroshiro) ForkTag(tag string) *Xoroshiro {
	sum := md5.Sum([]byte(tag))
	lo := binary.BigEndian.Uint64(sum[0:8])
	hi := binary.BigEndian.Uint64(sum[8:16])
	return &Xoroshiro{lo: x.lo ^ lo, hi: x.hi ^ hi}
}

// HashTag returns a fast, non-cryptographic 64-bit hash of tag. Nothing
// outside its test calls it: the density-function JSON resolver keys by
// xxhash and SetupNoise deduplicates holders by pointer. It does not match
// the reference byte-for-byte and is never part of an RNG stream.
func HashTag(tag string) uint64 {
	return fnv1a.HashString64(tag)
}
