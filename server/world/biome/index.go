package biome

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/dm-vev/adamant/server/world/rng"
)

// entry pairs one 6D parameter box with the biome it resolves to.
type entry struct {
	box   Box
	biome *Biome
}

// Index is the nearest-biome lookup built from a Biome-parameter JSON
// resource: a flat list of (Box, Biome) pairs searched by brute-force
// minimum distance. A real R-tree only pays off once the parameter list
// grows into the thousands of entries vanilla ships; the point-to-box
// distance formula is what callers actually depend on for correctness; a
// linear scan over the handful of hundred entries a biome-parameter JSON
// ever holds keeps the implementation honest about what matters.
type Index struct {
	entries []entry
}

// NewIndex builds an Index over the given (box, biome) pairs.
func NewIndex(pairs []struct {
	Box   Box
	Biome *Biome
}) *Index {
	idx := &Index{entries: make([]entry, len(pairs))}
	for i, p := range pairs {
		idx.entries[i] = entry{box: p.Box, biome: p.Biome}
	}
	return idx
}

// Add appends one (box, biome) pair to the index.
func (idx *Index) Add(box Box, b *Biome) {
	idx.entries = append(idx.entries, entry{box: box, biome: b})
}

// Len returns the number of registered parameter boxes.
func (idx *Index) Len() int { return len(idx.entries) }

// Nearest returns the biome whose box minimises Distance2 to point, and
// that minimum squared distance. Ties resolve to whichever entry was
// registered first, matching a stable linear scan.
func (idx *Index) Nearest(point ClimatePoint) (*Biome, int64) {
	var (
		best     *Biome
		bestDist int64
	)
	for i, e := range idx.entries {
		d := e.box.Distance2(point)
		if i == 0 || d < bestDist {
			best, bestDist = e.biome, d
		}
	}
	return best, bestDist
}

// gradientSeed derives the 64-bit seed the biome-gradient positional RNG is
// constructed from: the lower 64 bits of the SHA-256 digest of the
// world seed, encoded big-endian as an 8-byte value.
func gradientSeed(worldSeed int64) uint64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(worldSeed))
	sum := sha256.Sum256(b[:])
	return binary.BigEndian.Uint64(sum[24:32])
}

// fiddleAmplitude is the per-axis jitter full width (the RNG draw is mapped
// from [0,1) to [-0.45, 0.45], a half-width of 0.45) that blurs biome-box
// boundaries.
const fiddleAmplitude = 0.9

// FiddledDistance perturbs diff — the offset from a query point to one of
// the eight surrounding quart-grid corners — by an independent draw per
// axis from the positional RNG at (quartX, quartY, quartZ), forked from
// the world seed's gradient seed, and returns the squared length of the
// perturbed vector. Used once per corner in the generator's 8-corner
// biome vote to blur hard box boundaries into smooth biome transitions.
func FiddledDistance(worldSeed int64, quartX, quartY, quartZ int32, diff mgl64.Vec3) float64 {
	base := rng.New(gradientSeed(worldSeed)).ForkPositional()
	stream := base.At(quartX, quartY, quartZ)

	jitter := mgl64.Vec3{
		(stream.NextF64() - 0.5) * fiddleAmplitude,
		(stream.NextF64() - 0.5) * fiddleAmplitude,
		(stream.NextF64() - 0.5) * fiddleAmplitude,
	}
	fiddled := diff.Add(jitter)
	return fiddled.Dot(fiddled)
}
