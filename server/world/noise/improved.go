// Package noise implements the improved (Perlin-style) gradient noise
// primitive and the multi-octave stacks built on top of it, as described in
// the world generator's noise layer. Every stack is seeded from a
// server/world/rng stream so that, given the same seed and draw order, the
// sampled fields match the reference implementation.
package noise

import "math"

// gradients is the standard 16-vector Ken Perlin gradient set used by
// Improved. Index selection comes from the permutation table, masked to the
// low 4 bits.
var gradients = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

// randSource is the minimal interface Improved needs from an RNG stream:
// enough to shuffle the permutation table and draw the three lattice
// offsets.
type randSource interface {
	NextU32(bound uint32) uint32
	NextF64() float64
}

// Improved is one octave of gradient noise on a cubic lattice.
type Improved struct {
	perm       [256]byte
	xo, yo, zo float64
}

// NewImproved first draws three random offsets in [0, 256) that are added
// to every sampled coordinate before flooring, then builds a permutation
// table from r: fills it 0..255 and Fisher-Yates shuffles it using the
// stream. This consumes exactly 3 float draws plus 256 bounded draws (for
// the shuffle) from r; callers that need an exact, fixed per-octave draw
// count (e.g. to preserve compatibility when an octave's amplitude is zero)
// skip SkipOctaveDraws values instead of constructing an Improved at all.
func NewImproved(r randSource) *Improved {
	n := &Improved{
		xo: r.NextF64() * 256,
		yo: r.NextF64() * 256,
		zo: r.NextF64() * 256,
	}
	for i := range n.perm {
		n.perm[i] = byte(i)
	}
	for i := 0; i < 256; i++ {
		j := int(r.NextU32(uint32(256 - i)))
		n.perm[i], n.perm[i+j] = n.perm[i+j], n.perm[i]
	}
	return n
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func grad(hash byte, x, y, z float64) float64 {
	g := gradients[hash&15]
	return g[0]*x + g[1]*y + g[2]*z
}

// Sample evaluates the noise field at (x, y, z).
func (n *Improved) Sample(x, y, z float64) float64 {
	return n.SampleYClamped(x, y, z, 0, 0)
}

// SampleYClamped evaluates the noise field the way the generator's Y-strata
// sampling needs: when yScale > 0, the fractional Y component is snapped to
// a discrete slice of size yScale, with yMax capping how far the floor of Y
// may be pulled down. Passing yScale == 0 samples Y continuously.
func (n *Improved) SampleYClamped(x, y, z, yScale, yMax float64) float64 {
	x += n.xo
	y += n.yo
	z += n.zo

	ix := math.Floor(x)
	iy := math.Floor(y)
	iz := math.Floor(z)

	fx := x - ix
	fy := y - iy
	fz := z - iz

	var yf float64
	iy2 := iy
	if yScale != 0 {
		clampedY := yMax
		if fy < clampedY {
			clampedY = fy
		}
		if clampedY < 0 {
			clampedY = 0
		}
		yf = math.Floor(clampedY/yScale+1.0e-7) * yScale
	} else {
		yf = fy
	}
	_ = iy2

	X := int(ix) & 255
	Y := int(iy) & 255
	Z := int(iz) & 255

	u := fade(fx)
	v := fade(yf)
	w := fade(fz)

	a := int(n.perm[X]) + Y
	aa := int(n.perm[a&255]) + Z
	ab := int(n.perm[(a+1)&255]) + Z
	b := int(n.perm[(X+1)&255]) + Y
	ba := int(n.perm[b&255]) + Z
	bb := int(n.perm[(b+1)&255]) + Z

	return lerp(w,
		lerp(v,
			lerp(u, grad(n.perm[aa&255], fx, yf, fz), grad(n.perm[ba&255], fx-1, yf, fz)),
			lerp(u, grad(n.perm[ab&255], fx, yf-1, fz), grad(n.perm[bb&255], fx-1, yf-1, fz)),
		),
		lerp(v,
			lerp(u, grad(n.perm[(aa+1)&255], fx, yf, fz-1), grad(n.perm[(ba+1)&255], fx-1, yf, fz-1)),
			lerp(u, grad(n.perm[(ab+1)&255], fx, yf-1, fz-1), grad(n.perm[(bb+1)&255], fx-1, yf-1, fz-1)),
		),
	)
}

// SkipOctaveDraws is the fixed RNG cost an octave advances by even when its
// amplitude is zero and no Improved is constructed for it: 256 bounded
// draws for the (skipped) shuffle, 3 float draws for the (skipped) lattice
// offsets, and 3 extra draws the reference's table-driven construction
// performs for bookkeeping, for a documented total of 262.
const SkipOctaveDraws = 262
