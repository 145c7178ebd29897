package density

import (
	"github.com/dm-vev/adamant/server/world/noise"
	"github.com/dm-vev/adamant/server/world/rng"
)

// NoiseHolder is a lazy reference to a named multi-octave noise: it carries
// the noise's tag, amplitudes and first octave, but holds no concrete
// RNG-seeded instance until SetupNoise runs once over the whole graph.
// Every leaf noise node holds a *NoiseHolder rather than a *noise.Octaves
// directly so that identical tags can be deduplicated during setup.
type NoiseHolder struct {
	Tag         string
	FirstOctave int
	Amplitudes  []float64

	instance *noise.Octaves
}

// NewNoiseHolder creates an unresolved noise reference.
func NewNoiseHolder(tag string, firstOctave int, amplitudes []float64) *NoiseHolder {
	return &NoiseHolder{Tag: tag, FirstOctave: firstOctave, Amplitudes: amplitudes}
}

// Resolve seeds the holder's concrete octave stack from r, by tag, and is a
// no-op if already resolved (so that two holders sharing a tag only pay for
// construction once when deduplicated by the setup pass).
func (h *NoiseHolder) Resolve(r *rng.Xoroshiro) {
	if h.instance != nil {
		return
	}
	h.instance = noise.NewOctaves(r, h.FirstOctave, h.Amplitudes)
}

// Sample delegates to the resolved octave stack. Calling Sample before
// Resolve is a programmer error (the holder was never reached by
// SetupNoise) and panics, matching the reference's "noise not yet
// initialised" invariant.
func (h *NoiseHolder) Sample(x, y, z float64) float64 {
	if h.instance == nil {
		panic("density: NoiseHolder " + h.Tag + " sampled before SetupNoise")
	}
	return h.instance.Sample(x, y, z)
}

func (h *NoiseHolder) maxValue() float64 {
	if h.instance == nil {
		return 2
	}
	return h.instance.MaxValue()
}

// Noise samples holder at (x*xzScale, y*yScale, z*xzScale).
type Noise struct {
	Holder           *NoiseHolder
	XZScale, YScale  float64
}

func NewNoise(h *NoiseHolder, xzScale, yScale float64) *Noise {
	return &Noise{Holder: h, XZScale: xzScale, YScale: yScale}
}

func (n *Noise) Sample(pos Pos, _ *Context) float64 {
	return n.Holder.Sample(float64(pos.X)*n.XZScale, float64(pos.Y)*n.YScale, float64(pos.Z)*n.XZScale)
}
func (n *Noise) FillArray(buf []float64, ctx *Context) { fillArrayDefault(n, buf, ctx) }
func (n *Noise) Min() float64                          { return -n.Holder.maxValue() }
func (n *Noise) Max() float64                          { return n.Holder.maxValue() }

// ShiftA samples holder at (0.25x, 0, 0.25z), scaled by 4.
type ShiftA struct{ Holder *NoiseHolder }

func NewShiftA(h *NoiseHolder) *ShiftA { return &ShiftA{Holder: h} }
func (s *ShiftA) Sample(pos Pos, _ *Context) float64 {
	return s.Holder.Sample(float64(pos.X)*0.25, 0, float64(pos.Z)*0.25) * 4
}
func (s *ShiftA) FillArray(buf []float64, ctx *Context) { fillArrayDefault(s, buf, ctx) }
func (s *ShiftA) Min() float64                          { return -s.Holder.maxValue() * 4 }
func (s *ShiftA) Max() float64                          { return s.Holder.maxValue() * 4 }

// ShiftB samples holder at (0.25z, 0.25x, 0), scaled by 4.
type ShiftB struct{ Holder *NoiseHolder }

func NewShiftB(h *NoiseHolder) *ShiftB { return &ShiftB{Holder: h} }
func (s *ShiftB) Sample(pos Pos, _ *Context) float64 {
	return s.Holder.Sample(float64(pos.Z)*0.25, float64(pos.X)*0.25, 0) * 4
}
func (s *ShiftB) FillArray(buf []float64, ctx *Context) { fillArrayDefault(s, buf, ctx) }
func (s *ShiftB) Min() float64                          { return -s.Holder.maxValue() * 4 }
func (s *ShiftB) Max() float64                          { return s.Holder.maxValue() * 4 }

// ShiftedNoise samples Holder at a position perturbed by three independent
// shift functions, each itself a density function (typically ShiftA/B).
type ShiftedNoise struct {
	Holder          *NoiseHolder
	ShiftX, ShiftY, ShiftZ Function
	XZScale, YScale float64
}

func NewShiftedNoise(h *NoiseHolder, sx, sy, sz Function, xz, y float64) *ShiftedNoise {
	return &ShiftedNoise{Holder: h, ShiftX: sx, ShiftY: sy, ShiftZ: sz, XZScale: xz, YScale: y}
}

func (s *ShiftedNoise) Sample(pos Pos, ctx *Context) float64 {
	x := float64(pos.X)*s.XZScale + s.ShiftX.Sample(pos, ctx)
	y := float64(pos.Y)*s.YScale + s.ShiftY.Sample(pos, ctx)
	z := float64(pos.Z)*s.XZScale + s.ShiftZ.Sample(pos, ctx)
	return s.Holder.Sample(x, y, z)
}
func (s *ShiftedNoise) FillArray(buf []float64, ctx *Context) { fillArrayDefault(s, buf, ctx) }
func (s *ShiftedNoise) Min() float64                          { return -s.Holder.maxValue() }
func (s *ShiftedNoise) Max() float64                          { return s.Holder.maxValue() }

// OldBlendedNoise wraps the legacy blended terrain noise so it composes
// like any other density function. Its noise is fixed when the node is
// constructed; SetupNoise does not collect, seed or rebuild it.
type OldBlendedNoise struct {
	blended *noise.LegacyBlended
}

// NewOldBlendedNoise constructs the node from the Xoroshiro stream r the
// caller supplies, with the documented parameters.
func NewOldBlendedNoise(r *rng.Xoroshiro, xzScale, yScale, xzFactor, yFactor, smear float64) *OldBlendedNoise {
	return &OldBlendedNoise{blended: noise.NewLegacyBlended(r, xzScale, yScale, xzFactor, yFactor, smear)}
}

func (o *OldBlendedNoise) Sample(pos Pos, _ *Context) float64 {
	return o.blended.Sample(float64(pos.X), float64(pos.Y), float64(pos.Z))
}
func (o *OldBlendedNoise) FillArray(buf []float64, ctx *Context) { fillArrayDefault(o, buf, ctx) }
func (o *OldBlendedNoise) Min() float64                          { return -1 }
func (o *OldBlendedNoise) Max() float64                          { return 1 }

// Rarity selects the piecewise scale function WeirdScaledSampler applies to
// its input value.
type Rarity int

const (
	RarityType1 Rarity = iota
	RarityType2
)

func rarityScale(r Rarity, v float64) float64 {
	switch r {
	case RarityType1:
		switch {
		case v < -0.5:
			return 0.75
		case v < 0:
			return 1
		case v < 0.5:
			return 1.5
		default:
			return 2
		}
	default: // RarityType2
		switch {
		case v < -0.75:
			return 0.5
		case v < -0.5:
			return 0.75
		case v < 0.5:
			return 1
		case v < 0.75:
			return 2
		default:
			return 3
		}
	}
}

// WeirdScaledSampler picks a rarity-to-scale factor from Input's value,
// then returns scale * |Noise.Sample(pos / scale)|.
type WeirdScaledSampler struct {
	Input  Function
	Holder *NoiseHolder
	RarityKind Rarity
}

func NewWeirdScaledSampler(input Function, h *NoiseHolder, rarity Rarity) *WeirdScaledSampler {
	return &WeirdScaledSampler{Input: input, Holder: h, RarityKind: rarity}
}

func (w *WeirdScaledSampler) Sample(pos Pos, ctx *Context) float64 {
	v := w.Input.Sample(pos, ctx)
	scale := rarityScale(w.RarityKind, v)
	s := w.Holder.Sample(float64(pos.X)/scale, float64(pos.Y)/scale, float64(pos.Z)/scale)
	if s < 0 {
		s = -s
	}
	return scale * s
}
func (w *WeirdScaledSampler) FillArray(buf []float64, ctx *Context) { fillArrayDefault(w, buf, ctx) }
func (w *WeirdScaledSampler) Min() float64                          { return 0 }
func (w *WeirdScaledSampler) Max() float64                          { return 3 * w.Holder.maxValue() }
