package noise

// skippable is the subset of *rng.Xoroshiro (or any equivalent stream) that
// Octaves needs to both construct real octaves and skip zero-amplitude
// ones without importing the rng package directly (avoiding an import
// cycle with density, which imports both).
type skippable interface {
	randSource
	Skip(n int)
}

// Octaves is the modern multi-octave noise stack: n gradient-noise layers
// at doubling lacunarities starting at 2^firstOctave, each weighted by
// amplitudes[i] scaled by a constant edge factor so the stack's absolute
// value never exceeds MaxValue.
type Octaves struct {
	octaves     []*Improved // nil entry = zero-amplitude octave, skipped
	amplitudes  []float64
	firstOctave int
	maxValue    float64
}

// NewOctaves builds a modern octave stack. Every octave, including
// zero-amplitude ones, consumes its documented share of r's draws in
// lockstep with the reference: a non-zero octave constructs a full
// Improved (256 shuffle draws + 3 offsets), a zero one instead calls
// r.Skip(SkipOctaveDraws) to preserve the exact draw count other
// subsystems depend on via later reads of the same stream.
func NewOctaves(r skippable, firstOctave int, amplitudes []float64) *Octaves {
	o := &Octaves{
		octaves:     make([]*Improved, len(amplitudes)),
		amplitudes:  amplitudes,
		firstOctave: firstOctave,
	}
	for i, a := range amplitudes {
		if a == 0 {
			r.Skip(SkipOctaveDraws)
			continue
		}
		o.octaves[i] = NewImproved(r)
	}

	edge := 0.0
	for _, a := range amplitudes {
		if a != 0 {
			edge += a
		}
	}
	n := len(amplitudes)
	denom := 1.0
	if n > 1 {
		denom = float64(int(1)<<(n-1)) - 1
	}
	if denom == 0 {
		denom = 1
	}
	o.maxValue = edge / denom * 2
	return o
}

// MaxValue returns the statically-derived upper bound |sample| can reach.
func (o *Octaves) MaxValue() float64 { return o.maxValue }

// Sample evaluates the stack at (x, y, z).
func (o *Octaves) Sample(x, y, z float64) float64 {
	return o.sample(x, y, z, 0, 0)
}

// SampleYClamped evaluates the stack the way stratified terrain noise
// needs, snapping Y within each octave to a discrete slice per
// Improved.SampleYClamped.
func (o *Octaves) SampleYClamped(x, y, z, yScale, yMax float64) float64 {
	return o.sample(x, y, z, yScale, yMax)
}

func (o *Octaves) sample(x, y, z, yScale, yMax float64) float64 {
	var value float64
	n := len(o.octaves)
	denom := 1.0
	if n > 1 {
		denom = float64(int(1)<<(n-1)) - 1
	}
	for i, oct := range o.octaves {
		if oct == nil {
			continue
		}
		lacunarity := pow2(o.firstOctave + i)
		persistence := o.amplitudes[i] / denom
		fx := x * lacunarity
		fy := y * lacunarity
		fz := z * lacunarity
		s := oct.SampleYClamped(fx, fy, fz, yScale*lacunarity, yMax*lacunarity)
		value += persistence * s
	}
	return value
}

func pow2(exp int) float64 {
	if exp >= 0 {
		return float64(int64(1) << uint(exp))
	}
	v := 1.0
	for i := 0; i < -exp; i++ {
		v /= 2
	}
	return v
}
