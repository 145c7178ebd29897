package noise

// LegacyBlended reproduces the pre-1.18 "blended" terrain noise used by the
// OldBlendedNoise density-function node. Unlike the modern Octaves stack,
// it builds three parallel octave sets — min-limit, max-limit and main —
// with hard-coded ranges of -15..=0, -15..=0 and -7..=0 respectively (16,
// 16 and 8 octaves), and blends between the min/max limit noises using a
// weight derived from the main noise.
type LegacyBlended struct {
	minLimit []*Improved
	maxLimit []*Improved
	main     []*Improved

	xzScale, yScale     float64
	xzFactor, yFactor   float64
	smearScaleMultiplier float64
}

// NewLegacyBlended builds the three octave sets from r in the documented
// order (min-limit first, then max-limit, then main), each drawing a full
// Improved per octave (no zero-amplitude skipping exists for this legacy
// path: every one of the 16+16+8 octaves is always constructed).
func NewLegacyBlended(r skippable, xzScale, yScale, xzFactor, yFactor, smear float64) *LegacyBlended {
	l := &LegacyBlended{
		xzScale: xzScale, yScale: yScale,
		xzFactor: xzFactor, yFactor: yFactor,
		smearScaleMultiplier: smear,
	}
	l.minLimit = make([]*Improved, 16)
	for i := range l.minLimit {
		l.minLimit[i] = NewImproved(r)
	}
	l.maxLimit = make([]*Improved, 16)
	for i := range l.maxLimit {
		l.maxLimit[i] = NewImproved(r)
	}
	l.main = make([]*Improved, 8)
	for i := range l.main {
		l.main[i] = NewImproved(r)
	}
	return l
}

// Sample evaluates the blended noise at (x, y, z), matching the documented
// 8-main-octave-then-16-min/max-octave evaluation order.
func (l *LegacyBlended) Sample(x, y, z float64) float64 {
	xzScale := 684.412 * l.xzScale
	yScaleAbs := 684.412 * l.yScale
	xzStep := xzScale / l.xzFactor
	yStep := yScaleAbs / l.yFactor

	var mainValue, mainAmp float64
	amp := 1.0
	for i := 0; i < len(l.main); i++ {
		fx := wrap(x*xzScale*amp) / amp
		fy := wrap(y*yScaleAbs*amp) / amp
		fz := wrap(z*xzScale*amp) / amp
		mainValue += l.main[i].Sample(fx, fy, fz) / amp
		mainAmp += 1 / amp
		amp /= 2
	}
	blend := (mainValue/mainAmp + 1) / 2

	var minValue, maxValue, limitAmp float64
	amp = 1.0
	for i := 0; i < len(l.minLimit); i++ {
		fx := wrap(x*xzStep*amp) / amp
		fy := wrap(y*yStep*amp) / amp
		fz := wrap(z*xzStep*amp) / amp
		if blend < 1 {
			minValue += l.minLimit[i].Sample(fx, fy, fz) / amp
		}
		if blend > 0 {
			maxValue += l.maxLimit[i].Sample(fx, fy, fz) / amp
		}
		limitAmp += 1 / amp
		amp /= 2
	}

	if blend <= 0 {
		return minValue / limitAmp / 2
	}
	if blend >= 1 {
		return maxValue / limitAmp / 2
	}
	return (minValue + (maxValue-minValue)*blend) / limitAmp / 2
}

func wrap(v float64) float64 {
	const bound = 3.3554432e7 // 2^25
	return v - float64(int64(v/bound+0.5))*bound
}
