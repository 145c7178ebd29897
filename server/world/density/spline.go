package density

import "math"

// Spline is the shared interface for Const and MultiPoint splines, so a
// spline node's control points can themselves be splines (nested splines
// are how the reference builds its terrain-shape/offset/factor curves).
type Spline interface {
	Apply(v float64) float64
	MinValue() float64
	MaxValue() float64
}

// ConstSpline always evaluates to the same value.
type ConstSpline struct{ V float64 }

func NewConstSpline(v float64) *ConstSpline { return &ConstSpline{V: v} }
func (s *ConstSpline) Apply(float64) float64 { return s.V }
func (s *ConstSpline) MinValue() float64     { return s.V }
func (s *ConstSpline) MaxValue() float64     { return s.V }

// MultiPoint is a piecewise cubic-Hermite spline over a named locationValue
// input: control points carry their own location, value and derivative, and
// intervals between points are interpolated with cubicHermite using those
// derivatives, falling back to linear extrapolation outside the first/last
// point.
type MultiPoint struct {
	Coordinate Function
	Locations  []float64
	Values     []Spline
	Derivatives []float64

	minVal, maxVal float64
}

// NewMultiPoint builds a spline from parallel points; len(locations) ==
// len(values) == len(derivatives) and locations must be strictly
// increasing, matching the reference's builder invariant.
func NewMultiPoint(coordinate Function, locations []float64, values []Spline, derivatives []float64) *MultiPoint {
	m := &MultiPoint{Coordinate: coordinate, Locations: locations, Values: values, Derivatives: derivatives}
	m.minVal, m.maxVal = m.computeBounds(coordinate.Min(), coordinate.Max())
	return m
}

// computeBounds widens the control points' own value range by the endpoint
// linear extensions (when the coordinate function's domain reaches outside
// [Locations[0], Locations[last]]) and by each segment's quarter-derivative
// extrema, mirroring the reference spline's min/max derivation. Using
// coordMin/coordMax directly as a one-sided "distance" would under-widen
// (or not widen at all) whenever the coordinate function is a Const sitting
// outside the control points, since then coordMax-coordMin is zero
// regardless of how far outside the range that constant lies.
func (m *MultiPoint) computeBounds(coordMin, coordMax float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)

	last := len(m.Locations) - 1
	if coordMin < m.Locations[0] {
		a := linearExtend(coordMin, m.Locations, m.Values[0].MinValue(), m.Derivatives[0], 0)
		b := linearExtend(coordMin, m.Locations, m.Values[0].MaxValue(), m.Derivatives[0], 0)
		lo, hi = math.Min(lo, math.Min(a, b)), math.Max(hi, math.Max(a, b))
	}
	if coordMax > m.Locations[last] {
		a := linearExtend(coordMax, m.Locations, m.Values[last].MinValue(), m.Derivatives[last], last)
		b := linearExtend(coordMax, m.Locations, m.Values[last].MaxValue(), m.Derivatives[last], last)
		lo, hi = math.Min(lo, math.Min(a, b)), math.Max(hi, math.Max(a, b))
	}

	for _, v := range m.Values {
		lo, hi = math.Min(lo, v.MinValue()), math.Max(hi, v.MaxValue())
	}

	for j := 0; j < last; j++ {
		dx := m.Locations[j+1] - m.Locations[j]
		n, o := m.Values[j].MinValue(), m.Values[j].MaxValue()
		p, q := m.Values[j+1].MinValue(), m.Values[j+1].MaxValue()
		r, s := m.Derivatives[j], m.Derivatives[j+1]
		if r == 0 && s == 0 {
			continue
		}
		t, u := r*dx, s*dx
		v, w := math.Min(n, p), math.Max(o, q)
		x, y := t-q+n, t-p+o
		z, aa := -u+q-n, -u+p-o
		ab, ac := math.Min(x, z), math.Max(y, aa)
		lo, hi = math.Min(lo, v+0.25*ab), math.Max(hi, w+0.25*ac)
	}
	return lo, hi
}

// linearExtend evaluates the linear extension of a control point's value
// past the spline's defined range, matching Apply's own extrapolation.
func linearExtend(x float64, locations []float64, value, derivative float64, idx int) float64 {
	if derivative == 0 {
		return value
	}
	return value + derivative*(x-locations[idx])
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Apply looks up the bracketing interval via binary search over Locations
// and applies cubic-Hermite interpolation inside it, or linear
// extrapolation using the nearest endpoint's derivative outside it.
func (m *MultiPoint) Apply(loc float64) float64 {
	n := len(m.Locations)
	idx := findIntervalIndex(m.Locations, loc)
	if idx < 0 {
		v0 := m.Values[0].Apply(loc)
		return v0 + m.Derivatives[0]*(loc-m.Locations[0])
	}
	if idx >= n-1 {
		last := n - 1
		v := m.Values[last].Apply(loc)
		return v + m.Derivatives[last]*(loc-m.Locations[last])
	}
	x0, x1 := m.Locations[idx], m.Locations[idx+1]
	t := (loc - x0) / (x1 - x0)
	y0 := m.Values[idx].Apply(loc)
	y1 := m.Values[idx+1].Apply(loc)
	d0 := m.Derivatives[idx]
	d1 := m.Derivatives[idx+1]
	return cubicHermite(t, y0, y1, d0*(x1-x0), d1*(x1-x0))
}

// findIntervalIndex returns the index i such that locations[i] <= loc <
// locations[i+1], -1 if loc is before the first point, or len-1 if loc is
// at or after the last point.
func findIntervalIndex(locations []float64, loc float64) int {
	if loc < locations[0] {
		return -1
	}
	lo, hi := 0, len(locations)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if locations[mid] <= loc {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// cubicHermite evaluates the standard Hermite basis at parameter t in
// [0,1] given endpoint values y0/y1 and scaled tangents m0/m1.
func cubicHermite(t, y0, y1, m0, m1 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*y0 + h10*m0 + h01*y1 + h11*m1
}

func (m *MultiPoint) MinValue() float64 { return m.minVal }
func (m *MultiPoint) MaxValue() float64 { return m.maxVal }

// SplineNode adapts a Spline into a Function by feeding it Coordinate's
// sampled value at each position.
type SplineNode struct {
	S Spline
}

func NewSplineNode(s Spline) *SplineNode { return &SplineNode{S: s} }

func (s *SplineNode) Sample(pos Pos, ctx *Context) float64 {
	if mp, ok := s.S.(*MultiPoint); ok {
		return mp.Apply(mp.Coordinate.Sample(pos, ctx))
	}
	return s.S.Apply(0)
}
func (s *SplineNode) FillArray(buf []float64, ctx *Context) { fillArrayDefault(s, buf, ctx) }
func (s *SplineNode) Min() float64                          { return s.S.MinValue() }
func (s *SplineNode) Max() float64                          { return s.S.MaxValue() }
