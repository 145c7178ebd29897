package biome

import "math"

// FixedPointScale is the integer scale the Biome-parameter JSON encodes its
// floating ranges at (so R-tree math stays in exact integer arithmetic
// rather than drifting on float comparisons).
const FixedPointScale = 10000

// ParameterRange is an inclusive [lo, hi] range along one climate axis, in
// fixed-point units (real value * FixedPointScale).
type ParameterRange [2]int64

// ToFixedPoint converts a real-valued climate sample into the fixed-point
// units a ClimatePoint axis and Box store, by the same 10000x scale the
// Biome-parameter JSON is pre-multiplied at.
func ToFixedPoint(v float64) int64 { return int64(math.Round(v * FixedPointScale)) }

// Contains reports whether v falls within the range, inclusive.
func (r ParameterRange) Contains(v int64) bool { return v >= r[0] && v <= r[1] }

// distance2 returns the squared clamped distance from v to the range: 0 if
// v is inside, otherwise the squared distance to the nearer edge.
func (r ParameterRange) distance2(v int64) int64 {
	var d int64
	if v < r[0] {
		d = r[0] - v
	} else if v > r[1] {
		d = v - r[1]
	}
	return d * d
}

// ClimatePoint is the 7-tuple climate coordinate the spec's biome index
// queries against: six axes used for nearest-neighbour distance
// (Temperature, Humidity, Continentalness, Erosion, Depth, Weirdness) plus
// Offset, which every vanilla biome-parameter entry carries but which does
// not participate in the R-tree distance itself.
type ClimatePoint struct {
	Temperature     int64
	Humidity        int64
	Continentalness int64
	Erosion         int64
	Depth           int64
	Weirdness       int64
	Offset          int64
}

// axes returns the six climate-distance axes in the fixed order every
// ParameterRange^6 biome-index entry stores them.
func (p ClimatePoint) axes() [6]int64 {
	return [6]int64{p.Temperature, p.Humidity, p.Continentalness, p.Erosion, p.Depth, p.Weirdness}
}

// Box is one biome-index entry's 6D axis-aligned parameter box.
type Box [6]ParameterRange

// Distance2 computes the squared distance from point to box, the
// per-axis sum of squared clamped-distances: for any point q and box B,
// distance2(q, B) = sum_i (max(0, B.lo[i]-q[i]) + max(0, q[i]-B.hi[i]))^2,
// which collapses to ParameterRange.distance2 per axis since only one of
// the two max() terms can be nonzero for a given axis.
func (b Box) Distance2(point ClimatePoint) int64 {
	axes := point.axes()
	var sum int64
	for i := 0; i < 6; i++ {
		sum += b[i].distance2(axes[i])
	}
	return sum
}
