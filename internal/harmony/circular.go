// Package harmony scores colour palettes against classical colour-harmony
// schemes. Scorers consume hue angles in degrees (callers need not
// pre-normalise) and return a score in [0,1] together with the geometric
// detail that explains it.
package harmony

import "math"

const (
	// antipodalEpsilon is the tolerance used to decide that two angles sit
	// exactly opposite each other, making their circular mean ambiguous.
	antipodalEpsilon = 1e-10

	// resultantEpsilon is the tolerance below which the resultant vector of
	// three or more angles is treated as zero (evenly spread input).
	resultantEpsilon = 1e-14

	// snapEpsilon keeps floating drift from reporting 360 where 0 is meant.
	snapEpsilon = 1e-9
)

// NormaliseDegrees maps an angle in degrees onto [0, 360). Values within a
// tiny epsilon of 360 snap to 0 so that drift never surfaces as 360.
func NormaliseDegrees(angle float64) float64 {
	normalised := math.Mod(angle, 360)
	if normalised < 0 {
		normalised += 360
	}
	if 360-normalised < snapEpsilon {
		return 0
	}
	return normalised
}

// CircularDiff returns the minimal angular distance between two angles in
// degrees. The result is always in [0, 180] and symmetric in its arguments.
func CircularDiff(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// CircularMean returns the angle minimising total CircularDiff to the input,
// i.e. the direction of the resultant unit-vector sum, normalised to [0,360).
//
// Degenerate inputs resolve deterministically rather than erroring:
//   - empty input returns 0
//   - two antipodal angles have no preferred direction; the arithmetic mean
//     is returned
//   - three or more angles whose unit vectors cancel (e.g. [0,120,240])
//     return the first input angle
func CircularMean(angles []float64) float64 {
	switch len(angles) {
	case 0:
		return 0.0
	case 1:
		return NormaliseDegrees(angles[0])
	case 2:
		return circularMeanPair(angles[0], angles[1])
	}

	var sinSum, cosSum float64
	for _, angle := range angles {
		radians := angle * math.Pi / 180
		sinSum += math.Sin(radians)
		cosSum += math.Cos(radians)
	}

	// A vanishing resultant means every direction is an equally good mean.
	// Fall back to the first angle so the output stays deterministic.
	if math.Abs(sinSum) < resultantEpsilon && math.Abs(cosSum) < resultantEpsilon {
		return NormaliseDegrees(angles[0])
	}

	return NormaliseDegrees(math.Atan2(sinSum, cosSum) * 180 / math.Pi)
}

// circularMeanPair walks the shorter arc from the first angle halfway toward
// the second. Antipodal pairs fall back to the arithmetic mean since both
// half-way points are equally valid.
func circularMeanPair(a, b float64) float64 {
	delta := math.Mod(b-a, 360)
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}

	if math.Abs(math.Abs(delta)-180) < antipodalEpsilon {
		return NormaliseDegrees((a + b) / 2)
	}

	return NormaliseDegrees(a + delta/2)
}
