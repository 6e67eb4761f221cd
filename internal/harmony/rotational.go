package harmony

import "math"

// Default per-gap tolerances for the evenly-spaced schemes.
const (
	// DefaultTriadicTolerance is the per-gap deviation from 120 degrees at
	// which a triadic palette scores 0.
	DefaultTriadicTolerance = 30.0
	// DefaultSquareTolerance is the per-gap deviation from 90 degrees at
	// which a square palette scores 0.
	DefaultSquareTolerance = 15.0
)

// RotationalDetail explains a triadic or square score.
type RotationalDetail struct {
	// StartHue is the first hue of the winning rotation.
	StartHue float64
}

// ScoreTriadic scores three hues against the ideal of three points 120
// degrees apart. Exactly three hues are required; any other cardinality
// scores 0.
func ScoreTriadic(hues []float64, tolerance float64) (float64, RotationalDetail) {
	return scoreEvenlySpaced(hues, 3, 120, tolerance)
}

// ScoreSquare scores four hues against the ideal of four points 90 degrees
// apart. Exactly four hues are required; any other cardinality scores 0.
func ScoreSquare(hues []float64, tolerance float64) (float64, RotationalDetail) {
	return scoreEvenlySpaced(hues, 4, 90, tolerance)
}

// scoreEvenlySpaced is the shared triadic/square search: for each rotation
// of the sorted hues, sum each circular gap's deviation from the ideal
// spacing, keep the rotation with the lowest total, and normalise by the
// worst acceptable total (count * tolerance). Ties go to the first rotation.
func scoreEvenlySpaced(hues []float64, count int, idealGap, tolerance float64) (float64, RotationalDetail) {
	if len(hues) != count {
		return 0.0, RotationalDetail{}
	}

	sorted := sortedHues(hues)

	bestError := math.Inf(1)
	bestStart := 0.0
	for offset := 0; offset < count; offset++ {
		rotated := rotate(sorted, offset)

		var totalError float64
		for i := 0; i < count; i++ {
			gap := CircularDiff(rotated[i], rotated[(i+1)%count])
			totalError += math.Abs(gap - idealGap)
		}

		if totalError < bestError {
			bestError = totalError
			bestStart = rotated[0]
		}
	}

	maxError := float64(count) * tolerance
	score := clamp01(1 - bestError/maxError)
	return score, RotationalDetail{StartHue: bestStart}
}
