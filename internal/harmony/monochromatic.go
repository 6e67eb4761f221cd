package harmony

// DefaultMonochromaticTolerance is the hue range (degrees) at which a
// palette stops reading as monochromatic at all.
const DefaultMonochromaticTolerance = 120.0

// MonochromaticDetail explains a monochromatic score.
type MonochromaticDetail struct {
	// MeanHue is the circular mean of the palette's hues.
	MeanHue float64
}

// ScoreMonochromatic scores how tightly a palette's hues sit on a single
// hue. The error is the wrap-adjusted circular range of the hues; the score
// falls linearly to 0 as the range approaches tolerance. Accepts any
// non-empty list; an empty palette scores 0.
func ScoreMonochromatic(hues []float64, tolerance float64) (float64, MonochromaticDetail) {
	if len(hues) == 0 {
		return 0.0, MonochromaticDetail{}
	}

	sorted := sortedHues(hues)
	hueRange := sorted[len(sorted)-1] - sorted[0]
	if hueRange > 180 {
		// The palette straddles 0; the short way round is the real range.
		hueRange = 360 - hueRange
	}

	score := clamp01(1 - hueRange/tolerance)
	return score, MonochromaticDetail{MeanHue: CircularMean(hues)}
}
