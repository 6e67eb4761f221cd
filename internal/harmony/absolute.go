package harmony

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nat-bishop/harmonia/internal/colour"
)

// DefaultMaxChroma is the chroma at which a palette reads as fully
// saturated. It is a calibration constant for the 8-bit Lab encoding,
// roughly the largest chroma reached by the pure sRGB primaries, not a
// theoretical bound; other Lab encodings need re-calibration.
const DefaultMaxChroma = 120.0

// ScoreSaturation scores the overall saturation of a palette in [0,1].
// Each colour contributes its Lab chroma weighted by its lightness, so
// bright colours count for more than dark ones. An empty palette, or one
// whose colours are all black, scores 0.
func ScoreSaturation(colours []colour.Colour, maxChroma float64) float64 {
	if len(colours) == 0 {
		return 0.0
	}

	chromas := make([]float64, len(colours))
	weights := make([]float64, len(colours))
	var totalWeight float64
	for i, c := range colours {
		chromas[i] = c.Chroma()
		weights[i] = c.Lab.L / 255
		totalWeight += weights[i]
	}

	if totalWeight == 0 {
		return 0.0
	}

	weightedChroma := stat.Mean(chromas, weights)
	return clamp01(weightedChroma / maxChroma)
}

// ScoreContrast scores the lightness spread of a palette in [0,1]: the
// distance between its lightest and darkest colours relative to the full
// Lab lightness range. Palettes with fewer than two colours score 0.
func ScoreContrast(colours []colour.Colour) float64 {
	if len(colours) < 2 {
		return 0.0
	}

	lightness := make([]float64, len(colours))
	for i, c := range colours {
		lightness[i] = c.Lab.L
	}

	return clamp01((floats.Max(lightness) - floats.Min(lightness)) / 255)
}
