package harmony

// DefaultAnalogousThreshold is the covering-arc size (degrees) at which a
// palette stops reading as analogous.
const DefaultAnalogousThreshold = 120.0

// AnalogousDetail explains an analogous score.
type AnalogousDetail struct {
	// StartHue is the first hue of the smallest arc containing the palette.
	StartHue float64
	// ArcSize is that arc's span in degrees.
	ArcSize float64
}

// ScoreAnalogous scores how tightly a palette fits inside a small arc of the
// colour wheel. The error is the smallest arc containing every hue, found by
// trying each sorted hue as the arc start and keeping the first minimal arc
// encountered. Accepts any non-empty list; an empty palette scores 0.
func ScoreAnalogous(hues []float64, threshold float64) (float64, AnalogousDetail) {
	if len(hues) == 0 {
		return 0.0, AnalogousDetail{}
	}

	sorted := sortedHues(hues)
	n := len(sorted)

	if n == 1 {
		return 1.0, AnalogousDetail{StartHue: sorted[0], ArcSize: 0}
	}

	// Starting the arc at sorted[i] it must run forward to sorted[i-1], the
	// last hue reached before wrapping back to the start.
	bestArc := 360.0
	bestStart := sorted[0]
	for i := 0; i < n; i++ {
		end := sorted[(i+n-1)%n]
		arc := end - sorted[i]
		if arc < 0 {
			arc += 360
		}
		if arc < bestArc {
			bestArc = arc
			bestStart = sorted[i]
		}
	}

	score := clamp01(1 - bestArc/threshold)
	return score, AnalogousDetail{StartHue: bestStart, ArcSize: bestArc}
}
