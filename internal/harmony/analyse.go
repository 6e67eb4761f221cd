package harmony

import (
	"github.com/hashicorp/go-hclog"

	"github.com/nat-bishop/harmonia/internal/colour"
)

// Scheme names a harmony scheme or quality metric in the analysis report.
// The set is closed: visualisation layers rely on exactly these names.
type Scheme string

// The schemes reported by Analyse, in report order.
const (
	SchemeTriadic            Scheme = "Triadic"
	SchemeSquare             Scheme = "Square"
	SchemeComplementary      Scheme = "Complementary"
	SchemeSplitComplementary Scheme = "Split Complementary"
	SchemeMonochromatic      Scheme = "Monochromatic"
	SchemeContrast           Scheme = "Contrast"
	SchemeSaturation         Scheme = "Saturation"
)

// Schemes returns the report's scheme set in its contractual order.
func Schemes() []Scheme {
	return []Scheme{
		SchemeTriadic,
		SchemeSquare,
		SchemeComplementary,
		SchemeSplitComplementary,
		SchemeMonochromatic,
		SchemeContrast,
		SchemeSaturation,
	}
}

// SchemeScore pairs a scheme with its score in [0,1].
type SchemeScore struct {
	Scheme Scheme  `json:"scheme"`
	Score  float64 `json:"score"`
}

// Report is an ordered set of scheme scores for one palette. Order matches
// Schemes(); a scheme whose cardinality requirement the palette does not
// meet is present with score 0, never missing.
type Report []SchemeScore

// Score returns the score for the named scheme, or 0 if it is not present.
func (r Report) Score(scheme Scheme) float64 {
	for _, entry := range r {
		if entry.Scheme == scheme {
			return entry.Score
		}
	}
	return 0.0
}

// Analyser scores palettes against every harmony scheme using default
// tolerances.
type Analyser struct {
	logger hclog.Logger
}

// NewAnalyser creates an Analyser. A nil logger disables logging.
func NewAnalyser(logger hclog.Logger) *Analyser {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Analyser{logger: logger}
}

// Analyse derives hue angles from the palette's Lab chroma and runs every
// scorer with its default tolerances. The returned report always carries
// all seven schemes in order; wrong-cardinality schemes score 0.
func (a *Analyser) Analyse(palette *colour.Palette) Report {
	hues := palette.Hues()
	colours := palette.Colours

	triadic, _ := ScoreTriadic(hues, DefaultTriadicTolerance)
	square, _ := ScoreSquare(hues, DefaultSquareTolerance)
	complementary, _ := ScoreComplementary(hues, DefaultComplementaryMeanTolerance, DefaultComplementarySpreadTolerance)
	splitComplementary, _ := ScoreSplitComplementary(hues, DefaultSplitMeanTolerance, DefaultSplitSpreadTolerance)
	monochromatic, _ := ScoreMonochromatic(hues, DefaultMonochromaticTolerance)

	report := Report{
		{Scheme: SchemeTriadic, Score: triadic},
		{Scheme: SchemeSquare, Score: square},
		{Scheme: SchemeComplementary, Score: complementary},
		{Scheme: SchemeSplitComplementary, Score: splitComplementary},
		{Scheme: SchemeMonochromatic, Score: monochromatic},
		{Scheme: SchemeContrast, Score: ScoreContrast(colours)},
		{Scheme: SchemeSaturation, Score: ScoreSaturation(colours, DefaultMaxChroma)},
	}

	for _, entry := range report {
		a.logger.Info("harmony score", "scheme", string(entry.Scheme), "score", entry.Score)
	}

	return report
}
