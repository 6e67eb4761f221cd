package harmony

import (
	"math"
	"testing"

	"github.com/nat-bishop/harmonia/internal/colour"
)

// labPaletteFromHues builds a mid-lightness palette whose Lab hue angles are
// exactly the given values.
func labPaletteFromHues(hues ...float64) *colour.Palette {
	colours := make([]colour.Colour, len(hues))
	for i, hue := range hues {
		radians := hue * math.Pi / 180
		colours[i] = colour.FromLab(128, 128+50*math.Cos(radians), 128+50*math.Sin(radians))
	}
	return colour.NewPalette(colours)
}

func TestAnalyseReportContract(t *testing.T) {
	palettes := []*colour.Palette{
		colour.NewPalette(nil),
		labPaletteFromHues(40),
		labPaletteFromHues(0, 180),
		labPaletteFromHues(0, 120, 240),
		labPaletteFromHues(0, 90, 180, 270),
		labPaletteFromHues(10, 20, 30, 200, 220, 340),
	}

	analyser := NewAnalyser(nil)
	for _, palette := range palettes {
		report := analyser.Analyse(palette)

		if len(report) != len(Schemes()) {
			t.Fatalf("report has %d entries, want %d", len(report), len(Schemes()))
		}
		for i, scheme := range Schemes() {
			if report[i].Scheme != scheme {
				t.Errorf("report[%d] = %q, want %q", i, report[i].Scheme, scheme)
			}
		}
		for _, entry := range report {
			if entry.Score < 0 || entry.Score > 1 {
				t.Errorf("%s score %v outside [0,1]", entry.Scheme, entry.Score)
			}
		}
	}
}

func TestAnalyseSplitComplementaryScenario(t *testing.T) {
	// A palette at hues 0/150/210 is a perfect split-complementary triple,
	// and with three hues the square scheme cannot apply at all.
	report := NewAnalyser(nil).Analyse(labPaletteFromHues(0, 150, 210))

	if got := report.Score(SchemeSplitComplementary); !almostEqual(got, 1.0, 1e-6) {
		t.Errorf("Split Complementary = %v, want 1.0", got)
	}
	if got := report.Score(SchemeSquare); got != 0 {
		t.Errorf("Square = %v, want 0", got)
	}
	if got := report.Score(SchemeTriadic); got != 0 {
		t.Errorf("Triadic = %v, want 0 (gaps far beyond tolerance)", got)
	}
}

func TestAnalyseTriadicScenario(t *testing.T) {
	report := NewAnalyser(nil).Analyse(labPaletteFromHues(0, 120, 240))

	if got := report.Score(SchemeTriadic); !almostEqual(got, 1.0, 1e-6) {
		t.Errorf("Triadic = %v, want 1.0", got)
	}
	if got := report.Score(SchemeSquare); got != 0 {
		t.Errorf("Square = %v, want 0 (wrong cardinality)", got)
	}
}

func TestReportScoreUnknownScheme(t *testing.T) {
	var report Report
	if got := report.Score(SchemeTriadic); got != 0 {
		t.Errorf("empty report Score = %v, want 0", got)
	}
}
