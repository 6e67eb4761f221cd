package harmony

import "testing"

func TestScoreTriadic(t *testing.T) {
	tests := []struct {
		name      string
		hues      []float64
		wantScore float64
	}{
		{name: "perfect triad", hues: []float64{0, 120, 240}, wantScore: 1},
		{name: "perfect triad rotated hues", hues: []float64{30, 150, 270}, wantScore: 1},
		{name: "slightly off", hues: []float64{0, 115, 240}, wantScore: 1 - 10.0/90},
		{name: "moderately off", hues: []float64{0, 110, 240}, wantScore: 1 - 20.0/90},
		{name: "far off", hues: []float64{0, 90, 240}, wantScore: 1 - 60.0/90},
		{name: "two hues", hues: []float64{0, 120}, wantScore: 0},
		{name: "four hues", hues: []float64{0, 120, 240, 300}, wantScore: 0},
		{name: "empty", hues: nil, wantScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := ScoreTriadic(tt.hues, DefaultTriadicTolerance)
			if !almostEqual(score, tt.wantScore, 1e-9) {
				t.Errorf("ScoreTriadic(%v) = %v, want %v", tt.hues, score, tt.wantScore)
			}
		})
	}
}

func TestScoreTriadicMonotonicDegradation(t *testing.T) {
	closer, _ := ScoreTriadic([]float64{0, 110, 240}, DefaultTriadicTolerance)
	farther, _ := ScoreTriadic([]float64{0, 90, 240}, DefaultTriadicTolerance)
	if farther >= closer {
		t.Errorf("deviation not monotonic: 90 scored %v, 110 scored %v", farther, closer)
	}
}

func TestScoreTriadicDetail(t *testing.T) {
	score, detail := ScoreTriadic([]float64{240, 0, 120}, DefaultTriadicTolerance)
	if !almostEqual(score, 1.0, 1e-9) {
		t.Errorf("score = %v, want 1.0", score)
	}
	// All rotations tie on a perfect triad; the first (sorted) wins.
	if !almostEqual(detail.StartHue, 0, 1e-9) {
		t.Errorf("StartHue = %v, want 0", detail.StartHue)
	}
}

func TestScoreSquare(t *testing.T) {
	tests := []struct {
		name      string
		hues      []float64
		wantScore float64
	}{
		{name: "perfect square", hues: []float64{0, 90, 180, 270}, wantScore: 1},
		{name: "one hue nudged", hues: []float64{0, 85, 180, 270}, wantScore: 1 - 10.0/60},
		{name: "badly skewed", hues: []float64{0, 60, 180, 270}, wantScore: 0},
		{name: "three hues", hues: []float64{0, 90, 180}, wantScore: 0},
		{name: "five hues", hues: []float64{0, 90, 180, 270, 300}, wantScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := ScoreSquare(tt.hues, DefaultSquareTolerance)
			if !almostEqual(score, tt.wantScore, 1e-9) {
				t.Errorf("ScoreSquare(%v) = %v, want %v", tt.hues, score, tt.wantScore)
			}
		})
	}
}

func TestScoreSquareSmallPerturbationKeepsPartialCredit(t *testing.T) {
	score, _ := ScoreSquare([]float64{5, 90, 180, 270}, DefaultSquareTolerance)
	if score >= 1.0 {
		t.Errorf("perturbed square scored %v, want < 1.0", score)
	}
	if score <= 0.8 {
		t.Errorf("perturbed square scored %v, want > 0.8", score)
	}
}

func TestScoreSquareDetail(t *testing.T) {
	_, detail := ScoreSquare([]float64{270, 180, 90, 0}, DefaultSquareTolerance)
	if !almostEqual(detail.StartHue, 0, 1e-9) {
		t.Errorf("StartHue = %v, want 0", detail.StartHue)
	}
}
