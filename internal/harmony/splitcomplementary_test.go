package harmony

import "testing"

func scoreSplit(hues []float64) (float64, SplitComplementaryDetail) {
	return ScoreSplitComplementary(hues, DefaultSplitMeanTolerance, DefaultSplitSpreadTolerance)
}

func TestScoreSplitComplementaryPerfect(t *testing.T) {
	tests := []struct {
		name       string
		hues       []float64
		wantBase   float64
		wantSplit1 float64
		wantSplit2 float64
	}{
		{name: "base at zero", hues: []float64{0, 150, 210}, wantBase: 0, wantSplit1: 150, wantSplit2: 210},
		{name: "base at 120", hues: []float64{120, 270, 330}, wantBase: 120, wantSplit1: 270, wantSplit2: 330},
		{name: "targets wrap past zero", hues: []float64{330, 120, 180}, wantBase: 330, wantSplit1: 120, wantSplit2: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, detail := scoreSplit(tt.hues)
			if !almostEqual(score, 1.0, 1e-9) {
				t.Fatalf("score = %v, want 1.0", score)
			}
			if !almostEqual(detail.BaseMean, tt.wantBase, 1e-6) {
				t.Errorf("BaseMean = %v, want %v", detail.BaseMean, tt.wantBase)
			}
			if !almostEqual(detail.Split1Mean, tt.wantSplit1, 1e-6) {
				t.Errorf("Split1Mean = %v, want %v", detail.Split1Mean, tt.wantSplit1)
			}
			if !almostEqual(detail.Split2Mean, tt.wantSplit2, 1e-6) {
				t.Errorf("Split2Mean = %v, want %v", detail.Split2Mean, tt.wantSplit2)
			}
		})
	}
}

func TestScoreSplitComplementaryImperfect(t *testing.T) {
	slightlyOff, _ := scoreSplit([]float64{0, 145, 215})
	if slightlyOff <= 0.8 {
		t.Errorf("slightly off palette scored %v, want > 0.8", slightlyOff)
	}

	moderatelyOff, _ := scoreSplit([]float64{0, 140, 220})
	if moderatelyOff <= 0.6 || moderatelyOff >= 0.8 {
		t.Errorf("moderately off palette scored %v, want in (0.6, 0.8)", moderatelyOff)
	}
	if moderatelyOff >= slightlyOff {
		t.Errorf("deviation not monotonic: %v >= %v", moderatelyOff, slightlyOff)
	}
}

func TestScoreSplitComplementaryMultiColourClusters(t *testing.T) {
	hues := []float64{
		355, 0, 5, // base cluster
		145, 150, 155, // first split cluster
		205, 210, 215, // second split cluster
	}
	score, detail := scoreSplit(hues)
	if score <= 0.9 {
		t.Errorf("score = %v, want > 0.9", score)
	}
	if len(detail.Base) != 3 || len(detail.Split1) != 3 || len(detail.Split2) != 3 {
		t.Fatalf("cluster sizes = %d/%d/%d, want 3/3/3",
			len(detail.Base), len(detail.Split1), len(detail.Split2))
	}
	if !almostEqual(detail.BaseMean, 0, 5) {
		t.Errorf("BaseMean = %v, want ~0", detail.BaseMean)
	}
	if !almostEqual(detail.Split1Mean, 150, 5) {
		t.Errorf("Split1Mean = %v, want ~150", detail.Split1Mean)
	}
	if !almostEqual(detail.Split2Mean, 210, 5) {
		t.Errorf("Split2Mean = %v, want ~210", detail.Split2Mean)
	}
}

func TestScoreSplitComplementaryUnevenClusters(t *testing.T) {
	hues := []float64{0, 5, 148, 150, 152, 210}
	score, detail := scoreSplit(hues)
	if score <= 0.9 {
		t.Errorf("score = %v, want > 0.9", score)
	}
	if len(detail.Base) != 2 || len(detail.Split1) != 3 || len(detail.Split2) != 1 {
		t.Errorf("cluster sizes = %d/%d/%d, want 2/3/1",
			len(detail.Base), len(detail.Split1), len(detail.Split2))
	}
}

func TestScoreSplitComplementaryPermutationInvariant(t *testing.T) {
	base, _ := scoreSplit([]float64{0, 150, 210})
	permuted, _ := scoreSplit([]float64{210, 0, 150})
	if base != permuted {
		t.Errorf("permuted input scored %v, want %v", permuted, base)
	}
}

func TestScoreSplitComplementaryWrongCardinality(t *testing.T) {
	for _, hues := range [][]float64{nil, {}, {0}, {0, 180}} {
		score, detail := scoreSplit(hues)
		if score != 0 {
			t.Errorf("ScoreSplitComplementary(%v) = %v, want 0", hues, score)
		}
		if detail.Base != nil {
			t.Errorf("ScoreSplitComplementary(%v) detail = %+v, want zero value", hues, detail)
		}
	}
}
