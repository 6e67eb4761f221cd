package harmony

import "math"

// Default tolerances for the split-complementary scorer.
const (
	// DefaultSplitMeanTolerance is the average deviation of the split
	// cluster means from their base+150/base+210 targets at which the angle
	// term saturates.
	DefaultSplitMeanTolerance = 15.0
	// DefaultSplitSpreadTolerance is the average cluster diameter at which
	// the spread term saturates.
	DefaultSplitSpreadTolerance = 45.0
)

// Weighting of the split-complementary error terms. Both terms fall off
// quadratically, so near-perfect palettes are penalised only gently.
const (
	splitAngleWeight  = 0.65
	splitSpreadWeight = 0.35
)

// Hue offsets from the base cluster to the two split targets.
const (
	splitTargetLow  = 150.0
	splitTargetHigh = 210.0
)

// SplitComplementaryDetail explains a split-complementary score: the winning
// three-way partition with Split1 matched to the base+150 target and Split2
// to base+210, plus each cluster's circular mean.
type SplitComplementaryDetail struct {
	Base   []float64
	Split1 []float64
	Split2 []float64

	BaseMean   float64
	Split1Mean float64
	Split2Mean float64
}

// ScoreSplitComplementary scores how well a palette forms a base hue cluster
// with two clusters flanking its complement at base+150 and base+210
// degrees. Every rotation of the sorted hues and every contiguous three-way
// cut with non-empty clusters is tried; for each partition both assignments
// of the split clusters to the two targets are evaluated and the better one
// kept. Ties go to the first arrangement encountered. Requires at least
// three hues; smaller palettes score 0.
func ScoreSplitComplementary(hues []float64, meanTolerance, spreadTolerance float64) (float64, SplitComplementaryDetail) {
	if len(hues) < 3 {
		return 0.0, SplitComplementaryDetail{}
	}

	sorted := sortedHues(hues)
	n := len(sorted)

	bestError := math.Inf(1)
	var best SplitComplementaryDetail

	for offset := 0; offset < n; offset++ {
		rotated := rotate(sorted, offset)
		for j := 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				base := rotated[:j]
				clusterA := rotated[j:k]
				clusterB := rotated[k:]

				baseMean := CircularMean(base)
				meanA := CircularMean(clusterA)
				meanB := CircularMean(clusterB)

				targetLow := NormaliseDegrees(baseMean + splitTargetLow)
				targetHigh := NormaliseDegrees(baseMean + splitTargetHigh)

				// Try both ways of matching the split clusters to the two
				// targets and keep the cheaper assignment.
				errDirect := (CircularDiff(meanA, targetLow) + CircularDiff(meanB, targetHigh)) / 2
				errSwapped := (CircularDiff(meanA, targetHigh) + CircularDiff(meanB, targetLow)) / 2

				angleError := errDirect
				split1, split2 := clusterA, clusterB
				split1Mean, split2Mean := meanA, meanB
				if errSwapped < errDirect {
					angleError = errSwapped
					split1, split2 = clusterB, clusterA
					split1Mean, split2Mean = meanB, meanA
				}

				spreadError := (clusterDiameter(base) + clusterDiameter(clusterA) + clusterDiameter(clusterB)) / 3

				angleTerm := angleError / meanTolerance
				spreadTerm := spreadError / spreadTolerance
				totalError := splitAngleWeight*angleTerm*angleTerm + splitSpreadWeight*spreadTerm*spreadTerm

				if totalError < bestError {
					bestError = totalError
					best = SplitComplementaryDetail{
						Base:       append([]float64(nil), base...),
						Split1:     append([]float64(nil), split1...),
						Split2:     append([]float64(nil), split2...),
						BaseMean:   baseMean,
						Split1Mean: split1Mean,
						Split2Mean: split2Mean,
					}
				}
			}
		}
	}

	return clamp01(1 - bestError), best
}
