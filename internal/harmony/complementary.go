package harmony

import "math"

// Default tolerances for the complementary scorer.
const (
	// DefaultComplementaryMeanTolerance is the deviation of the two cluster
	// means from 180 degrees apart at which the mean term saturates.
	DefaultComplementaryMeanTolerance = 60.0
	// DefaultComplementarySpreadTolerance is the average cluster extent at
	// which the spread term saturates.
	DefaultComplementarySpreadTolerance = 120.0
)

// Weighting of the two complementary error terms.
const (
	complementaryMeanWeight   = 0.7
	complementarySpreadWeight = 0.3
)

// ComplementaryDetail explains a complementary score: the winning two-way
// partition of the palette and the circular mean of each cluster.
type ComplementaryDetail struct {
	Cluster1 []float64
	Cluster2 []float64
	Mean1    float64
	Mean2    float64
}

// ScoreComplementary scores how well a palette splits into two hue clusters
// sitting opposite each other on the colour wheel. Every rotation of the
// sorted hues and every contiguous two-way cut is tried; the arrangement
// with the lowest combined error (cluster means' deviation from 180 apart,
// weighted 0.7, plus average cluster extent, weighted 0.3) wins, with ties
// going to the first arrangement encountered. Two hues have no spread, so
// the error is just their deviation from 180 apart, unweighted. Requires at
// least two hues; smaller palettes score 0.
func ScoreComplementary(hues []float64, meanTolerance, spreadTolerance float64) (float64, ComplementaryDetail) {
	if len(hues) < 2 {
		return 0.0, ComplementaryDetail{}
	}

	sorted := sortedHues(hues)
	n := len(sorted)

	if n == 2 {
		meanError := math.Abs(CircularDiff(sorted[0], sorted[1])-180) / meanTolerance
		return clamp01(1 - meanError), ComplementaryDetail{
			Cluster1: []float64{sorted[0]},
			Cluster2: []float64{sorted[1]},
			Mean1:    sorted[0],
			Mean2:    sorted[1],
		}
	}

	bestError := math.Inf(1)
	var best ComplementaryDetail

	for offset := 0; offset < n; offset++ {
		rotated := rotate(sorted, offset)
		for cut := 1; cut < n; cut++ {
			cluster1 := rotated[:cut]
			cluster2 := rotated[cut:]

			mean1 := CircularMean(cluster1)
			mean2 := CircularMean(cluster2)

			meanError := math.Abs(CircularDiff(mean1, mean2)-180) / meanTolerance
			avgSpread := (arcExtent(cluster1) + arcExtent(cluster2)) / 2
			spreadError := avgSpread / spreadTolerance

			totalError := complementaryMeanWeight*meanError + complementarySpreadWeight*spreadError
			if totalError < bestError {
				bestError = totalError
				best = ComplementaryDetail{
					Cluster1: append([]float64(nil), cluster1...),
					Cluster2: append([]float64(nil), cluster2...),
					Mean1:    mean1,
					Mean2:    mean2,
				}
			}
		}
	}

	return clamp01(1 - bestError), best
}
