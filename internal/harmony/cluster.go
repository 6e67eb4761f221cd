package harmony

import "sort"

// sortedHues returns the input hues normalised to [0,360) and sorted
// ascending. Every multi-hue scorer searches over rotations of this
// canonical ordering, which is what makes the scorers permutation-invariant.
func sortedHues(hues []float64) []float64 {
	sorted := make([]float64, len(hues))
	for i, hue := range hues {
		sorted[i] = NormaliseDegrees(hue)
	}
	sort.Float64s(sorted)
	return sorted
}

// rotate returns the sorted sequence started at index offset, wrapping
// around the circle. The result is a fresh slice.
func rotate(hues []float64, offset int) []float64 {
	n := len(hues)
	rotated := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		rotated = append(rotated, hues[(offset+i)%n])
	}
	return rotated
}

// arcExtent measures the span of a contiguous cluster taken from a rotation
// of sorted hues, walking forward from its first to its last member. For a
// cluster that does not wrap past 360 this equals max-min.
func arcExtent(cluster []float64) float64 {
	if len(cluster) < 2 {
		return 0
	}
	extent := cluster[len(cluster)-1] - cluster[0]
	if extent < 0 {
		extent += 360
	}
	return extent
}

// clusterDiameter returns the largest pairwise CircularDiff within a
// cluster. Palette sizes are single digits, so the quadratic scan is fine.
func clusterDiameter(cluster []float64) float64 {
	var diameter float64
	for i := 0; i < len(cluster); i++ {
		for j := i + 1; j < len(cluster); j++ {
			if d := CircularDiff(cluster[i], cluster[j]); d > diameter {
				diameter = d
			}
		}
	}
	return diameter
}

// clamp01 clamps a score into [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
