package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// KMeansExtractor implements palette extraction using k-means clustering
// with k-means++ seeding.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
}

// NewKMeansExtractor creates a KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
	}
}

// Extract extracts a palette of count colours from an image.
func (e *KMeansExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	unique := uniqueColours(pixels)
	if count >= len(unique) {
		return NewPalette(unique), nil
	}

	centroids := e.cluster(pixels, count)

	colours := make([]Colour, len(centroids))
	for i, c := range centroids {
		colours[i] = FromRGB(uint8(c.r), uint8(c.g), uint8(c.b))
	}
	return NewPalette(colours), nil
}

// point3D is a point in RGB space.
type point3D struct {
	r, g, b float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.r - other.r
	dg := p.g - other.g
	db := p.b - other.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels samples up to maxSamples pixels from the image on a grid.
func samplePixels(img image.Image) []RGB {
	const maxSamples = 2000

	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	pixels := make([]RGB, 0, min(totalPixels, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// uniqueColours returns the distinct colours among the pixels, in first-seen
// order.
func uniqueColours(pixels []RGB) []Colour {
	seen := make(map[RGB]bool, len(pixels))
	unique := make([]Colour, 0)
	for _, p := range pixels {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, FromRGB(p.R, p.G, p.B))
		}
	}
	return unique
}

// cluster runs k-means over the pixels and returns the final centroids.
func (e *KMeansExtractor) cluster(pixels []RGB, k int) []point3D {
	points := make([]point3D, len(pixels))
	for i, p := range pixels {
		points[i] = point3D{r: float64(p.R), g: float64(p.G), b: float64(p.B)}
	}

	centroids := seedCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recomputeCentroids(points, assignments, k)

		var movement float64
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next
		if movement/float64(k) < e.convergence {
			break
		}
	}

	return centroids
}

// seedCentroids picks initial centroids with k-means++: each subsequent
// centroid is chosen with probability proportional to its squared distance
// from the nearest existing centroid.
func seedCentroids(points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		var total float64
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if d := point.distance(centroid); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Every remaining point already coincides with a centroid; nudge
			// a duplicate so the loop can finish.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{r: last.r + 0.1, g: last.g + 0.1, b: last.b + 0.1})
			continue
		}

		target := rand.Float64() * total
		var cumulative float64
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if d := point.distance(centroid); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recomputeCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, point := range points {
		c := assignments[i]
		sums[c].r += point.r
		sums[c].g += point.g
		sums[c].b += point.b
		counts[c]++
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				r: sums[i].r / float64(counts[i]),
				g: sums[i].g / float64(counts[i]),
				b: sums[i].b / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rand.Intn(len(points))]
		}
	}
	return centroids
}
