package colour

import (
	"fmt"
	"image"
)

// Extractor defines the interface for palette extraction algorithms.
type Extractor interface {
	// Extract extracts a palette of count colours from an image.
	Extract(img image.Image, count int) (*Palette, error)
}

// Algorithm represents the palette extraction algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses k-means clustering.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmMedianCut uses median-cut quantisation.
	AlgorithmMedianCut Algorithm = "mediancut"
)

// ValidAlgorithms returns the supported algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmKMeans, AlgorithmMedianCut}
}

// IsValidAlgorithm checks if the given algorithm name is supported.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates an Extractor for the specified algorithm.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmKMeans:
		return NewKMeansExtractor(), nil
	case AlgorithmMedianCut:
		return NewMedianCutExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// ExtractorConfig holds configuration for palette extraction.
type ExtractorConfig struct {
	Algorithm   Algorithm
	ColourCount int
}

// DefaultExtractorConfig returns the default extraction configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:   AlgorithmKMeans,
		ColourCount: 5,
	}
}

// Validate validates the extraction configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if c.ColourCount < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.ColourCount)
	}
	if c.ColourCount > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", c.ColourCount)
	}
	return nil
}
