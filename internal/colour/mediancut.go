package colour

import (
	"fmt"
	"image"
	"sort"
)

// MedianCutExtractor implements palette extraction using median-cut
// quantisation: the RGB bounding box of the sampled pixels is repeatedly
// split at the median of its widest channel until enough boxes exist, and
// each box contributes its average colour.
type MedianCutExtractor struct{}

// NewMedianCutExtractor creates a MedianCutExtractor.
func NewMedianCutExtractor() *MedianCutExtractor {
	return &MedianCutExtractor{}
}

// Extract extracts a palette of count colours from an image.
func (e *MedianCutExtractor) Extract(img image.Image, count int) (*Palette, error) {
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

	boxes := []colourBox{newColourBox(pixels)}
	for len(boxes) < count {
		// Split the box with the widest channel range; if nothing is left
		// to split, the image has fewer distinct colours than requested.
		widest := widestBox(boxes)
		if widest < 0 {
			break
		}
		left, right := boxes[widest].split()
		boxes = append(boxes[:widest], append([]colourBox{left, right}, boxes[widest+1:]...)...)
	}

	colours := make([]Colour, len(boxes))
	for i, box := range boxes {
		colours[i] = box.average()
	}
	return NewPalette(colours), nil
}

// colourBox is a set of pixels with its per-channel value ranges.
type colourBox struct {
	pixels []RGB

	minR, maxR uint8
	minG, maxG uint8
	minB, maxB uint8
}

func newColourBox(pixels []RGB) colourBox {
	box := colourBox{
		pixels: pixels,
		minR:   255, minG: 255, minB: 255,
	}
	for _, p := range pixels {
		box.minR = min(box.minR, p.R)
		box.maxR = max(box.maxR, p.R)
		box.minG = min(box.minG, p.G)
		box.maxG = max(box.maxG, p.G)
		box.minB = min(box.minB, p.B)
		box.maxB = max(box.maxB, p.B)
	}
	return box
}

// widestRange returns the size of the box's widest channel range.
func (b colourBox) widestRange() int {
	return max(int(b.maxR)-int(b.minR), int(b.maxG)-int(b.minG), int(b.maxB)-int(b.minB))
}

// split divides the box at the median of its widest channel.
func (b colourBox) split() (colourBox, colourBox) {
	rangeR := int(b.maxR) - int(b.minR)
	rangeG := int(b.maxG) - int(b.minG)
	rangeB := int(b.maxB) - int(b.minB)

	pixels := append([]RGB(nil), b.pixels...)
	switch {
	case rangeR >= rangeG && rangeR >= rangeB:
		sort.Slice(pixels, func(i, j int) bool { return pixels[i].R < pixels[j].R })
	case rangeG >= rangeB:
		sort.Slice(pixels, func(i, j int) bool { return pixels[i].G < pixels[j].G })
	default:
		sort.Slice(pixels, func(i, j int) bool { return pixels[i].B < pixels[j].B })
	}

	median := len(pixels) / 2
	return newColourBox(pixels[:median]), newColourBox(pixels[median:])
}

// average returns the box's mean colour.
func (b colourBox) average() Colour {
	var sumR, sumG, sumB int
	for _, p := range b.pixels {
		sumR += int(p.R)
		sumG += int(p.G)
		sumB += int(p.B)
	}
	n := len(b.pixels)
	return FromRGB(uint8(sumR/n), uint8(sumG/n), uint8(sumB/n))
}

// widestBox returns the index of the splittable box with the widest channel
// range, or -1 if no box can be split further.
func widestBox(boxes []colourBox) int {
	widest := -1
	widestRange := 0
	for i, box := range boxes {
		if len(box.pixels) < 2 {
			continue
		}
		if r := box.widestRange(); r > widestRange {
			widestRange = r
			widest = i
		}
	}
	return widest
}
