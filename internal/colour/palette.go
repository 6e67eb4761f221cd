package colour

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Palette represents an ordered collection of colours extracted from an
// image or supplied directly.
type Palette struct {
	Colours []Colour
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colours []Colour) *Palette {
	return &Palette{Colours: colours}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Hues returns the Lab hue angle of every colour, in palette order.
func (p *Palette) Hues() []float64 {
	hues := make([]float64, len(p.Colours))
	for i, c := range p.Colours {
		hues[i] = c.Hue()
	}
	return hues
}

// SortByLightness orders the palette by the Lab L channel, darkest first.
// The sort is stable so equally light colours keep their extraction order.
func (p *Palette) SortByLightness() {
	sort.SliceStable(p.Colours, func(i, j int) bool {
		return p.Colours[i].Lab.L < p.Colours[j].Lab.L
	})
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// PaletteJSON represents the palette in JSON output format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ColourJSON represents a single colour in JSON output format.
type ColourJSON struct {
	Hex string  `json:"hex"`
	RGB RGB     `json:"rgb"`
	Lab Lab     `json:"lab"`
	Hue float64 `json:"hue"`
}

// JSONModel returns the palette's JSON output representation.
func (p *Palette) JSONModel() PaletteJSON {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ColourJSON{
			Hex: c.Hex(),
			RGB: c.RGB,
			Lab: c.Lab,
			Hue: c.Hue(),
		}
	}
	return PaletteJSON{
		Count:   len(p.Colours),
		Colours: colours,
	}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p.JSONModel(), "", "  ")
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.RGB.String())
	}
	return result
}
