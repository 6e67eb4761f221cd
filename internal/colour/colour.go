// Package colour provides the colour model, colour-space conversions and
// palette extraction used by harmonia.
package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Lab holds a colour in the 8-bit CIE Lab encoding used throughout the
// analysis pipeline (the same encoding OpenCV uses for 8-bit images):
// L, A and B all live in [0,255], with neutral chroma at A=B=128.
// Components are kept as float64 so scoring does not lose precision to
// byte quantisation.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Colour is a palette entry carrying both its sRGB bytes and its Lab
// encoding. Values are immutable once constructed.
type Colour struct {
	RGB RGB `json:"rgb"`
	Lab Lab `json:"lab"`
}

// FromRGB builds a Colour from 8-bit sRGB components.
func FromRGB(r, g, b uint8) Colour {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, a, bb := c.Lab()
	return Colour{
		RGB: RGB{R: r, G: g, B: b},
		// go-colorful returns CIE L* scaled to [0,1] and a*/b* scaled by
		// 1/100; rescale into the 8-bit encoding.
		Lab: Lab{
			L: l * 255,
			A: a*100 + 128,
			B: bb*100 + 128,
		},
	}
}

// FromLab builds a Colour from the 8-bit Lab encoding. The sRGB
// representation is clamped into gamut.
func FromLab(l, a, b float64) Colour {
	c := colorful.Lab(l/255, (a-128)/100, (b-128)/100).Clamped()
	r, g, bb := c.RGB255()
	return Colour{
		RGB: RGB{R: r, G: g, B: bb},
		Lab: Lab{L: l, A: a, B: b},
	}
}

// FromHex parses a colour from a hex string such as "#1a2b3c".
func FromHex(hex string) (Colour, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Colour{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return FromRGB(r, g, b), nil
}

// Hue returns the Lab hue angle in degrees, normalised to [0,360).
// Neutral colours (A=B=128) report hue 0.
func (c Colour) Hue() float64 {
	hue := math.Atan2(c.Lab.B-128, c.Lab.A-128) * 180 / math.Pi
	hue = math.Mod(hue+360, 360)
	if hue == 360 {
		hue = 0
	}
	return hue
}

// Chroma returns the Lab chroma, the distance from the neutral axis.
func (c Colour) Chroma() float64 {
	da := c.Lab.A - 128
	db := c.Lab.B - 128
	return math.Sqrt(da*da + db*db)
}

// Hex returns the colour as a hex string (e.g. "#1a2b3c").
func (c Colour) Hex() string {
	return c.RGB.Hex()
}

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the colour in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the colour as a hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}
