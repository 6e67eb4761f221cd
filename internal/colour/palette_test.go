package colour

import (
	"encoding/json"
	"testing"
)

func TestPaletteLen(t *testing.T) {
	tests := []struct {
		name    string
		colours []Colour
		want    int
	}{
		{name: "empty palette", colours: nil, want: 0},
		{name: "single colour", colours: []Colour{FromRGB(255, 0, 0)}, want: 1},
		{
			name: "multiple colours",
			colours: []Colour{
				FromRGB(255, 0, 0),
				FromRGB(0, 255, 0),
				FromRGB(0, 0, 255),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPalette(tt.colours).Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPaletteHues(t *testing.T) {
	palette := NewPalette([]Colour{
		FromLab(128, 178, 128),
		FromLab(128, 128, 178),
	})

	hues := palette.Hues()
	if len(hues) != 2 {
		t.Fatalf("len(hues) = %d, want 2", len(hues))
	}
	if !almostEqual(hues[0], 0, 1e-9) || !almostEqual(hues[1], 90, 1e-9) {
		t.Errorf("Hues() = %v, want [0 90]", hues)
	}
}

func TestPaletteSortByLightness(t *testing.T) {
	palette := NewPalette([]Colour{
		FromRGB(255, 255, 255),
		FromRGB(0, 0, 0),
		FromRGB(128, 128, 128),
	})

	palette.SortByLightness()

	for i := 1; i < palette.Len(); i++ {
		if palette.Colours[i-1].Lab.L > palette.Colours[i].Lab.L {
			t.Fatalf("palette not sorted by lightness: %v before %v",
				palette.Colours[i-1].Lab.L, palette.Colours[i].Lab.L)
		}
	}
	if palette.Colours[0].RGB != (RGB{}) {
		t.Errorf("darkest colour = %+v, want black first", palette.Colours[0].RGB)
	}
}

func TestPaletteToHex(t *testing.T) {
	palette := NewPalette([]Colour{
		FromRGB(255, 0, 0),
		FromRGB(0, 0, 255),
	})

	want := []string{"#ff0000", "#0000ff"}
	got := palette.ToHex()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToHex()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPaletteToJSON(t *testing.T) {
	palette := NewPalette([]Colour{FromRGB(255, 0, 0)})

	data, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON returned error: %v", err)
	}

	var decoded PaletteJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 1 {
		t.Errorf("count = %d, want 1", decoded.Count)
	}
	if decoded.Colours[0].Hex != "#ff0000" {
		t.Errorf("hex = %q, want %q", decoded.Colours[0].Hex, "#ff0000")
	}
}

func TestPaletteString(t *testing.T) {
	if got := NewPalette(nil).String(); got != "Empty palette" {
		t.Errorf("String() = %q, want %q", got, "Empty palette")
	}
}
