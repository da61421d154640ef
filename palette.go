package julia

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Preset palettes. Each is a plain Gradient value; copy and modify
// freely.
var (
	// PaletteClassic ramps black through deep blue to white, the
	// traditional escape-time look.
	PaletteClassic = Gradient{
		mustHex("#000000"),
		mustHex("#000080"),
		mustHex("#0000ff"),
		mustHex("#87ceeb"),
		mustHex("#ffffff"),
	}

	// PaletteFire ramps black through ember red and orange to yellow.
	PaletteFire = Gradient{
		mustHex("#000000"),
		mustHex("#7f0000"),
		mustHex("#ff4500"),
		mustHex("#ffa500"),
		mustHex("#ffff00"),
	}

	// PaletteOcean ramps midnight blue to pale foam.
	PaletteOcean = Gradient{
		mustHex("#000033"),
		mustHex("#003366"),
		mustHex("#0077b6"),
		mustHex("#48cae4"),
		mustHex("#caf0f8"),
	}

	// PaletteGrayscale is a linear value ramp from black to white.
	PaletteGrayscale = Gradient{
		hsv(0, 0, 0),
		hsv(0, 0, 0.25),
		hsv(0, 0, 0.5),
		hsv(0, 0, 0.75),
		hsv(0, 0, 1),
	}

	// PaletteSpectral sweeps hue from violet through blue and green to
	// red at full saturation.
	PaletteSpectral = Gradient{
		hsv(270, 0.85, 1),
		hsv(210, 0.85, 1),
		hsv(150, 0.85, 1),
		hsv(60, 0.85, 1),
		hsv(0, 0.85, 1),
	}
)

// paletteIndex lists the presets in display order.
var paletteIndex = []struct {
	name string
	grad Gradient
}{
	{"classic", PaletteClassic},
	{"fire", PaletteFire},
	{"ocean", PaletteOcean},
	{"grayscale", PaletteGrayscale},
	{"spectral", PaletteSpectral},
}

// PaletteNames returns the preset palette names in display order.
func PaletteNames() []string {
	names := make([]string, len(paletteIndex))
	for i, p := range paletteIndex {
		names[i] = p.name
	}
	return names
}

// PaletteByName resolves a preset palette by name, case-insensitively.
func PaletteByName(name string) (Gradient, bool) {
	name = strings.ToLower(name)
	for _, p := range paletteIndex {
		if p.name == name {
			return p.grad, true
		}
	}
	return Gradient{}, false
}

// mustHex parses a #rrggbb literal. Panics on malformed input; preset
// literals are fixed at compile time, so a failure is a programming
// error.
func mustHex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("julia: bad palette literal: " + s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// hsv converts an HSV triplet (hue in degrees) to an 8-bit RGB stop.
func hsv(h, s, v float64) RGB {
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return RGB{R: r, G: g, B: b}
}
