package grass

import colorful "github.com/lucasb-eyer/go-colorful"

// White is the fixed colour of every odd-indexed line.
var White = colorful.Color{R: 1, G: 1, B: 1}

// Swatch pairs a background colour with the accent used by even-indexed lines.
type Swatch struct {
	Name       string
	Background colorful.Color
	Accent     colorful.Color
}

// Palette is the ordered list of selectable backgrounds.
type Palette []Swatch

// DefaultPalette returns the institute's background/accent pairs.
func DefaultPalette() Palette {
	return Palette{
		{Name: "forest", Background: mustHex("#0b1f14"), Accent: mustHex("#63c34a")},
		{Name: "dusk", Background: mustHex("#1a0a28"), Accent: mustHex("#b57edc")},
		{Name: "estuary", Background: mustHex("#0e1a2b"), Accent: mustHex("#4fc3f7")},
		{Name: "clay", Background: mustHex("#2b1708"), Accent: mustHex("#e8a33d")},
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
