package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA converts a colour to an opaque 8-bit RGBA value.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Fade returns c with alpha applied, premultiplied as image/color expects.
func Fade(c colorful.Color, alpha float64) color.RGBA {
	alpha = clamp01(alpha)
	c = c.Clamped()
	return color.RGBA{
		R: uint8(math.Round(c.R * alpha * 255)),
		G: uint8(math.Round(c.G * alpha * 255)),
		B: uint8(math.Round(c.B * alpha * 255)),
		A: uint8(math.Round(alpha * 255)),
	}
}

// Mix blends a toward b in Lab space; t is clamped to [0, 1].
func Mix(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendLab(b, clamp01(t)).Clamped()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
