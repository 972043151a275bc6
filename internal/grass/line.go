package grass

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	speedMin      = 0.5
	speedMax      = 2.0
	maxStretchMin = 0.3
	maxStretchMax = 1.0
)

// Line is one vertical animated stroke. X, StrokeWidth, Speed and MaxStretch
// are fixed for the lifetime of a generation; Phase and the surge fields
// advance every frame.
type Line struct {
	X           float64
	StrokeWidth float64
	Speed       float64
	MaxStretch  float64
	Color       colorful.Color
	// Accent marks even-indexed lines, which carry the swatch accent colour.
	Accent bool

	Phase      float64
	Surging    bool
	SurgeStart float64
}

// Extent is the renderable state of one line for the current frame.
type Extent struct {
	Index       int
	X           float64
	Top         float64
	Bottom      float64
	Color       colorful.Color
	StrokeWidth float64
}

// Height returns the visible length of the segment.
func (x Extent) Height() float64 { return x.Bottom - x.Top }

// generateLines builds a fresh field for the given width. Lines alternate
// between accent (even index) and white (odd index).
func (e *Engine) generateLines(width float64, accent colorful.Color) []Line {
	if width <= 0 {
		return []Line{}
	}
	count := int(math.Floor(width / e.cfg.Density))
	lines := make([]Line, count)
	for i := range lines {
		l := &lines[i]
		l.X = float64(i) / float64(count) * width
		l.Speed = e.rng.Range(speedMin, speedMax)
		l.Phase = e.rng.Range(0, 2*math.Pi)
		l.MaxStretch = e.rng.Range(maxStretchMin, maxStretchMax)
		if i%2 == 0 {
			l.Accent = true
			l.Color = accent
			l.StrokeWidth = e.cfg.AccentStroke
			continue
		}
		l.Color = White
		l.StrokeWidth = e.cfg.WhiteStroke
	}
	return lines
}

// stretchFactor maps a phase onto [0, 1].
func stretchFactor(phase float64) float64 {
	return (math.Sin(phase) + 1) / 2
}

func lerp(lo, hi, t float64) float64 {
	return lo + t*(hi-lo)
}
