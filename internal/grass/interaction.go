package grass

import "relva/internal/core"

// Interaction is a discrete input event accepted by Engine.Apply.
type Interaction interface {
	interaction()
}

// CycleVariant advances to the next variant. X and Y are the activation
// point in screen coordinates and Bounds is the clicked target; a zero
// Bounds means the whole viewport.
type CycleVariant struct {
	X, Y   float64
	Bounds core.Rect
}

// CycleAccent advances to the next background/accent swatch.
type CycleAccent struct{}

// Resize regenerates the field for a new viewport.
type Resize struct {
	W, H float64
}

func (CycleVariant) interaction() {}
func (CycleAccent) interaction()  {}
func (Resize) interaction()       {}

// Apply handles an interaction and reports whether engine state changed.
func (e *Engine) Apply(ev Interaction) bool {
	switch ev := ev.(type) {
	case CycleVariant:
		bounds := ev.Bounds
		if bounds.W <= 0 || bounds.H <= 0 {
			bounds = e.size.Bounds()
		}
		if e.ExclusionZone(bounds).Contains(ev.X, ev.Y) {
			return false
		}
		e.SetVariant(e.variant + 1)
		return true
	case CycleAccent:
		e.SetBackground(e.background + 1)
		return true
	case Resize:
		e.Generate(ev.W, ev.H)
		return true
	default:
		return false
	}
}

// ExclusionZone returns the bottom-left corner of bounds that is reserved
// for another click target.
func (e *Engine) ExclusionZone(bounds core.Rect) core.Rect {
	w, h := e.cfg.ExclusionW, e.cfg.ExclusionH
	if w > bounds.W {
		w = bounds.W
	}
	if h > bounds.H {
		h = bounds.H
	}
	return core.Rect{X: bounds.X, Y: bounds.Y + bounds.H - h, W: w, H: h}
}
