package render

import (
	"image/color"

	"relva/internal/core"
	"relva/internal/grass"
)

// segment mirrors one grass line.
type segment struct {
	x      float32
	width  float32
	top    float32
	bottom float32
	col    color.RGBA
}

// Segments is the host-independent part of the line renderer: one slot per
// line, rebuilt wholesale when the field is regenerated. It implements
// grass.Surface once a host supplies the viewport with SetSize.
type Segments struct {
	size  core.Size
	slots []segment
}

// SetSize records the viewport the host is laying out.
func (s *Segments) SetSize(w, h float64) { s.size = core.Size{W: w, H: h} }

// Size implements grass.Surface.
func (s *Segments) Size() core.Size { return s.size }

// Rebuild implements grass.Surface. All previous slots are dropped.
func (s *Segments) Rebuild(lines []grass.Line) {
	s.slots = make([]segment, len(lines))
	for i, l := range lines {
		s.slots[i] = segment{
			x:     float32(l.X),
			width: float32(l.StrokeWidth),
			col:   RGBA(l.Color),
		}
	}
}

// Paint implements grass.Surface. Extents whose index has no slot are
// ignored.
func (s *Segments) Paint(extents []grass.Extent) {
	for _, x := range extents {
		if x.Index < 0 || x.Index >= len(s.slots) {
			continue
		}
		slot := &s.slots[x.Index]
		slot.top = float32(x.Top)
		slot.bottom = float32(x.Bottom)
		slot.col = RGBA(x.Color)
	}
}

// Len reports the number of slots.
func (s *Segments) Len() int { return len(s.slots) }
