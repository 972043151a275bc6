package core

// Size describes the dimensions of a viewport in logical units.
type Size struct {
	W float64
	H float64
}

// Empty reports whether the size has no drawable area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether the point lies inside the rectangle. The right and
// bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bounds returns a rectangle at the origin covering the size.
func (s Size) Bounds() Rect { return Rect{W: s.W, H: s.H} }
