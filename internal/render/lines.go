//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// LinePainter draws the grass field as round-capped stroked segments over a
// solid background.
type LinePainter struct {
	Segments
	background colorful.Color
}

// NewLinePainter allocates an empty painter.
func NewLinePainter() *LinePainter {
	return &LinePainter{}
}

// SetBackground changes the fill colour drawn under the lines.
func (p *LinePainter) SetBackground(c colorful.Color) { p.background = c }

// Draw renders the current slots onto dst.
func (p *LinePainter) Draw(dst *ebiten.Image) {
	dst.Fill(RGBA(p.background))
	for i := range p.slots {
		s := &p.slots[i]
		if s.bottom <= s.top {
			continue
		}
		vector.StrokeLine(dst, s.x, s.bottom, s.x, s.top, s.width, s.col, true)
		r := s.width / 2
		vector.DrawFilledCircle(dst, s.x, s.top, r, s.col, true)
		vector.DrawFilledCircle(dst, s.x, s.bottom, r, s.col, true)
	}
}
