package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"relva/internal/core"
	"relva/internal/grass"
)

// Engine units covered by one terminal cell. Cells are roughly twice as
// tall as they are wide, and the field places one line every 8 units.
const (
	cellW = 8.0
	cellH = 16.0
)

type column struct {
	top    float64
	bottom float64
	color  colorful.Color
}

// surface is a grass.Surface that rasterizes lines onto a character grid.
type surface struct {
	cols, rows int
	columns    []column
	springs    springField
	fps        int
}

func newSurface(fps int) *surface {
	return &surface{fps: fps, springs: newSpringField(fps, 7, 0.85)}
}

// SetGrid sets the terminal cell dimensions of the drawing area.
func (s *surface) SetGrid(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.cols, s.rows = cols, rows
}

// Size implements grass.Surface.
func (s *surface) Size() core.Size {
	return core.Size{W: float64(s.cols) * cellW, H: float64(s.rows) * cellH}
}

// ToEngine maps a cell to the engine coordinates of its centre.
func (s *surface) ToEngine(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * cellW, (float64(row) + 0.5) * cellH
}

// Rebuild implements grass.Surface.
func (s *surface) Rebuild(lines []grass.Line) {
	s.columns = make([]column, len(lines))
	for i, l := range lines {
		s.columns[i] = column{color: l.Color}
	}
	s.springs.reset(len(lines))
}

// Paint implements grass.Surface.
func (s *surface) Paint(extents []grass.Extent) {
	for _, x := range extents {
		if x.Index < 0 || x.Index >= len(s.columns) {
			continue
		}
		h := s.springs.step(x.Index, x.Height())
		if h < 0 {
			h = 0
		}
		c := &s.columns[x.Index]
		c.bottom = x.Bottom
		c.top = x.Bottom - h
		c.color = x.Color
	}
}

// glyph picks the character for column c in row r, or 0 when empty.
func (c column) glyph(r int) rune {
	cellTop := float64(r) * cellH
	cellBottom := cellTop + cellH
	if c.bottom <= c.top || c.top >= cellBottom || c.bottom <= cellTop {
		return 0
	}
	top := c.top > cellTop+cellH/2
	bottom := c.bottom < cellTop+cellH/2
	switch {
	case top && bottom:
		return 0
	case top:
		return '╻'
	case bottom:
		return '╹'
	default:
		return '┃'
	}
}

// Rows renders the grid, one string per row, over the given background.
func (s *surface) Rows(bg colorful.Color) []string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex()))
	out := make([]string, s.rows)
	cells := make([]rune, s.cols)
	colors := make([]colorful.Color, s.cols)
	for r := 0; r < s.rows; r++ {
		for c := range cells {
			cells[c] = ' '
			colors[c] = bg
		}
		for i := range s.columns {
			col := s.columnOf(i)
			if col < 0 || col >= s.cols {
				continue
			}
			if g := s.columns[i].glyph(r); g != 0 {
				cells[col] = g
				colors[col] = s.columns[i].color
			}
		}
		out[r] = renderRuns(base, cells, colors)
	}
	return out
}

func (s *surface) columnOf(i int) int {
	if len(s.columns) == 0 || s.cols == 0 {
		return -1
	}
	return i * s.cols / len(s.columns)
}

// renderRuns styles consecutive cells of the same colour together.
func renderRuns(base lipgloss.Style, cells []rune, colors []colorful.Color) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && colors[i] == colors[start] {
			continue
		}
		style := base.Foreground(lipgloss.Color(colors[start].Hex()))
		b.WriteString(style.Render(string(cells[start:i])))
		start = i
	}
	return b.String()
}
