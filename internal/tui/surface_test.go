package tui

import (
	"testing"
	"time"

	"relva/internal/grass"
)

func TestSurfaceSizeFollowsGrid(t *testing.T) {
	s := newSurface(30)
	s.SetGrid(80, 24)
	size := s.Size()
	if size.W != 640 || size.H != 384 {
		t.Fatalf("unexpected size %+v", size)
	}
	x, y := s.ToEngine(0, 0)
	if x != 4 || y != 8 {
		t.Fatalf("cell centre mapped to (%f,%f)", x, y)
	}
}

func TestColumnGlyphs(t *testing.T) {
	c := column{top: 40, bottom: 70}
	cases := []struct {
		row  int
		want rune
	}{
		{1, 0},   // 16-32, above the line
		{2, '┃'}, // 32-48, top at 40 is in the upper half
		{3, '┃'}, // 48-64
		{4, '╹'}, // 64-80, bottom at 70 is in the upper half
		{5, 0},   // below
	}
	for _, tc := range cases {
		if got := c.glyph(tc.row); got != tc.want {
			t.Fatalf("row %d: expected %q, got %q", tc.row, tc.want, got)
		}
	}
	if (column{top: 20, bottom: 20}).glyph(1) != 0 {
		t.Fatal("empty segment must not draw")
	}
	if (column{top: 58, bottom: 80}).glyph(3) != '╻' {
		t.Fatal("top in the lower half must draw a half glyph")
	}
}

func TestSurfaceRowsAfterMount(t *testing.T) {
	e := grass.New(grass.DefaultConfig())
	s := newSurface(30)
	s.SetGrid(40, 12)
	l := grass.Mount(e, s)
	for i := 0; i < 30; i++ {
		l.Tick(timeAt(i))
	}
	rows := s.Rows(e.Swatch().Background)
	if len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}
	if len(s.columns) != 40 {
		t.Fatalf("expected 40 columns, got %d", len(s.columns))
	}
	for i, c := range s.columns {
		if c.top > c.bottom {
			t.Fatalf("column %d inverted: %+v", i, c)
		}
	}
}

func timeAt(frame int) time.Time {
	return time.Unix(0, 0).Add(time.Duration(frame) * time.Second)
}
