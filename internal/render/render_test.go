package render

import (
	"image/color"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"relva/internal/grass"
)

func TestRGBAFromHex(t *testing.T) {
	c, err := colorful.Hex("#63c34a")
	if err != nil {
		t.Fatal(err)
	}
	if got := RGBA(c); got != (color.RGBA{R: 0x63, G: 0xc3, B: 0x4a, A: 255}) {
		t.Fatalf("unexpected conversion %+v", got)
	}
}

func TestFadePremultiplies(t *testing.T) {
	got := Fade(grass.White, 0.5)
	if got.A != 128 || got.R != 128 {
		t.Fatalf("expected half-alpha premultiplied white, got %+v", got)
	}
	if Fade(grass.White, 2).A != 255 {
		t.Fatal("alpha must clamp")
	}
}

func TestSegmentsMirrorField(t *testing.T) {
	e := grass.New(grass.DefaultConfig())
	s := &Segments{}
	s.SetSize(800, 600)
	l := grass.Mount(e, s)
	if s.Len() != 100 {
		t.Fatalf("expected 100 slots, got %d", s.Len())
	}
	e.Step()
	s.Paint(e.Extents())
	for i, x := range e.Extents() {
		slot := s.slots[i]
		if slot.top != float32(x.Top) || slot.bottom != float32(x.Bottom) {
			t.Fatalf("slot %d not painted", i)
		}
	}

	s.SetSize(160, 600)
	l.Resize()
	if s.Len() != 20 {
		t.Fatalf("expected slots rebuilt to 20, got %d", s.Len())
	}

	s.Paint([]grass.Extent{{Index: 99, Top: 1, Bottom: 2}})
	if s.Len() != 20 {
		t.Fatal("stale extents must not grow the slot table")
	}
}
