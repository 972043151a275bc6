package grass

import (
	"testing"
	"time"

	"relva/internal/core"
)

type fakeSurface struct {
	size     core.Size
	rebuilds int
	paints   int
	lines    int
	last     []Extent
}

func (s *fakeSurface) Size() core.Size { return s.size }

func (s *fakeSurface) Rebuild(lines []Line) {
	s.rebuilds++
	s.lines = len(lines)
}

func (s *fakeSurface) Paint(extents []Extent) {
	s.paints++
	s.last = extents
}

func TestMountWithoutSurfaceIsNoop(t *testing.T) {
	e := newTestEngine()
	var l *Loop = Mount(e, nil)
	if l != nil {
		t.Fatal("missing surface must not mount")
	}
	if l.Tick(time.Now()) || l.Resize() || l.Apply(CycleAccent{}) || l.Mounted() {
		t.Fatal("nil loop must ignore calls")
	}
	l.Close()
	if e.Generation() != 0 || e.Stats().Frames != 0 {
		t.Fatal("engine must not be touched without a surface")
	}
}

func TestMountGeneratesAndRebuilds(t *testing.T) {
	s := &fakeSurface{size: core.Size{W: 800, H: 600}}
	l := Mount(newTestEngine(), s)
	if s.rebuilds != 1 || s.lines != 100 {
		t.Fatalf("expected one rebuild of 100 lines, got %d of %d", s.rebuilds, s.lines)
	}

	now := time.Unix(50, 0)
	if !l.Tick(now) {
		t.Fatal("first tick must step")
	}
	if l.Tick(now.Add(time.Millisecond)) {
		t.Fatal("tick inside the frame interval must be throttled")
	}
	if s.paints != 1 || len(s.last) != 100 {
		t.Fatalf("expected one paint of 100 extents, got %d of %d", s.paints, len(s.last))
	}
}

func TestLoopResizeRebuildsOnChange(t *testing.T) {
	s := &fakeSurface{size: core.Size{W: 800, H: 600}}
	l := Mount(newTestEngine(), s)

	if l.Resize() {
		t.Fatal("unchanged size must not regenerate")
	}
	s.size = core.Size{W: 400, H: 600}
	if !l.Resize() {
		t.Fatal("changed size must regenerate")
	}
	if s.rebuilds != 2 || s.lines != 50 {
		t.Fatalf("expected rebuild to 50 lines, got %d rebuilds of %d", s.rebuilds, s.lines)
	}
}

func TestLoopApplyRepaints(t *testing.T) {
	s := &fakeSurface{size: core.Size{W: 160, H: 600}}
	l := Mount(newTestEngine(), s)
	if !l.Apply(CycleAccent{}) {
		t.Fatal("accent cycle must apply")
	}
	if s.paints != 1 || s.last[0].Color != l.Engine().Swatch().Accent {
		t.Fatal("accent change must repaint with the new colour")
	}
	if s.rebuilds != 1 {
		t.Fatal("accent change must not rebuild")
	}
}

func TestLoopCloseReleasesSurface(t *testing.T) {
	s := &fakeSurface{size: core.Size{W: 160, H: 600}}
	l := Mount(newTestEngine(), s)
	l.Close()
	s.size = core.Size{W: 320, H: 600}
	if l.Tick(time.Now()) || l.Resize() || l.Mounted() {
		t.Fatal("closed loop must not step or resize")
	}
	if s.paints != 0 || s.rebuilds != 1 {
		t.Fatal("closed loop must not touch the surface")
	}
}
