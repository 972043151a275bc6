package grass

import (
	"testing"

	"relva/internal/core"
)

func TestCycleVariantWrapsAround(t *testing.T) {
	e := newTestEngine()
	e.Generate(800, 600)
	start := e.VariantIndex()
	n := len(e.Variants())
	if n < 2 {
		t.Fatalf("expected several presets, got %d", n)
	}
	for i := 0; i < n; i++ {
		if !e.Apply(CycleVariant{X: 400, Y: 100}) {
			t.Fatalf("click %d outside the exclusion zone must cycle", i)
		}
	}
	if e.VariantIndex() != start {
		t.Fatalf("expected to return to variant %d, got %d", start, e.VariantIndex())
	}
}

func TestCycleVariantKeepsField(t *testing.T) {
	e := newTestEngine()
	e.Generate(800, 600)
	lines := e.Lines()
	gen := e.Generation()
	e.Apply(CycleVariant{X: 400, Y: 100})
	if e.Generation() != gen || &e.Lines()[0] != &lines[0] {
		t.Fatal("switching variants must not regenerate the field")
	}
}

func TestCycleVariantIgnoresExclusionZone(t *testing.T) {
	e := newTestEngine()
	e.Generate(800, 600)
	cfg := e.Config()

	cases := []struct {
		name   string
		ev     CycleVariant
		cycles bool
	}{
		{"bottom-left corner", CycleVariant{X: 5, Y: 595}, false},
		{"zone inner edge", CycleVariant{X: cfg.ExclusionW - 1, Y: 600 - cfg.ExclusionH}, false},
		{"right of zone", CycleVariant{X: cfg.ExclusionW, Y: 595}, true},
		{"above zone", CycleVariant{X: 5, Y: 600 - cfg.ExclusionH - 1}, true},
		{"target bounds offset", CycleVariant{X: 105, Y: 695, Bounds: core.Rect{X: 100, Y: 100, W: 800, H: 600}}, false},
		{"outside offset zone", CycleVariant{X: 5, Y: 595, Bounds: core.Rect{X: 100, Y: 100, W: 800, H: 600}}, true},
	}
	for _, tc := range cases {
		before := e.VariantIndex()
		changed := e.Apply(tc.ev)
		if changed != tc.cycles || (e.VariantIndex() != before) != tc.cycles {
			t.Fatalf("%s: expected cycle=%v, got changed=%v index %d->%d", tc.name, tc.cycles, changed, before, e.VariantIndex())
		}
	}
}

func TestCycleAccentRelabelsLines(t *testing.T) {
	e := newTestEngine()
	e.Generate(800, 600)
	e.Step()
	old := e.Swatch().Accent
	gen := e.Generation()

	e.Apply(CycleAccent{})

	accent := e.Swatch().Accent
	if accent == old {
		t.Fatal("default palette must use distinct accents")
	}
	if e.Generation() != gen {
		t.Fatal("accent change must not regenerate the field")
	}
	for i, l := range e.Lines() {
		if l.Color == old {
			t.Fatalf("line %d kept the old accent", i)
		}
		if i%2 == 0 && l.Color != accent {
			t.Fatalf("accent line %d not relabelled", i)
		}
		if i%2 == 1 && l.Color != White {
			t.Fatalf("white line %d changed colour", i)
		}
		if e.Extents()[i].Color != l.Color {
			t.Fatalf("extent %d colour not updated", i)
		}
	}
}

func TestCycleAccentWrapsAround(t *testing.T) {
	e := newTestEngine()
	e.Generate(160, 600)
	start := e.Swatch()
	for i := 0; i < len(e.Palette()); i++ {
		e.Apply(CycleAccent{})
	}
	if e.Swatch() != start {
		t.Fatalf("expected swatch %q after a full cycle, got %q", start.Name, e.Swatch().Name)
	}
	if e.Lines()[0].Color != start.Accent {
		t.Fatal("lines must carry the original accent again")
	}
}

func TestResizeUsesCurrentAccent(t *testing.T) {
	e := newTestEngine()
	e.Generate(160, 600)
	e.Apply(CycleAccent{})
	e.Apply(Resize{W: 320, H: 480})
	if got := len(e.Lines()); got != 40 {
		t.Fatalf("expected 40 lines, got %d", got)
	}
	if e.Lines()[0].Color != e.Swatch().Accent {
		t.Fatal("regenerated field must use the active accent")
	}
	if e.Size() != (core.Size{W: 320, H: 480}) {
		t.Fatalf("unexpected size %+v", e.Size())
	}
}

func TestSetIntParameter(t *testing.T) {
	e := newTestEngine()
	e.Generate(160, 600)
	if !e.SetIntParameter(ParamVariant, -1) {
		t.Fatal("variant must be settable")
	}
	if e.VariantIndex() != len(e.Variants())-1 {
		t.Fatalf("negative index must wrap, got %d", e.VariantIndex())
	}
	if !e.SetIntParameter(ParamBackground, 1) || e.BackgroundIndex() != 1 {
		t.Fatal("background must be settable")
	}
	if e.SetIntParameter("density", 4) {
		t.Fatal("unknown keys must be rejected")
	}

	p, ok := e.Parameters().Lookup("variant_name")
	if !ok || p.Value != e.Variant().Name {
		t.Fatalf("snapshot must report the active variant, got %+v", p)
	}
}
