package app

import (
	"flag"
	"testing"

	"relva/internal/core"
	"relva/internal/grass"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("relva", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-variant", "tide", "-background", "2", "-fps", "24", "-hud"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != "tide" || cfg.Background != 2 || cfg.FPS != 24 || !cfg.HUD {
		t.Fatalf("flags not applied: %+v", cfg)
	}

	e, err := cfg.Engine()
	if err != nil {
		t.Fatal(err)
	}
	if e.Variant().Name != "tide" || e.BackgroundIndex() != 2 || e.Config().TargetFPS != 24 {
		t.Fatalf("engine not configured: %s %d %d", e.Variant().Name, e.BackgroundIndex(), e.Config().TargetFPS)
	}
}

func TestConfigRejectsUnknownVariant(t *testing.T) {
	cfg := NewConfig()
	cfg.Variant = "hurricane"
	if _, err := cfg.Engine(); err == nil {
		t.Fatal("expected an error for an unknown variant")
	}
}

func TestLogoRectCentred(t *testing.T) {
	size := core.Size{W: 1000, H: 700}
	r := LogoRect(size)
	if r.X+r.W/2 != 500 {
		t.Fatalf("logo not centred: %+v", r)
	}
	e := grass.New(grass.DefaultConfig())
	e.Generate(size.W, size.H)
	zone := e.ExclusionZone(size.Bounds())
	if zone.Contains(r.X, r.Y) || zone.Contains(r.X+r.W-1, r.Y+r.H-1) {
		t.Fatal("logo must not overlap the exclusion zone")
	}
}
