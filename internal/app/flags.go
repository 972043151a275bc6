package app

import (
	"flag"
	"fmt"
	"strings"

	"relva/internal/gate"
	"relva/internal/grass"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Width      int
	Height     int
	FPS        int
	Seed       int64
	Password   string
	Variant    string
	Background int
	HUD        bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    1280,
		Height:   720,
		FPS:      30,
		Seed:     2026,
		Password: gate.DefaultSecret,
		Variant:  grass.Breeze.Name,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.FPS, "fps", c.FPS, "animation frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for line generation and surges")
	fs.StringVar(&c.Password, "password", c.Password, "shared password for the landing gate")
	fs.StringVar(&c.Variant, "variant", c.Variant, "initial animation variant ("+strings.Join(variantNames(), ", ")+")")
	fs.IntVar(&c.Background, "background", c.Background, "initial background palette index")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel on start")
}

// Engine builds a grass engine tuned by the configuration.
func (c *Config) Engine() (*grass.Engine, error) {
	gc := grass.DefaultConfig()
	gc.TargetFPS = c.FPS
	gc.Seed = c.Seed
	e := grass.New(gc)

	idx := grass.IndexOf(e.Variants(), c.Variant)
	if idx < 0 {
		return nil, fmt.Errorf("unknown variant %q (have %s)", c.Variant, strings.Join(variantNames(), ", "))
	}
	e.SetVariant(idx)
	e.SetBackground(c.Background)
	return e, nil
}

func variantNames() []string {
	var names []string
	for _, v := range grass.Variants() {
		names = append(names, v.Name)
	}
	return names
}
