package grass

// Config holds the tuning constants of the grass engine.
type Config struct {
	// TargetFPS is the rate the host loop throttles Step to.
	TargetFPS int
	// ReferenceFPS is the rate surge probabilities are expressed at.
	ReferenceFPS int
	// FrameStep is the phase advance per processed frame for a line of speed 1.
	FrameStep float64
	// WaveStep is the wave clock advance per processed frame.
	WaveStep float64
	// Density is the horizontal spacing between lines.
	Density float64

	AccentStroke float64
	WhiteStroke  float64

	// ExclusionW and ExclusionH size the bottom-left corner that does not
	// cycle variants when clicked.
	ExclusionW float64
	ExclusionH float64

	Seed int64

	Variants []Variant
	Palette  Palette
}

// DefaultConfig returns the standard configuration with the registered
// variant presets and the default palette.
func DefaultConfig() Config {
	return Config{
		TargetFPS:    30,
		ReferenceFPS: 60,
		FrameStep:    0.03,
		WaveStep:     0.02,
		Density:      8,
		AccentStroke: 2.5,
		WhiteStroke:  2,
		ExclusionW:   220,
		ExclusionH:   110,
		Seed:         2026,
		Variants:     Variants(),
		Palette:      DefaultPalette(),
	}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.TargetFPS <= 0 {
		c.TargetFPS = def.TargetFPS
	}
	if c.ReferenceFPS <= 0 {
		c.ReferenceFPS = def.ReferenceFPS
	}
	if c.FrameStep <= 0 {
		c.FrameStep = def.FrameStep
	}
	if c.WaveStep <= 0 {
		c.WaveStep = def.WaveStep
	}
	if c.Density <= 0 {
		c.Density = def.Density
	}
	if c.AccentStroke <= 0 {
		c.AccentStroke = def.AccentStroke
	}
	if c.WhiteStroke <= 0 {
		c.WhiteStroke = def.WhiteStroke
	}
	if len(c.Variants) == 0 {
		c.Variants = def.Variants
	}
	if len(c.Variants) == 0 {
		c.Variants = []Variant{Breeze}
	}
	if len(c.Palette) == 0 {
		c.Palette = def.Palette
	}
	return c
}
