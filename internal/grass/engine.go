package grass

import (
	"relva/internal/core"
)

// Stats counts engine activity since construction.
type Stats struct {
	Frames uint64
	Surges uint64
}

// Engine owns the grass field and animates it one frame per Step. It is not
// safe for concurrent use; hosts drive it from their single frame loop.
type Engine struct {
	cfg Config
	rng *core.RNG

	variant    int
	background int

	size       core.Size
	lines      []Line
	extents    []Extent
	waveClock  float64
	generation uint64

	stats Stats
}

// New constructs an engine with an empty field. Call Generate or apply a
// Resize before stepping.
func New(cfg Config) *Engine {
	cfg = cfg.normalized()
	return &Engine{
		cfg:     cfg,
		rng:     core.NewRNG(cfg.Seed),
		lines:   []Line{},
		extents: []Extent{},
	}
}

// Config returns the normalized engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Generate replaces the whole field with lines for the given viewport. Line
// identity is not preserved.
func (e *Engine) Generate(width, height float64) {
	e.size = core.Size{W: width, H: height}
	e.lines = e.generateLines(width, e.Swatch().Accent)
	e.extents = make([]Extent, len(e.lines))
	for i := range e.lines {
		e.extents[i] = e.extent(i, 0, 0, 0)
	}
	e.generation++
}

// Step advances the field by one processed frame under the active variant and
// returns the extents to render. The returned slice is owned by the engine
// and is overwritten by the next call.
func (e *Engine) Step() []Extent {
	e.waveClock += e.cfg.WaveStep
	e.stats.Frames++
	e.Variant().Behavior.step(e)
	return e.extents
}

// Lines exposes the current field.
func (e *Engine) Lines() []Line { return e.lines }

// Extents exposes the extents produced by the last Step.
func (e *Engine) Extents() []Extent { return e.extents }

// Size reports the viewport of the current field.
func (e *Engine) Size() core.Size { return e.size }

// Generation increments on every field regeneration.
func (e *Engine) Generation() uint64 { return e.generation }

// WaveClock reports the shared traveling-wave clock.
func (e *Engine) WaveClock() float64 { return e.waveClock }

// Stats reports frame and surge counters.
func (e *Engine) Stats() Stats { return e.stats }

// Variants lists the selectable presets.
func (e *Engine) Variants() []Variant { return e.cfg.Variants }

// Variant returns the active preset.
func (e *Engine) Variant() Variant { return e.cfg.Variants[e.variant] }

// VariantIndex returns the position of the active preset.
func (e *Engine) VariantIndex() int { return e.variant }

// SetVariant selects a preset; the index wraps around the preset count. The
// field is left untouched.
func (e *Engine) SetVariant(i int) {
	e.variant = wrap(i, len(e.cfg.Variants))
}

// Palette lists the selectable backgrounds.
func (e *Engine) Palette() Palette { return e.cfg.Palette }

// Swatch returns the active background/accent pair.
func (e *Engine) Swatch() Swatch { return e.cfg.Palette[e.background] }

// BackgroundIndex returns the position of the active swatch.
func (e *Engine) BackgroundIndex() int { return e.background }

// SetBackground selects a swatch, wrapping the index, and relabels every
// line carrying the previous accent with the new one.
func (e *Engine) SetBackground(i int) {
	old := e.Swatch().Accent
	e.background = wrap(i, len(e.cfg.Palette))
	accent := e.Swatch().Accent
	if accent == old {
		return
	}
	for idx := range e.lines {
		if e.lines[idx].Color != old {
			continue
		}
		e.lines[idx].Color = accent
		if idx < len(e.extents) {
			e.extents[idx].Color = accent
		}
	}
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i%n + n) % n
}
