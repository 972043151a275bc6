package grass

import (
	"context"
	"math"
)

// Measurement summarizes a headless run of one variant.
type Measurement struct {
	Variant string
	Mode    string
	Lines   int
	Frames  int
	Surges  uint64
	// SurgesPerLineSecond is the surge rate per line at the target FPS.
	SurgesPerLineSecond float64
	MeanStretch         float64
	PeakStretch         float64
}

// Measure runs variant v on a fresh engine for the given number of frames
// and reports stretch and surge statistics. Stretch is the visible height as
// a fraction of the animation zone.
func Measure(ctx context.Context, cfg Config, v Variant, width, height float64, frames int) (Measurement, error) {
	cfg.Variants = []Variant{v}
	e := New(cfg)
	e.Generate(width, height)

	m := Measurement{Variant: v.Name, Mode: v.Behavior.Mode(), Lines: len(e.lines)}
	zone := height / 3
	if zone <= 0 || len(e.lines) == 0 {
		return m, nil
	}
	var sum float64
	for f := 0; f < frames; f++ {
		if f%256 == 0 {
			if err := ctx.Err(); err != nil {
				return m, err
			}
		}
		for _, x := range e.Step() {
			s := x.Height() / zone
			sum += s
			m.PeakStretch = math.Max(m.PeakStretch, s)
		}
		m.Frames++
	}
	m.Surges = e.stats.Surges
	if m.Frames > 0 {
		samples := float64(m.Frames * len(e.lines))
		m.MeanStretch = sum / samples
		seconds := float64(m.Frames) / float64(e.cfg.TargetFPS)
		m.SurgesPerLineSecond = float64(m.Surges) / float64(len(e.lines)) / seconds
	}
	return m, nil
}
