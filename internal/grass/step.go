package grass

import "math"

// surgeTrough is the stretch factor below which a line may start a surge.
const surgeTrough = 0.1

func (o Oscillation) step(e *Engine) {
	chance := e.surgeChance(o.SurgeProbability)
	for i := range e.lines {
		l := &e.lines[i]

		if !l.Surging && chance > 0 && stretchFactor(l.Phase) < surgeTrough && e.rng.Chance(chance) {
			l.Phase = -math.Pi / 2
			l.SurgeStart = l.Phase
			l.Surging = true
			e.stats.Surges++
		}

		speedMul, stretchMul := o.SpeedMultiplier, o.MaxStretchMultiplier
		if l.Surging {
			speedMul, stretchMul = o.SurgeSpeedMultiplier, o.SurgeStretchMultiplier
		}

		l.Phase += l.Speed * e.cfg.FrameStep * speedMul
		if l.Surging && l.Phase-l.SurgeStart >= 2*math.Pi {
			l.Surging = false
		}

		amp := math.Max(l.MaxStretch, o.MinLineAmplitude)
		stretch := lerp(amp*o.MinStretchMultiplier, amp*stretchMul, stretchFactor(l.Phase))
		e.extents[i] = e.extent(i, stretch, o.MinHeight, o.AccentOffset)
	}
}

func (w TravelingWave) step(e *Engine) {
	n := len(e.lines)
	if n == 0 {
		return
	}
	k := w.waveNumber(n)
	lo, hi := w.Amplitude*w.MinStretchMultiplier, w.Amplitude*w.maxMultiplier(e.size.W)
	for i := range e.lines {
		sf := w.factor(i, k, e.waveClock, e.lines[i].Accent)
		e.extents[i] = e.extent(i, lerp(lo, hi, sf), w.MinHeight, w.AccentOffset)
	}
}

// waveNumber spaces n lines so that WaveCount full periods fit across them.
func (w TravelingWave) waveNumber(n int) float64 {
	if n == 0 {
		return 0
	}
	return 2 * math.Pi * w.WaveCount / float64(n)
}

func (w TravelingWave) maxMultiplier(width float64) float64 {
	if w.NarrowBreakpoint > 0 && width < w.NarrowBreakpoint {
		return w.NarrowMaxStretchMultiplier
	}
	return w.MaxStretchMultiplier
}

// factor is the stretch factor of line i at the given clock. Accent lines
// travel at WaveSpeed shifted by ColorPhaseOffset; white lines lag at
// WaveSpeed*SecondaryRatio.
func (w TravelingWave) factor(i int, k, clock float64, accent bool) float64 {
	speed, offset := w.WaveSpeed*w.SecondaryRatio, 0.0
	if accent {
		speed, offset = w.WaveSpeed, w.ColorPhaseOffset
	}
	return stretchFactor(float64(i)*k - clock*speed + offset)
}

// extent places line i with the given stretch (a fraction of the animation
// zone) above the baseline at two thirds of the viewport height.
func (e *Engine) extent(i int, stretch, minHeight, accentOffset float64) Extent {
	l := &e.lines[i]
	bottom := e.size.H * 2 / 3
	if l.Accent {
		bottom += accentOffset
	}
	top := bottom - stretch*(e.size.H/3)
	if minHeight > 0 && bottom-top < minHeight {
		top = bottom - minHeight
	}
	return Extent{
		Index:       i,
		X:           l.X,
		Top:         top,
		Bottom:      bottom,
		Color:       l.Color,
		StrokeWidth: l.StrokeWidth,
	}
}

// surgeChance converts a per-frame probability expressed at ReferenceFPS to
// the configured target rate so surges per second do not depend on it.
func (e *Engine) surgeChance(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if e.cfg.TargetFPS == e.cfg.ReferenceFPS {
		return p
	}
	return 1 - math.Pow(1-p, float64(e.cfg.ReferenceFPS)/float64(e.cfg.TargetFPS))
}
