package grass

import (
	"time"

	"relva/internal/core"
)

// Surface is the render target a Loop drives.
type Surface interface {
	// Size reports the current viewport.
	Size() core.Size
	// Rebuild clears all per-line render state and recreates it for lines.
	Rebuild(lines []Line)
	// Paint applies one frame of extents.
	Paint(extents []Extent)
}

// Loop binds an engine to a surface and throttles stepping to the target
// frame rate. A nil *Loop is valid and does nothing.
type Loop struct {
	engine     *Engine
	surface    Surface
	throttle   *core.FrameThrottle
	size       core.Size
	generation uint64
}

// Mount generates a field sized to the surface and returns the loop driving
// it. When either the engine or the surface is missing nothing is set up and
// nil is returned.
func Mount(e *Engine, s Surface) *Loop {
	if e == nil || s == nil {
		return nil
	}
	l := &Loop{
		engine:   e,
		surface:  s,
		throttle: core.NewFrameThrottle(e.cfg.TargetFPS),
		size:     s.Size(),
	}
	e.Apply(Resize{W: l.size.W, H: l.size.H})
	l.sync()
	return l
}

// Engine returns the mounted engine.
func (l *Loop) Engine() *Engine {
	if l == nil {
		return nil
	}
	return l.engine
}

// Mounted reports whether the loop still owns a surface.
func (l *Loop) Mounted() bool { return l != nil && l.surface != nil }

// Tick is called on every display refresh. It steps and paints at most once
// per frame interval and reports whether it did.
func (l *Loop) Tick(now time.Time) bool {
	if !l.Mounted() {
		return false
	}
	if !l.throttle.Ready(now) {
		return false
	}
	extents := l.engine.Step()
	l.surface.Paint(extents)
	return true
}

// Resize re-reads the surface size and regenerates the field when it
// changed.
func (l *Loop) Resize() bool {
	if !l.Mounted() {
		return false
	}
	size := l.surface.Size()
	if size == l.size {
		return false
	}
	l.size = size
	l.engine.Apply(Resize{W: size.W, H: size.H})
	l.sync()
	return true
}

// Apply forwards an interaction to the engine and repaints immediately so
// colour changes do not wait for the next frame.
func (l *Loop) Apply(ev Interaction) bool {
	if !l.Mounted() {
		return false
	}
	if !l.engine.Apply(ev) {
		return false
	}
	l.sync()
	l.surface.Paint(l.engine.Extents())
	return true
}

// Close releases the surface. Later calls to Tick, Resize and Apply are
// no-ops.
func (l *Loop) Close() {
	if l == nil {
		return
	}
	l.surface = nil
	l.throttle.Reset()
}

func (l *Loop) sync() {
	if g := l.engine.Generation(); g != l.generation {
		l.generation = g
		l.surface.Rebuild(l.engine.Lines())
	}
}
