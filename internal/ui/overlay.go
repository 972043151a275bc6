//go:build ebiten

package ui

import (
	"image/color"

	"relva/internal/core"
	"relva/internal/grass"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging guides on top of the field.
type Overlay struct {
	engine     *grass.Engine
	showZone   bool
	showTarget bool
	targets    []core.Rect
}

// NewOverlay constructs an overlay for the engine. targets are extra click
// areas (logos) outlined alongside the exclusion zone.
func NewOverlay(engine *grass.Engine, targets ...core.Rect) *Overlay {
	return &Overlay{engine: engine, targets: targets}
}

// SetTargets replaces the outlined click areas.
func (o *Overlay) SetTargets(targets ...core.Rect) { o.targets = targets }

// Update toggles guides from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showZone = !o.showZone
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showTarget = !o.showTarget
	}
}

// Draw renders the enabled guides onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.engine.Size()
	if size.Empty() {
		return
	}
	w := float32(size.W)
	if o.showZone {
		baseline := float32(size.H * 2 / 3)
		ceiling := float32(size.H / 3)
		vector.StrokeLine(screen, 0, baseline, w, baseline, 1, guideBaseline, false)
		vector.StrokeLine(screen, 0, ceiling, w, ceiling, 1, guideCeiling, false)
		vector.DrawFilledRect(screen, 0, ceiling, w, baseline-ceiling, guideZoneFill, false)
	}
	if o.showTarget {
		zone := o.engine.ExclusionZone(size.Bounds())
		drawRect(screen, zone, guideExclusion)
		for _, r := range o.targets {
			drawRect(screen, r, guideTarget)
		}
	}
}

func drawRect(screen *ebiten.Image, r core.Rect, col color.NRGBA) {
	fill := col
	fill.A /= 4
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, col, false)
}

var (
	guideBaseline  = color.NRGBA{R: 255, G: 210, B: 80, A: 200}
	guideCeiling   = color.NRGBA{R: 120, G: 200, B: 255, A: 160}
	guideZoneFill  = color.NRGBA{R: 12, G: 24, B: 32, A: 40}
	guideExclusion = color.NRGBA{R: 255, G: 90, B: 70, A: 220}
	guideTarget    = color.NRGBA{R: 90, G: 255, B: 140, A: 220}
)
