//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"relva/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel along the right edge of the field.
type HUD struct {
	source     parameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls []hudControlState
	setter   core.IntParameterSetter
	offsetX  int
	visible  bool
}

// NewHUD constructs a HUD for the provided parameter source and panel width.
func NewHUD(source parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{source: source, width: width}
	if provider, ok := source.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl})
		}
	}
	if setter, ok := source.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Visible reports whether the panel is shown.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// SetVisible shows or hides the panel.
func (h *HUD) SetVisible(v bool) {
	if h != nil {
		h.visible = v
	}
}

// Update refreshes the snapshot and handles clicks on the panel. It reports
// whether the current click landed on the panel.
func (h *HUD) Update(screenWidth int) bool {
	if h == nil || !h.visible || h.width <= 0 {
		return false
	}
	h.offsetX = screenWidth - h.width
	h.snapshot = h.source.Parameters()
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 10, G: 14, B: 12, A: 210})
	h.layoutControls()
	h.drawContent()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			continue
		}
		state.value = parsed
		state.hasValue = true
	}
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return false
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue || h.setter == nil {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.setter.SetIntParameter(state.control.Key, state.value-1)
			return true
		}
		if pointInRect(px, my, state.plusRect) {
			h.setter.SetIntParameter(state.control.Key, state.value+1)
			return true
		}
	}
	return true
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := panelPadding + headerBaseline + 8 + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func (h *HUD) drawContent() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Grass", face, panelPadding, panelPadding+headerBaseline, colorTitle)

	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, colorLabel)
		value := "--"
		if state.hasValue {
			value = strconv.Itoa(state.value)
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, state.minusRect.Min.X-buttonGap-w, y, colorLabel)
		h.drawButton(state.minusRect, "-", state.hasValue)
		h.drawButton(state.plusRect, "+", state.hasValue)
	}

	y := panelPadding + headerBaseline + 8 + len(h.controls)*lineHeight + groupSpacing
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, colorTitle)
		y += rowHeight
		for _, p := range group.Params {
			if p.Type == core.ParamTypeInt && h.isControl(p.Key) {
				continue
			}
			text.Draw(h.panel, p.Label, face, panelPadding, y, colorMuted)
			value := p.Value
			if p.Type == core.ParamTypeFloat {
				if f, err := strconv.ParseFloat(value, 64); err == nil {
					value = strconv.FormatFloat(f, 'f', 3, 64)
				}
			}
			w := text.BoundString(face, value).Dx()
			text.Draw(h.panel, value, face, h.width-panelPadding-w, y, colorLabel)
			y += rowHeight
		}
		y += groupSpacing
	}
}

func (h *HUD) isControl(key string) bool {
	for _, c := range h.controls {
		if c.control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 60, B: 56, A: 255}
	fg := colorTitle
	if !enabled {
		bg = color.RGBA{R: 32, G: 36, B: 34, A: 255}
		fg = colorMuted
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	colorTitle = color.RGBA{R: 230, G: 236, B: 232, A: 255}
	colorLabel = color.RGBA{R: 210, G: 218, B: 212, A: 255}
	colorMuted = color.RGBA{R: 140, G: 150, B: 144, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	rowHeight      = 16
	groupSpacing   = 10
)
