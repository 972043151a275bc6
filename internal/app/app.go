//go:build ebiten

package app

import (
	"image/color"
	"log"
	"strings"
	"time"

	"relva/internal/content"
	"relva/internal/core"
	"relva/internal/gate"
	"relva/internal/grass"
	"relva/internal/render"
	"relva/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"
)

const hudWidth = 240

// Game adapts the grass engine and the surrounding pages to the ebiten.Game
// interface.
type Game struct {
	session *gate.Session
	engine  *grass.Engine
	painter *render.LinePainter
	loop    *grass.Loop
	hud     *ui.HUD
	overlay *ui.Overlay

	screen Screen
	input  []rune
	failed bool

	size core.Size
}

// New constructs a Game. The field is mounted once the session is unlocked.
func New(cfg *Config, session *gate.Session, engine *grass.Engine) *Game {
	g := &Game{
		session: session,
		engine:  engine,
		painter: render.NewLinePainter(),
		hud:     ui.NewHUD(engine, hudWidth),
		overlay: ui.NewOverlay(engine),
		size:    core.Size{W: float64(cfg.Width), H: float64(cfg.Height)},
	}
	g.hud.SetVisible(cfg.HUD)
	g.painter.SetSize(g.size.W, g.size.H)
	if session.Unlocked() {
		g.show(ScreenField)
	}
	return g
}

// Update handles per-frame logic and advances the animation.
func (g *Game) Update() error {
	switch g.screen {
	case ScreenGate:
		return g.updateGate()
	case ScreenAbout:
		return g.updateAbout()
	default:
		return g.updateField()
	}
}

func (g *Game) updateGate() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.input = ebiten.AppendInputChars(g.input)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.input) > 0 {
		g.input = g.input[:len(g.input)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if g.session.Try(string(g.input)) {
			log.Printf("gate unlocked")
			g.input = g.input[:0]
			g.failed = false
			g.show(ScreenField)
			return nil
		}
		g.input = g.input[:0]
		g.failed = true
	}
	return nil
}

func (g *Game) updateField() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.loop.Resize()
	g.overlay.SetTargets(LogoRect(g.size))
	g.overlay.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.SetVisible(!g.hud.Visible())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.engine.SetVariant(g.engine.VariantIndex() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.loop.Apply(grass.CycleAccent{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.show(ScreenAbout)
		return nil
	}

	consumed := g.hud.Update(int(g.size.W))
	if !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := float64(mx), float64(my)
		switch {
		case LogoRect(g.size).Contains(x, y):
			g.show(ScreenAbout)
			return nil
		case g.engine.ExclusionZone(g.size.Bounds()).Contains(x, y):
			g.loop.Apply(grass.CycleAccent{})
		default:
			g.loop.Apply(grass.CycleVariant{X: x, Y: y, Bounds: g.size.Bounds()})
		}
	}

	g.loop.Tick(time.Now())
	return nil
}

func (g *Game) updateAbout() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.show(ScreenField)
	}
	return nil
}

// show switches screens. Leaving the field releases its loop; entering it
// mounts a fresh one.
func (g *Game) show(s Screen) {
	if g.screen == ScreenField && s != ScreenField {
		g.loop.Close()
		g.loop = nil
	}
	if s == ScreenField && g.loop == nil {
		g.loop = grass.Mount(g.engine, g.painter)
	}
	g.screen = s
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.screen {
	case ScreenGate:
		g.drawGate(screen)
	case ScreenAbout:
		g.drawAbout(screen)
	default:
		g.drawField(screen)
	}
}

func (g *Game) drawGate(screen *ebiten.Image) {
	screen.Fill(render.RGBA(g.engine.Swatch().Background))
	face := basicfont.Face7x13
	cx := int(g.size.W) / 2
	cy := int(g.size.H) / 2

	drawCentered(screen, "Password", cx, cy-24, colorText)
	masked := strings.Repeat("*", len(g.input))
	if len(masked) == 0 {
		masked = "_"
	}
	drawCentered(screen, masked, cx, cy, colorText)
	if g.failed {
		drawCentered(screen, "Try again", cx, cy+24, colorMuted)
	}
	text.Draw(screen, "esc quit", face, 12, int(g.size.H)-12, colorMuted)
}

func (g *Game) drawField(screen *ebiten.Image) {
	sw := g.engine.Swatch()
	g.painter.SetBackground(sw.Background)
	g.painter.Draw(screen)

	face := basicfont.Face7x13
	logo := LogoRect(g.size)
	drawCentered(screen, strings.ToUpper(content.Short), int(logo.X+logo.W/2), int(logo.Y+logo.H/2)+4, colorText)

	zone := g.engine.ExclusionZone(g.size.Bounds())
	text.Draw(screen, content.Short, face, int(zone.X)+16, int(zone.Y+zone.H)-20, render.RGBA(sw.Accent))

	caption := content.Institute
	w := text.BoundString(face, caption).Dx()
	text.Draw(screen, caption, face, int(g.size.W)-w-16, int(g.size.H)-20, colorMuted)

	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

func (g *Game) drawAbout(screen *ebiten.Image) {
	sw := g.engine.Swatch()
	screen.Fill(render.RGBA(render.Mix(sw.Background, aboutTint, 0.6)))

	face := basicfont.Face7x13
	x := 48
	y := 64
	text.Draw(screen, "< Back", face, x, y-32, colorMuted)
	text.Draw(screen, content.Institute, face, x, y, colorText)
	y += 20
	text.Draw(screen, content.Tagline, face, x, y, render.RGBA(sw.Accent))
	y += 40

	cols := (int(g.size.W) - 2*x) / 7
	for _, h := range content.Highlights() {
		text.Draw(screen, h.Title, face, x, y, render.RGBA(sw.Accent))
		y += 18
		for _, line := range content.Wrap(h.Body, cols) {
			text.Draw(screen, line, face, x, y, colorText)
			y += 16
		}
		y += 20
	}
}

func drawCentered(screen *ebiten.Image, s string, cx, y int, col color.Color) {
	face := basicfont.Face7x13
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, cx-w/2, y, col)
}

// Layout tracks the window size so the field follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.size = core.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	g.painter.SetSize(g.size.W, g.size.H)
	return outsideWidth, outsideHeight
}

var (
	colorText    = color.RGBA{R: 236, G: 240, B: 236, A: 255}
	colorMuted   = color.RGBA{R: 150, G: 160, B: 154, A: 255}
	aboutTint, _ = colorful.Hex("#1a0a28")
)
