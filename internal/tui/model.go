package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"relva/internal/app"
	"relva/internal/content"
	"relva/internal/gate"
	"relva/internal/grass"
)

// Model is the Bubbletea model for the terminal site: gate, field and about
// screens sharing one engine.
type Model struct {
	session *gate.Session
	engine  *grass.Engine
	surface *surface
	loop    *grass.Loop

	input  textinput.Model
	screen app.Screen
	failed bool

	width  int
	height int
}

// New creates a Model. The field is mounted once the session is unlocked.
func New(session *gate.Session, engine *grass.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "Password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 64
	ti.Width = 24
	ti.Focus()

	m := Model{
		session: session,
		engine:  engine,
		surface: newSurface(engine.Config().TargetFPS),
		input:   ti,
	}
	if session.Unlocked() {
		m = m.show(app.ScreenField)
	}
	return m
}

// Screen reports the visible screen.
func (m Model) Screen() app.Screen { return m.screen }

func (m Model) refresh() time.Duration {
	// Poll at twice the target rate; the loop's throttle drops the extra ticks.
	return time.Second / time.Duration(2*m.engine.Config().TargetFPS)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.refresh()), tea.SetWindowTitle(content.Short))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.SetGrid(msg.Width, msg.Height-1)
		m.loop.Resize()
		return m, nil

	case tickMsg:
		if m.screen == app.ScreenField {
			m.loop.Tick(time.Time(msg))
		}
		return m, tickCmd(m.refresh())

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case app.ScreenGate:
			return m.updateGate(msg)
		case app.ScreenField:
			return m.updateField(msg)
		default:
			return m.updateAbout(msg)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch m.screen {
		case app.ScreenField:
			return m.clickField(msg.X, msg.Y), nil
		case app.ScreenAbout:
			return m.show(app.ScreenField), nil
		}
		return m, nil
	}

	if m.screen == app.ScreenGate {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateGate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		ok := m.session.Try(m.input.Value())
		m.input.Reset()
		if !ok {
			m.failed = true
			return m, nil
		}
		m.failed = false
		m.input.Blur()
		return m.show(app.ScreenField), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "v":
		m.engine.SetVariant(m.engine.VariantIndex() + 1)
	case "c":
		m.loop.Apply(grass.CycleAccent{})
	case "a", "enter":
		return m.show(app.ScreenAbout), nil
	}
	return m, nil
}

func (m Model) updateAbout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace", "b", "left":
		return m.show(app.ScreenField), nil
	}
	return m, nil
}

// clickField routes a left click on the field: the logo opens the about
// page, the wordmark corner cycles the palette and anything else cycles the
// variant.
func (m Model) clickField(col, row int) Model {
	x, y := m.surface.ToEngine(col, row)
	size := m.surface.Size()
	switch {
	case app.LogoRect(size).Contains(x, y):
		return m.show(app.ScreenAbout)
	case m.engine.ExclusionZone(size.Bounds()).Contains(x, y):
		m.loop.Apply(grass.CycleAccent{})
	default:
		m.loop.Apply(grass.CycleVariant{X: x, Y: y, Bounds: size.Bounds()})
	}
	return m
}

// show switches screens. Leaving the field releases its loop; entering it
// mounts a fresh one.
func (m Model) show(s app.Screen) Model {
	if m.screen == app.ScreenField && s != app.ScreenField {
		m.loop.Close()
		m.loop = nil
	}
	if s == app.ScreenField && m.loop == nil {
		m.loop = grass.Mount(m.engine, m.surface)
	}
	m.screen = s
	return m
}

func (m Model) View() string {
	switch m.screen {
	case app.ScreenGate:
		return m.viewGate()
	case app.ScreenAbout:
		return m.viewAbout()
	default:
		return m.viewField()
	}
}

func (m Model) viewGate() string {
	s := titleStyle.Render(strings.ToUpper(content.Short)) + "\n\n"
	s += m.input.View() + "\n"
	if m.failed {
		s += errorStyle.Render("Try again") + "\n"
	}
	s += "\n" + helpStyle.Render("enter unlock  esc quit")
	if m.width == 0 || m.height == 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m Model) viewField() string {
	sw := m.engine.Swatch()
	bg := lipgloss.Color(sw.Background.Hex())
	accent := lipgloss.Color(sw.Accent.Hex())
	rows := m.surface.Rows(sw.Background)

	logoStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(bg)
	logoRow := int(app.LogoRect(m.surface.Size()).Y/cellH) + 1
	if logoRow < len(rows) {
		rows[logoRow] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			logoStyle.Render(strings.Join(strings.Split(strings.ToUpper(content.Short), ""), " ")),
			lipgloss.WithWhitespaceBackground(bg))
	}
	if n := len(rows); n >= 2 {
		left := lipgloss.NewStyle().Foreground(accent).Background(bg).Render(" " + content.Short)
		right := lipgloss.NewStyle().Foreground(lipgloss.Color("#9aa59e")).Background(bg).Render(content.Institute + " ")
		gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			right = ""
			gap = m.width - lipgloss.Width(left)
		}
		if gap < 0 {
			gap = 0
		}
		rows[n-2] = left + lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", gap)) + right
	}

	status := helpStyle.Render(m.engine.Variant().Name + " · " + sw.Name + "   v variant  c colour  a about  q quit")
	return strings.Join(append(rows, status), "\n")
}

func (m Model) viewAbout() string {
	width := m.width - 8
	if width < 20 {
		width = 60
	}
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.engine.Swatch().Accent.Hex()))

	var b strings.Builder
	b.WriteString(helpStyle.Render("← back") + "\n\n")
	b.WriteString(titleStyle.Render(content.Institute) + "\n")
	b.WriteString(accent.Render(content.Tagline) + "\n\n")
	for _, h := range content.Highlights() {
		b.WriteString(accent.Render(h.Title) + "\n")
		b.WriteString(bodyStyle.Width(width).Render(h.Body) + "\n\n")
	}
	b.WriteString(helpStyle.Render("esc back  q quit"))
	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}
