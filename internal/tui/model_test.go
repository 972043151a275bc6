package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"relva/internal/app"
	"relva/internal/gate"
	"relva/internal/grass"
)

func newTestModel(t *testing.T, unlocked bool) Model {
	t.Helper()
	session := gate.NewSession("")
	if unlocked {
		session.Try(gate.DefaultSecret)
	}
	m := New(session, grass.New(grass.DefaultConfig()))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 31})
	return next.(Model)
}

func typeString(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func press(m Model, k tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(Model)
}

func key(m Model, s string) Model {
	return typeString(m, s)
}

func click(m Model, x, y int) Model {
	next, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return next.(Model)
}

func TestGateRejectsWrongPassword(t *testing.T) {
	m := newTestModel(t, false)
	if m.Screen() != app.ScreenGate {
		t.Fatalf("expected gate, got %s", m.Screen())
	}
	m = typeString(m, "grass")
	m = press(m, tea.KeyEnter)
	if m.Screen() != app.ScreenGate || !m.failed {
		t.Fatal("wrong password must keep the gate and flag the failure")
	}
	if m.loop != nil {
		t.Fatal("field must not be mounted while locked")
	}
	if m.input.Value() != "" {
		t.Fatal("input must be cleared after an attempt")
	}
}

func TestGateUnlocksAndMountsField(t *testing.T) {
	m := newTestModel(t, false)
	m = typeString(m, gate.DefaultSecret)
	m = press(m, tea.KeyEnter)
	if m.Screen() != app.ScreenField {
		t.Fatalf("expected field after unlock, got %s", m.Screen())
	}
	if !m.loop.Mounted() {
		t.Fatal("field loop must be mounted")
	}
	if got := len(m.engine.Lines()); got != 100 {
		t.Fatalf("expected one line per column, got %d", got)
	}
}

func TestUnlockedSessionSkipsGate(t *testing.T) {
	m := newTestModel(t, true)
	if m.Screen() != app.ScreenField {
		t.Fatalf("unlocked session must open on the field, got %s", m.Screen())
	}
}

func TestFieldKeys(t *testing.T) {
	m := newTestModel(t, true)
	variant := m.engine.VariantIndex()
	bg := m.engine.BackgroundIndex()

	m = key(m, "v")
	if m.engine.VariantIndex() != variant+1 {
		t.Fatal("v must cycle the variant")
	}
	m = key(m, "c")
	if m.engine.BackgroundIndex() != bg+1 {
		t.Fatal("c must cycle the palette")
	}
	if m.engine.Lines()[0].Color != m.engine.Swatch().Accent {
		t.Fatal("accent lines must follow the palette")
	}
}

func TestFieldClicks(t *testing.T) {
	m := newTestModel(t, true)
	variant := m.engine.VariantIndex()
	bg := m.engine.BackgroundIndex()

	// Bottom-left corner is the wordmark: it cycles the palette only.
	m = click(m, 1, 28)
	if m.engine.VariantIndex() != variant || m.engine.BackgroundIndex() != bg+1 {
		t.Fatal("wordmark click must cycle the palette and not the variant")
	}

	m = click(m, 80, 15)
	if m.engine.VariantIndex() != variant+1 {
		t.Fatal("click on the field must cycle the variant")
	}

	m = click(m, 50, 2)
	if m.Screen() != app.ScreenAbout {
		t.Fatalf("logo click must open the about page, got %s", m.Screen())
	}
}

func TestAboutReleasesAndRemountsField(t *testing.T) {
	m := newTestModel(t, true)
	gen := m.engine.Generation()

	m = key(m, "a")
	if m.Screen() != app.ScreenAbout || m.loop != nil {
		t.Fatal("about page must release the field loop")
	}
	frames := m.engine.Stats().Frames
	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.engine.Stats().Frames != frames {
		t.Fatal("engine must not step while the field is hidden")
	}
	if !strings.Contains(m.View(), "Mission") {
		t.Fatal("about page must show the mission")
	}

	m = press(m, tea.KeyEsc)
	if m.Screen() != app.ScreenField || !m.loop.Mounted() {
		t.Fatal("esc must return to a mounted field")
	}
	if m.engine.Generation() != gen+1 {
		t.Fatal("returning to the field must regenerate it")
	}
}

func TestTickStepsField(t *testing.T) {
	m := newTestModel(t, true)
	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("tick must schedule the next tick")
	}
	if m.engine.Stats().Frames != 1 {
		t.Fatalf("expected one frame, got %d", m.engine.Stats().Frames)
	}
	view := m.View()
	if !strings.Contains(view, "R E L V A") {
		t.Fatal("field view must show the logo")
	}
	if got := strings.Count(view, "\n") + 1; got != 31 {
		t.Fatalf("expected the view to fill 31 rows, got %d", got)
	}
}
