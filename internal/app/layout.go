package app

import "relva/internal/core"

// Screen identifies which view the host is showing.
type Screen int

const (
	ScreenGate Screen = iota
	ScreenField
	ScreenAbout
)

func (s Screen) String() string {
	switch s {
	case ScreenGate:
		return "gate"
	case ScreenField:
		return "field"
	case ScreenAbout:
		return "about"
	default:
		return "unknown"
	}
}

const (
	logoW   = 168
	logoH   = 40
	logoTop = 28
)

// LogoRect is the top-centre click target that opens the about page.
func LogoRect(size core.Size) core.Rect {
	return core.Rect{X: (size.W - logoW) / 2, Y: logoTop, W: logoW, H: logoH}
}
