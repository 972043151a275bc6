//go:build !ebiten

package ui

import (
	"relva/internal/core"
	"relva/internal/grass"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*grass.Engine, ...core.Rect) *Overlay { return &Overlay{} }

// SetTargets is a no-op in headless builds.
func (o *Overlay) SetTargets(...core.Rect) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
