//go:build !ebiten

package ui

import "relva/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(interface{ Parameters() core.ParameterSnapshot }, int) *HUD { return nil }

// Visible always reports false in the headless build.
func (h *HUD) Visible() bool { return false }

// SetVisible is a no-op in the headless build.
func (h *HUD) SetVisible(bool) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
