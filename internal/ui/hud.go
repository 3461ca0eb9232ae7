//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"cgol/internal/core"
)

// HUD prints the session status in the top-left corner of the window.
type HUD struct {
	frequency float64
	visible   bool
	message   string
}

// NewHUD constructs a HUD for a run at the given frequency.
func NewHUD(frequency float64) *HUD {
	return &HUD{frequency: frequency, visible: true}
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() { h.visible = !h.visible }

// SetMessage sets a transient line shown under the status, e.g. after saving.
func (h *HUD) SetMessage(msg string) { h.message = msg }

// Draw renders the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s core.Snapshot) {
	if h == nil || !h.visible {
		return
	}
	ebitenutil.DebugPrintAt(screen, Text(s, h.frequency, h.message), 4, 2)
}
