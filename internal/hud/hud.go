// Package hud draws the static overworld overlay: the controls legend,
// the cumulative gem counter supplied by the progress store, and the
// pulsing zone-entry prompt.
package hud

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/ui"
)

// HUD renders read-only overlay data for one screen.
type HUD struct {
	screenW int
	screenH int
}

// New creates a HUD sized to the viewport.
func New(screenW, screenH int) *HUD {
	return &HUD{screenW: screenW, screenH: screenH}
}

// Draw renders the controls legend and the gem counter.
func (h *HUD) Draw(screen *ebiten.Image, gems int) {
	legend := "Arrow Keys / WASD: Move | SHIFT: Run | SPACE: Interact | ESC: Quit"
	lw := ui.TextWidth(legend)
	lx := (h.screenW - lw) / 2
	ui.DrawBox(screen, lx-10, 18, lw+20, 24, config.DarkGray, config.White)
	ui.DrawText(screen, legend, lx, 22)

	score := fmt.Sprintf("Total Gems: %d", gems)
	sw := ui.TextWidth(score)
	sx := h.screenW - sw - 40
	ui.DrawBox(screen, sx-10, 60, sw+20, 24, config.DarkGray, config.Yellow)
	ui.DrawText(screen, score, sx, 64)
}

// DrawPrompt renders the zone-entry prompt with a cosmetic pop-in
// pulse driven by the time since the zone became active.
func (h *HUD) DrawPrompt(screen *ebiten.Image, label string, timer float64) {
	pulse := math.Abs(math.Mod(timer*3, 2) - 1)
	text := fmt.Sprintf("Press SPACE to enter %s", label)

	tw := ui.TextWidth(text)
	cx := h.screenW / 2
	y := h.screenH - 100 - int(pulse*10)

	ui.DrawBox(screen, cx-tw/2-20, y-10, tw+40, 32, config.Blue, config.Yellow)
	ui.DrawTextCentered(screen, text, cx, y)
}
