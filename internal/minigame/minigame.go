// Package minigame contains the learning-game screens reachable from
// the overworld zones, plus the teacher dashboard. Every screen
// transitions back to the overworld when its run ends and logs its
// results to the progress store on exit.
package minigame

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/ui"
)

// ProgressSink receives completed-activity results. The progress store
// satisfies it; tests use fakes.
type ProgressSink interface {
	LogProgress(studentID, module string, score, gemsEarned int, timeSpent float64) error
}

// logResult writes one activity record, logging rather than failing on
// store errors so a broken database never blocks a student.
func logResult(sink ProgressSink, studentID, module string, score, gems int, timeSpent float64) {
	if sink == nil {
		return
	}
	if err := sink.LogProgress(studentID, module, score, gems, timeSpent); err != nil {
		log.Printf("log %s progress: %v", module, err)
	}
}

// button is a clickable choice rectangle.
type button struct {
	x, y, w, h int
	label      string
}

func (b button) hit(mx, my int) bool {
	return mx >= b.x && mx < b.x+b.w && my >= b.y && my < b.y+b.h
}

func (b button) draw(dst *ebiten.Image, hover bool) {
	fill := config.LightGray
	if hover {
		fill = config.White
	}
	ui.DrawBox(dst, b.x, b.y, b.w, b.h, fill, config.Black)
	lines := ui.WrapText(b.label, (b.w-20)/6)
	y := b.y + b.h/2 - len(lines)*8
	for _, line := range lines {
		ui.DrawTextCentered(dst, line, b.x+b.w/2, y)
		y += 16
	}
}

// digitKeys are the number keys accepted as choice shortcuts.
var digitKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// pollDigit returns the index of the number key (1-based on screen)
// pressed this tick, or -1. n caps how many keys are live.
func pollDigit(n int) int {
	for i, key := range digitKeys {
		if i >= n {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			return i
		}
	}
	return -1
}

// pollChoice returns the index of the choice picked this tick, via
// mouse click on a button or a number key, or -1.
func pollChoice(buttons []button) int {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		for i, b := range buttons {
			if b.hit(mx, my) {
				return i
			}
		}
	}
	return pollDigit(len(buttons))
}

func escPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func spacePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// drawHeader renders the screen title, the score box and the exit hint
// shared by every game screen.
func drawHeader(dst *ebiten.Image, title string, score int) {
	ui.DrawText(dst, title, 20, 20)
	scoreBox := button{x: config.ScreenWidth - 220, y: 14, w: 200, h: 32}
	ui.DrawBox(dst, scoreBox.x, scoreBox.y, scoreBox.w, scoreBox.h, config.DarkGray, config.Yellow)
	ui.DrawTextCentered(dst, fmt.Sprintf("Score: %d", score), scoreBox.x+scoreBox.w/2, scoreBox.y+10)
	ui.DrawText(dst, "ESC = bumalik", 20, config.ScreenHeight-30)
}
