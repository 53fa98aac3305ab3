package minigame

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/content"
	"github.com/bright4Pres/KONEKTA/internal/progress"
	"github.com/bright4Pres/KONEKTA/internal/ui"
)

// startHappiness is the community mood at the start of a term.
const startHappiness = 50

// Barangay is the captain simulator: residents bring complaints and
// the player picks a response. The literacy-correct choice is always
// the one that consults the written rule or record. Happiness tracks
// the community's reaction, clamped to 0..100.
type Barangay struct {
	cfg  *config.Config
	sink ProgressSink

	questionIdx int
	score       int
	happiness   int
	selected    int
	showResult  bool
	resultTimer float64
	finished    bool
	elapsed     float64
	next        string
}

// NewBarangay creates the captain-simulator screen.
func NewBarangay(cfg *config.Config, sink ProgressSink) *Barangay {
	return &Barangay{cfg: cfg, sink: sink}
}

// Enter starts a new term.
func (b *Barangay) Enter() {
	b.next = ""
	b.questionIdx = 0
	b.score = 0
	b.happiness = startHappiness
	b.selected = -1
	b.showResult = false
	b.finished = false
	b.elapsed = 0
}

// Exit logs the term: correct decisions as the score, gems scaled by
// points-per-correct.
func (b *Barangay) Exit() {
	logResult(b.sink, b.cfg.StudentID, progress.ModuleBarangay,
		b.score, b.score*config.PointsPerCorrect, b.elapsed)
}

// Next reports the pending transition.
func (b *Barangay) Next() string { return b.next }

// choose records a decision: score on the correct choice, happiness
// shifted by the per-choice impact and clamped.
func (b *Barangay) choose(i int) {
	c := content.Complaints[b.questionIdx]
	if i < 0 || i >= len(c.Choices) {
		return
	}
	b.selected = i
	b.showResult = true
	b.resultTimer = 0
	if i == c.Correct {
		b.score++
	}
	b.happiness += c.HappinessImpact[i]
	if b.happiness < 0 {
		b.happiness = 0
	}
	if b.happiness > 100 {
		b.happiness = 100
	}
}

// advance moves past the result view to the next complaint, or to the
// end-of-term screen.
func (b *Barangay) advance() {
	b.questionIdx++
	b.showResult = false
	b.selected = -1
	if b.questionIdx >= len(content.Complaints) {
		b.finished = true
	}
}

// Update advances the decision flow.
func (b *Barangay) Update(dt float64) error {
	b.elapsed += dt
	if escPressed() {
		b.next = config.StateOverworld
		return nil
	}

	if b.finished {
		if spacePressed() {
			b.next = config.StateOverworld
		}
		return nil
	}

	if b.showResult {
		b.resultTimer += dt
		if b.resultTimer >= config.FeedbackSec {
			b.advance()
		}
		return nil
	}

	if i := pollDigit(len(content.Complaints[b.questionIdx].Choices)); i >= 0 {
		b.choose(i)
	}
	return nil
}

// Draw renders the complaint, the happiness meter and the choices.
func (b *Barangay) Draw(screen *ebiten.Image) {
	screen.Fill(config.Blue)
	drawHeader(screen, "Barangay Captain Simulator", b.score)

	if b.finished {
		ui.DrawTextCentered(screen, "Game Complete!", config.ScreenWidth/2, 250)
		ui.DrawTextCentered(screen,
			fmt.Sprintf("Final Score: %d/%d", b.score, len(content.Complaints)),
			config.ScreenWidth/2, 320)
		ui.DrawTextCentered(screen,
			fmt.Sprintf("Final Happiness: %d/100", b.happiness),
			config.ScreenWidth/2, 360)
		ui.DrawTextCentered(screen, "SPACE = bumalik", config.ScreenWidth/2, 440)
		return
	}

	c := content.Complaints[b.questionIdx]

	ui.DrawText(screen, fmt.Sprintf("Happiness: %d/100", b.happiness), 50, 100)
	drawProgressBar(screen, 50, 120, 300, 16, float64(b.happiness)/100)

	y := 180
	for _, line := range ui.WrapText(c.Complaint, 120) {
		ui.DrawText(screen, line, 50, y)
		y += 24
	}

	y = 320
	for i, choice := range c.Choices {
		label := fmt.Sprintf("%d. %s", i+1, choice)
		if b.showResult {
			switch {
			case i == c.Correct:
				ui.DrawBox(screen, 44, y-6, ui.TextWidth(label)+12, 26, config.Green, config.White)
			case i == b.selected:
				ui.DrawBox(screen, 44, y-6, ui.TextWidth(label)+12, 26, config.Red, config.White)
			}
		}
		ui.DrawText(screen, label, 50, y)
		y += 50
	}

	if b.showResult {
		result := "Hindi tama."
		if b.selected == c.Correct {
			result = "Tama!"
		}
		ui.DrawText(screen, result, 50, y+20)
	}
}
