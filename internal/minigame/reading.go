package minigame

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/content"
	"github.com/bright4Pres/KONEKTA/internal/progress"
	"github.com/bright4Pres/KONEKTA/internal/ui"
)

// Reading is the fluency game: read a passage, then answer its
// comprehension questions.
type Reading struct {
	cfg  *config.Config
	sink ProgressSink

	passageIdx  int
	questionIdx int
	passage     *content.Passage
	buttons     []button

	score          int
	elapsed        float64
	showingPassage bool
	feedback       string
	showFeedback   bool
	feedbackTimer  float64
	next           string
}

// NewReading creates the reading-fluency screen.
func NewReading(cfg *config.Config, sink ProgressSink) *Reading {
	return &Reading{cfg: cfg, sink: sink}
}

// Enter starts from the first passage.
func (r *Reading) Enter() {
	r.next = ""
	r.score = 0
	r.elapsed = 0
	r.passageIdx = 0
	r.showFeedback = false
	r.loadPassage()
}

// Exit logs the run, converting points to gems.
func (r *Reading) Exit() {
	logResult(r.sink, r.cfg.StudentID, progress.ModuleReading, r.score, r.score/10, r.elapsed)
}

// Next reports the pending transition.
func (r *Reading) Next() string { return r.next }

func (r *Reading) loadPassage() {
	if r.passageIdx >= len(content.Passages) {
		r.next = config.StateOverworld
		return
	}
	r.passage = &content.Passages[r.passageIdx]
	r.questionIdx = 0
	r.showingPassage = true
}

func (r *Reading) loadQuestion() {
	if r.questionIdx >= len(r.passage.Questions) {
		r.passageIdx++
		r.loadPassage()
		return
	}
	q := r.passage.Questions[r.questionIdx]
	r.buttons = r.buttons[:0]
	for i, choice := range q.Choices {
		r.buttons = append(r.buttons, button{
			x: 150, y: 420 + i*80, w: 700, h: 60, label: choice,
		})
	}
}

// answer scores one pick and raises feedback.
func (r *Reading) answer(i int) {
	q := r.passage.Questions[r.questionIdx]
	if i == q.Answer {
		r.score += config.PointsPerCorrect
		r.feedback = "Tama!"
	} else {
		r.feedback = fmt.Sprintf("Hindi tama. Tamang sagot: %s", q.Choices[q.Answer])
	}
	r.showFeedback = true
	r.feedbackTimer = 0
}

// Update advances the passage/question flow.
func (r *Reading) Update(dt float64) error {
	r.elapsed += dt
	if escPressed() {
		r.next = config.StateOverworld
		return nil
	}

	if r.showFeedback {
		r.feedbackTimer += dt
		if r.feedbackTimer >= config.FeedbackSec {
			r.showFeedback = false
			r.questionIdx++
			r.loadQuestion()
		}
		return nil
	}

	if r.showingPassage {
		if spacePressed() {
			r.showingPassage = false
			r.loadQuestion()
		}
		return nil
	}

	if i := pollChoice(r.buttons); i >= 0 {
		r.answer(i)
	}
	return nil
}

// Draw renders the passage or the current question.
func (r *Reading) Draw(screen *ebiten.Image) {
	screen.Fill(config.Orange)
	drawHeader(screen, "Reading Fluency", r.score)
	if r.passage == nil {
		return
	}

	if r.showFeedback {
		ui.DrawTextCentered(screen, r.feedback, config.ScreenWidth/2, 400)
		return
	}

	if r.showingPassage {
		ui.DrawText(screen, r.passage.Level, 20, 70)
		ui.DrawTextCentered(screen, r.passage.Title, config.ScreenWidth/2, 150)

		y := 220
		for _, line := range ui.WrapText(r.passage.Text, 110) {
			ui.DrawTextCentered(screen, line, config.ScreenWidth/2, y)
			y += 24
		}
		ui.DrawTextCentered(screen, "Basahin mabuti. SPACE = Patuloy", config.ScreenWidth/2, 600)
		return
	}

	q := r.passage.Questions[r.questionIdx]
	ui.DrawText(screen, fmt.Sprintf("Tanong %d/%d", r.questionIdx+1, len(r.passage.Questions)), 20, 70)
	ui.DrawTextCentered(screen, q.Q, config.ScreenWidth/2, 200)

	mx, my := ebiten.CursorPosition()
	for _, b := range r.buttons {
		b.draw(screen, b.hit(mx, my))
	}
}
