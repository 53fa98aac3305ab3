package minigame

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/content"
	"github.com/bright4Pres/KONEKTA/internal/progress"
	"github.com/bright4Pres/KONEKTA/internal/ui"
)

// wordsPerRun is the assessment length.
const wordsPerRun = 20

// Words is the sight-word recognition game: read the target word and
// pick it out among two distractors. A hint appears after a stretch of
// inactivity.
type Words struct {
	cfg  *config.Config
	sink ProgressSink
	rng  *rand.Rand

	target  string
	choices []string
	buttons []button

	attempted int
	correct   int
	score     int

	elapsed       float64
	idle          float64
	hintShown     bool
	feedback      string
	showFeedback  bool
	feedbackTimer float64
	next          string
}

// NewWords creates the word-recognition screen.
func NewWords(cfg *config.Config, sink ProgressSink, rng *rand.Rand) *Words {
	return &Words{cfg: cfg, sink: sink, rng: rng}
}

// Enter starts a fresh run.
func (w *Words) Enter() {
	w.next = ""
	w.attempted = 0
	w.correct = 0
	w.score = 0
	w.elapsed = 0
	w.idle = 0
	w.showFeedback = false
	w.nextWord()
}

// Exit logs the run: accuracy percentage as the score, points earned
// as gems.
func (w *Words) Exit() {
	accuracy := 0
	if w.attempted > 0 {
		accuracy = w.correct * 100 / w.attempted
	}
	logResult(w.sink, w.cfg.StudentID, progress.ModuleWords, accuracy, w.score, w.elapsed)
}

// Next reports the pending transition.
func (w *Words) Next() string { return w.next }

// nextWord picks a new target with two distractors and lays out the
// choice buttons. Ends the run after wordsPerRun attempts.
func (w *Words) nextWord() {
	if w.attempted >= wordsPerRun {
		w.next = config.StateOverworld
		return
	}

	pool := content.SightWords
	w.target = pool[w.rng.Intn(len(pool))]
	w.choices = []string{w.target}
	for len(w.choices) < 3 {
		c := pool[w.rng.Intn(len(pool))]
		dup := false
		for _, existing := range w.choices {
			if existing == c {
				dup = true
				break
			}
		}
		if !dup {
			w.choices = append(w.choices, c)
		}
	}
	w.rng.Shuffle(len(w.choices), func(i, j int) {
		w.choices[i], w.choices[j] = w.choices[j], w.choices[i]
	})

	const bw, bh, spacing = 250, 80, 100
	startX := (config.ScreenWidth - (bw*3 + spacing*2)) / 2
	w.buttons = w.buttons[:0]
	for i, choice := range w.choices {
		w.buttons = append(w.buttons, button{
			x: startX + i*(bw+spacing), y: 450, w: bw, h: bh, label: choice,
		})
	}
	w.hintShown = false
	w.showFeedback = false
}

// answer scores one pick and raises feedback.
func (w *Words) answer(i int) {
	w.attempted++
	if w.choices[i] == w.target {
		w.score += config.PointsPerCorrect
		w.correct++
		w.feedback = "Tama!"
	} else {
		w.feedback = fmt.Sprintf("Hindi tama. Ang tamang sagot: %s", w.target)
	}
	w.showFeedback = true
	w.feedbackTimer = 0
}

// Update advances timers and handles input.
func (w *Words) Update(dt float64) error {
	w.elapsed += dt
	if escPressed() {
		w.next = config.StateOverworld
		return nil
	}

	if w.showFeedback {
		w.feedbackTimer += dt
		if w.feedbackTimer >= config.FeedbackSec {
			w.nextWord()
		}
		return nil
	}

	w.idle += dt
	if w.idle > config.HintDelaySec {
		w.hintShown = true
	}
	if i := pollChoice(w.buttons); i >= 0 {
		w.idle = 0
		w.answer(i)
	}
	return nil
}

// Draw renders the word prompt, choices and feedback.
func (w *Words) Draw(screen *ebiten.Image) {
	screen.Fill(config.Green)
	drawHeader(screen, "Word Recognition", w.score)

	ui.DrawText(screen, fmt.Sprintf("Word %d/%d", w.attempted+1, wordsPerRun), 20, 70)
	drawProgressBar(screen, 20, 100, 200, 20, float64(w.attempted)/wordsPerRun)

	if w.showFeedback {
		fw := ui.TextWidth(w.feedback)
		ui.DrawBox(screen, config.ScreenWidth/2-fw/2-20, 340, fw+40, 32, config.DarkGray, config.Yellow)
		ui.DrawTextCentered(screen, w.feedback, config.ScreenWidth/2, 350)
		return
	}

	ui.DrawTextCentered(screen, "Basahin at piliin ang tamang salita:", config.ScreenWidth/2, 200)

	ui.DrawBox(screen, config.ScreenWidth/2-150, 270, 300, 80, config.White, config.Yellow)
	ui.DrawTextCentered(screen, w.target, config.ScreenWidth/2, 300)

	if w.hintShown {
		ui.DrawTextCentered(screen, "Tingnan mabuti ang mga titik", config.ScreenWidth/2, 370)
	}

	mx, my := ebiten.CursorPosition()
	for _, b := range w.buttons {
		b.draw(screen, b.hit(mx, my))
	}
}

// drawProgressBar renders a filled fraction bar.
func drawProgressBar(dst *ebiten.Image, x, y, w, h int, frac float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	ui.DrawRect(dst, x+2, y+2, w, h, config.Black)
	ui.DrawRect(dst, x, y, w, h, config.DarkGray)
	ui.DrawRect(dst, x, y, int(float64(w)*frac), h, config.Yellow)
	ui.DrawRectOutline(dst, x, y, w, h, 3, config.White)
}
