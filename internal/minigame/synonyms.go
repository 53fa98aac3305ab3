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

// synonymRounds is how many word sets one run covers. Each set asks
// for the synonym, then the antonym.
const synonymRounds = 10

// Synonyms is the word-match game: given a word, pick its synonym and
// then its antonym from the same four choices.
type Synonyms struct {
	cfg  *config.Config
	sink ProgressSink
	rng  *rand.Rand

	order      []int
	round      int
	askAntonym bool
	buttons    []button

	score         int
	correct       int
	attempted     int
	elapsed       float64
	feedback      string
	showFeedback  bool
	feedbackTimer float64
	next          string
}

// NewSynonyms creates the word-match screen.
func NewSynonyms(cfg *config.Config, sink ProgressSink, rng *rand.Rand) *Synonyms {
	return &Synonyms{cfg: cfg, sink: sink, rng: rng}
}

// Enter shuffles a fresh run of word sets.
func (s *Synonyms) Enter() {
	s.next = ""
	s.score = 0
	s.correct = 0
	s.attempted = 0
	s.elapsed = 0
	s.round = 0
	s.askAntonym = false
	s.showFeedback = false

	s.order = s.rng.Perm(len(content.SynonymWords))
	if len(s.order) > synonymRounds {
		s.order = s.order[:synonymRounds]
	}
	s.layoutButtons()
}

// Exit logs the run: accuracy as the score, points as gems.
func (s *Synonyms) Exit() {
	accuracy := 0
	if s.attempted > 0 {
		accuracy = s.correct * 100 / s.attempted
	}
	logResult(s.sink, s.cfg.StudentID, progress.ModuleSynonyms, accuracy, s.score, s.elapsed)
}

// Next reports the pending transition.
func (s *Synonyms) Next() string { return s.next }

func (s *Synonyms) set() content.WordSet {
	return content.SynonymWords[s.order[s.round]]
}

func (s *Synonyms) layoutButtons() {
	if s.round >= len(s.order) {
		return
	}
	set := s.set()
	s.buttons = s.buttons[:0]
	for i, choice := range set.Choices {
		col := i % 2
		row := i / 2
		s.buttons = append(s.buttons, button{
			x: config.ScreenWidth/2 - 330 + col*360, y: 420 + row*100,
			w: 300, h: 70, label: choice,
		})
	}
}

// wanted is the expected answer for the current half of the round.
func (s *Synonyms) wanted() string {
	if s.askAntonym {
		return s.set().Antonym
	}
	return s.set().Synonym
}

// answer scores one pick.
func (s *Synonyms) answer(i int) {
	set := s.set()
	s.attempted++
	if set.Choices[i] == s.wanted() {
		s.score += config.PointsPerCorrect
		s.correct++
		s.feedback = "Tama!"
	} else {
		s.feedback = fmt.Sprintf("Hindi tama. Ang tamang sagot: %s", s.wanted())
	}
	s.showFeedback = true
	s.feedbackTimer = 0
}

// advanceRound moves to the antonym half or the next word set.
func (s *Synonyms) advanceRound() {
	s.showFeedback = false
	if !s.askAntonym {
		s.askAntonym = true
		return
	}
	s.askAntonym = false
	s.round++
	if s.round >= len(s.order) {
		s.next = config.StateOverworld
		return
	}
	s.layoutButtons()
}

// Update advances the round flow.
func (s *Synonyms) Update(dt float64) error {
	s.elapsed += dt
	if escPressed() {
		s.next = config.StateOverworld
		return nil
	}
	if s.round >= len(s.order) {
		return nil
	}

	if s.showFeedback {
		s.feedbackTimer += dt
		if s.feedbackTimer >= config.FeedbackSec {
			s.advanceRound()
		}
		return nil
	}

	if i := pollChoice(s.buttons); i >= 0 {
		s.answer(i)
	}
	return nil
}

// Draw renders the prompt word and the four choices.
func (s *Synonyms) Draw(screen *ebiten.Image) {
	screen.Fill(config.Blue)
	drawHeader(screen, "Word Match", s.score)
	if s.round >= len(s.order) {
		return
	}

	ui.DrawText(screen, fmt.Sprintf("Word %d/%d", s.round+1, len(s.order)), 20, 70)
	drawProgressBar(screen, 20, 100, 200, 20, float64(s.round)/float64(len(s.order)))

	if s.showFeedback {
		fw := ui.TextWidth(s.feedback)
		ui.DrawBox(screen, config.ScreenWidth/2-fw/2-20, 340, fw+40, 32, config.DarkGray, config.Yellow)
		ui.DrawTextCentered(screen, s.feedback, config.ScreenWidth/2, 350)
		return
	}

	ask := "KASINGKAHULUGAN (synonym)"
	if s.askAntonym {
		ask = "KASALUNGAT (antonym)"
	}
	ui.DrawTextCentered(screen, fmt.Sprintf("Piliin ang %s ng salitang:", ask), config.ScreenWidth/2, 200)

	set := s.set()
	ui.DrawBox(screen, config.ScreenWidth/2-150, 260, 300, 80, config.White, config.Yellow)
	ui.DrawTextCentered(screen, set.Word, config.ScreenWidth/2, 292)

	mx, my := ebiten.CursorPosition()
	for _, b := range s.buttons {
		b.draw(screen, b.hit(mx, my))
	}
}
