package minigame

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/content"
	"github.com/bright4Pres/KONEKTA/internal/progress"
	"github.com/bright4Pres/KONEKTA/internal/ui"
)

// Story is the advanced comprehension game: multi-paragraph stories
// with scrolling, worth double points per question.
type Story struct {
	cfg  *config.Config
	sink ProgressSink

	storyIdx    int
	questionIdx int
	story       *content.Story
	buttons     []button

	score         int
	elapsed       float64
	showingStory  bool
	scrollOffset  int
	feedback      string
	showFeedback  bool
	feedbackTimer float64
	next          string
}

// NewStory creates the story-comprehension screen.
func NewStory(cfg *config.Config, sink ProgressSink) *Story {
	return &Story{cfg: cfg, sink: sink}
}

// Enter starts from the first story.
func (s *Story) Enter() {
	s.next = ""
	s.score = 0
	s.elapsed = 0
	s.storyIdx = 0
	s.showFeedback = false
	s.loadStory()
}

// Exit logs the run, converting points to gems.
func (s *Story) Exit() {
	logResult(s.sink, s.cfg.StudentID, progress.ModuleStory, s.score, s.score/10, s.elapsed)
}

// Next reports the pending transition.
func (s *Story) Next() string { return s.next }

func (s *Story) loadStory() {
	if s.storyIdx >= len(content.Stories) {
		s.next = config.StateOverworld
		return
	}
	s.story = &content.Stories[s.storyIdx]
	s.questionIdx = 0
	s.showingStory = true
	s.scrollOffset = 0
}

func (s *Story) loadQuestion() {
	if s.questionIdx >= len(s.story.Questions) {
		s.storyIdx++
		s.loadStory()
		return
	}
	q := s.story.Questions[s.questionIdx]
	s.buttons = s.buttons[:0]
	for i, choice := range q.Choices {
		s.buttons = append(s.buttons, button{
			x: 130, y: 380 + i*90, w: 750, h: 70, label: choice,
		})
	}
}

// answer scores one pick. Story questions are worth double.
func (s *Story) answer(i int) {
	q := s.story.Questions[s.questionIdx]
	if i == q.Answer {
		s.score += config.PointsPerCorrect * 2
		s.feedback = "Tama! Napakahusay!"
	} else {
		s.feedback = fmt.Sprintf("Hindi tama. Tamang sagot: %s", q.Choices[q.Answer])
	}
	s.showFeedback = true
	s.feedbackTimer = 0
}

// Update advances the story/question flow and handles scrolling.
func (s *Story) Update(dt float64) error {
	s.elapsed += dt
	if escPressed() {
		s.next = config.StateOverworld
		return nil
	}

	if s.showFeedback {
		s.feedbackTimer += dt
		if s.feedbackTimer >= config.FeedbackSec {
			s.showFeedback = false
			s.questionIdx++
			s.loadQuestion()
		}
		return nil
	}

	if s.showingStory {
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			s.scrollOffset += 4
			if s.scrollOffset > 200 {
				s.scrollOffset = 200
			}
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			s.scrollOffset -= 4
			if s.scrollOffset < 0 {
				s.scrollOffset = 0
			}
		}
		if spacePressed() {
			s.showingStory = false
			s.loadQuestion()
		}
		return nil
	}

	if i := pollChoice(s.buttons); i >= 0 {
		s.answer(i)
	}
	return nil
}

// Draw renders the story text or the current question.
func (s *Story) Draw(screen *ebiten.Image) {
	screen.Fill(config.Purple)
	drawHeader(screen, "Reading Comprehension", s.score)
	if s.story == nil {
		return
	}

	if s.showFeedback {
		y := 380
		for _, line := range ui.WrapText(s.feedback, 100) {
			ui.DrawTextCentered(screen, line, config.ScreenWidth/2, y)
			y += 24
		}
		return
	}

	if s.showingStory {
		ui.DrawText(screen, s.story.Level, 20, 70)
		ui.DrawTextCentered(screen, s.story.Title, config.ScreenWidth/2, 130)

		y := 190 - s.scrollOffset
		for _, paragraph := range strings.Split(s.story.Text, "\n\n") {
			for _, line := range ui.WrapText(paragraph, 130) {
				if y > 160 && y < 560 {
					ui.DrawText(screen, line, 60, y)
				}
				y += 22
			}
			y += 14
		}

		ui.DrawTextCentered(screen, "Basahin mabuti. SPACE = Patuloy", config.ScreenWidth/2, 640)
		ui.DrawText(screen, "Up/Down = Scroll", 20, 640)
		return
	}

	q := s.story.Questions[s.questionIdx]
	ui.DrawText(screen, fmt.Sprintf("Tanong %d/%d", s.questionIdx+1, len(s.story.Questions)), 20, 70)
	y := 200
	for _, line := range ui.WrapText(q.Q, 110) {
		ui.DrawTextCentered(screen, line, config.ScreenWidth/2, y)
		y += 24
	}

	mx, my := ebiten.CursorPosition()
	for _, b := range s.buttons {
		b.draw(screen, b.hit(mx, my))
	}
}
