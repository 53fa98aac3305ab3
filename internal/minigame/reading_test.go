package minigame

import (
	"testing"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/content"
	"github.com/bright4Pres/KONEKTA/internal/progress"
)

func TestReadingFlow(t *testing.T) {
	sink := &fakeSink{}
	r := NewReading(config.DefaultConfig(), sink)
	r.Enter()

	if !r.showingPassage {
		t.Fatal("Expected passage view first")
	}
	if r.passage.Title != content.Passages[0].Title {
		t.Errorf("Expected first passage, got %q", r.passage.Title)
	}

	// Step into the questions and answer everything correctly.
	r.showingPassage = false
	r.loadQuestion()
	total := 0
	for r.Next() == "" {
		q := r.passage.Questions[r.questionIdx]
		r.answer(q.Answer)
		total++
		r.showFeedback = false
		r.questionIdx++
		r.loadQuestion()
		if r.showingPassage {
			r.showingPassage = false
			r.loadQuestion()
		}
	}

	want := 0
	for _, p := range content.Passages {
		want += len(p.Questions)
	}
	if total != want {
		t.Errorf("Expected %d questions across all passages, got %d", want, total)
	}
	if r.score != want*config.PointsPerCorrect {
		t.Errorf("Expected perfect score %d, got %d", want*config.PointsPerCorrect, r.score)
	}

	r.Exit()
	if sink.module != progress.ModuleReading {
		t.Errorf("Expected module %q logged, got %q", progress.ModuleReading, sink.module)
	}
	if sink.gems != r.score/10 {
		t.Errorf("Expected %d gems, got %d", r.score/10, sink.gems)
	}
}

func TestStoryDoublePoints(t *testing.T) {
	s := NewStory(config.DefaultConfig(), nil)
	s.Enter()

	s.showingStory = false
	s.loadQuestion()
	q := s.story.Questions[0]
	s.answer(q.Answer)

	if s.score != config.PointsPerCorrect*2 {
		t.Errorf("Expected double points %d, got %d", config.PointsPerCorrect*2, s.score)
	}
}

func TestRecipeAdvanceAcrossRecipes(t *testing.T) {
	r := NewRecipe(config.DefaultConfig(), nil)
	r.Enter()

	for r.Next() == "" {
		q := r.recipe().Questions[r.questionIdx]
		r.choose(q.Answer)
		r.advance()
	}
	if r.Next() != config.StateOverworld {
		t.Errorf("Expected transition to overworld, got %q", r.Next())
	}

	want := 0
	for _, rec := range content.Recipes {
		want += len(rec.Questions)
	}
	if r.score != want {
		t.Errorf("Expected perfect score %d, got %d", want, r.score)
	}
}
