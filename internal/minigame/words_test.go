package minigame

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/bright4Pres/KONEKTA/internal/config"
)

// fakeSink records logged results.
type fakeSink struct {
	student string
	module  string
	score   int
	gems    int
	calls   int
}

func (f *fakeSink) LogProgress(studentID, module string, score, gems int, timeSpent float64) error {
	f.student = studentID
	f.module = module
	f.score = score
	f.gems = gems
	f.calls++
	return nil
}

func newTestWords(sink ProgressSink) *Words {
	return NewWords(config.DefaultConfig(), sink, rand.New(rand.NewSource(1)))
}

func (w *Words) correctIndex(t *testing.T) int {
	t.Helper()
	for i, c := range w.choices {
		if c == w.target {
			return i
		}
	}
	t.Fatalf("Target %q not among choices %v", w.target, w.choices)
	return -1
}

func TestWordsChoicesContainTarget(t *testing.T) {
	w := newTestWords(nil)
	w.Enter()

	if len(w.choices) != 3 {
		t.Fatalf("Expected 3 choices, got %d", len(w.choices))
	}
	w.correctIndex(t)

	seen := map[string]bool{}
	for _, c := range w.choices {
		if seen[c] {
			t.Errorf("Duplicate choice %q", c)
		}
		seen[c] = true
	}
}

func TestWordsScoring(t *testing.T) {
	w := newTestWords(nil)
	w.Enter()

	w.answer(w.correctIndex(t))
	if w.score != config.PointsPerCorrect {
		t.Errorf("Expected score %d, got %d", config.PointsPerCorrect, w.score)
	}
	if w.correct != 1 || w.attempted != 1 {
		t.Errorf("Expected 1 correct of 1 attempted, got %d of %d", w.correct, w.attempted)
	}
	if w.feedback != "Tama!" {
		t.Errorf("Expected positive feedback, got %q", w.feedback)
	}
}

func TestWordsWrongAnswerFeedback(t *testing.T) {
	w := newTestWords(nil)
	w.Enter()

	wrong := (w.correctIndex(t) + 1) % len(w.choices)
	target := w.target
	w.answer(wrong)

	if w.correct != 0 {
		t.Errorf("Expected 0 correct, got %d", w.correct)
	}
	if !strings.Contains(w.feedback, target) {
		t.Errorf("Expected feedback to name the correct word %q, got %q", target, w.feedback)
	}
}

func TestWordsRunEndsAfterTwenty(t *testing.T) {
	w := newTestWords(nil)
	w.Enter()

	for i := 0; i < wordsPerRun; i++ {
		if w.Next() != "" {
			t.Fatalf("Expected run still live at word %d", i)
		}
		w.answer(w.correctIndex(t))
		w.nextWord()
	}
	if w.Next() != config.StateOverworld {
		t.Errorf("Expected transition to overworld, got %q", w.Next())
	}
}

func TestWordsExitLogsAccuracy(t *testing.T) {
	sink := &fakeSink{}
	w := newTestWords(sink)
	w.Enter()

	w.answer(w.correctIndex(t))
	w.nextWord()
	wrong := (w.correctIndex(t) + 1) % len(w.choices)
	w.answer(wrong)
	w.Exit()

	if sink.calls != 1 {
		t.Fatalf("Expected one log call, got %d", sink.calls)
	}
	if sink.score != 50 {
		t.Errorf("Expected 50%% accuracy, got %d", sink.score)
	}
	if sink.gems != config.PointsPerCorrect {
		t.Errorf("Expected %d gems, got %d", config.PointsPerCorrect, sink.gems)
	}
	if sink.student != config.DefaultStudentID {
		t.Errorf("Expected default student, got %q", sink.student)
	}
}

func TestWordsFeedbackAdvancesAfterDelay(t *testing.T) {
	w := newTestWords(nil)
	w.Enter()

	w.answer(w.correctIndex(t))
	if !w.showFeedback {
		t.Fatal("Expected feedback shown after answer")
	}

	// Feedback holds for the configured delay, then the next word loads.
	if err := w.Update(config.FeedbackSec / 2); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !w.showFeedback {
		t.Error("Expected feedback still visible before the delay elapses")
	}
	if err := w.Update(config.FeedbackSec); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if w.showFeedback {
		t.Error("Expected feedback cleared after the delay")
	}
	if w.attempted != 1 {
		t.Errorf("Expected 1 attempt so far, got %d", w.attempted)
	}
}
