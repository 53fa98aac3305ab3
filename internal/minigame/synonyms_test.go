package minigame

import (
	"math/rand"
	"testing"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/progress"
)

func newTestSynonyms(sink ProgressSink) *Synonyms {
	s := NewSynonyms(config.DefaultConfig(), sink, rand.New(rand.NewSource(7)))
	s.Enter()
	return s
}

func (s *Synonyms) pick(t *testing.T, label string) int {
	t.Helper()
	for i, c := range s.set().Choices {
		if c == label {
			return i
		}
	}
	t.Fatalf("Choice %q not found in %v", label, s.set().Choices)
	return -1
}

func TestSynonymsRunLength(t *testing.T) {
	s := newTestSynonyms(nil)
	if len(s.order) != synonymRounds {
		t.Errorf("Expected %d rounds, got %d", synonymRounds, len(s.order))
	}
}

func TestSynonymsAsksSynonymThenAntonym(t *testing.T) {
	s := newTestSynonyms(nil)
	set := s.set()

	if got := s.wanted(); got != set.Synonym {
		t.Errorf("Expected synonym %q wanted first, got %q", set.Synonym, got)
	}
	s.answer(s.pick(t, set.Synonym))
	if s.score != config.PointsPerCorrect {
		t.Errorf("Expected score %d, got %d", config.PointsPerCorrect, s.score)
	}

	s.advanceRound()
	if !s.askAntonym {
		t.Fatal("Expected antonym half after the synonym")
	}
	if got := s.wanted(); got != set.Antonym {
		t.Errorf("Expected antonym %q wanted second, got %q", set.Antonym, got)
	}

	s.answer(s.pick(t, set.Antonym))
	s.advanceRound()
	if s.round != 1 {
		t.Errorf("Expected second word set, got round %d", s.round)
	}
	if s.askAntonym {
		t.Error("Expected new round to start with the synonym half")
	}
}

func TestSynonymsWrongAnswerScoresNothing(t *testing.T) {
	s := newTestSynonyms(nil)
	set := s.set()

	wrongLabel := set.Antonym // antonym is wrong while the synonym is asked
	s.answer(s.pick(t, wrongLabel))
	if s.score != 0 {
		t.Errorf("Expected score 0, got %d", s.score)
	}
	if s.correct != 0 || s.attempted != 1 {
		t.Errorf("Expected 0 correct of 1, got %d of %d", s.correct, s.attempted)
	}
}

func TestSynonymsRunEndsAndLogs(t *testing.T) {
	sink := &fakeSink{}
	s := newTestSynonyms(sink)

	for s.Next() == "" {
		s.answer(s.pick(t, s.wanted()))
		s.advanceRound()
	}
	if s.Next() != config.StateOverworld {
		t.Errorf("Expected transition to overworld, got %q", s.Next())
	}

	s.Exit()
	if sink.module != progress.ModuleSynonyms {
		t.Errorf("Expected module %q logged, got %q", progress.ModuleSynonyms, sink.module)
	}
	if sink.score != 100 {
		t.Errorf("Expected 100%% accuracy, got %d", sink.score)
	}
}
