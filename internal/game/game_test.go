package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bright4Pres/KONEKTA/internal/config"
)

// fakeState records lifecycle calls and can request a transition.
type fakeState struct {
	entered int
	exited  int
	updated int
	next    string
	err     error
}

func (f *fakeState) Enter()                   { f.entered++; f.next = "" }
func (f *fakeState) Exit()                    { f.exited++ }
func (f *fakeState) Update(dt float64) error  { f.updated++; return f.err }
func (f *fakeState) Draw(screen *ebiten.Image) {}
func (f *fakeState) Next() string             { return f.next }

type fakeSessions struct {
	started  int
	ended    int
	duration float64
}

func (f *fakeSessions) StartSession(studentID string) (int64, error) {
	f.started++
	return 42, nil
}

func (f *fakeSessions) EndSession(sessionID int64, duration float64) error {
	f.ended++
	f.duration = duration
	return nil
}

func newTestGame(t *testing.T) (*Game, *fakeState, *fakeState, *fakeSessions) {
	t.Helper()
	hub := &fakeState{}
	words := &fakeState{}
	sessions := &fakeSessions{}

	g, err := New(config.DefaultConfig(), map[string]State{
		config.StateOverworld: hub,
		config.StateWords:     words,
	}, config.StateOverworld, sessions)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return g, hub, words, sessions
}

func TestNewEntersInitialState(t *testing.T) {
	g, hub, _, sessions := newTestGame(t)

	if hub.entered != 1 {
		t.Errorf("Expected initial state entered once, got %d", hub.entered)
	}
	if g.CurrentName() != config.StateOverworld {
		t.Errorf("Expected overworld current, got %q", g.CurrentName())
	}
	if sessions.started != 1 {
		t.Errorf("Expected one session started, got %d", sessions.started)
	}
}

func TestNewUnknownInitialState(t *testing.T) {
	_, err := New(config.DefaultConfig(), map[string]State{}, "nowhere", nil)
	if err == nil {
		t.Error("Expected error for unknown initial state, got nil")
	}
}

func TestTransitionHandshake(t *testing.T) {
	g, hub, words, _ := newTestGame(t)

	hub.next = config.StateWords
	if err := g.advance(1.0 / 60); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	if hub.exited != 1 {
		t.Errorf("Expected hub exited once, got %d", hub.exited)
	}
	if words.entered != 1 {
		t.Errorf("Expected words entered once, got %d", words.entered)
	}
	if g.CurrentName() != config.StateWords {
		t.Errorf("Expected words current, got %q", g.CurrentName())
	}
	if hub.next != "" {
		t.Error("Expected pending transition cleared by Enter")
	}
}

func TestUnknownTransitionIgnored(t *testing.T) {
	g, hub, _, _ := newTestGame(t)

	hub.next = "nowhere"
	if err := g.advance(1.0 / 60); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if g.CurrentName() != config.StateOverworld {
		t.Errorf("Expected dispatcher to stay on overworld, got %q", g.CurrentName())
	}
	if hub.exited != 0 {
		t.Errorf("Expected hub not exited, got %d exits", hub.exited)
	}
}

func TestStateErrorPropagates(t *testing.T) {
	g, hub, _, _ := newTestGame(t)

	hub.err = ebiten.Termination
	if err := g.advance(1.0 / 60); err != ebiten.Termination {
		t.Errorf("Expected state error propagated, got %v", err)
	}
}

func TestShutdownEndsSession(t *testing.T) {
	g, hub, _, sessions := newTestGame(t)

	if err := g.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if sessions.ended != 1 {
		t.Errorf("Expected one session ended, got %d", sessions.ended)
	}
	if hub.exited != 1 {
		t.Errorf("Expected active state exited on shutdown, got %d", hub.exited)
	}
}

func TestLayout(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != config.ScreenWidth || h != config.ScreenHeight {
		t.Errorf("Expected fixed %dx%d, got %dx%d", config.ScreenWidth, config.ScreenHeight, w, h)
	}
}
