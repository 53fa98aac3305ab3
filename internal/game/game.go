// Package game runs the top-level state machine. Each screen (the
// overworld hub, the mini-games, the teacher dashboard) is a State;
// the Game dispatches the Ebitengine loop to whichever state is
// current and performs the enter/exit handshake on transitions.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bright4Pres/KONEKTA/internal/config"
)

// State is one full-screen mode of the kiosk. Enter must reset any
// pending transition so a state can be revisited.
type State interface {
	Enter()
	Exit()
	Update(dt float64) error
	Draw(screen *ebiten.Image)
	// Next returns the name of the state to switch to, or "" to stay.
	Next() string
}

// SessionStore is the slice of the progress store the dispatcher needs
// for session bookkeeping.
type SessionStore interface {
	StartSession(studentID string) (int64, error)
	EndSession(sessionID int64, duration float64) error
}

// Game is the ebiten.Game implementation. It owns the state registry
// and the current play session.
type Game struct {
	states  map[string]State
	current State
	name    string

	cfg          *config.Config
	store        SessionStore
	sessionID    int64
	sessionStart time.Time
}

// New builds a dispatcher over the given states, entering the initial
// one and opening a play session. A nil store disables session
// tracking.
func New(cfg *config.Config, states map[string]State, initial string, store SessionStore) (*Game, error) {
	st, ok := states[initial]
	if !ok {
		return nil, fmt.Errorf("unknown initial state %q", initial)
	}
	g := &Game{
		states:  states,
		current: st,
		name:    initial,
		cfg:     cfg,
		store:   store,
	}
	if store != nil {
		id, err := store.StartSession(cfg.StudentID)
		if err != nil {
			return nil, fmt.Errorf("start session: %w", err)
		}
		g.sessionID = id
		g.sessionStart = time.Now()
	}
	g.current.Enter()
	return g, nil
}

// CurrentName reports the name of the active state.
func (g *Game) CurrentName() string {
	return g.name
}

// change performs the exit/enter handshake. Unknown names are ignored
// so a state cannot strand the dispatcher.
func (g *Game) change(name string) {
	next, ok := g.states[name]
	if !ok {
		return
	}
	g.current.Exit()
	g.current = next
	g.name = name
	g.current.Enter()
}

// Update runs one tick of the current state and applies any requested
// transition. The teacher combo (Ctrl+T) and the kiosk ESC behavior
// are global and handled here, before the state sees input.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if g.name != config.StateDashboard {
			g.change(config.StateDashboard)
			return nil
		}
	}
	if g.cfg.Kiosk && inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.name != config.StateOverworld {
		g.change(config.StateOverworld)
		return nil
	}

	return g.advance(1.0 / float64(config.TPS))
}

// advance ticks the current state and applies its requested
// transition.
func (g *Game) advance(dt float64) error {
	if err := g.current.Update(dt); err != nil {
		return err
	}
	if next := g.current.Next(); next != "" {
		g.change(next)
	}
	return nil
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout reports the fixed internal resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Shutdown exits the active state and closes the play session. Call
// after RunGame returns.
func (g *Game) Shutdown() error {
	g.current.Exit()
	if g.store == nil {
		return nil
	}
	return g.store.EndSession(g.sessionID, time.Since(g.sessionStart).Seconds())
}
