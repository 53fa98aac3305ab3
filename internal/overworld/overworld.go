// Package overworld is the hub screen: the tile map, the walking
// player, the follow camera and the zone-entry prompts that lead into
// the learning games.
package overworld

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/hud"
	"github.com/bright4Pres/KONEKTA/internal/player"
	"github.com/bright4Pres/KONEKTA/internal/progress"
	"github.com/bright4Pres/KONEKTA/internal/tilemap"
	"github.com/bright4Pres/KONEKTA/internal/ui"
)

// Input is one tick of player intent, decoupled from the keyboard so
// the tick logic is drivable without a window. DX/DY and Sprint are
// held states; Interact and Quit are key-down edges, so a key still
// held from a previous screen does not fire again.
type Input struct {
	DX, DY   int
	Sprint   bool
	Interact bool
	Quit     bool
}

// GemSource is the slice of the progress store the HUD needs.
type GemSource interface {
	StudentStats(studentID string) (progress.Stats, error)
}

// Camera is the follow camera as the screen drives it.
type Camera interface {
	Update(px, py float64, viewW, viewH, mapW, mapH int)
	Snap(px, py float64, viewW, viewH, mapW, mapH int)
	Offset() (float64, float64)
}

// Screen is the overworld hub state.
type Screen struct {
	cfg *config.Config
	tm  *tilemap.Tilemap
	pl  *player.Player
	cam Camera
	hud *hud.HUD

	cache ui.Cache
	gems  GemSource

	gemCount    int
	zone        string
	promptTimer float64
	next        string

	// Tile to restore the player to when returning from a game.
	resumeX, resumeY int
	hasResume        bool
}

// New assembles the hub from its parts. gems may be nil when no
// progress store is available.
func New(cfg *config.Config, tm *tilemap.Tilemap, pl *player.Player, cam Camera, gems GemSource) *Screen {
	return &Screen{
		cfg:  cfg,
		tm:   tm,
		pl:   pl,
		cam:  cam,
		hud:  hud.New(config.ScreenWidth, config.ScreenHeight),
		gems: gems,
	}
}

// Enter places the player at the resume tile if one was saved when a
// zone was entered, otherwise at the map spawn point, and snaps the
// camera so the first frame is already centered.
func (s *Screen) Enter() {
	s.next = ""
	s.zone = ""
	s.promptTimer = 0

	if s.hasResume {
		s.pl.SetTile(s.resumeX, s.resumeY)
	} else {
		sx, sy := s.tm.SpawnPoint()
		s.pl.SetTile(sx, sy)
	}
	s.cam.Snap(s.pl.PixelX, s.pl.PixelY,
		config.ScreenWidth, config.ScreenHeight, s.tm.Width(), s.tm.Height())

	if s.gems != nil {
		stats, err := s.gems.StudentStats(s.cfg.StudentID)
		if err != nil {
			log.Printf("load student stats: %v", err)
		} else {
			s.gemCount = stats.TotalGems
		}
	}
}

// Exit is a no-op; the resume tile is saved at interaction time.
func (s *Screen) Exit() {}

// Next reports the pending screen transition.
func (s *Screen) Next() string { return s.next }

// readInput samples the keyboard. Vertical intent wins over
// horizontal, so diagonals never reach the player.
func readInput() Input {
	var in Input
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		in.DY = -1
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		in.DY = 1
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		in.DX = -1
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		in.DX = 1
	}
	in.Sprint = ebiten.IsKeyPressed(ebiten.KeyShift)
	in.Interact = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}

// Update samples input and advances one tick.
func (s *Screen) Update(dt float64) error {
	return s.tick(readInput(), dt)
}

// tick is the simulation step: move, follow, detect zones, and handle
// interaction. ESC terminates the game outside kiosk mode; kiosk ESC
// is swallowed by the dispatcher before reaching here.
func (s *Screen) tick(in Input, dt float64) error {
	if in.Quit && !s.cfg.Kiosk {
		return ebiten.Termination
	}

	s.pl.Move(in.DX, in.DY, s.tm, in.Sprint)
	s.cam.Update(s.pl.PixelX, s.pl.PixelY,
		config.ScreenWidth, config.ScreenHeight, s.tm.Width(), s.tm.Height())

	zone, ok := s.tm.ZoneAt(s.pl.TileX, s.pl.TileY)
	if !ok {
		zone = ""
	}
	if zone != s.zone {
		s.zone = zone
		s.promptTimer = 0
	} else {
		s.promptTimer += dt
	}

	if in.Interact && s.zone != "" {
		if screen, ok := config.ZoneScreens[s.zone]; ok {
			s.resumeX, s.resumeY = s.pl.TileX, s.pl.TileY
			s.hasResume = true
			s.next = screen
		}
	}
	return nil
}

// Draw composites the scene: sky gradient, map layers, player, zone
// prompt and HUD.
func (s *Screen) Draw(screen *ebiten.Image) {
	bg := s.cache.Background(config.ScreenWidth, config.ScreenHeight,
		config.SkyTop, config.SkyBottom)
	screen.DrawImage(bg, nil)

	camX, camY := s.cam.Offset()
	s.tm.Draw(screen, camX, camY)
	s.pl.Draw(screen, camX, camY)

	if s.zone != "" {
		if label, ok := config.ZoneLabels[s.zone]; ok {
			s.hud.DrawPrompt(screen, label, s.promptTimer)
		}
	}
	s.hud.Draw(screen, s.gemCount)
}
