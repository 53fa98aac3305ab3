package player

import (
	"testing"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/grid"
)

// fakeWorld blocks an explicit set of tiles.
type fakeWorld struct {
	blocked map[[2]int]bool
}

func (w fakeWorld) IsBlocked(tileX, tileY int) bool {
	return w.blocked[[2]int{tileX, tileY}]
}

func open() fakeWorld {
	return fakeWorld{blocked: map[[2]int]bool{}}
}

// newTestPlayer loads no art (bogus asset dir), exercising the
// placeholder path.
func newTestPlayer(tileX, tileY int) *Player {
	return New(tileX, tileY, grid.Converter{TileSize: config.TileSize}, "testdata-missing")
}

func TestSetTileResetsPixelPosition(t *testing.T) {
	p := newTestPlayer(3, 4)
	if p.PixelX != 96 || p.PixelY != 128 {
		t.Errorf("Expected pixel (96,128), got (%v,%v)", p.PixelX, p.PixelY)
	}
	if p.TileX != 3 || p.TileY != 4 {
		t.Errorf("Expected tile (3,4), got (%d,%d)", p.TileX, p.TileY)
	}
}

func TestWalkSpeed(t *testing.T) {
	p := newTestPlayer(5, 5)
	start := p.PixelX

	p.Move(1, 0, open(), false)
	if p.PixelX != start+config.WalkSpeed {
		t.Errorf("Expected walk step of %v px, got %v", config.WalkSpeed, p.PixelX-start)
	}
	if p.Gait != GaitWalking {
		t.Errorf("Expected walking gait, got %v", p.Gait)
	}
}

func TestRunSpeed(t *testing.T) {
	p := newTestPlayer(5, 5)
	start := p.PixelY

	p.Move(0, 1, open(), true)
	if p.PixelY != start+config.RunSpeed {
		t.Errorf("Expected run step of %v px, got %v", config.RunSpeed, p.PixelY-start)
	}
	if p.Gait != GaitRunning {
		t.Errorf("Expected running gait, got %v", p.Gait)
	}
}

func TestTileTracksPixelPosition(t *testing.T) {
	p := newTestPlayer(5, 5)
	w := open()

	// Walk right until the tile coordinate advances; tile must always
	// equal floor(pixel / tileSize).
	for i := 0; i < 40; i++ {
		p.Move(1, 0, w, false)
		want := int(p.PixelX) / config.TileSize
		if p.TileX != want {
			t.Fatalf("Expected tile %d at pixel %v, got %d", want, p.PixelX, p.TileX)
		}
	}
	if p.TileX == 5 {
		t.Error("Expected player to reach a new tile after 40 walk ticks")
	}
}

func TestDiagonalIntentResolvesVertical(t *testing.T) {
	p := newTestPlayer(5, 5)
	startX := p.PixelX

	p.Move(1, -1, open(), false)
	if p.PixelX != startX {
		t.Error("Expected no horizontal movement on diagonal intent")
	}
	if p.Facing != FacingUp {
		t.Errorf("Expected facing up on diagonal intent, got %v", p.Facing)
	}
}

func TestFacing(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   Facing
	}{
		{-1, 0, FacingLeft},
		{1, 0, FacingRight},
		{0, -1, FacingUp},
		{0, 1, FacingDown},
	}
	for _, tc := range cases {
		p := newTestPlayer(5, 5)
		p.Move(tc.dx, tc.dy, open(), false)
		if p.Facing != tc.want {
			t.Errorf("Expected facing %v for intent (%d,%d), got %v", tc.want, tc.dx, tc.dy, p.Facing)
		}
	}
}

func TestBlockedMoveRefused(t *testing.T) {
	p := newTestPlayer(5, 5)
	w := fakeWorld{blocked: map[[2]int]bool{{6, 5}: true}}

	// Walk right up against the wall; the player may cross its own
	// tile but never enter the blocked one.
	for i := 0; i < 60; i++ {
		p.Move(1, 0, w, false)
	}
	if p.TileX >= 6 {
		t.Errorf("Expected player held out of blocked tile, reached tile %d", p.TileX)
	}

	// At the wall the gait drops to idle and position freezes.
	before := p.PixelX
	p.Move(1, 0, w, false)
	if p.PixelX != before {
		t.Error("Expected pixel position frozen against wall")
	}
	if p.Gait != GaitIdle {
		t.Errorf("Expected idle gait against wall, got %v", p.Gait)
	}
}

func TestNoIntentIdles(t *testing.T) {
	p := newTestPlayer(5, 5)
	p.Move(1, 0, open(), false)
	p.Move(0, 0, open(), false)

	if p.Gait != GaitIdle {
		t.Errorf("Expected idle gait with no intent, got %v", p.Gait)
	}
}

func TestAnimationPhaseWraps(t *testing.T) {
	p := newTestPlayer(5, 5)
	w := open()

	for i := 0; i < 500; i++ {
		p.Move(0, 1, w, true)
	}
	if p.Phase < 0 || p.Phase >= float64(placeholderFrames) {
		t.Errorf("Expected phase within [0,%d), got %v", placeholderFrames, p.Phase)
	}
}
