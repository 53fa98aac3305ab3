package camera

import (
	"math"
	"testing"
)

const (
	viewW = 1024
	viewH = 768
	mapW  = 4096
	mapH  = 3072
)

func TestSnapCentersPlayer(t *testing.T) {
	c := New(32, 16)
	c.Snap(2048, 1536, viewW, viewH, mapW, mapH)

	wantX, wantY := c.Target(2048, 1536, viewW, viewH)
	if c.X != wantX || c.Y != wantY {
		t.Errorf("Expected snap to target (%v,%v), got (%v,%v)", wantX, wantY, c.X, c.Y)
	}
}

func TestUpdateConverges(t *testing.T) {
	c := New(32, 16)
	c.Snap(2048, 1536, viewW, viewH, mapW, mapH)

	// Move the player and tick; the camera must close in on the new
	// target monotonically without snapping.
	px, py := 2480.0, 1800.0
	tx, ty := c.Target(px, py, viewW, viewH)

	prev := math.Hypot(c.X-tx, c.Y-ty)
	c.Update(px, py, viewW, viewH, mapW, mapH)
	first := math.Hypot(c.X-tx, c.Y-ty)
	if first >= prev {
		t.Fatalf("Expected camera to approach target, distance went %v -> %v", prev, first)
	}
	if first == 0 {
		t.Fatal("Expected smoothed follow, camera snapped in one tick")
	}

	for i := 0; i < 600; i++ {
		c.Update(px, py, viewW, viewH, mapW, mapH)
	}
	if d := math.Hypot(c.X-tx, c.Y-ty); d > 0.5 {
		t.Errorf("Expected camera to converge on target, still %v away", d)
	}
}

func TestClampToMapBounds(t *testing.T) {
	c := New(32, 16)

	c.Snap(0, 0, viewW, viewH, mapW, mapH)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("Expected clamp at origin, got (%v,%v)", c.X, c.Y)
	}

	c.Snap(mapW, mapH, viewW, viewH, mapW, mapH)
	if c.X != mapW-viewW || c.Y != mapH-viewH {
		t.Errorf("Expected clamp at far corner (%d,%d), got (%v,%v)",
			mapW-viewW, mapH-viewH, c.X, c.Y)
	}
}

func TestMapSmallerThanViewportPinsToOrigin(t *testing.T) {
	c := New(32, 16)
	c.Snap(100, 100, viewW, viewH, 320, 240)

	if c.X != 0 || c.Y != 0 {
		t.Errorf("Expected small map pinned to origin, got (%v,%v)", c.X, c.Y)
	}
}

func TestOffset(t *testing.T) {
	c := New(32, 16)
	c.Snap(2048, 1536, viewW, viewH, mapW, mapH)

	x, y := c.Offset()
	if x != c.X || y != c.Y {
		t.Errorf("Expected offset (%v,%v), got (%v,%v)", c.X, c.Y, x, y)
	}
}
