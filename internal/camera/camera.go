// Package camera computes the viewport's top-left offset in map space
// as a smoothed follow of the player, clamped to map bounds.
package camera

import "github.com/bright4Pres/KONEKTA/internal/config"

// Camera holds the current viewport offset. It is a derived signal
// owned by the screen that created it; Snap is used on screen entry so
// the first frame shows no catch-up slide.
type Camera struct {
	X, Y float64

	smoothing    float64
	tileSize     int
	spriteOffset int
}

// New returns a camera with the standard follow tuning. spriteOffset
// compensates for the player sprite's above-feet anchor so the
// character appears vertically centered.
func New(tileSize, spriteOffset int) *Camera {
	return &Camera{
		smoothing:    config.CameraSmoothing,
		tileSize:     tileSize,
		spriteOffset: spriteOffset,
	}
}

// Offset returns the current viewport top-left in map space.
func (c *Camera) Offset() (float64, float64) {
	return c.X, c.Y
}

// Target returns the offset that would center the player in the
// viewport.
func (c *Camera) Target(px, py float64, viewW, viewH int) (float64, float64) {
	tx := px - float64(viewW)/2 + float64(c.tileSize)/2
	ty := py - float64(viewH)/2 + float64(c.spriteOffset)
	return tx, ty
}

// Update moves the offset a fraction of the way toward the target
// (exponential decay, smoothed not snapped) and clamps to map bounds.
func (c *Camera) Update(px, py float64, viewW, viewH, mapW, mapH int) {
	tx, ty := c.Target(px, py, viewW, viewH)
	c.X += (tx - c.X) * c.smoothing
	c.Y += (ty - c.Y) * c.smoothing
	c.clamp(viewW, viewH, mapW, mapH)
}

// Snap sets the offset directly to the target with no smoothing. Used
// only when a screen is freshly entered.
func (c *Camera) Snap(px, py float64, viewW, viewH, mapW, mapH int) {
	c.X, c.Y = c.Target(px, py, viewW, viewH)
	c.clamp(viewW, viewH, mapW, mapH)
}

func (c *Camera) clamp(viewW, viewH, mapW, mapH int) {
	c.X = clampAxis(c.X, mapW, viewW)
	c.Y = clampAxis(c.Y, mapH, viewH)
}

// clampAxis keeps the offset in [0, mapExtent-viewExtent], or pins it
// to 0 when the map is smaller than the viewport on that axis.
func clampAxis(v float64, mapExtent, viewExtent int) float64 {
	max := float64(mapExtent - viewExtent)
	if max < 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
