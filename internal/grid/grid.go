// Package grid is the single authority for pixel<->tile coordinate
// conversion. Every package that needs the tile size goes through a
// Converter so the constant cannot drift between the map, the player
// and the camera.
package grid

import "math"

// Converter converts between pixel space and tile space for one map.
type Converter struct {
	TileSize int
}

// TileToPixel returns the pixel coordinate of a tile's top-left corner.
func (c Converter) TileToPixel(t int) float64 {
	return float64(t * c.TileSize)
}

// PixelToTile returns the tile containing the given pixel coordinate.
// Negative pixels map to negative tiles (floor division).
func (c Converter) PixelToTile(p float64) int {
	return int(math.Floor(p / float64(c.TileSize)))
}
