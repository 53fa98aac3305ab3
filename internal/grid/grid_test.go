package grid

import "testing"

func TestTileToPixel(t *testing.T) {
	c := Converter{TileSize: 32}

	if got := c.TileToPixel(0); got != 0 {
		t.Errorf("Expected tile 0 at pixel 0, got %v", got)
	}
	if got := c.TileToPixel(5); got != 160 {
		t.Errorf("Expected tile 5 at pixel 160, got %v", got)
	}
}

func TestPixelToTile(t *testing.T) {
	c := Converter{TileSize: 32}

	cases := []struct {
		pixel float64
		tile  int
	}{
		{0, 0},
		{31.9, 0},
		{32, 1},
		{63, 1},
		{64, 2},
		{-1, -1},
		{-32, -1},
		{-33, -2},
	}
	for _, tc := range cases {
		if got := c.PixelToTile(tc.pixel); got != tc.tile {
			t.Errorf("Expected pixel %v in tile %d, got %d", tc.pixel, tc.tile, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	c := Converter{TileSize: 32}

	for tile := -3; tile <= 3; tile++ {
		if got := c.PixelToTile(c.TileToPixel(tile)); got != tile {
			t.Errorf("Expected round trip of tile %d, got %d", tile, got)
		}
	}
}
