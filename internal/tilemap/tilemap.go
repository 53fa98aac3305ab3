// Package tilemap composes a tileset and a layer store into the
// drawable, queryable world map: ordered layer compositing with
// viewport culling, tile-granular collision, marker-driven interaction
// zones and spawn-point selection.
package tilemap

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/grid"
	"github.com/bright4Pres/KONEKTA/internal/layers"
	"github.com/bright4Pres/KONEKTA/internal/tileset"
)

// Zone is a named interaction location, derived once at load time from
// the gamedesignation layer and immutable afterwards.
type Zone struct {
	Name  string
	TileX int
	TileY int
}

// Tilemap is read-only after construction except for the tileset's
// internal transform cache.
type Tilemap struct {
	ts    *tileset.Tileset // may be nil: map renders blank
	store *layers.Store
	conv  grid.Converter
	zones []Zone
}

// New builds a tilemap. markers maps gamedesignation cell values to
// zone names; the first occurrence of each marker wins.
func New(ts *tileset.Tileset, store *layers.Store, tileSize int, markers map[uint32]string) *Tilemap {
	m := &Tilemap{
		ts:    ts,
		store: store,
		conv:  grid.Converter{TileSize: tileSize},
	}

	seen := map[string]bool{}
	des := store.Layer(config.DesignationLayer)
	if des != nil {
		for y := 0; y < des.Rows; y++ {
			for x := 0; x < des.Cols; x++ {
				name, ok := markers[des.At(x, y)]
				if !ok || seen[name] {
					continue
				}
				seen[name] = true
				m.zones = append(m.zones, Zone{Name: name, TileX: x, TileY: y})
			}
		}
	}
	return m
}

// Cols returns the map width in tiles.
func (m *Tilemap) Cols() int { return m.store.Cols }

// Rows returns the map height in tiles.
func (m *Tilemap) Rows() int { return m.store.Rows }

// Width returns the map width in pixels.
func (m *Tilemap) Width() int { return m.store.Cols * m.conv.TileSize }

// Height returns the map height in pixels.
func (m *Tilemap) Height() int { return m.store.Rows * m.conv.TileSize }

// Zones returns the interaction zones found at load time.
func (m *Tilemap) Zones() []Zone { return m.zones }

// Converter returns the pixel/tile converter shared with entities on
// this map.
func (m *Tilemap) Converter() grid.Converter { return m.conv }

// visibleRange returns the half-open cell range [lo, hi) covering every
// cell whose projected rectangle intersects a viewport of extent view
// at camera offset cam. Maps can be hundreds of tiles across, so draw
// cost must scale with the viewport, not the map.
func (m *Tilemap) visibleRange(cam float64, view, cells int) (int, int) {
	tile := float64(m.conv.TileSize)
	lo := int(cam / tile)
	hi := int((cam+float64(view))/tile) + 1
	if lo < 0 {
		lo = 0
	}
	if hi > cells {
		hi = cells
	}
	return lo, hi
}

// Draw composites the drawable layers in fixed bottom-to-top order,
// culled to the viewport.
func (m *Tilemap) Draw(screen *ebiten.Image, camX, camY float64) {
	if m.ts == nil {
		return
	}
	viewW := screen.Bounds().Dx()
	viewH := screen.Bounds().Dy()
	x0, x1 := m.visibleRange(camX, viewW, m.store.Cols)
	y0, y1 := m.visibleRange(camY, viewH, m.store.Rows)

	for _, name := range config.DrawOrder {
		g := m.store.Layer(name)
		if g == nil {
			continue
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				raw := g.At(x, y)
				if raw == 0 {
					continue
				}
				img, ok := m.ts.Tile(raw)
				if !ok {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(m.conv.TileToPixel(x)-camX, m.conv.TileToPixel(y)-camY)
				screen.DrawImage(img, op)
			}
		}
	}
}

// IsBlocked reports whether the tile at (tileX, tileY) is impassable.
// Everything outside the map is blocked. With a collision layer, a
// cell value > 0 blocks; without one, only the outer ring of the map
// blocks (boundary fence).
func (m *Tilemap) IsBlocked(tileX, tileY int) bool {
	if tileX < 0 || tileY < 0 {
		return true
	}
	col := m.store.Layer(config.CollisionLayer)
	if col != nil {
		if tileX >= col.Cols || tileY >= col.Rows {
			return true
		}
		return col.At(tileX, tileY) > 0
	}
	return tileX >= m.store.Cols-1 || tileY >= m.store.Rows-1
}

// ZoneAt returns the interaction zone within one tile of the query
// coordinate (the 3x3 neighborhood), so the player does not have to
// stand on the exact marker tile to trigger it.
func (m *Tilemap) ZoneAt(tileX, tileY int) (string, bool) {
	for _, z := range m.zones {
		dx := tileX - z.TileX
		dy := tileY - z.TileY
		if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
			return z.Name, true
		}
	}
	return "", false
}

// SpawnPoint picks a starting tile: the first non-zero cell scanning
// terrain, then path, then water (prefer guaranteed-walkable ground
// over open water), falling back to the grid center, and finally to a
// fixed default when no layers loaded at all.
func (m *Tilemap) SpawnPoint() (int, int) {
	for _, name := range []string{"terrain", "path", "water"} {
		g := m.store.Layer(name)
		if g == nil {
			continue
		}
		for y := 0; y < g.Rows; y++ {
			for x := 0; x < g.Cols; x++ {
				if g.At(x, y) != 0 {
					return x, y
				}
			}
		}
	}
	if m.store.Cols > 0 && m.store.Rows > 0 {
		return m.store.Cols / 2, m.store.Rows / 2
	}
	return config.DefaultSpawnX, config.DefaultSpawnY
}
