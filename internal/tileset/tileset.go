// Package tileset slices a single atlas image into fixed-size square
// cells addressed by linear index. Tile values carry three high-order
// flag bits for flips; the transformed, rescaled cell images are
// memoized so the render loop never re-slices a tile it has already
// seen.
package tileset

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Flip flag bits, stored in the top bits of a raw tile value. The
// diagonal flip is a transpose, realized as a 90 degree rotation plus
// a horizontal flip.
const (
	FlipH uint32 = 0x80000000
	FlipV uint32 = 0x40000000
	FlipD uint32 = 0x20000000

	indexMask uint32 = 0x1FFFFFFF
)

// Index strips the flip bits off a raw tile value.
func Index(raw uint32) uint32 {
	return raw & indexMask
}

// Flips reports the three flip flags of a raw tile value.
func Flips(raw uint32) (h, v, d bool) {
	return raw&FlipH != 0, raw&FlipV != 0, raw&FlipD != 0
}

// Tileset is a loaded atlas with its transform cache. The cache is the
// only mutable state and is only touched from the render pass, so no
// locking is needed.
type Tileset struct {
	src        *ebiten.Image
	cellSize   int
	renderSize int
	columns    int

	// Memoized transformed tiles, keyed by the raw (unmasked) value.
	cache map[uint32]*ebiten.Image
}

// Load reads the atlas image from disk. Column count is derived from
// the image width.
func Load(path string, cellSize, renderSize int) (*Tileset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tileset %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tileset %s: %w", path, err)
	}
	return New(ebiten.NewImageFromImage(img), cellSize, renderSize)
}

// New wraps an already-loaded atlas image.
func New(src *ebiten.Image, cellSize, renderSize int) (*Tileset, error) {
	if cellSize <= 0 || renderSize <= 0 {
		return nil, fmt.Errorf("invalid tile sizes: cell %d, render %d", cellSize, renderSize)
	}
	cols := src.Bounds().Dx() / cellSize
	if cols <= 0 {
		return nil, fmt.Errorf("tileset narrower than one %dpx cell", cellSize)
	}
	return &Tileset{
		src:        src,
		cellSize:   cellSize,
		renderSize: renderSize,
		columns:    cols,
		cache:      make(map[uint32]*ebiten.Image),
	}, nil
}

// Columns returns the atlas column count.
func (t *Tileset) Columns() int { return t.columns }

// cellRect returns the source rectangle for a masked index and whether
// it lies inside the atlas.
func (t *Tileset) cellRect(index uint32) (image.Rectangle, bool) {
	col := int(index) % t.columns
	row := int(index) / t.columns
	r := image.Rect(col*t.cellSize, row*t.cellSize, (col+1)*t.cellSize, (row+1)*t.cellSize)
	return r, r.In(t.src.Bounds())
}

// Tile returns the transformed, rescaled image for a raw tile value.
// Value 0 is "empty, draw nothing". Out-of-range indices return no
// image rather than failing, so a corrupt map cell costs one blank
// tile, never a crash.
func (t *Tileset) Tile(raw uint32) (*ebiten.Image, bool) {
	if raw == 0 {
		return nil, false
	}
	if img, ok := t.cache[raw]; ok {
		return img, true
	}

	rect, ok := t.cellRect(Index(raw))
	if !ok {
		return nil, false
	}
	sub := t.src.SubImage(rect).(*ebiten.Image)

	cell := float64(t.cellSize)
	tile := ebiten.NewImage(t.renderSize, t.renderSize)
	op := &ebiten.DrawImageOptions{}

	h, v, d := Flips(raw)
	if d {
		op.GeoM.Rotate(1.5707963267948966) // 90 degrees
		op.GeoM.Translate(cell, 0)
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(cell, 0)
	}
	if h {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(cell, 0)
	}
	if v {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, cell)
	}
	scale := float64(t.renderSize) / cell
	op.GeoM.Scale(scale, scale)
	tile.DrawImage(sub, op)

	t.cache[raw] = tile
	return tile, true
}
