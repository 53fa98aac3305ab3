// Package ui provides the shared drawing helpers used by every screen:
// blocky rectangles with shadows and borders, debug-font text with a
// drop shadow, and an explicitly owned render cache for pre-built
// backgrounds.
package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawRect fills an axis-aligned rectangle.
func DrawRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// DrawRectOutline strokes a rectangle border of the given thickness.
func DrawRectOutline(dst *ebiten.Image, x, y, w, h, thick int, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(thick), clr, false)
}

// DrawBox draws the standard blocky panel: drop shadow, fill, border.
func DrawBox(dst *ebiten.Image, x, y, w, h int, fill, border color.Color) {
	DrawRect(dst, x+3, y+3, w, h, color.RGBA{0, 0, 0, 255})
	DrawRect(dst, x, y, w, h, fill)
	DrawRectOutline(dst, x, y, w, h, 3, border)
}

// DrawText prints debug-font text with a one-pixel shadow for
// readability over busy backgrounds.
func DrawText(dst *ebiten.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(dst, text, x+1, y+1)
	ebitenutil.DebugPrintAt(dst, text, x, y)
}

// TextWidth approximates the debug font's pixel width for centering.
func TextWidth(text string) int {
	return len(text) * 6
}

// DrawTextCentered prints text horizontally centered on cx.
func DrawTextCentered(dst *ebiten.Image, text string, cx, y int) {
	DrawText(dst, text, cx-TextWidth(text)/2, y)
}

// Cache owns pre-rendered images that depend on the viewport size.
// It is constructed and held by each screen instance rather than
// living in package-level state, and rebuilds when the viewport
// dimensions change (the invalidation key).
type Cache struct {
	w, h       int
	background *ebiten.Image
}

// Background returns a vertical gradient sized to the viewport,
// rebuilt only when w or h differ from the cached build.
func (c *Cache) Background(w, h int, top, bottom color.RGBA) *ebiten.Image {
	if c.background != nil && c.w == w && c.h == h {
		return c.background
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		row := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, row)
		}
	}

	c.w, c.h = w, h
	c.background = ebiten.NewImageFromImage(img)
	return c.background
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// WrapText breaks text into lines of at most maxChars characters,
// splitting on word boundaries.
func WrapText(text string, maxChars int) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if len(test) <= maxChars {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
