// Package assetgen produces the placeholder art and the demo hub map:
// the 16px tileset atlas, the three player sprite sheets and the CSV
// layer files. It exists so the game runs from a fresh checkout before
// real art is dropped in.
package assetgen

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bright4Pres/KONEKTA/internal/config"
)

// CellSize is the atlas cell edge in the generated tileset.
const CellSize = config.AtlasTileSize

// FrameSize is the sprite sheet frame edge.
const FrameSize = 32

// Atlas indices for the generated tileset. Index 0 is reserved for
// empty cells.
const (
	TileWater uint32 = iota + 1
	TileGrass
	TilePath
	TileWall
	TileRoof
	TileTree
	TileShadow
	TileFlowers
)

// GenerateAll writes the tileset, the sprite sheets and the hub map
// under dataDir.
func GenerateAll(dataDir string) error {
	if err := os.MkdirAll(filepath.Join(dataDir, "sprites"), 0o755); err != nil {
		return fmt.Errorf("create data dirs: %w", err)
	}
	mapDir := filepath.Join(dataDir, "maps", "hub")
	if err := os.MkdirAll(mapDir, 0o755); err != nil {
		return fmt.Errorf("create map dir: %w", err)
	}

	if err := savePNG(buildTileset(), filepath.Join(dataDir, "tiles.png")); err != nil {
		return fmt.Errorf("write tileset: %w", err)
	}
	for gait, walkPhase := range map[string]bool{"idle": false, "walk": true, "run": true} {
		sheet := buildSpriteSheet(walkPhase)
		if err := savePNG(sheet, filepath.Join(dataDir, "sprites", gait+".png")); err != nil {
			return fmt.Errorf("write sprite sheet %s: %w", gait, err)
		}
	}
	return writeHubMap(mapDir)
}

func solidCell(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CellSize, CellSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// patternedCell overlays simple texture so adjacent tiles of the same
// type do not read as one flat field.
func patternedCell(base, accent color.RGBA, pattern string) *image.RGBA {
	img := solidCell(base)
	switch pattern {
	case "waves":
		for y := 2; y < CellSize; y += 5 {
			for x := 0; x < CellSize; x++ {
				if (x+y)%4 < 2 {
					img.SetRGBA(x, y, accent)
				}
			}
		}
	case "speckle":
		for i := 0; i < CellSize; i += 3 {
			img.SetRGBA(i, (i*7)%CellSize, accent)
			img.SetRGBA((i*5)%CellSize, i, accent)
		}
	case "bricks":
		for y := 0; y < CellSize; y += 4 {
			for x := 0; x < CellSize; x++ {
				img.SetRGBA(x, y, accent)
			}
			shift := 0
			if (y/4)%2 == 1 {
				shift = 4
			}
			for x := shift; x < CellSize; x += 8 {
				for dy := 0; dy < 4; dy++ {
					img.SetRGBA(x, y+dy, accent)
				}
			}
		}
	case "canopy":
		cx, cy, r := CellSize/2, CellSize/2, CellSize/2-1
		for y := 0; y < CellSize; y++ {
			for x := 0; x < CellSize; x++ {
				dx, dy := x-cx, y-cy
				if dx*dx+dy*dy <= r*r {
					img.SetRGBA(x, y, accent)
				}
			}
		}
	case "dots":
		for _, p := range []image.Point{{4, 4}, {11, 6}, {6, 11}, {12, 12}} {
			img.SetRGBA(p.X, p.Y, accent)
			img.SetRGBA(p.X+1, p.Y, accent)
		}
	}
	return img
}

// buildTileset lays the cells out in atlas-index order, one row. Cell
// 0 is a transparent placeholder: tile value 0 means "empty" and is
// never drawn, so the first addressable cell is index 1.
func buildTileset() *image.RGBA {
	grass := color.RGBA{96, 160, 64, 255}
	cells := []*image.RGBA{
		image.NewRGBA(image.Rect(0, 0, CellSize, CellSize)),
		patternedCell(color.RGBA{52, 108, 196, 255}, color.RGBA{88, 144, 224, 255}, "waves"),
		patternedCell(grass, color.RGBA{80, 140, 52, 255}, "speckle"),
		patternedCell(color.RGBA{190, 164, 120, 255}, color.RGBA{168, 142, 100, 255}, "speckle"),
		patternedCell(color.RGBA{168, 120, 88, 255}, color.RGBA{132, 92, 64, 255}, "bricks"),
		patternedCell(color.RGBA{176, 72, 56, 255}, color.RGBA{140, 52, 40, 255}, "bricks"),
		patternedCell(grass, color.RGBA{40, 96, 36, 255}, "canopy"),
		solidCell(color.RGBA{0, 0, 0, 70}),
		patternedCell(grass, color.RGBA{232, 120, 168, 255}, "dots"),
	}

	atlas := image.NewRGBA(image.Rect(0, 0, len(cells)*CellSize, CellSize))
	for i, cell := range cells {
		x := i * CellSize
		draw.Draw(atlas, image.Rect(x, 0, x+CellSize, CellSize), cell, image.Point{}, draw.Src)
	}
	return atlas
}

// buildSpriteSheet draws a 4x4 sheet: one row per facing (down, left,
// right, up), four frames each. walkPhase alternates the legs.
func buildSpriteSheet(walkPhase bool) *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, 4*FrameSize, 4*FrameSize))

	shirt := color.RGBA{0, 102, 204, 255}
	skin := color.RGBA{255, 220, 177, 255}
	hair := color.RGBA{40, 30, 20, 255}
	eyes := color.RGBA{0, 0, 0, 255}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			ox, oy := col*FrameSize, row*FrameSize
			rect := func(x, y, w, h int, c color.RGBA) {
				draw.Draw(sheet, image.Rect(ox+x, oy+y, ox+x+w, oy+y+h),
					&image.Uniform{c}, image.Point{}, draw.Src)
			}

			rect(8, 12, 16, 16, shirt) // body
			rect(10, 4, 12, 10, skin)  // head
			rect(10, 4, 12, 3, hair)

			// Eyes mark the facing: row order down, left, right, up.
			switch row {
			case 0:
				rect(12, 9, 2, 2, eyes)
				rect(18, 9, 2, 2, eyes)
			case 1:
				rect(10, 9, 2, 2, eyes)
			case 2:
				rect(20, 9, 2, 2, eyes)
			}

			stride := walkPhase && col%2 == 1
			if stride {
				rect(8, 28, 4, 4, shirt)
				rect(20, 28, 4, 4, shirt)
			} else {
				rect(10, 28, 4, 4, shirt)
				rect(18, 28, 4, 4, shirt)
			}
		}
	}
	return sheet
}

// hub map extent in tiles.
const (
	hubCols = 32
	hubRows = 24
)

// writeHubMap lays out the demo village: a water ring, grass,
// crossing paths, one small structure per learning zone and the zone
// markers themselves.
func writeHubMap(mapDir string) error {
	layers := map[string][][]uint32{}
	for _, name := range config.DrawOrder {
		layers[name] = emptyGrid()
	}
	layers[config.CollisionLayer] = emptyGrid()
	layers[config.DesignationLayer] = emptyGrid()

	water := layers["water"]
	terrain := layers["terrain"]
	path := layers["path"]
	structures := layers["structures"]
	foliage := layers["foliage"]
	shadow := layers["shadow"]
	collision := layers[config.CollisionLayer]
	marks := layers[config.DesignationLayer]

	for y := 0; y < hubRows; y++ {
		for x := 0; x < hubCols; x++ {
			if x == 0 || y == 0 || x == hubCols-1 || y == hubRows-1 {
				water[y][x] = TileWater
				collision[y][x] = 1
			} else {
				terrain[y][x] = TileGrass
			}
		}
	}

	for x := 2; x < hubCols-2; x++ {
		path[12][x] = TilePath
	}
	for y := 2; y < hubRows-2; y++ {
		path[y][16] = TilePath
	}

	// One marker tile per learning zone, each beside a small hut.
	markers := []struct {
		value uint32
		x, y  int
	}{
		{70, 5, 5},
		{71, 26, 5},
		{72, 5, 18},
		{73, 26, 18},
		{74, 10, 12},
		{75, 22, 12},
	}
	for _, m := range markers {
		marks[m.y][m.x] = m.value
		path[m.y][m.x] = TilePath

		// Hut two tiles above the marker, out of the 3x3 zone.
		hx, hy := m.x-1, m.y-3
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 3; dx++ {
				tile := TileWall
				if dy == 0 {
					tile = TileRoof
				}
				structures[hy+dy][hx+dx] = tile
				collision[hy+dy][hx+dx] = 1
			}
		}
	}

	trees := []image.Point{{3, 9}, {12, 3}, {20, 8}, {28, 10}, {8, 21}, {19, 20}, {29, 15}}
	for _, t := range trees {
		foliage[t.Y][t.X] = TileTree
		shadow[t.Y+1][t.X] = TileShadow
		collision[t.Y][t.X] = 1
	}

	flowers := []image.Point{{7, 7}, {14, 16}, {24, 4}, {18, 14}, {4, 14}}
	for _, f := range flowers {
		if foliage[f.Y][f.X] == 0 {
			foliage[f.Y][f.X] = TileFlowers
		}
	}

	for name, grid := range layers {
		if err := writeCSV(filepath.Join(mapDir, name+".csv"), grid); err != nil {
			return err
		}
	}
	return nil
}

func emptyGrid() [][]uint32 {
	g := make([][]uint32, hubRows)
	for y := range g {
		g[y] = make([]uint32, hubCols)
	}
	return g
}

func writeCSV(path string, grid [][]uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := make([]string, hubCols)
	for y := 0; y < hubRows; y++ {
		for x := 0; x < hubCols; x++ {
			row[x] = strconv.FormatUint(uint64(grid[y][x]), 10)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
