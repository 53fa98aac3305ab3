// Package layers loads the named integer grids that make up a map.
// Each layer is a CSV file of tile values, one row per line. An empty
// token or the sentinel -1 normalizes to 0 ("no tile"). A missing
// layer file is not an error: the layer is simply absent and reads as
// entirely empty.
package layers

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Grid is a rectangular, row-major grid of raw tile values.
type Grid struct {
	Cols, Rows int
	cells      []uint32
}

// NewGrid creates an empty grid of the given extent.
func NewGrid(cols, rows int) *Grid {
	return &Grid{Cols: cols, Rows: rows, cells: make([]uint32, cols*rows)}
}

// At returns the cell value, or 0 outside the grid's own extent.
// Layers smaller than the map therefore read as empty past their edge.
func (g *Grid) At(x, y int) uint32 {
	if g == nil || x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
		return 0
	}
	return g.cells[y*g.Cols+x]
}

// Set writes a cell value, ignoring out-of-range coordinates.
func (g *Grid) Set(x, y int, v uint32) {
	if g == nil || x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
		return
	}
	g.cells[y*g.Cols+x] = v
}

// Load parses one CSV layer file. Ragged rows are tolerated; the grid
// is as wide as the widest row.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layer %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse layer %s: %w", path, err)
	}

	cols := 0
	for _, row := range records {
		if len(row) > cols {
			cols = len(row)
		}
	}

	g := NewGrid(cols, len(records))
	for y, row := range records {
		for x, tok := range row {
			g.cells[y*cols+x] = parseCell(tok)
		}
	}
	return g, nil
}

// parseCell normalizes one token. Empty, -1, garbage and values that
// do not fit in 32 bits all become 0 so a damaged map file degrades to
// blank cells instead of aborting or aliasing a flip-bit value.
func parseCell(tok string) uint32 {
	tok = strings.TrimSpace(tok)
	if tok == "" || tok == "-1" {
		return 0
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// Store holds every layer loaded for one map. The map extent is taken
// from the first layer that loads; smaller layers clip (cells past
// their own edge read as 0).
type Store struct {
	grids      map[string]*Grid
	Cols, Rows int
}

// NewStore builds a store from pre-built grids, mainly for tests and
// the asset generator. Extent comes from the first name that exists,
// in the order given.
func NewStore(order []string, grids map[string]*Grid) *Store {
	s := &Store{grids: map[string]*Grid{}}
	for _, name := range order {
		g := grids[name]
		if g == nil {
			continue
		}
		s.grids[name] = g
		if s.Cols == 0 && s.Rows == 0 {
			s.Cols, s.Rows = g.Cols, g.Rows
		}
	}
	return s
}

// LoadStore loads the named layers from <dir>/<name>.csv. Missing
// files are logged and skipped; a layer that fails to parse is also
// skipped (the map just renders without it).
func LoadStore(dir string, names []string) *Store {
	s := &Store{grids: map[string]*Grid{}}
	for _, name := range names {
		path := filepath.Join(dir, name+".csv")
		g, err := Load(path)
		if err != nil {
			log.Printf("layer %q not loaded: %v", name, err)
			continue
		}
		s.grids[name] = g
		if s.Cols == 0 && s.Rows == 0 {
			s.Cols, s.Rows = g.Cols, g.Rows
		} else if g.Cols != s.Cols || g.Rows != s.Rows {
			log.Printf("layer %q extent %dx%d differs from map extent %dx%d, clipping",
				name, g.Cols, g.Rows, s.Cols, s.Rows)
		}
	}
	return s
}

// Layer returns the named grid, or nil when that layer was never
// loaded. Callers treat nil as an entirely empty layer.
func (s *Store) Layer(name string) *Grid {
	if s == nil {
		return nil
	}
	return s.grids[name]
}
