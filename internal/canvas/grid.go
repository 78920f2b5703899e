// Package canvas holds the tile grid edited by glyphpaint and the pure helpers
// (flood fill, resize anchoring) that edit commands are built from.
package canvas

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrCellCount indicates a cell slice that does not match the grid size.
var ErrCellCount = errors.New("cell count does not match grid size")

// Tile is the value stored in a grid cell: a glyph index drawn with a
// foreground color over a background color.
type Tile struct {
	Glyph int
	FG    color.RGBA
	BG    color.RGBA
}

// Cell is an optional Tile. The zero Cell is empty.
type Cell struct {
	tile Tile
	set  bool
}

// Empty returns the empty cell.
func Empty() Cell { return Cell{} }

// Filled returns a cell holding t.
func Filled(t Tile) Cell { return Cell{tile: t, set: true} }

// Tile returns the tile held by the cell and whether there is one.
func (c Cell) Tile() (Tile, bool) { return c.tile, c.set }

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool { return !c.set }

func (c Cell) String() string {
	if !c.set {
		return "<empty>"
	}
	return fmt.Sprintf("{glyph:%d fg:%v bg:%v}", c.tile.Glyph, c.tile.FG, c.tile.BG)
}

// Grid is a mutable rectangular array of cells stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New creates a width x height grid with every cell empty.
func New(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// FromCells builds a grid from row-major cells. Loaders use it to reject
// malformed data instead of tripping the index checks later.
func FromCells(width, height int, cells []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 || len(cells) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d cells", ErrCellCount, width, height, len(cells))
	}
	g := New(width, height)
	copy(g.cells, cells)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Contains reports whether (x, y) is a cell of g.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) index(x, y int) int {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("canvas: cell (%d,%d) out of range for %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Get returns the cell at (x, y). Coordinates outside the grid panic.
func (g *Grid) Get(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Set stores c at (x, y). Coordinates outside the grid panic.
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Cells returns a copy of the row-major cell slice.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Resize replaces the grid with a width x height one, copying the block
// described by plan: cells are read from (CopyX, CopyY) onwards in the old
// grid and written from (PasteX, PasteY) onwards in the new one.
func (g *Grid) Resize(width, height int, plan ResizePlan) {
	next := New(width, height)
	rows := min(height-plan.PasteY, g.height-plan.CopyY)
	cols := min(width-plan.PasteX, g.width-plan.CopyX)
	for dy := 0; dy < rows; dy++ {
		for dx := 0; dx < cols; dx++ {
			next.Set(plan.PasteX+dx, plan.PasteY+dy, g.Get(plan.CopyX+dx, plan.CopyY+dy))
		}
	}
	*g = *next
}
