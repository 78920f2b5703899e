// Package history provides the replayable edit log behind undo/redo.
package history

import (
	"fmt"

	"github.com/bethropolis/glyphpaint/internal/canvas"
)

// Kind identifies the variant of a Command.
type Kind int

const (
	KindPoint Kind = iota
	KindRegionFill
	KindRectFill
	KindResize
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindRegionFill:
		return "region-fill"
	case KindRectFill:
		return "rect-fill"
	case KindResize:
		return "resize"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is one immutable edit. Applying it to a grid must depend only on the
// command's own fields and the grid, so a log of commands replays to the same
// grid every time. The set of commands is closed to this package.
type Command interface {
	Kind() Kind
	Apply(g *canvas.Grid)
	Equal(other Command) bool
	isCommand()
}

// Point overwrites a single cell.
type Point struct {
	Cell canvas.Cell
	X, Y int
}

func (Point) Kind() Kind { return KindPoint }
func (Point) isCommand() {}

func (c Point) Apply(g *canvas.Grid) { g.Set(c.X, c.Y, c.Cell) }

func (c Point) Equal(other Command) bool {
	o, ok := other.(Point)
	return ok && o == c
}

// RegionFill overwrites every cell selected by its mask. The mask is computed
// once when the command is created and cannot be changed afterwards.
//
// The mask has the grid size at creation time. Replay keeps commands in their
// creation order, so the grid a fill is replayed on always has that size; a
// fill replayed after a Resize it did not originally follow would index out of
// range.
type RegionFill struct {
	Cell         canvas.Cell
	mask         *canvas.Mask
	SeedX, SeedY int
}

// NewRegionFill flood-fills g from (x, y) and freezes the region into a command
// that paints it with c.
func NewRegionFill(g *canvas.Grid, x, y int, c canvas.Cell) RegionFill {
	return RegionFill{Cell: c, mask: canvas.FloodFill(g, x, y), SeedX: x, SeedY: y}
}

// Mask returns a copy of the cells the fill paints.
func (c RegionFill) Mask() *canvas.Mask { return c.mask.Clone() }

func (RegionFill) Kind() Kind { return KindRegionFill }
func (RegionFill) isCommand() {}

func (c RegionFill) Apply(g *canvas.Grid) {
	c.mask.Each(func(x, y int) { g.Set(x, y, c.Cell) })
}

func (c RegionFill) Equal(other Command) bool {
	o, ok := other.(RegionFill)
	return ok && o.Cell == c.Cell && o.SeedX == c.SeedX && o.SeedY == c.SeedY && o.mask.Equal(c.mask)
}

// RectFill overwrites the rectangle spanned by two corners, inclusive. The
// corners may be given in any order.
type RectFill struct {
	Cell           canvas.Cell
	X0, Y0, X1, Y1 int
}

func (RectFill) Kind() Kind { return KindRectFill }
func (RectFill) isCommand() {}

func (c RectFill) Apply(g *canvas.Grid) {
	x0, x1 := min(c.X0, c.X1), max(c.X0, c.X1)
	y0, y1 := min(c.Y0, c.Y1), max(c.Y0, c.Y1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.Set(x, y, c.Cell)
		}
	}
}

func (c RectFill) Equal(other Command) bool {
	o, ok := other.(RectFill)
	return ok && o == c
}

// Resize replaces the grid with a Width x Height one, carrying content over as
// described by Plan. Width and Height must be at least 1.
type Resize struct {
	Width, Height int
	Plan          canvas.ResizePlan
}

// NewResize builds the command that resizes g to width x height around anchor.
// Sizes below 1 are clamped to 1.
func NewResize(g *canvas.Grid, width, height int, anchor canvas.Anchor) Resize {
	width, height = max(width, 1), max(height, 1)
	return Resize{
		Width:  width,
		Height: height,
		Plan:   canvas.ResolveResize(g.Width(), g.Height(), width, height, anchor),
	}
}

func (Resize) Kind() Kind { return KindResize }
func (Resize) isCommand() {}

func (c Resize) Apply(g *canvas.Grid) { g.Resize(c.Width, c.Height, c.Plan) }

func (c Resize) Equal(other Command) bool {
	o, ok := other.(Resize)
	return ok && o == c
}

// ApplyAll applies cmds to g in order.
func ApplyAll(g *canvas.Grid, cmds []Command) {
	for _, cmd := range cmds {
		cmd.Apply(g)
	}
}
