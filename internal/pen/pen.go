// Package pen turns pointer input on the canvas into history commands.
package pen

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/core/history"
	"github.com/bethropolis/glyphpaint/internal/logger"
)

// Tool selects what a pointer press does.
type Tool int

const (
	ToolPencil  Tool = iota // paint the pen tile
	ToolEraser              // clear cells
	ToolFill                // flood-fill the region under the pointer
	ToolReplace             // recolor an existing tile, keeping its glyph
	ToolRect                // fill the rectangle between press and release
	toolCount
)

var toolNames = [...]string{
	ToolPencil:  "pencil",
	ToolEraser:  "eraser",
	ToolFill:    "fill",
	ToolReplace: "replace",
	ToolRect:    "rect",
}

func (t Tool) String() string {
	if t < 0 || t >= toolCount {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// Next cycles through the tools.
func (t Tool) Next() Tool { return (t + 1) % toolCount }

// ParseTool accepts the names produced by Tool.String.
func ParseTool(s string) (Tool, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "rectangle" {
		name = "rect"
	}
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return ToolPencil, fmt.Errorf("unknown tool %q", s)
}

// Button identifies the pointer button driving a stroke. The secondary button
// paints with foreground and background swapped.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Pen is the pencil state: the tile being painted and the active tool.
type Pen struct {
	Glyph int
	FG    color.RGBA
	BG    color.RGBA
	Tool  Tool

	rectStart *[2]int
}

// Tile returns the tile the primary button paints.
func (p *Pen) Tile() canvas.Tile {
	return canvas.Tile{Glyph: p.Glyph, FG: p.FG, BG: p.BG}
}

// Swapped returns the tile the secondary button paints.
func (p *Pen) Swapped() canvas.Tile {
	return canvas.Tile{Glyph: p.Glyph, FG: p.BG, BG: p.FG}
}

// SwapColors exchanges the foreground and background colors.
func (p *Pen) SwapColors() {
	p.FG, p.BG = p.BG, p.FG
}

// SetTool switches tools, abandoning any rectangle in progress.
func (p *Pen) SetTool(t Tool) {
	p.Tool = t
	p.rectStart = nil
}

// CancelRect abandons the rectangle in progress, if any.
func (p *Pen) CancelRect() {
	p.rectStart = nil
}

// RectStart returns the anchor corner of the rectangle being dragged.
func (p *Pen) RectStart() (x, y int, ok bool) {
	if p.rectStart == nil {
		return 0, 0, false
	}
	return p.rectStart[0], p.rectStart[1], true
}

func (p *Pen) tileFor(b Button) canvas.Tile {
	if b == ButtonSecondary {
		return p.Swapped()
	}
	return p.Tile()
}

// Press handles a button going down over (x, y) of the rendered grid g.
// The rectangle tool only records its anchor here.
func (p *Pen) Press(g *canvas.Grid, x, y int, b Button) (history.Command, bool) {
	if !g.Contains(x, y) {
		return nil, false
	}
	if p.Tool == ToolRect {
		p.rectStart = &[2]int{x, y}
		logger.DebugTagf("pen", "Pen: rectangle anchored at (%d,%d)", x, y)
		return nil, false
	}
	return p.paint(g, x, y, b)
}

// Drag handles the pointer moving over (x, y) with a button held. Consecutive
// identical commands are dropped by the history, so emitting on every motion
// event is fine.
func (p *Pen) Drag(g *canvas.Grid, x, y int, b Button) (history.Command, bool) {
	if p.Tool == ToolRect {
		return nil, false
	}
	return p.paint(g, x, y, b)
}

// Release handles the button going up over (x, y). It completes a rectangle.
// A rectangle with a corner outside g, e.g. after the canvas shrank, is dropped.
func (p *Pen) Release(g *canvas.Grid, x, y int, b Button) (history.Command, bool) {
	if p.Tool != ToolRect || p.rectStart == nil {
		return nil, false
	}
	start := *p.rectStart
	p.rectStart = nil
	if !g.Contains(start[0], start[1]) || !g.Contains(x, y) {
		logger.DebugTagf("pen", "Pen: dropped rectangle (%d,%d)-(%d,%d) outside %dx%d canvas", start[0], start[1], x, y, g.Width(), g.Height())
		return nil, false
	}
	return history.RectFill{
		Cell: canvas.Filled(p.tileFor(b)),
		X0:   start[0],
		Y0:   start[1],
		X1:   x,
		Y1:   y,
	}, true
}

func (p *Pen) paint(g *canvas.Grid, x, y int, b Button) (history.Command, bool) {
	if !g.Contains(x, y) {
		return nil, false
	}
	switch p.Tool {
	case ToolPencil:
		return history.Point{Cell: canvas.Filled(p.tileFor(b)), X: x, Y: y}, true
	case ToolEraser:
		return history.Point{Cell: canvas.Empty(), X: x, Y: y}, true
	case ToolFill:
		return history.NewRegionFill(g, x, y, canvas.Filled(p.tileFor(b))), true
	case ToolReplace:
		cur, ok := g.Get(x, y).Tile()
		if !ok {
			return nil, false
		}
		t := p.tileFor(b)
		cur.FG, cur.BG = t.FG, t.BG
		return history.Point{Cell: canvas.Filled(cur), X: x, Y: y}, true
	default:
		return nil, false
	}
}
