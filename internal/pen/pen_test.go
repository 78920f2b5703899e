package pen

import (
	"image/color"
	"testing"

	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/core/history"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func newPen(tool Tool) *Pen {
	return &Pen{Glyph: '#', FG: white, BG: black, Tool: tool}
}

func TestPen_Pencil(t *testing.T) {
	p := newPen(ToolPencil)
	g := canvas.New(3, 3)

	cmd, ok := p.Press(g, 1, 2, ButtonPrimary)
	if !ok {
		t.Fatal("expected a command")
	}
	want := history.Point{Cell: canvas.Filled(p.Tile()), X: 1, Y: 2}
	if !cmd.Equal(want) {
		t.Fatalf("command = %+v, want %+v", cmd, want)
	}

	cmd, _ = p.Drag(g, 2, 2, ButtonSecondary)
	pt := cmd.(history.Point)
	tile, _ := pt.Cell.Tile()
	if tile.FG != black || tile.BG != white {
		t.Fatalf("secondary tile = %+v, want swapped colors", tile)
	}
}

func TestPen_Eraser(t *testing.T) {
	p := newPen(ToolEraser)
	cmd, ok := p.Press(canvas.New(2, 2), 0, 1, ButtonPrimary)
	if !ok {
		t.Fatal("expected a command")
	}
	if !cmd.Equal(history.Point{Cell: canvas.Empty(), X: 0, Y: 1}) {
		t.Fatalf("command = %+v, want erase of (0,1)", cmd)
	}
}

func TestPen_Fill(t *testing.T) {
	p := newPen(ToolFill)
	g := canvas.New(3, 1)
	g.Set(1, 0, canvas.Filled(canvas.Tile{Glyph: 1}))

	cmd, ok := p.Press(g, 0, 0, ButtonPrimary)
	if !ok {
		t.Fatal("expected a command")
	}
	fill, isFill := cmd.(history.RegionFill)
	if !isFill {
		t.Fatalf("command type = %T, want history.RegionFill", cmd)
	}
	if fill.Mask().Count() != 1 || !fill.Mask().Has(0, 0) {
		t.Fatalf("mask count = %d, want only the seed", fill.Mask().Count())
	}
}

func TestPen_ReplaceKeepsGlyph(t *testing.T) {
	p := newPen(ToolReplace)
	p.FG = red
	g := canvas.New(2, 1)
	g.Set(0, 0, canvas.Filled(canvas.Tile{Glyph: 'x', FG: white, BG: white}))

	cmd, ok := p.Press(g, 0, 0, ButtonPrimary)
	if !ok {
		t.Fatal("expected a command")
	}
	tile, _ := cmd.(history.Point).Cell.Tile()
	if tile.Glyph != 'x' || tile.FG != red || tile.BG != black {
		t.Fatalf("tile = %+v, want glyph x recolored red on black", tile)
	}

	if _, ok := p.Press(g, 1, 0, ButtonPrimary); ok {
		t.Fatal("expected no command on an empty cell")
	}
}

func TestPen_Rect(t *testing.T) {
	p := newPen(ToolRect)
	g := canvas.New(4, 4)

	if _, ok := p.Press(g, 3, 3, ButtonPrimary); ok {
		t.Fatal("expected press to only anchor the rectangle")
	}
	if x, y, ok := p.RectStart(); !ok || x != 3 || y != 3 {
		t.Fatalf("rect start = (%d,%d,%v), want (3,3,true)", x, y, ok)
	}
	if _, ok := p.Drag(g, 2, 2, ButtonPrimary); ok {
		t.Fatal("expected drag to emit nothing")
	}
	cmd, ok := p.Release(g, 1, 0, ButtonPrimary)
	if !ok {
		t.Fatal("expected release to emit a rectangle")
	}
	want := history.RectFill{Cell: canvas.Filled(p.Tile()), X0: 3, Y0: 3, X1: 1, Y1: 0}
	if !cmd.Equal(want) {
		t.Fatalf("command = %+v, want %+v", cmd, want)
	}
	if _, _, ok := p.RectStart(); ok {
		t.Fatal("expected rectangle anchor to be cleared")
	}
	if _, ok := p.Release(g, 1, 0, ButtonPrimary); ok {
		t.Fatal("expected a second release to emit nothing")
	}
}

func TestPen_SetToolDropsRectangle(t *testing.T) {
	p := newPen(ToolRect)
	p.Press(canvas.New(2, 2), 0, 0, ButtonPrimary)
	p.SetTool(ToolRect)
	if _, _, ok := p.RectStart(); ok {
		t.Fatal("expected SetTool to abandon the rectangle")
	}
}

func TestPen_RectDroppedAfterCanvasShrinks(t *testing.T) {
	p := newPen(ToolRect)
	p.Press(canvas.New(8, 4), 7, 0, ButtonPrimary)

	small := canvas.New(6, 4)
	if _, ok := p.Release(small, 2, 2, ButtonPrimary); ok {
		t.Fatal("expected a rectangle anchored outside the canvas to be dropped")
	}
	if _, _, ok := p.RectStart(); ok {
		t.Fatal("expected the stale anchor to be cleared")
	}
}

func TestPen_CancelRect(t *testing.T) {
	p := newPen(ToolRect)
	p.Press(canvas.New(2, 2), 1, 1, ButtonPrimary)
	p.CancelRect()
	if _, _, ok := p.RectStart(); ok {
		t.Fatal("expected CancelRect to clear the anchor")
	}
}

func TestPen_OutsideCanvasEmitsNothing(t *testing.T) {
	g := canvas.New(3, 2)
	points := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}}
	for tool := ToolPencil; tool < toolCount; tool++ {
		for _, pt := range points {
			p := newPen(tool)
			if _, ok := p.Press(g, pt[0], pt[1], ButtonPrimary); ok {
				t.Errorf("%v press at %v emitted a command", tool, pt)
			}
			if _, ok := p.Drag(g, pt[0], pt[1], ButtonPrimary); ok {
				t.Errorf("%v drag at %v emitted a command", tool, pt)
			}
			if _, _, ok := p.RectStart(); ok {
				t.Errorf("%v press at %v anchored a rectangle", tool, pt)
			}
		}
	}
	p := newPen(ToolRect)
	p.Press(g, 0, 0, ButtonPrimary)
	if _, ok := p.Release(g, -1, 5, ButtonPrimary); ok {
		t.Fatal("expected release outside the canvas to emit nothing")
	}
}

func TestParseTool(t *testing.T) {
	for tool := ToolPencil; tool < toolCount; tool++ {
		got, err := ParseTool(tool.String())
		if err != nil || got != tool {
			t.Fatalf("ParseTool(%q) = %v, %v", tool.String(), got, err)
		}
	}
	if got, _ := ParseTool("Rectangle"); got != ToolRect {
		t.Fatalf("ParseTool(Rectangle) = %v, want rect", got)
	}
	if _, err := ParseTool("spray"); err == nil {
		t.Fatal("expected error")
	}
	if ToolRect.Next() != ToolPencil {
		t.Fatalf("next = %v, want pencil", ToolRect.Next())
	}
}
