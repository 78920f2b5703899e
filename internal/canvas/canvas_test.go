package canvas

import (
	"errors"
	"image/color"
	"testing"
)

var (
	tileA = Filled(Tile{Glyph: 1, FG: color.RGBA{255, 255, 255, 255}, BG: color.RGBA{0, 0, 0, 255}})
	tileB = Filled(Tile{Glyph: 2, FG: color.RGBA{255, 0, 0, 255}, BG: color.RGBA{0, 0, 0, 255}})
)

func TestGrid_NewIsEmpty(t *testing.T) {
	g := New(3, 2)
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width(), g.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if !g.Get(x, y).IsEmpty() {
				t.Fatalf("cell (%d,%d) = %v, want empty", x, y, g.Get(x, y))
			}
		}
	}
}

func TestGrid_SetGetRowMajor(t *testing.T) {
	g := New(4, 3)
	g.Set(3, 1, tileA)
	if got := g.Get(3, 1); got != tileA {
		t.Fatalf("Get(3,1) = %v, want %v", got, tileA)
	}
	if got := g.Cells()[1*4+3]; got != tileA {
		t.Fatalf("cells[7] = %v, want %v", got, tileA)
	}
}

func TestGrid_OutOfRangePanics(t *testing.T) {
	g := New(2, 2)
	for _, c := range []struct{ x, y int }{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d,%d) did not panic", c.x, c.y)
				}
			}()
			g.Get(c.x, c.y)
		}()
	}
}

func TestGrid_Contains(t *testing.T) {
	g := New(3, 2)
	tests := []struct {
		x, y int
		want bool
	}{{0, 0, true}, {2, 1, true}, {-1, 0, false}, {0, -1, false}, {3, 0, false}, {0, 2, false}}
	for _, tt := range tests {
		if got := g.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := New(2, 2)
	c := g.Clone()
	c.Set(0, 0, tileA)
	if !g.Get(0, 0).IsEmpty() {
		t.Fatal("expected source grid to be isolated from clone mutations")
	}
	if g.Equal(c) {
		t.Fatal("expected grids to differ")
	}
}

func TestFromCells(t *testing.T) {
	if _, err := FromCells(2, 2, make([]Cell, 3)); !errors.Is(err, ErrCellCount) {
		t.Fatalf("error = %v, want %v", err, ErrCellCount)
	}
	if _, err := FromCells(0, 1, nil); !errors.Is(err, ErrCellCount) {
		t.Fatalf("error = %v, want %v", err, ErrCellCount)
	}
	cells := []Cell{tileA, Empty(), Empty(), tileB}
	g, err := FromCells(2, 2, cells)
	if err != nil {
		t.Fatalf("from cells: %v", err)
	}
	cells[0] = tileB
	if g.Get(0, 0) != tileA || g.Get(1, 1) != tileB {
		t.Fatalf("unexpected cells: %v", g.Cells())
	}
}

func TestResolveResize(t *testing.T) {
	tests := []struct {
		name                   string
		oldW, oldH, newW, newH int
		anchor                 Anchor
		want                   ResizePlan
	}{
		{"center shrink", 10, 10, 6, 6, AnchorCenter, ResizePlan{CopyX: 2, CopyY: 2}},
		{"center grow", 10, 10, 14, 14, AnchorCenter, ResizePlan{PasteX: 2, PasteY: 2}},
		{"center grow odd", 4, 4, 7, 7, AnchorCenter, ResizePlan{PasteX: 1, PasteY: 1}},
		{"top-left shrink", 10, 10, 6, 6, AnchorTopLeft, ResizePlan{}},
		{"top-left grow", 10, 10, 14, 14, AnchorTopLeft, ResizePlan{}},
		{"bottom-right shrink", 10, 8, 6, 5, AnchorBottomRight, ResizePlan{CopyX: 4, CopyY: 3}},
		{"bottom-right grow", 10, 8, 12, 9, AnchorBottomRight, ResizePlan{PasteX: 2, PasteY: 1}},
		{"top mixed", 10, 10, 4, 20, AnchorTop, ResizePlan{CopyX: 3}},
		{"left mixed", 10, 10, 20, 4, AnchorLeft, ResizePlan{CopyY: 3}},
		{"right shrink width grow height", 10, 10, 5, 12, AnchorRight, ResizePlan{CopyX: 5, PasteY: 1}},
		{"bottom grow", 3, 3, 5, 6, AnchorBottom, ResizePlan{PasteX: 1, PasteY: 3}},
		{"same size", 5, 5, 5, 5, AnchorBottomLeft, ResizePlan{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveResize(tt.oldW, tt.oldH, tt.newW, tt.newH, tt.anchor)
			if got != tt.want {
				t.Fatalf("plan = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseAnchor(t *testing.T) {
	for a := AnchorTopLeft; a <= AnchorBottomRight; a++ {
		got, err := ParseAnchor(a.String())
		if err != nil {
			t.Fatalf("parse %q: %v", a.String(), err)
		}
		if got != a {
			t.Fatalf("parse %q = %v, want %v", a.String(), got, a)
		}
	}
	if got, err := ParseAnchor(" Bottom_Right "); err != nil || got != AnchorBottomRight {
		t.Fatalf("parse = %v, %v; want bottom-right", got, err)
	}
	if _, err := ParseAnchor("diagonal"); err == nil {
		t.Fatal("expected error")
	}
	if AnchorBottomRight.Next() != AnchorTopLeft {
		t.Fatalf("next = %v, want top-left", AnchorBottomRight.Next())
	}
}

func TestGrid_ResizeKeepsAnchoredContent(t *testing.T) {
	g := New(3, 3)
	g.Set(1, 1, tileA)
	g.Set(2, 2, tileB)

	grown := g.Clone()
	grown.Resize(5, 5, ResolveResize(3, 3, 5, 5, AnchorCenter))
	if grown.Width() != 5 || grown.Height() != 5 {
		t.Fatalf("size = %dx%d, want 5x5", grown.Width(), grown.Height())
	}
	if grown.Get(2, 2) != tileA || grown.Get(3, 3) != tileB {
		t.Fatalf("content not centered: %v", grown.Cells())
	}

	shrunk := g.Clone()
	shrunk.Resize(1, 1, ResolveResize(3, 3, 1, 1, AnchorBottomRight))
	if shrunk.Get(0, 0) != tileB {
		t.Fatalf("cell = %v, want %v", shrunk.Get(0, 0), tileB)
	}
}

func TestFloodFill_ClosureMatchesReachability(t *testing.T) {
	// A . A A
	// A . . A
	// A A . B
	g := New(4, 3)
	for _, p := range []point{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 0}, {3, 0}, {3, 1}} {
		g.Set(p.x, p.y, tileA)
	}
	g.Set(3, 2, tileB)

	tests := []struct {
		name string
		seed point
		want []point
	}{
		{"left arm", point{0, 0}, []point{{0, 0}, {0, 1}, {0, 2}, {1, 2}}},
		{"right arm", point{3, 1}, []point{{2, 0}, {3, 0}, {3, 1}}},
		{"empty region", point{1, 0}, []point{{1, 0}, {1, 1}, {2, 1}, {2, 2}}},
		{"single", point{3, 2}, []point{{3, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask := FloodFill(g, tt.seed.x, tt.seed.y)
			if mask.Count() != len(tt.want) {
				t.Fatalf("count = %d, want %d", mask.Count(), len(tt.want))
			}
			for _, p := range tt.want {
				if !mask.Has(p.x, p.y) {
					t.Fatalf("expected (%d,%d) in mask", p.x, p.y)
				}
			}
		})
	}
}

func TestFloodFill_SameRegionSameMask(t *testing.T) {
	g := New(5, 5)
	for x := 0; x < 5; x++ {
		g.Set(x, 2, tileA)
	}
	a := FloodFill(g, 0, 0)
	b := FloodFill(g, 4, 1)
	if !a.Equal(b) {
		t.Fatal("expected seeds in the same region to produce the same mask")
	}
	if a.Count() != 10 {
		t.Fatalf("count = %d, want 10", a.Count())
	}
}

func TestFloodFill_LargeGridDoesNotRecurse(t *testing.T) {
	g := New(512, 512)
	mask := FloodFill(g, 256, 256)
	if mask.Count() != 512*512 {
		t.Fatalf("count = %d, want %d", mask.Count(), 512*512)
	}
}
