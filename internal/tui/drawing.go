// internal/tui/drawing.go
package tui

import (
	"image/color"

	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/glyph"
	"github.com/bethropolis/glyphpaint/internal/palette"
	"github.com/bethropolis/glyphpaint/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Rows reserved below the canvas.
const (
	PaletteRows   = 1
	StatusBarRows = 1
)

// SwatchWidth is the number of terminal columns per palette entry.
const SwatchWidth = 2

// Rect is an inclusive cell rectangle with corners in any order.
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r Rect) contains(x, y int) bool {
	return x >= min(r.X0, r.X1) && x <= max(r.X0, r.X1) &&
		y >= min(r.Y0, r.Y1) && y <= max(r.Y0, r.Y1)
}

// CanvasArea returns the part of a width x height screen given to the canvas.
func CanvasArea(width, height int) (int, int) {
	return width, max(0, height-PaletteRows-StatusBarRows)
}

// View is the scroll offset and cell cursor over a canvas. One terminal cell
// shows one canvas cell.
type View struct {
	OffsetX, OffsetY int
	CursorX, CursorY int
}

// Clamp keeps the cursor inside a gridW x gridH canvas and scrolls so the
// cursor stays inside an areaW x areaH window.
func (v *View) Clamp(gridW, gridH, areaW, areaH int) {
	v.CursorX = max(0, min(v.CursorX, gridW-1))
	v.CursorY = max(0, min(v.CursorY, gridH-1))

	if areaW > 0 {
		if v.CursorX < v.OffsetX {
			v.OffsetX = v.CursorX
		} else if v.CursorX >= v.OffsetX+areaW {
			v.OffsetX = v.CursorX - areaW + 1
		}
		v.OffsetX = max(0, min(v.OffsetX, gridW-areaW))
	}
	if areaH > 0 {
		if v.CursorY < v.OffsetY {
			v.OffsetY = v.CursorY
		} else if v.CursorY >= v.OffsetY+areaH {
			v.OffsetY = v.CursorY - areaH + 1
		}
		v.OffsetY = max(0, min(v.OffsetY, gridH-areaH))
	}
}

// ScreenToCanvas maps a screen cell to a canvas cell.
func (v View) ScreenToCanvas(sx, sy, gridW, gridH, areaW, areaH int) (x, y int, ok bool) {
	if sx < 0 || sy < 0 || sx >= areaW || sy >= areaH {
		return 0, 0, false
	}
	x, y = sx+v.OffsetX, sy+v.OffsetY
	if x >= gridW || y >= gridH {
		return 0, 0, false
	}
	return x, y, true
}

func tileStyle(t canvas.Tile) tcell.Style {
	return tcell.StyleDefault.Foreground(theme.Color(t.FG)).Background(theme.Color(t.BG))
}

// DrawCanvas draws the visible part of g. Empty cells show a checkerboard.
// preview, when non-nil, tints the rectangle being dragged.
func DrawCanvas(t *TUI, g *canvas.Grid, v View, preview *Rect) {
	width, height := t.Size()
	areaW, areaH := CanvasArea(width, height)
	defaultStyle := t.theme.GetStyle(theme.StyleDefault)
	light := t.theme.GetStyle(theme.StyleCheckerLight)
	dark := t.theme.GetStyle(theme.StyleCheckerDark)
	previewStyle := t.theme.GetStyle(theme.StyleRectPreview)
	borderStyle := t.theme.GetStyle(theme.StyleBorder)

	for sy := 0; sy < areaH; sy++ {
		for sx := 0; sx < areaW; sx++ {
			x, y := sx+v.OffsetX, sy+v.OffsetY
			if x >= g.Width() || y >= g.Height() {
				r := ' '
				if x == g.Width() && y <= g.Height() {
					r = '│'
				} else if y == g.Height() && x < g.Width() {
					r = '─'
				}
				if x == g.Width() && y == g.Height() {
					r = '┘'
				}
				style := defaultStyle
				if r != ' ' {
					style = borderStyle
				}
				t.screen.SetContent(sx, sy, r, nil, style)
				continue
			}

			r, style := ' ', light
			if tile, ok := g.Get(x, y).Tile(); ok {
				r, style = glyph.Rune(tile.Glyph), tileStyle(tile)
			} else if (x+y)%2 == 1 {
				style = dark
			}
			if preview != nil && preview.contains(x, y) {
				style = previewStyle
			}
			if x == v.CursorX && y == v.CursorY {
				style = style.Reverse(true)
			}
			t.screen.SetContent(sx, sy, r, nil, style)
		}
	}
}

// PaletteRow returns the screen row of the palette strip.
func PaletteRow(height int) int {
	return height - StatusBarRows - PaletteRows
}

// DrawPalette draws the palette strip: one swatch per color, with F and B
// marking the pen colors, followed by a sample of the pen tile.
func DrawPalette(t *TUI, pal palette.Palette, fg, bg color.RGBA, glyphIdx int) {
	width, height := t.Size()
	y := PaletteRow(height)
	if y < 0 {
		return
	}
	defaultStyle := t.theme.GetStyle(theme.StyleDefault)
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, defaultStyle)
	}

	x := 0
	for _, c := range pal {
		if x+SwatchWidth > width {
			break
		}
		style := tcell.StyleDefault.Background(theme.Color(c)).Foreground(theme.Color(contrast(c)))
		marks := [SwatchWidth]rune{' ', ' '}
		if c == fg {
			marks[0] = 'F'
		}
		if c == bg {
			marks[1] = 'B'
		}
		for i, r := range marks {
			t.screen.SetContent(x+i, y, r, nil, style)
		}
		x += SwatchWidth
	}

	x++
	if x+1 < width {
		sample := canvas.Tile{Glyph: glyphIdx, FG: fg, BG: bg}
		t.screen.SetContent(x, y, glyph.Rune(glyphIdx), nil, tileStyle(sample))
	}
}

// PaletteAt returns the palette index under screen column sx of the strip.
func PaletteAt(pal palette.Palette, sx int) (int, bool) {
	if sx < 0 {
		return 0, false
	}
	i := sx / SwatchWidth
	if i >= len(pal) {
		return 0, false
	}
	return i, true
}

// contrast picks black or white, whichever reads better on c.
func contrast(c color.RGBA) color.RGBA {
	luma := 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
	if luma > 128*1000 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}

// HideCursor hides the terminal cursor; the canvas cursor is drawn as a cell style.
func HideCursor(t *TUI) {
	t.screen.HideCursor()
}
