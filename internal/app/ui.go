package app

import (
	"errors"
	"os"

	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/glyph"
	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/bethropolis/glyphpaint/internal/palette"
	"github.com/bethropolis/glyphpaint/internal/statusbar"
	"github.com/bethropolis/glyphpaint/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	g := a.session.Canvas()
	width, height := a.tuiManager.Size()
	areaW, areaH := tui.CanvasArea(width, height)
	a.view.Clamp(g.Width(), g.Height(), areaW, areaH)

	logger.DebugTagf("draw", "App: draw %dx%d canvas on %dx%d screen", g.Width(), g.Height(), width, height)

	a.updateStatusBarContent(g)

	a.tuiManager.Clear()
	tui.DrawCanvas(a.tuiManager, g, a.view, a.rectPreview())
	tui.DrawPalette(a.tuiManager, a.palette, a.pen.FG, a.pen.BG, a.pen.Glyph)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	tui.HideCursor(a.tuiManager)
	a.tuiManager.Show()
}

// rectPreview returns the rectangle being dragged, if any.
func (a *App) rectPreview() *tui.Rect {
	x0, y0, ok := a.pen.RectStart()
	if !ok {
		return nil
	}
	x1, y1 := a.view.CursorX, a.view.CursorY
	if a.mouse.down {
		x1, y1 = a.mouse.x, a.mouse.y
	}
	return &tui.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// updateStatusBarContent pushes the current state to the status bar.
func (a *App) updateStatusBarContent(g *canvas.Grid) {
	st := a.session.Stats()
	a.statusBar.SetInfo(statusbar.Info{
		FilePath: a.session.Path(),
		Modified: a.session.IsModified(),
		Width:    g.Width(),
		Height:   g.Height(),
		CursorX:  a.view.CursorX,
		CursorY:  a.view.CursorY,
		Tool:     a.pen.Tool.String(),
		Glyph:    glyph.Rune(a.pen.Glyph),
		FG:       palette.Format(a.pen.FG),
		BG:       palette.Format(a.pen.BG),
		Anchor:   a.anchor.String(),
		Undo:     st.Undo,
		Redo:     st.Redo,
	})
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
