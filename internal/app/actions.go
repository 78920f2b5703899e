package app

import (
	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/core/history"
	"github.com/bethropolis/glyphpaint/internal/event"
	"github.com/bethropolis/glyphpaint/internal/glyph"
	"github.com/bethropolis/glyphpaint/internal/input"
	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/bethropolis/glyphpaint/internal/pen"
	"github.com/bethropolis/glyphpaint/internal/tui"
)

// handleAction runs a keyboard action. It returns true when the screen needs
// redrawing.
func (a *App) handleAction(ev input.ActionEvent) bool {
	if ev.Action != input.ActionQuit {
		a.quitArmed = false
	}

	switch ev.Action {
	case input.ActionUnknown:
		if a.inputProcessor.PendingGlyph() {
			return a.showMessage("Glyph: type a character")
		}
		return false

	case input.ActionQuit:
		if a.session.IsModified() && !a.quitArmed {
			a.quitArmed = true
			a.statusBar.SetErrorMessage("Unsaved changes: quit again to discard, Ctrl+S to save")
			return true
		}
		a.requestQuit()
		return false
	case input.ActionForceQuit:
		a.requestQuit()
		return false

	case input.ActionSave:
		if err := a.session.Save(); err != nil {
			logger.Errorf("App: save failed: %v", err)
			a.statusBar.SetErrorMessage("Save failed: %v", err)
		}
		return true
	case input.ActionExport:
		path := exportPath(a.session.Path())
		if err := a.session.Export(path, a.cfg.Export.Scale); err != nil {
			logger.Errorf("App: export failed: %v", err)
			a.statusBar.SetErrorMessage("Export failed: %v", err)
		}
		return true
	case input.ActionNew:
		a.session.NewCanvas(a.cfg.Canvas.Width, a.cfg.Canvas.Height, a.session.Path())
		a.view = tui.View{}
		a.pen.CancelRect()
		return true
	case input.ActionYank:
		a.yank()
		return true

	case input.ActionUndo:
		if !a.session.Undo() {
			return a.showMessage("Nothing to undo")
		}
		a.fitToCanvas()
		return true
	case input.ActionRedo:
		if !a.session.Redo() {
			return a.showMessage("Nothing to redo")
		}
		a.fitToCanvas()
		return true

	case input.ActionMoveUp:
		return a.moveCursor(0, -1)
	case input.ActionMoveDown:
		return a.moveCursor(0, 1)
	case input.ActionMoveLeft:
		return a.moveCursor(-1, 0)
	case input.ActionMoveRight:
		return a.moveCursor(1, 0)

	case input.ActionPaint:
		a.paintAtCursor(pen.ButtonPrimary)
		return true
	case input.ActionPaintAlt:
		a.paintAtCursor(pen.ButtonSecondary)
		return true
	case input.ActionPickGlyph:
		idx := glyph.Index(ev.Rune)
		if idx < 0 {
			a.statusBar.SetErrorMessage("No glyph for %q", ev.Rune)
			return true
		}
		a.pen.Glyph = idx
		return true
	case input.ActionNextGlyph:
		a.pen.Glyph = (a.pen.Glyph + 1) % glyph.Count
		return true
	case input.ActionPrevGlyph:
		a.pen.Glyph = (a.pen.Glyph + glyph.Count - 1) % glyph.Count
		return true
	case input.ActionSampleCell:
		a.sampleCell()
		return true

	case input.ActionNextTool:
		a.setTool(a.pen.Tool.Next())
		return true
	case input.ActionToolPencil:
		a.setTool(pen.ToolPencil)
		return true
	case input.ActionToolEraser:
		a.setTool(pen.ToolEraser)
		return true
	case input.ActionToolFill:
		a.setTool(pen.ToolFill)
		return true
	case input.ActionToolReplace:
		a.setTool(pen.ToolReplace)
		return true
	case input.ActionToolRect:
		a.setTool(pen.ToolRect)
		return true

	case input.ActionNextFG:
		a.pen.FG = a.palette.Next(a.pen.FG, 1)
		return true
	case input.ActionPrevFG:
		a.pen.FG = a.palette.Next(a.pen.FG, -1)
		return true
	case input.ActionNextBG:
		a.pen.BG = a.palette.Next(a.pen.BG, 1)
		return true
	case input.ActionPrevBG:
		a.pen.BG = a.palette.Next(a.pen.BG, -1)
		return true
	case input.ActionSwapColors:
		a.pen.SwapColors()
		return true

	case input.ActionGrowWidth:
		return a.resizeBy(1, 0)
	case input.ActionShrinkWidth:
		return a.resizeBy(-1, 0)
	case input.ActionGrowHeight:
		return a.resizeBy(0, 1)
	case input.ActionShrinkHeight:
		return a.resizeBy(0, -1)
	case input.ActionNextAnchor:
		a.anchor = a.anchor.Next()
		return a.showMessage("Resize anchor: %s", a.anchor)
	}
	return false
}

func (a *App) showMessage(format string, args ...interface{}) bool {
	a.statusBar.SetTemporaryMessage(format, args...)
	return true
}

func (a *App) setTool(t pen.Tool) {
	if a.pen.Tool == t {
		return
	}
	a.pen.SetTool(t)
	a.eventManager.Dispatch(event.TypeToolChanged, event.ToolChangedData{Tool: t.String()})
}

// moveCursor moves the cursor by (dx, dy), stopping at the canvas edges.
func (a *App) moveCursor(dx, dy int) bool {
	g := a.session.Canvas()
	a.view.CursorX = max(0, min(a.view.CursorX+dx, g.Width()-1))
	a.view.CursorY = max(0, min(a.view.CursorY+dy, g.Height()-1))
	return true
}

// fitToCanvas keeps the cursor on the canvas after its size changed and
// abandons a rectangle anchored on a cell that no longer exists.
func (a *App) fitToCanvas() {
	g := a.session.Canvas()
	a.view.CursorX = max(0, min(a.view.CursorX, g.Width()-1))
	a.view.CursorY = max(0, min(a.view.CursorY, g.Height()-1))
	if x, y, ok := a.pen.RectStart(); ok && !g.Contains(x, y) {
		a.pen.CancelRect()
	}
}

// paintAtCursor presses the pen at the cursor. With the rectangle tool the
// first press anchors and the second completes the rectangle.
func (a *App) paintAtCursor(b pen.Button) {
	x, y := a.view.CursorX, a.view.CursorY
	a.session.Edit(func(g *canvas.Grid) (history.Command, bool) {
		if !g.Contains(x, y) {
			return nil, false
		}
		if _, _, anchored := a.pen.RectStart(); anchored {
			return a.pen.Release(g, x, y, b)
		}
		return a.pen.Press(g, x, y, b)
	})
}

func (a *App) sampleCell() {
	g := a.session.Canvas()
	x, y := a.view.CursorX, a.view.CursorY
	if !g.Contains(x, y) {
		return
	}
	t, ok := g.Get(x, y).Tile()
	if !ok {
		a.statusBar.SetTemporaryMessage("Empty cell")
		return
	}
	a.pen.Glyph, a.pen.FG, a.pen.BG = t.Glyph, t.FG, t.BG
}

func (a *App) resizeBy(dw, dh int) bool {
	g := a.session.Canvas()
	if !a.session.Resize(g.Width()+dw, g.Height()+dh, a.anchor) {
		return a.showMessage("Canvas is already %dx%d", g.Width(), g.Height())
	}
	a.fitToCanvas()
	return true
}
