package app

import (
	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/core/history"
	"github.com/bethropolis/glyphpaint/internal/pen"
	"github.com/bethropolis/glyphpaint/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// mouseState tracks the held button between mouse events; tcell reports
// button state, not transitions.
type mouseState struct {
	down   bool
	button pen.Button
	x, y   int
}

func buttonFor(mask tcell.ButtonMask) (pen.Button, bool) {
	switch {
	case mask&tcell.Button1 != 0:
		return pen.ButtonPrimary, true
	case mask&tcell.Button2 != 0:
		return pen.ButtonSecondary, true
	}
	return pen.ButtonPrimary, false
}

func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	sx, sy := ev.Position()
	width, height := a.tuiManager.Size()
	button, pressed := buttonFor(ev.Buttons())

	if sy == tui.PaletteRow(height) && pressed && !a.mouse.down {
		return a.pickColor(sx, button)
	}

	g := a.session.Canvas()
	areaW, areaH := tui.CanvasArea(width, height)
	x, y, inside := a.view.ScreenToCanvas(sx, sy, g.Width(), g.Height(), areaW, areaH)

	switch {
	case pressed && !a.mouse.down:
		if !inside {
			return false
		}
		a.mouse = mouseState{down: true, button: button, x: x, y: y}
		a.view.CursorX, a.view.CursorY = x, y
		a.session.Edit(func(g *canvas.Grid) (history.Command, bool) { return a.pen.Press(g, x, y, button) })
		return true

	case pressed && a.mouse.down:
		if !inside || (x == a.mouse.x && y == a.mouse.y) {
			return false
		}
		a.mouse.x, a.mouse.y = x, y
		a.view.CursorX, a.view.CursorY = x, y
		a.session.Edit(func(g *canvas.Grid) (history.Command, bool) { return a.pen.Drag(g, x, y, a.mouse.button) })
		return true

	case !pressed && a.mouse.down:
		// Releases outside the canvas complete at the last cell inside it.
		if !inside {
			x, y = a.mouse.x, a.mouse.y
		}
		b := a.mouse.button
		a.mouse = mouseState{}
		a.session.Edit(func(g *canvas.Grid) (history.Command, bool) { return a.pen.Release(g, x, y, b) })
		return true
	}
	return false
}

func (a *App) pickColor(sx int, b pen.Button) bool {
	i, ok := tui.PaletteAt(a.palette, sx)
	if !ok {
		return false
	}
	if b == pen.ButtonSecondary {
		a.pen.BG = a.palette[i]
	} else {
		a.pen.FG = a.palette[i]
	}
	return true
}
