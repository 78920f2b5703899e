package app

import (
	"github.com/atotto/clipboard"
	"github.com/bethropolis/glyphpaint/internal/glyph"
	"github.com/bethropolis/glyphpaint/internal/logger"
)

func systemClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// yank copies the canvas glyphs as plain text.
func (a *App) yank() {
	g := a.session.Canvas()
	if err := a.clipboard(glyph.Text(g)); err != nil {
		logger.Warnf("App: clipboard unavailable: %v", err)
		a.statusBar.SetErrorMessage("Clipboard unavailable: %v", err)
		return
	}
	a.statusBar.SetTemporaryMessage("Copied %dx%d canvas as text", g.Width(), g.Height())
}
