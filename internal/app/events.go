package app

import (
	"path/filepath"

	"github.com/bethropolis/glyphpaint/internal/event"
	"github.com/bethropolis/glyphpaint/internal/logger"
)

// subscribe wires session events to the status bar. Handlers may run on the
// autosave or watcher goroutines, so they only touch the status bar and the
// redraw channel.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeCanvasModified, a.handleCanvasModified)
	a.eventManager.Subscribe(event.TypeCanvasLoaded, a.handleCanvasLoaded)
	a.eventManager.Subscribe(event.TypeCanvasSaved, a.handleCanvasSaved)
	a.eventManager.Subscribe(event.TypeCanvasExported, a.handleCanvasExported)
	a.eventManager.Subscribe(event.TypeToolChanged, a.handleToolChanged)
}

func (a *App) handleCanvasModified(e event.Event) bool {
	a.requestRedraw()
	return false
}

func (a *App) handleCanvasLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.CanvasLoadedData); ok && data.FilePath != "" {
		a.statusBar.SetTemporaryMessage("Loaded %s (%dx%d)", filepath.Base(data.FilePath), data.Width, data.Height)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleCanvasSaved(e event.Event) bool {
	data, ok := e.Data.(event.CanvasSavedData)
	if !ok {
		logger.Warnf("App: CanvasSaved event with unexpected data type: %T", e.Data)
		return false
	}
	if data.Backup {
		logger.DebugTagf("autosave", "App: backup %s", data.FilePath)
		return false
	}
	a.statusBar.SetTemporaryMessage("Saved %s", filepath.Base(data.FilePath))
	a.requestRedraw()
	return false
}

func (a *App) handleCanvasExported(e event.Event) bool {
	if data, ok := e.Data.(event.CanvasExportedData); ok {
		a.statusBar.SetTemporaryMessage("Exported %s at %dx", filepath.Base(data.FilePath), data.Scale)
		a.requestRedraw()
	}
	return false
}

func (a *App) handleToolChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ToolChangedData); ok {
		a.statusBar.SetTemporaryMessage("Tool: %s", data.Tool)
	}
	return false
}
