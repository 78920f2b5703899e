package app

import (
	"github.com/bethropolis/glyphpaint/internal/canvasfile"
	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/bethropolis/glyphpaint/internal/watcher"
)

func (a *App) startWatcher() {
	path := a.session.Path()
	if path == "" {
		return
	}
	w, err := watcher.New(path, a.cfg.Watch.Debounce, func(ev watcher.Event) {
		if ev.Type == watcher.EventDelete || ev.Type == watcher.EventRename {
			return
		}
		select {
		case a.reloadRequest <- struct{}{}:
		default:
		}
	})
	if err != nil {
		logger.WarnTagf("watch", "App: not watching %s: %v", path, err)
		return
	}
	if err := w.Start(); err != nil {
		logger.WarnTagf("watch", "App: not watching %s: %v", path, err)
		w.Close()
		return
	}
	a.watcher = w
}

func (a *App) stopWatcher() {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
}

// reloadFromDisk picks up changes another program made to the canvas file.
// Unsaved edits are never discarded; our own saves are recognized by content.
func (a *App) reloadFromDisk() {
	path := a.session.Path()
	onDisk, err := canvasfile.Load(path)
	if err != nil {
		logger.Debugf("App: ignoring change to %s: %v", path, err)
		return
	}
	if onDisk.Equal(a.session.Canvas()) {
		return
	}
	if a.session.IsModified() {
		a.statusBar.SetErrorMessage("%s changed on disk; saving will overwrite it", path)
		a.requestRedraw()
		return
	}
	if err := a.session.Reload(); err != nil {
		a.statusBar.SetErrorMessage("Reload failed: %v", err)
		a.requestRedraw()
		return
	}
	a.fitToCanvas()
}
