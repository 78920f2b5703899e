// internal/app/app.go
package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/canvasfile"
	"github.com/bethropolis/glyphpaint/internal/config"
	"github.com/bethropolis/glyphpaint/internal/event"
	"github.com/bethropolis/glyphpaint/internal/input"
	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/bethropolis/glyphpaint/internal/palette"
	"github.com/bethropolis/glyphpaint/internal/pen"
	"github.com/bethropolis/glyphpaint/internal/session"
	"github.com/bethropolis/glyphpaint/internal/statusbar"
	"github.com/bethropolis/glyphpaint/internal/theme"
	"github.com/bethropolis/glyphpaint/internal/tui"
	"github.com/bethropolis/glyphpaint/internal/watcher"
	"github.com/gdamore/tcell/v2"
)

// DefaultFileName is used when no canvas file is given on the command line.
const DefaultFileName = "untitled.json"

// Options configures NewApp.
type Options struct {
	Config   *config.Config
	FilePath string

	// Screen replaces the terminal, e.g. with a simulation screen.
	Screen tcell.Screen
	// Clipboard receives yanked canvas text; nil uses the system clipboard.
	Clipboard func(text string) error
}

// App encapsulates the components and main loop of the painter.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	session        *session.Session
	pen            *pen.Pen
	palette        palette.Palette
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	autosave       *Autosaver
	watcher        *watcher.Watcher
	clipboard      func(string) error

	view      tui.View
	anchor    canvas.Anchor
	mouse     mouseState
	quitArmed bool

	quit          chan struct{}
	redrawRequest chan struct{}
	reloadRequest chan struct{}
	tcellEvents   chan tcell.Event
}

// NewApp creates and initializes a new application instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	activeTheme, err := theme.Load(cfg.UI.ThemeFile)
	if err != nil {
		logger.Warnf("App: %v, using built-in theme", err)
		activeTheme = &theme.Charcoal
	}

	var tuiManager *tui.TUI
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, activeTheme)
	} else {
		tuiManager, err = tui.New(activeTheme)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	eventManager := event.NewManager()
	sess := session.New(session.Options{
		Width:         cfg.Canvas.Width,
		Height:        cfg.Canvas.Height,
		CheckpointGap: cfg.Canvas.CheckpointGap,
	}, eventManager)

	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		session:        sess,
		pen:            cfg.NewPen(),
		palette:        palette.FromConfig(cfg.Palette.Colors),
		statusBar:      statusbar.New(statusbar.FromTheme(activeTheme, config.MessageTimeout)),
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		clipboard:      opts.Clipboard,
		anchor:         cfg.Anchor(),
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
		reloadRequest:  make(chan struct{}, 1),
		tcellEvents:    make(chan tcell.Event, 16),
	}
	if a.clipboard == nil {
		a.clipboard = systemClipboard
	}
	a.subscribe()

	if err := a.openInitial(opts.FilePath); err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// openInitial loads path, or starts a new canvas that will be saved to path.
func (a *App) openInitial(path string) error {
	if path == "" {
		path = DefaultFileName
	}
	err := a.session.Open(path)
	switch {
	case err == nil:
		return nil
	case isNotExist(err):
		logger.Infof("App: %s does not exist, starting a new canvas", path)
		a.session.NewCanvas(a.cfg.Canvas.Width, a.cfg.Canvas.Height, path)
		return nil
	default:
		return fmt.Errorf("open %s: %w", path, err)
	}
}

// exportPath is the PNG written next to the canvas file.
func exportPath(canvasPath string) string {
	base := canvasPath
	if strings.EqualFold(filepath.Ext(base), canvasfile.CompressedExt) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// backupPath is the autosave file for canvasPath. It keeps the extension so
// compressed canvases stay compressed.
func backupPath(canvasPath string) string {
	return filepath.Join(filepath.Dir(canvasPath), config.BackupPrefix+filepath.Base(canvasPath))
}

// Run starts the event and drawing loops and blocks until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	if a.cfg.Autosave.Enabled {
		a.autosave = NewAutosaver(a.session, a.cfg.Autosave.Interval, backupPath)
		a.autosave.Start()
		defer a.autosave.Stop()
	}
	if a.cfg.Watch.Enabled {
		a.startWatcher()
		defer a.stopWatcher()
	}

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("glyphpaint - Ctrl+S Save | Ctrl+Z Undo | Ctrl+Y Redo | q Quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.session.IsModified() {
				logger.Warnf("App: exited with unsaved changes")
			}
			logger.Infof("App: exiting")
			return nil
		case ev := <-a.tcellEvents:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case <-a.reloadRequest:
			a.reloadFromDisk()
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// pollEvents forwards terminal events to the main loop, which owns all UI state.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.tcellEvents <- ev:
		case <-a.quit:
			return
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.handleAction(a.inputProcessor.ProcessEvent(e))
	case *tcell.EventMouse:
		return a.handleMouse(e)
	}
	return false
}

func (a *App) requestQuit() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// Session exposes the editing session, mainly for tests and embedding.
func (a *App) Session() *session.Session {
	return a.session
}
