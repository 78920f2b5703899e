// Package session ties a base canvas, its edit history and its file together.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/canvasfile"
	"github.com/bethropolis/glyphpaint/internal/core/history"
	"github.com/bethropolis/glyphpaint/internal/event"
	"github.com/bethropolis/glyphpaint/internal/export"
	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/google/uuid"
)

// ErrNoPath is returned when saving or reloading a session that has no file.
var ErrNoPath = errors.New("no file path set")

// Options configures a new session.
type Options struct {
	Width         int
	Height        int
	CheckpointGap int
}

// Session is one canvas being edited. All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id       string
	base     *canvas.Grid
	hist     *history.Manager
	path     string
	modified bool
	revision uint64

	events *event.Manager
}

// Stats summarizes the history for display.
type Stats struct {
	Undo     int
	Redo     int
	Boundary int
}

type pending struct {
	typ  event.Type
	data interface{}
}

// New creates a session holding an empty canvas. events may be nil.
func New(opts Options, events *event.Manager) *Session {
	s := &Session{
		id:     uuid.NewString(),
		base:   canvas.New(max(1, opts.Width), max(1, opts.Height)),
		hist:   history.NewManager(opts.CheckpointGap),
		events: events,
	}
	logger.Debugf("Session %s: created %dx%d canvas (gap %d)", s.id, s.base.Width(), s.base.Height(), s.hist.Gap())
	return s
}

func (s *Session) dispatch(evs ...pending) {
	for _, e := range evs {
		s.events.Dispatch(e.typ, e.data)
	}
}

// ID identifies the session in log lines and events.
func (s *Session) ID() string { return s.id }

// Path returns the file the session saves to, or "".
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// IsModified reports whether there are edits since the last load or save.
func (s *Session) IsModified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modified
}

// Revision increases with every change to the rendered canvas.
func (s *Session) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Stats returns the undo and redo depth.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Undo: s.hist.Len(), Redo: s.hist.RedoLen(), Boundary: s.hist.Boundary()}
}

// Canvas returns a fresh copy of the current canvas.
func (s *Session) Canvas() *canvas.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.Render(s.base)
}

func (s *Session) changedLocked() pending {
	s.modified = true
	s.revision++
	g := s.hist.Render(s.base)
	return pending{event.TypeCanvasModified, event.CanvasModifiedData{
		SessionID: s.id,
		Revision:  s.revision,
		Width:     g.Width(),
		Height:    g.Height(),
	}}
}

// Apply pushes cmd onto the history. It returns false when the command
// repeats the previous one and was dropped.
func (s *Session) Apply(cmd history.Command) bool {
	return s.Edit(func(*canvas.Grid) (history.Command, bool) { return cmd, true })
}

// Edit calls build with the current canvas and pushes the command it returns.
// The session stays locked in between, so commands derived from the canvas,
// such as flood fills, see the state they are applied to.
func (s *Session) Edit(build func(g *canvas.Grid) (history.Command, bool)) bool {
	s.mu.Lock()
	cmd, ok := build(s.hist.Render(s.base))
	if !ok || !s.hist.Push(cmd) {
		s.mu.Unlock()
		return false
	}
	ev := s.changedLocked()
	s.mu.Unlock()
	s.dispatch(ev)
	return true
}

// Undo reverts the most recent edit.
func (s *Session) Undo() bool {
	return s.step(s.hist.Undo)
}

// Redo reapplies the most recently undone edit.
func (s *Session) Redo() bool {
	return s.step(s.hist.Redo)
}

func (s *Session) step(fn func() bool) bool {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return false
	}
	ev := s.changedLocked()
	s.mu.Unlock()
	s.dispatch(ev)
	return true
}

// Resize pushes a resize of the current canvas to width x height, keeping
// the content pinned to anchor. Sizes below 1 are raised to 1.
func (s *Session) Resize(width, height int, anchor canvas.Anchor) bool {
	return s.Edit(func(g *canvas.Grid) (history.Command, bool) {
		cmd := history.NewResize(g, width, height, anchor)
		if cmd.Width == g.Width() && cmd.Height == g.Height() {
			return nil, false
		}
		logger.Debugf("Session %s: resize %dx%d -> %dx%d (%v)", s.id, g.Width(), g.Height(), cmd.Width, cmd.Height, anchor)
		return cmd, true
	})
}

func (s *Session) replaceLocked(g *canvas.Grid, path string) []pending {
	dropped := s.hist.Len() + s.hist.RedoLen()
	s.base = g
	s.hist.Clear()
	s.path = path
	s.modified = false
	s.revision++
	return []pending{
		{event.TypeHistoryCleared, event.HistoryClearedData{SessionID: s.id, Dropped: dropped}},
		{event.TypeCanvasLoaded, event.CanvasLoadedData{SessionID: s.id, FilePath: path, Width: g.Width(), Height: g.Height()}},
	}
}

// NewCanvas discards the current canvas and history and starts an empty one.
func (s *Session) NewCanvas(width, height int, path string) {
	s.mu.Lock()
	evs := s.replaceLocked(canvas.New(max(1, width), max(1, height)), path)
	s.mu.Unlock()
	logger.Infof("Session %s: new %dx%d canvas", s.id, max(1, width), max(1, height))
	s.dispatch(evs...)
}

// Open loads path as the new base canvas and clears the history. On error the
// session is unchanged.
func (s *Session) Open(path string) error {
	g, err := canvasfile.Load(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	evs := s.replaceLocked(g, path)
	s.mu.Unlock()
	logger.Infof("Session %s: opened %s", s.id, path)
	s.dispatch(evs...)
	return nil
}

// Reload re-reads the session's file, dropping the history.
func (s *Session) Reload() error {
	path := s.Path()
	if path == "" {
		return ErrNoPath
	}
	return s.Open(path)
}

// Save writes the canvas to the session's file.
func (s *Session) Save() error {
	return s.SaveAs(s.Path())
}

// SaveAs writes the current canvas to path and makes it the session's file.
// A successful save flattens the history: the rendered canvas becomes the
// new base and undo is no longer possible past this point.
func (s *Session) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	s.mu.Lock()
	g := s.hist.Render(s.base)
	if err := canvasfile.Save(path, g); err != nil {
		s.mu.Unlock()
		return err
	}
	dropped := s.hist.Len() + s.hist.RedoLen()
	s.base = g
	s.hist.Clear()
	s.path = path
	s.modified = false
	s.mu.Unlock()

	logger.Infof("Session %s: saved %s (%d history entries flattened)", s.id, path, dropped)
	s.dispatch(
		pending{event.TypeHistoryCleared, event.HistoryClearedData{SessionID: s.id, Dropped: dropped}},
		pending{event.TypeCanvasSaved, event.CanvasSavedData{SessionID: s.id, FilePath: path}},
	)
	return nil
}

// WriteBackup writes the current canvas to path without touching the history
// or the modified flag.
func (s *Session) WriteBackup(path string) error {
	if path == "" {
		return ErrNoPath
	}
	g := s.Canvas()
	if err := canvasfile.Save(path, g); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	logger.DebugTagf("autosave", "Session %s: backup written to %s", s.id, path)
	s.dispatch(pending{event.TypeCanvasSaved, event.CanvasSavedData{SessionID: s.id, FilePath: path, Backup: true}})
	return nil
}

// Export renders the current canvas to a PNG at path.
func (s *Session) Export(path string, scale int) error {
	if path == "" {
		return ErrNoPath
	}
	if err := export.PNG(path, s.Canvas(), scale); err != nil {
		return err
	}
	s.dispatch(pending{event.TypeCanvasExported, event.CanvasExportedData{SessionID: s.id, FilePath: path, Scale: export.ClampScale(scale)}})
	return nil
}
