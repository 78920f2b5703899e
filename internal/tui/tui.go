// internal/tui/tui.go
package tui

import (
	"fmt"
	"sync"

	"github.com/bethropolis/glyphpaint/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen    tcell.Screen
	theme     *theme.Theme
	closeOnce sync.Once
}

// New creates and initializes a terminal screen with mouse reporting on.
func New(th *theme.Theme) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s, th)
}

// NewWithScreen initializes s, which may be a simulation screen.
func NewWithScreen(s tcell.Screen, th *theme.Theme) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	if th == nil {
		th = &theme.Charcoal
	}
	s.SetStyle(th.GetStyle(theme.StyleDefault))
	s.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	return &TUI{screen: s, theme: th}, nil
}

// Close finalizes the tcell screen. Later calls do nothing.
func (t *TUI) Close() {
	t.closeOnce.Do(func() {
		if t.screen != nil {
			t.screen.DisableMouse()
			t.screen.Fini()
		}
	})
}

// PollEvent retrieves the next event.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync redraws the whole terminal, used after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// Theme returns the active theme.
func (t *TUI) Theme() *theme.Theme {
	return t.theme
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
