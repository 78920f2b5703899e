// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/glyphpaint/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	StyleError     tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return FromTheme(&theme.Charcoal, 4*time.Second)
}

// FromTheme takes the status bar styles from th.
func FromTheme(th *theme.Theme, timeout time.Duration) Config {
	return Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StyleModified:  th.GetStyle(theme.StyleStatusBarModified),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		StyleError:     th.GetStyle(theme.StyleStatusBarError),
		MessageTimeout: timeout,
	}
}

// Info is the editing state shown when no message is active.
type Info struct {
	FilePath   string
	Modified   bool
	Width      int
	Height     int
	CursorX    int
	CursorY    int
	Tool       string
	Glyph      rune
	FG         string
	BG         string
	Anchor     string
	Undo, Redo int
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	info Info

	tempMessage     string
	tempIsError     bool
	tempMessageTime time.Time
	now             func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetInfo replaces the state shown in the status line.
func (sb *StatusBar) SetInfo(info Info) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.info = info
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(false, format, args...)
}

// SetErrorMessage is SetTemporaryMessage in the error style.
func (sb *StatusBar) SetErrorMessage(format string, args ...interface{}) {
	sb.setMessage(true, format, args...)
}

func (sb *StatusBar) setMessage(isError bool, format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempIsError = isError
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns the line Draw would show and its style.
func (sb *StatusBar) Text() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	active := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if active {
		if sb.tempIsError {
			return sb.tempMessage, sb.config.StyleError
		}
		return sb.tempMessage, sb.config.StyleMessage
	}

	style := sb.config.StyleDefault
	if sb.info.Modified {
		style = sb.config.StyleModified
	}
	return sb.defaultText(), style
}

func (sb *StatusBar) defaultText() string {
	in := sb.info
	name := "[No Name]"
	if in.FilePath != "" {
		name = filepath.Base(in.FilePath)
	}
	modified := ""
	if in.Modified {
		modified = " [+]"
	}
	return fmt.Sprintf("%s%s %dx%d (%d,%d) | %s %c fg %s bg %s | anchor %s | undo %d redo %d",
		name, modified, in.Width, in.Height, in.CursorX, in.CursorY,
		in.Tool, in.Glyph, in.FG, in.BG, in.Anchor, in.Undo, in.Redo)
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1
	text, style := sb.Text()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
