// internal/event/events.go
package event

import "fmt"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Canvas events
	TypeCanvasModified // an edit was pushed, undone or redone
	TypeCanvasLoaded   // a new or opened canvas replaced the session state
	TypeCanvasSaved    // the canvas was written to its file
	TypeCanvasExported // the canvas was rendered to an image
	TypeHistoryCleared // undo history was dropped

	// Pen events
	TypeToolChanged

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeUnknown:        "unknown",
	TypeCanvasModified: "canvas-modified",
	TypeCanvasLoaded:   "canvas-loaded",
	TypeCanvasSaved:    "canvas-saved",
	TypeCanvasExported: "canvas-exported",
	TypeHistoryCleared: "history-cleared",
	TypeToolChanged:    "tool-changed",
	TypeAppReady:       "app-ready",
	TypeAppQuit:        "app-quit",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// CanvasModifiedData describes a change to the rendered canvas.
type CanvasModifiedData struct {
	SessionID string
	Revision  uint64
	Width     int
	Height    int
}

// CanvasLoadedData names the file a canvas came from. FilePath is empty for
// a new canvas.
type CanvasLoadedData struct {
	SessionID string
	FilePath  string
	Width     int
	Height    int
}

// CanvasSavedData names the file that was written.
type CanvasSavedData struct {
	SessionID string
	FilePath  string
	Backup    bool
}

// CanvasExportedData names the image that was written.
type CanvasExportedData struct {
	SessionID string
	FilePath  string
	Scale     int
}

// HistoryClearedData carries the number of commands dropped.
type HistoryClearedData struct {
	SessionID string
	Dropped   int
}

// ToolChangedData carries the tool name now active.
type ToolChangedData struct {
	Tool string
}

type AppQuitData struct{}

type AppReadyData struct{}
