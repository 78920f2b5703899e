package history

import (
	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/logger"
)

// DefaultCheckpointGap is the number of commands folded into the checkpoint at a time.
const DefaultCheckpointGap = 16

const logTag = "history"

// Manager is the edit log of one editing session.
//
// The rendered canvas is the base grid with every command of the log applied.
// To keep Render cheap the manager folds whole batches of gap commands into a
// checkpoint grid; a render then only replays the tail after the last complete
// batch. The checkpoint always equals edits[:boundary*gap] applied to the base.
//
// Manager is not safe for concurrent use.
type Manager struct {
	edits      []Command
	redo       []Command
	checkpoint *canvas.Grid
	boundary   int
	gap        int
}

// NewManager creates an empty history. A gap below 1 uses DefaultCheckpointGap.
func NewManager(gap int) *Manager {
	if gap <= 0 {
		gap = DefaultCheckpointGap
	}
	return &Manager{gap: gap}
}

// Push appends cmd to the log and drops the redo stack. A command equal to the
// last one in the log is ignored, so a pointer held still over one cell records
// a single edit. It reports whether the log changed.
func (m *Manager) Push(cmd Command) bool {
	if n := len(m.edits); n > 0 && m.edits[n-1].Equal(cmd) {
		return false
	}
	m.edits = append(m.edits, cmd)
	m.redo = m.redo[:0]
	logger.DebugTagf(logTag, "History: pushed %v. Count: %d", cmd.Kind(), len(m.edits))
	return true
}

// Undo moves the last command of the log onto the redo stack.
// Stepping back past the checkpoint boundary discards the checkpoint; the next
// Render rebuilds it from the base grid.
func (m *Manager) Undo() bool {
	n := len(m.edits)
	if n == 0 {
		logger.DebugTagf(logTag, "History: nothing to undo.")
		return false
	}
	cmd := m.edits[n-1]
	m.edits = m.edits[:n-1]
	m.redo = append(m.redo, cmd)

	if len(m.edits)/m.gap < m.boundary {
		logger.DebugTagf(logTag, "History: undo crossed checkpoint boundary %d, invalidating.", m.boundary)
		m.checkpoint = nil
		m.boundary = 0
	}
	logger.DebugTagf(logTag, "History: undid %v. Count: %d, Redo: %d", cmd.Kind(), len(m.edits), len(m.redo))
	return true
}

// Redo moves the most recently undone command back onto the log.
func (m *Manager) Redo() bool {
	n := len(m.redo)
	if n == 0 {
		logger.DebugTagf(logTag, "History: nothing to redo.")
		return false
	}
	cmd := m.redo[n-1]
	m.redo = m.redo[:n-1]
	m.edits = append(m.edits, cmd)
	logger.DebugTagf(logTag, "History: redid %v. Count: %d, Redo: %d", cmd.Kind(), len(m.edits), len(m.redo))
	return true
}

// Render returns base with the whole log applied. The result is a fresh grid
// owned by the caller; mutating it does not affect the history.
//
// base must be the same grid (by content) for every call between two Clears.
func (m *Manager) Render(base *canvas.Grid) *canvas.Grid {
	if m.checkpoint == nil {
		m.checkpoint = base.Clone()
		m.boundary = 0
	}

	target := len(m.edits) / m.gap
	if target > m.boundary {
		ApplyAll(m.checkpoint, m.edits[m.boundary*m.gap:target*m.gap])
		logger.DebugTagf(logTag, "History: checkpoint advanced %d -> %d", m.boundary, target)
		m.boundary = target
	}

	out := m.checkpoint.Clone()
	ApplyAll(out, m.edits[m.boundary*m.gap:])
	return out
}

// Clear drops the log, the redo stack and the checkpoint. Call this when a
// different canvas is loaded.
func (m *Manager) Clear() {
	m.edits = nil
	m.redo = nil
	m.checkpoint = nil
	m.boundary = 0
	logger.DebugTagf(logTag, "History: cleared.")
}

// CanUndo returns true if there are commands that can be undone.
func (m *Manager) CanUndo() bool { return len(m.edits) > 0 }

// CanRedo returns true if there are commands that can be redone.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// Len returns the number of commands in the log.
func (m *Manager) Len() int { return len(m.edits) }

// RedoLen returns the number of undone commands available to Redo.
func (m *Manager) RedoLen() int { return len(m.redo) }

// Boundary returns how many batches the checkpoint currently covers.
func (m *Manager) Boundary() int { return m.boundary }

// Gap returns the checkpoint batch size.
func (m *Manager) Gap() int { return m.gap }

// Commands returns a copy of the log, oldest first.
func (m *Manager) Commands() []Command {
	out := make([]Command, len(m.edits))
	copy(out, m.edits)
	return out
}
