// internal/input/action.go
package input

// Action is an operation requested from the keyboard.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionForceQuit // quit without checking for unsaved edits
	ActionSave
	ActionExport
	ActionNew
	ActionYank // copy the canvas as text

	// History
	ActionUndo
	ActionRedo

	// Cursor
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Painting at the cursor
	ActionPaint      // primary button press at the cursor
	ActionPaintAlt   // secondary button press at the cursor
	ActionPickGlyph  // Rune carries the glyph to select
	ActionNextGlyph  // next code page entry
	ActionPrevGlyph
	ActionSampleCell // take glyph and colors from the cell under the cursor

	// Pen
	ActionNextTool
	ActionToolPencil
	ActionToolEraser
	ActionToolFill
	ActionToolReplace
	ActionToolRect
	ActionNextFG
	ActionPrevFG
	ActionNextBG
	ActionPrevBG
	ActionSwapColors

	// Canvas size
	ActionGrowWidth
	ActionShrinkWidth
	ActionGrowHeight
	ActionShrinkHeight
	ActionNextAnchor
)

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune // for ActionPickGlyph
}
