// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions, RuneKeymap plain runes.
type Keymap map[tcell.Key]Action
type RuneKeymap map[rune]Action
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap

	// glyphEntry makes the next rune select a glyph instead of an action.
	glyphEntry bool
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyEnter] = ActionPaint
	p.keymap[tcell.KeyTab] = ActionNextTool
	p.keymap[tcell.KeyBackspace] = ActionToolEraser
	p.keymap[tcell.KeyBackspace2] = ActionToolEraser
	p.keymap[tcell.KeyEscape] = ActionQuit

	// Ctrl+letter arrives as its own key, with or without ModCtrl set.
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlS] = ActionSave
	ctrlMap[tcell.KeyCtrlE] = ActionExport
	ctrlMap[tcell.KeyCtrlN] = ActionNew
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlR] = ActionRedo
	ctrlMap[tcell.KeyCtrlQ] = ActionForceQuit
	ctrlMap[tcell.KeyCtrlC] = ActionQuit
	p.modKeymap[tcell.ModCtrl] = ctrlMap
	for k, a := range ctrlMap {
		p.keymap[k] = a
	}

	p.runeKeymap['q'] = ActionQuit
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['y'] = ActionYank
	p.runeKeymap[' '] = ActionPaint
	p.runeKeymap['x'] = ActionPaintAlt
	p.runeKeymap['g'] = ActionPickGlyph
	p.runeKeymap[']'] = ActionNextGlyph
	p.runeKeymap['['] = ActionPrevGlyph
	p.runeKeymap['i'] = ActionSampleCell
	p.runeKeymap['h'] = ActionMoveLeft
	p.runeKeymap['j'] = ActionMoveDown
	p.runeKeymap['k'] = ActionMoveUp
	p.runeKeymap['l'] = ActionMoveRight
	p.runeKeymap['p'] = ActionToolPencil
	p.runeKeymap['e'] = ActionToolEraser
	p.runeKeymap['f'] = ActionToolFill
	p.runeKeymap['r'] = ActionToolReplace
	p.runeKeymap['b'] = ActionToolRect
	p.runeKeymap['c'] = ActionNextFG
	p.runeKeymap['C'] = ActionPrevFG
	p.runeKeymap['v'] = ActionNextBG
	p.runeKeymap['V'] = ActionPrevBG
	p.runeKeymap['s'] = ActionSwapColors
	p.runeKeymap['+'] = ActionGrowWidth
	p.runeKeymap['-'] = ActionShrinkWidth
	p.runeKeymap['='] = ActionGrowHeight
	p.runeKeymap['_'] = ActionShrinkHeight
	p.runeKeymap['a'] = ActionNextAnchor
}

// ProcessEvent returns the action bound to ev. After ActionPickGlyph the next
// printable rune is returned as the glyph to select.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	if p.glyphEntry {
		p.glyphEntry = false
		if key == tcell.KeyRune {
			return ActionEvent{Action: ActionPickGlyph, Rune: runeVal}
		}
		if key == tcell.KeyEscape {
			return ActionEvent{Action: ActionUnknown}
		}
	}

	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if key == tcell.KeyRune {
			if action, ok := p.runeKeymap[runeVal]; ok {
				if action == ActionPickGlyph {
					p.glyphEntry = true
					return ActionEvent{Action: ActionUnknown}
				}
				return ActionEvent{Action: action, Rune: runeVal}
			}
			return ActionEvent{Action: ActionUnknown}
		}
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	return ActionEvent{Action: ActionUnknown}
}

// PendingGlyph reports whether the next rune will select a glyph.
func (p *InputProcessor) PendingGlyph() bool {
	return p.glyphEntry
}
