package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:    ActionMoveLeft,
			tcell.KeyRight:   ActionMoveRight,
			tcell.KeyUp:      ActionMoveUp,
			tcell.KeyDown:    ActionMoveDown,
			tcell.KeyEnter:   ActionConfirm,
			tcell.KeyEscape:  ActionPause,
			tcell.KeyTab:     ActionShield,
			tcell.KeyBacktab: ActionShield,
			tcell.KeyCtrlC:   ActionExit,
			tcell.KeyCtrlQ:   ActionExit,
		},
		Runes: map[rune]Action{
			'a': ActionMoveLeft,
			'd': ActionMoveRight,
			'w': ActionMoveUp,
			's': ActionMoveDown,
			' ': ActionFire,
			'e': ActionShield,
			'p': ActionPause,
			'q': ActionQuit,
			'x': ActionRotateCW,
			'z': ActionRotateCCW,
			'm': ActionToggleMute,
		},
	}
}

// Resolve returns the action bound to a key event
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			// Shift held with a letter; ' ' has no upper form
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
