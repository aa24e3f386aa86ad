package exhibit

import "github.com/gdamore/tcell/v2"

// Action is a keyboard command.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionReset
	ActionDeselect
	ActionRule1
	ActionRule2
	ActionRule3
	ActionRule4
)

// keyToAction maps a tcell key event to an exhibit action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionScrollUp
	case tcell.KeyDown:
		return ActionScrollDown
	case tcell.KeyPgUp:
		return ActionPageUp
	case tcell.KeyPgDn:
		return ActionPageDown
	case tcell.KeyEscape:
		return ActionDeselect
	case tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'q', 'Q':
		return ActionQuit
	case 'k', 'K':
		return ActionScrollUp
	case 'j', 'J':
		return ActionScrollDown
	case 'r', 'R':
		return ActionReset
	case '1':
		return ActionRule1
	case '2':
		return ActionRule2
	case '3':
		return ActionRule3
	case '4':
		return ActionRule4
	}
	return ActionNone
}
