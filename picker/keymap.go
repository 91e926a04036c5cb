package picker

import "github.com/runger/pickaboo/internal/tty"

// actionKind is what a key press means to the picker.
type actionKind int

const (
	actionIgnore actionKind = iota
	actionMoveNext
	actionMovePrev
	actionJump
	actionConfirm
	actionCancel
)

func (k actionKind) String() string {
	switch k {
	case actionMoveNext:
		return "next"
	case actionMovePrev:
		return "prev"
	case actionJump:
		return "jump"
	case actionConfirm:
		return "confirm"
	case actionCancel:
		return "cancel"
	default:
		return "ignore"
	}
}

type action struct {
	kind  actionKind
	index int // target of actionJump
}

// mapKey translates a key press into an action. Navigation keys are checked
// first, then item shortcuts, then confirm and cancel. Navigation keys are
// never printable, so they cannot collide with a validated shortcut.
func mapKey(k tty.Key, o *Options) action {
	switch k.Type {
	case tty.KeyRight, tty.KeyDown, tty.KeyTab, tty.KeyCtrlN:
		return action{kind: actionMoveNext}
	case tty.KeyLeft, tty.KeyUp, tty.KeyBackTab, tty.KeyCtrlP:
		return action{kind: actionMovePrev}
	case tty.KeyRune:
		if i, ok := o.IndexOfKey(k.Rune); ok {
			return action{kind: actionJump, index: i}
		}
	case tty.KeyEnter:
		return action{kind: actionConfirm}
	case tty.KeyEscape, tty.KeyCtrlC:
		return action{kind: actionCancel}
	}
	return action{kind: actionIgnore}
}
