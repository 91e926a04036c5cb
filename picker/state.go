package picker

// status is the picker's state machine position.
type status int

const (
	statusRunning status = iota
	statusConfirmed
	statusCancelled
)

func (s status) String() string {
	switch s {
	case statusConfirmed:
		return "confirmed"
	case statusCancelled:
		return "cancelled"
	default:
		return "running"
	}
}

// state is the mutable part of one session.
type state struct {
	cursor int // Index into Options, always in [0, n)
	status status
}

// apply returns the state after a. Once confirmed or cancelled the state no
// longer changes.
func (s state) apply(a action, n int, wrap bool) state {
	if s.status != statusRunning {
		return s
	}

	switch a.kind {
	case actionMoveNext:
		s.cursor++
		if s.cursor >= n {
			if wrap {
				s.cursor = 0
			} else {
				s.cursor = n - 1
			}
		}
	case actionMovePrev:
		s.cursor--
		if s.cursor < 0 {
			if wrap {
				s.cursor = n - 1
			} else {
				s.cursor = 0
			}
		}
	case actionJump:
		s.cursor = a.index
	case actionConfirm:
		s.status = statusConfirmed
	case actionCancel:
		s.status = statusCancelled
	}
	return s
}
