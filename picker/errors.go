package picker

import (
	"errors"
	"fmt"

	"github.com/runger/pickaboo/internal/tty"
)

// Validation failures. A *ValidationError wraps one of these, so callers can
// test with errors.Is.
var (
	ErrNoItems         = errors.New("items cannot be empty")
	ErrEmptyLabel      = errors.New("label cannot be empty")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrInvalidKey      = errors.New("key must be a printable, non-space character")
	ErrIndexOutOfRange = errors.New("index is out of bounds")
	ErrInvalidConfig   = errors.New("invalid picker config")
)

// ErrNotTerminal is returned by Choose when the input is not a terminal.
var ErrNotTerminal = tty.ErrNotTerminal

// IOError reports a terminal failure during a session: entering raw mode,
// reading a key or writing a frame. The terminal has already been restored
// when it is returned.
type IOError = tty.IOError

// ValidationError is returned when Options cannot be built.
type ValidationError struct {
	Index int    // Offending item, or -1 when the error is about the whole list
	Label string // Label of the offending item, if any
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid options: %v", e.Err)
	}
	return fmt.Sprintf("invalid options: item %d (%q): %v", e.Index, e.Label, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
