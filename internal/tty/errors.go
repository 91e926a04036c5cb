package tty

import (
	"errors"
	"fmt"
)

// ErrNotTerminal is returned by Open when the input is not a terminal.
var ErrNotTerminal = errors.New("not running on a TTY (interactive input is unavailable)")

// IOError reports a failed terminal operation.
type IOError struct {
	Op  string // "raw mode", "read key", "write frame", "restore", ...
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Err: err}
}
