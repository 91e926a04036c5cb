//go:build windows

package cmd

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// openTTY is unavailable on Windows; stdin and stderr must be the console.
func openTTY() (*os.File, error) {
	return nil, errors.New("redirected input is not supported on Windows")
}

// checkTermWidth verifies that the console behind f is at least
// minTermWidth columns wide.
func checkTermWidth(f *os.File) error {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return fmt.Errorf("cannot get terminal size: %w", err)
	}
	if w < minTermWidth {
		return fmt.Errorf("terminal too narrow (%d columns, need at least %d)", w, minTermWidth)
	}
	return nil
}
