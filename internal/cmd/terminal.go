package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// minTermWidth is the narrowest terminal a prompt is drawn on.
const minTermWidth = 20

// checkTERM verifies that the TERM environment variable is not "dumb".
func checkTERM() error {
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("TERM=dumb is not supported")
	}
	return nil
}

// terminal returns the files a session reads keys from and draws on. Keys
// come from stdin and frames go to stderr; when either is redirected the
// controlling terminal is used instead. release closes what was opened.
func (a *app) terminal() (in, out *os.File, release func(), err error) {
	in, out = a.stdin, a.stderr
	release = func() {}

	inTTY := term.IsTerminal(int(in.Fd()))
	outTTY := term.IsTerminal(int(out.Fd()))
	if inTTY && outTTY {
		return in, out, release, nil
	}

	if a.openTTY == nil {
		return nil, nil, nil, fmt.Errorf("no TTY available")
	}
	tty, err := a.openTTY()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("no TTY available: %w", err)
	}
	if !inTTY {
		in = tty
	}
	if !outTTY {
		out = tty
	}
	return in, out, func() { tty.Close() }, nil
}

// preflight runs the checks every prompt needs before touching the terminal.
func preflight(out *os.File) error {
	if err := checkTERM(); err != nil {
		return err
	}
	return checkTermWidth(out)
}
