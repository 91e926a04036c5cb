// Package tty owns the terminal for the duration of one picker session.
//
// A Session puts the input terminal into raw mode, optionally switches to the
// alternate screen, decodes key presses and restores everything on Close.
package tty

import (
	"bytes"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode describes how the session uses the screen.
type Mode struct {
	// AltScreen switches to the alternate screen buffer for the session.
	AltScreen bool
	// Height is the number of lines one inline frame occupies. Close moves
	// the cursor below them so later output does not overwrite the frame.
	Height int
}

// Session is an acquired terminal. It must be closed, typically with defer
// right after Open succeeds.
type Session struct {
	in     *os.File
	out    *os.File
	fd     int
	saved  *term.State
	mode   Mode
	keys   *KeyReader
	closed bool

	profile termenv.Profile
}

// Open enters raw mode on in and prepares out for drawing. If anything fails
// after raw mode was entered, the terminal is restored before returning.
func Open(in, out *os.File, mode Mode) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, ioError("raw mode", err)
	}

	s := &Session{
		in:      in,
		out:     out,
		fd:      fd,
		saved:   saved,
		mode:    mode,
		keys:    NewKeyReader(fileInput{in}),
		profile: termenv.NewOutput(out).ColorProfile(),
	}

	var buf bytes.Buffer
	o := termenv.NewOutput(&buf, termenv.WithProfile(s.profile))
	o.HideCursor()
	if mode.AltScreen {
		o.AltScreen()
		o.MoveCursor(1, 1)
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		_ = term.Restore(fd, saved)
		return nil, ioError("setup", err)
	}

	return s, nil
}

// ReadKey blocks until the user presses a key. There is no timeout.
func (s *Session) ReadKey() (Key, error) {
	k, err := s.keys.ReadKey()
	if err != nil {
		return Key{}, ioError("read key", err)
	}
	return k, nil
}

// Write writes one frame to the output in a single call.
func (s *Session) Write(p []byte) (int, error) {
	n, err := s.out.Write(p)
	return n, ioError("write frame", err)
}

// Size returns the terminal size in columns and rows, or zeros if it is
// unknown.
func (s *Session) Size() (width, height int) {
	for _, f := range []*os.File{s.out, s.in} {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w, h
		}
	}
	return 0, 0
}

// Profile returns the color profile detected for the output.
func (s *Session) Profile() termenv.Profile {
	return s.profile
}

// Close leaves the alternate screen (or moves below the inline frame), shows
// the cursor and restores the terminal mode saved by Open. It is safe to call
// more than once; only the first call does anything.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var buf bytes.Buffer
	o := termenv.NewOutput(&buf, termenv.WithProfile(s.profile))
	if s.mode.AltScreen {
		o.ExitAltScreen()
	} else {
		if s.mode.Height > 1 {
			o.CursorDown(s.mode.Height - 1)
		}
		_, _ = o.WriteString("\r\n")
	}
	o.ShowCursor()

	_, werr := s.out.Write(buf.Bytes())
	// Restore even if the write failed.
	if err := term.Restore(s.fd, s.saved); err != nil {
		return ioError("restore", err)
	}
	return ioError("cleanup", werr)
}
