package cmd

import (
	"io"

	"github.com/muesli/termenv"
)

// palette styles command output for the writer it prints to. Styling is
// dropped when the writer is not a terminal or NO_COLOR is set.
type palette struct {
	out *termenv.Output
}

func newPalette(w io.Writer, opts ...termenv.OutputOption) palette {
	return palette{out: termenv.NewOutput(w, opts...)}
}

func (p palette) bold(s string) string {
	return p.out.String(s).Bold().String()
}

func (p palette) key(s string) string {
	return p.out.String(s).Foreground(p.out.Color("6")).String()
}

func (p palette) dim(s string) string {
	return p.out.String(s).Faint().String()
}

func (p palette) warn(s string) string {
	return p.out.String(s).Foreground(p.out.Color("3")).String()
}
