package picker

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// renderer draws frames for one session. A frame is a pure function of the
// state, so drawing the same state twice writes the same bytes.
//
// Inline frames start at column 0 of the prompt line and leave the cursor
// there again, so each frame overwrites the previous one in place. Alternate
// screen frames start from the home position and erase everything below;
// when the list does not fit the terminal height only a window of items
// around the cursor is drawn.
type renderer struct {
	cfg     Config
	prompt  string
	labels  []string
	glyphs  []string
	descs   []string
	width   int // terminal columns, 0 if unknown
	height  int // terminal rows, 0 if unknown
	nameW   int
	profile termenv.Profile

	selectedStyle lipgloss.Style
	markerStyle   lipgloss.Style
	descStyle     lipgloss.Style
}

func newRenderer(cfg Config, prompt string, o *Options, width, height int, profile termenv.Profile) *renderer {
	lr := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	lr.SetColorProfile(profile)

	r := &renderer{
		cfg:     cfg,
		prompt:  displayText(prompt),
		labels:  make([]string, o.Len()),
		glyphs:  make([]string, o.Len()),
		descs:   make([]string, o.Len()),
		width:   width,
		height:  height,
		profile: profile,

		selectedStyle: lr.NewStyle().Bold(true),
		markerStyle:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		descStyle:     lr.NewStyle().Faint(true),
	}
	for i, n := 0, o.Len(); i < n; i++ {
		item := o.Item(i)
		r.labels[i] = displayText(item.Label)
		r.glyphs[i] = displayText(item.glyph())
		r.descs[i] = displayText(item.Description)
	}
	r.nameW = nameWidth(cfg.NameWidth, r.labels)
	return r
}

// nameWidth resolves the column labels are padded to.
func nameWidth(w NameWidth, labels []string) int {
	if n, ok := w.Fixed(); ok {
		return n
	}
	maxW := 0
	for _, l := range labels {
		maxW = max(maxW, runewidth.StringWidth(l))
	}
	return maxW
}

// frameHeight returns the number of lines every frame occupies.
func frameHeight(cfg Config, n int) int {
	if cfg.AlternateScreen {
		return 1 + n
	}
	switch cfg.DescriptionMode {
	case DescriptionSelected:
		return 2
	case DescriptionAll:
		return 1 + n
	default:
		return 1
	}
}

// lines returns the visible text of a frame, without cursor movement.
func (r *renderer) lines(st state) []string {
	var lines []string
	if r.cfg.AlternateScreen {
		lines = append(lines, r.prompt)
		start, end := r.window(st.cursor)
		for i := start; i < end; i++ {
			showDesc := r.cfg.DescriptionMode == DescriptionAll ||
				(r.cfg.DescriptionMode == DescriptionSelected && i == st.cursor)
			lines = append(lines, r.itemLine(i, i == st.cursor, i == st.cursor, showDesc))
		}
	} else {
		lines = append(lines, r.inlineLine(st))
		switch r.cfg.DescriptionMode {
		case DescriptionSelected:
			lines = append(lines, r.itemLine(st.cursor, false, false, true))
		case DescriptionAll:
			for i := range r.labels {
				lines = append(lines, r.itemLine(i, i == st.cursor, false, true))
			}
		}
	}

	if r.width > 1 {
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, r.width-1, "")
		}
	}
	return lines
}

// window returns the range of items an alternate screen frame shows. The
// prompt takes one row; the rest hold items, centered on the cursor where the
// list allows.
func (r *renderer) window(cursor int) (start, end int) {
	n := len(r.labels)
	if r.height <= 0 || 1+n <= r.height {
		return 0, n
	}
	rows := max(r.height-1, 1)
	start = min(max(cursor-rows/2, 0), n-rows)
	return start, start + rows
}

// inlineLine renders "prompt (y/ Selected /n)": the selected item spelled
// out, every other item abbreviated to its glyph.
func (r *renderer) inlineLine(st state) string {
	parts := make([]string, len(r.labels))
	for i := range r.labels {
		if i == st.cursor {
			parts[i] = " " + r.selectedStyle.Render(r.labels[i]) + " "
		} else {
			parts[i] = r.glyphs[i]
		}
	}
	return r.prompt + " " + r.cfg.LeftParen + strings.Join(parts, r.cfg.delimiter()) + r.cfg.RightParen
}

// itemLine renders one item with an optional "> " marker, bold label and
// aligned description.
func (r *renderer) itemLine(i int, marked, bold, showDesc bool) string {
	prefix := "  "
	if marked {
		prefix = r.markerStyle.Render(">") + " "
	}

	label := r.labels[i]
	desc := r.descs[i]
	if showDesc && desc != "" {
		label = runewidth.FillRight(label, r.nameW)
	}
	if bold {
		label = r.selectedStyle.Render(label)
	}

	line := prefix + label
	if showDesc && desc != "" {
		line += "  " + r.descStyle.Render(desc)
	}
	return line
}

// frame renders the full byte sequence for st.
func (r *renderer) frame(st state) string {
	var b strings.Builder
	o := termenv.NewOutput(&b, termenv.WithProfile(r.profile))

	lines := r.lines(st)
	if r.cfg.AlternateScreen {
		o.MoveCursor(1, 1)
	}
	for i, line := range lines {
		if i == 0 {
			b.WriteString("\r")
		} else {
			b.WriteString("\r\n")
		}
		o.ClearLine()
		b.WriteString(line)
	}

	if r.cfg.AlternateScreen {
		fmt.Fprintf(&b, termenv.CSI+termenv.EraseDisplaySeq, 0)
	} else {
		if len(lines) > 1 {
			o.CursorUp(len(lines) - 1)
		}
		b.WriteString("\r")
	}
	return b.String()
}

// draw writes the frame for st in a single write.
func (r *renderer) draw(w io.Writer, st state) error {
	_, err := io.WriteString(w, r.frame(st))
	return err
}
