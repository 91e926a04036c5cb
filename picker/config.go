package picker

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DescriptionMode selects which item descriptions are shown.
type DescriptionMode int

const (
	DescriptionNone     DescriptionMode = iota // Never show descriptions
	DescriptionSelected                        // Show the selected item's description
	DescriptionAll                             // Show every description
)

func (m DescriptionMode) String() string {
	switch m {
	case DescriptionNone:
		return "none"
	case DescriptionSelected:
		return "selected"
	case DescriptionAll:
		return "all"
	default:
		return fmt.Sprintf("DescriptionMode(%d)", int(m))
	}
}

// ParseDescriptionMode parses "none", "selected" or "all".
func ParseDescriptionMode(s string) (DescriptionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return DescriptionNone, nil
	case "selected", "current":
		return DescriptionSelected, nil
	case "all":
		return DescriptionAll, nil
	default:
		return DescriptionNone, fmt.Errorf("%w: description mode must be none, selected, or all (got: %s)", ErrInvalidConfig, s)
	}
}

// NameWidth is the column width labels are padded to when descriptions are
// shown. The zero value is AutoNameWidth.
type NameWidth int

// AutoNameWidth pads labels to the widest label.
const AutoNameWidth NameWidth = 0

// FixedNameWidth pads labels to n columns. n must be positive.
func FixedNameWidth(n int) NameWidth {
	return NameWidth(n)
}

// Fixed returns the fixed width and true, or 0 and false for AutoNameWidth.
func (w NameWidth) Fixed() (int, bool) {
	if w == AutoNameWidth {
		return 0, false
	}
	return int(w), true
}

func (w NameWidth) String() string {
	if w == AutoNameWidth {
		return "auto"
	}
	return strconv.Itoa(int(w))
}

// ParseNameWidth parses "auto" or a positive number of columns.
func ParseNameWidth(s string) (NameWidth, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "auto" || s == "" {
		return AutoNameWidth, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return AutoNameWidth, fmt.Errorf("%w: name width must be auto or a positive number (got: %s)", ErrInvalidConfig, s)
	}
	return FixedNameWidth(n), nil
}

// Config holds the picker settings. The zero value is usable and equals
// DefaultConfig.
type Config struct {
	// AlternateScreen draws on the alternate screen buffer instead of inline.
	AlternateScreen bool
	// AllowWrap moves from the last item to the first (and back) instead of
	// stopping at the ends.
	AllowWrap bool
	// Delimiter separates items on the inline line. Empty means "/".
	Delimiter string
	// LeftParen and RightParen surround the inline item list.
	LeftParen  string
	RightParen string
	// DescriptionMode selects which descriptions are shown.
	DescriptionMode DescriptionMode
	// NameWidth aligns descriptions.
	NameWidth NameWidth
}

// DefaultConfig returns the default configuration: inline, no wrap, "/"
// delimiter, no parentheses, no descriptions, automatic name width.
func DefaultConfig() Config {
	return Config{
		Delimiter:       "/",
		DescriptionMode: DescriptionNone,
		NameWidth:       AutoNameWidth,
	}
}

// Validate reports settings that cannot be rendered.
func (c Config) Validate() error {
	if c.DescriptionMode < DescriptionNone || c.DescriptionMode > DescriptionAll {
		return fmt.Errorf("%w: unknown description mode %d", ErrInvalidConfig, int(c.DescriptionMode))
	}
	if c.NameWidth < 0 {
		return fmt.Errorf("%w: name width must be positive (got: %d)", ErrInvalidConfig, int(c.NameWidth))
	}
	if strings.ContainsAny(c.Delimiter+c.LeftParen+c.RightParen, "\r\n") {
		return fmt.Errorf("%w: delimiter and parentheses must not contain newlines", ErrInvalidConfig)
	}
	return nil
}

func (c Config) delimiter() string {
	if c.Delimiter == "" {
		return "/"
	}
	return c.Delimiter
}

// ParseParen splits a single parentheses string into its left and right
// halves. An even-length string is split in the middle ("[]", "(<>)"); an
// odd-length string is used entirely on the left (":"); "" yields no
// parentheses.
func ParseParen(s string) (left, right string) {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return "", ""
	}
	if n%2 != 0 {
		return s, ""
	}
	runes := []rune(s)
	return string(runes[:n/2]), string(runes[n/2:])
}
