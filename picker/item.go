package picker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Item is one selectable entry.
type Item struct {
	// Label is shown for the selected item and returned when it is chosen.
	Label string
	// Short is an abbreviation of Label. When Key is zero its first
	// character supplies the shortcut key.
	Short string
	// Key jumps straight to this item. Zero derives it from the first
	// character of Short, or of Label when Short is empty, lower-cased.
	Key rune
	// Description is optional text shown according to DescriptionMode.
	Description string
}

// NewItem creates an item. A zero key is derived from the label; an empty
// description shows nothing.
func NewItem(label string, key rune, description string) Item {
	return Item{Label: label, Key: key, Description: description}
}

// ParseItem builds an item from "Label[(Short)][: Description]".
//
// The first colon separates the description; a trailing "(x)" on the label
// part sets Short and, through it, the key:
//
//	ParseItem("Example")               // Label "Example", key 'e'
//	ParseItem("Test: just a test")     // Label "Test", key 't', with description
//	ParseItem("Colon: too:many:colons") // description "too:many:colons"
//	ParseItem("Label(S): short key")   // Label "Label", Short "S", key 's'
func ParseItem(s string) Item {
	head, desc, _ := strings.Cut(s, ":")
	head = strings.TrimSpace(head)

	item := Item{Label: head, Description: strings.TrimSpace(desc)}
	if strings.HasSuffix(head, ")") {
		if start := strings.LastIndex(head, "("); start >= 0 {
			item.Label = strings.TrimSpace(head[:start])
			item.Short = strings.TrimSpace(head[start+1 : len(head)-1])
		}
	}
	return item
}

// effectiveKey returns the lower-cased shortcut key, explicit or derived,
// or 0 when none can be derived.
func (it Item) effectiveKey() rune {
	if it.Key != 0 {
		return unicode.ToLower(it.Key)
	}
	src := it.Short
	if src == "" {
		src = strings.TrimSpace(it.Label)
	}
	r, size := utf8.DecodeRuneInString(src)
	if size == 0 || r == utf8.RuneError {
		return 0
	}
	return unicode.ToLower(r)
}

// glyph is the shortcut key shown for unselected items: an explicit key as
// typed, a derived one lower-cased.
func (it Item) glyph() string {
	if it.Key != 0 {
		return string(it.Key)
	}
	return string(it.effectiveKey())
}

func validShortcut(r rune) bool {
	return r != 0 && unicode.IsPrint(r) && !unicode.IsSpace(r)
}
