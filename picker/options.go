package picker

import (
	"fmt"
	"strings"
	"unicode"
)

// Options is an immutable, non-empty, ordered list of items with unique
// shortcut keys.
type Options struct {
	items   []Item
	keys    []rune // effective key per item
	initial int
}

// NewOptions validates items and returns them as Options. It fails when the
// list is empty, a label is empty, a key is not printable, or two items
// resolve to the same key (compared case-insensitively).
func NewOptions(items ...Item) (*Options, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Index: -1, Err: ErrNoItems}
	}

	o := &Options{
		items: make([]Item, len(items)),
		keys:  make([]rune, len(items)),
	}
	seen := make(map[rune]int, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.Label) == "" {
			return nil, &ValidationError{Index: i, Label: item.Label, Err: ErrEmptyLabel}
		}

		key := item.effectiveKey()
		if !validShortcut(key) {
			return nil, &ValidationError{Index: i, Label: item.Label, Err: fmt.Errorf("%w (got %q)", ErrInvalidKey, key)}
		}
		if prev, dup := seen[key]; dup {
			return nil, &ValidationError{
				Index: i,
				Label: item.Label,
				Err:   fmt.Errorf("%w %q (also used by item %d)", ErrDuplicateKey, key, prev),
			}
		}
		seen[key] = i

		o.items[i] = item
		o.keys[i] = key
	}
	return o, nil
}

// ParseOptions builds Options from strings, each parsed with ParseItem.
func ParseOptions(entries ...string) (*Options, error) {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = ParseItem(e)
	}
	return NewOptions(items...)
}

// StartingAt returns a copy of o whose session starts with the cursor on
// item i.
func (o *Options) StartingAt(i int) (*Options, error) {
	if i < 0 || i >= len(o.items) {
		return nil, &ValidationError{
			Index: -1,
			Err:   fmt.Errorf("%w: %d (len: %d)", ErrIndexOutOfRange, i, len(o.items)),
		}
	}
	c := *o
	c.initial = i
	return &c, nil
}

// Len returns the number of items.
func (o *Options) Len() int {
	return len(o.items)
}

// Item returns a copy of item i.
func (o *Options) Item(i int) Item {
	return o.items[i]
}

// Key returns the effective, lower-cased shortcut key of item i.
func (o *Options) Key(i int) rune {
	return o.keys[i]
}

// Initial returns the index the cursor starts on.
func (o *Options) Initial() int {
	return o.initial
}

// IndexOfKey returns the item whose shortcut matches r, ignoring case.
func (o *Options) IndexOfKey(r rune) (int, bool) {
	r = unicode.ToLower(r)
	for i, k := range o.keys {
		if k == r {
			return i, true
		}
	}
	return -1, false
}

// Labels returns the labels in order.
func (o *Options) Labels() []string {
	labels := make([]string, len(o.items))
	for i, item := range o.items {
		labels[i] = item.Label
	}
	return labels
}
