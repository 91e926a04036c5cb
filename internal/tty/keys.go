package tty

import (
	"io"
	"time"
	"unicode/utf8"
)

// KeyType identifies the kind of key decoded from raw terminal input.
type KeyType int

const (
	KeyUnknown KeyType = iota
	KeyRune            // Printable character, see Key.Rune
	KeyEnter
	KeyEscape
	KeyCtrlC
	KeyTab
	KeyBackTab // Shift+Tab
	KeyCtrlN
	KeyCtrlP
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

var keyNames = map[KeyType]string{
	KeyUnknown:   "unknown",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyCtrlC:     "ctrl+c",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyCtrlN:     "ctrl+n",
	KeyCtrlP:     "ctrl+p",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
}

func (t KeyType) String() string {
	if name, ok := keyNames[t]; ok {
		return name
	}
	return "unknown"
}

// Key is one decoded key press.
type Key struct {
	Type KeyType
	Rune rune // Set only for KeyRune
}

// RuneKey returns a Key for a printable character.
func RuneKey(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

func (k Key) String() string {
	if k.Type == KeyRune {
		return string(k.Rune)
	}
	return k.Type.String()
}

// KeyReader decodes keys from a raw-mode byte stream.
//
// A single read may carry several keys (fast typing, pasted text); those are
// queued and handed out one per ReadKey call. A multi-byte rune or an escape
// sequence split across reads is held back until the rest arrives.
//
// A lone ESC at the end of a read is ambiguous: it is either the Escape key or
// the start of a sequence whose tail is still in flight. If r can wait for
// input, the reader waits up to escTimeout for more bytes; otherwise ESC is
// the Escape key.
type KeyReader struct {
	r       io.Reader
	wait    func(time.Duration) bool
	buf     [64]byte
	partial []byte
	queue   []Key
}

// escTimeout is how long a trailing ESC waits for the rest of a sequence.
const escTimeout = 50 * time.Millisecond

// maxEscapeLen bounds how many bytes of an unfinished sequence are held.
const maxEscapeLen = 32

// inputWaiter is implemented by readers that can report whether input
// becomes readable within a timeout.
type inputWaiter interface {
	waitInput(d time.Duration) bool
}

// NewKeyReader creates a KeyReader over r.
func NewKeyReader(r io.Reader) *KeyReader {
	k := &KeyReader{r: r}
	if w, ok := r.(inputWaiter); ok {
		k.wait = w.waitInput
	}
	return k
}

// ReadKey blocks until one key is available.
func (k *KeyReader) ReadKey() (Key, error) {
	for len(k.queue) == 0 {
		if len(k.partial) == 1 && k.partial[0] == 0x1b && !k.moreInput() {
			k.partial = nil
			k.queue = append(k.queue, Key{Type: KeyEscape})
			break
		}

		n, err := k.r.Read(k.buf[:])
		if n > 0 {
			data := append(k.partial, k.buf[:n]...)
			var keys []Key
			keys, k.partial = decodeKeys(data)
			k.queue = append(k.queue, keys...)
		}
		if err != nil {
			if len(k.partial) == 1 && k.partial[0] == 0x1b {
				k.partial = nil
				k.queue = append(k.queue, Key{Type: KeyEscape})
			}
			if len(k.queue) > 0 {
				break
			}
			return Key{}, err
		}
	}

	key := k.queue[0]
	k.queue = k.queue[1:]
	return key, nil
}

func (k *KeyReader) moreInput() bool {
	return k.wait != nil && k.wait(escTimeout)
}

// decodeKeys decodes every complete key in b and returns the trailing bytes
// of an incomplete UTF-8 rune or escape sequence, if any.
func decodeKeys(b []byte) ([]Key, []byte) {
	var keys []Key
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == 0x1b:
			key, n, ok := decodeEscape(b[i:])
			if !ok {
				return keys, append([]byte(nil), b[i:]...)
			}
			keys = append(keys, key)
			i += n
			continue
		case c == '\r' || c == '\n':
			keys = append(keys, Key{Type: KeyEnter})
		case c == 0x03:
			keys = append(keys, Key{Type: KeyCtrlC})
		case c == '\t':
			keys = append(keys, Key{Type: KeyTab})
		case c == 0x0e:
			keys = append(keys, Key{Type: KeyCtrlN})
		case c == 0x10:
			keys = append(keys, Key{Type: KeyCtrlP})
		case c == 0x7f || c == 0x08:
			keys = append(keys, Key{Type: KeyBackspace})
		case c < 0x20:
			keys = append(keys, Key{Type: KeyUnknown})
		case c < utf8.RuneSelf:
			keys = append(keys, RuneKey(rune(c)))
		default:
			if !utf8.FullRune(b[i:]) {
				return keys, append([]byte(nil), b[i:]...)
			}
			r, size := utf8.DecodeRune(b[i:])
			if r == utf8.RuneError {
				keys = append(keys, Key{Type: KeyUnknown})
			} else {
				keys = append(keys, RuneKey(r))
			}
			i += size
			continue
		}
		i++
	}
	return keys, nil
}

// decodeEscape decodes a sequence starting with ESC and returns the key and
// the number of bytes consumed. ESC followed by anything other than a CSI/SS3
// introducer is the Escape key. ok is false when b ends before the sequence
// does, including a lone ESC.
func decodeEscape(b []byte) (key Key, n int, ok bool) {
	if len(b) < 2 {
		return Key{}, 0, false
	}
	if b[1] != '[' && b[1] != 'O' {
		return Key{Type: KeyEscape}, 1, true
	}

	// Parameter and intermediate bytes are 0x20-0x3F, the final byte 0x40-0x7E.
	j := 2
	for j < len(b) && b[j] >= 0x20 && b[j] <= 0x3f {
		j++
	}
	if j >= len(b) {
		if len(b) >= maxEscapeLen {
			return Key{Type: KeyUnknown}, len(b), true
		}
		return Key{}, 0, false
	}
	if b[j] < 0x40 || b[j] > 0x7e {
		return Key{Type: KeyUnknown}, j, true
	}

	params := string(b[2:j])
	switch b[j] {
	case 'A':
		return Key{Type: KeyUp}, j + 1, true
	case 'B':
		return Key{Type: KeyDown}, j + 1, true
	case 'C':
		return Key{Type: KeyRight}, j + 1, true
	case 'D':
		return Key{Type: KeyLeft}, j + 1, true
	case 'H':
		return Key{Type: KeyHome}, j + 1, true
	case 'F':
		return Key{Type: KeyEnd}, j + 1, true
	case 'Z':
		return Key{Type: KeyBackTab}, j + 1, true
	case '~':
		switch params {
		case "1", "7":
			return Key{Type: KeyHome}, j + 1, true
		case "4", "8":
			return Key{Type: KeyEnd}, j + 1, true
		}
	}
	return Key{Type: KeyUnknown}, j + 1, true
}
