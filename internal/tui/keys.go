package tui

import (
	"unicode/utf8"

	"github.com/robotomize/dhconv"
)

// Special is a non printable key
type Special int

const (
	KeyRune Special = iota
	KeyTab
	KeyEnter
	KeyBackspace
	KeyEsc
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyCtrlC
)

const (
	esc       = 0x1b
	ctrlC     = 0x03
	tab       = 0x09
	lf        = 0x0a
	cr        = 0x0d
	backspace = 0x08
	del       = 0x7f
)

var arrows = map[byte]Special{'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft}

// Event is one decoded key press. Key is set for KeyRune
type Event struct {
	Special Special
	Key     dhconv.Key
}

// DecodeKeys splits raw terminal input into key events.
// ESC followed by a printable rune in the same read is Alt+rune, a lone ESC is KeyEsc
func DecodeKeys(b []byte) []Event {
	var events []Event

	for len(b) > 0 {
		c := b[0]
		switch {
		case c == esc:
			if len(b) >= 3 && (b[1] == '[' || b[1] == 'O') {
				if special, ok := arrows[b[2]]; ok {
					events = append(events, Event{Special: special})
					b = b[3:]
					continue
				}
			}

			if len(b) >= 2 && b[1] >= 0x20 && b[1] != del {
				r, size := utf8.DecodeRune(b[1:])
				events = append(events, Event{Key: dhconv.Key{Rune: r, Alt: true}})
				b = b[1+size:]
				continue
			}

			events = append(events, Event{Special: KeyEsc})
			b = b[1:]
		case c == ctrlC:
			events = append(events, Event{Special: KeyCtrlC})
			b = b[1:]
		case c == tab:
			events = append(events, Event{Special: KeyTab})
			b = b[1:]
		case c == cr || c == lf:
			events = append(events, Event{Special: KeyEnter})
			b = b[1:]
		case c == backspace || c == del:
			events = append(events, Event{Special: KeyBackspace})
			b = b[1:]
		case c < 0x20:
			// Ctrl+letter arrives as 1..26
			events = append(events, Event{Key: dhconv.Key{Rune: rune('a' + c - 1), Ctrl: true}})
			b = b[1:]
		default:
			r, size := utf8.DecodeRune(b)
			events = append(events, Event{Key: dhconv.Key{Rune: r}})
			b = b[size:]
		}
	}

	return events
}
