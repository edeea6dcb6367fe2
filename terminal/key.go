package terminal

import "fmt"

// Key represents a decoded input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Ctrl+letter, contiguous so KeyCtrlA+n is Ctrl of letter n
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Anything the backend produced that has no mapping above; see Event.Raw
	KeyUnknown

	// The backend has shut down; no further keys will arrive
	KeyClosed
)

// Event is one key press
type Event struct {
	Key  Key
	Rune rune   // Valid when Key == KeyRune
	Raw  string // Backend description when Key == KeyUnknown
}

// RuneEvent builds a printable key event
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// KeyEvent builds a non-printable key event
func KeyEvent(k Key) Event {
	return Event{Key: k}
}

// CtrlKey returns the Ctrl key for an ASCII letter, either case
func CtrlKey(letter rune) (Key, bool) {
	switch {
	case letter >= 'a' && letter <= 'z':
		return KeyCtrlA + Key(letter-'a'), true
	case letter >= 'A' && letter <= 'Z':
		return KeyCtrlA + Key(letter-'A'), true
	}
	return KeyNone, false
}

// IsCtrl reports whether the key is a Ctrl+letter chord
func (k Key) IsCtrl() bool {
	return k >= KeyCtrlA && k <= KeyCtrlZ
}

// CtrlLetter returns the upper-case letter of a Ctrl chord, or 0
func (k Key) CtrlLetter() rune {
	if !k.IsCtrl() {
		return 0
	}
	return 'A' + rune(k-KeyCtrlA)
}

// IsRune reports whether the event is the printable character r
func (e Event) IsRune(r rune) bool {
	return e.Key == KeyRune && e.Rune == r
}

// String returns the display token of the event: the character for
// printable keys, "Ctrl-X" for chords, and upper-case names otherwise
func (e Event) String() string {
	switch {
	case e.Key == KeyRune:
		return string(e.Rune)
	case e.Key.IsCtrl():
		return fmt.Sprintf("Ctrl-%c", e.Key.CtrlLetter())
	case e.Key == KeyUnknown:
		return e.Raw
	}
	if tok, ok := keyToToken[e.Key]; ok {
		return tok
	}
	return ""
}

// keyToToken holds the display tokens of named keys
var keyToToken = map[Key]string{
	KeyEscape:    "ESC",
	KeyEnter:     "RETURN",
	KeyTab:       "TAB",
	KeyBacktab:   "BTAB",
	KeyBackspace: "BS",
	KeyDelete:    "DEL",
	KeyUp:        "UP",
	KeyDown:      "DOWN",
	KeyLeft:      "LEFT",
	KeyRight:     "RIGHT",
	KeyHome:      "HOME",
	KeyEnd:       "END",
	KeyPageUp:    "PAGEUP",
	KeyPageDown:  "PAGEDOWN",
	KeyClosed:    "CLOSED",
}
