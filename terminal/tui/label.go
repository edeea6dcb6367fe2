package tui

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lixenwraith/textmode/terminal"
)

// Separator is the label text of a menu separator
const Separator = "--"

var hotkeyPattern = regexp.MustCompile(`^.*(<((?:Ctrl-)?[!-~])>).*$`)

// Hotkey is a single character or a Ctrl+character chord
type Hotkey struct {
	r    rune
	ctrl bool
}

// NewHotkey returns a single-character hotkey, stored upper-case
func NewHotkey(r rune) Hotkey {
	return Hotkey{r: unicode.ToUpper(r)}
}

// NewCtrlHotkey returns a Ctrl chord hotkey
func NewCtrlHotkey(r rune) Hotkey {
	return Hotkey{r: unicode.ToUpper(r), ctrl: true}
}

// IsZero reports whether no hotkey is set
func (h Hotkey) IsZero() bool {
	return h.r == 0
}

// Ctrl reports whether the hotkey is a Ctrl chord
func (h Hotkey) Ctrl() bool {
	return h.ctrl
}

// Rune returns the upper-cased hotkey character
func (h Hotkey) Rune() rune {
	return h.r
}

func (h Hotkey) String() string {
	switch {
	case h.IsZero():
		return ""
	case h.ctrl:
		return "Ctrl-" + string(h.r)
	}
	return string(h.r)
}

// Matches reports whether ev triggers the hotkey; single characters match case-insensitively
func (h Hotkey) Matches(ev terminal.Event) bool {
	if h.IsZero() {
		return false
	}
	if h.ctrl {
		return ev.Key.IsCtrl() && ev.Key.CtrlLetter() == h.r
	}
	return ev.Key == terminal.KeyRune && unicode.ToUpper(ev.Rune) == h.r
}

// Label is a parsed label: display text plus an optional hotkey.
// Pos is the rune column of the hotkey within Text, or -1.
type Label struct {
	Text      string
	Hotkey    Hotkey
	Pos       int
	Separator bool
}

// ParseLabel parses "<X>" or "<Ctrl-X>" hotkey markup.
// The markers are stripped from Text only when a hotkey is present.
func ParseLabel(s string) Label {
	if s == Separator {
		return Label{Text: s, Pos: -1, Separator: true}
	}

	m := hotkeyPattern.FindStringSubmatchIndex(s)
	if m == nil {
		return Label{Text: s, Pos: -1}
	}

	key := s[m[4]:m[5]]
	var hk Hotkey
	if strings.HasPrefix(key, "Ctrl-") {
		hk = NewCtrlHotkey(rune(key[len("Ctrl-")]))
	} else {
		hk = NewHotkey(rune(key[0]))
	}

	// Column of the marker once every preceding '<' and '>' is removed
	prefix := s[:m[2]]
	pos := RuneLen(prefix) - strings.Count(prefix, "<") - strings.Count(prefix, ">")

	text := strings.NewReplacer("<", "", ">", "").Replace(s)
	return Label{Text: text, Hotkey: hk, Pos: pos}
}

// HotkeyText returns the display characters of the hotkey inside Text
func (l Label) HotkeyText() string {
	if l.Pos < 0 {
		return ""
	}
	return SliceRunes(l.Text, l.Pos, RuneLen(l.Hotkey.String()))
}

// LabelWidth returns the visual width of a label string
func LabelWidth(s string) int {
	if hotkeyPattern.MatchString(s) {
		return RuneLen(s) - 2
	}
	return RuneLen(s)
}

// ButtonWidth returns the visual width of a button made from label s
func ButtonWidth(s string) int {
	w := LabelWidth(s)
	if w <= 3 {
		w += 2
	}
	return w + 4
}
