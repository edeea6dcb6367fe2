package tui

import (
	"strings"
	"testing"

	"github.com/lixenwraith/textmode/terminal"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in     string
		text   string
		hotkey string
		pos    int
		shown  string
	}{
		{"<A>dd", "Add", "A", 0, "A"},
		{"E<x>it", "Exit", "X", 1, "x"},
		{"<Ctrl-Q>uit", "Ctrl-Quit", "Ctrl-Q", 0, "Ctrl-Q"},
		{"<=>", "=", "=", 0, "="},
		{"Save <A>s", "Save As", "A", 5, "A"},
		{"Plain", "Plain", "", -1, ""},
		{"a<b", "a<b", "", -1, ""},
		{"<ab>", "<ab>", "", -1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l := ParseLabel(tt.in)
			if l.Text != tt.text {
				t.Errorf("Expected text %q, got %q", tt.text, l.Text)
			}
			if l.Hotkey.String() != tt.hotkey {
				t.Errorf("Expected hotkey %q, got %q", tt.hotkey, l.Hotkey.String())
			}
			if l.Pos != tt.pos {
				t.Errorf("Expected pos %d, got %d", tt.pos, l.Pos)
			}
			if l.HotkeyText() != tt.shown {
				t.Errorf("Expected shown hotkey %q, got %q", tt.shown, l.HotkeyText())
			}
			if l.Separator {
				t.Error("Expected no separator")
			}
		})
	}
}

func TestParseSeparator(t *testing.T) {
	l := ParseLabel(Separator)
	if !l.Separator || !l.Hotkey.IsZero() || l.Pos != -1 {
		t.Errorf("Unexpected separator label %+v", l)
	}
	if ParseLabel("---").Separator {
		t.Error("Expected only -- to be a separator")
	}
}

func TestLabelRoundTrip(t *testing.T) {
	for _, s := range []string{"<A>dd", "<R>emove", "Sa<v>e", "<Ctrl-X> cut", "<=>", "Open <F>ile"} {
		l := ParseLabel(s)
		stripped := strings.NewReplacer("<", "", ">", "").Replace(s)
		if l.Text != stripped {
			t.Errorf("%q: expected %q, got %q", s, stripped, l.Text)
		}
		if LabelWidth(s) != len(s)-2 {
			t.Errorf("%q: expected width %d, got %d", s, len(s)-2, LabelWidth(s))
		}
		if RuneLen(l.Text) != LabelWidth(s) {
			t.Errorf("%q: text length %d differs from width %d", s, RuneLen(l.Text), LabelWidth(s))
		}
	}
	if LabelWidth("Plain") != 5 {
		t.Errorf("Expected width 5, got %d", LabelWidth("Plain"))
	}
}

func TestButtonWidth(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"<O>K", 8},
		{"<C>ancel", 10},
		{"Yes", 9},
		{"Four", 8},
	}
	for _, tt := range tests {
		if got := ButtonWidth(tt.label); got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.label, tt.want, got)
		}
	}
}

func TestHotkeyMatches(t *testing.T) {
	a := NewHotkey('a')
	q := NewCtrlHotkey('q')

	tests := []struct {
		name string
		hk   Hotkey
		ev   terminal.Event
		want bool
	}{
		{"lower", a, terminal.RuneEvent('a'), true},
		{"upper", a, terminal.RuneEvent('A'), true},
		{"other", a, terminal.RuneEvent('b'), false},
		{"ctrl on plain", a, terminal.KeyEvent(terminal.KeyCtrlA), false},
		{"ctrl", q, terminal.KeyEvent(terminal.KeyCtrlQ), true},
		{"plain on ctrl", q, terminal.RuneEvent('q'), false},
		{"zero", Hotkey{}, terminal.RuneEvent(0), false},
	}
	for _, tt := range tests {
		if got := tt.hk.Matches(tt.ev); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
