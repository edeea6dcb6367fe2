package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Tcell adapts a tcell.Screen to Terminal
type Tcell struct {
	screen tcell.Screen
	once   sync.Once
}

// NewTcell opens the controlling terminal
func NewTcell() (*Tcell, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: open screen: %w", err)
	}
	return &Tcell{screen: s}, nil
}

// NewTcellScreen wraps an existing screen, typically a simulation screen
func NewTcellScreen(s tcell.Screen) *Tcell {
	return &Tcell{screen: s}
}

// Screen exposes the wrapped screen
func (t *Tcell) Screen() tcell.Screen {
	return t.screen
}

func (t *Tcell) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

func (t *Tcell) Fini() {
	t.once.Do(t.screen.Fini)
}

func (t *Tcell) Size() (int, int) {
	return t.screen.Size()
}

func (t *Tcell) SetCell(x, y int, c Cell) {
	w, h := t.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r := c.Rune
	if r == 0 {
		r = ' '
	}
	t.screen.SetContent(x, y, r, nil, tcellStyle(c.Style))
}

func (t *Tcell) Show() {
	t.screen.Show()
}

// PollEvent blocks for the next key; resize events resync the screen and are skipped.
// Once the screen is finalized it returns KeyClosed on every call.
func (t *Tcell) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if _, ok := ev.(*tcell.EventResize); ok {
			t.screen.Sync()
			continue
		}
		if e, ok := translateEvent(ev); ok {
			return e
		}
	}
}

// translateEvent maps a polled tcell event; false means skip it.
// tcell signals a finalized screen with a nil event.
func translateEvent(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case nil:
		return Event{Key: KeyClosed}, true
	case *tcell.EventKey:
		return translateKey(ev.Key(), ev.Rune(), ev.Modifiers()), true
	}
	return Event{}, false
}

// translateKey maps a tcell key triple into the closed Key set.
// Tab, Enter and Backspace alias Ctrl-I, Ctrl-M and Ctrl-H in tcell and are
// matched first so they keep their names.
func translateKey(k tcell.Key, r rune, mod tcell.ModMask) Event {
	switch {
	case k == tcell.KeyRune:
		if mod&tcell.ModCtrl != 0 {
			if ck, ok := CtrlKey(r); ok {
				return Event{Key: ck}
			}
		}
		return Event{Key: KeyRune, Rune: r}
	case k == tcell.KeyTab:
		if mod&tcell.ModShift != 0 {
			return Event{Key: KeyBacktab}
		}
		return Event{Key: KeyTab}
	case k == tcell.KeyEnter:
		return Event{Key: KeyEnter}
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return Event{Key: KeyBackspace}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return Event{Key: KeyCtrlA + Key(k-tcell.KeyCtrlA)}
	}
	if key, ok := tcellKeys[k]; ok {
		return Event{Key: key}
	}
	raw, ok := tcell.KeyNames[k]
	if !ok {
		raw = fmt.Sprintf("Key[%d]", k)
	}
	return Event{Key: KeyUnknown, Raw: raw}
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:  KeyEscape,
	tcell.KeyBacktab: KeyBacktab,
	tcell.KeyDelete:  KeyDelete,
	tcell.KeyUp:      KeyUp,
	tcell.KeyDown:    KeyDown,
	tcell.KeyLeft:    KeyLeft,
	tcell.KeyRight:   KeyRight,
	tcell.KeyHome:    KeyHome,
	tcell.KeyEnd:     KeyEnd,
	tcell.KeyPgUp:    KeyPageUp,
	tcell.KeyPgDn:    KeyPageDown,
}

func tcellColor(c Color) tcell.Color {
	if i := c.Index(); i >= 0 {
		return tcell.PaletteColor(i)
	}
	return tcell.ColorDefault
}

func tcellStyle(s Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(s.Fg)).
		Background(tcellColor(s.Bg)).
		Bold(s.Attr&AttrBold != 0).
		Dim(s.Attr&AttrDim != 0).
		Underline(s.Attr&AttrUnderline != 0).
		Reverse(s.Attr&AttrReverse != 0)
}
