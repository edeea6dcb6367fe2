package tui

import "github.com/lixenwraith/textmode/terminal"

// Container is the parent a Widget draws through
type Container interface {
	WriteAt(x, y int, s string, style terminal.Style)
	Redraw()
	Pause()
	Context() *Context
}

// Widget is a focusable control inside a parent; it owns no surface
type Widget struct {
	parent Container
	x, y   int // relative to the parent content area
	colors *ColorSet
	focus  bool

	cursorFn func()
}

func newWidget(parent Container, x, y int, colors *ColorSet) Widget {
	return Widget{parent: parent, x: x, y: y, colors: colors}
}

// Position returns the widget origin within the parent content area
func (w *Widget) Position() (int, int) {
	return w.x, w.y
}

func (w *Widget) HasFocus() bool {
	return w.focus
}

func (w *Widget) GainFocus() {
	w.focus = true
	w.drawCursor()
}

func (w *Widget) LoseFocus() {
	w.focus = false
	w.drawCursor()
}

func (w *Widget) drawCursor() {
	if w.cursorFn != nil {
		w.cursorFn()
	}
}

// Button is a labeled push button with a hotkey
type Button struct {
	Widget
	label   Label
	pushing bool
}

// NewButton creates a button at x,y of parent from label markup
func NewButton(parent Container, x, y int, colors *ColorSet, label string) *Button {
	b := &Button{
		Widget: newWidget(parent, x, y, colors),
		label:  ParseLabel(label),
	}
	b.cursorFn = b.Draw
	return b
}

// Label returns the parsed label
func (b *Button) Label() Label {
	return b.label
}

// Hotkey returns the button hotkey, zero when it has none
func (b *Button) Hotkey() Hotkey {
	return b.label.Hotkey
}

// Draw renders the button; the button is its own cursor
func (b *Button) Draw() {
	add := 1
	text := " " + b.label.Text + " "
	if RuneLen(text) <= 5 {
		text = " " + text + " "
		add++
	}

	style, hotkey := b.colors.Style(RoleButton), b.colors.Style(RoleButtonHotkey)
	if b.focus {
		text = ">" + text + "<"
		style, hotkey = b.colors.Style(RoleActiveButton), b.colors.Style(RoleActiveButtonHotkey)
	} else {
		text = " " + text + " "
	}
	add++

	x := b.x
	if b.pushing {
		x++
	}
	b.parent.WriteAt(x, b.y, text, style)
	if b.label.Pos >= 0 {
		b.parent.WriteAt(x+b.label.Pos+add, b.y, b.label.HotkeyText(), hotkey)
	}
}

// Push animates the button: shifted right for one pause, then restored.
// The button must have focus.
func (b *Button) Push() {
	if !b.focus {
		panic("tui: push of unfocused button")
	}
	b.parent.Context().Click()

	b.pushing = true
	b.parent.Redraw()
	b.parent.Pause()

	b.pushing = false
	b.parent.Redraw()
	b.parent.Pause()
}
