package tui

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/lixenwraith/textmode/terminal"
)

// defaultButton is synthesised when an Alert is given no buttons
const defaultButton = "<O>K"

// AlertOpts configures an Alert
type AlertOpts struct {
	Title      string
	Buttons    []string // label markup; none means a single OK
	Default    int      // button focused when the alert opens
	Borderless bool
	Shadow     bool
}

// Alert is a centered message box with a row of buttons
type Alert struct {
	*View
	log hclog.Logger

	text    []string
	buttons []*Button
	cursor  int
	def     int
}

// NewAlert creates and registers an alert sized to msg and its buttons
func NewAlert(ctx *Context, msg string, colors *ColorSet, opts AlertOpts) (*Alert, error) {
	var lines []string
	for _, l := range strings.Split(msg, "\n") {
		if RuneLen(l) > ctx.width-8 && ctx.width > 8 {
			lines = append(lines, WrapText(l, ctx.width-8)...)
		} else {
			lines = append(lines, l)
		}
	}

	w := 0
	for _, l := range lines {
		w = max(w, RuneLen(l))
	}
	w += 2
	if len(opts.Buttons) > 0 {
		bw := 0
		for _, b := range opts.Buttons {
			bw += ButtonWidth(b) + 2
		}
		w = max(w, bw+2)
	}

	h := len(lines) + 5
	if !opts.Borderless {
		w += 2
		h += 2
	} else if opts.Title != "" {
		h++
	}

	frame := Rect{X: ctx.CenterX(w, 0), Y: ctx.CenterY(h, 0), W: w, H: h}
	v, err := newView(ctx, frame, colors, ViewOpts{
		Title:      opts.Title,
		Borderless: opts.Borderless,
		Shadow:     opts.Shadow,
	})
	if err != nil {
		return nil, err
	}

	a := &Alert{
		View: v,
		log:  ctx.log.Named("alert"),
		text: lines,
	}

	// Button bar row
	y := v.bounds.H - 2
	if y <= 0 {
		return nil, fmt.Errorf("tui: alert button row %d: %w", y, ErrLayout)
	}

	if len(opts.Buttons) == 0 {
		x := ctx.CenterX(ButtonWidth(defaultButton), v.bounds.W)
		a.buttons = []*Button{NewButton(v, x, y, v.colors, defaultButton)}
	} else {
		total := 0
		for _, b := range opts.Buttons {
			total += ButtonWidth(b)
		}

		// Gaps are fractional, positions truncate
		spacing := float64(v.bounds.W-total) / float64(len(opts.Buttons)+1)
		if spacing < 1 {
			spacing = 1
		}
		x := spacing
		for _, b := range opts.Buttons {
			a.buttons = append(a.buttons, NewButton(v, int(x), y, v.colors, b))
			x += spacing + float64(ButtonWidth(b))
		}
	}

	if opts.Default < 0 || opts.Default >= len(a.buttons) {
		return nil, fmt.Errorf("tui: default %d of %d buttons: %w", opts.Default, len(a.buttons), ErrDefaultButton)
	}
	a.cursor, a.def = opts.Default, opts.Default

	ctx.Register(a)
	return a, nil
}

// Buttons returns the alert buttons left to right
func (a *Alert) Buttons() []*Button {
	return a.buttons
}

// Lines returns the message lines after wrapping
func (a *Alert) Lines() []string {
	return a.text
}

// Cursor returns the focused button index
func (a *Alert) Cursor() int {
	return a.cursor
}

// Selection returns the label text of the focused button
func (a *Alert) Selection() string {
	return a.buttons[a.cursor].label.Text
}

func (a *Alert) Draw() {
	a.View.Draw()
	for i, l := range a.text {
		a.WriteLine((a.bounds.W-RuneLen(l))/2, 1+i, l, terminal.Style{})
	}
	for _, b := range a.buttons {
		b.Draw()
	}
}

func (a *Alert) focusButton(i int) {
	if i == a.cursor {
		return
	}
	a.buttons[a.cursor].LoseFocus()
	a.cursor = i
	a.buttons[a.cursor].GainFocus()
}

// MoveLeft focuses the previous button, wrapping around
func (a *Alert) MoveLeft() {
	n := len(a.buttons)
	if n <= 1 {
		return
	}
	a.focusButton((a.cursor - 1 + n) % n)
}

// MoveRight focuses the next button, wrapping around
func (a *Alert) MoveRight() {
	n := len(a.buttons)
	if n <= 1 {
		return
	}
	a.focusButton((a.cursor + 1) % n)
}

// Push pushes the focused button
func (a *Alert) Push() {
	a.buttons[a.cursor].Push()
}

// PushHotkey focuses and pushes the button whose hotkey matches ev
func (a *Alert) PushHotkey(ev terminal.Event) bool {
	for i, b := range a.buttons {
		if b.Hotkey().Matches(ev) {
			a.focusButton(i)
			a.Push()
			return true
		}
	}
	return false
}

// Run shows the alert with the default button focused and returns the
// pushed button index, or ReturnToPrevious on Escape
func (a *Alert) Run() Result {
	if !a.Visible() {
		a.Show()
	}
	for i, b := range a.buttons {
		if b.focus && i != a.def {
			b.LoseFocus()
		}
	}
	a.cursor = a.def
	if !a.buttons[a.cursor].focus {
		a.buttons[a.cursor].GainFocus()
	}

	for {
		ev := a.ctx.ReadKey()
		switch {
		case ev.Key == terminal.KeyEscape || ev.Key == terminal.KeyClosed:
			a.Close()
			return Transfer(ReturnToPrevious)
		case ev.Key == terminal.KeyLeft || ev.Key == terminal.KeyBacktab:
			a.MoveLeft()
		case ev.Key == terminal.KeyRight || ev.Key == terminal.KeyTab:
			a.MoveRight()
		case ev.Key == terminal.KeyEnter || ev.IsRune(' '):
			a.Push()
			return a.finish()
		case a.PushHotkey(ev):
			return a.finish()
		default:
			if res, ok := a.ctx.Hotkey(ev); ok {
				a.Close()
				return res
			}
		}
	}
}

func (a *Alert) finish() Result {
	a.Close()
	a.log.Debug("choice", "button", a.cursor, "label", a.Selection())
	return Choice(a.cursor)
}
