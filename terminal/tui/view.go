package tui

import (
	"fmt"

	"github.com/lixenwraith/textmode/terminal"
)

// ViewOpts configures the chrome of a View
type ViewOpts struct {
	Title      string
	Borderless bool
	Shadow     bool
}

// View is a rectangular window with optional border, title and status bar.
// It owns its Surface; the Stack references it only through its Handle.
type View struct {
	ctx     *Context
	handle  Handle
	frame   Rect // screen-absolute
	bounds  Rect // content area, relative to frame
	colors  *ColorSet
	surface *Surface

	title     string
	hasTitle  bool
	border    bool
	shadow    bool
	focus     bool
	status    string
	hasStatus bool

	cursorFn func()
}

// NewView creates and registers a plain View
func NewView(ctx *Context, frame Rect, colors *ColorSet, opts ViewOpts) (*View, error) {
	v, err := newView(ctx, frame, colors, opts)
	if err != nil {
		return nil, err
	}
	ctx.Register(v)
	return v, nil
}

// newView builds an unregistered View; the caller registers the outer panel
func newView(ctx *Context, frame Rect, colors *ColorSet, opts ViewOpts) (*View, error) {
	if !frame.Valid() {
		return nil, fmt.Errorf("tui: frame %v: %w", frame, ErrLayout)
	}
	if colors == nil {
		colors = DefaultColors
	}
	v := &View{
		ctx:      ctx,
		handle:   NoHandle,
		frame:    frame,
		colors:   colors,
		surface:  NewSurface(frame.W, frame.H),
		title:    opts.Title,
		hasTitle: opts.Title != "",
		border:   !opts.Borderless,
		shadow:   opts.Shadow,
	}
	if v.border {
		v.bounds = Rect{X: 1, Y: 1, W: frame.W - 2, H: frame.H - 2}
	} else {
		v.bounds = Rect{W: frame.W, H: frame.H}
		if v.hasTitle {
			v.bounds.Y++
			v.bounds.H--
		}
	}
	if !v.bounds.Valid() {
		return nil, fmt.Errorf("tui: frame %v leaves bounds %v: %w", frame, v.bounds, ErrLayout)
	}
	v.surface.Fill(colors.Text())
	return v, nil
}

// shrink takes rows off the bottom of the content area
func (v *View) shrink(rows int) error {
	v.bounds.H -= rows
	if !v.bounds.Valid() {
		return fmt.Errorf("tui: frame %v leaves bounds %v: %w", v.frame, v.bounds, ErrLayout)
	}
	return nil
}

func (v *View) Base() *View {
	return v
}

func (v *View) Handle() Handle {
	return v.handle
}

func (v *View) Context() *Context {
	return v.ctx
}

func (v *View) Frame() Rect {
	return v.frame
}

func (v *View) Bounds() Rect {
	return v.bounds
}

func (v *View) Colors() *ColorSet {
	return v.colors
}

func (v *View) Surface() *Surface {
	return v.surface
}

func (v *View) HasFocus() bool {
	return v.focus
}

func (v *View) HasBorder() bool {
	return v.border
}

func (v *View) Title() string {
	return v.title
}

// SetTitle changes the title text; it takes effect on the next Draw
func (v *View) SetTitle(title string) {
	v.title = title
}

// StatusText returns the current status message
func (v *View) StatusText() string {
	return v.status
}

// Show attaches the view in front of the stack
func (v *View) Show() {
	v.ctx.stack.Attach(v.handle)
}

// Hide detaches the view; it keeps its state and can be shown again
func (v *View) Hide() {
	v.ctx.stack.Hide(v.handle)
}

// Close is Hide; views are never destroyed
func (v *View) Close() {
	v.Hide()
}

// Front raises the view and gives it focus
func (v *View) Front() {
	v.ctx.stack.Raise(v.handle)
}

// Back lowers the view and hands focus to the new front
func (v *View) Back() {
	v.ctx.stack.Lower(v.handle)
}

// Visible reports whether the view is attached to the stack
func (v *View) Visible() bool {
	return v.ctx.stack.Attached(v.handle)
}

// Redraw repaints the full panel this view belongs to
func (v *View) Redraw() {
	if p, ok := v.ctx.stack.Resolve(v.handle); ok {
		p.Draw()
		return
	}
	v.Draw()
}

// Pause shows the current screen for the feedback duration
func (v *View) Pause() {
	v.ctx.Pause()
}

// SetCursorRenderer installs the hook run on focus changes
func (v *View) SetCursorRenderer(fn func()) {
	v.cursorFn = fn
}

func (v *View) DrawCursor() {
	if v.cursorFn != nil {
		v.cursorFn()
	}
}

func (v *View) GainFocus() {
	v.focus = true
	v.DrawCursor()
}

func (v *View) LoseFocus() {
	v.focus = false
	v.DrawCursor()
}

// Draw clears the surface and paints border, title and status bar
func (v *View) Draw() {
	v.surface.Fill(v.colors.Text())
	if v.border {
		v.surface.Box(v.colors.Style(RoleBorder))
	}
	v.drawTitle()
	v.drawStatusbar()
}

func (v *View) drawTitle() {
	if !v.hasTitle {
		return
	}
	style := v.colors.Style(RoleTitle)
	if !v.border {
		v.surface.HLine(0, 0, v.frame.W, ' ', style)
	}

	s := " " + v.title + " "
	if RuneLen(s) > v.frame.W-4 {
		s = " " + SliceRunes(v.title, 0, max(0, v.frame.W-7)) + "... "
	}
	v.putChrome((v.frame.W-RuneLen(s))/2, 0, s, style)
}

func (v *View) drawStatusbar() {
	if !v.hasStatus {
		return
	}

	// Erase the previous message
	row := v.frame.H - 1
	if v.border {
		v.surface.HLine(1, row, v.bounds.W, terminal.RuneHLine, v.colors.Style(RoleBorder))
	} else {
		v.surface.HLine(0, row, v.bounds.W, ' ', v.colors.Style(RoleStatus))
	}

	s := " " + v.status + " "
	v.putChrome(v.frame.W-RuneLen(s)-2, row, s, v.colors.Style(RoleStatus))
}

// putChrome writes s on the title or status row, clipped so a border keeps its corners
func (v *View) putChrome(x, y int, s string, style terminal.Style) {
	lo, hi := 0, v.frame.W
	if v.border {
		lo, hi = 1, v.frame.W-1
	}
	x = max(x, lo)
	v.surface.Text(x, y, SliceRunes(s, 0, hi-x), style)
}

// Status sets the status bar message, redrawing only when it changes
func (v *View) Status(msg string) {
	if v.hasStatus && v.status == msg {
		return
	}
	v.status = msg
	v.hasStatus = true
	v.drawStatusbar()
}

// clipContent trims text at content-relative x,y to the content width.
// It returns the surface column and the visible runes, or false when nothing shows.
func (v *View) clipContent(x, y int, s string) (int, []rune, bool) {
	if y < 0 || y >= v.bounds.H {
		return 0, nil, false
	}
	runes := []rune(s)
	if x < 0 {
		if -x >= len(runes) {
			return 0, nil, false
		}
		runes = runes[-x:]
		x = 0
	}
	if x >= v.bounds.W {
		return 0, nil, false
	}
	if x+len(runes) > v.bounds.W {
		runes = runes[:v.bounds.W-x]
	}
	return x, runes, true
}

// WriteAt prints s at content-relative x,y, leaving the rest of the row untouched.
// A zero style means the text color.
func (v *View) WriteAt(x, y int, s string, style terminal.Style) {
	if style.IsZero() {
		style = v.colors.Text()
	}
	x, runes, ok := v.clipContent(x, y, s)
	if !ok {
		return
	}
	for i, r := range runes {
		v.surface.Put(v.bounds.X+x+i, v.bounds.Y+y, r, style)
	}
}

// WriteLine prints s at content-relative x,y and pads the row with spaces up to the content width
func (v *View) WriteLine(x, y int, s string, style terminal.Style) {
	if style.IsZero() {
		style = v.colors.Text()
	}
	if x < 0 {
		if n := RuneLen(s); -x < n {
			s = SliceRunes(s, -x, n)
		} else {
			s = ""
		}
		x = 0
	}
	if y < 0 || y >= v.bounds.H || x >= v.bounds.W {
		return
	}
	v.WriteAt(x, y, PadRight(s, v.bounds.W-x), style)
}

// HLine draws a content-relative horizontal rule clipped to the content width
func (v *View) HLine(x, y, n int, r rune, style terminal.Style) {
	x, y, n, ok := Rect{W: v.bounds.W, H: v.bounds.H}.ClipHLine(x, y, n)
	if !ok {
		return
	}
	v.surface.HLine(v.bounds.X+x, v.bounds.Y+y, n, r, style)
}

// Run waits for Escape, then hands control to the menu bar.
// Other keys go to the global hotkey hook.
func (v *View) Run() Result {
	for {
		ev := v.ctx.ReadKey()
		switch ev.Key {
		case terminal.KeyClosed:
			return Transfer(ReturnToPrevious)
		case terminal.KeyEscape:
			v.LoseFocus()
			return Transfer(GotoMenuBar)
		}
		if res, ok := v.ctx.Hotkey(ev); ok {
			return res
		}
	}
}
