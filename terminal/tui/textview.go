package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/lixenwraith/textmode/terminal"
)

const (
	hscrollStep = 4
	hscrollMax  = 500
)

// TextViewOpts configures a TextView
type TextViewOpts struct {
	ViewOpts
	Text    []string
	TabSize int // 0 uses the context tab size
}

// TextView is a read-only scrollable text window with a cursor line
// and a proportional scrollbar on its right border.
type TextView struct {
	*View
	log hclog.Logger

	text    []string
	tabSize int
	top     int // first visible line
	cursor  int // row within the viewport
	xoffset int

	thumbY int // thumb center, content-relative
	thumbH int
}

// NewTextView creates and registers a TextView
func NewTextView(ctx *Context, frame Rect, colors *ColorSet, opts TextViewOpts) (*TextView, error) {
	v, err := newView(ctx, frame, colors, opts.ViewOpts)
	if err != nil {
		return nil, err
	}
	if !v.border {
		// Bottom row is the status bar
		if err := v.shrink(1); err != nil {
			return nil, err
		}
	}

	t := &TextView{
		View:    v,
		log:     ctx.log.Named("textview"),
		tabSize: opts.TabSize,
	}
	if t.tabSize <= 0 {
		t.tabSize = ctx.tabSize
	}
	v.SetCursorRenderer(t.drawCursor)
	ctx.Register(t)
	t.setLines(opts.Text)
	return t, nil
}

// Load replaces the text with the lines of the file at path.
// On failure the current content is kept.
func (t *TextView) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrContentUnavailable, path, err)
	}

	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r\n\v\f")
	}

	if t.hasTitle {
		t.title = filepath.Base(path)
	}
	t.setLines(lines)
	t.log.Debug("load", "path", path, "lines", len(lines))
	t.Draw()
	return nil
}

// SetText replaces the text with lines and redraws
func (t *TextView) SetText(lines []string) {
	t.setLines(slices.Clone(lines))
	t.Draw()
}

func (t *TextView) setLines(lines []string) {
	t.text = lines
	t.top, t.cursor, t.xoffset = 0, 0, 0
	t.thumbH, t.thumbY = 0, 0

	h, n := t.bounds.H, len(t.text)
	if t.border && n > 0 {
		t.thumbH = min(max(int(float64(h)*float64(h)/float64(n)+0.5), 1), h)
		t.thumbY = t.thumbCenter()
	}
}

// Lines returns the loaded text
func (t *TextView) Lines() []string {
	return t.text
}

// Top returns the index of the first visible line
func (t *TextView) Top() int {
	return t.top
}

// Cursor returns the cursor row within the viewport
func (t *TextView) Cursor() int {
	return t.cursor
}

// XOffset returns the horizontal scroll in columns
func (t *TextView) XOffset() int {
	return t.xoffset
}

// Thumb returns the scrollbar thumb center and height
func (t *TextView) Thumb() (int, int) {
	return t.thumbY, t.thumbH
}

// Selection returns the line under the cursor
func (t *TextView) Selection() string {
	if i := t.top + t.cursor; i < len(t.text) {
		return t.text[i]
	}
	return ""
}

func (t *TextView) Draw() {
	t.View.Draw()
	t.drawText()
	t.drawScrollbar()
}

func (t *TextView) drawText() {
	for y := 0; y < t.bounds.H; y++ {
		if y == t.cursor {
			t.drawCursor()
		} else {
			t.printLine(y, terminal.Style{})
		}
	}
}

func (t *TextView) drawCursor() {
	if t.focus {
		t.printLine(t.cursor, t.colors.Style(RoleCursor))
	} else {
		t.printLine(t.cursor, terminal.Style{})
	}
	t.Status(fmt.Sprintf("%d,%d", t.top+t.cursor+1, t.xoffset+1))
}

// printLine renders viewport row y with tabs expanded and the horizontal offset applied
func (t *TextView) printLine(y int, style terminal.Style) {
	var line string
	if i := t.top + y; i < len(t.text) {
		line = ExpandTabs(t.text[i], t.tabSize)
		line = SliceRunes(line, t.xoffset, RuneLen(line))
	}
	t.WriteLine(0, y, line, style)
}

// lastRow is the lowest viewport row holding a line at the current top
func (t *TextView) lastRow() int {
	return max(min(t.bounds.H-1, len(t.text)-1-t.top), 0)
}

func (t *TextView) maxTop() int {
	return max(len(t.text)-t.bounds.H, 0)
}

// moveCursor repaints only the old and new cursor rows
func (t *TextView) moveCursor(row int) {
	if row == t.cursor {
		return
	}
	t.printLine(t.cursor, terminal.Style{})
	t.cursor = row
	t.drawCursor()
}

func (t *TextView) MoveUp() {
	if t.cursor > 0 {
		t.moveCursor(t.cursor - 1)
	} else {
		t.ScrollUp()
	}
	t.updateScrollbar()
}

func (t *TextView) MoveDown() {
	if len(t.text) == 0 || t.top+t.cursor >= len(t.text)-1 {
		return
	}
	if t.cursor < t.bounds.H-1 {
		t.moveCursor(t.cursor + 1)
	} else {
		t.ScrollDown()
	}
	t.updateScrollbar()
}

func (t *TextView) MoveLeft() {
	if t.xoffset > 0 {
		t.xoffset = max(t.xoffset-hscrollStep, 0)
		t.drawText()
	}
}

func (t *TextView) MoveRight() {
	if t.xoffset < hscrollMax {
		t.xoffset = min(t.xoffset+hscrollStep, hscrollMax)
		t.drawText()
	}
}

// ScrollUp moves the viewport one line up, keeping the cursor row
func (t *TextView) ScrollUp() {
	if t.top > 0 {
		t.top--
		t.drawText()
	}
}

// ScrollDown moves the viewport one line down, keeping the cursor row
func (t *TextView) ScrollDown() {
	if top := min(t.top+1, t.maxTop()); top != t.top {
		t.top = top
		t.drawText()
	}
}

// jump applies a new top and cursor, redrawing the text only when top changed or redraw is set
func (t *TextView) jump(top, cursor int, redraw bool) {
	if redraw || top != t.top {
		t.top = top
		t.cursor = cursor
		t.drawText()
	} else {
		t.moveCursor(cursor)
	}
	t.updateScrollbar()
}

// PageUp moves one page up; with the cursor on the bottom row it jumps to the top row
func (t *TextView) PageUp() {
	h := t.bounds.H
	top, cursor := t.top, t.cursor
	if cursor == h-1 {
		cursor = 0
	} else {
		top -= h - 1
		if top < 0 {
			top = 0
			cursor = 0
		}
	}
	t.jump(top, cursor, false)
}

// PageDown moves one page down; with the cursor on the top row it jumps to the bottom row
func (t *TextView) PageDown() {
	h, n := t.bounds.H, len(t.text)
	top, cursor := t.top, t.cursor
	if cursor == 0 {
		cursor = t.lastRow()
	} else {
		top += h - 1
		if top > n-h {
			top = t.maxTop()
			cursor = max(min(h-1, n-1), 0)
		}
	}
	t.jump(top, cursor, false)
}

// GotoTop shows the start of the document
func (t *TextView) GotoTop() {
	scrolled := t.xoffset != 0
	t.xoffset = 0
	t.jump(0, 0, scrolled)
}

// GotoBottom shows the end of the document
func (t *TextView) GotoBottom() {
	top := t.maxTop()
	cursor := max(min(t.bounds.H-1, len(t.text)-1), 0)
	scrolled := t.xoffset != 0
	t.xoffset = 0
	t.jump(top, cursor, scrolled)
}

func (t *TextView) thumbCenter() int {
	n := len(t.text)
	if n == 0 {
		return 0
	}
	return int(float64(t.top+t.cursor)*float64(t.bounds.H)/float64(n) + 0.5)
}

// thumbTop returns the first content row of the thumb centered on y
func (t *TextView) thumbTop(y int) int {
	top := y - t.thumbH/2
	return max(min(top, t.bounds.H-t.thumbH), 0)
}

func (t *TextView) updateScrollbar() {
	if !t.border || t.thumbH <= 0 || len(t.text) == 0 {
		return
	}
	if y := t.thumbCenter(); y != t.thumbY {
		t.clearScrollbar()
		t.thumbY = y
		t.drawScrollbar()
	}
}

func (t *TextView) clearScrollbar() {
	if !t.border || t.thumbH <= 0 {
		return
	}
	t.surface.VLine(t.frame.W-1, t.bounds.Y+t.thumbTop(t.thumbY), t.thumbH,
		terminal.RuneVLine, t.colors.Style(RoleBorder))
}

func (t *TextView) drawScrollbar() {
	if !t.border || t.thumbH <= 0 {
		return
	}
	t.surface.VLine(t.frame.W-1, t.bounds.Y+t.thumbTop(t.thumbY), t.thumbH,
		terminal.RuneBlock, t.colors.Style(RoleStatus))
}

// Run drives navigation until Escape, which hands control to the menu bar
func (t *TextView) Run() Result {
	for {
		ev := t.ctx.ReadKey()
		switch ev.Key {
		case terminal.KeyClosed:
			return Transfer(ReturnToPrevious)
		case terminal.KeyEscape:
			t.LoseFocus()
			return Transfer(GotoMenuBar)
		case terminal.KeyUp:
			t.MoveUp()
		case terminal.KeyDown:
			t.MoveDown()
		case terminal.KeyLeft:
			t.MoveLeft()
		case terminal.KeyRight:
			t.MoveRight()
		case terminal.KeyPageUp:
			t.PageUp()
		case terminal.KeyPageDown:
			t.PageDown()
		case terminal.KeyHome:
			t.GotoTop()
		case terminal.KeyEnd:
			t.GotoBottom()
		default:
			if res, ok := t.ctx.Hotkey(ev); ok {
				return res
			}
		}
	}
}
