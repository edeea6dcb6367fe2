package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/hashicorp/go-hclog"

	"github.com/lixenwraith/textmode/terminal"
)

// Hex dump row layout, in content columns
const (
	hexRowBytes  = 16
	hexBytesCol  = 10
	hexMiddleCol = 34 // gap between the two halves of a row
	hexASCIICol  = 60
)

// HexGrouping selects how the hex column groups bytes into words
type HexGrouping uint8

const (
	Group8 HexGrouping = iota + 1
	Group16
	Group16Swap
	Group32
	Group32Swap
)

func (g HexGrouping) String() string {
	switch g {
	case Group8:
		return "8-bit"
	case Group16:
		return "16-bit"
	case Group16Swap:
		return "16-bit swapped"
	case Group32:
		return "32-bit"
	case Group32Swap:
		return "32-bit swapped"
	}
	return fmt.Sprintf("grouping(%d)", uint8(g))
}

// wordSize returns the bytes per word
func (g HexGrouping) wordSize() int {
	switch g {
	case Group16, Group16Swap:
		return 2
	case Group32, Group32Swap:
		return 4
	}
	return 1
}

func (g HexGrouping) swapped() bool {
	return g == Group16Swap || g == Group32Swap
}

// HexViewOpts configures a HexView
type HexViewOpts struct {
	ViewOpts
	Data     []byte
	Grouping HexGrouping // 0 means Group8
	// Command handles a line entered at the ':' prompt; true ends Run with the result
	Command func(cmd string) (Result, bool)
}

type searchDir uint8

const (
	searchForward searchDir = iota
	searchBackward
)

// HexView is a hex dump window: an address column, the bytes in hex grouped
// into words and their printable characters. The cursor addresses one byte
// and shows in both columns.
type HexView struct {
	*View
	log hclog.Logger

	data    []byte
	mapped  mmap.MMap
	file    *os.File
	address int // offset of the first visible byte
	cx, cy  int // cursor byte within the row, and row
	group   HexGrouping

	selecting        bool
	selStart, selEnd int

	prompt  *Prompt
	dir     searchDir
	command func(string) (Result, bool)
}

// NewHexView creates and registers a HexView. Its search prompt takes the
// bottom row of the screen.
func NewHexView(ctx *Context, frame Rect, colors *ColorSet, opts HexViewOpts) (*HexView, error) {
	v, err := newView(ctx, frame, colors, opts.ViewOpts)
	if err != nil {
		return nil, err
	}
	if !v.border {
		if err := v.shrink(1); err != nil {
			return nil, err
		}
	}
	prompt, err := NewPrompt(ctx, Rect{Y: ctx.height - 1, W: ctx.width, H: 1}, v.colors, PromptOpts{})
	if err != nil {
		return nil, fmt.Errorf("hexview prompt: %w", err)
	}

	h := &HexView{
		View:    v,
		log:     ctx.log.Named("hexview"),
		data:    opts.Data,
		group:   opts.Grouping,
		prompt:  prompt,
		command: opts.Command,
	}
	if h.group == 0 {
		h.group = Group8
	}
	v.SetCursorRenderer(h.drawHex)
	ctx.Register(h)
	return h, nil
}

// Load maps the file at path read-only and shows it from the start.
// On failure the current content is kept.
func (h *HexView) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrContentUnavailable, path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", ErrContentUnavailable, path, err)
	}

	var m mmap.MMap
	// Empty files cannot be mapped
	if fi.Size() > 0 {
		if m, err = mmap.Map(f, mmap.RDONLY, 0); err != nil {
			f.Close()
			return fmt.Errorf("%w: %s: %w", ErrContentUnavailable, path, err)
		}
	}

	h.unmap()
	h.file, h.mapped = f, m
	if h.hasTitle {
		h.title = filepath.Base(path)
	}
	h.setData(m)
	h.log.Debug("load", "path", path, "bytes", len(m))
	h.Draw()
	return nil
}

// SetData replaces the content with data and redraws
func (h *HexView) SetData(data []byte) {
	h.unmap()
	h.setData(data)
	h.Draw()
}

func (h *HexView) setData(data []byte) {
	h.data = data
	h.address, h.cx, h.cy = 0, 0, 0
	h.selecting = false
}

func (h *HexView) unmap() {
	if h.mapped != nil {
		if err := h.mapped.Unmap(); err != nil {
			h.log.Warn("unmap", "error", err)
		}
		h.mapped = nil
	}
	if h.file != nil {
		h.file.Close()
		h.file = nil
	}
	h.data = nil
}

// Close hides the view and releases a mapped file
func (h *HexView) Close() {
	h.unmap()
	h.View.Close()
}

// Data returns the shown bytes
func (h *HexView) Data() []byte {
	return h.data
}

// Address returns the offset of the first visible byte
func (h *HexView) Address() int {
	return h.address
}

// Cursor returns the cursor byte within its row and the row
func (h *HexView) Cursor() (int, int) {
	return h.cx, h.cy
}

// Offset returns the data offset under the cursor
func (h *HexView) Offset() int {
	return h.address + h.cy*hexRowBytes + h.cx
}

func (h *HexView) Grouping() HexGrouping {
	return h.group
}

// Selecting reports whether select mode is on
func (h *HexView) Selecting() bool {
	return h.selecting
}

// Selection returns the selected bytes, nil outside select mode
func (h *HexView) Selection() []byte {
	if !h.selecting || len(h.data) == 0 {
		return nil
	}
	return h.data[h.selStart : min(h.selEnd, len(h.data)-1)+1]
}

// Prompt returns the search and command prompt
func (h *HexView) Prompt() *Prompt {
	return h.prompt
}

func (h *HexView) pageSize() int {
	return h.bounds.H * hexRowBytes
}

func (h *HexView) maxAddress() int {
	return max(len(h.data)-h.pageSize(), 0)
}

func (h *HexView) lastOffset() int {
	return max(len(h.data)-1, 0)
}

// setOffset places the cursor on off relative to the current address
func (h *HexView) setOffset(off int) {
	d := off - h.address
	h.cy, h.cx = d/hexRowBytes, d%hexRowBytes
}

// clamp keeps the cursor on a byte of the data
func (h *HexView) clamp() {
	if h.Offset() > h.lastOffset() {
		h.setOffset(h.lastOffset())
	}
}

func (h *HexView) selected(off int) bool {
	return h.selecting && off >= h.selStart && off <= h.selEnd
}

// extendSelection moves whichever selection end sat at old to the cursor
func (h *HexView) extendSelection(old int) {
	if !h.selecting {
		return
	}
	off := h.Offset()
	if h.selStart == h.selEnd {
		if off < h.selStart {
			h.selStart = off
		} else if off > h.selEnd {
			h.selEnd = off
		}
	} else if old == h.selStart {
		h.selStart = off
	} else if old == h.selEnd {
		h.selEnd = off
	}
	if h.selStart > h.selEnd {
		h.selStart, h.selEnd = h.selEnd, h.selStart
	}
}

// move applies a cursor or address change, keeps the cursor on the data,
// drags the selection along and redraws
func (h *HexView) move(fn func()) {
	old := h.Offset()
	fn()
	h.clamp()
	h.extendSelection(old)
	h.drawHex()
}

func (h *HexView) scrollUp(rows int) {
	h.address = max(h.address-rows*hexRowBytes, 0)
}

// scrollDown reports whether the address changed
func (h *HexView) scrollDown(rows int) bool {
	addr := min(h.address+rows*hexRowBytes, h.maxAddress())
	if addr <= h.address {
		return false
	}
	h.address = addr
	return true
}

func (h *HexView) MoveUp() {
	h.move(func() {
		switch {
		case h.cy > 0:
			h.cy--
		case h.address > 0:
			h.scrollUp(1)
		}
	})
}

func (h *HexView) MoveDown() {
	h.move(func() {
		if h.cy < h.bounds.H-1 {
			h.cy++
		} else {
			h.scrollDown(1)
		}
	})
}

// MoveLeft steps one byte back, wrapping to the end of the previous row
func (h *HexView) MoveLeft() {
	h.move(func() {
		if h.cx == 0 && h.cy == 0 {
			if h.address == 0 {
				return
			}
			h.scrollUp(1)
			h.cx = hexRowBytes - 1
			return
		}
		if h.cx == 0 {
			h.cy--
			h.cx = hexRowBytes - 1
		} else {
			h.cx--
		}
	})
}

// MoveRight steps one byte forward, wrapping to the start of the next row
func (h *HexView) MoveRight() {
	h.move(func() {
		if h.cx < hexRowBytes-1 {
			h.cx++
			return
		}
		if h.cy < h.bounds.H-1 {
			h.cx = 0
			h.cy++
		} else if h.scrollDown(1) {
			h.cx = 0
		}
	})
}

// RollLeft shifts the view one byte toward the start
func (h *HexView) RollLeft() {
	h.move(func() {
		if h.address > 0 {
			h.address--
		}
	})
}

// RollRight shifts the view one byte toward the end
func (h *HexView) RollRight() {
	h.move(func() {
		rows := (len(h.data) + hexRowBytes - 1) / hexRowBytes
		if h.address < rows*hexRowBytes-h.pageSize() {
			h.address++
		}
	})
}

// PageUp moves one page up; with the cursor on the bottom row it jumps to the top row
func (h *HexView) PageUp() {
	h.move(func() {
		if h.address == 0 || h.cy == h.bounds.H-1 {
			h.cy = 0
			return
		}
		h.scrollUp(h.bounds.H - 1)
	})
}

// PageDown moves one page down; with the cursor on the top row it jumps to the bottom row
func (h *HexView) PageDown() {
	h.move(func() {
		if h.cy == 0 || !h.scrollDown(h.bounds.H-1) {
			h.cy = h.bounds.H - 1
		}
	})
}

// GotoTop shows the start of the data
func (h *HexView) GotoTop() {
	h.move(func() {
		h.address, h.cx, h.cy = 0, 0, 0
	})
}

// GotoBottom shows the last page with the cursor on the last byte
func (h *HexView) GotoBottom() {
	h.move(func() {
		h.address = h.maxAddress()
		h.setOffset(h.lastOffset())
	})
}

// ScreenTop moves the cursor to the top row
func (h *HexView) ScreenTop() {
	h.move(func() { h.cy = 0 })
}

// ScreenMiddle moves the cursor to the middle row
func (h *HexView) ScreenMiddle() {
	h.move(func() { h.cy = h.bounds.H / 2 })
}

// ScreenBottom moves the cursor to the bottom row
func (h *HexView) ScreenBottom() {
	h.move(func() { h.cy = h.bounds.H - 1 })
}

// LineStart moves the cursor to the first byte of its row
func (h *HexView) LineStart() {
	h.move(func() { h.cx = 0 })
}

// LineEnd moves the cursor to the last byte of its row
func (h *HexView) LineEnd() {
	h.move(func() { h.cx = hexRowBytes - 1 })
}

// SetGrouping changes the word grouping of the hex column
func (h *HexView) SetGrouping(g HexGrouping) {
	if g < Group8 || g > Group32Swap || g == h.group {
		return
	}
	h.group = g
	h.drawHex()
}

// ToggleSelect starts select mode at the cursor, or leaves it
func (h *HexView) ToggleSelect() {
	if !h.selecting {
		h.selStart = h.Offset()
		h.selEnd = h.selStart
	}
	h.selecting = !h.selecting
	h.drawHex()
}

// FindForward searches for pattern from the cursor, or from the byte after
// it when skip is set, and moves the cursor onto the match
func (h *HexView) FindForward(pattern []byte, skip bool) bool {
	if len(pattern) == 0 {
		return false
	}
	from := h.Offset()
	if skip {
		from++
	}
	if from >= len(h.data) {
		return false
	}
	i := bytes.Index(h.data[from:], pattern)
	if i < 0 {
		return false
	}
	h.jumpTo(from + i)
	return true
}

// FindBackward searches for the last match of pattern that ends at or
// before the cursor and moves the cursor onto it
func (h *HexView) FindBackward(pattern []byte) bool {
	if len(pattern) == 0 {
		return false
	}
	end := min(h.Offset(), len(h.data))
	i := bytes.LastIndex(h.data[:end], pattern)
	if i < 0 {
		return false
	}
	h.jumpTo(i)
	return true
}

// jumpTo puts the cursor on off, recentering the page when off is not visible
func (h *HexView) jumpTo(off int) {
	h.move(func() {
		if off < h.address || off >= h.address+h.pageSize() {
			h.address = max(min(off-h.pageSize()/2, h.maxAddress()), 0)
		}
		h.setOffset(off)
	})
}

// wordColumn returns the content column of word w of a row
func (h *HexView) wordColumn(w int) int {
	n := h.group.wordSize()
	x := hexBytesCol + w*3*n
	if w*n >= hexRowBytes/2 {
		x++
	}
	return x
}

// byteColumn returns the content column of byte i of a row
func (h *HexView) byteColumn(i int) int {
	n := h.group.wordSize()
	pos := i % n
	if h.group.swapped() {
		pos = n - 1 - pos
	}
	return h.wordColumn(i/n) + pos*2
}

func (h *HexView) Draw() {
	h.View.Draw()
	h.drawHex()
}

func (h *HexView) drawHex() {
	for y := 0; y < h.bounds.H; y++ {
		h.drawRow(y)
	}
	h.drawCursor()
}

func (h *HexView) drawRow(y int) {
	base := h.address + y*hexRowBytes
	text := h.colors.Text()
	sel := h.colors.Style(RoleCursor)

	h.WriteLine(0, y, fmt.Sprintf("%08X", base), text)
	for i := 0; i < hexRowBytes; i++ {
		off := base + i
		hex, ch, style := RepeatRune(' ', 2), " ", h.colors.Style(RoleInvisible)
		if off < len(h.data) {
			hex = fmt.Sprintf("%02X", h.data[off])
			ch, style = printable(h.data[off], text, style)
		}
		if h.selected(off) {
			style = sel
			h.WriteAt(h.byteColumn(i), y, hex, sel)
		} else {
			h.WriteAt(h.byteColumn(i), y, hex, text)
		}
		h.WriteAt(hexASCIICol+i, y, ch, style)
	}

	// Gaps inside a selection take its color so the run reads as one block
	if !h.selecting {
		return
	}
	n := h.group.wordSize()
	words := hexRowBytes / n
	for w := 0; w < words-1; w++ {
		last := base + w*n + n - 1
		if h.selected(last) && h.selected(last+1) {
			h.WriteAt(h.wordColumn(w)+2*n, y, RepeatRune(' ', n), sel)
		}
	}
	if h.selected(base+hexRowBytes/2-1) && h.selected(base+hexRowBytes/2) {
		h.WriteAt(hexMiddleCol, y, " ", sel)
	}
}

// printable returns the ASCII column rune of b and its style
func printable(b byte, text, invisible terminal.Style) (string, terminal.Style) {
	if b >= ' ' && b <= '~' {
		return string(rune(b)), text
	}
	return ".", invisible
}

func (h *HexView) drawCursor() {
	if h.focus {
		off := h.Offset()
		hex, ch := RepeatRune(' ', 2), " "
		if off < len(h.data) {
			hex = fmt.Sprintf("%02X", h.data[off])
			ch, _ = printable(h.data[off], terminal.Style{}, terminal.Style{})
		}
		cursor := h.colors.Style(RoleCursor)
		h.WriteAt(h.byteColumn(h.cx), h.cy, hex, cursor)
		h.WriteAt(hexASCIICol+h.cx, h.cy, ch, cursor)
	}

	if h.selecting {
		h.Status(fmt.Sprintf("Select %08X-%08X", h.selStart, h.selEnd))
	} else {
		h.Status(fmt.Sprintf("%08X %s", h.Offset(), h.group))
	}
}

// find runs the search prompt and searches in dir. An empty line repeats the
// last search. A true return carries a global hotkey result out of the prompt.
func (h *HexView) find(dir searchDir, again bool) (Result, bool) {
	h.dir = dir
	var pattern string
	if !again {
		if dir == searchForward {
			h.prompt.SetPrompt("/")
		} else {
			h.prompt.SetPrompt("?")
		}
		res := h.prompt.Run()
		if h.prompt.Hooked() {
			return res, true
		}
		if _, ok := res.Chosen(); !ok {
			return Result{}, false
		}
		pattern = h.prompt.Text()
	}
	if pattern == "" {
		last, ok := h.prompt.Last()
		if !ok {
			return Result{}, false
		}
		pattern, again = last, true
	}

	var found bool
	if dir == searchForward {
		found = h.FindForward([]byte(pattern), again)
	} else {
		found = h.FindBackward([]byte(pattern))
	}
	h.log.Debug("find", "pattern", pattern, "backward", dir == searchBackward, "found", found)
	if !found {
		h.prompt.Notify("Not found")
	}
	return Result{}, false
}

// runCommand reads a ':' line and hands it to the command hook
func (h *HexView) runCommand() (Result, bool) {
	h.prompt.SetPrompt(":")
	res := h.prompt.Run()
	if h.prompt.Hooked() {
		return res, true
	}
	if _, ok := res.Chosen(); !ok || h.command == nil {
		return Result{}, false
	}
	return h.command(h.prompt.Text())
}

// Run drives the hex view. Escape leaves select mode, or hands control to
// the menu bar when not selecting.
func (h *HexView) Run() Result {
	for {
		ev := h.ctx.ReadKey()
		var (
			res  Result
			done bool
		)
		switch {
		case ev.Key == terminal.KeyClosed:
			return Transfer(ReturnToPrevious)
		case ev.Key == terminal.KeyEscape:
			if !h.selecting {
				h.LoseFocus()
				return Transfer(GotoMenuBar)
			}
			h.ToggleSelect()
		case ev.Key == terminal.KeyUp:
			h.MoveUp()
		case ev.Key == terminal.KeyDown:
			h.MoveDown()
		case ev.Key == terminal.KeyLeft:
			h.MoveLeft()
		case ev.Key == terminal.KeyRight:
			h.MoveRight()
		case ev.IsRune('<') || ev.IsRune(','):
			h.RollLeft()
		case ev.IsRune('>') || ev.IsRune('.'):
			h.RollRight()
		case ev.Key == terminal.KeyPageUp:
			h.PageUp()
		case ev.Key == terminal.KeyPageDown:
			h.PageDown()
		case ev.Key == terminal.KeyHome || ev.IsRune('g'):
			h.GotoTop()
		case ev.Key == terminal.KeyEnd || ev.IsRune('G'):
			h.GotoBottom()
		case ev.Key == terminal.KeyRune && ev.Rune >= '1' && ev.Rune <= '5':
			h.SetGrouping(Group8 + HexGrouping(ev.Rune-'1'))
		case ev.IsRune('v') || ev.IsRune('V') || ev.Key == terminal.KeyCtrlV:
			h.ToggleSelect()
		case ev.IsRune('/') || ev.Key == terminal.KeyCtrlF:
			res, done = h.find(searchForward, false)
		case ev.IsRune('?'):
			res, done = h.find(searchBackward, false)
		case ev.IsRune('n') || ev.Key == terminal.KeyCtrlG:
			res, done = h.find(h.dir, true)
		case ev.IsRune(':'):
			res, done = h.runCommand()
		case ev.IsRune('0') || ev.IsRune('^'):
			h.LineStart()
		case ev.IsRune('$'):
			h.LineEnd()
		case ev.IsRune('H'):
			h.ScreenTop()
		case ev.IsRune('M'):
			h.ScreenMiddle()
		case ev.IsRune('L'):
			h.ScreenBottom()
		default:
			res, done = h.ctx.Hotkey(ev)
		}
		if done {
			return res
		}
	}
}
