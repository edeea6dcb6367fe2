package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/lixenwraith/textmode/terminal"
)

// DefaultPause is the length of push and hotkey feedback pauses
const DefaultPause = 100 * time.Millisecond

// DefaultTabSize is the number of spaces a tab expands to
const DefaultTabSize = 4

// Feedback is notified when a button is pushed or a hotkey jumps the cursor
type Feedback interface {
	Click()
}

// HotkeyFunc handles keys no panel consumed. Returning true ends the
// running loop with the given Result.
type HotkeyFunc func(ev terminal.Event) (Result, bool)

// Options configures a Context
type Options struct {
	Logger   hclog.Logger
	Feedback Feedback
	Pause    time.Duration
	Hotkey   HotkeyFunc
	TabSize  int
}

// Context is the scope of one toolkit session: the terminal, its fixed size
// and the panel stack. Everything is torn down by Close.
type Context struct {
	term     terminal.Terminal
	width    int
	height   int
	stack    *Stack
	log      hclog.Logger
	feedback Feedback
	pause    time.Duration
	hotkey   HotkeyFunc
	tabSize  int
	closed   bool
	once     sync.Once
}

// Init starts the terminal and returns a Context bound to it
func Init(term terminal.Terminal, opts Options) (*Context, error) {
	if err := term.Init(); err != nil {
		return nil, fmt.Errorf("tui: init: %w", err)
	}
	w, h := term.Size()
	if w <= 0 || h <= 0 {
		term.Fini()
		return nil, fmt.Errorf("tui: screen %dx%d: %w", w, h, ErrLayout)
	}

	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	pause := opts.Pause
	if pause <= 0 {
		pause = DefaultPause
	}
	tabSize := opts.TabSize
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}

	ctx := &Context{
		term:     term,
		width:    w,
		height:   h,
		stack:    newStack(w, h, log.Named("stack")),
		log:      log,
		feedback: opts.Feedback,
		pause:    pause,
		hotkey:   opts.Hotkey,
		tabSize:  tabSize,
	}
	log.Debug("init", "width", w, "height", h)
	return ctx, nil
}

// Close restores the terminal; later calls do nothing
func (c *Context) Close() {
	c.once.Do(func() {
		c.log.Debug("close")
		c.term.Fini()
	})
}

// Size returns the screen size recorded at Init
func (c *Context) Size() (int, int) {
	return c.width, c.height
}

// Screen returns the whole screen as a Rect
func (c *Context) Screen() Rect {
	return Rect{W: c.width, H: c.height}
}

func (c *Context) Stack() *Stack {
	return c.stack
}

func (c *Context) Logger() hclog.Logger {
	return c.log
}

// TabSize returns the tab expansion width
func (c *Context) TabSize() int {
	return c.tabSize
}

// SetHotkey replaces the global hotkey hook
func (c *Context) SetHotkey(fn HotkeyFunc) {
	c.hotkey = fn
}

// Register adds p to the stack arena
func (c *Context) Register(p Panel) Handle {
	return c.stack.Register(p)
}

// Refresh composites the visible panels and commits them to the screen
func (c *Context) Refresh() {
	c.stack.Composite(c.term)
	c.term.Show()
}

// ReadKey refreshes the screen and blocks for the next key.
// After the terminal reports KeyClosed every call returns KeyClosed.
func (c *Context) ReadKey() terminal.Event {
	if c.closed {
		return terminal.KeyEvent(terminal.KeyClosed)
	}
	c.Refresh()
	ev := c.term.PollEvent()
	if ev.Key == terminal.KeyClosed {
		c.log.Warn("terminal closed")
		c.closed = true
	}
	c.log.Trace("key", "event", ev.String())
	return ev
}

// Closed reports whether the terminal stopped delivering keys
func (c *Context) Closed() bool {
	return c.closed
}

// Pause refreshes the screen and blocks for the feedback duration
func (c *Context) Pause() {
	c.Refresh()
	time.Sleep(c.pause)
}

// Click fires the feedback sink, if any
func (c *Context) Click() {
	if c.feedback != nil {
		c.feedback.Click()
	}
}

// Hotkey offers ev to the global hotkey hook
func (c *Context) Hotkey(ev terminal.Event) (Result, bool) {
	if c.hotkey == nil {
		return Result{}, false
	}
	return c.hotkey(ev)
}

// CenterX returns the column centering width w in area, the screen when area is 0
func (c *Context) CenterX(w, area int) int {
	if area == 0 {
		area = c.width
	}
	return int(float64(area-w)*0.5 + 0.5)
}

// CenterY returns the row placing height h at 30% of the free space in area
func (c *Context) CenterY(h, area int) int {
	if area == 0 {
		area = c.height
	}
	return int(float64(area-h)*0.3 + 0.5)
}
