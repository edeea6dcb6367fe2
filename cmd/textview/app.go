package main

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/lixenwraith/textmode/terminal"
	"github.com/lixenwraith/textmode/terminal/tui"
)

var errCancelled = errors.New("cancelled")

// Menu bar layout; indices below must follow it
var menuSpecs = []tui.MenuSpec{
	{Header: "<=>", Items: []string{"<A>bout", tui.Separator, "<Q>uit"}},
	{Header: "<V>iew", Items: []string{"<T>op", "<B>ottom"}},
	{Header: "<H>elp", Items: []string{"<K>eys"}},
}

const (
	menuSystem = iota
	menuView
	menuHelp
)

const (
	itemAbout  = 0
	itemQuit   = 2
	itemTop    = 0
	itemBottom = 1
	itemKeys   = 0
)

const keysText = `Up/Down      move the cursor
PgUp/PgDn    page
Home/End     start and end of file
Left/Right   scroll sideways
Esc          menu bar`

const hexKeysText = `Arrows       move the cursor
PgUp/PgDn    page
g/G          start and end of file
H/M/L        top, middle, bottom row
0/$          start and end of row
</>          roll one byte
1-5          8, 16, 16 swapped, 32, 32 swapped bit words
v            select mode
/ ? n        find, find backwards, find again
:q           quit
Esc          menu bar`

// document is the panel showing the file
type document interface {
	tui.Panel
	Load(path string) error
	GotoTop()
	GotoBottom()
	Show()
}

const (
	loadCancel = 0
	loadOK     = 1
)

// app is the pager: a text view under a menu bar plus its alerts
type app struct {
	ctx  *tui.Context
	log  hclog.Logger
	bar  *tui.MenuBar
	doc  document
	view *tui.TextView // nil in hex mode
	hex  *tui.HexView  // nil in text mode

	about  *tui.Alert
	keys   *tui.Alert
	failed *tui.Alert

	quitKey terminal.Key
	quit    bool
}

func newApp(ctx *tui.Context, theme *tui.Theme, quitKey terminal.Key, hexMode bool) (*app, error) {
	a := &app{
		ctx:     ctx,
		log:     ctx.Logger().Named("app"),
		quitKey: quitKey,
	}

	var err error
	a.bar, err = tui.NewMenuBar(ctx, theme.Set("menu", nil), menuSpecs, tui.MenuBarOpts{Shadow: true})
	if err != nil {
		return nil, fmt.Errorf("menu bar: %w", err)
	}

	w, h := ctx.Size()
	frame := tui.NewRect(0, 1, w, h-1)
	help := keysText
	if hexMode {
		a.hex, err = tui.NewHexView(ctx, frame, theme.Set("hexview", nil), tui.HexViewOpts{
			ViewOpts: tui.ViewOpts{Title: "hexview"},
			Command:  a.command,
		})
		if err != nil {
			return nil, fmt.Errorf("hex view: %w", err)
		}
		a.doc = a.hex
		help = hexKeysText
	} else {
		a.view, err = tui.NewTextView(ctx, frame, theme.Set("textview", nil), tui.TextViewOpts{
			ViewOpts: tui.ViewOpts{Title: "textview"},
		})
		if err != nil {
			return nil, fmt.Errorf("text view: %w", err)
		}
		a.doc = a.view
	}

	alerts := theme.Set("alert", nil)
	a.about, err = tui.NewAlert(ctx, "textview\nA read-only text-mode pager", alerts, tui.AlertOpts{
		Title:  "About",
		Shadow: true,
	})
	if err != nil {
		return nil, fmt.Errorf("about: %w", err)
	}
	a.keys, err = tui.NewAlert(ctx, help, alerts, tui.AlertOpts{
		Title:  "Keys",
		Shadow: true,
	})
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	a.failed, err = tui.NewAlert(ctx, "Failed to load file", alerts, tui.AlertOpts{
		Title:   "Error",
		Buttons: []string{"<C>ancel", "<O>K"},
		Default: loadOK,
		Shadow:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("load alert: %w", err)
	}

	ctx.SetHotkey(a.hotkey)
	a.bar.Show()
	a.doc.Show()
	return a, nil
}

// hotkey quits from any panel
func (a *app) hotkey(ev terminal.Event) (tui.Result, bool) {
	if ev.Key != a.quitKey {
		return tui.Result{}, false
	}
	a.log.Debug("quit key")
	a.quit = true
	return tui.Transfer(tui.ReturnToPrevious), true
}

// command handles the hex view's ':' line
func (a *app) command(cmd string) (tui.Result, bool) {
	switch cmd {
	case "q", "q!", "quit", "wq", "wq!", "ZZ", "exit":
		a.log.Debug("quit command", "cmd", cmd)
		a.quit = true
		return tui.Transfer(tui.ReturnToPrevious), true
	}
	return tui.Result{}, false
}

// open loads path into the view. On failure the user may go on with an
// empty view or cancel, which returns the load error.
func (a *app) open(path string) error {
	err := a.doc.Load(path)
	if err == nil {
		return nil
	}
	a.log.Warn("load failed", "path", path, "error", err)

	if n, ok := a.failed.Run().Chosen(); ok && n == loadCancel {
		return fmt.Errorf("%w: %w", errCancelled, err)
	}
	return nil
}

// loop runs the front panel until quit or the terminal goes away
func (a *app) loop() {
	for !a.quit && !a.ctx.Closed() {
		p, ok := a.ctx.Stack().Top()
		if !ok {
			return
		}
		res := p.Run()
		if a.quit {
			return
		}
		if res.Is(tui.GotoMenuBar) {
			a.dispatch(a.bar.Run())
		}
	}
}

func (a *app) dispatch(res tui.Result) {
	if _, ok := res.Chosen(); !ok {
		return
	}
	header, item, _ := a.bar.Position()
	a.log.Debug("menu", "header", header, "item", item)

	switch {
	case header == menuSystem && item == itemAbout:
		a.about.Run()
	case header == menuSystem && item == itemQuit:
		a.quit = true
	case header == menuView && item == itemTop:
		a.doc.GotoTop()
	case header == menuView && item == itemBottom:
		a.doc.GotoBottom()
	case header == menuHelp && item == itemKeys:
		a.keys.Run()
	}
}
