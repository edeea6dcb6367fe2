package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/textmode/terminal"
	"github.com/lixenwraith/textmode/terminal/tui"
)

var intro = []string{
	"terminal/tui showcase",
	"",
	"Esc opens the menu bar. Menu headers and items take their",
	"underlined hotkey; Left and Right switch menus while one is open.",
	"",
	"The Windows menu stacks extra views over this one, the Alerts",
	"menu runs modal alerts. Choices are listed below.",
	"",
}

var specs = []tui.MenuSpec{
	{Header: "<=>", Items: []string{"<Q>uit"}},
	{Header: "<W>indows", Items: []string{"<P>lain view", "<B>orderless", tui.Separator, "<C>lose all"}},
	{Header: "<A>lerts", Items: []string{"<I>nfo", "<C>onfirm", "<T>hree buttons"}},
}

// Gallery color sets
var (
	warm = tui.NewColorSet(
		terminal.NewStyle(terminal.ColorBlack, terminal.ColorYellow),
		tui.With(tui.RoleBorder, terminal.NewStyle(terminal.ColorRed, terminal.ColorYellow)),
		tui.With(tui.RoleTitle, terminal.NewStyle(terminal.ColorRed, terminal.ColorYellow).With(terminal.AttrBold)),
	)
	plain = tui.DefaultColors.Derive(
		tui.With(tui.RoleText, terminal.NewStyle(terminal.ColorWhite, terminal.ColorBlack)),
		tui.With(tui.RoleTitle, terminal.NewStyle(terminal.ColorBlack, terminal.ColorWhite)),
		tui.With(tui.RoleStatus, terminal.NewStyle(terminal.ColorBlack, terminal.ColorWhite)),
	)
)

type demo struct {
	ctx     *tui.Context
	bar     *tui.MenuBar
	log     *tui.TextView
	windows []*tui.View
	alerts  []*tui.Alert
	quit    bool
}

func main() {
	term, err := terminal.NewTcell()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	ctx, err := tui.Init(term, tui.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer ctx.Close()

	d, err := newDemo(ctx)
	if err != nil {
		ctx.Close()
		fmt.Fprintf(os.Stderr, "Failed to build demo: %v\n", err)
		os.Exit(1)
	}
	d.run()
}

func newDemo(ctx *tui.Context) (*demo, error) {
	w, h := ctx.Size()
	d := &demo{ctx: ctx}

	var err error
	if d.bar, err = tui.NewMenuBar(ctx, nil, specs, tui.MenuBarOpts{Shadow: true}); err != nil {
		return nil, err
	}
	d.log, err = tui.NewTextView(ctx, tui.NewRect(0, 1, w, h-1), nil, tui.TextViewOpts{
		ViewOpts: tui.ViewOpts{Title: "TUI DEMO"},
		Text:     intro,
	})
	if err != nil {
		return nil, err
	}

	plainView, err := tui.NewView(ctx, tui.NewRect(4, 4, min(40, w-8), min(10, h-6)), warm,
		tui.ViewOpts{Title: "Plain view", Shadow: true})
	if err != nil {
		return nil, err
	}
	borderless, err := tui.NewView(ctx, tui.NewRect(w/2-10, h/2, min(36, w/2), min(8, h/2-1)), plain,
		tui.ViewOpts{Title: "Borderless", Borderless: true, Shadow: true})
	if err != nil {
		return nil, err
	}
	d.windows = []*tui.View{plainView, borderless}

	alertSpecs := []struct {
		msg  string
		opts tui.AlertOpts
	}{
		{"Alerts size themselves to the message and center on screen.", tui.AlertOpts{Title: "Info", Shadow: true}},
		{"Proceed with the operation?", tui.AlertOpts{
			Title: "Confirm", Buttons: []string{"<Y>es", "<N>o"}, Default: 1, Shadow: true,
		}},
		{"Pick one.\nTab and Shift-Tab move between buttons.", tui.AlertOpts{
			Buttons: []string{"<R>ed", "<G>reen", "<B>lue"}, Borderless: true, Title: "Colors",
		}},
	}
	for _, s := range alertSpecs {
		a, err := tui.NewAlert(ctx, s.msg, nil, s.opts)
		if err != nil {
			return nil, err
		}
		d.alerts = append(d.alerts, a)
	}

	d.bar.Show()
	d.log.Show()
	return d, nil
}

func (d *demo) record(format string, args ...any) {
	d.log.SetText(append(d.log.Lines(), fmt.Sprintf(format, args...)))
	d.log.GotoBottom()
}

func (d *demo) run() {
	for !d.quit && !d.ctx.Closed() {
		p, ok := d.ctx.Stack().Top()
		if !ok {
			return
		}
		if res := p.Run(); res.Is(tui.GotoMenuBar) {
			d.dispatch(d.bar.Run())
		}
	}
}

func (d *demo) dispatch(res tui.Result) {
	if _, ok := res.Chosen(); !ok {
		return
	}
	header, item, _ := d.bar.Position()
	switch header {
	case 0:
		d.quit = true
	case 1:
		switch item {
		case 0, 1:
			d.windows[item].Show()
			d.windows[item].Status("Esc for menu")
			d.record("opened %q", d.windows[item].Title())
		case 3:
			for _, w := range d.windows {
				w.Hide()
			}
			d.record("closed windows")
		}
	case 2:
		a := d.alerts[item]
		res := a.Run()
		if _, ok := res.Chosen(); ok {
			d.record("%s: %s", a.Title(), a.Selection())
		} else {
			d.record("%s: dismissed", a.Title())
		}
	}
}
