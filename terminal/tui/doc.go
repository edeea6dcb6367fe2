// Package tui implements modal text-mode windows on top of the terminal package.
//
// Every on-screen construct is a Panel: a View owning a clipped cell Surface,
// optionally specialised into a TextView, Menu, MenuBar or Alert. Panels live
// in the Context's Stack, an arena addressed by Handle with a front-to-back
// ordering; the front panel owns focus.
//
// Control is strictly modal. The host calls the front panel's Run, which blocks
// on the next key and returns a Result: either a choice index or a transfer
// Signal telling the caller which panel should run next.
//
//	ctx, err := tui.Init(term, tui.Options{})
//	defer ctx.Close()
//	alert, err := tui.NewAlert(ctx, "Proceed?", colors, tui.AlertOpts{
//	    Buttons: []string{"<C>ancel", "<O>K"},
//	    Default: 1,
//	})
//	res := alert.Run()
//	if n, ok := res.Chosen(); ok && n == 1 { ... }
package tui
