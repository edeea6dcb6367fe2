package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/textmode/terminal"
	"github.com/lixenwraith/textmode/terminal/tui"
)

func newTestApp(t *testing.T, keys ...terminal.Event) (*app, *terminal.Memory) {
	t.Helper()
	return newTestAppMode(t, false, keys...)
}

func newTestAppMode(t *testing.T, hexMode bool, keys ...terminal.Event) (*app, *terminal.Memory) {
	t.Helper()
	mem := terminal.NewMemory(80, 24)
	mem.Push(keys...)
	ctx, err := tui.Init(mem, tui.Options{Pause: time.Nanosecond})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(ctx.Close)

	a, err := newApp(ctx, nil, terminal.KeyCtrlQ, hexMode)
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	if a.hex != nil {
		t.Cleanup(a.hex.Close)
	}
	return a, mem
}

func writeLines(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAppQuitKey(t *testing.T) {
	a, mem := newTestApp(t,
		terminal.KeyEvent(terminal.KeyDown),
		terminal.KeyEvent(terminal.KeyCtrlQ),
	)
	if err := a.open(writeLines(t, 50)); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	a.loop()

	if !a.quit || mem.Pending() != 0 {
		t.Errorf("Expected quit with all keys consumed, %d left", mem.Pending())
	}
	if a.view.Cursor() != 1 || a.view.Title() != "sample.txt" {
		t.Errorf("Unexpected view state %d %q", a.view.Cursor(), a.view.Title())
	}
}

func TestAppMenuCommands(t *testing.T) {
	a, mem := newTestApp(t,
		terminal.KeyEvent(terminal.KeyEscape),
		terminal.RuneEvent('v'),
		terminal.RuneEvent('b'),
		terminal.KeyEvent(terminal.KeyUp),
		terminal.KeyEvent(terminal.KeyEscape),
		terminal.RuneEvent('='),
		terminal.RuneEvent('q'),
	)
	if err := a.open(writeLines(t, 50)); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	a.loop()

	if mem.Pending() != 0 {
		t.Errorf("Expected all keys consumed, %d left", mem.Pending())
	}
	if a.view.Selection() != "line 49" {
		t.Errorf("Expected cursor one above the end, got %q", a.view.Selection())
	}
	if header, item, _ := a.bar.Position(); header != menuSystem || item != itemQuit {
		t.Errorf("Expected quit from the system menu, got %d/%d", header, item)
	}
}

func TestAppHelpAlert(t *testing.T) {
	a, mem := newTestApp(t,
		terminal.KeyEvent(terminal.KeyEscape),
		terminal.RuneEvent('h'),
		terminal.KeyEvent(terminal.KeyEnter),
		terminal.KeyEvent(terminal.KeyEnter),
		terminal.KeyEvent(terminal.KeyCtrlQ),
	)
	a.loop()

	if mem.Pending() != 0 || !a.quit {
		t.Errorf("Expected quit after the help alert, %d left", mem.Pending())
	}
	if a.keys.Visible() {
		t.Error("Expected the help alert closed")
	}
	if top, _ := a.ctx.Stack().Top(); top.Base() != a.view.Base() {
		t.Error("Expected the view in front again")
	}
}

func TestAppLoadFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	a, _ := newTestApp(t, terminal.KeyEvent(terminal.KeyEnter))
	if err := a.open(missing); err != nil {
		t.Errorf("Expected OK to continue, got %v", err)
	}
	if len(a.view.Lines()) != 0 {
		t.Error("Expected an empty view")
	}

	a, _ = newTestApp(t, terminal.RuneEvent('c'))
	err := a.open(missing)
	if !errors.Is(err, errCancelled) || !errors.Is(err, tui.ErrContentUnavailable) {
		t.Errorf("Expected cancelled load error, got %v", err)
	}
}

func TestAppQuitKeyInMenu(t *testing.T) {
	a, mem := newTestApp(t,
		terminal.KeyEvent(terminal.KeyEscape),
		terminal.KeyEvent(terminal.KeyEnter),
		terminal.KeyEvent(terminal.KeyCtrlQ),
	)
	a.loop()

	if !a.quit || mem.Pending() != 0 {
		t.Errorf("Expected quit from an open menu, %d left", mem.Pending())
	}
	for i, m := range a.bar.Menus() {
		if m.Visible() {
			t.Errorf("Expected menu %d closed", i)
		}
	}
}

func TestAppQuitKeyInAlert(t *testing.T) {
	a, mem := newTestApp(t,
		terminal.KeyEvent(terminal.KeyEscape),
		terminal.RuneEvent('h'),
		terminal.KeyEvent(terminal.KeyEnter),
		terminal.KeyEvent(terminal.KeyCtrlQ),
	)
	a.loop()

	if !a.quit || mem.Pending() != 0 || a.keys.Visible() {
		t.Errorf("Expected quit from the help alert, %d left", mem.Pending())
	}
}

func TestAppClosedTerminal(t *testing.T) {
	a, _ := newTestApp(t)
	a.ctx.Close()
	a.loop()
	if a.quit {
		t.Error("Expected the loop to end without a quit request")
	}
}

func TestAppHexMode(t *testing.T) {
	a, mem := newTestAppMode(t, true,
		terminal.RuneEvent('4'),
		terminal.RuneEvent('G'),
		terminal.KeyEvent(terminal.KeyEscape),
		terminal.RuneEvent('v'),
		terminal.RuneEvent('t'),
		terminal.RuneEvent(':'),
		terminal.RuneEvent('q'),
		terminal.KeyEvent(terminal.KeyEnter),
	)
	if a.view != nil || a.hex == nil {
		t.Fatal("Expected a hex view only")
	}
	if err := a.open(writeLines(t, 50)); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	size := len(a.hex.Data())
	a.loop()

	if !a.quit || mem.Pending() != 0 {
		t.Errorf("Expected quit command with all keys consumed, %d left", mem.Pending())
	}
	if a.hex.Grouping() != tui.Group32 {
		t.Errorf("Expected 32-bit words, got %v", a.hex.Grouping())
	}
	if size == 0 || a.hex.Offset() != 0 || a.hex.Title() != "sample.txt" {
		t.Errorf("Expected the menu to jump back to the start, got %d of %d", a.hex.Offset(), size)
	}
}
