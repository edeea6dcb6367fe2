package tui

import (
	"errors"
	"slices"
	"testing"

	"github.com/lixenwraith/textmode/terminal"
)

var barSpecs = []MenuSpec{
	{Header: "<F>ile", Items: fileItems},
	{Header: "<E>dit", Items: []string{"<C>ut", "<P>aste"}},
}

func newTestMenuBar(t *testing.T) (*MenuBar, *terminal.Memory) {
	t.Helper()
	ctx, mem := newTestContext(t, 40, 12)
	mb, err := NewMenuBar(ctx, nil, barSpecs, MenuBarOpts{Shadow: true})
	if err != nil {
		t.Fatalf("NewMenuBar failed: %v", err)
	}
	return mb, mem
}

func TestMenuBarLayout(t *testing.T) {
	mb, _ := newTestMenuBar(t)
	if !slices.Equal(mb.Columns(), []int{2, 8}) {
		t.Errorf("Expected columns [2 8], got %v", mb.Columns())
	}
	if f := mb.Frame(); f != NewRect(0, 0, 40, 1) {
		t.Errorf("Expected full-width top row, got %v", f)
	}
	menus := mb.Menus()
	if len(menus) != 2 || menus[0].Frame().X != 1 || menus[1].Frame().X != 7 || menus[1].Frame().Y != 1 {
		t.Errorf("Unexpected menu placement %v %v", menus[0].Frame(), menus[1].Frame())
	}
	if mb.Headers()[1].Text != "Edit" {
		t.Errorf("Expected Edit header, got %q", mb.Headers()[1].Text)
	}
}

func TestMenuBarErrors(t *testing.T) {
	ctx, _ := newTestContext(t, 40, 12)
	if _, err := NewMenuBar(ctx, nil, nil, MenuBarOpts{}); !errors.Is(err, ErrMenuItems) {
		t.Errorf("Expected ErrMenuItems for no menus, got %v", err)
	}
	bad := []MenuSpec{{Header: "<B>ad", Items: []string{Separator}}}
	if _, err := NewMenuBar(ctx, nil, bad, MenuBarOpts{}); !errors.Is(err, ErrMenuItems) {
		t.Errorf("Expected ErrMenuItems for a bad menu, got %v", err)
	}
}

func TestMenuBarRun(t *testing.T) {
	tests := []struct {
		name   string
		keys   []terminal.Event
		want   Result
		header int
		item   int
		text   string
	}{
		{"across menus", []terminal.Event{
			terminal.KeyEvent(terminal.KeyEnter), terminal.KeyEvent(terminal.KeyRight), terminal.KeyEvent(terminal.KeyEnter),
		}, Choice(0), 1, 0, "Cut"},
		{"hotkeys", []terminal.Event{terminal.RuneEvent('e'), terminal.RuneEvent('p')}, Choice(1), 1, 1, "Paste"},
		{"down opens", []terminal.Event{
			terminal.KeyEvent(terminal.KeyDown), terminal.KeyEvent(terminal.KeyDown), terminal.RuneEvent(' '),
		}, Choice(2), 0, 2, "Remove"},
		{"wrap left", []terminal.Event{
			terminal.KeyEvent(terminal.KeyLeft), terminal.KeyEvent(terminal.KeyEnter), terminal.KeyEvent(terminal.KeyLeft),
			terminal.KeyEvent(terminal.KeyEnter),
		}, Choice(0), 0, 0, "Add"},
		{"escape", []terminal.Event{terminal.KeyEvent(terminal.KeyEscape)}, Transfer(ReturnToPrevious), 0, -1, ""},
		{"escape in menu", []terminal.Event{
			terminal.KeyEvent(terminal.KeyEnter), terminal.KeyEvent(terminal.KeyEscape),
		}, Transfer(ReturnToPrevious), 0, -1, ""},
		{"header close key", []terminal.Event{terminal.RuneEvent('f'), terminal.RuneEvent('f')}, Transfer(ReturnToPrevious), 0, -1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mb, mem := newTestMenuBar(t)
			mem.Push(tt.keys...)

			if res := mb.Run(); res != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, res)
			}
			header, item, chosen := mb.Position()
			if header != tt.header || item != tt.item || chosen != (tt.item >= 0) {
				t.Errorf("Expected position %d/%d, got %d/%d %v", tt.header, tt.item, header, item, chosen)
			}
			text, ok := mb.Selection()
			if text != tt.text || ok != (tt.item >= 0) {
				t.Errorf("Expected selection %q, got %q %v", tt.text, text, ok)
			}
			if mem.Pending() != 0 {
				t.Errorf("Expected all keys consumed, %d left", mem.Pending())
			}
			for i, m := range mb.Menus() {
				if m.Visible() {
					t.Errorf("Expected menu %d closed", i)
				}
			}
		})
	}
}

func TestMenuBarHandsBackFocus(t *testing.T) {
	mb, mem := newTestMenuBar(t)
	ctx := mb.Context()
	v, _ := NewView(ctx, NewRect(0, 1, 40, 11), nil, ViewOpts{})
	v.Show()

	mem.Push(terminal.KeyEvent(terminal.KeyEscape))
	mb.Run()
	if !v.HasFocus() || mb.HasFocus() {
		t.Error("Expected focus back on the view")
	}
	if top, _ := ctx.Stack().Top(); top.Base() != v {
		t.Error("Expected the view in front")
	}
	if !mb.Visible() {
		t.Error("Expected the bar to stay visible behind")
	}
}

func TestMenuBarGlobalHotkey(t *testing.T) {
	mb, mem := newTestMenuBar(t)
	ctx := mb.Context()
	v, _ := NewView(ctx, NewRect(0, 1, 40, 11), nil, ViewOpts{})
	v.Show()
	mb.Show()
	ctx.SetHotkey(func(ev terminal.Event) (Result, bool) {
		if ev.Key == terminal.KeyCtrlQ {
			return Choice(99), true
		}
		return Result{}, false
	})

	mem.Push(terminal.RuneEvent('z'), terminal.KeyEvent(terminal.KeyCtrlQ))
	if res := mb.Run(); res != Choice(99) {
		t.Errorf("Expected hotkey result, got %v", res)
	}
	if top, _ := ctx.Stack().Top(); top.Base() != v {
		t.Error("Expected the view in front")
	}
	if !v.HasFocus() || mb.HasFocus() {
		t.Error("Expected focus handed to the view")
	}
}

func TestMenuBarHotkeyInsideMenu(t *testing.T) {
	mb, mem := newTestMenuBar(t)
	mb.Context().SetHotkey(func(ev terminal.Event) (Result, bool) {
		return Choice(99), ev.Key == terminal.KeyCtrlQ
	})

	mem.Push(terminal.KeyEvent(terminal.KeyEnter), terminal.KeyEvent(terminal.KeyCtrlQ))
	if res := mb.Run(); res != Choice(99) {
		t.Errorf("Expected hotkey result, got %v", res)
	}
	if _, _, chosen := mb.Position(); chosen {
		t.Error("Expected no menu choice recorded")
	}
	if mb.Menus()[0].Visible() {
		t.Error("Expected menu closed")
	}
}

func TestMenuBarLowerAlone(t *testing.T) {
	mb, _ := newTestMenuBar(t)
	mb.Show()
	mb.Back()
	if !mb.HasFocus() {
		t.Error("Expected a lone bar to keep focus after lowering")
	}
}

func TestMenuBarDraw(t *testing.T) {
	mb, _ := newTestMenuBar(t)
	mb.Front()
	s := mb.Surface()
	cs := DefaultColors

	if got := string(rowRunes(s, 0)[1:12]); got != " File  Edit" {
		t.Errorf("Expected headers, got %q", got)
	}
	if s.Cell(1, 0).Style != cs.Style(RoleActiveMenu) || s.Cell(2, 0).Style != cs.Style(RoleActiveMenuHotkey) {
		t.Error("Expected active header styles")
	}
	if s.Cell(7, 0).Style != cs.Style(RoleMenu) || s.Cell(8, 0).Style != cs.Style(RoleMenuHotkey) {
		t.Error("Expected inactive header styles")
	}

	mb.MoveRight()
	if s.Cell(1, 0).Style != cs.Style(RoleMenu) || s.Cell(8, 0).Style != cs.Style(RoleActiveMenuHotkey) {
		t.Error("Expected highlight on Edit")
	}
	mb.MoveRight()
	if mb.Cursor() != 0 {
		t.Errorf("Expected wrap to File, got %d", mb.Cursor())
	}
}
