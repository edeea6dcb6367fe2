package tui

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/lixenwraith/textmode/terminal"
)

// MenuSpec is one header of a MenuBar and the items of its menu
type MenuSpec struct {
	Header string
	Items  []string
}

// MenuBarOpts configures a MenuBar and the menus it owns
type MenuBarOpts struct {
	Borderless bool // menus without border
	Shadow     bool // menus cast a shadow
}

// MenuBar is the full-width top row of headers, each owning a drop-down Menu
type MenuBar struct {
	*View
	log hclog.Logger

	headers []Label
	pos     []int // screen column of each header text
	menus   []*Menu
	cursor  int

	choice int
	chosen bool
	open   bool // a menu of the active header owns focus
}

// NewMenuBar creates and registers a menu bar with one menu per MenuSpec
func NewMenuBar(ctx *Context, colors *ColorSet, specs []MenuSpec, opts MenuBarOpts) (*MenuBar, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("menubar has no menus: %w", ErrMenuItems)
	}
	v, err := newView(ctx, Rect{W: ctx.width, H: 1}, colors, ViewOpts{Borderless: true})
	if err != nil {
		return nil, err
	}
	mb := &MenuBar{
		View: v,
		log:  ctx.log.Named("menubar"),
	}

	x := 2
	for _, s := range specs {
		h := ParseLabel(s.Header)
		mb.headers = append(mb.headers, h)
		mb.pos = append(mb.pos, x)
		x += RuneLen(h.Text) + 2
	}

	for i, s := range specs {
		m, err := NewMenu(ctx, mb.pos[i]-1, v.frame.Y+1, colors, s.Items, MenuOpts{
			Borderless: opts.Borderless,
			Shadow:     opts.Shadow,
			CloseKey:   mb.headers[i].Hotkey,
		})
		if err != nil {
			return nil, fmt.Errorf("menu %q: %w", mb.headers[i].Text, err)
		}
		mb.menus = append(mb.menus, m)
	}

	v.SetCursorRenderer(mb.drawCursor)
	ctx.Register(mb)
	return mb, nil
}

// Menus returns the owned menus in header order
func (mb *MenuBar) Menus() []*Menu {
	return mb.menus
}

// Headers returns the parsed header labels
func (mb *MenuBar) Headers() []Label {
	return mb.headers
}

// Columns returns the screen column of each header
func (mb *MenuBar) Columns() []int {
	return mb.pos
}

// Cursor returns the active header index
func (mb *MenuBar) Cursor() int {
	return mb.cursor
}

// Position returns the active header and the last chosen item; chosen is
// false when the bar was left without a choice
func (mb *MenuBar) Position() (header, item int, chosen bool) {
	if !mb.chosen {
		return mb.cursor, -1, false
	}
	return mb.cursor, mb.choice, true
}

// Selection returns the text of the last chosen item
func (mb *MenuBar) Selection() (string, bool) {
	if !mb.chosen {
		return "", false
	}
	return mb.menus[mb.cursor].items[mb.choice].Text, true
}

func (mb *MenuBar) Draw() {
	mb.View.Draw()
	for i := range mb.headers {
		if i == mb.cursor {
			mb.drawCursor()
		} else {
			mb.drawHeader(i, false)
		}
	}
}

func (mb *MenuBar) drawHeader(i int, active bool) {
	style, hotkey := mb.colors.Style(RoleMenu), mb.colors.Style(RoleMenuHotkey)
	if active {
		style, hotkey = mb.colors.Style(RoleActiveMenu), mb.colors.Style(RoleActiveMenuHotkey)
	}
	h := mb.headers[i]
	mb.WriteAt(mb.pos[i]-1, 0, " "+h.Text+" ", style)
	if h.Pos >= 0 {
		mb.WriteAt(mb.pos[i]+h.Pos, 0, h.HotkeyText(), hotkey)
	}
}

func (mb *MenuBar) drawCursor() {
	mb.drawHeader(mb.cursor, mb.focus || mb.open)
}

func (mb *MenuBar) setCursor(i int) {
	if i == mb.cursor {
		return
	}
	mb.drawHeader(mb.cursor, false)
	mb.cursor = i
	mb.drawCursor()
}

func (mb *MenuBar) MoveLeft() {
	n := len(mb.headers)
	mb.setCursor((mb.cursor - 1 + n) % n)
}

func (mb *MenuBar) MoveRight() {
	mb.setCursor((mb.cursor + 1) % len(mb.headers))
}

// PushHotkey activates the header whose single-character hotkey matches ev
func (mb *MenuBar) PushHotkey(ev terminal.Event) bool {
	if ev.Key != terminal.KeyRune {
		return false
	}
	for i, h := range mb.headers {
		if h.Hotkey.Ctrl() || !h.Hotkey.Matches(ev) {
			continue
		}
		if i != mb.cursor {
			mb.setCursor(i)
			mb.ctx.Click()
			mb.Pause()
		}
		return true
	}
	return false
}

// Run raises the bar and dispatches keys between the headers and their menus.
// It returns the chosen item of the active header, or ReturnToPrevious.
func (mb *MenuBar) Run() Result {
	mb.Front()
	for {
		ev := mb.ctx.ReadKey()
		switch {
		case ev.Key == terminal.KeyEscape || ev.Key == terminal.KeyClosed:
			return mb.leave()
		case ev.Key == terminal.KeyLeft:
			mb.MoveLeft()
		case ev.Key == terminal.KeyRight:
			mb.MoveRight()
		case ev.Key == terminal.KeyEnter || ev.IsRune(' ') || ev.Key == terminal.KeyDown || mb.PushHotkey(ev):
			return mb.runMenus()
		default:
			if res, ok := mb.ctx.Hotkey(ev); ok {
				mb.Back()
				return res
			}
		}
	}
}

// runMenus is the menu-open state: the active header's menu owns input until
// it returns a choice or ReturnToPrevious; MoveLeft and MoveRight switch headers
func (mb *MenuBar) runMenus() Result {
	for {
		mb.open = true
		m := mb.menus[mb.cursor]
		res := m.Run()
		mb.open = false

		if m.Hooked() {
			mb.chosen = false
			mb.Back()
			return res
		}
		if n, ok := res.Chosen(); ok {
			mb.choice, mb.chosen = n, true
			mb.Back()
			mb.log.Debug("choice", "header", mb.cursor, "item", n)
			return res
		}
		switch sig, _ := res.Signal(); sig {
		case MoveLeft:
			mb.MoveLeft()
		case MoveRight:
			mb.MoveRight()
		default:
			return mb.leave()
		}
	}
}

func (mb *MenuBar) leave() Result {
	mb.chosen = false
	mb.Back()
	return Transfer(ReturnToPrevious)
}
