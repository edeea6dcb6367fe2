package tui

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/lixenwraith/textmode/terminal"
)

// MenuOpts configures a Menu
type MenuOpts struct {
	Borderless bool
	Shadow     bool
	CloseKey   Hotkey // closes the menu like Escape
}

// Menu is a vertical list of labels with a wraparound cursor that never
// rests on a separator
type Menu struct {
	*View
	log hclog.Logger

	items    []Label
	cursor   int // index into items
	closeKey Hotkey
	hooked   bool // last Run ended in the global hotkey hook
}

// NewMenu creates and registers a menu at x,y sized to fit items
func NewMenu(ctx *Context, x, y int, colors *ColorSet, items []string, opts MenuOpts) (*Menu, error) {
	labels := make([]Label, len(items))
	for i, s := range items {
		labels[i] = ParseLabel(s)
	}
	if err := validateItems(labels); err != nil {
		return nil, err
	}

	w := 0
	for _, s := range items {
		l := LabelWidth(s) + 2
		if !opts.Borderless {
			l += 2
		}
		w = max(w, l)
	}
	h := len(items)
	if !opts.Borderless {
		h += 2
	}

	v, err := newView(ctx, Rect{X: x, Y: y, W: w, H: h}, colors, ViewOpts{
		Borderless: opts.Borderless,
		Shadow:     opts.Shadow,
	})
	if err != nil {
		return nil, err
	}
	m := &Menu{
		View:     v,
		log:      ctx.log.Named("menu"),
		items:    labels,
		closeKey: opts.CloseKey,
	}
	m.cursor = m.firstSelectable()
	v.SetCursorRenderer(m.drawCursor)
	ctx.Register(m)
	return m, nil
}

// validateItems rejects lists without a selectable item or with two
// separators next to each other, counting the wrap from last to first
func validateItems(items []Label) error {
	n := len(items)
	if n == 0 {
		return fmt.Errorf("menu is empty: %w", ErrMenuItems)
	}
	selectable := 0
	for i, it := range items {
		if !it.Separator {
			selectable++
			continue
		}
		if n > 1 && items[(i+1)%n].Separator {
			return fmt.Errorf("adjacent separators at %d: %w", i, ErrMenuItems)
		}
	}
	if selectable == 0 {
		return fmt.Errorf("menu has only separators: %w", ErrMenuItems)
	}
	return nil
}

func (m *Menu) firstSelectable() int {
	for i, it := range m.items {
		if !it.Separator {
			return i
		}
	}
	return 0
}

func (m *Menu) lastSelectable() int {
	for i := len(m.items) - 1; i >= 0; i-- {
		if !m.items[i].Separator {
			return i
		}
	}
	return 0
}

// Items returns the parsed labels
func (m *Menu) Items() []Label {
	return m.items
}

// Cursor returns the index of the highlighted item
func (m *Menu) Cursor() int {
	return m.cursor
}

// Selection returns the plain text of the highlighted item
func (m *Menu) Selection() string {
	return m.items[m.cursor].Text
}

func (m *Menu) Draw() {
	m.View.Draw()
	m.drawItems()
}

func (m *Menu) drawItems() {
	for y := range m.items {
		if y == m.cursor && m.focus {
			m.drawCursor()
		} else {
			m.drawItem(y, false)
		}
	}
}

func (m *Menu) drawItem(y int, active bool) {
	it := m.items[y]
	if it.Separator {
		m.HLine(1, y, m.bounds.W-2, terminal.RuneHLine, m.colors.Style(RoleBorder))
		return
	}

	style, hotkey := m.colors.Style(RoleMenu), m.colors.Style(RoleMenuHotkey)
	if active {
		style, hotkey = m.colors.Style(RoleActiveMenu), m.colors.Style(RoleActiveMenuHotkey)
	}
	m.WriteLine(0, y, " "+it.Text, style)
	if it.Pos >= 0 {
		m.WriteAt(1+it.Pos, y, it.HotkeyText(), hotkey)
	}
}

func (m *Menu) drawCursor() {
	m.drawItem(m.cursor, m.focus)
}

func (m *Menu) setCursor(i int) {
	if i == m.cursor {
		return
	}
	m.drawItem(m.cursor, false)
	m.cursor = i
	m.drawCursor()
}

// step moves one item in dir, taking one extra step over a separator
func (m *Menu) step(dir int) {
	n := len(m.items)
	c := (m.cursor + dir + n) % n
	if m.items[c].Separator {
		c = (c + dir + n) % n
		if m.items[c].Separator {
			panic(fmt.Sprintf("tui: menu cursor on separator %d", c))
		}
	}
	m.setCursor(c)
}

func (m *Menu) MoveUp() {
	m.step(-1)
}

func (m *Menu) MoveDown() {
	m.step(1)
}

func (m *Menu) GotoTop() {
	m.setCursor(m.firstSelectable())
}

func (m *Menu) GotoBottom() {
	m.setCursor(m.lastSelectable())
}

// PushHotkey moves the cursor to the item whose single-character hotkey
// matches ev and reports whether one did
func (m *Menu) PushHotkey(ev terminal.Event) bool {
	if ev.Key != terminal.KeyRune {
		return false
	}
	for i, it := range m.items {
		if it.Hotkey.Ctrl() || !it.Hotkey.Matches(ev) {
			continue
		}
		if i != m.cursor {
			m.setCursor(i)
			m.ctx.Click()
			m.Pause()
		}
		return true
	}
	return false
}

// Hooked reports whether the last Run returned a global hotkey result
func (m *Menu) Hooked() bool {
	return m.hooked
}

func (m *Menu) isCloseKey(ev terminal.Event) bool {
	return ev.Key == terminal.KeyEscape || m.closeKey.Matches(ev)
}

// Run shows the menu and consumes keys until a choice or a transfer.
// The menu is hidden again on return.
func (m *Menu) Run() Result {
	m.Show()
	m.hooked = false
	for {
		ev := m.ctx.ReadKey()
		switch {
		case m.isCloseKey(ev) || ev.Key == terminal.KeyClosed:
			m.Close()
			return Transfer(ReturnToPrevious)
		case ev.Key == terminal.KeyLeft || ev.Key == terminal.KeyBacktab:
			m.Close()
			return Transfer(MoveLeft)
		case ev.Key == terminal.KeyRight || ev.Key == terminal.KeyTab:
			m.Close()
			return Transfer(MoveRight)
		case ev.Key == terminal.KeyUp:
			m.MoveUp()
		case ev.Key == terminal.KeyDown:
			m.MoveDown()
		case ev.Key == terminal.KeyPageUp || ev.Key == terminal.KeyHome:
			m.GotoTop()
		case ev.Key == terminal.KeyPageDown || ev.Key == terminal.KeyEnd:
			m.GotoBottom()
		case ev.Key == terminal.KeyEnter || ev.IsRune(' ') || m.PushHotkey(ev):
			m.Close()
			m.log.Debug("choice", "item", m.cursor, "text", m.Selection())
			return Choice(m.cursor)
		default:
			if res, ok := m.ctx.Hotkey(ev); ok {
				m.Close()
				m.hooked = true
				return res
			}
		}
	}
}
