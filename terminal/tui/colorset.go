package tui

import "github.com/lixenwraith/textmode/terminal"

// ColorRole names one style slot of a ColorSet
type ColorRole uint8

const (
	RoleText ColorRole = iota
	RoleBorder
	RoleTitle
	RoleStatus
	RoleCursor
	RoleShadow
	RoleButton
	RoleButtonHotkey
	RoleActiveButton
	RoleActiveButtonHotkey
	RoleMenu
	RoleMenuHotkey
	RoleActiveMenu
	RoleActiveMenuHotkey
	RoleInvisible // unprintable bytes in a hex dump
	RoleError

	roleCount
)

// roleNames are the theme file keys of each role
var roleNames = [roleCount]string{
	RoleText:               "text",
	RoleBorder:             "border",
	RoleTitle:              "title",
	RoleStatus:             "status",
	RoleCursor:             "cursor",
	RoleShadow:             "shadow",
	RoleButton:             "button",
	RoleButtonHotkey:       "button_hotkey",
	RoleActiveButton:       "active_button",
	RoleActiveButtonHotkey: "active_button_hotkey",
	RoleMenu:               "menu",
	RoleMenuHotkey:         "menu_hotkey",
	RoleActiveMenu:         "active_menu",
	RoleActiveMenuHotkey:   "active_menu_hotkey",
	RoleInvisible:          "invisible",
	RoleError:              "error",
}

func (r ColorRole) String() string {
	if r < roleCount {
		return roleNames[r]
	}
	return "invalid"
}

// RoleByName resolves a theme key to its role
func RoleByName(name string) (ColorRole, bool) {
	for i, n := range roleNames {
		if n == name {
			return ColorRole(i), true
		}
	}
	return 0, false
}

// DefaultShadow is the shadow style of a ColorSet that sets none
var DefaultShadow = terminal.NewStyle(terminal.ColorBlack, terminal.ColorBlack).With(terminal.AttrBold)

// ColorSet is a frozen table of styles, shared by pointer between panels.
// Every role is populated: unset roles take the text style.
type ColorSet struct {
	styles [roleCount]terminal.Style
}

// ColorOption sets one role during construction
type ColorOption func(*ColorSet)

// With returns an option assigning style to role
func With(role ColorRole, style terminal.Style) ColorOption {
	return func(cs *ColorSet) {
		if role < roleCount {
			cs.styles[role] = style
		}
	}
}

// NewColorSet builds a ColorSet from a text style and per-role overrides
func NewColorSet(text terminal.Style, opts ...ColorOption) *ColorSet {
	cs := &ColorSet{}
	for i := range cs.styles {
		cs.styles[i] = text
	}
	cs.styles[RoleShadow] = DefaultShadow
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

// Derive returns a new ColorSet with overrides applied on top of cs
func (cs *ColorSet) Derive(opts ...ColorOption) *ColorSet {
	d := &ColorSet{styles: cs.styles}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Style returns the style of role
func (cs *ColorSet) Style(role ColorRole) terminal.Style {
	if role >= roleCount {
		return cs.styles[RoleText]
	}
	return cs.styles[role]
}

// Text returns the base text style
func (cs *ColorSet) Text() terminal.Style {
	return cs.styles[RoleText]
}

// DefaultColors is the plain white-on-blue set used when a caller passes nil
var DefaultColors = NewColorSet(
	terminal.NewStyle(terminal.ColorWhite, terminal.ColorBlue),
	With(RoleBorder, terminal.NewStyle(terminal.ColorCyan, terminal.ColorBlue)),
	With(RoleTitle, terminal.NewStyle(terminal.ColorYellow, terminal.ColorBlue).With(terminal.AttrBold)),
	With(RoleStatus, terminal.NewStyle(terminal.ColorCyan, terminal.ColorBlue)),
	With(RoleCursor, terminal.NewStyle(terminal.ColorBlack, terminal.ColorCyan)),
	With(RoleButton, terminal.NewStyle(terminal.ColorBlack, terminal.ColorWhite)),
	With(RoleButtonHotkey, terminal.NewStyle(terminal.ColorYellow, terminal.ColorWhite).With(terminal.AttrBold)),
	With(RoleActiveButton, terminal.NewStyle(terminal.ColorWhite, terminal.ColorCyan).With(terminal.AttrBold)),
	With(RoleActiveButtonHotkey, terminal.NewStyle(terminal.ColorYellow, terminal.ColorCyan).With(terminal.AttrBold)),
	With(RoleMenu, terminal.NewStyle(terminal.ColorBlack, terminal.ColorWhite)),
	With(RoleMenuHotkey, terminal.NewStyle(terminal.ColorRed, terminal.ColorWhite)),
	With(RoleActiveMenu, terminal.NewStyle(terminal.ColorWhite, terminal.ColorBlack)),
	With(RoleActiveMenuHotkey, terminal.NewStyle(terminal.ColorRed, terminal.ColorBlack)),
	With(RoleInvisible, terminal.NewStyle(terminal.ColorCyan, terminal.ColorBlue).With(terminal.AttrBold)),
	With(RoleError, terminal.NewStyle(terminal.ColorWhite, terminal.ColorRed).With(terminal.AttrBold)),
)
