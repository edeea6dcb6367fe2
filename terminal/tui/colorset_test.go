package tui

import (
	"testing"

	"github.com/lixenwraith/textmode/terminal"
)

func TestNewColorSetDefaults(t *testing.T) {
	text := terminal.NewStyle(terminal.ColorBlack, terminal.ColorWhite)
	cs := NewColorSet(text, With(RoleBorder, terminal.NewStyle(terminal.ColorRed, terminal.ColorWhite)))

	for r := RoleText; r < roleCount; r++ {
		got := cs.Style(r)
		switch r {
		case RoleBorder:
			if got.Fg != terminal.ColorRed {
				t.Errorf("Expected red border, got %+v", got)
			}
		case RoleShadow:
			if got != DefaultShadow {
				t.Errorf("Expected default shadow, got %+v", got)
			}
		default:
			if got != text {
				t.Errorf("%s: expected text style, got %+v", r, got)
			}
		}
	}
	if cs.Style(roleCount+3) != text {
		t.Error("Expected out-of-range role to fall back to text")
	}
}

func TestColorSetDerive(t *testing.T) {
	base := DefaultColors
	hot := terminal.NewStyle(terminal.ColorMagenta, terminal.ColorBlue)
	d := base.Derive(With(RoleMenuHotkey, hot))

	if d == base {
		t.Fatal("Expected a distinct set")
	}
	if d.Style(RoleMenuHotkey) != hot {
		t.Errorf("Expected override, got %+v", d.Style(RoleMenuHotkey))
	}
	if base.Style(RoleMenuHotkey) == hot {
		t.Error("Expected base set unchanged")
	}
	if d.Style(RoleTitle) != base.Style(RoleTitle) {
		t.Error("Expected other roles inherited")
	}
}

func TestRoleNames(t *testing.T) {
	for r := RoleText; r < roleCount; r++ {
		got, ok := RoleByName(r.String())
		if !ok || got != r {
			t.Errorf("Expected %s to resolve, got %v %v", r, got, ok)
		}
	}
	if _, ok := RoleByName("nope"); ok {
		t.Error("Expected unknown role rejected")
	}
}
