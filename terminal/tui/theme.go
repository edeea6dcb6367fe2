package tui

import (
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/textmode/terminal"
)

// styleConfig is one role entry of a theme file
type styleConfig struct {
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Dim       bool   `toml:"dim"`
	Underline bool   `toml:"underline"`
	Reverse   bool   `toml:"reverse"`
}

// Theme is a collection of named ColorSets decoded from TOML:
//
//	[alert]
//	text = { fg = "black", bg = "white" }
//	active_button = { fg = "white", bg = "cyan", bold = true }
type Theme struct {
	sets map[string]*ColorSet
}

// DecodeTheme reads a theme from r
func DecodeTheme(r io.Reader) (*Theme, error) {
	var raw map[string]map[string]styleConfig
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTheme, err)
	}
	return buildTheme(raw)
}

// LoadTheme reads a theme file
func LoadTheme(path string) (*Theme, error) {
	var raw map[string]map[string]styleConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTheme, path, err)
	}
	return buildTheme(raw)
}

func buildTheme(raw map[string]map[string]styleConfig) (*Theme, error) {
	t := &Theme{sets: make(map[string]*ColorSet, len(raw))}
	for name, roles := range raw {
		cs, err := buildColorSet(roles)
		if err != nil {
			return nil, fmt.Errorf("%w: [%s] %w", ErrTheme, name, err)
		}
		t.sets[name] = cs
	}
	return t, nil
}

func buildColorSet(roles map[string]styleConfig) (*ColorSet, error) {
	text := DefaultColors.Text()
	if c, ok := roles[RoleText.String()]; ok {
		s, err := c.style()
		if err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		text = s
	}

	opts := make([]ColorOption, 0, len(roles))
	for key, c := range roles {
		role, ok := RoleByName(key)
		if !ok {
			return nil, fmt.Errorf("unknown role %q", key)
		}
		s, err := c.style()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		opts = append(opts, With(role, s))
	}
	return NewColorSet(text, opts...), nil
}

func (c styleConfig) style() (terminal.Style, error) {
	var s terminal.Style
	var ok bool
	if c.Fg != "" {
		if s.Fg, ok = terminal.ColorByName(c.Fg); !ok {
			return s, fmt.Errorf("unknown color %q", c.Fg)
		}
	}
	if c.Bg != "" {
		if s.Bg, ok = terminal.ColorByName(c.Bg); !ok {
			return s, fmt.Errorf("unknown color %q", c.Bg)
		}
	}
	if c.Bold {
		s.Attr |= terminal.AttrBold
	}
	if c.Dim {
		s.Attr |= terminal.AttrDim
	}
	if c.Underline {
		s.Attr |= terminal.AttrUnderline
	}
	if c.Reverse {
		s.Attr |= terminal.AttrReverse
	}
	return s, nil
}

// Set returns the named ColorSet, or fallback when the theme has none
func (t *Theme) Set(name string, fallback *ColorSet) *ColorSet {
	if t != nil {
		if cs, ok := t.sets[name]; ok {
			return cs
		}
	}
	return fallback
}

// Names returns the set names in sorted order
func (t *Theme) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.sets))
	for n := range t.sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
