package terminal

import "strings"

// Color is one of the eight ANSI colors, or the terminal default
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = [...]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// String returns the lower-case color name
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

// Index returns the ANSI palette index 0-7, or -1 for ColorDefault
func (c Color) Index() int {
	if c == ColorDefault || c > ColorWhite {
		return -1
	}
	return int(c - ColorBlack)
}

// ColorByName resolves a color name, case-insensitive
func ColorByName(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrUnderline Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// Style is a foreground/background color pair plus attributes
type Style struct {
	Fg   Color
	Bg   Color
	Attr Attr
}

// NewStyle returns a plain style with the given colors
func NewStyle(fg, bg Color) Style {
	return Style{Fg: fg, Bg: bg}
}

// IsZero reports whether s is the zero style, which callers treat as "unset"
func (s Style) IsZero() bool {
	return s == Style{}
}

// With returns a copy of s with attributes added
func (s Style) With(a Attr) Style {
	s.Attr |= a
	return s
}

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Style Style
}
