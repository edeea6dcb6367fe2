package tui

import "github.com/lixenwraith/textmode/terminal"

// Surface is a fixed-size cell buffer owned by one panel.
// All coordinates are relative to the surface origin; writes outside are dropped.
type Surface struct {
	cells []terminal.Cell
	w, h  int
}

// NewSurface creates a blank w x h surface
func NewSurface(w, h int) *Surface {
	s := &Surface{
		cells: make([]terminal.Cell, w*h),
		w:     w,
		h:     h,
	}
	s.Fill(terminal.Style{})
	return s
}

// Width returns surface width
func (s *Surface) Width() int {
	return s.w
}

// Height returns surface height
func (s *Surface) Height() int {
	return s.h
}

// Rect returns the surface area at the origin
func (s *Surface) Rect() Rect {
	return Rect{W: s.w, H: s.h}
}

// Put sets a single cell with bounds checking
func (s *Surface) Put(x, y int, r rune, style terminal.Style) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.cells[y*s.w+x] = terminal.Cell{Rune: r, Style: style}
}

// Restyle changes the style of a cell, keeping its rune
func (s *Surface) Restyle(x, y int, style terminal.Style) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.cells[y*s.w+x].Style = style
}

// Cell returns the cell at x,y or a zero cell outside the surface
func (s *Surface) Cell(x, y int) terminal.Cell {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return terminal.Cell{}
	}
	return s.cells[y*s.w+x]
}

// Text renders text at position, truncating at the surface edge
func (s *Surface) Text(x, y int, text string, style terminal.Style) {
	if y < 0 || y >= s.h {
		return
	}
	col := x
	for _, r := range text {
		if col >= s.w {
			break
		}
		s.Put(col, y, r, style)
		col++
	}
}

// HLine draws a horizontal run of r
func (s *Surface) HLine(x, y, n int, r rune, style terminal.Style) {
	x, y, n, ok := s.Rect().ClipHLine(x, y, n)
	if !ok {
		return
	}
	for i := 0; i < n; i++ {
		s.cells[y*s.w+x+i] = terminal.Cell{Rune: r, Style: style}
	}
}

// VLine draws a vertical run of r
func (s *Surface) VLine(x, y, n int, r rune, style terminal.Style) {
	x, y, n, ok := s.Rect().ClipVLine(x, y, n)
	if !ok {
		return
	}
	for i := 0; i < n; i++ {
		s.cells[(y+i)*s.w+x] = terminal.Cell{Rune: r, Style: style}
	}
}

// FillRect fills a sub-rectangle with spaces
func (s *Surface) FillRect(r Rect, style terminal.Style) {
	r, ok := s.Rect().ClipRect(r)
	if !ok {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		s.HLine(r.X, y, r.W, ' ', style)
	}
}

// Fill fills the entire surface with spaces
func (s *Surface) Fill(style terminal.Style) {
	for i := range s.cells {
		s.cells[i] = terminal.Cell{Rune: ' ', Style: style}
	}
}

// Box draws a single-line border around the surface edge
func (s *Surface) Box(style terminal.Style) {
	if s.w < 2 || s.h < 2 {
		return
	}
	s.Put(0, 0, terminal.RuneULCorner, style)
	s.Put(s.w-1, 0, terminal.RuneURCorner, style)
	s.Put(0, s.h-1, terminal.RuneLLCorner, style)
	s.Put(s.w-1, s.h-1, terminal.RuneLRCorner, style)
	s.HLine(1, 0, s.w-2, terminal.RuneHLine, style)
	s.HLine(1, s.h-1, s.w-2, terminal.RuneHLine, style)
	s.VLine(0, 1, s.h-2, terminal.RuneVLine, style)
	s.VLine(s.w-1, 1, s.h-2, terminal.RuneVLine, style)
}

// Row returns the runes of row y as a string
func (s *Surface) Row(y int) string {
	if y < 0 || y >= s.h {
		return ""
	}
	runes := make([]rune, s.w)
	for x := 0; x < s.w; x++ {
		runes[x] = s.cells[y*s.w+x].Rune
	}
	return string(runes)
}
