package tui

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/lixenwraith/textmode/terminal"
)

// Handle addresses a panel in the stack arena
type Handle int

// NoHandle is the handle of a panel that was never registered
const NoHandle Handle = -1

// Panel is anything the stack can order, draw and run
type Panel interface {
	// Base returns the View the panel is built on
	Base() *View
	// Draw repaints the whole panel surface
	Draw()
	GainFocus()
	LoseFocus()
	DrawCursor()
	// Run consumes keys until the panel hands control back
	Run() Result
}

// Stack owns every registered panel and the front-to-back order of the visible ones.
// The front panel is the only one that may hold focus.
type Stack struct {
	arena  []Panel
	order  []Handle // front first
	width  int
	height int
	buf    []terminal.Cell
	log    hclog.Logger
}

func newStack(width, height int, log hclog.Logger) *Stack {
	return &Stack{
		width:  width,
		height: height,
		buf:    make([]terminal.Cell, width*height),
		log:    log,
	}
}

// Register adds p to the arena. A panel whose base already holds a handle
// replaces the occupant of that slot, so wrappers can adopt their View.
func (s *Stack) Register(p Panel) Handle {
	v := p.Base()
	if v.handle != NoHandle && int(v.handle) < len(s.arena) {
		s.arena[v.handle] = p
		return v.handle
	}
	s.arena = append(s.arena, p)
	v.handle = Handle(len(s.arena) - 1)
	return v.handle
}

// Resolve returns the panel behind h
func (s *Stack) Resolve(h Handle) (Panel, bool) {
	if h < 0 || int(h) >= len(s.arena) || s.arena[h] == nil {
		return nil, false
	}
	return s.arena[h], true
}

func (s *Stack) mustResolve(h Handle) Panel {
	p, ok := s.Resolve(h)
	if !ok {
		panic(fmt.Sprintf("tui: unknown panel handle %d", h))
	}
	return p
}

// Release hides the panel and frees its slot; the handle no longer resolves
func (s *Stack) Release(h Handle) {
	if _, ok := s.Resolve(h); !ok {
		return
	}
	s.Hide(h)
	s.arena[h].Base().handle = NoHandle
	s.arena[h] = nil
}

func (s *Stack) index(h Handle) int {
	return slices.Index(s.order, h)
}

// Attached reports whether h is in the visible ordering
func (s *Stack) Attached(h Handle) bool {
	return s.index(h) >= 0
}

// Len returns the number of visible panels
func (s *Stack) Len() int {
	return len(s.order)
}

// Top returns the front panel
func (s *Stack) Top() (Panel, bool) {
	if len(s.order) == 0 {
		return nil, false
	}
	return s.arena[s.order[0]], true
}

// Order returns the visible handles, front first
func (s *Stack) Order() []Handle {
	return slices.Clone(s.order)
}

// Attach puts h in front and gives it focus; an attached panel is raised instead
func (s *Stack) Attach(h Handle) {
	if s.Attached(h) {
		s.Raise(h)
		return
	}
	p := s.mustResolve(h)
	p.Draw()
	s.blur()
	s.order = slices.Insert(s.order, 0, h)
	s.log.Debug("attach", "panel", h, "visible", len(s.order))
	s.focus()
}

// Hide removes h from the ordering without destroying it
func (s *Stack) Hide(h Handle) {
	i := s.index(h)
	if i < 0 {
		return
	}
	p := s.arena[h]
	if p.Base().focus {
		p.LoseFocus()
	}
	s.order = slices.Delete(s.order, i, i+1)
	s.log.Debug("hide", "panel", h, "visible", len(s.order))
	if i == 0 {
		s.focus()
	}
}

// Raise moves h to front and gives it focus
func (s *Stack) Raise(h Handle) {
	i := s.index(h)
	if i < 0 {
		s.Attach(h)
		return
	}
	p := s.arena[h]
	p.Draw()
	if i > 0 {
		s.blur()
		s.order = slices.Delete(s.order, i, i+1)
		s.order = slices.Insert(s.order, 0, h)
		s.log.Debug("raise", "panel", h)
	}
	s.focus()
}

// Lower gives up focus, sends h to the back and focuses the new front
func (s *Stack) Lower(h Handle) {
	i := s.index(h)
	if i < 0 {
		return
	}
	p := s.arena[h]
	p.Draw()
	if p.Base().focus {
		p.LoseFocus()
	}
	s.order = slices.Delete(s.order, i, i+1)
	s.order = append(s.order, h)
	s.log.Debug("lower", "panel", h)
	s.focus()
}

// blur takes focus from the current front
func (s *Stack) blur() {
	if p, ok := s.Top(); ok && p.Base().focus {
		p.LoseFocus()
	}
}

// focus gives focus to the current front
func (s *Stack) focus() {
	if p, ok := s.Top(); ok && !p.Base().focus {
		p.GainFocus()
	}
}

// Composite paints the visible panels back to front into term, each followed
// by its drop shadow, clipped to the screen
func (s *Stack) Composite(term terminal.Terminal) {
	for i := range s.buf {
		s.buf[i] = terminal.Cell{Rune: ' '}
	}
	for i := len(s.order) - 1; i >= 0; i-- {
		v := s.arena[s.order[i]].Base()
		s.blit(v)
		if v.shadow {
			s.dropShadow(v.frame, v.colors.Style(RoleShadow))
		}
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			term.SetCell(x, y, s.buf[y*s.width+x])
		}
	}
}

func (s *Stack) blit(v *View) {
	f := v.frame
	for y := 0; y < f.H; y++ {
		sy := f.Y + y
		if sy < 0 || sy >= s.height {
			continue
		}
		for x := 0; x < f.W; x++ {
			sx := f.X + x
			if sx < 0 || sx >= s.width {
				continue
			}
			s.buf[sy*s.width+sx] = v.surface.Cell(x, y)
		}
	}
}

// dropShadow recolors two columns right of f and one row below it
func (s *Stack) dropShadow(f Rect, style terminal.Style) {
	for y := f.Y + 1; y <= f.Bottom(); y++ {
		s.shade(f.Right(), y, style)
		s.shade(f.Right()+1, y, style)
	}
	for x := f.X + 2; x < f.Right(); x++ {
		s.shade(x, f.Bottom(), style)
	}
}

func (s *Stack) shade(x, y int, style terminal.Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.buf[y*s.width+x].Style = style
}
