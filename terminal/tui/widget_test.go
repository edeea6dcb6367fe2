package tui

import (
	"testing"

	"github.com/lixenwraith/textmode/terminal"
)

type write struct {
	x, y int
	s    string
}

// fakeContainer records what widgets draw through it
type fakeContainer struct {
	ctx     *Context
	writes  []write
	redraw  func()
	redraws int
	pauses  int
}

func (c *fakeContainer) WriteAt(x, y int, s string, _ terminal.Style) {
	c.writes = append(c.writes, write{x, y, s})
}

func (c *fakeContainer) Redraw() {
	c.redraws++
	if c.redraw != nil {
		c.redraw()
	}
}

func (c *fakeContainer) Pause() {
	c.pauses++
}

func (c *fakeContainer) Context() *Context {
	return c.ctx
}

func TestButtonPush(t *testing.T) {
	ctx, _ := newTestContext(t, 20, 5)
	fb := &clickCounter{}
	ctx.feedback = fb
	fc := &fakeContainer{ctx: ctx}
	b := NewButton(fc, 3, 1, DefaultColors, "<Y>es")
	fc.redraw = b.Draw

	b.GainFocus()
	fc.writes = nil
	b.Push()

	if fc.redraws != 2 || fc.pauses != 2 || fb.n != 1 {
		t.Errorf("Expected 2 redraws, 2 pauses, 1 click, got %d %d %d", fc.redraws, fc.pauses, fb.n)
	}
	if len(fc.writes) != 4 {
		t.Fatalf("Expected 4 writes, got %v", fc.writes)
	}
	if fc.writes[0].x != 4 || fc.writes[2].x != 3 {
		t.Errorf("Expected shifted then restored, got %v", fc.writes)
	}
	if fc.writes[2].s != ">  Yes  <" {
		t.Errorf("Expected focused label, got %q", fc.writes[2].s)
	}
	if w := fc.writes[3]; w.x != 6 || w.s != "Y" {
		t.Errorf("Expected hotkey at 6, got %+v", w)
	}
}

func TestButtonPushWithoutFocus(t *testing.T) {
	ctx, _ := newTestContext(t, 20, 5)
	b := NewButton(&fakeContainer{ctx: ctx}, 0, 0, DefaultColors, "<N>o")
	defer func() {
		if recover() == nil {
			t.Error("Expected panic pushing an unfocused button")
		}
	}()
	b.Push()
}

func TestButtonDraw(t *testing.T) {
	fc := &fakeContainer{}
	b := NewButton(fc, 0, 0, DefaultColors, "Plain")
	b.Draw()
	if len(fc.writes) != 1 || fc.writes[0].s != "  Plain  " {
		t.Errorf("Expected a single padded write, got %v", fc.writes)
	}
	if !b.Hotkey().IsZero() {
		t.Error("Expected no hotkey")
	}

	fc.writes = nil
	b.GainFocus()
	if len(fc.writes) != 1 || fc.writes[0].s != "> Plain <" {
		t.Errorf("Expected focus to redraw the button, got %v", fc.writes)
	}
}
