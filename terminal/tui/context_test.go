package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/textmode/terminal"
)

// newTestContext returns a context over a memory terminal with instant pauses
func newTestContext(t *testing.T, w, h int) (*Context, *terminal.Memory) {
	t.Helper()
	mem := terminal.NewMemory(w, h)
	ctx, err := Init(mem, Options{Pause: time.Nanosecond})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(ctx.Close)
	return ctx, mem
}

// rowRunes returns row y of s as runes so box characters index as one column
func rowRunes(s *Surface, y int) []rune {
	return []rune(s.Row(y))
}

type failingTerminal struct {
	*terminal.Memory
}

func (failingTerminal) Init() error {
	return errors.New("no tty")
}

type clickCounter struct {
	n int
}

func (c *clickCounter) Click() {
	c.n++
}

func TestInitErrors(t *testing.T) {
	if _, err := Init(failingTerminal{terminal.NewMemory(10, 10)}, Options{}); err == nil {
		t.Error("Expected init failure to propagate")
	}

	mem := terminal.NewMemory(0, 0)
	_, err := Init(mem, Options{})
	if !errors.Is(err, ErrLayout) {
		t.Errorf("Expected ErrLayout, got %v", err)
	}
	if mem.Active() {
		t.Error("Expected terminal finalised after failed init")
	}
}

func TestContextDefaults(t *testing.T) {
	mem := terminal.NewMemory(80, 24)
	ctx, err := Init(mem, Options{})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if ctx.pause != DefaultPause {
		t.Errorf("Expected default pause, got %v", ctx.pause)
	}
	if ctx.TabSize() != DefaultTabSize {
		t.Errorf("Expected tab size %d, got %d", DefaultTabSize, ctx.TabSize())
	}
	if ctx.Logger() == nil {
		t.Error("Expected a null logger")
	}
	if w, h := ctx.Size(); w != 80 || h != 24 {
		t.Errorf("Expected 80x24, got %dx%d", w, h)
	}
	if _, ok := ctx.Hotkey(terminal.RuneEvent('x')); ok {
		t.Error("Expected no hotkey handling without a hook")
	}
	if !mem.Active() {
		t.Error("Expected terminal active after Init")
	}

	ctx.Close()
	ctx.Close()
	if mem.Active() {
		t.Error("Expected terminal finalised after Close")
	}
}

func TestCentering(t *testing.T) {
	ctx, _ := newTestContext(t, 80, 24)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"x screen", ctx.CenterX(26, 0), 27},
		{"x area", ctx.CenterX(8, 20), 6},
		{"x odd", ctx.CenterX(7, 20), 7},
		{"y screen", ctx.CenterY(8, 0), 5},
		{"y area", ctx.CenterY(4, 14), 3},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}
}

func TestReadKeyRefreshes(t *testing.T) {
	ctx, mem := newTestContext(t, 20, 5)
	mem.Push(terminal.KeyEvent(terminal.KeyDown))

	ev := ctx.ReadKey()
	if ev.Key != terminal.KeyDown {
		t.Errorf("Expected KeyDown, got %v", ev)
	}
	if mem.Shows() != 1 {
		t.Errorf("Expected 1 show, got %d", mem.Shows())
	}

	ctx.Pause()
	if mem.Shows() != 2 {
		t.Errorf("Expected pause to refresh, got %d shows", mem.Shows())
	}
}

func TestClickFeedback(t *testing.T) {
	mem := terminal.NewMemory(20, 5)
	fb := &clickCounter{}
	ctx, err := Init(mem, Options{Feedback: fb, Pause: time.Nanosecond})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer ctx.Close()

	ctx.Click()
	if fb.n != 1 {
		t.Errorf("Expected 1 click, got %d", fb.n)
	}
}
