package terminal

import "strings"

// Memory is an in-process Terminal with a scripted key queue.
// PollEvent panics once the queue is drained, so a test that reads more keys
// than it scripted fails loudly instead of blocking. After Fini it returns
// KeyClosed like a finalized screen.
type Memory struct {
	width  int
	height int
	staged []Cell
	shown  []Cell
	input  []Event
	shows  int
	active bool
}

// NewMemory creates a blank width x height memory terminal
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:  width,
		height: height,
		staged: make([]Cell, width*height),
		shown:  make([]Cell, width*height),
	}
	for i := range m.staged {
		m.staged[i] = Cell{Rune: ' '}
		m.shown[i] = Cell{Rune: ' '}
	}
	return m
}

// Push appends events to the input queue
func (m *Memory) Push(evs ...Event) {
	m.input = append(m.input, evs...)
}

// PushRunes appends one rune event per character of s
func (m *Memory) PushRunes(s string) {
	for _, r := range s {
		m.input = append(m.input, RuneEvent(r))
	}
}

// Pending returns the number of unread events
func (m *Memory) Pending() int {
	return len(m.input)
}

func (m *Memory) Init() error {
	m.active = true
	return nil
}

func (m *Memory) Fini() {
	m.active = false
}

// Active reports whether Init has been called without a matching Fini
func (m *Memory) Active() bool {
	return m.active
}

func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

func (m *Memory) SetCell(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.staged[y*m.width+x] = c
}

func (m *Memory) Show() {
	copy(m.shown, m.staged)
	m.shows++
}

// Shows returns how many times Show was called
func (m *Memory) Shows() int {
	return m.shows
}

func (m *Memory) PollEvent() Event {
	if !m.active {
		return Event{Key: KeyClosed}
	}
	if len(m.input) == 0 {
		panic("terminal: memory input exhausted")
	}
	ev := m.input[0]
	m.input = m.input[1:]
	return ev
}

// Cell returns the shown cell at x,y
func (m *Memory) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return Cell{}
	}
	return m.shown[y*m.width+x]
}

// Row returns the shown runes of row y as a string
func (m *Memory) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		r := m.shown[y*m.width+x].Rune
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}
