package tui

import "fmt"

// Signal is a control transfer returned by a run-loop instead of a choice
type Signal uint8

const (
	ReturnToPrevious Signal = iota + 1
	GotoMenuBar
	MoveLeft
	MoveRight
)

func (s Signal) String() string {
	switch s {
	case ReturnToPrevious:
		return "return-to-previous"
	case GotoMenuBar:
		return "goto-menubar"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	}
	return fmt.Sprintf("signal(%d)", uint8(s))
}

// Result is either a choice index or a Signal, never both
type Result struct {
	choice int
	signal Signal
}

// Choice returns a result selecting item n
func Choice(n int) Result {
	if n < 0 {
		panic(fmt.Sprintf("tui: negative choice %d", n))
	}
	return Result{choice: n}
}

// Transfer returns a result handing control elsewhere
func Transfer(sig Signal) Result {
	return Result{signal: sig}
}

// Chosen returns the choice index when the result is a choice
func (r Result) Chosen() (int, bool) {
	if r.signal != 0 {
		return 0, false
	}
	return r.choice, true
}

// Signal returns the transfer signal when the result is not a choice
func (r Result) Signal() (Signal, bool) {
	return r.signal, r.signal != 0
}

// Is reports whether the result is the transfer sig
func (r Result) Is(sig Signal) bool {
	return r.signal == sig
}

func (r Result) String() string {
	if r.signal != 0 {
		return r.signal.String()
	}
	return fmt.Sprintf("choice(%d)", r.choice)
}
