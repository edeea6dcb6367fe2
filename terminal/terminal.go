package terminal

// Line drawing runes
const (
	RuneHLine    = '─'
	RuneVLine    = '│'
	RuneULCorner = '┌'
	RuneURCorner = '┐'
	RuneLLCorner = '└'
	RuneLRCorner = '┘'
	RuneBlock    = '▒'
)

// Terminal provides screen output and blocking key input
type Terminal interface {
	// Init enters the alternate screen and starts input; must be called first
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// SetCell stages one cell; out-of-range coordinates are ignored
	SetCell(x, y int, c Cell)

	// Show makes staged cells visible
	Show()

	// PollEvent blocks until the next key press
	PollEvent() Event
}
