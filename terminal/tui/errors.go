package tui

import "errors"

var (
	// ErrLayout reports a panel whose content area would be empty
	ErrLayout = errors.New("tui: content bounds not positive")

	// ErrDefaultButton reports an alert default index outside its buttons
	ErrDefaultButton = errors.New("tui: default button out of range")

	// ErrMenuItems reports a menu with no selectable item or adjacent separators
	ErrMenuItems = errors.New("tui: malformed menu items")

	// ErrContentUnavailable reports a text source that could not be read
	ErrContentUnavailable = errors.New("tui: content unavailable")

	// ErrTheme reports an undecodable theme
	ErrTheme = errors.New("tui: invalid theme")
)
