// Package terminal is the screen and keyboard boundary of the toolkit.
//
// It defines a closed key set, a small color and attribute model, and the
// Terminal interface the windowing layer draws through. Two implementations
// are provided:
//   - Tcell wraps a tcell.Screen for real terminals and simulation screens
//   - Memory is an in-process cell grid with a scripted key queue for tests
//
// Key decoding, terminfo handling and resize detection are delegated to tcell.
package terminal
