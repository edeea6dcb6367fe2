package tui

import "strings"

// RuneLen returns display width (rune count, not byte count)
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// PadRight pads string with spaces to width
func PadRight(s string, width int) string {
	n := RuneLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// RepeatRune returns a string of n repeated runes
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}

// ExpandTabs replaces each tab with size spaces
func ExpandTabs(s string, size int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", size))
}

// SliceRunes returns at most n runes of s starting at rune offset off
func SliceRunes(s string, off, n int) string {
	runes := []rune(s)
	if off >= len(runes) || n <= 0 {
		return ""
	}
	if off < 0 {
		off = 0
	}
	end := off + n
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[off:end])
}

// WrapText wraps text at word boundaries to fit width
// Returns slice of lines, each no longer than width
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	lineStart := 0
	lastSpace := -1

	for i := 0; i <= len(runes); i++ {
		if i == len(runes) {
			if lineStart < len(runes) {
				lines = append(lines, string(runes[lineStart:]))
			}
			break
		}

		if i-lineStart >= width {
			wrapAt := i
			if lastSpace > lineStart {
				wrapAt = lastSpace
			}
			lines = append(lines, string(runes[lineStart:wrapAt]))

			// Skip space at wrap point
			if runes[wrapAt] == ' ' {
				lineStart = wrapAt + 1
			} else {
				lineStart = wrapAt
			}
			lastSpace = -1
		}

		if runes[i] == ' ' && i >= lineStart {
			lastSpace = i
		}
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
