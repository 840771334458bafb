package viewmodel

import (
	"fmt"
	"strings"
)

// String returns a string representation of the app state.
func (s AppState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateBrowsing:
		return "Browsing"
	case StateSearching:
		return "Searching"
	case StateHelp:
		return "Help"
	case StateError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// String returns the color class name, or "none".
func (c UserColor) String() string {
	if c == ColorNone {
		return "none"
	}
	return string(c)
}

// TruncateString truncates a string to maxLen runes with an ellipsis.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// SanitizeForDisplay removes potentially problematic characters for terminal display.
func SanitizeForDisplay(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}
