package testing

import (
	"regexp"
	"strings"
)

// ansiRegex matches CSI sequences such as colors and cursor moves.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// ContainsInOrder reports whether every part appears in output, each after
// the end of the previous one.
func ContainsInOrder(output string, parts ...string) bool {
	rest := output
	for _, part := range parts {
		_, after, found := strings.Cut(rest, part)
		if !found {
			return false
		}
		rest = after
	}
	return true
}
