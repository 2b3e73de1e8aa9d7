package strwrap

import "strings"

// TruncateAtNewline returns s up to (not including) its first "\n" or
// "\r", with an ellipsis appended to signal the cut. Strings with no
// newline are returned unchanged.
func TruncateAtNewline(s string) string {
	idx := strings.IndexAny(s, "\n\r")
	if idx < 0 {
		return s
	}
	return s[:idx] + "…"
}
