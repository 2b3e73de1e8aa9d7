// Package strwrap splits, wraps, and truncates escape-decorated strings
// at line and word boundaries without losing or duplicating SGR state
// across the breaks it introduces.
package strwrap

import (
	"strings"

	"github.com/gridform/termfmt/escseq"
)

// SplitLines splits s on "\n", dropping a trailing "\r" from each piece.
// SGR state that is still open at the end of a piece is closed with
// RESET before the piece is emitted, and re-opened at the start of the
// next piece, so every returned line is independently well-formed. A
// piece that consists solely of escape sequences (no visible content)
// is emitted as the empty string.
func SplitLines(s string) []string {
	parts := strings.Split(s, "\n")
	out := make([]string, len(parts))

	var carry []string
	for i, p := range parts {
		p = strings.TrimSuffix(p, "\r")
		prefix := strings.Join(carry, "")
		content := prefix + p

		carry = advanceSGRState(carry, p)
		content = closeIfOpen(content, carry)

		if escseq.PlainText(content) == "" {
			content = ""
		}
		out[i] = content
	}
	return out
}
