package strwrap

import (
	"strings"

	"github.com/gridform/termfmt/escseq"
)

// advanceSGRState scans chunk (a substring known to contain zero or more
// escape sequences) and returns the SGR state that should carry into the
// next emitted segment, starting from carry (the state already open
// before chunk). A RESET anywhere in chunk clears the carried state;
// every other SGR sequence is appended to it. Non-SGR escape sequences
// (CSI private modes, OSC-8) do not affect graphic-state carry.
func advanceSGRState(carry []string, chunk string) []string {
	state := append([]string(nil), carry...)
	idx := escseq.Build(chunk)
	for _, r := range idx.Ranges() {
		seq := chunk[r.Offset : r.Offset+r.Length]
		if !strings.HasSuffix(seq, "m") {
			continue // CSI private mode or similar, not graphic state
		}
		if seq == escseq.Reset {
			state = nil
			continue
		}
		state = append(state, seq)
	}
	return state
}

// closeIfOpen appends RESET to line if state is non-empty and line does
// not already end with RESET.
func closeIfOpen(line string, state []string) string {
	if len(state) > 0 && !strings.HasSuffix(line, escseq.Reset) {
		return line + escseq.Reset
	}
	return line
}
