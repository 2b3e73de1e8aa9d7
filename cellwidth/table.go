// Package cellwidth measures the display-cell width of terminal text and
// finds cell-accurate split points, treating embedded ANSI/VT escape
// sequences as zero-width. It never confuses string length in code units
// with cell width — East Asian Wide/Fullwidth glyphs are 2 cells,
// combining marks and escape bytes are 0, everything else is 1.
package cellwidth

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"

	"github.com/gridform/termfmt/escseq"
)

// RuneWidth returns the display-cell width of a single rune: 0 for
// combining/zero-width/control, 2 for East Asian Wide/Fullwidth, else 1.
func RuneWidth(r rune, cfg Config) int {
	if isZeroWidth(r) {
		return 0
	}
	return uniwidth.RuneWidthWithOptions(r, uniwidth.WithEastAsianAmbiguous(cfg.EastAsianAmbiguous()))
}

// ClusterWidth returns the display-cell width of a single grapheme
// cluster (a user-perceived character that may span multiple runes, such
// as an emoji with a skin-tone modifier). Multi-rune clusters use the
// width of their base (first) rune only — modifiers, ZWJ continuations,
// and combining marks never add width — except a cluster whose second
// rune is a variation selector, which is measured as a whole.
func ClusterWidth(cluster string, cfg Config) int {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return 0
	}
	if len(runes) == 1 {
		return RuneWidth(runes[0], cfg)
	}

	first := runes[0]
	if isZeroWidth(first) {
		return 0
	}

	// Variation selectors (U+FE0E text, U+FE0F emoji presentation) change
	// the rendered width of the base character; let uniwidth decide on the
	// whole cluster rather than just the base rune.
	if second := runes[1]; second == 0xFE0E || second == 0xFE0F {
		return uniwidth.StringWidthWithOptions(cluster, uniwidth.WithEastAsianAmbiguous(cfg.EastAsianAmbiguous()))
	}

	return RuneWidth(first, cfg)
}

// containsComplexUnicode reports whether s contains sequences that
// require grapheme clustering to measure correctly: ZWJ continuations,
// variation selectors, emoji modifiers, or combining marks. Simple runes
// (including simple emoji) do not need clustering.
func containsComplexUnicode(s string) bool {
	for _, r := range s {
		switch {
		case r == 0x200D: // zero-width joiner
			return true
		case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
			return true
		case r >= 0x1F3FB && r <= 0x1F3FF: // emoji skin-tone modifiers
			return true
		case unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc):
			return true
		}
	}
	return false
}

func isZeroWidth(r rune) bool {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc, unicode.Cf) {
		return true
	}
	return r == '\u200B' || r == '\uFEFF'
}

// StringWidth returns the display-cell width of s, skipping every byte
// that belongs to a recognized escape sequence.
func StringWidth(s string, cfg Config) int {
	if s == "" {
		return 0
	}
	idx := escseq.Build(s)
	if len(idx.Ranges()) == 0 {
		return widthVisible(s, cfg)
	}

	width := 0
	pos := 0
	for _, r := range idx.Ranges() {
		width += widthVisible(s[pos:r.Offset], cfg)
		pos = r.Offset + r.Length
	}
	width += widthVisible(s[pos:], cfg)
	return width
}

// widthVisible measures a substring known to contain no escape sequences.
func widthVisible(s string, cfg Config) int {
	if s == "" {
		return 0
	}
	if !containsComplexUnicode(s) {
		return uniwidth.StringWidthWithOptions(s, uniwidth.WithEastAsianAmbiguous(cfg.EastAsianAmbiguous()))
	}
	width := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		width += ClusterWidth(gr.Str(), cfg)
	}
	return width
}

// TruncateTail returns the code-unit length of the largest prefix of
// s[startOffset:] whose display-cell width does not exceed maxCells.
// Escape sequences traversed within that prefix contribute 0 cells but
// their bytes ARE included in the returned count, so callers can slice
// s[startOffset : startOffset+n] and get a self-contained, correctly
// escaped prefix.
//
// If the next visible character is 2 cells wide and maxCells is 1,
// TruncateTail returns 0 — the caller must substitute a single-cell
// placeholder (canonically "?").
func TruncateTail(s string, startOffset, maxCells int, cfg Config) int {
	if maxCells <= 0 || startOffset >= len(s) {
		return 0
	}

	idx := escseq.Build(s)
	budget := maxCells
	pos := startOffset
	consumed := 0

	rangeAt := func(offset int) (escseq.Range, bool) {
		for _, r := range idx.Ranges() {
			if r.Offset == offset {
				return r, true
			}
		}
		return escseq.Range{}, false
	}

	for pos < len(s) {
		if r, ok := rangeAt(pos); ok {
			consumed += r.Length
			pos += r.Length
			continue
		}

		gr := uniseg.NewGraphemes(s[pos:])
		if !gr.Next() {
			break
		}
		cluster := gr.Str()
		// A grapheme cluster never runs into the start of an escape
		// sequence: uniseg always breaks before a control character such
		// as ESC, so the next loop turn sees the sequence at pos.
		w := ClusterWidth(cluster, cfg)
		if w > budget {
			if budget == 1 && w == 2 {
				// Caller substitutes "?"; signal no further visible
				// progress is possible here.
				return consumed
			}
			break
		}
		budget -= w
		consumed += len(cluster)
		pos += len(cluster)
	}

	return consumed
}

// HeadSplit is a synonym for TruncateTail(s, 0, maxCells, cfg).
func HeadSplit(s string, maxCells int, cfg Config) int {
	return TruncateTail(s, 0, maxCells, cfg)
}

// TruncateWithSuffix shortens s to fit within maxCells display cells,
// appending suffix (e.g. an ellipsis) when truncation actually occurs.
// It preserves escape sequences in the kept prefix and appends a RESET
// if the prefix left SGR state open, so the suffix never inherits
// truncated color state.
func TruncateWithSuffix(s string, maxCells int, suffix string, cfg Config) string {
	if maxCells <= 0 {
		return ""
	}

	total := StringWidth(s, cfg)
	suffixWidth := StringWidth(suffix, cfg)

	if total <= maxCells {
		return s
	}

	budget := maxCells - suffixWidth
	if budget < 0 {
		budget = 0
	}

	n := TruncateTail(s, 0, budget, cfg)
	prefix := s[:n]

	if escseq.HasEscapes(prefix) && !strings.HasSuffix(prefix, escseq.Reset) {
		prefix += escseq.Reset
	}

	return prefix + suffix
}
