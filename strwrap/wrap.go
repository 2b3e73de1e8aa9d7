package strwrap

import (
	"strings"
	"unicode/utf8"

	"github.com/gridform/termfmt/cellwidth"
)

// GenerateLines wraps s to fit within firstLen cells on its first output
// line and followLen cells on every line after, choosing word-wrap or
// grapheme-wrap per locale (see IsWordWrapLocale). Embedded SGR state is
// preserved across every break it introduces: a line that closes with
// open color gets RESET appended, and the next line reopens it.
//
// Either width being non-positive yields no output.
func GenerateLines(s string, firstLen, followLen int, locale string, cfg cellwidth.Config) []string {
	if firstLen <= 0 || followLen <= 0 {
		return nil
	}

	wordWrap := IsWordWrapLocale(locale)
	raw := SplitLines(s)

	var out []string
	first := true
	for _, rl := range raw {
		if rl == "" {
			out = append(out, "")
			first = false
			continue
		}

		var lines []string
		if wordWrap {
			lines = wrapWords(rl, firstLen, followLen, first, cfg)
		} else {
			lines = splitByWidth(rl, firstLen, followLen, first, cfg)
		}
		if len(lines) == 0 {
			lines = []string{""}
		}
		out = append(out, lines...)
		first = false
	}
	return out
}

// splitByWidth greedily takes the largest width-fitting prefix of s
// repeatedly (the grapheme-wrap / no-word-wrap strategy), carrying SGR
// state across each forced break. A visible character that alone can't
// fit the remaining budget (a 2-cell glyph against a 1-cell line) is
// replaced with "?" so progress is always made.
func splitByWidth(s string, firstWidth, followWidth int, isFirstLine bool, cfg cellwidth.Config) []string {
	if s == "" {
		return nil
	}

	var out []string
	var carry []string
	pos := 0
	first := isFirstLine

	for pos < len(s) {
		width := followWidth
		if first {
			width = firstWidth
		}

		n := cellwidth.TruncateTail(s, pos, width, cfg)
		var chunk string
		if n == 0 {
			_, size := utf8.DecodeRuneInString(s[pos:])
			chunk = "?"
			pos += size
		} else {
			chunk = s[pos : pos+n]
			pos += n
		}

		line := strings.Join(carry, "") + chunk
		carry = advanceSGRState(carry, chunk)
		line = closeIfOpen(line, carry)

		out = append(out, line)
		first = false
	}
	return out
}

// wrapWords implements the word-wrap strategy: words (as returned by
// GetWords) accumulate onto the current line until the next word would
// overflow it, at which point the line is flushed and wrapping
// continues. A word too wide to ever fit a fresh line falls back to
// splitByWidth for that word alone.
//
// A soft hyphen delimiter is invisible unless it exactly fills the
// remaining width of the line the word lands on, in which case a
// literal "-" is rendered and the line breaks there.
func wrapWords(rl string, firstWidth, followWidth int, isFirstLine bool, cfg cellwidth.Config) []string {
	words := GetWords(rl)

	var out []string
	var cur strings.Builder
	var curWidth int
	var carry []string
	first := isFirstLine

	capacity := func() int {
		if first {
			return firstWidth
		}
		return followWidth
	}

	flush := func() {
		// A trailing space/tab delimiter was tentatively appended in case
		// the next word still fit; dropped here since the line is ending
		// anyway. Soft hyphens never reach this trimmed since they're
		// resolved (rendered or dropped) by appendDelimiter before flush.
		content := strings.TrimRight(cur.String(), " \t")
		line := strings.Join(carry, "") + content
		carry = advanceSGRState(carry, content)
		line = closeIfOpen(line, carry)
		out = append(out, line)
		cur.Reset()
		curWidth = 0
		first = false
	}

	// placeOnFreshLine handles a word too wide to ever fit on one line:
	// flush whatever's pending, then grapheme-wrap the word by itself.
	// All but its last chunk become finished output lines; the last
	// chunk becomes the new current line so a trailing delimiter can
	// still share it.
	placeOnFreshLine := func(w Word) {
		if curWidth > 0 {
			flush()
		}
		sub := splitByWidth(w.Text, capacity(), followWidth, first, cfg)
		if len(sub) == 0 {
			return
		}
		out = append(out, sub[:len(sub)-1]...)
		cur.WriteString(sub[len(sub)-1])
		curWidth = cellwidth.StringWidth(sub[len(sub)-1], cfg)
		first = false
	}

	appendDelimiter := func(w Word) {
		switch w.Delimiter {
		case "":
			return
		case softHyphenStr:
			if capacity()-curWidth == 1 {
				cur.WriteString("-")
				curWidth++
				flush()
			}
		default:
			dw := cellwidth.StringWidth(w.Delimiter, cfg)
			if curWidth+dw <= capacity() {
				cur.WriteString(w.Delimiter)
				curWidth += dw
			}
		}
	}

	for _, w := range words {
		wordWidth := cellwidth.StringWidth(w.Text, cfg)
		budget := capacity()

		switch {
		case wordWidth > budget:
			placeOnFreshLine(w)
		case curWidth+wordWidth <= budget:
			cur.WriteString(w.Text)
			curWidth += wordWidth
		default:
			flush()
			cur.WriteString(w.Text)
			curWidth = wordWidth
		}
		appendDelimiter(w)
	}

	if curWidth > 0 || cur.Len() > 0 {
		flush()
	}
	return out
}

var softHyphenStr = string(softHyphen)
