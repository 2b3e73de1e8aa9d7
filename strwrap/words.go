package strwrap

import (
	"strings"
	"unicode/utf8"

	"github.com/gridform/termfmt/escseq"
)

// Word is one (text, delimiter) pair produced by GetWords: Text is the
// run of non-breaking content, and Delimiter is the breakable character
// that followed it (a space, a tab, or a soft hyphen), or "" for the
// final word in the string.
//
// VTResetAppended reports whether Text had an implicit RESET appended to
// close SGR state that was still open at the end of the run.
type Word struct {
	Text            string
	Delimiter       string
	VTResetAppended bool
}

const (
	softHyphen        = '\u00AD'
	nonBreakingHyphen = '\u2011'
	nonBreakingSpace  = '\u00A0'
)

// GetWords splits s into words at space, tab, and soft-hyphen boundaries.
// Non-breaking hyphen and non-breaking space are glued into the
// surrounding word instead of ending it. Escape sequences travel with
// whichever word is accumulating when they're encountered; a word whose
// accumulated SGR state is still open when it's flushed gets RESET
// appended to its Text, and VTResetAppended is set. That open state is
// then reopened at the start of the next word.
func GetWords(s string) []Word {
	if s == "" {
		return nil
	}

	idx := escseq.Build(s)

	var words []Word
	var buf strings.Builder
	var open []string

	flush := func(delim string) {
		text := buf.String()
		reset := false
		if len(open) > 0 && !strings.HasSuffix(text, escseq.Reset) {
			text += escseq.Reset
			reset = true
		}
		words = append(words, Word{Text: text, Delimiter: delim, VTResetAppended: reset})
		buf.Reset()
		for _, seq := range open {
			buf.WriteString(seq)
		}
	}

	i := 0
	for i < len(s) {
		if r, ok := idx.At(i); ok {
			seq := s[i : i+r.Length]
			buf.WriteString(seq)
			if strings.HasSuffix(seq, "m") {
				if seq == escseq.Reset {
					open = nil
				} else {
					open = append(open, seq)
				}
			}
			i += r.Length
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case ' ', '\t':
			flush(string(r))
		case softHyphen:
			flush(string(r))
		case nonBreakingHyphen, nonBreakingSpace:
			buf.WriteRune(r)
		default:
			buf.WriteRune(r)
		}
		i += size
	}

	if buf.Len() > 0 || len(words) == 0 {
		text := buf.String()
		if escseq.PlainText(text) == "" {
			words = append(words, Word{})
		} else {
			reset := false
			if len(open) > 0 && !strings.HasSuffix(text, escseq.Reset) {
				text += escseq.Reset
				reset = true
			}
			words = append(words, Word{Text: text, VTResetAppended: reset})
		}
	}

	return words
}
