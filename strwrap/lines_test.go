package strwrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridform/termfmt/strwrap"
)

func TestSplitLinesPlain(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, strwrap.SplitLines("a\nb\nc"))
}

func TestSplitLinesDropsCR(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, strwrap.SplitLines("a\r\nb"))
}

func TestSplitLinesReopensColorAcrossBreak(t *testing.T) {
	lines := strwrap.SplitLines("\x1b[31mred\nstill red\x1b[0m")
	assert.Len(t, lines, 2)
	assert.Equal(t, "\x1b[31mred\x1b[0m", lines[0])
	assert.Equal(t, "\x1b[31mstill red\x1b[0m", lines[1])
}

func TestSplitLinesEscapeOnlyLineIsEmpty(t *testing.T) {
	lines := strwrap.SplitLines("a\n\x1b[31m\x1b[0m\nb")
	assert.Equal(t, []string{"a", "", "b"}, lines)
}
