package strwrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridform/termfmt/cellwidth"
	"github.com/gridform/termfmt/strwrap"
)

func cells(s string) int {
	return cellwidth.StringWidth(s, cellwidth.Default())
}

func TestGenerateLinesRejectsNonPositiveWidth(t *testing.T) {
	assert.Nil(t, strwrap.GenerateLines("hello", 0, 5, "en", cellwidth.Default()))
	assert.Nil(t, strwrap.GenerateLines("hello", 5, 0, "en", cellwidth.Default()))
}

// S1: word-wrap never splits a word mid-way when it fits on a fresh line.
func TestGenerateLinesWordWrapBasic(t *testing.T) {
	lines := strwrap.GenerateLines("the quick brown fox", 10, 10, "en", cellwidth.Default())
	for _, l := range lines {
		assert.LessOrEqual(t, cells(l), 10)
	}
	assert.Equal(t, []string{"the quick", "brown fox"}, lines)
}

// P2: no produced line ever exceeds its budget.
func TestGenerateLinesRespectsWidthBudget(t *testing.T) {
	lines := strwrap.GenerateLines("supercalifragilisticexpialidocious", 5, 5, "en", cellwidth.Default())
	require.NotEmpty(t, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, cells(l), 5)
	}
}

// Non-word-wrap locales (e.g. ja) wrap at grapheme boundaries regardless
// of whitespace.
func TestGenerateLinesNoWordWrapLocale(t *testing.T) {
	lines := strwrap.GenerateLines("日本語のテスト", 4, 4, "ja", cellwidth.Default())
	for _, l := range lines {
		assert.LessOrEqual(t, cells(l), 4)
	}
}

// P3: color reopens on the continuation line inside the colored span and
// every colored line is closed with RESET; the RESET before "ij" ends the
// span, so the last line carries no color.
func TestGenerateLinesCarriesColorAcrossForcedSplit(t *testing.T) {
	lines := strwrap.GenerateLines("ab\x1b[31mcdefgh\x1b[0mij", 4, 4, "ja", cellwidth.Default())
	require.True(t, len(lines) > 1)
	assert.Equal(t, []string{"ab\x1b[31mcd\x1b[0m", "\x1b[31mefgh\x1b[0m", "ij"}, lines)
}

func TestGenerateLinesFirstLenDiffersFromFollowLen(t *testing.T) {
	lines := strwrap.GenerateLines("one two three four", 3, 10, "en", cellwidth.Default())
	require.NotEmpty(t, lines)
	assert.LessOrEqual(t, cells(lines[0]), 3)
	for _, l := range lines[1:] {
		assert.LessOrEqual(t, cells(l), 10)
	}
}

func TestGenerateLinesPreservesBlankLines(t *testing.T) {
	lines := strwrap.GenerateLines("a\n\nb", 5, 5, "en", cellwidth.Default())
	assert.Equal(t, []string{"a", "", "b"}, lines)
}
