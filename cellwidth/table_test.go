package cellwidth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridform/termfmt/cellwidth"
	"github.com/gridform/termfmt/escseq"
)

func TestStringWidthASCII(t *testing.T) {
	assert.Equal(t, 5, cellwidth.StringWidth("hello", cellwidth.Default()))
}

func TestStringWidthCJK(t *testing.T) {
	assert.Equal(t, 4, cellwidth.StringWidth("日本", cellwidth.Default()))
}

func TestStringWidthSkipsEscapes(t *testing.T) {
	s := "\x1b[31mred\x1b[0m"
	assert.Equal(t, 3, cellwidth.StringWidth(s, cellwidth.Default()))
}

// P1: for strings with no escape sequences, width equals sum of per-rune
// widths, and width(s) == width(plainText(s)) for any s.
func TestP1CellAccounting(t *testing.T) {
	inputs := []string{"hello", "日本語", "Café", "plain \x1b[1mbold\x1b[0m text"}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			direct := cellwidth.StringWidth(s, cellwidth.Default())
			assert.Equal(t, cellwidth.StringWidth(escseq.PlainText(s), cellwidth.Default()), direct)
		})
	}

	noEscape := "hello world"
	sum := 0
	for _, r := range noEscape {
		sum += cellwidth.RuneWidth(r, cellwidth.Default())
	}
	assert.Equal(t, sum, cellwidth.StringWidth(noEscape, cellwidth.Default()))
}

func TestTruncateTailWidePlaceholder(t *testing.T) {
	// A single wide char can't fit in budget 1: caller substitutes "?".
	n := cellwidth.TruncateTail("日本語", 0, 1, cellwidth.Default())
	assert.Equal(t, 0, n)
}

func TestTruncateTailIncludesEscapeBytes(t *testing.T) {
	s := "\x1b[31mhi\x1b[0m"
	n := cellwidth.TruncateTail(s, 0, 2, cellwidth.Default())
	assert.Equal(t, len(s), n)
}

func TestHeadSplitMatchesTruncateTail(t *testing.T) {
	s := "hello world"
	assert.Equal(t, cellwidth.TruncateTail(s, 0, 5, cellwidth.Default()), cellwidth.HeadSplit(s, 5, cellwidth.Default()))
}

func TestTruncateWithSuffix(t *testing.T) {
	result := cellwidth.TruncateWithSuffix("hello world", 8, "...", cellwidth.Default())
	assert.LessOrEqual(t, cellwidth.StringWidth(result, cellwidth.Default()), 8)
	assert.True(t, strings.HasSuffix(result, "..."))
}

func TestTruncateWithSuffixPreservesColorReset(t *testing.T) {
	s := "\x1b[31mverylongtext\x1b[0m"
	result := cellwidth.TruncateWithSuffix(s, 4, "…", cellwidth.Default())
	if strings.Contains(result, "\x1b[31m") {
		assert.Contains(t, result, "\x1b[0m")
	}
}

func TestEastAsianAmbiguousWidth(t *testing.T) {
	narrow := cellwidth.Default()
	wide := cellwidth.Default().WithEastAsianWide()
	assert.Equal(t, 1, cellwidth.RuneWidth('±', narrow))
	assert.Equal(t, 2, cellwidth.RuneWidth('±', wide))
}

func TestClusterWidthEmojiModifier(t *testing.T) {
	// Emoji + skin tone modifier is one grapheme cluster, base emoji width.
	cluster := "👋🏻"
	assert.Equal(t, 2, cellwidth.ClusterWidth(cluster, cellwidth.Default()))
}

func TestClusterWidthCombining(t *testing.T) {
	// "e" + combining acute accent: one cluster, base rune width.
	cluster := "e\u0301"
	assert.Equal(t, 1, cellwidth.ClusterWidth(cluster, cellwidth.Default()))
}
