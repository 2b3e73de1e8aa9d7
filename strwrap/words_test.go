package strwrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridform/termfmt/strwrap"
)

func TestGetWordsSpaceDelimited(t *testing.T) {
	words := strwrap.GetWords("hello world")
	assert.Equal(t, []strwrap.Word{
		{Text: "hello", Delimiter: " "},
		{Text: "world"},
	}, words)
}

func TestGetWordsSoftHyphenDelimiter(t *testing.T) {
	words := strwrap.GetWords("extra­ordinary")
	assert.Equal(t, []strwrap.Word{
		{Text: "extra", Delimiter: "­"},
		{Text: "ordinary"},
	}, words)
}

func TestGetWordsNonBreakingGluedIntoWord(t *testing.T) {
	words := strwrap.GetWords("well‑known thing")
	assert.Equal(t, []strwrap.Word{
		{Text: "well‑known", Delimiter: " "},
		{Text: "thing"},
	}, words)
}

func TestGetWordsClosesOpenColorOnFlush(t *testing.T) {
	words := strwrap.GetWords("\x1b[31mred word")
	assert.True(t, words[0].VTResetAppended)
	assert.Equal(t, "\x1b[31mred\x1b[0m", words[0].Text)
}

func TestGetWordsEmptyString(t *testing.T) {
	assert.Nil(t, strwrap.GetWords(""))
}
