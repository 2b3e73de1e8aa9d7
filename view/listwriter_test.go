package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridform/termfmt/cellwidth"
	"github.com/gridform/termfmt/config"
	"github.com/gridform/termfmt/internal/testsink"
	"github.com/gridform/termfmt/view"
)

func TestWriteListAlignsLabels(t *testing.T) {
	sink := testsink.New(40)
	entries := []view.Entry{
		{Label: "Name", Value: "alice"},
		{Label: "Occupation", Value: "engineer"},
	}
	err := view.WriteList(sink, config.NewStyle(), cellwidth.Default(), "en", entries, 40, 10)
	require.NoError(t, err)
	require.Len(t, sink.Lines, 2)
	assert.Equal(t, "Name       : alice", sink.Lines[0])
	assert.Equal(t, "Occupation : engineer", sink.Lines[1])
}

func TestWriteListWrapsValueWithContinuationIndent(t *testing.T) {
	sink := testsink.New(20)
	entries := []view.Entry{
		{Label: "Bio", Value: "a long description that wraps across lines"},
	}
	err := view.WriteList(sink, config.NewStyle(), cellwidth.Default(), "en", entries, 20, 5)
	require.NoError(t, err)
	require.Greater(t, len(sink.Lines), 1)
	for _, l := range sink.Lines[1:] {
		assert.True(t, len(l) >= len("Bio : ") || l == "")
	}
}

func TestWriteListClipsOverlongLabel(t *testing.T) {
	sink := testsink.New(15)
	entries := []view.Entry{
		{Label: "AVeryLongLabelName", Value: "v"},
	}
	err := view.WriteList(sink, config.NewStyle(), cellwidth.Default(), "en", entries, 15, 5)
	require.NoError(t, err)
	require.Len(t, sink.Lines, 1)
	assert.LessOrEqual(t, cellwidth.StringWidth(sink.Lines[0], cellwidth.Default()), 15+3)
}
