package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridform/termfmt/cellwidth"
	"github.com/gridform/termfmt/config"
	"github.com/gridform/termfmt/indent"
	"github.com/gridform/termfmt/internal/testsink"
	"github.com/gridform/termfmt/view"
)

func TestComplexWriterFlushesOnNewLine(t *testing.T) {
	sink := testsink.New(80)
	w := view.NewComplexWriter(sink, config.NewStyle(), "en", cellwidth.Default())

	err := w.Process([]view.FormatValue{
		view.Text("hello "),
		view.Text("world"),
		view.NewLine(),
		view.Text("second paragraph"),
	})
	require.NoError(t, err)
	require.Len(t, sink.Lines, 2)
	assert.Equal(t, "hello world", sink.Lines[0])
	assert.Equal(t, "second paragraph", sink.Lines[1])
}

func TestComplexWriterAppliesFrameMargins(t *testing.T) {
	sink := testsink.New(80)
	w := view.NewComplexWriter(sink, config.NewStyle(), "en", cellwidth.Default())

	err := w.Process([]view.FormatValue{
		view.Entry(&indent.FrameInfo{LeftIndent: 4}, view.Text("indented")),
	})
	require.NoError(t, err)
	require.Len(t, sink.Lines, 1)
	assert.Equal(t, "    indented", sink.Lines[0])
}

func TestComplexWriterWrapsLongParagraphs(t *testing.T) {
	sink := testsink.New(10)
	w := view.NewComplexWriter(sink, config.NewStyle(), "en", cellwidth.Default())

	err := w.Process([]view.FormatValue{
		view.Text("the quick brown fox"),
	})
	require.NoError(t, err)
	for _, l := range sink.Lines {
		assert.LessOrEqual(t, cellwidth.StringWidth(l, cellwidth.Default()), 10)
	}
}

func TestComplexWriterDegenerateWidthEmitsNothing(t *testing.T) {
	sink := testsink.New(2)
	w := view.NewComplexWriter(sink, config.NewStyle(), "en", cellwidth.Default())

	err := w.Process([]view.FormatValue{
		view.Entry(&indent.FrameInfo{LeftIndent: 5}, view.Text("too indented")),
	})
	require.NoError(t, err)
	assert.Empty(t, sink.Lines)
}
