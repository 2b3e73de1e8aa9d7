package view

import (
	"strings"

	"github.com/gridform/termfmt/cellwidth"
	"github.com/gridform/termfmt/escseq"
	"github.com/gridform/termfmt/indent"
	"github.com/gridform/termfmt/pipeline"
	"github.com/gridform/termfmt/strwrap"
)

// maxDepth bounds ComplexWriter's recursion into nested Entry tokens,
// guarding against cyclic or maliciously deep input.
const maxDepth = 50

// ComplexWriter interprets a FormatValue tree against an indent stack
// and the string-wrap engine, emitting wrapped, padded lines to a
// sink. One instance serves one object's worth of tokens; it is not
// safe for concurrent use, and its buffer must not be shared across
// instances.
type ComplexWriter struct {
	sink   pipeline.LineSink
	style  pipeline.StyleConfig
	locale string
	cfg    cellwidth.Config

	stack indent.Stack
	buf   strings.Builder
}

// NewComplexWriter builds a writer that emits to sink, styled per
// style, wrapping with locale's word-wrap/grapheme-wrap rule.
func NewComplexWriter(sink pipeline.LineSink, style pipeline.StyleConfig, locale string, cfg cellwidth.Config) *ComplexWriter {
	return &ComplexWriter{sink: sink, style: style, locale: locale, cfg: cfg}
}

// Process walks tokens in tree-pre-order, emitting lines as it goes.
// Any content left in the buffer once the whole tree has been
// processed is flushed as a final paragraph.
func (w *ComplexWriter) Process(tokens []FormatValue) error {
	if err := w.process(tokens, 0); err != nil {
		return err
	}
	return w.flush()
}

func (w *ComplexWriter) process(tokens []FormatValue, depth int) error {
	if depth > maxDepth {
		return nil // depth exceeded: silent, per error-handling design
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case KindText, KindPropertyValue:
			w.buf.WriteString(tok.Text)
		case KindNewLine:
			if err := w.flush(); err != nil {
				return err
			}
		case KindEntry:
			if err := w.processEntry(tok, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *ComplexWriter) processEntry(tok FormatValue, depth int) error {
	if tok.Frame == nil {
		return w.process(tok.Children, depth+1)
	}
	h := w.stack.Push(*tok.Frame)
	defer w.stack.Pop(h)
	if err := w.process(tok.Children, depth+1); err != nil {
		return err
	}
	// Text the children left in the buffer is laid out under this
	// frame's margins before the frame is popped.
	return w.flush()
}

// flush wraps and emits the buffer's current contents as a paragraph,
// then clears it, per the IndentFrameStack validity policy and the
// ComplexWriter flush algorithm.
func (w *ComplexWriter) flush() error {
	content := w.buf.String()
	w.buf.Reset()
	if content == "" {
		return nil
	}

	columns := w.sink.DisplayCells()
	usefulWidth, firstLine := w.stack.UsefulWidth(columns)
	if usefulWidth <= 0 {
		return nil
	}

	firstLineWidth := usefulWidth - maxInt(firstLine, 0)
	followWidth := usefulWidth + minInt(firstLine, 0)

	lines := strwrap.GenerateLines(content, firstLineWidth, followWidth, w.locale, w.cfg)

	left := w.stack.Left()
	firstPad := strings.Repeat(" ", left+maxInt(firstLine, 0))
	followPad := strings.Repeat(" ", left-minInt(firstLine, 0))

	for i, line := range lines {
		pad := followPad
		if i == 0 {
			pad = firstPad
		}
		rendered := pad + line
		if w.style != nil && w.style.Rendering() == pipeline.PlainText {
			rendered = escseq.PlainText(rendered)
		}
		if err := w.sink.WriteLine(rendered); err != nil {
			return err
		}
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
