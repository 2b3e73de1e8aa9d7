package view

import (
	"strings"

	"github.com/gridform/termfmt/cellwidth"
	"github.com/gridform/termfmt/escseq"
	"github.com/gridform/termfmt/pipeline"
	"github.com/gridform/termfmt/strwrap"
)

// listSeparator sits between a padded label and its value.
const listSeparator = " : "

// Entry is one label/value pair rendered by WriteList.
type Entry struct {
	Label string
	Value string
}

// WriteList renders entries as aligned "label : value" pairs: the
// label column is sized to the longest label (clipped so the value
// field keeps at least minFieldWidth cells), shorter labels are
// padded, longer ones head-clipped. Continuation lines of a wrapped
// value indent by the full label-and-separator width.
func WriteList(sink pipeline.LineSink, style pipeline.StyleConfig, cfg cellwidth.Config, locale string, entries []Entry, columns, minFieldWidth int) error {
	sepWidth := cellwidth.StringWidth(listSeparator, cfg)

	maxLabelLen := 0
	for _, e := range entries {
		if w := cellwidth.StringWidth(e.Label, cfg); w > maxLabelLen {
			maxLabelLen = w
		}
	}

	labelWidth := maxLabelLen
	if cap := columns - sepWidth - minFieldWidth; labelWidth > cap {
		labelWidth = cap
	}
	if labelWidth < 0 {
		labelWidth = 0
	}

	fieldWidth := columns - labelWidth - sepWidth
	if fieldWidth < 1 {
		fieldWidth = 1
	}

	continuationPad := strings.Repeat(" ", labelWidth+sepWidth)

	for _, e := range entries {
		label := padOrClipLabel(e.Label, labelWidth, cfg)
		if style != nil && style.Accent() != "" && strings.TrimSpace(e.Label) != "" {
			label = style.Accent() + label + escseq.Reset
		}

		lines := strwrap.GenerateLines(e.Value, fieldWidth, fieldWidth, locale, cfg)
		for i, vline := range lines {
			if escseq.HasEscapes(vline) && !strings.HasSuffix(vline, escseq.Reset) {
				vline += escseq.Reset
			}
			var out string
			if i == 0 {
				out = label + listSeparator + vline
			} else {
				out = continuationPad + vline
			}
			if style != nil && style.Rendering() == pipeline.PlainText {
				out = escseq.PlainText(out)
			}
			if err := sink.WriteLine(out); err != nil {
				return err
			}
		}
	}
	return nil
}

func padOrClipLabel(label string, width int, cfg cellwidth.Config) string {
	w := cellwidth.StringWidth(label, cfg)
	switch {
	case w > width:
		n := cellwidth.TruncateTail(label, 0, width, cfg)
		return label[:n]
	case w < width:
		return label + strings.Repeat(" ", width-w)
	default:
		return label
	}
}
