// Package view implements the token tree, writers, traversal, and
// facade that turn resolved object values into terminal-ready lines:
// FormatValue tokens flow from ComplexTraversal (or a view's default
// payload) through ComplexWriter/ListWriter, which lean on strwrap and
// indent to do the actual wrapping and margin bookkeeping.
package view

import "github.com/gridform/termfmt/indent"

// Kind discriminates the FormatValue sum type.
type Kind int

const (
	KindText Kind = iota
	KindPropertyValue
	KindNewLine
	KindEntry
)

// FormatValue is one node of the token tree ComplexWriter consumes.
// Only the fields relevant to Kind are populated:
//   - KindText, KindPropertyValue: Text
//   - KindNewLine: (no fields)
//   - KindEntry: Frame (optional) and Children
type FormatValue struct {
	Kind     Kind
	Text     string
	Frame    *indent.FrameInfo
	Children []FormatValue
}

// Text creates a KindText token.
func Text(s string) FormatValue { return FormatValue{Kind: KindText, Text: s} }

// PropertyValue creates a KindPropertyValue token.
func PropertyValue(s string) FormatValue { return FormatValue{Kind: KindPropertyValue, Text: s} }

// NewLine creates a single KindNewLine token.
func NewLine() FormatValue { return FormatValue{Kind: KindNewLine} }

// Entry creates a KindEntry token. frame may be nil if this entry does
// not adjust margins.
func Entry(frame *indent.FrameInfo, children ...FormatValue) FormatValue {
	return FormatValue{Kind: KindEntry, Frame: frame, Children: children}
}
