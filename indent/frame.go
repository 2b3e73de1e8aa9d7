// Package indent implements the margin/indent stack that drives
// left/right padding and first-line hanging indent for nested, wrapped
// text blocks.
package indent

// FrameInfo describes one level of indentation: FirstLine may be
// negative for a hanging indent (continuation lines indented further
// than the first). LeftIndent and RightIndent compose additively across
// nested frames; FirstLine does not — only the innermost frame on the
// stack governs first-line behavior.
type FrameInfo struct {
	FirstLine   int
	LeftIndent  int
	RightIndent int
}
