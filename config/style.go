// Package config provides a concrete, YAML-loadable StyleConfig for
// the rendering core, built with the same functional-options pattern
// the teacher's own terminal package uses for capability snapshots.
package config

import (
	"github.com/gridform/termfmt/pipeline"
)

// Style is the default pipeline.StyleConfig implementation: a plain
// struct of SGR strings taken as an immutable snapshot at render
// start.
type Style struct {
	accent            string
	errorAccent       string
	tableHeaderAccent string
	extensionAccents  map[string]string
	rendering         pipeline.OutputRendering
}

// Option configures a Style under construction.
type Option func(*Style)

// WithAccent sets the general-purpose accent SGR string (used for list
// labels and group headers).
func WithAccent(sgr string) Option {
	return func(s *Style) { s.accent = sgr }
}

// WithErrorAccent sets the SGR string wrapped around substituted error
// text.
func WithErrorAccent(sgr string) Option {
	return func(s *Style) { s.errorAccent = sgr }
}

// WithTableHeaderAccent sets the SGR string used for table header rows.
func WithTableHeaderAccent(sgr string) Option {
	return func(s *Style) { s.tableHeaderAccent = sgr }
}

// WithFileExtensionAccent registers an SGR string for a specific file
// extension (e.g. coloring *.go differently from *.md).
func WithFileExtensionAccent(extension, sgr string) Option {
	return func(s *Style) {
		if s.extensionAccents == nil {
			s.extensionAccents = make(map[string]string)
		}
		s.extensionAccents[extension] = sgr
	}
}

// WithRendering sets the OutputRendering mode.
func WithRendering(mode pipeline.OutputRendering) Option {
	return func(s *Style) { s.rendering = mode }
}

// NewStyle builds a Style from opts, defaulting to Automatic rendering
// with no accents configured.
func NewStyle(opts ...Option) *Style {
	s := &Style{rendering: pipeline.Automatic}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Style) Accent() string            { return s.accent }
func (s *Style) ErrorAccent() string       { return s.errorAccent }
func (s *Style) TableHeaderAccent() string { return s.tableHeaderAccent }

func (s *Style) FileExtensionAccent(extension string) string {
	return s.extensionAccents[extension]
}

func (s *Style) Rendering() pipeline.OutputRendering { return s.rendering }

var _ pipeline.StyleConfig = (*Style)(nil)
