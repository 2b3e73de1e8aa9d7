// Package pipeline declares the external collaborator contracts the
// rendering core consumes: the object source, expression evaluator,
// view/control database, string table, style configuration, and line
// sink. The core never implements these itself — it is handed concrete
// instances by the caller (see formatdb and config for reference
// implementations, and internal/testsink for a recording stub used in
// tests).
package pipeline

import "context"

// ObjectSource delivers one object at a time out of the upstream
// object pipeline, along with enough reflective metadata to resolve a
// view for it.
type ObjectSource interface {
	// TypeNames returns the object's type names, most-specific first.
	TypeNames() []string
	// Property looks up a named property on the object. ok is false if
	// the property does not exist.
	Property(name string) (value any, ok bool)
	// Enumerate returns the object's elements if it is enumerable, or
	// ok=false if it is a scalar.
	Enumerate() (values []any, ok bool)
}

// ExpressionResult is one evaluation outcome for an expression applied
// to an object.
type ExpressionResult struct {
	Value        any
	ResolvedName string
	Err          error
}

// ExpressionEvaluator evaluates a named expression token against an
// object. The first result in the returned slice is the one callers
// use; later results exist for multi-valued expressions (e.g. a
// property wildcard).
type ExpressionEvaluator interface {
	Evaluate(ctx context.Context, expr string, object any) ([]ExpressionResult, error)
}

// ViewDefinition names the row/control layout for a type.
type ViewDefinition struct {
	Name         string
	GroupBy      string
	AutoSize     bool
	RepeatHeader bool
	RootControl  ControlDefinition
	// GroupHeaderControl, when set, names a ControlDatabase entry used
	// to render the group-start header instead of the default labelled
	// text field.
	GroupHeaderControl string
}

// ControlDefinition is one node of a format-database control tree, as
// walked by ComplexTraversal.
type ControlDefinition struct {
	Text                string
	NewLineCount        int
	Frame               *FrameInfo
	Inner               []ControlDefinition
	Expr                string
	FormatDirective     string
	InnerControl        *ControlDefinition
	EnumerateCollection bool
	ConditionExpr       string
}

// FrameInfo mirrors indent.FrameInfo without importing that package,
// so view database definitions stay decoupled from the writer layer.
type FrameInfo struct {
	FirstLine   int
	LeftIndent  int
	RightIndent int
}

// ViewDatabase resolves a named view definition for a type name.
type ViewDatabase interface {
	ResolveView(typeName string) (ViewDefinition, bool)
}

// ControlDatabase resolves a named, reusable control definition
// referenced from a view (e.g. a shared property-formatting snippet).
type ControlDatabase interface {
	ResolveControl(name string) (ControlDefinition, bool)
}

// StringTable maps a text token to its localized string.
type StringTable interface {
	Lookup(token string) (string, bool)
}

// OutputRendering selects how the engine emits escape sequences.
type OutputRendering int

const (
	// Automatic defers to the destination's detected capability.
	Automatic OutputRendering = iota
	// PlainText strips all escape sequences from rendered output.
	PlainText
	// Ansi always emits escape sequences.
	Ansi
	// Host defers styling entirely to the host application.
	Host
)

// StyleConfig supplies the SGR strings the engine splices around
// accents, errors, and headers, plus the active rendering mode. It is
// treated as an immutable snapshot for the duration of one render.
type StyleConfig interface {
	Accent() string
	ErrorAccent() string
	TableHeaderAccent() string
	FileExtensionAccent(extension string) string
	Rendering() OutputRendering
}

// LineSink receives fully padded, optionally styled lines in the order
// the engine produces them. The engine writes to it but never closes
// it.
type LineSink interface {
	WriteLine(s string) error
	// DisplayCells reports the destination's terminal width in cells.
	DisplayCells() int
}

// CancellationToken is consulted at enumeration boundaries so a caller
// can abort a long-running traversal.
type CancellationToken interface {
	Cancelled() bool
}
