package view

import (
	"context"
	"fmt"

	"github.com/gridform/termfmt/cellwidth"
	"github.com/gridform/termfmt/errormanager"
	"github.com/gridform/termfmt/indent"
	"github.com/gridform/termfmt/pipeline"
)

// maxTableColumns caps how many columns a table-mode generator will
// ever produce, even for a type with more enumerable properties.
const maxTableColumns = 10

// ViewContext is the state table/list/complex generators share: it is
// built once per view resolution and handed to whichever concrete
// generator the caller selects.
type ViewContext struct {
	Evaluator pipeline.ExpressionEvaluator
	Controls  pipeline.ControlDatabase
	Strings   pipeline.StringTable
	Style     pipeline.StyleConfig
	Errors    *errormanager.Manager
	Cancel    pipeline.CancellationToken
	Cfg       cellwidth.Config
	Locale    string

	View pipeline.ViewDefinition
	// GroupByOverride, when non-empty, takes precedence over View.GroupBy
	// (a command-line override beats the view definition's default).
	GroupByOverride string
	AutoSize        bool
	RepeatHeader    bool
	// IsRemoteObject, when true, makes a table generator append a
	// synthesized ComputerName column.
	IsRemoteObject bool

	grouping *GroupingTracker
}

// groupExpr resolves the effective grouping expression: override first,
// then the view definition's own GroupBy.
func (c *ViewContext) groupExpr() string {
	if c.GroupByOverride != "" {
		return c.GroupByOverride
	}
	return c.View.GroupBy
}

// Generator is the capability interface the three view variants share.
// GeneratePayload's return shape differs per variant, matching what
// its downstream writer expects: complex returns []FormatValue for
// ComplexWriter, list returns []Entry for WriteList, and table returns
// []string (one cell per resolved column) for a table renderer.
type Generator interface {
	GenerateStartData(ctx context.Context, firstObject any) (TableHeaderInfo, error)
	GenerateGroupStart(ctx context.Context, firstObject any) ([]FormatValue, bool, error)
	GeneratePayload(ctx context.Context, object any) (any, error)
}

// Kind selects which concrete Generator NewGenerator builds.
type Kind int

const (
	KindTable Kind = iota
	KindList
	KindComplex
)

// NewGenerator builds the Generator for kind, sharing one ViewContext
// initialization (error-reporting policy lives on vc.Errors; the
// grouping expression is resolved from vc here). The table variant
// reads vc.RepeatHeader itself.
func NewGenerator(kind Kind, vc *ViewContext) Generator {
	vc.grouping = NewGroupingTracker(vc.Evaluator, vc.groupExpr())

	switch kind {
	case KindList:
		return &listGenerator{vc: vc}
	case KindComplex:
		return &complexGenerator{vc: vc}
	default:
		return &tableGenerator{vc: vc}
	}
}

// defaultGroupStart renders the group-start header the fallback way:
// a labelled text field using the grouping expression and the key
// value's smartToString, for variants that don't have a
// GroupHeaderControl configured.
func defaultGroupStart(ctx context.Context, vc *ViewContext, firstObject any) ([]FormatValue, error) {
	results, err := vc.Evaluator.Evaluate(ctx, vc.groupExpr(), firstObject)
	var keyText string
	if err == nil && len(results) > 0 && results[0].Err == nil {
		keyText = smartToString(results[0].Value)
	}
	label := fmt.Sprintf("   %s: %s", vc.groupExpr(), keyText)
	return []FormatValue{
		Entry(&indent.FrameInfo{}, Text(label), NewLine()),
	}, nil
}
