package view

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/gridform/termfmt/pipeline"
)

// GroupingTracker detects changes in a grouping-key expression's value
// across an object stream, so a ViewGenerator knows when to emit a new
// group header.
type GroupingTracker struct {
	evaluator pipeline.ExpressionEvaluator
	expr      string

	hasKey bool
	key    any
}

// NewGroupingTracker builds a tracker that evaluates expr against each
// object passed to Update. An empty expr means "no grouping"; Update
// always returns false in that case.
func NewGroupingTracker(evaluator pipeline.ExpressionEvaluator, expr string) *GroupingTracker {
	return &GroupingTracker{evaluator: evaluator, expr: expr}
}

// Update evaluates the grouping expression against object and reports
// whether the effective key changed since the last successful update.
// An evaluation failure, or a result with no values, leaves state
// untouched and returns false — a transient per-object failure must
// never spuriously split a group.
func (t *GroupingTracker) Update(ctx context.Context, object any) bool {
	if t.expr == "" {
		return false
	}
	results, err := t.evaluator.Evaluate(ctx, t.expr, object)
	if err != nil || len(results) == 0 {
		return false
	}
	r := results[0]
	if r.Err != nil {
		return false
	}

	newKey := r.Value
	if !t.hasKey {
		t.key = newKey
		t.hasKey = true
		return true
	}
	if keysEqual(t.key, newKey) {
		return false
	}
	t.key = newKey
	return true
}

// keysEqual compares two grouping-key values with a locale-aware
// comparator where one exists (string keys compare case-insensitively)
// and falls back to structural, then textual, equality otherwise.
func keysEqual(a, b any) bool {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.EqualFold(as, bs)
		}
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.IsValid() && bv.IsValid() && av.Comparable() && bv.Comparable() && av.Type() == bv.Type() {
		return a == b
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}
