package view

import (
	"context"
	"fmt"
	"reflect"

	"github.com/gridform/termfmt/errormanager"
	"github.com/gridform/termfmt/indent"
	"github.com/gridform/termfmt/pipeline"
)

// maxTraversalDepth bounds ComplexTraversal's recursion, matching
// ComplexWriter's own depth limit.
const maxTraversalDepth = 50

// Traversal walks a control-definition tree (or, absent one, the
// property-walker fallback) against a target object, producing the
// FormatValue tree a writer renders.
type Traversal struct {
	Controls  pipeline.ControlDatabase
	Evaluator pipeline.ExpressionEvaluator
	Strings   pipeline.StringTable
	Errors    *errormanager.Manager
	Cancel    pipeline.CancellationToken

	// EnumerationLimit bounds how many elements the property-walker
	// fallback formats before substituting an ellipsis and stopping.
	EnumerationLimit int
	// MaxDepth bounds how deep the property-walker fallback recurses
	// into nested enumerables/objects before treating them as scalars.
	MaxDepth int
}

// Walk renders a control tree against object. A nil or zero-value root
// (Text, NewLineCount, Frame, Expr all empty/zero and no Inner) falls
// back to the property-walker default view.
func (t *Traversal) Walk(ctx context.Context, root pipeline.ControlDefinition, object any) ([]FormatValue, error) {
	if isEmptyControl(root) {
		return t.WalkFallback(object, 0)
	}
	return t.walkNode(ctx, root, object, 0)
}

func isEmptyControl(c pipeline.ControlDefinition) bool {
	return c.Text == "" && c.NewLineCount == 0 && c.Frame == nil &&
		c.Expr == "" && c.InnerControl == nil && len(c.Inner) == 0
}

func (t *Traversal) walkNode(ctx context.Context, c pipeline.ControlDefinition, object any, depth int) ([]FormatValue, error) {
	if depth > maxTraversalDepth {
		return nil, nil
	}

	switch {
	case c.Text != "":
		text := c.Text
		if t.Strings != nil {
			if looked, ok := t.Strings.Lookup(c.Text); ok {
				text = looked
			}
		}
		return []FormatValue{Text(text)}, nil

	case c.NewLineCount > 0:
		out := make([]FormatValue, c.NewLineCount)
		for i := range out {
			out[i] = NewLine()
		}
		return out, nil

	case c.Frame != nil:
		children, err := t.walkChildren(ctx, c.Inner, object, depth+1)
		if err != nil {
			return nil, err
		}
		frame := &indent.FrameInfo{
			FirstLine:   c.Frame.FirstLine,
			LeftIndent:  c.Frame.LeftIndent,
			RightIndent: c.Frame.RightIndent,
		}
		return []FormatValue{Entry(frame, children...)}, nil

	default:
		return t.walkCompoundProperty(ctx, c, object, depth)
	}
}

func (t *Traversal) walkChildren(ctx context.Context, children []pipeline.ControlDefinition, object any, depth int) ([]FormatValue, error) {
	var out []FormatValue
	for _, c := range children {
		toks, err := t.walkNode(ctx, c, object, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, toks...)
	}
	return out, nil
}

func (t *Traversal) walkCompoundProperty(ctx context.Context, c pipeline.ControlDefinition, object any, depth int) ([]FormatValue, error) {
	if c.ConditionExpr != "" {
		skip, err := t.evalCondition(ctx, c.ConditionExpr, object)
		if err == nil && skip {
			return nil, nil
		}
	}

	value := object
	if c.Expr != "" {
		results, err := t.Evaluator.Evaluate(ctx, c.Expr, object)
		if err != nil || len(results) == 0 || results[0].Err != nil {
			msg := err
			if msg == nil && len(results) > 0 {
				msg = results[0].Err
			}
			return []FormatValue{PropertyValue(t.Errors.RecordExpressionError(c.Expr, msg))}, nil
		}
		value = results[0].Value
	}

	if c.InnerControl == nil {
		return t.formatLeaf(c, value)
	}

	if c.EnumerateCollection {
		elems, ok := asSlice(value)
		if !ok {
			return t.walkNode(ctx, *c.InnerControl, value, depth+1)
		}
		var out []FormatValue
		for _, el := range elems {
			if el == nil {
				continue
			}
			toks, err := t.walkNode(ctx, *c.InnerControl, el, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, toks...)
		}
		return out, nil
	}

	return t.walkNode(ctx, *c.InnerControl, value, depth+1)
}

func (t *Traversal) formatLeaf(c pipeline.ControlDefinition, value any) ([]FormatValue, error) {
	if c.EnumerateCollection {
		if elems, ok := asSlice(value); ok {
			var out []FormatValue
			for _, el := range elems {
				if el == nil {
					continue
				}
				out = append(out, t.formatOne(c.FormatDirective, el))
			}
			return out, nil
		}
	}
	return []FormatValue{t.formatOne(c.FormatDirective, value)}, nil
}

func (t *Traversal) formatOne(directive string, value any) FormatValue {
	s, err := formatDirective(value, directive)
	if err != nil {
		return PropertyValue(t.Errors.RecordFormatError(value, err))
	}
	return PropertyValue(s)
}

func (t *Traversal) evalCondition(ctx context.Context, expr string, object any) (falsy bool, err error) {
	results, err := t.Evaluator.Evaluate(ctx, expr, object)
	if err != nil {
		return false, err
	}
	if len(results) == 0 || results[0].Err != nil {
		return false, fmt.Errorf("condition evaluation produced no usable result")
	}
	return isFalsy(results[0].Value), nil
}

func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case bool:
		return !x
	case string:
		return x == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

func asSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// formatDirective renders value as text. An empty directive uses
// smartToString; otherwise directive is treated as an fmt verb
// applied to value. A panicking Stringer surfaces as a format error
// rather than crashing the traversal.
func formatDirective(value any, directive string) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("formatting panic: %v", r)
		}
	}()
	if directive == "" {
		return smartToString(value), nil
	}
	return fmt.Sprintf(directive, value), nil
}

// smartToString renders an arbitrary value the way a default property
// view would: nil as empty, fmt.Stringer via String(), everything else
// via fmt.Sprint.
func smartToString(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
