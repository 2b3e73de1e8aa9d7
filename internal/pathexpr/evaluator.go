// Package pathexpr is a minimal pipeline.ExpressionEvaluator: it
// resolves "$_" (the object itself) and dotted "$_.Field.Sub" paths
// against maps and exported struct fields. It exists to give the CLI
// demo something real to evaluate view expressions against; it is not
// a general PowerShell-expression engine.
package pathexpr

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/gridform/termfmt/pipeline"
)

// Evaluator implements pipeline.ExpressionEvaluator over "$_"-rooted
// dotted paths.
type Evaluator struct{}

// New builds a path-expression evaluator.
func New() *Evaluator { return &Evaluator{} }

func (e *Evaluator) Evaluate(_ context.Context, expr string, object any) ([]pipeline.ExpressionResult, error) {
	if expr == "" || expr == "$_" {
		return []pipeline.ExpressionResult{{Value: object, ResolvedName: expr}}, nil
	}
	if !strings.HasPrefix(expr, "$_.") {
		return nil, fmt.Errorf("pathexpr: unsupported expression %q", expr)
	}

	value := object
	for _, segment := range strings.Split(strings.TrimPrefix(expr, "$_."), ".") {
		v, ok := lookup(value, segment)
		if !ok {
			return []pipeline.ExpressionResult{{Value: nil, ResolvedName: expr}}, nil
		}
		value = v
	}
	return []pipeline.ExpressionResult{{Value: value, ResolvedName: expr}}, nil
}

var _ pipeline.ExpressionEvaluator = (*Evaluator)(nil)

func lookup(object any, name string) (any, bool) {
	if object == nil {
		return nil, false
	}
	rv := reflect.ValueOf(object)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		v := rv.MapIndex(reflect.ValueOf(name))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		f := rv.FieldByName(name)
		if !f.IsValid() {
			return nil, false
		}
		return f.Interface(), true
	default:
		return nil, false
	}
}
