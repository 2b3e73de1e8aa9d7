package view_test

import (
	"context"
	"reflect"
	"strings"

	"github.com/gridform/termfmt/pipeline"
)

// fakeEvaluator evaluates a tiny expression language for tests: "$_"
// returns the object itself; "$_.Field" looks up an exported struct
// field or map key by name.
type fakeEvaluator struct {
	errOn map[string]error
}

func (f *fakeEvaluator) Evaluate(_ context.Context, expr string, object any) ([]pipeline.ExpressionResult, error) {
	if f.errOn != nil {
		if err, ok := f.errOn[expr]; ok {
			return nil, err
		}
	}
	if expr == "$_" || expr == "" {
		return []pipeline.ExpressionResult{{Value: object, ResolvedName: expr}}, nil
	}
	field := strings.TrimPrefix(expr, "$_.")
	v, ok := lookupField(object, field)
	if !ok {
		return []pipeline.ExpressionResult{{Value: nil, ResolvedName: expr}}, nil
	}
	return []pipeline.ExpressionResult{{Value: v, ResolvedName: expr}}, nil
}

func lookupField(object any, name string) (any, bool) {
	if object == nil {
		return nil, false
	}
	rv := reflect.ValueOf(object)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		f := rv.FieldByName(name)
		if !f.IsValid() {
			return nil, false
		}
		return f.Interface(), true
	case reflect.Map:
		v := rv.MapIndex(reflect.ValueOf(name))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	}
	return nil, false
}

type fakeStringTable struct {
	table map[string]string
}

func (f *fakeStringTable) Lookup(token string) (string, bool) {
	s, ok := f.table[token]
	return s, ok
}

type fakeCancel struct {
	cancelled bool
}

func (f *fakeCancel) Cancelled() bool { return f.cancelled }

type fakeControls struct {
	controls map[string]pipeline.ControlDefinition
}

func (f *fakeControls) ResolveControl(name string) (pipeline.ControlDefinition, bool) {
	c, ok := f.controls[name]
	return c, ok
}
