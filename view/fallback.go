package view

import (
	"fmt"
	"reflect"

	"github.com/gridform/termfmt/indent"
)

const fallbackIndentStep = 2

// WalkFallback renders object with the property-walker default view,
// used whenever no view/control matches its type: scalars render as
// leaves, enumerables as "[ ... ]" blocks, and other objects as
// "class Name { field = value; ... }" blocks. Enumeration stops after
// EnumerationLimit elements (emitting an ellipsis leaf), and an
// enumerable encountered at or beyond MaxDepth is formatted as a
// scalar instead of expanded further.
func (t *Traversal) WalkFallback(object any, depth int) ([]FormatValue, error) {
	if t.Cancel != nil && t.Cancel.Cancelled() {
		return nil, fmt.Errorf("pipeline stopped")
	}

	if object == nil {
		return []FormatValue{Text("")}, nil
	}

	rv := reflect.ValueOf(object)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return []FormatValue{Text("")}, nil
		}
		rv = rv.Elem()
	}

	limit := t.EnumerationLimit
	if limit <= 0 {
		limit = 300
	}
	maxDepth := t.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 2
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if depth >= maxDepth {
			return []FormatValue{Text(smartToString(object))}, nil
		}
		return t.walkFallbackEnumerable(rv, depth, limit)

	case reflect.Struct, reflect.Map:
		if depth >= maxDepth {
			return []FormatValue{Text(smartToString(object))}, nil
		}
		return t.walkFallbackObject(rv, object, depth)

	default:
		return []FormatValue{Text(smartToString(object))}, nil
	}
}

func (t *Traversal) walkFallbackEnumerable(rv reflect.Value, depth, limit int) ([]FormatValue, error) {
	children := []FormatValue{Text("[ ")}
	n := rv.Len()
	shown := 0
	for i := 0; i < n; i++ {
		if t.Cancel != nil && t.Cancel.Cancelled() {
			return nil, fmt.Errorf("pipeline stopped")
		}
		if shown >= limit {
			children = append(children, Text("…"))
			break
		}
		elem := rv.Index(i).Interface()
		toks, err := t.WalkFallback(elem, depth+1)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			children = append(children, Text(", "))
		}
		children = append(children, toks...)
		shown++
	}
	children = append(children, Text(" ]"))
	return children, nil
}

func (t *Traversal) walkFallbackObject(rv reflect.Value, object any, depth int) ([]FormatValue, error) {
	typeName := rv.Type().Name()
	if typeName == "" {
		typeName = rv.Type().String()
	}

	children := []FormatValue{Text(fmt.Sprintf("class %s {", typeName)), NewLine()}
	frame := &indent.FrameInfo{LeftIndent: fallbackIndentStep}

	var fields []FormatValue
	switch rv.Kind() {
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			f := rv.Type().Field(i)
			if !f.IsExported() {
				continue
			}
			toks, err := t.fallbackField(f.Name, rv.Field(i).Interface(), depth)
			if err != nil {
				return nil, err
			}
			fields = append(fields, toks...)
		}
	case reflect.Map:
		for _, key := range rv.MapKeys() {
			toks, err := t.fallbackField(fmt.Sprint(key.Interface()), rv.MapIndex(key).Interface(), depth)
			if err != nil {
				return nil, err
			}
			fields = append(fields, toks...)
		}
	}

	children = append(children, Entry(frame, fields...))
	children = append(children, Text("}"))
	return children, nil
}

func (t *Traversal) fallbackField(name string, value any, depth int) ([]FormatValue, error) {
	toks, err := t.WalkFallback(value, depth+1)
	if err != nil {
		return nil, err
	}
	out := []FormatValue{Text(name + " = ")}
	out = append(out, toks...)
	out = append(out, Text(";"), NewLine())
	return out, nil
}
