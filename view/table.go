package view

import (
	"context"
	"reflect"
)

type tableColumn struct {
	Label     string
	Expr      string
	Directive string
}

// tableGenerator renders each object as a row of cell strings. Columns
// are resolved once, against the first object seen, and reused for
// every subsequent row.
type tableGenerator struct {
	vc      *ViewContext
	columns []tableColumn
}

func (g *tableGenerator) GenerateStartData(ctx context.Context, firstObject any) (TableHeaderInfo, error) {
	g.columns = g.resolveColumns(ctx, firstObject)

	cols := make([]ColumnInfo, len(g.columns))
	for i, c := range g.columns {
		cols[i] = ColumnInfo{
			Label:     c.Label,
			Alignment: g.defaultAlignment(ctx, c, firstObject),
		}
	}
	return TableHeaderInfo{Columns: cols, RepeatHeader: g.vc.RepeatHeader}, nil
}

func (g *tableGenerator) GenerateGroupStart(ctx context.Context, firstObject any) ([]FormatValue, bool, error) {
	if g.vc.groupExpr() == "" {
		return nil, false, nil
	}
	if !g.vc.grouping.Update(ctx, firstObject) {
		return nil, false, nil
	}
	toks, err := defaultGroupStart(ctx, g.vc, firstObject)
	return toks, true, err
}

// GeneratePayload returns one formatted cell per resolved column, in
// column order.
func (g *tableGenerator) GeneratePayload(ctx context.Context, object any) (any, error) {
	row := make([]string, len(g.columns))
	for i, c := range g.columns {
		value, cellErr := g.resolveCell(ctx, c, object)
		if cellErr != "" {
			row[i] = cellErr
			continue
		}
		text, err := formatDirective(value, c.Directive)
		if err != nil {
			text = g.vc.Errors.RecordFormatError(value, err)
		}
		row[i] = text
	}
	return row, nil
}

// resolveColumns picks the view's declared row definition if present,
// else falls back to enumerating all of the first object's exported
// properties, capped at maxTableColumns. A remote object gets a
// synthesized ComputerName column appended to the right.
func (g *tableGenerator) resolveColumns(ctx context.Context, firstObject any) []tableColumn {
	var cols []tableColumn
	if len(g.vc.View.RootControl.Inner) > 0 {
		for _, f := range g.vc.View.RootControl.Inner {
			cols = append(cols, tableColumn{Label: f.Text, Expr: f.Expr, Directive: f.FormatDirective})
		}
	} else {
		cols = enumerateProperties(firstObject)
	}

	if len(cols) > maxTableColumns {
		cols = cols[:maxTableColumns]
	}
	if g.vc.IsRemoteObject {
		cols = append(cols, tableColumn{Label: "ComputerName", Expr: "$_.PSComputerName"})
	}
	return cols
}

func (g *tableGenerator) defaultAlignment(ctx context.Context, c tableColumn, firstObject any) Alignment {
	value, errText := g.resolveCell(ctx, c, firstObject)
	if errText != "" {
		return AlignLeft
	}
	if isNumeric(value) {
		return AlignRight
	}
	return AlignLeft
}

// resolveCell evaluates column c against object, returning either its
// raw value or (if evaluation failed) the error-manager substitution
// text to use as the cell directly.
func (g *tableGenerator) resolveCell(ctx context.Context, c tableColumn, object any) (value any, errText string) {
	if c.Expr == "" {
		return object, ""
	}
	results, err := g.vc.Evaluator.Evaluate(ctx, c.Expr, object)
	if err != nil || len(results) == 0 || results[0].Err != nil {
		evalErr := err
		if evalErr == nil && len(results) > 0 {
			evalErr = results[0].Err
		}
		return nil, g.vc.Errors.RecordExpressionError(c.Expr, evalErr)
	}
	return results[0].Value, ""
}

func enumerateProperties(object any) []tableColumn {
	if object == nil {
		return nil
	}
	rv := reflect.ValueOf(object)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var cols []tableColumn
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		cols = append(cols, tableColumn{Label: f.Name, Expr: "$_." + f.Name})
	}
	return cols
}

func isNumeric(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
