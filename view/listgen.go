package view

import "context"

// listGenerator renders each object as a slice of Entry label/value
// pairs, one per field named in the view's root control. It has no
// tabular header; WriteList handles the actual alignment.
type listGenerator struct {
	vc *ViewContext
}

func (g *listGenerator) GenerateStartData(ctx context.Context, firstObject any) (TableHeaderInfo, error) {
	return TableHeaderInfo{HideHeader: true}, nil
}

func (g *listGenerator) GenerateGroupStart(ctx context.Context, firstObject any) ([]FormatValue, bool, error) {
	if g.vc.groupExpr() == "" {
		return nil, false, nil
	}
	if !g.vc.grouping.Update(ctx, firstObject) {
		return nil, false, nil
	}
	toks, err := defaultGroupStart(ctx, g.vc, firstObject)
	return toks, true, err
}

// GeneratePayload evaluates each field control's Expr against object
// and formats the result with its FormatDirective, in the order the
// fields appear under the view's root control.
func (g *listGenerator) GeneratePayload(ctx context.Context, object any) (any, error) {
	fields := g.vc.View.RootControl.Inner
	entries := make([]Entry, 0, len(fields))

	for _, field := range fields {
		label := field.Text
		if g.vc.Strings != nil {
			if looked, ok := g.vc.Strings.Lookup(label); ok {
				label = looked
			}
		}

		value := object
		if field.Expr != "" {
			results, err := g.vc.Evaluator.Evaluate(ctx, field.Expr, object)
			if err != nil || len(results) == 0 || results[0].Err != nil {
				evalErr := err
				if evalErr == nil && len(results) > 0 {
					evalErr = results[0].Err
				}
				entries = append(entries, Entry{Label: label, Value: g.vc.Errors.RecordExpressionError(field.Expr, evalErr)})
				continue
			}
			value = results[0].Value
		}

		text, err := formatDirective(value, field.FormatDirective)
		if err != nil {
			text = g.vc.Errors.RecordFormatError(value, err)
		}
		entries = append(entries, Entry{Label: label, Value: text})
	}

	return entries, nil
}
