package view

import "context"

// complexGenerator renders each object as a tree of FormatValue tokens
// via Traversal, with no tabular header.
type complexGenerator struct {
	vc *ViewContext
}

func (g *complexGenerator) traversal() *Traversal {
	return &Traversal{
		Controls:  g.vc.Controls,
		Evaluator: g.vc.Evaluator,
		Strings:   g.vc.Strings,
		Errors:    g.vc.Errors,
		Cancel:    g.vc.Cancel,
	}
}

func (g *complexGenerator) GenerateStartData(ctx context.Context, firstObject any) (TableHeaderInfo, error) {
	return TableHeaderInfo{HideHeader: true}, nil
}

func (g *complexGenerator) GenerateGroupStart(ctx context.Context, firstObject any) ([]FormatValue, bool, error) {
	if g.vc.groupExpr() == "" {
		return nil, false, nil
	}
	changed := g.vc.grouping.Update(ctx, firstObject)
	if !changed {
		return nil, false, nil
	}

	if g.vc.View.GroupHeaderControl != "" {
		if ctrl, ok := g.vc.Controls.ResolveControl(g.vc.View.GroupHeaderControl); ok {
			toks, err := g.traversal().Walk(ctx, ctrl, firstObject)
			return toks, true, err
		}
	}

	toks, err := defaultGroupStart(ctx, g.vc, firstObject)
	return toks, true, err
}

func (g *complexGenerator) GeneratePayload(ctx context.Context, object any) (any, error) {
	return g.traversal().Walk(ctx, g.vc.View.RootControl, object)
}
