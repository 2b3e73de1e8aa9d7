package view_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridform/termfmt/cellwidth"
	"github.com/gridform/termfmt/config"
	"github.com/gridform/termfmt/errormanager"
	"github.com/gridform/termfmt/pipeline"
	"github.com/gridform/termfmt/view"
)

func newViewContext(viewDef pipeline.ViewDefinition) *view.ViewContext {
	return &view.ViewContext{
		Evaluator: &fakeEvaluator{},
		Errors:    errormanager.New(nil, config.NewStyle(), errormanager.Policy{DisplayErrorStrings: true}),
		Cfg:       cellwidth.Default(),
		Locale:    "en",
		View:      viewDef,
	}
}

func TestTableGeneratorUsesExplicitColumns(t *testing.T) {
	vc := newViewContext(pipeline.ViewDefinition{
		RootControl: pipeline.ControlDefinition{
			Inner: []pipeline.ControlDefinition{
				{Text: "Name", Expr: "$_.Name"},
				{Text: "Age", Expr: "$_.Age"},
			},
		},
	})
	gen := view.NewGenerator(view.KindTable, vc)

	header, err := gen.GenerateStartData(context.Background(), &person{Name: "alice", Age: 30})
	require.NoError(t, err)
	require.Len(t, header.Columns, 2)
	assert.Equal(t, "Name", header.Columns[0].Label)
	assert.Equal(t, view.AlignRight, header.Columns[1].Alignment)

	row, err := gen.GeneratePayload(context.Background(), &person{Name: "alice", Age: 30})
	require.NoError(t, err)
	cells := row.([]string)
	assert.Equal(t, []string{"alice", "30"}, cells)
}

func TestTableGeneratorFallsBackToEnumeratedColumns(t *testing.T) {
	vc := newViewContext(pipeline.ViewDefinition{})
	gen := view.NewGenerator(view.KindTable, vc)

	header, err := gen.GenerateStartData(context.Background(), person{Name: "bob", Age: 9})
	require.NoError(t, err)
	require.Len(t, header.Columns, 2)
}

func TestListGeneratorProducesEntries(t *testing.T) {
	vc := newViewContext(pipeline.ViewDefinition{
		RootControl: pipeline.ControlDefinition{
			Inner: []pipeline.ControlDefinition{
				{Text: "Name", Expr: "$_.Name"},
			},
		},
	})
	gen := view.NewGenerator(view.KindList, vc)

	header, err := gen.GenerateStartData(context.Background(), &person{Name: "alice"})
	require.NoError(t, err)
	assert.True(t, header.HideHeader)

	payload, err := gen.GeneratePayload(context.Background(), &person{Name: "alice"})
	require.NoError(t, err)
	entries := payload.([]view.Entry)
	require.Len(t, entries, 1)
	assert.Equal(t, "Name", entries[0].Label)
	assert.Equal(t, "alice", entries[0].Value)
}

func TestComplexGeneratorDelegatesToTraversal(t *testing.T) {
	vc := newViewContext(pipeline.ViewDefinition{
		RootControl: pipeline.ControlDefinition{Text: "hi"},
	})
	vc.Cancel = &fakeCancel{}
	gen := view.NewGenerator(view.KindComplex, vc)

	payload, err := gen.GeneratePayload(context.Background(), &person{Name: "alice"})
	require.NoError(t, err)
	toks := payload.([]view.FormatValue)
	require.Len(t, toks, 1)
	assert.Equal(t, "hi", toks[0].Text)
}

func TestGeneratorGroupStartFiresOnce(t *testing.T) {
	vc := newViewContext(pipeline.ViewDefinition{GroupBy: "$_.Name"})
	gen := view.NewGenerator(view.KindComplex, vc)

	toks, started, err := gen.GenerateGroupStart(context.Background(), &person{Name: "alice"})
	require.NoError(t, err)
	assert.True(t, started)
	assert.NotEmpty(t, toks)

	_, started2, err := gen.GenerateGroupStart(context.Background(), &person{Name: "alice"})
	require.NoError(t, err)
	assert.False(t, started2)
}

func TestGeneratorGroupStartNoGroupByNeverFires(t *testing.T) {
	vc := newViewContext(pipeline.ViewDefinition{})
	gen := view.NewGenerator(view.KindList, vc)

	_, started, err := gen.GenerateGroupStart(context.Background(), &person{Name: "alice"})
	require.NoError(t, err)
	assert.False(t, started)
}
