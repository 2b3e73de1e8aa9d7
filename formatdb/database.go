package formatdb

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridform/termfmt/pipeline"
)

// Database is an in-memory, YAML-loaded view/control database. It
// satisfies both pipeline.ViewDatabase and pipeline.ControlDatabase.
type Database struct {
	views    map[string]pipeline.ViewDefinition
	controls map[string]pipeline.ControlDefinition
}

// Load reads a format database from a YAML file at path.
func Load(path string) (*Database, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes a format database from an in-memory YAML document.
func Parse(raw []byte) (*Database, error) {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	db := &Database{
		views:    make(map[string]pipeline.ViewDefinition, len(doc.Views)),
		controls: make(map[string]pipeline.ControlDefinition, len(doc.Controls)),
	}
	for _, c := range doc.Controls {
		db.controls[c.Name] = convertControl(c.Control, db)
	}
	for _, v := range doc.Views {
		db.views[v.TypeName] = pipeline.ViewDefinition{
			Name:               v.Name,
			GroupBy:            v.GroupBy,
			GroupHeaderControl: v.GroupHeaderControl,
			AutoSize:           v.AutoSize,
			RepeatHeader:       v.RepeatHeader,
			RootControl:        convertControl(v.Root, db),
		}
	}
	return db, nil
}

// convertControl resolves a ControlDoc into a pipeline.ControlDefinition,
// inlining any ControlRef by looking it up in db's already-converted
// controls (controls must therefore not form reference cycles; a
// missing reference resolves to an empty leaf control rather than
// failing the whole load).
func convertControl(c ControlDoc, db *Database) pipeline.ControlDefinition {
	if c.ControlRef != "" {
		if resolved, ok := db.controls[c.ControlRef]; ok {
			return resolved
		}
		return pipeline.ControlDefinition{}
	}

	out := pipeline.ControlDefinition{
		Text:                c.Text,
		NewLineCount:        c.NewLines,
		Expr:                c.Expr,
		FormatDirective:     c.Format,
		EnumerateCollection: c.Enumerate,
		ConditionExpr:       c.Condition,
	}
	if c.Frame != nil {
		out.Frame = &pipeline.FrameInfo{
			FirstLine:   c.Frame.FirstLine,
			LeftIndent:  c.Frame.LeftIndent,
			RightIndent: c.Frame.RightIndent,
		}
	}
	if c.InnerControl != nil {
		inner := convertControl(*c.InnerControl, db)
		out.InnerControl = &inner
	}
	for _, ic := range c.Inner {
		out.Inner = append(out.Inner, convertControl(ic, db))
	}
	return out
}

// ResolveView implements pipeline.ViewDatabase.
func (db *Database) ResolveView(typeName string) (pipeline.ViewDefinition, bool) {
	v, ok := db.views[typeName]
	return v, ok
}

// ResolveControl implements pipeline.ControlDatabase.
func (db *Database) ResolveControl(name string) (pipeline.ControlDefinition, bool) {
	c, ok := db.controls[name]
	return c, ok
}

var (
	_ pipeline.ViewDatabase    = (*Database)(nil)
	_ pipeline.ControlDatabase = (*Database)(nil)
)
