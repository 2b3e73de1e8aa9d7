// Package formatdb is a YAML-backed implementation of
// pipeline.ViewDatabase and pipeline.ControlDatabase: the format
// database the core treats as an external, read-only collaborator.
package formatdb

// ViewDoc is the on-disk shape of one view definition entry.
type ViewDoc struct {
	TypeName           string     `yaml:"typeName"`
	Name               string     `yaml:"name"`
	GroupBy            string     `yaml:"groupBy"`
	GroupHeaderControl string     `yaml:"groupHeaderControl"`
	AutoSize           bool       `yaml:"autoSize"`
	RepeatHeader       bool       `yaml:"repeatHeader"`
	Root               ControlDoc `yaml:"root"`
}

// FrameDoc mirrors pipeline.FrameInfo for YAML decoding.
type FrameDoc struct {
	FirstLine   int `yaml:"firstLine"`
	LeftIndent  int `yaml:"leftIndent"`
	RightIndent int `yaml:"rightIndent"`
}

// ControlDoc is the on-disk shape of one control-tree node. A node
// either carries literal Text/NewLines/Frame+Inner, or describes a
// CompoundProperty via Expr/Format/InnerControl/Enumerate/Condition. A
// node referencing a named, shared control sets ControlRef instead of
// inlining one.
type ControlDoc struct {
	Text          string       `yaml:"text,omitempty"`
	NewLines      int          `yaml:"newLines,omitempty"`
	Frame         *FrameDoc    `yaml:"frame,omitempty"`
	Inner         []ControlDoc `yaml:"inner,omitempty"`
	Expr          string       `yaml:"expr,omitempty"`
	Format        string       `yaml:"format,omitempty"`
	InnerControl  *ControlDoc  `yaml:"innerControl,omitempty"`
	Enumerate     bool         `yaml:"enumerate,omitempty"`
	Condition     string       `yaml:"condition,omitempty"`
	ControlRef    string       `yaml:"controlRef,omitempty"`
}

// ControlsDoc is a named, reusable control definition, referenced from
// a view by ControlRef.
type ControlsDoc struct {
	Name    string     `yaml:"name"`
	Control ControlDoc `yaml:"control"`
}

// Document is the top-level shape of a format-database YAML file.
type Document struct {
	Views    []ViewDoc     `yaml:"views"`
	Controls []ControlsDoc `yaml:"controls"`
}
