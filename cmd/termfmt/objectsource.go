package main

import "github.com/gridform/termfmt/pipeline"

// mapObjectSource adapts one YAML-decoded record to pipeline.ObjectSource,
// so type resolution and remote-object detection go through the same
// collaborator contract a real object pipeline would implement, rather
// than reading map keys ad hoc at each call site.
type mapObjectSource struct {
	data      map[string]any
	typeField string
	hostField string
}

func newMapObjectSource(data map[string]any, typeField, hostField string) *mapObjectSource {
	return &mapObjectSource{data: data, typeField: typeField, hostField: hostField}
}

func (m *mapObjectSource) TypeNames() []string {
	if s, ok := m.data[m.typeField].(string); ok && s != "" {
		return []string{s}
	}
	return nil
}

func (m *mapObjectSource) Property(name string) (any, bool) {
	v, ok := m.data[name]
	return v, ok
}

func (m *mapObjectSource) Enumerate() ([]any, bool) {
	return nil, false
}

// OriginHost reports the remote host a record was collected from, if
// any. Not part of pipeline.ObjectSource; table rendering consults it
// directly to decide whether to synthesize a ComputerName column.
func (m *mapObjectSource) OriginHost() string {
	s, _ := m.data[m.hostField].(string)
	return s
}

var _ pipeline.ObjectSource = (*mapObjectSource)(nil)
