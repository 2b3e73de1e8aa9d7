package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridform/termfmt/pipeline"
)

// yamlStyle mirrors Style's fields in a form yaml.v3 can unmarshal
// directly; Style itself keeps its fields unexported so callers can
// only construct it through NewStyle/LoadStyle.
type yamlStyle struct {
	Accent            string            `yaml:"accent"`
	ErrorAccent       string            `yaml:"errorAccent"`
	TableHeaderAccent string            `yaml:"tableHeaderAccent"`
	ExtensionAccents  map[string]string `yaml:"extensionAccents"`
	Rendering         string            `yaml:"rendering"`
}

// LoadStyle reads a Style from a YAML document at path. Unknown or
// missing rendering values default to Automatic.
func LoadStyle(path string) (*Style, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseStyle(raw)
}

// ParseStyle decodes a Style from a YAML document already in memory.
func ParseStyle(raw []byte) (*Style, error) {
	var y yamlStyle
	if err := yaml.Unmarshal(raw, &y); err != nil {
		return nil, err
	}

	opts := []Option{
		WithAccent(y.Accent),
		WithErrorAccent(y.ErrorAccent),
		WithTableHeaderAccent(y.TableHeaderAccent),
		WithRendering(parseRendering(y.Rendering)),
	}
	for ext, sgr := range y.ExtensionAccents {
		opts = append(opts, WithFileExtensionAccent(ext, sgr))
	}
	return NewStyle(opts...), nil
}

func parseRendering(s string) pipeline.OutputRendering {
	switch s {
	case "plaintext":
		return pipeline.PlainText
	case "ansi":
		return pipeline.Ansi
	case "host":
		return pipeline.Host
	default:
		return pipeline.Automatic
	}
}
