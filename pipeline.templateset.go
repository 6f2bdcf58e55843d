package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// templateSetDoc is the on-disk shape of a YAML template-set document
// (SPEC_FULL §4.12), grounded on the teacher's YAML-frontmatter Prompt
// struct (prompty.parse.go) which also unmarshals a document straight into
// a tagged Go struct via gopkg.in/yaml.v3 rather than a generic map.
type templateSetDoc struct {
	Templates map[string]string `yaml:"templates"`
}

// TemplateSet is a batch of named, pre-compiled templates (SPEC_FULL
// §4.12), grounded on the teacher's named-template registry
// (Engine.RegisterTemplate/Engine.templates) repurposed for this grammar.
type TemplateSet struct {
	templates map[string]*Template
}

// Get looks up a compiled template by name.
func (s *TemplateSet) Get(name string) (*Template, bool) {
	t, ok := s.templates[name]
	return t, ok
}

// LoadTemplateSet parses a YAML document whose top-level "templates" key
// maps names to template source strings and compiles every entry with the
// same Options, returning one
// TemplateSet. Compile failures name the offending template so a caller can
// locate it in the YAML file.
func LoadTemplateSet(yamlSource []byte, opts ...Option) (*TemplateSet, error) {
	var doc templateSetDoc
	if err := yaml.Unmarshal(yamlSource, &doc); err != nil {
		return nil, fmt.Errorf("template set: invalid yaml: %w", err)
	}

	templates := make(map[string]*Template, len(doc.Templates))
	for name, source := range doc.Templates {
		tmpl, err := Parse(source, opts...)
		if err != nil {
			return nil, fmt.Errorf("template set: template %q: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &TemplateSet{templates: templates}, nil
}
