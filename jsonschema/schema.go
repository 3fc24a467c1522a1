// Package jsonschema decodes the subset of JSON Schema / OpenAPI v3 that the
// TypeScript generator understands. Property and definition order is kept
// as written in the document, since it decides declaration order.
package jsonschema

// Schema is a decoded JSON Schema node.
type Schema struct {
	// References
	Ref         string  `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Defs        Members `json:"$defs,omitempty" yaml:"$defs,omitempty"`
	Definitions Members `json:"definitions,omitempty" yaml:"definitions,omitempty"`

	// Annotations
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty"`

	// Core
	Type     TypeSet `json:"type,omitempty" yaml:"type,omitempty"`
	Format   string  `json:"format,omitempty" yaml:"format,omitempty"`
	Enum     []any   `json:"enum,omitempty" yaml:"enum,omitempty"`
	Const    any     `json:"const,omitempty" yaml:"const,omitempty"`
	HasConst bool    `json:"-" yaml:"-"` // set when "const" is present, including "const": null
	Nullable bool    `json:"nullable,omitempty" yaml:"nullable,omitempty"` // OpenAPI v3

	// Object
	Properties           Members               `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string              `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties *AdditionalProperties `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Composition
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`
}

// Member is one named entry of an ordered schema map (properties, $defs).
type Member struct {
	Name   string
	Schema *Schema
}

// Members is an ordered schema map.
type Members []Member

// Get returns the schema stored under name.
func (m Members) Get(name string) (*Schema, bool) {
	for _, e := range m {
		if e.Name == name {
			return e.Schema, true
		}
	}
	return nil, false
}

// Names returns member names in document order.
func (m Members) Names() []string {
	out := make([]string, 0, len(m))
	for _, e := range m {
		out = append(out, e.Name)
	}
	return out
}

// TypeSet holds the "type" keyword, which may be a single name or a list.
type TypeSet []string

// Has reports whether t is listed.
func (ts TypeSet) Has(t string) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}

// AdditionalProperties is either a boolean or a schema for extra keys.
type AdditionalProperties struct {
	Allowed bool
	Schema  *Schema // nil when given as a boolean
}

// IsObject reports whether s describes an object: typed as one, or untyped
// with properties.
func (s *Schema) IsObject() bool {
	if s == nil {
		return false
	}
	if s.Type.Has("object") {
		return true
	}
	return len(s.Type) == 0 && len(s.Properties) > 0
}

// IsRequired reports whether name is listed in required.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// AllDefs returns $defs followed by legacy definitions.
func (s *Schema) AllDefs() Members {
	if len(s.Definitions) == 0 {
		return s.Defs
	}
	out := make(Members, 0, len(s.Defs)+len(s.Definitions))
	out = append(out, s.Defs...)
	return append(out, s.Definitions...)
}
