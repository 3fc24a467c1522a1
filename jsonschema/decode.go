package jsonschema

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Decode parses a JSON Schema document.
func Decode(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("jsonschema: invalid JSON: %w", err)
	}
	return &s, nil
}

// DecodeYAML parses a JSON Schema document written in YAML.
func DecodeYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("jsonschema: invalid YAML: %w", err)
	}
	return &s, nil
}

// ---- JSON ----

// UnmarshalJSON decodes the schema and records whether "const" was given,
// since a null const decodes to the same value as an absent one.
func (s *Schema) UnmarshalJSON(b []byte) error {
	type plain Schema
	if err := json.Unmarshal(b, (*plain)(s)); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}
	_, s.HasConst = keys["const"]
	return nil
}

// UnmarshalJSON decodes an object into members, keeping key order.
func (m *Members) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*m = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("jsonschema: expected object of schemas")
	}
	out := Members{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := kt.(string)
		if !ok {
			return fmt.Errorf("jsonschema: unexpected key token %v", kt)
		}
		s := &Schema{}
		if err := dec.Decode(s); err != nil {
			return fmt.Errorf("jsonschema: %s: %w", key, err)
		}
		out = append(out, Member{Name: key, Schema: s})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// UnmarshalJSON accepts "string" or ["string", "null"].
func (ts *TypeSet) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*ts = TypeSet{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("jsonschema: type must be a string or an array of strings: %w", err)
	}
	*ts = many
	return nil
}

// UnmarshalJSON accepts a boolean or a schema.
func (ap *AdditionalProperties) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "true":
		*ap = AdditionalProperties{Allowed: true}
		return nil
	case "false":
		*ap = AdditionalProperties{}
		return nil
	}
	s := &Schema{}
	if err := json.Unmarshal(b, s); err != nil {
		return fmt.Errorf("jsonschema: additionalProperties: %w", err)
	}
	*ap = AdditionalProperties{Allowed: true, Schema: s}
	return nil
}

// ---- YAML ----

// UnmarshalYAML decodes the schema and records whether "const" was given.
func (s *Schema) UnmarshalYAML(n *yaml.Node) error {
	type plain Schema
	if err := n.Decode((*plain)(s)); err != nil {
		return err
	}
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == "const" {
				s.HasConst = true
			}
		}
	}
	return nil
}

// UnmarshalYAML decodes a mapping into members, keeping key order.
func (m *Members) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" {
		*m = nil
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("jsonschema: line %d: expected mapping of schemas", n.Line)
	}
	out := make(Members, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		s := &Schema{}
		if err := n.Content[i+1].Decode(s); err != nil {
			return fmt.Errorf("jsonschema: %s: %w", key, err)
		}
		out = append(out, Member{Name: key, Schema: s})
	}
	*m = out
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (ts *TypeSet) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*ts = TypeSet{n.Value}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := n.Decode(&many); err != nil {
			return err
		}
		*ts = many
		return nil
	}
	return fmt.Errorf("jsonschema: line %d: type must be a string or a list of strings", n.Line)
}

// UnmarshalYAML accepts a boolean or a schema.
func (ap *AdditionalProperties) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var allowed bool
		if err := n.Decode(&allowed); err != nil {
			return fmt.Errorf("jsonschema: line %d: additionalProperties: %w", n.Line, err)
		}
		*ap = AdditionalProperties{Allowed: allowed}
		return nil
	}
	s := &Schema{}
	if err := n.Decode(s); err != nil {
		return err
	}
	*ap = AdditionalProperties{Allowed: true, Schema: s}
	return nil
}
