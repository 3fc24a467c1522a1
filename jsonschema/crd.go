package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type crdVersion struct {
	Name   string `yaml:"name"`
	Served *bool  `yaml:"served"`
	Schema struct {
		OpenAPIV3Schema *Schema `yaml:"openAPIV3Schema"`
	} `yaml:"schema"`
}

type crdDocument struct {
	Kind     string `yaml:"kind"`
	Metadata struct {
		Name string `yaml:"name"`
	} `yaml:"metadata"`
	Spec struct {
		Names struct {
			Kind string `yaml:"kind"`
		} `yaml:"names"`
		Versions   []crdVersion `yaml:"versions"`
		Validation struct {
			OpenAPIV3Schema *Schema `yaml:"openAPIV3Schema"`
		} `yaml:"validation"`
	} `yaml:"spec"`
}

// ErrCRDNotFound is returned when no matching CustomResourceDefinition exists.
var ErrCRDNotFound = errors.New("jsonschema: CRD kind not found in YAML bundle")

// DecodeCRD scans a multi-document YAML bundle and returns the
// openAPIV3Schema of the first CustomResourceDefinition whose spec.names.kind
// equals kind (any CRD when kind is empty). The schema title defaults to the
// CRD kind so generators can name the root declaration.
func DecodeCRD(data []byte, kind string) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc crdDocument
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("jsonschema: invalid YAML: %w", err)
		}
		if doc.Kind != "CustomResourceDefinition" {
			continue
		}
		if kind != "" && doc.Spec.Names.Kind != kind {
			continue
		}
		s := unwrapCRDSchema(&doc)
		if s == nil {
			return nil, fmt.Errorf("jsonschema: CRD %q has no openAPIV3Schema", doc.Metadata.Name)
		}
		if s.Title == "" {
			s.Title = doc.Spec.Names.Kind
		}
		return s, nil
	}
	return nil, ErrCRDNotFound
}

// unwrapCRDSchema prefers the first served version, then any version with a
// schema, then the legacy spec.validation location.
func unwrapCRDSchema(doc *crdDocument) *Schema {
	var first *Schema
	for _, v := range doc.Spec.Versions {
		s := v.Schema.OpenAPIV3Schema
		if s == nil {
			continue
		}
		if v.Served == nil || *v.Served {
			return s
		}
		if first == nil {
			first = s
		}
	}
	if first != nil {
		return first
	}
	return doc.Spec.Validation.OpenAPIV3Schema
}
