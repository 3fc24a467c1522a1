package jsonschema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	js "github.com/reoring/tsdecl/jsonschema"
)

const userJSON = `{
  "title": "User",
  "type": "object",
  "required": ["id"],
  "properties": {
    "zeta": {"type": "string"},
    "id": {"type": ["string", "null"], "description": "primary key"},
    "alpha": {"type": "array", "items": {"$ref": "#/$defs/Tag"}},
    "extra": {"type": "object", "additionalProperties": {"type": "number"}},
    "closed": {"type": "object", "additionalProperties": false}
  },
  "$defs": {
    "Tag": {"type": "string", "enum": ["a", "b"]},
    "Base": {"type": "object", "properties": {"x": {"type": "integer"}}}
  }
}`

func TestDecode_PreservesOrder(t *testing.T) {
	s, err := js.Decode([]byte(userJSON))
	require.NoError(t, err)

	assert.Equal(t, "User", s.Title)
	assert.True(t, s.IsObject())
	assert.True(t, s.IsRequired("id"))
	assert.False(t, s.IsRequired("zeta"))
	assert.Equal(t, []string{"zeta", "id", "alpha", "extra", "closed"}, s.Properties.Names())
	assert.Equal(t, []string{"Tag", "Base"}, s.AllDefs().Names())

	id, ok := s.Properties.Get("id")
	require.True(t, ok)
	assert.Equal(t, js.TypeSet{"string", "null"}, id.Type)
	assert.Equal(t, "primary key", id.Description)

	alpha, _ := s.Properties.Get("alpha")
	require.NotNil(t, alpha.Items)
	assert.Equal(t, "#/$defs/Tag", alpha.Items.Ref)

	extra, _ := s.Properties.Get("extra")
	require.NotNil(t, extra.AdditionalProperties)
	assert.True(t, extra.AdditionalProperties.Allowed)
	require.NotNil(t, extra.AdditionalProperties.Schema)
	assert.True(t, extra.AdditionalProperties.Schema.Type.Has("number"))

	closed, _ := s.Properties.Get("closed")
	require.NotNil(t, closed.AdditionalProperties)
	assert.False(t, closed.AdditionalProperties.Allowed)
	assert.Nil(t, closed.AdditionalProperties.Schema)

	tag, ok := s.Defs.Get("Tag")
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, tag.Enum)
}

func TestDecode_InvalidType(t *testing.T) {
	_, err := js.Decode([]byte(`{"type": 3}`))
	require.Error(t, err)
}

func TestDecode_NullMembers(t *testing.T) {
	s, err := js.Decode([]byte(`{"type": "object", "properties": null, "$defs": null, "definitions": null}`))
	require.NoError(t, err)
	assert.Empty(t, s.Properties)
	assert.Empty(t, s.AllDefs())

	s, err = js.DecodeYAML([]byte("type: object\nproperties:\n$defs: ~\n"))
	require.NoError(t, err)
	assert.Empty(t, s.Properties)
	assert.Empty(t, s.AllDefs())
}

func TestDecode_ConstPresence(t *testing.T) {
	s, err := js.Decode([]byte(`{"properties": {"a": {"const": null}, "b": {"type": "null"}}}`))
	require.NoError(t, err)
	a, _ := s.Properties.Get("a")
	b, _ := s.Properties.Get("b")
	assert.True(t, a.HasConst)
	assert.Nil(t, a.Const)
	assert.False(t, b.HasConst)

	s, err = js.DecodeYAML([]byte("properties:\n  a:\n    const: null\n  b:\n    type: \"null\"\n"))
	require.NoError(t, err)
	a, _ = s.Properties.Get("a")
	b, _ = s.Properties.Get("b")
	assert.True(t, a.HasConst)
	assert.False(t, b.HasConst)
}

func TestDecodeYAML_PreservesOrder(t *testing.T) {
	src := `
title: Order
type: object
properties:
  total:
    type: number
  items:
    type: array
    items:
      type: string
  meta:
    additionalProperties: true
definitions:
  Money:
    type: [number, "null"]
`
	s, err := js.DecodeYAML([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"total", "items", "meta"}, s.Properties.Names())
	assert.Equal(t, []string{"Money"}, s.AllDefs().Names())

	money, _ := s.Definitions.Get("Money")
	assert.Equal(t, js.TypeSet{"number", "null"}, money.Type)

	meta, _ := s.Properties.Get("meta")
	require.NotNil(t, meta.AdditionalProperties)
	assert.True(t, meta.AdditionalProperties.Allowed)
}

const crdBundle = `apiVersion: v1
kind: ConfigMap
metadata:
  name: unrelated
---
apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: widgets.example.com
spec:
  names:
    kind: Widget
  versions:
    - name: v1alpha1
      served: false
      schema:
        openAPIV3Schema:
          type: object
          properties:
            old:
              type: string
    - name: v1
      served: true
      schema:
        openAPIV3Schema:
          type: object
          properties:
            spec:
              type: object
              properties:
                size:
                  type: integer
---
apiVersion: apiextensions.k8s.io/v1beta1
kind: CustomResourceDefinition
metadata:
  name: gadgets.example.com
spec:
  names:
    kind: Gadget
  validation:
    openAPIV3Schema:
      type: object
      properties:
        legacy:
          type: boolean
`

func TestDecodeCRD_ServedVersion(t *testing.T) {
	s, err := js.DecodeCRD([]byte(crdBundle), "Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget", s.Title)
	assert.Equal(t, []string{"spec"}, s.Properties.Names())
}

func TestDecodeCRD_LegacyValidation(t *testing.T) {
	s, err := js.DecodeCRD([]byte(crdBundle), "Gadget")
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy"}, s.Properties.Names())
}

func TestDecodeCRD_FirstWhenKindEmpty(t *testing.T) {
	s, err := js.DecodeCRD([]byte(crdBundle), "")
	require.NoError(t, err)
	assert.Equal(t, "Widget", s.Title)
}

func TestDecodeCRD_NotFound(t *testing.T) {
	_, err := js.DecodeCRD([]byte(crdBundle), "Missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, js.ErrCRDNotFound))
}
