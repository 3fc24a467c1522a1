package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/tsdecl/tsgen"
)

const crdBundle = `apiVersion: v1
kind: ConfigMap
metadata:
  name: unrelated
---
apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
spec:
  names:
    kind: Widget
  versions:
    - name: v1
      served: true
      schema:
        openAPIV3Schema:
          type: object
          required: [size]
          properties:
            size:
              type: integer
              description: Widget size.
`

func TestSchemaConfig_GenerateCRD(t *testing.T) {
	cfg := &SchemaConfig{MainConfig: &MainConfig{}, CRD: "Widget", Export: true}
	got, issues, err := cfg.generate([]byte(crdBundle))
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, "export interface Widget {\n  /** Widget size. */\n  size: number\n}", got)
}

func TestSchemaConfig_GenerateStrict(t *testing.T) {
	cfg := &SchemaConfig{MainConfig: &MainConfig{}, Strict: true, Root: "X"}
	_, issues, err := cfg.generate([]byte(`{"$ref": "other.json"}`))
	require.Error(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, tsgen.CodeUnresolvedRef, issues[0].Code)
}

func TestSchemaConfig_EnumsOption(t *testing.T) {
	cfg := &SchemaConfig{MainConfig: &MainConfig{}, Enums: true, YAML: true, Root: "Mode"}
	got, _, err := cfg.generate([]byte("enum: [fast, slow]\n"))
	require.NoError(t, err)
	assert.Equal(t, "enum Mode {\n  Fast = 'fast',\n  Slow = 'slow'\n}", got)
}

func TestEmit_WriteAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "types.ts")
	var buf bytes.Buffer

	differs, err := emit(&buf, path, false, "type A = string")
	require.NoError(t, err)
	assert.False(t, differs)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "type A = string\n", string(data))

	differs, err = emit(&buf, path, true, "type A = string")
	require.NoError(t, err)
	assert.False(t, differs)
	assert.Empty(t, buf.String())

	differs, err = emit(&buf, path, true, "type A = number")
	require.NoError(t, err)
	assert.True(t, differs)
	assert.Equal(t, "-type A = string\n+type A = number\n", buf.String())
}

func TestEmit_Stdout(t *testing.T) {
	var buf bytes.Buffer
	_, err := emit(&buf, "", false, "type A = string")
	require.NoError(t, err)
	assert.Equal(t, "type A = string\n", buf.String())

	_, err = emit(&buf, "", true, "type A = string")
	assert.Error(t, err)
}

func TestLineDiff(t *testing.T) {
	got := lineDiff("a\nb\nc\n", "a\nx\nc\n", false)
	assert.Equal(t, " a\n-b\n+x\n c\n", got)
}
