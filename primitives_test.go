package tsdecl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/tsdecl"
)

func TestPrimitive_PrintsKeyword(t *testing.T) {
	want := []string{
		"string", "number", "boolean", "any", "null", "undefined", "void", "never",
		"unknown", "object", "symbol", "bigint", "this", "function", "true", "false",
	}
	var got []string
	for _, k := range tsdecl.Keywords() {
		p := tsdecl.NewPrimitive(k)
		if p.Print(0) != p.Print(8) {
			t.Fatalf("%s: print depends on indentation", k)
		}
		got = append(got, p.Print(0))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("keywords mismatch (-want +got):\n%s", diff)
	}
}

func TestPrimitive_PrebuiltInstances(t *testing.T) {
	cases := map[*tsdecl.Primitive]string{
		tsdecl.String:    "string",
		tsdecl.Number:    "number",
		tsdecl.Boolean:   "boolean",
		tsdecl.Any:       "any",
		tsdecl.Null:      "null",
		tsdecl.Undefined: "undefined",
		tsdecl.Void:      "void",
		tsdecl.Never:     "never",
		tsdecl.Unknown:   "unknown",
		tsdecl.Object:    "object",
		tsdecl.Symbol:    "symbol",
		tsdecl.BigInt:    "bigint",
		tsdecl.This:      "this",
		tsdecl.Function:  "function",
		tsdecl.True:      "true",
		tsdecl.False:     "false",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Fatalf("got=%q want=%q", got, want)
		}
	}
}

func TestKeyword_OutOfRange(t *testing.T) {
	if got := tsdecl.Keyword(99).String(); got != "Keyword(99)" {
		t.Fatalf("got=%q", got)
	}
}

func TestStringLiteral_Quoted(t *testing.T) {
	if got := tsdecl.NewStringLiteral("abc").Print(0); got != "'abc'" {
		t.Fatalf("got=%q want=%q", got, "'abc'")
	}
}

func TestStringLiteral_NotEscaped(t *testing.T) {
	got := tsdecl.NewStringLiteral(`it's \n`).Print(0)
	if want := `'it's \n'`; got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}
