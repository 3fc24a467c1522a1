package tsdecl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/tsdecl"
)

func TestObjectType_Print(t *testing.T) {
	o := tsdecl.NewObjectType().
		AddProperty(tsdecl.NewProperty("a", tsdecl.String)).
		AddProperty(tsdecl.NewProperty("b", tsdecl.NewUnion(tsdecl.Number, tsdecl.Null)))
	want := "{\n  a: string,\n  b: number | null\n}"
	if diff := cmp.Diff(want, o.Print(0)); diff != "" {
		t.Fatalf("object mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectType_Empty(t *testing.T) {
	if got := tsdecl.NewObjectType().Print(0); got != "{\n\n}" {
		t.Fatalf("got=%q want=%q", got, "{\n\n}")
	}
	if got := tsdecl.NewObjectType().Print(2); got != "{\n\n  }" {
		t.Fatalf("got=%q", got)
	}
}

func TestObjectType_DuplicatesKept(t *testing.T) {
	o := tsdecl.NewObjectType(
		tsdecl.NewProperty("a", tsdecl.String),
		tsdecl.NewProperty("a", tsdecl.Number),
	)
	want := "{\n  a: string,\n  a: number\n}"
	if diff := cmp.Diff(want, o.Print(0)); diff != "" {
		t.Fatalf("object mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectType_NestedIndentation(t *testing.T) {
	inner := tsdecl.NewObjectType(tsdecl.NewProperty("street", tsdecl.String))
	deeper := tsdecl.NewObjectType(tsdecl.NewProperty("lat", tsdecl.Number))
	inner.AddProperty(tsdecl.NewProperty("geo", deeper))
	user := tsdecl.NewInterface("User", tsdecl.NewObjectType(
		tsdecl.NewProperty("address", inner),
	))
	want := "interface User {\n" +
		"  address: {\n" +
		"    street: string,\n" +
		"    geo: {\n" +
		"      lat: number\n" +
		"    }\n" +
		"  }\n" +
		"}"
	if diff := cmp.Diff(want, user.Print(0)); diff != "" {
		t.Fatalf("nesting mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectProperty_NamedDeclarationPrintsName(t *testing.T) {
	color := tsdecl.NewEnum("Color").AddEntry("Red")
	id := tsdecl.NewTypeAlias("ID", tsdecl.String)
	base := tsdecl.NewInterface("Base", tsdecl.NewObjectType(tsdecl.NewProperty("x", tsdecl.Number)))

	o := tsdecl.NewObjectType(
		tsdecl.NewProperty("color", color),
		tsdecl.NewProperty("nested", tsdecl.NewObjectType(
			tsdecl.NewProperty("id", id),
			tsdecl.NewProperty("base", base),
			tsdecl.NewProperty("list", tsdecl.NewArray(base)),
		)),
	)
	want := "{\n" +
		"  color: Color,\n" +
		"  nested: {\n" +
		"    id: ID,\n" +
		"    base: Base,\n" +
		"    list: Base[]\n" +
		"  }\n" +
		"}"
	if diff := cmp.Diff(want, o.Print(0)); diff != "" {
		t.Fatalf("reference mismatch (-want +got):\n%s", diff)
	}
}

func TestPrint_Idempotent(t *testing.T) {
	it := tsdecl.NewIntersection(
		tsdecl.NewObjectType(tsdecl.NewProperty("a", tsdecl.String)),
		tsdecl.NewObjectType(tsdecl.NewProperty("a", tsdecl.Number)),
	)
	first := it.Print(0)
	second := it.Print(0)
	if first != second {
		t.Fatalf("print not idempotent:\n%s\n---\n%s", first, second)
	}
	if n := len(it.Members); n != 2 {
		t.Fatalf("print mutated the tree: members=%d", n)
	}
}
