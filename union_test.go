package tsdecl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/tsdecl"
)

func TestUnion_Print(t *testing.T) {
	u := tsdecl.NewUnion(tsdecl.String, tsdecl.NewStringLiteral("a")).AddMember(tsdecl.Null)
	if got, want := u.Print(0), "string | 'a' | null"; got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestUnion_IntersectionMemberParenthesised(t *testing.T) {
	a := tsdecl.NewTypeAlias("A", tsdecl.String)
	b := tsdecl.NewInterface("B", nil)
	c := tsdecl.NewEnum("C")
	u := tsdecl.NewUnion(tsdecl.NewIntersection(a, b), c)
	if got, want := u.Print(0), "( A & B ) | C"; got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestUnion_NestedUnionNotParenthesised(t *testing.T) {
	u := tsdecl.NewUnion(tsdecl.NewUnion(tsdecl.String, tsdecl.Number), tsdecl.Null)
	if got, want := u.Print(0), "string | number | null"; got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestUnion_MergedIntersectionMember(t *testing.T) {
	u := tsdecl.NewUnion(
		tsdecl.NewIntersection(
			tsdecl.NewObjectType(tsdecl.NewProperty("a", tsdecl.String)),
			tsdecl.NewObjectType(tsdecl.NewProperty("b", tsdecl.Number)),
		),
		tsdecl.Null,
	)
	want := "( {\n  a: string,\n  b: number\n} ) | null"
	if diff := cmp.Diff(want, u.Print(0)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUnion_Empty(t *testing.T) {
	if got := tsdecl.NewUnion().Print(0); got != "" {
		t.Fatalf("got=%q want empty", got)
	}
}

func TestArray_Print(t *testing.T) {
	cases := []struct {
		name string
		in   tsdecl.TypeExpression
		want string
	}{
		{"primitive", tsdecl.NewArray(tsdecl.String), "string[]"},
		{"union", tsdecl.NewArray(tsdecl.NewUnion(tsdecl.String, tsdecl.Number)), "( string | number )[]"},
		{"intersection", tsdecl.NewArray(tsdecl.NewIntersection(tsdecl.String, tsdecl.Number)), "( string & number )[]"},
		{"nested", tsdecl.NewArray(tsdecl.NewArray(tsdecl.Boolean)), "boolean[][]"},
		{"reference", tsdecl.NewArray(tsdecl.NewTypeAlias("ID", tsdecl.String)), "ID[]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Print(0); got != tc.want {
				t.Fatalf("got=%q want=%q", got, tc.want)
			}
		})
	}
}
