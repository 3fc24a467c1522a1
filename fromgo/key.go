// Package fromgo derives TypeScript declarations from Go struct types,
// either through reflection on values or by parsing package source.
//
// Property names follow the encoding/json rules so the declarations
// describe what json.Marshal produces.
package fromgo

import (
	"reflect"
	"strings"

	"github.com/reoring/tsdecl"
)

// Options controls declaration generation.
type Options struct {
	// Export marks every generated declaration as exported.
	Export bool
	// NoComments drops doc comments copied from source (ParseDir only).
	NoComments bool
}

// ResolveKey resolves a struct field's property name.
// Priority: tsdecl:"name=..." > json tag name > field name. A "-" in either
// tag skips the field. omitempty is taken from the json tag, or from
// tsdecl:"optional".
func ResolveKey(tag reflect.StructTag, field string) (name string, omitempty bool, skip bool) {
	name = field
	if jt := tag.Get("json"); jt != "" {
		parts := strings.Split(jt, ",")
		if parts[0] == "-" && len(parts) == 1 {
			return "", false, true
		}
		if parts[0] != "" {
			name = parts[0]
		}
		for _, opt := range parts[1:] {
			if strings.TrimSpace(opt) == "omitempty" {
				omitempty = true
			}
		}
	}
	if tt := tag.Get("tsdecl"); tt != "" {
		for _, p := range strings.Split(tt, ",") {
			p = strings.TrimSpace(p)
			switch {
			case p == "-":
				return "", false, true
			case strings.HasPrefix(p, "name="):
				name = strings.TrimPrefix(p, "name=")
			case p == "optional":
				omitempty = true
			}
		}
	}
	return name, omitempty, false
}

// hasExplicitName reports whether the tag names the field; embedded structs
// without one are flattened by encoding/json.
func hasExplicitName(tag reflect.StructTag) bool {
	if jt := tag.Get("json"); jt != "" {
		if i := strings.IndexByte(jt, ','); i != 0 {
			return true
		}
	}
	return strings.Contains(tag.Get("tsdecl"), "name=")
}

// or returns t | extra without mutating t.
func or(t, extra tsdecl.TypeExpression) tsdecl.TypeExpression {
	if u, ok := t.(*tsdecl.Union); ok {
		members := make([]tsdecl.TypeExpression, 0, len(u.Members)+1)
		members = append(members, u.Members...)
		return tsdecl.NewUnion(append(members, extra)...)
	}
	return tsdecl.NewUnion(t, extra)
}
