// Package tsgen converts decoded JSON Schema documents into TypeScript
// declaration programs.
//
// Every $defs/definitions entry becomes one top-level declaration in
// document order, followed by the root schema. References to those entries
// print by name, so recursive schemas need no special handling.
package tsgen

import (
	"errors"
	"strconv"

	"github.com/reoring/tsdecl"
	"github.com/reoring/tsdecl/internal/naming"
	"github.com/reoring/tsdecl/jsonschema"
)

// ErrNilSchema is returned when Generate receives no schema.
var ErrNilSchema = errors.New("tsgen: nil schema")

type generator struct {
	opts   Options
	decls  map[string]tsdecl.NamedDeclaration // keyed by local $ref
	names  naming.Registry
	issues Issues
}

type pending struct {
	schema *jsonschema.Schema
	path   string
	decl   tsdecl.NamedDeclaration
}

// Generate builds a declaration program for root. Non-fatal problems are
// returned as Issues; with Options.Strict they are also returned as the error.
func Generate(root *jsonschema.Schema, opts Options) (*tsdecl.Program, Issues, error) {
	if root == nil {
		return nil, nil, ErrNilSchema
	}
	g := &generator{
		opts:  opts,
		decls: map[string]tsdecl.NamedDeclaration{},
	}

	// Shells first so every reference resolves regardless of order.
	var work []pending
	for _, group := range []struct {
		key  string
		defs jsonschema.Members
	}{{"$defs", root.Defs}, {"definitions", root.Definitions}} {
		for _, m := range group.defs {
			path := pointer("", group.key, m.Name)
			d := g.shell(m.Schema, Identifier(m.Name), path)
			g.decls["#"+path] = d
			work = append(work, pending{schema: m.Schema, path: path, decl: d})
		}
	}
	if !isDefsContainer(root) {
		d := g.shell(root, g.rootName(root), "")
		g.decls["#"] = d
		work = append(work, pending{schema: root, path: "", decl: d})
	}

	prog := tsdecl.NewProgram()
	for _, w := range work {
		g.fill(w)
		prog.AddStatement(w.decl)
	}
	if opts.Strict && len(g.issues) > 0 {
		return prog, g.issues, g.issues
	}
	return prog, g.issues, nil
}

func (g *generator) rootName(root *jsonschema.Schema) string {
	if g.opts.RootName != "" {
		return g.opts.RootName
	}
	if root.Title != "" {
		return Identifier(root.Title)
	}
	return defaultRootName
}

// isDefsContainer reports whether s only carries definitions.
func isDefsContainer(s *jsonschema.Schema) bool {
	if len(s.AllDefs()) == 0 {
		return false
	}
	return s.Ref == "" && len(s.Type) == 0 && len(s.Properties) == 0 && s.Items == nil &&
		len(s.Enum) == 0 && s.Const == nil && !s.HasConst && len(s.OneOf) == 0 && len(s.AnyOf) == 0 &&
		len(s.AllOf) == 0 && s.AdditionalProperties == nil
}

func isInterface(s *jsonschema.Schema) bool {
	return s != nil && s.Ref == "" && !s.Nullable && s.IsObject() && len(s.Properties) > 0 &&
		len(s.OneOf) == 0 && len(s.AnyOf) == 0 && len(s.AllOf) == 0
}

func isStringEnum(s *jsonschema.Schema) bool {
	if s == nil || s.Ref != "" || s.Nullable || len(s.Enum) == 0 {
		return false
	}
	for _, v := range s.Enum {
		if _, ok := v.(string); !ok {
			return false
		}
	}
	return true
}

func (g *generator) shell(s *jsonschema.Schema, name, path string) tsdecl.NamedDeclaration {
	name = g.uniqueName(name, path)
	comment := g.comment(s)
	switch {
	case isInterface(s):
		d := tsdecl.NewInterface(name, nil).WithComment(comment)
		if g.opts.Export {
			d.Export()
		}
		return d
	case g.opts.EnumStyle == EnumDeclaration && isStringEnum(s):
		d := tsdecl.NewEnum(name).WithComment(comment)
		if g.opts.Export {
			d.Export()
		}
		return d
	default:
		d := tsdecl.NewTypeAlias(name, nil).WithComment(comment)
		if g.opts.Export {
			d.Export()
		}
		return d
	}
}

func (g *generator) fill(w pending) {
	switch d := w.decl.(type) {
	case *tsdecl.InterfaceDecl:
		for _, p := range g.properties(w.schema, w.path) {
			d.AddProperty(p)
		}
		g.checkAdditional(w.schema, w.path)
	case *tsdecl.EnumDecl:
		var members naming.Registry
		seen := map[string]bool{}
		for _, v := range w.schema.Enum {
			s := v.(string)
			if seen[s] {
				continue
			}
			seen[s] = true
			name, _ := members.Claim(naming.Identifier(s))
			d.AddEntryValue(name, "'"+s+"'")
		}
	case *tsdecl.TypeAliasDecl:
		d.SetTarget(g.typeOf(w.schema, w.path))
	}
}

func (g *generator) uniqueName(base, path string) string {
	name, collided := g.names.Claim(base)
	if collided {
		g.warn(path, CodeNameCollision, map[string]string{"name": base})
	}
	return name
}

func (g *generator) comment(s *jsonschema.Schema) string {
	if g.opts.NoComments || s == nil {
		return ""
	}
	text := s.Description
	if s.Deprecated {
		if text != "" {
			text += "\n"
		}
		text += "@deprecated"
	}
	return text
}

func (g *generator) warn(path, code string, data map[string]string) {
	g.issues = append(g.issues, newIssue(path, code, data))
}

// typeOf maps a schema in value position.
func (g *generator) typeOf(s *jsonschema.Schema, path string) tsdecl.TypeExpression {
	if s == nil {
		return tsdecl.Unknown
	}
	var t tsdecl.TypeExpression
	if s.Ref != "" {
		t = g.resolve(s.Ref, pointer(path, "$ref"))
	} else {
		t = g.baseType(s, path)
	}
	if s.Nullable {
		t = appendMember(t, tsdecl.Null)
	}
	return t
}

func (g *generator) resolve(ref, path string) tsdecl.TypeExpression {
	if d, ok := g.decls[ref]; ok {
		return d
	}
	g.warn(path, CodeUnresolvedRef, map[string]string{"ref": ref})
	return tsdecl.Unknown
}

func (g *generator) baseType(s *jsonschema.Schema, path string) tsdecl.TypeExpression {
	switch {
	case len(s.OneOf) > 0:
		return g.union(s.OneOf, pointer(path, "oneOf"))
	case len(s.AnyOf) > 0:
		return g.union(s.AnyOf, pointer(path, "anyOf"))
	case len(s.AllOf) > 0:
		it := tsdecl.NewIntersection()
		for i, part := range s.AllOf {
			it.AddMember(g.typeOf(part, pointer(path, "allOf", strconv.Itoa(i))))
		}
		if len(s.Properties) > 0 {
			it.AddMember(g.object(s, path))
		}
		return it
	case s.Const != nil || s.HasConst:
		return g.literals([]any{s.Const}, pointer(path, "const"))
	case len(s.Enum) > 0:
		return g.literals(s.Enum, pointer(path, "enum"))
	}

	switch len(s.Type) {
	case 0:
		switch {
		case len(s.Properties) > 0:
			return g.object(s, path)
		case s.Items != nil:
			return g.array(s, path)
		}
		return tsdecl.Unknown
	case 1:
		return g.named(s.Type[0], s, path)
	}
	u := tsdecl.NewUnion()
	for _, name := range s.Type {
		u.AddMember(g.named(name, s, path))
	}
	return u
}

func (g *generator) named(typeName string, s *jsonschema.Schema, path string) tsdecl.TypeExpression {
	switch typeName {
	case "string":
		return tsdecl.String
	case "integer", "number":
		return tsdecl.Number
	case "boolean":
		return tsdecl.Boolean
	case "null":
		return tsdecl.Null
	case "array":
		return g.array(s, path)
	case "object":
		if len(s.Properties) == 0 {
			g.checkAdditional(s, path)
			return tsdecl.Object
		}
		return g.object(s, path)
	}
	g.warn(pointer(path, "type"), CodeUnsupportedType, map[string]string{"type": typeName})
	return tsdecl.Unknown
}

func (g *generator) union(parts []*jsonschema.Schema, path string) tsdecl.TypeExpression {
	u := tsdecl.NewUnion()
	for i, part := range parts {
		u.AddMember(g.typeOf(part, pointer(path, strconv.Itoa(i))))
	}
	return u
}

func (g *generator) array(s *jsonschema.Schema, path string) tsdecl.TypeExpression {
	if s.Items == nil {
		return tsdecl.NewArray(tsdecl.Unknown)
	}
	return tsdecl.NewArray(g.typeOf(s.Items, pointer(path, "items")))
}

func (g *generator) object(s *jsonschema.Schema, path string) tsdecl.TypeExpression {
	g.checkAdditional(s, path)
	return tsdecl.NewObjectType(g.properties(s, path)...)
}

func (g *generator) properties(s *jsonschema.Schema, path string) []*tsdecl.ObjectProperty {
	out := make([]*tsdecl.ObjectProperty, 0, len(s.Properties))
	for _, m := range s.Properties {
		ppath := pointer(path, "properties", m.Name)
		value := g.typeOf(m.Schema, ppath)
		if !s.IsRequired(m.Name) {
			value = appendMember(value, tsdecl.Undefined)
		}
		out = append(out, tsdecl.NewProperty(naming.PropertyKey(m.Name), value).WithComment(g.comment(m.Schema)))
	}
	return out
}

// checkAdditional reports schema-valued additionalProperties, which have no
// counterpart in the declaration model.
func (g *generator) checkAdditional(s *jsonschema.Schema, path string) {
	if s.AdditionalProperties != nil && s.AdditionalProperties.Schema != nil {
		g.warn(pointer(path, "additionalProperties"), CodeUnsupportedKeyword,
			map[string]string{"keyword": "additionalProperties"})
	}
}

// literals maps enum/const values. Strings, booleans and null are exact;
// anything else widens to its primitive with a warning.
func (g *generator) literals(values []any, path string) tsdecl.TypeExpression {
	u := tsdecl.NewUnion()
	seen := map[string]bool{}
	widened := false
	for _, v := range values {
		t, exact := literal(v)
		if !exact {
			widened = true
		}
		if key := t.String(); !seen[key] {
			seen[key] = true
			u.AddMember(t)
		}
	}
	var out tsdecl.TypeExpression = u
	if len(u.Members) == 1 {
		out = u.Members[0]
	}
	if widened {
		g.warn(path, CodeEnumWidened, map[string]string{"type": out.String()})
	}
	return out
}

func literal(v any) (tsdecl.TypeExpression, bool) {
	switch x := v.(type) {
	case string:
		return tsdecl.NewStringLiteral(x), true
	case bool:
		if x {
			return tsdecl.True, true
		}
		return tsdecl.False, true
	case nil:
		return tsdecl.Null, true
	case float64, float32, int, int64, uint64, int32, uint32:
		return tsdecl.Number, false
	}
	return tsdecl.Unknown, false
}

// appendMember returns t | extra without mutating t.
func appendMember(t, extra tsdecl.TypeExpression) tsdecl.TypeExpression {
	if u, ok := t.(*tsdecl.Union); ok {
		members := make([]tsdecl.TypeExpression, 0, len(u.Members)+1)
		members = append(members, u.Members...)
		return tsdecl.NewUnion(append(members, extra)...)
	}
	return tsdecl.NewUnion(t, extra)
}
