package fromgo

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"reflect"
	"strings"

	"github.com/reoring/tsdecl"
	"github.com/reoring/tsdecl/internal/naming"
)

// ParseDir parses the Go package in dir and declares the named types plus
// every type of the same package they reference. Doc comments on types and
// fields are copied onto the declarations. Identifiers that cannot be
// resolved inside the package map to unknown.
func ParseDir(dir string, typeNames []string, opts Options) (*tsdecl.Program, error) {
	fset := token.NewFileSet()
	notTest := func(fi fs.FileInfo) bool { return !strings.HasSuffix(fi.Name(), "_test.go") }
	pkgs, err := parser.ParseDir(fset, dir, notTest, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("fromgo: parse %s: %w", dir, err)
	}
	sp := &sourcePackage{
		opts:  opts,
		specs: map[string]typeSpec{},
		decls: map[string]tsdecl.NamedDeclaration{},
		prog:  tsdecl.NewProgram(),
	}
	for _, pkg := range pkgs {
		for _, f := range pkg.Files {
			sp.collect(f)
		}
	}
	for _, name := range typeNames {
		if _, ok := sp.specs[name]; !ok {
			return nil, fmt.Errorf("fromgo: type %q not found in %s", name, dir)
		}
		sp.declare(name)
	}
	return sp.prog, nil
}

type typeSpec struct {
	spec *ast.TypeSpec
	doc  *ast.CommentGroup
}

type sourcePackage struct {
	opts  Options
	specs map[string]typeSpec
	decls map[string]tsdecl.NamedDeclaration
	names naming.Registry
	prog  *tsdecl.Program
}

func (sp *sourcePackage) collect(f *ast.File) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name == nil || ts.TypeParams != nil {
				continue
			}
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			sp.specs[ts.Name.Name] = typeSpec{spec: ts, doc: doc}
		}
	}
}

func (sp *sourcePackage) comment(groups ...*ast.CommentGroup) string {
	if sp.opts.NoComments {
		return ""
	}
	for _, cg := range groups {
		if cg == nil {
			continue
		}
		if text := strings.TrimSpace(cg.Text()); text != "" {
			return text
		}
	}
	return ""
}

func (sp *sourcePackage) declare(name string) tsdecl.NamedDeclaration {
	if d, ok := sp.decls[name]; ok {
		return d
	}
	ts := sp.specs[name]
	declName, _ := sp.names.Claim(name)
	comment := sp.comment(ts.doc, ts.spec.Comment)

	if st, ok := ts.spec.Type.(*ast.StructType); ok {
		d := tsdecl.NewInterface(declName, nil).WithComment(comment)
		if sp.opts.Export {
			d.Export()
		}
		sp.decls[name] = d
		sp.prog.AddStatement(d)
		sp.fields(st, d.Definition, d)
		return d
	}
	d := tsdecl.NewTypeAlias(declName, nil).WithComment(comment)
	if sp.opts.Export {
		d.Export()
	}
	sp.decls[name] = d
	sp.prog.AddStatement(d)
	d.SetTarget(sp.typeOf(ts.spec.Type))
	return d
}

func (sp *sourcePackage) fields(st *ast.StructType, obj *tsdecl.ObjectType, iface *tsdecl.InterfaceDecl) {
	if st.Fields == nil {
		return
	}
	for _, field := range st.Fields.List {
		var tag reflect.StructTag
		if field.Tag != nil {
			tag = reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		}
		if len(field.Names) == 0 {
			sp.embedded(field, tag, obj, iface)
			continue
		}
		for _, ident := range field.Names {
			if !ident.IsExported() {
				continue
			}
			name, omitempty, skip := ResolveKey(tag, ident.Name)
			if skip {
				continue
			}
			sp.property(field, name, omitempty, obj)
		}
	}
}

func (sp *sourcePackage) embedded(field *ast.Field, tag reflect.StructTag, obj *tsdecl.ObjectType, iface *tsdecl.InterfaceDecl) {
	expr := field.Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	ident, _ := expr.(*ast.Ident)
	if ident == nil {
		return
	}
	name, omitempty, skip := ResolveKey(tag, ident.Name)
	if skip {
		return
	}
	if hasExplicitName(tag) {
		sp.property(field, name, omitempty, obj)
		return
	}
	ts, ok := sp.specs[ident.Name]
	if !ok {
		return
	}
	st, ok := ts.spec.Type.(*ast.StructType)
	if !ok {
		if ident.IsExported() {
			sp.property(field, name, omitempty, obj)
		}
		return
	}
	if iface != nil {
		iface.AddExtend(sp.declare(ident.Name).(*tsdecl.InterfaceDecl))
		return
	}
	sp.fields(st, obj, nil)
}

func (sp *sourcePackage) property(field *ast.Field, name string, omitempty bool, obj *tsdecl.ObjectType) {
	value := sp.typeOf(field.Type)
	if omitempty {
		value = or(value, tsdecl.Undefined)
	}
	obj.AddProperty(tsdecl.NewProperty(naming.PropertyKey(name), value).
		WithComment(sp.comment(field.Doc, field.Comment)))
}

func (sp *sourcePackage) typeOf(expr ast.Expr) tsdecl.TypeExpression {
	switch x := expr.(type) {
	case *ast.Ident:
		if t, ok := builtinTypes[x.Name]; ok {
			return t
		}
		if _, ok := sp.specs[x.Name]; ok {
			return sp.declare(x.Name)
		}
	case *ast.ParenExpr:
		return sp.typeOf(x.X)
	case *ast.StarExpr:
		return or(sp.typeOf(x.X), tsdecl.Null)
	case *ast.ArrayType:
		if elt, ok := x.Elt.(*ast.Ident); ok && x.Len == nil && elt.Name == "byte" {
			return tsdecl.String
		}
		return tsdecl.NewArray(sp.typeOf(x.Elt))
	case *ast.MapType:
		return tsdecl.Object
	case *ast.StructType:
		obj := tsdecl.NewObjectType()
		sp.fields(x, obj, nil)
		return obj
	case *ast.SelectorExpr:
		if pkg, ok := x.X.(*ast.Ident); ok && pkg.Name == "time" && x.Sel.Name == "Time" {
			return tsdecl.String
		}
	}
	return tsdecl.Unknown
}

var builtinTypes = map[string]tsdecl.TypeExpression{
	"string":  tsdecl.String,
	"bool":    tsdecl.Boolean,
	"int":     tsdecl.Number,
	"int8":    tsdecl.Number,
	"int16":   tsdecl.Number,
	"int32":   tsdecl.Number,
	"int64":   tsdecl.Number,
	"uint":    tsdecl.Number,
	"uint8":   tsdecl.Number,
	"uint16":  tsdecl.Number,
	"uint32":  tsdecl.Number,
	"uint64":  tsdecl.Number,
	"float32": tsdecl.Number,
	"float64": tsdecl.Number,
	"byte":    tsdecl.Number,
	"rune":    tsdecl.Number,
	"any":     tsdecl.Unknown,
	"error":   tsdecl.Unknown,
}
