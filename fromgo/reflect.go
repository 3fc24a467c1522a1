package fromgo

import (
	"fmt"
	"reflect"
	"time"

	"github.com/reoring/tsdecl"
	"github.com/reoring/tsdecl/internal/naming"
)

var timeType = reflect.TypeOf(time.Time{})

// Generator collects declarations for Go types discovered by reflection.
// Each named type is declared once, in the order it is first reached.
type Generator struct {
	opts  Options
	prog  *tsdecl.Program
	decls map[reflect.Type]tsdecl.NamedDeclaration
	names naming.Registry
}

// New returns an empty Generator.
func New(opts Options) *Generator {
	return &Generator{
		opts:  opts,
		prog:  tsdecl.NewProgram(),
		decls: map[reflect.Type]tsdecl.NamedDeclaration{},
	}
}

// Add declares the types of values and everything they reference. Values
// may be pointers; the pointed-to type must be named.
func (g *Generator) Add(values ...any) error {
	for _, v := range values {
		t := reflect.TypeOf(v)
		if t == nil {
			return fmt.Errorf("fromgo: cannot declare nil value")
		}
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Name() == "" || t.PkgPath() == "" || t == timeType {
			return fmt.Errorf("fromgo: %s is not a named declarable type", t)
		}
		g.declare(t)
	}
	return nil
}

// Program returns the accumulated declarations.
func (g *Generator) Program() *tsdecl.Program { return g.prog }

// declare registers the named type t before mapping its body, so
// self-referencing types resolve to the declaration.
func (g *Generator) declare(t reflect.Type) tsdecl.NamedDeclaration {
	if d, ok := g.decls[t]; ok {
		return d
	}
	name, _ := g.names.Claim(t.Name())
	if t.Kind() == reflect.Struct {
		d := tsdecl.NewInterface(name, nil)
		if g.opts.Export {
			d.Export()
		}
		g.decls[t] = d
		g.prog.AddStatement(d)
		g.fields(t, d.Definition, d)
		return d
	}
	d := tsdecl.NewTypeAlias(name, nil)
	if g.opts.Export {
		d.Export()
	}
	g.decls[t] = d
	g.prog.AddStatement(d)
	d.SetTarget(g.shape(t))
	return d
}

// fields appends the properties of struct t to obj. Embedded structs
// become bases of iface when given, otherwise their fields are inlined.
func (g *Generator) fields(t reflect.Type, obj *tsdecl.ObjectType, iface *tsdecl.InterfaceDecl) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, omitempty, skip := ResolveKey(sf.Tag, sf.Name)
		if skip {
			continue
		}
		if sf.Anonymous && !hasExplicitName(sf.Tag) {
			et := sf.Type
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct && et != timeType {
				if iface != nil && et.Name() != "" {
					iface.AddExtend(g.declare(et).(*tsdecl.InterfaceDecl))
				} else {
					g.fields(et, obj, nil)
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		value := g.typeOf(sf.Type)
		if omitempty {
			value = or(value, tsdecl.Undefined)
		}
		obj.AddProperty(tsdecl.NewProperty(naming.PropertyKey(name), value))
	}
}

func (g *Generator) typeOf(t reflect.Type) tsdecl.TypeExpression {
	if t == timeType {
		return tsdecl.String
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return g.declare(t)
	}
	return g.shape(t)
}

// shape maps the structure of t without looking at its name.
func (g *Generator) shape(t reflect.Type) tsdecl.TypeExpression {
	switch t.Kind() {
	case reflect.Pointer:
		return or(g.typeOf(t.Elem()), tsdecl.Null)
	case reflect.Interface:
		return tsdecl.Unknown
	case reflect.Struct:
		obj := tsdecl.NewObjectType()
		g.fields(t, obj, nil)
		return obj
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return tsdecl.String
		}
		return tsdecl.NewArray(g.typeOf(t.Elem()))
	case reflect.Array:
		return tsdecl.NewArray(g.typeOf(t.Elem()))
	case reflect.Map:
		return tsdecl.Object
	}
	if target := basic(t); target != nil {
		return target
	}
	return tsdecl.Unknown
}

// basic maps scalar kinds; nil for anything else.
func basic(t reflect.Type) tsdecl.TypeExpression {
	switch t.Kind() {
	case reflect.String:
		return tsdecl.String
	case reflect.Bool:
		return tsdecl.Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return tsdecl.Number
	}
	return nil
}
