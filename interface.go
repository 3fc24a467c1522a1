package tsdecl

import "strings"

// InterfaceDecl is `interface Name extends A, B { ... }`.
type InterfaceDecl struct {
	Comment
	Name       string
	Extends    []*InterfaceDecl
	Definition *ObjectType
	Exported   bool
}

// NewInterface returns an interface with the given body. A nil definition
// starts an empty body that can be filled through Definition.AddProperty.
func NewInterface(name string, definition *ObjectType) *InterfaceDecl {
	if definition == nil {
		definition = NewObjectType()
	}
	return &InterfaceDecl{Name: name, Definition: definition}
}

// AddExtend appends a base interface. Bases are printed by name only.
func (d *InterfaceDecl) AddExtend(base *InterfaceDecl) *InterfaceDecl {
	d.Extends = append(d.Extends, base)
	return d
}

// AddProperty appends p to the interface body.
func (d *InterfaceDecl) AddProperty(p *ObjectProperty) *InterfaceDecl {
	d.Definition.AddProperty(p)
	return d
}

// Export marks the declaration as exported.
func (d *InterfaceDecl) Export() *InterfaceDecl {
	d.Exported = true
	return d
}

// WithComment sets the doc comment printed above the declaration.
func (d *InterfaceDecl) WithComment(text string) *InterfaceDecl {
	d.setComment(text)
	return d
}

func (d *InterfaceDecl) Print(indent int) string {
	b := &strings.Builder{}
	b.WriteString(d.PrintComment(indent))
	b.WriteString(pad(indent))
	if d.Exported {
		b.WriteString("export ")
	}
	b.WriteString("interface ")
	b.WriteString(d.Name)
	if len(d.Extends) > 0 {
		names := make([]string, 0, len(d.Extends))
		for _, base := range d.Extends {
			names = append(names, base.Name)
		}
		b.WriteString(" extends ")
		b.WriteString(strings.Join(names, ", "))
	}
	b.WriteString(" ")
	b.WriteString(d.Definition.Print(indent))
	return b.String()
}

func (d *InterfaceDecl) String() string    { return d.Print(0) }
func (d *InterfaceDecl) DeclName() string  { return d.Name }
func (d *InterfaceDecl) typeExpression()   {}
func (d *InterfaceDecl) statement()        {}
func (d *InterfaceDecl) namedDeclaration() {}
