package tsdecl

import "strings"

// ObjectProperty is a single `name: value` member of an object shape.
type ObjectProperty struct {
	Comment
	Name  string
	Value TypeExpression
}

// NewProperty returns a property named name of type value.
func NewProperty(name string, value TypeExpression) *ObjectProperty {
	return &ObjectProperty{Name: name, Value: value}
}

// WithComment sets the doc comment printed above the property.
func (p *ObjectProperty) WithComment(text string) *ObjectProperty {
	p.setComment(text)
	return p
}

// Print renders the property line(s), prefixed by its doc comment.
func (p *ObjectProperty) Print(indent int) string {
	return p.PrintComment(indent) + pad(indent) + p.Name + ": " + printValue(p.Value, indent)
}

func (p *ObjectProperty) String() string { return p.Print(0) }

// ObjectType is an object literal type. Property order is preserved and
// duplicate names are kept as separate lines.
type ObjectType struct {
	Properties []*ObjectProperty
}

// NewObjectType returns an object shape holding props in order.
func NewObjectType(props ...*ObjectProperty) *ObjectType {
	return &ObjectType{Properties: append([]*ObjectProperty(nil), props...)}
}

// AddProperty appends p and returns the object.
func (o *ObjectType) AddProperty(p *ObjectProperty) *ObjectType {
	o.Properties = append(o.Properties, p)
	return o
}

// Print renders the object body. Properties sit two spaces deeper than
// indent; an empty object still renders its two-line form.
func (o *ObjectType) Print(indent int) string {
	b := &strings.Builder{}
	b.WriteString("{\n")
	for i, p := range o.Properties {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(p.Print(indent + 2))
	}
	b.WriteString("\n")
	b.WriteString(pad(indent))
	b.WriteString("}")
	return b.String()
}

func (o *ObjectType) String() string  { return o.Print(0) }
func (o *ObjectType) typeExpression() {}
