package tsdecl

import "strings"

// EnumEntry is one member of an enum. Value holds the initializer text
// printed after " = "; it is omitted when empty.
type EnumEntry struct {
	Name  string
	Value string
}

// EnumDecl is `enum Name { A, B = 'b' }`.
type EnumDecl struct {
	Comment
	Name     string
	Entries  []EnumEntry
	Exported bool
}

// NewEnum returns an empty enum declaration.
func NewEnum(name string) *EnumDecl { return &EnumDecl{Name: name} }

// AddEntry appends a member without an initializer.
func (e *EnumDecl) AddEntry(name string) *EnumDecl {
	e.Entries = append(e.Entries, EnumEntry{Name: name})
	return e
}

// AddEntryValue appends a member initialized with value, which is printed
// verbatim (include quotes for string members).
func (e *EnumDecl) AddEntryValue(name, value string) *EnumDecl {
	e.Entries = append(e.Entries, EnumEntry{Name: name, Value: value})
	return e
}

// Export marks the declaration as exported.
func (e *EnumDecl) Export() *EnumDecl {
	e.Exported = true
	return e
}

// WithComment sets the doc comment printed above the declaration.
func (e *EnumDecl) WithComment(text string) *EnumDecl {
	e.setComment(text)
	return e
}

func (e *EnumDecl) Print(indent int) string {
	ind := pad(indent)
	b := &strings.Builder{}
	b.WriteString(e.PrintComment(indent))
	b.WriteString(ind)
	if e.Exported {
		b.WriteString("export ")
	}
	b.WriteString("enum ")
	b.WriteString(e.Name)
	b.WriteString(" {\n")
	inner := pad(indent + 2)
	for i, en := range e.Entries {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(inner)
		b.WriteString(en.Name)
		if en.Value != "" {
			b.WriteString(" = ")
			b.WriteString(en.Value)
		}
	}
	b.WriteString("\n")
	b.WriteString(ind)
	b.WriteString("}")
	return b.String()
}

func (e *EnumDecl) String() string    { return e.Print(0) }
func (e *EnumDecl) DeclName() string  { return e.Name }
func (e *EnumDecl) typeExpression()   {}
func (e *EnumDecl) statement()        {}
func (e *EnumDecl) namedDeclaration() {}
