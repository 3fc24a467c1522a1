package tsdecl

// TypeAliasDecl is `type Name = Target`.
type TypeAliasDecl struct {
	Comment
	Name     string
	Target   TypeExpression
	Exported bool
}

// NewTypeAlias returns an alias of target named name.
func NewTypeAlias(name string, target TypeExpression) *TypeAliasDecl {
	return &TypeAliasDecl{Name: name, Target: target}
}

// SetTarget replaces the aliased type. Generators use it to declare an
// alias before its (possibly self-referencing) target is built.
func (a *TypeAliasDecl) SetTarget(target TypeExpression) *TypeAliasDecl {
	a.Target = target
	return a
}

// Export marks the declaration as exported.
func (a *TypeAliasDecl) Export() *TypeAliasDecl {
	a.Exported = true
	return a
}

// WithComment sets the doc comment printed above the declaration.
func (a *TypeAliasDecl) WithComment(text string) *TypeAliasDecl {
	a.setComment(text)
	return a
}

func (a *TypeAliasDecl) Print(indent int) string {
	s := a.PrintComment(indent) + pad(indent)
	if a.Exported {
		s += "export "
	}
	return s + "type " + a.Name + " = " + printValue(a.Target, indent)
}

func (a *TypeAliasDecl) String() string    { return a.Print(0) }
func (a *TypeAliasDecl) DeclName() string  { return a.Name }
func (a *TypeAliasDecl) typeExpression()   {}
func (a *TypeAliasDecl) statement()        {}
func (a *TypeAliasDecl) namedDeclaration() {}
