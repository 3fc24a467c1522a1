package tsdecl

import "strings"

// TypeExpression is implemented by every node that denotes a type value.
// The set is closed: only types in this package implement it.
type TypeExpression interface {
	// Print renders the expression with nested blocks indented relative to indent spaces.
	Print(indent int) string
	// String renders the expression at indentation 0.
	String() string

	typeExpression()
}

// NamedDeclaration is a top-level declaration that can also be used as a
// value. When used as a value only its name is printed, never its body.
type NamedDeclaration interface {
	TypeExpression
	Statement
	// DeclName returns the identifier the declaration introduces.
	DeclName() string

	namedDeclaration()
}

// Statement is a top-level member of a Program.
type Statement interface {
	Print(indent int) string
	String() string

	statement()
}

// printValue renders t in value position: named declarations collapse to
// their name, everything else prints itself.
func printValue(t TypeExpression, indent int) string {
	switch v := t.(type) {
	case nil:
		return ""
	case NamedDeclaration:
		return v.DeclName()
	default:
		return v.Print(indent)
	}
}

// pad returns n spaces.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
