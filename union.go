package tsdecl

import "strings"

// --- Union ---

// Union is `A | B | ...`. Member order is kept in the output.
type Union struct {
	Members []TypeExpression
}

// NewUnion returns a union over members.
func NewUnion(members ...TypeExpression) *Union {
	return &Union{Members: append([]TypeExpression(nil), members...)}
}

// AddMember appends t and returns the union.
func (u *Union) AddMember(t TypeExpression) *Union {
	u.Members = append(u.Members, t)
	return u
}

// Print joins members with " | ". Intersection members are parenthesised
// because & binds tighter than |. An empty union prints as "".
func (u *Union) Print(indent int) string {
	parts := make([]string, 0, len(u.Members))
	for _, m := range u.Members {
		s := printValue(m, indent)
		if _, ok := m.(*Intersection); ok {
			s = "( " + s + " )"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " | ")
}

func (u *Union) String() string  { return u.Print(0) }
func (u *Union) typeExpression() {}

// --- Array ---

// Array is `T[]`.
type Array struct {
	Element TypeExpression
}

// NewArray returns an array of elem.
func NewArray(elem TypeExpression) *Array { return &Array{Element: elem} }

// Print renders the element followed by [], parenthesising composite
// elements so the suffix applies to the whole element.
func (a *Array) Print(indent int) string {
	s := printValue(a.Element, indent)
	switch a.Element.(type) {
	case *Union, *Intersection:
		s = "( " + s + " )"
	}
	return s + "[]"
}

func (a *Array) String() string  { return a.Print(0) }
func (a *Array) typeExpression() {}
