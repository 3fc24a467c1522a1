package tsdecl

import "strings"

// Intersection is `A & B & ...`. A value of the type must satisfy every
// member simultaneously.
type Intersection struct {
	Members []TypeExpression
}

// NewIntersection returns an intersection over members.
func NewIntersection(members ...TypeExpression) *Intersection {
	return &Intersection{Members: append([]TypeExpression(nil), members...)}
}

// AddMember appends t and returns the intersection.
func (it *Intersection) AddMember(t TypeExpression) *Intersection {
	it.Members = append(it.Members, t)
	return it
}

// Print renders the intersection. When every member reduces to object
// properties the members are merged into a single object literal;
// otherwise members are joined with " & ", parenthesising unions.
// An empty intersection prints as "".
func (it *Intersection) Print(indent int) string {
	if len(it.Members) == 0 {
		return ""
	}
	if props, ok := FlattenIntersection(it.Members...); ok {
		return MergeProperties(props).Print(indent)
	}
	parts := make([]string, 0, len(it.Members))
	for _, m := range it.Members {
		s := printValue(m, indent)
		if _, ok := m.(*Union); ok {
			s = "( " + s + " )"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " & ")
}

func (it *Intersection) String() string  { return it.Print(0) }
func (it *Intersection) typeExpression() {}

// FlattenIntersection reduces members to one combined property list.
// Object shapes contribute their properties and nested intersections are
// flattened recursively. Any other member (union, primitive, literal, array,
// named declaration) makes the whole flatten fail.
func FlattenIntersection(members ...TypeExpression) ([]*ObjectProperty, bool) {
	var out []*ObjectProperty
	for _, m := range members {
		switch v := m.(type) {
		case *ObjectType:
			out = append(out, v.Properties...)
		case *Intersection:
			props, ok := FlattenIntersection(v.Members...)
			if !ok {
				return nil, false
			}
			out = append(out, props...)
		default:
			return nil, false
		}
	}
	return out, true
}

// MergeProperties groups props by name into a new object shape. Names keep
// their first-seen order. A name seen once keeps its property unchanged; a
// name seen several times becomes one property whose value intersects all
// of the values in encounter order. The input properties are not modified.
func MergeProperties(props []*ObjectProperty) *ObjectType {
	var order []string
	groups := make(map[string][]*ObjectProperty, len(props))
	for _, p := range props {
		if _, seen := groups[p.Name]; !seen {
			order = append(order, p.Name)
		}
		groups[p.Name] = append(groups[p.Name], p)
	}
	merged := &ObjectType{Properties: make([]*ObjectProperty, 0, len(order))}
	for _, name := range order {
		g := groups[name]
		if len(g) == 1 {
			merged.Properties = append(merged.Properties, g[0])
			continue
		}
		values := make([]TypeExpression, 0, len(g))
		for _, p := range g {
			values = append(values, p.Value)
		}
		merged.Properties = append(merged.Properties, NewProperty(name, NewIntersection(values...)))
	}
	return merged
}
