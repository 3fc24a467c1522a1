// Package naming builds TypeScript identifiers and property keys from
// arbitrary document keys.
package naming

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identifier turns an arbitrary key into a PascalCase identifier:
// "user-profile" -> "UserProfile", "HTTPServer" -> "HTTPServer", "9" -> "_9".
func Identifier(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$'
	})
	if len(words) == 0 {
		return "_"
	}
	title := cases.Title(language.Und, cases.NoLower)
	b := &strings.Builder{}
	for _, w := range words {
		b.WriteString(title.String(w))
	}
	out := b.String()
	if r := []rune(out)[0]; unicode.IsDigit(r) {
		out = "_" + out
	}
	return out
}

// IsIdentifier reports whether s can be used as a bare property name.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// PropertyKey quotes names that are not identifiers.
func PropertyKey(name string) string {
	if IsIdentifier(name) {
		return name
	}
	return "'" + name + "'"
}

// Registry hands out unique names by appending a numeric suffix.
type Registry struct {
	used map[string]bool
}

// Claim returns base, or base2, base3, ... when base is taken. collided
// reports whether a suffix was needed.
func (r *Registry) Claim(base string) (name string, collided bool) {
	if r.used == nil {
		r.used = map[string]bool{}
	}
	if !r.used[base] {
		r.used[base] = true
		return base, false
	}
	for i := 2; ; i++ {
		c := base + strconv.Itoa(i)
		if !r.used[c] {
			r.used[c] = true
			return c, true
		}
	}
}
