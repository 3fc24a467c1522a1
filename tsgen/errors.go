package tsgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/tsdecl/i18n"
)

// Issue codes
const (
	CodeUnresolvedRef      = "unresolved_ref"
	CodeUnsupportedKeyword = "unsupported_keyword"
	CodeUnsupportedType    = "unsupported_type"
	CodeEnumWidened        = "enum_widened"
	CodeNameCollision      = "name_collision"
)

// Issue is a single non-fatal generation problem.
type Issue struct {
	Path    string // JSON Pointer into the source schema (for example: /properties/a/items).
	Code    string // One of the codes listed above.
	Message string
}

// Issues is a collection of generation problems that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func newIssue(path, code string, data map[string]string) Issue {
	if path == "" {
		path = "/"
	}
	return Issue{Path: path, Code: code, Message: i18n.T(code, data)}
}

// pointer appends an escaped reference token to a JSON Pointer.
func pointer(base string, tokens ...string) string {
	for _, t := range tokens {
		t = strings.ReplaceAll(t, "~", "~0")
		t = strings.ReplaceAll(t, "/", "~1")
		base += "/" + t
	}
	return base
}
