package tsdecl

import "strings"

// Comment holds an optional doc comment. It is embedded by the nodes that
// can carry one; each of them exposes its own chainable WithComment.
type Comment struct {
	text string
}

// CommentText returns the stored comment text ("" when unset).
func (c *Comment) CommentText() string { return c.text }

// PrintComment renders the comment as a doc block at the given indentation.
// A single-line comment renders inline; text containing a newline renders
// one " * " line per input line. An unset comment renders as "".
func (c *Comment) PrintComment(indent int) string {
	if c.text == "" {
		return ""
	}
	ind := pad(indent)
	if !strings.Contains(c.text, "\n") {
		return ind + "/** " + c.text + " */\n"
	}
	lines := strings.Split(c.text, "\n")
	b := &strings.Builder{}
	b.WriteString(ind)
	b.WriteString("/**\n")
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ind)
		b.WriteString(" * ")
		b.WriteString(l)
	}
	b.WriteString("\n")
	b.WriteString(ind)
	b.WriteString(" */\n")
	return b.String()
}

func (c *Comment) setComment(text string) { c.text = text }
