package tsdecl

import "strings"

// Program is an ordered list of top-level declarations.
type Program struct {
	Statements []Statement
}

// NewProgram returns a program holding stmts in order.
func NewProgram(stmts ...Statement) *Program {
	return &Program{Statements: append([]Statement(nil), stmts...)}
}

// AddStatement appends s and returns the program.
func (p *Program) AddStatement(s Statement) *Program {
	p.Statements = append(p.Statements, s)
	return p
}

// Print renders every statement separated by one blank line. No trailing
// newline or semicolons are added.
func (p *Program) Print(indent int) string {
	parts := make([]string, 0, len(p.Statements))
	for _, s := range p.Statements {
		parts = append(parts, s.Print(indent))
	}
	return strings.Join(parts, "\n\n")
}

func (p *Program) String() string { return p.Print(0) }
