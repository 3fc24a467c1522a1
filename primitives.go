package tsdecl

import "strconv"

// Keyword identifies one of the primitive type keywords.
type Keyword int

const (
	KeywordString Keyword = iota
	KeywordNumber
	KeywordBoolean
	KeywordAny
	KeywordNull
	KeywordUndefined
	KeywordVoid
	KeywordNever
	KeywordUnknown
	KeywordObject
	KeywordSymbol
	KeywordBigInt
	KeywordThis
	KeywordFunction
	KeywordTrue
	KeywordFalse
)

var keywordNames = [...]string{
	KeywordString:    "string",
	KeywordNumber:    "number",
	KeywordBoolean:   "boolean",
	KeywordAny:       "any",
	KeywordNull:      "null",
	KeywordUndefined: "undefined",
	KeywordVoid:      "void",
	KeywordNever:     "never",
	KeywordUnknown:   "unknown",
	KeywordObject:    "object",
	KeywordSymbol:    "symbol",
	KeywordBigInt:    "bigint",
	KeywordThis:      "this",
	KeywordFunction:  "function",
	KeywordTrue:      "true",
	KeywordFalse:     "false",
}

// Keywords lists every primitive keyword in declaration order.
func Keywords() []Keyword {
	out := make([]Keyword, len(keywordNames))
	for i := range keywordNames {
		out[i] = Keyword(i)
	}
	return out
}

func (k Keyword) String() string {
	if k >= 0 && int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return "Keyword(" + strconv.Itoa(int(k)) + ")"
}

// Primitive is a built-in type keyword such as string or never.
// It is immutable after construction.
type Primitive struct {
	kw Keyword
}

// NewPrimitive returns a primitive for k. The package-level instances
// (String, Number, ...) can be shared freely since primitives never change.
func NewPrimitive(k Keyword) *Primitive { return &Primitive{kw: k} }

// Keyword returns the primitive's keyword.
func (p *Primitive) Keyword() Keyword { return p.kw }

// Print returns the keyword; indentation is irrelevant for leaves.
func (p *Primitive) Print(int) string { return p.kw.String() }
func (p *Primitive) String() string   { return p.kw.String() }
func (p *Primitive) typeExpression()  {}

// Pre-built primitives, one per keyword.
var (
	String    = NewPrimitive(KeywordString)
	Number    = NewPrimitive(KeywordNumber)
	Boolean   = NewPrimitive(KeywordBoolean)
	Any       = NewPrimitive(KeywordAny)
	Null      = NewPrimitive(KeywordNull)
	Undefined = NewPrimitive(KeywordUndefined)
	Void      = NewPrimitive(KeywordVoid)
	Never     = NewPrimitive(KeywordNever)
	Unknown   = NewPrimitive(KeywordUnknown)
	Object    = NewPrimitive(KeywordObject)
	Symbol    = NewPrimitive(KeywordSymbol)
	BigInt    = NewPrimitive(KeywordBigInt)
	This      = NewPrimitive(KeywordThis)
	Function  = NewPrimitive(KeywordFunction)
	True      = NewPrimitive(KeywordTrue)
	False     = NewPrimitive(KeywordFalse)
)

// StringLiteral is a string literal type. The payload is printed between
// single quotes as-is: quotes and backslashes are not escaped, so callers
// must not pass payloads containing them.
type StringLiteral struct {
	Value string
}

// NewStringLiteral returns a literal type for value.
func NewStringLiteral(value string) *StringLiteral { return &StringLiteral{Value: value} }

func (s *StringLiteral) Print(int) string { return "'" + s.Value + "'" }
func (s *StringLiteral) String() string   { return s.Print(0) }
func (s *StringLiteral) typeExpression()  {}
