package tsgen

// EnumStyle selects how string enums are rendered.
type EnumStyle int

const (
	// EnumUnion renders `'a' | 'b'`.
	EnumUnion EnumStyle = iota
	// EnumDeclaration renders top-level string enums as `enum X { A = 'a' }`.
	// Inline enums stay unions since enums cannot be declared inline.
	EnumDeclaration
)

// Options controls declaration generation.
type Options struct {
	// RootName names the root declaration. Defaults to the schema title, then "Root".
	RootName string
	// Export marks every generated declaration as exported.
	Export bool
	// EnumStyle selects how top-level string enums render.
	EnumStyle EnumStyle
	// NoComments drops description/deprecated doc comments.
	NoComments bool
	// Strict turns warnings into a returned Issues error.
	Strict bool
}

const defaultRootName = "Root"
