// Package parse supports converting the concrete syntax tree of an external
// front end into the AST. It defines the Element boundary the converter reads
// from, the error model converters report through, and the ExtrasBuilder that
// attributes trivia to the nodes as they are produced.
package parse

// Trivia element kinds the extras builder recognizes.
const (
	KindWhitespace = "WHITESPACE"
	KindComment    = "COMMENT"
	KindSemicolon  = "SEMICOLON"
	KindComma      = "COMMA"
)

// Element is one raw element of a front end's concrete syntax tree.
// Implementations wrap whatever tree representation the front end produces.
type Element interface {
	// Kind identifies the element's syntactic category. Trivia elements use
	// the Kind constants above.
	Kind() string
	// Children returns the element's children in source order, trivia
	// included.
	Children() []Element
	// Text returns the element's verbatim source text; for interior elements
	// it is the concatenation of the children's text.
	Text() string
	// Offset returns the byte offset of the element's first character in the
	// original source, for error reporting.
	Offset() int
	// IsTrivia reports whether the element carries no structure of its own:
	// whitespace, comments, semicolons and trailing commas.
	IsTrivia() bool
}
