package parser

import "errors"

// Lexical errors. Each is surfaced wrapped in an htmlast.SourceError
// carrying the rune offset where lexing failed.
var (
	// ErrUnrecognizedToken indicates a position no lexical production
	// could consume.
	ErrUnrecognizedToken = errors.New("unrecognized token")

	// ErrUnterminatedString indicates a string literal with no closing
	// quote before the end of input. The offset is the opening quote.
	ErrUnterminatedString = errors.New("unterminated string literal")

	// ErrUnterminatedRegion indicates a comment, script, or style region
	// whose end marker never appears. The offset is the region start.
	ErrUnterminatedRegion = errors.New("unterminated region")

	// ErrTokenCapacity indicates the token stream is full. The offset is
	// the start of the token that could not be stored.
	ErrTokenCapacity = errors.New("token capacity exceeded")
)

// Syntactic errors.
var (
	// ErrInvalidSyntax indicates a token no grammar production could
	// consume.
	ErrInvalidSyntax = errors.New("invalid syntax")

	// ErrNodeCapacity indicates the node list is full.
	ErrNodeCapacity = errors.New("node capacity exceeded")

	// ErrAttrCapacity indicates the attribute list is full.
	ErrAttrCapacity = errors.New("attribute capacity exceeded")
)
