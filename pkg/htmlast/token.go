package htmlast

// TokenKind classifies the type of a token in the template source.
type TokenKind uint16

// Token kinds. Single-character punctuation first, in the order the lexer
// tries them, then the multi-character categories.
const (
	TokGreaterThan TokenKind = iota // '>'
	TokLessThan                     // '<'
	TokSingleQuote                  // '\''
	TokDoubleQuote                  // '"'
	TokAmpersand                    // '&'
	TokBang                         // '!'
	TokEqual                        // '='
	TokHyphen                       // '-'
	TokColon                        // ':'
	TokOpenBrace                    // '{'
	TokCloseBrace                   // '}'
	TokOpenParen                    // '('
	TokCloseParen                   // ')'
	TokSemicolon                    // ';'
	TokAsterisk                     // '*'
	TokHash                         // '#'
	TokComma                        // ','
	TokSlash                        // '/'

	TokIdentifier
	TokWhitespace
	TokText
	TokString // span excludes the surrounding quotes

	// Reserved keywords.
	TokHTML
	TokData
	TokInclude

	// CDATA regions. One opaque token from the start marker up to,
	// but not including, the end marker.
	TokComment
	TokScript
	TokStyle
)

// Token represents a classified span of code points in the source buffer.
// Offsets are rune indices, with StartOffset inclusive and EndOffset
// exclusive. Tokens never own text; they reference the caller's buffer.
type Token struct {
	Kind        TokenKind
	StartOffset int
	EndOffset   int
}

// Text returns the source text of this token from the given buffer.
func (t Token) Text(src []rune) []rune {
	if t.StartOffset < 0 || t.EndOffset > len(src) || t.StartOffset > t.EndOffset {
		return nil
	}
	return src[t.StartOffset:t.EndOffset]
}

// Len returns the length of this token in runes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return t.StartOffset == t.EndOffset
}

// String returns a short human-readable name for the kind.
func (k TokenKind) String() string {
	switch k {
	case TokGreaterThan:
		return ">"
	case TokLessThan:
		return "<"
	case TokSingleQuote:
		return "'"
	case TokDoubleQuote:
		return "\""
	case TokAmpersand:
		return "&"
	case TokBang:
		return "!"
	case TokEqual:
		return "="
	case TokHyphen:
		return "-"
	case TokColon:
		return ":"
	case TokOpenBrace:
		return "{"
	case TokCloseBrace:
		return "}"
	case TokOpenParen:
		return "("
	case TokCloseParen:
		return ")"
	case TokSemicolon:
		return ";"
	case TokAsterisk:
		return "*"
	case TokHash:
		return "#"
	case TokComma:
		return ","
	case TokSlash:
		return "/"
	case TokIdentifier:
		return "identifier"
	case TokWhitespace:
		return "whitespace"
	case TokText:
		return "text"
	case TokString:
		return "string"
	case TokHTML:
		return "html"
	case TokData:
		return "data"
	case TokInclude:
		return "include"
	case TokComment:
		return "comment"
	case TokScript:
		return "script"
	case TokStyle:
		return "style"
	default:
		return "unknown"
	}
}
