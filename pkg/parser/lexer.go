// Package parser turns a decoded template buffer into a token stream and
// the token stream into a flat tag/attribute tree. Lexing tries a fixed
// priority order of productions at every position (first match wins); tree
// building is a backtracking recursive descent over the token stream.
package parser

import (
	"github.com/webcc-dev/webcc/pkg/htmlast"
)

// lexer holds the state of one pass over the source buffer.
type lexer struct {
	src    []rune
	pos    int
	tokens []htmlast.Token
	max    int

	// First fatal error; once set, lexing stops.
	err *htmlast.SourceError
}

// Lex tokenizes the buffer. On failure the partial token stream is
// discarded and the returned error carries the rune offset of the fault.
func Lex(src []rune, limits htmlast.Limits) ([]htmlast.Token, error) {
	limits = limits.Normalized()
	lx := &lexer{
		src:    src,
		tokens: make([]htmlast.Token, 0, min(len(src), limits.MaxTokens)),
		max:    limits.MaxTokens,
	}

	for lx.pos < len(lx.src) && lx.err == nil {
		if !lx.next() {
			lx.fail(lx.pos, ErrUnrecognizedToken)
		}
	}

	if lx.err != nil {
		return nil, lx.err
	}
	return lx.tokens, nil
}

// next tries every production at the current position in priority order.
// CDATA regions come first so their interiors are never tokenized, strings
// before the bare quote tokens, keywords before identifiers.
func (lx *lexer) next() bool {
	return lx.region(kwCommentStart, kwCommentEnd, htmlast.TokComment) ||
		lx.region(kwScriptStart, kwScriptEnd, htmlast.TokScript) ||
		lx.region(kwStyleStart, kwStyleEnd, htmlast.TokStyle) ||
		lx.stringLiteral() ||
		lx.single('>', htmlast.TokGreaterThan) ||
		lx.single('<', htmlast.TokLessThan) ||
		lx.single('\'', htmlast.TokSingleQuote) ||
		lx.single('"', htmlast.TokDoubleQuote) ||
		lx.single('&', htmlast.TokAmpersand) ||
		lx.single('!', htmlast.TokBang) ||
		lx.single('=', htmlast.TokEqual) ||
		lx.single('-', htmlast.TokHyphen) ||
		lx.single(':', htmlast.TokColon) ||
		lx.single('{', htmlast.TokOpenBrace) ||
		lx.single('}', htmlast.TokCloseBrace) ||
		lx.single('(', htmlast.TokOpenParen) ||
		lx.single(')', htmlast.TokCloseParen) ||
		lx.single(';', htmlast.TokSemicolon) ||
		lx.single('*', htmlast.TokAsterisk) ||
		lx.single('#', htmlast.TokHash) ||
		lx.single(',', htmlast.TokComma) ||
		lx.single('/', htmlast.TokSlash) ||
		lx.keyword(kwHTML, htmlast.TokHTML) ||
		lx.keyword(kwData, htmlast.TokData) ||
		lx.keyword(kwInclude, htmlast.TokInclude) ||
		lx.identifier() ||
		lx.whitespace() ||
		lx.text()
}

// region matches a CDATA region: the literal start marker, then everything
// up to the end marker. The end marker itself is left for ordinary
// tokenization on the next pass. A start marker with no end marker before
// the end of input is fatal.
func (lx *lexer) region(start, end []rune, kind htmlast.TokenKind) bool {
	if !hasPrefix(lx.src[lx.pos:], start) {
		return false
	}

	interior := lx.pos + len(start)
	rel := indexOf(lx.src[interior:], end)
	if rel < 0 {
		lx.fail(lx.pos, ErrUnterminatedRegion)
		return true
	}

	lx.emit(kind, lx.pos, interior+rel)
	lx.pos = interior + rel
	return true
}

// stringLiteral matches a quoted literal. The backslash escapes exactly
// the next character; the emitted span excludes the quotes. Reaching the
// end of input before the closing quote is fatal, located at the opening
// quote.
func (lx *lexer) stringLiteral() bool {
	quote := lx.src[lx.pos]
	if quote != '"' && quote != '\'' {
		return false
	}

	for p := lx.pos + 1; p < len(lx.src); p++ {
		switch lx.src[p] {
		case '\\':
			p++
		case quote:
			lx.emit(htmlast.TokString, lx.pos+1, p)
			lx.pos = p + 1
			return true
		}
	}

	lx.fail(lx.pos, ErrUnterminatedString)
	return true
}

func (lx *lexer) single(ch rune, kind htmlast.TokenKind) bool {
	if lx.src[lx.pos] != ch {
		return false
	}
	lx.emit(kind, lx.pos, lx.pos+1)
	lx.pos++
	return true
}

// keyword matches a reserved word. The next character must not continue an
// identifier, so a keyword never truncates a longer name.
func (lx *lexer) keyword(word []rune, kind htmlast.TokenKind) bool {
	if !hasPrefix(lx.src[lx.pos:], word) {
		return false
	}
	end := lx.pos + len(word)
	if end < len(lx.src) && hasTrait(lx.src[end], charIdentifier|charDigit) {
		return false
	}

	lx.emit(kind, lx.pos, end)
	lx.pos = end
	return true
}

func (lx *lexer) identifier() bool {
	if !hasTrait(lx.src[lx.pos], charIdentifier) {
		return false
	}

	p := lx.pos + 1
	for p < len(lx.src) && hasTrait(lx.src[p], charIdentifier|charDigit) {
		p++
	}

	lx.emit(htmlast.TokIdentifier, lx.pos, p)
	lx.pos = p
	return true
}

func (lx *lexer) whitespace() bool {
	p := lx.pos
	for p < len(lx.src) && hasTrait(lx.src[p], charWhitespace) {
		p++
	}
	if p == lx.pos {
		return false
	}

	lx.emit(htmlast.TokWhitespace, lx.pos, p)
	lx.pos = p
	return true
}

// text is the production of last resort: a maximal run of characters that
// are not structurally special, not whitespace, and cannot start an
// identifier. Digits and everything above ASCII land here.
func (lx *lexer) text() bool {
	const stop = charNotText | charWhitespace | charIdentifier

	p := lx.pos
	for p < len(lx.src) && !hasTrait(lx.src[p], stop) {
		p++
	}
	if p == lx.pos {
		return false
	}

	lx.emit(htmlast.TokText, lx.pos, p)
	lx.pos = p
	return true
}

func (lx *lexer) emit(kind htmlast.TokenKind, start, end int) {
	if len(lx.tokens) >= lx.max {
		lx.fail(start, ErrTokenCapacity)
		return
	}
	lx.tokens = append(lx.tokens, htmlast.Token{Kind: kind, StartOffset: start, EndOffset: end})
}

func (lx *lexer) fail(offset int, err error) {
	if lx.err == nil {
		lx.err = htmlast.NewSourceError(htmlast.StageLex, offset, err)
	}
}
