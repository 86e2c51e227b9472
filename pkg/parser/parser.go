package parser

import (
	"github.com/webcc-dev/webcc/pkg/htmlast"
)

// treeParser walks the token stream once, left to right, trying grammar
// productions in a fixed order at each position. The open-element stack
// keeps a permanent root sentinel at index 0 so the current top is always
// defined.
type treeParser struct {
	tree  *htmlast.Tree
	pos   int
	stack []int

	maxNodes int
	maxAttrs int

	// First fatal error; capacity faults are fatal even inside a
	// tentative production.
	err *htmlast.SourceError
}

// Parse tokenizes the buffer and builds the tag/attribute tree. On failure
// no usable partial tree is returned; the error carries the rune offset of
// the offending token.
func Parse(src []rune, limits htmlast.Limits) (*htmlast.Tree, error) {
	limits = limits.Normalized()

	tokens, err := Lex(src, limits)
	if err != nil {
		return nil, err
	}

	p := &treeParser{
		tree: &htmlast.Tree{
			Source: src,
			Tokens: tokens,
			Nodes:  make([]htmlast.TagNode, 0, min(len(tokens), limits.MaxNodes)),
		},
		stack:    []int{htmlast.RootNode},
		maxNodes: limits.MaxNodes,
		maxAttrs: limits.MaxAttrs,
	}

	for p.pos < len(p.tree.Tokens) && p.err == nil {
		if !p.readNode() {
			p.fail(p.pos, ErrInvalidSyntax)
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	return p.tree, nil
}

// readNode tries the grammar alternatives at the current token.
func (p *treeParser) readNode() bool {
	return p.openTag() ||
		p.closeTag() ||
		p.variable() ||
		p.textRun() ||
		p.whitespaceRun()
}

// kindAt returns the kind of the token at index i and whether i is in
// range; productions treat end-of-stream as "no match".
func (p *treeParser) kindAt(i int) (htmlast.TokenKind, bool) {
	if i < 0 || i >= len(p.tree.Tokens) {
		return 0, false
	}
	return p.tree.Tokens[i].Kind, true
}

// expect consumes one token of the given kind, advancing *i.
func (p *treeParser) expect(i *int, kind htmlast.TokenKind) bool {
	if k, ok := p.kindAt(*i); ok && k == kind {
		*i++
		return true
	}
	return false
}

// expectName consumes a tag-name token: an identifier or the reserved
// "html" keyword.
func (p *treeParser) expectName(i *int) bool {
	if k, ok := p.kindAt(*i); ok && (k == htmlast.TokIdentifier || k == htmlast.TokHTML) {
		*i++
		return true
	}
	return false
}

// skipWhitespace consumes zero or more whitespace tokens.
func (p *treeParser) skipWhitespace(i *int) {
	for {
		if k, ok := p.kindAt(*i); !ok || k != htmlast.TokWhitespace {
			return
		}
		*i++
	}
}

// openTag parses `<name (attr)* >`. The node and stack entry are pushed
// tentatively as soon as the name is seen; if attribute parsing fails the
// push is rolled back and the whole production reports no match, leaving
// the parser free to try the remaining alternatives at the original
// position.
func (p *treeParser) openTag() bool {
	i := p.pos
	if !p.expect(&i, htmlast.TokLessThan) {
		return false
	}
	nameTok := i
	if !p.expectName(&i) {
		return false
	}
	p.skipWhitespace(&i)

	nodeMark := len(p.tree.Nodes)
	attrMark := len(p.tree.Attrs)
	stackMark := len(p.stack)

	if !p.pushNode(nameTok) {
		return true // capacity fault, already recorded
	}

	if p.attributes(nameTok, &i) {
		p.pos = i
		return true
	}
	if p.err != nil {
		return true
	}

	// Roll back the tentative node, attributes, and stack entry.
	p.tree.Nodes = p.tree.Nodes[:nodeMark]
	p.tree.Attrs = p.tree.Attrs[:attrMark]
	p.stack = p.stack[:stackMark]
	return false
}

// attributes parses `(name ws* ('=' ws* string ws*)?)* ws* '>'`. Attributes
// are appended as they are recognized; the caller unwinds them if the
// production ultimately fails.
func (p *treeParser) attributes(owner int, i *int) bool {
	for {
		k, ok := p.kindAt(*i)
		if !ok || k != htmlast.TokIdentifier {
			break
		}
		nameTok := *i
		*i++
		p.skipWhitespace(i)

		valueTok := htmlast.NoValue
		if p.expect(i, htmlast.TokEqual) {
			p.skipWhitespace(i)
			if k, ok := p.kindAt(*i); !ok || k != htmlast.TokString {
				return false
			}
			valueTok = *i
			*i++
			p.skipWhitespace(i)
		}

		if len(p.tree.Attrs) >= p.maxAttrs {
			p.fail(nameTok, ErrAttrCapacity)
			return false
		}
		p.tree.Attrs = append(p.tree.Attrs, htmlast.Attr{Owner: owner, Name: nameTok, Value: valueTok})
	}

	p.skipWhitespace(i)
	return p.expect(i, htmlast.TokGreaterThan)
}

// closeTag parses `</name ws* >` and pops the stack down to, and
// including, the nearest open element with the same tag-name text. With no
// matching ancestor the close tag is ignored.
func (p *treeParser) closeTag() bool {
	i := p.pos
	if !p.expect(&i, htmlast.TokLessThan) {
		return false
	}
	if !p.expect(&i, htmlast.TokSlash) {
		return false
	}
	nameTok := i
	if !p.expectName(&i) {
		return false
	}
	p.skipWhitespace(&i)
	if !p.expect(&i, htmlast.TokGreaterThan) {
		return false
	}

	p.popNode(nameTok)
	p.pos = i
	return true
}

// variable parses `{{ ws* identifier ws* }}` as a transient node: pushed
// and immediately popped, so it is recorded in the tree without affecting
// the nesting of what follows.
func (p *treeParser) variable() bool {
	i := p.pos
	if !p.expect(&i, htmlast.TokOpenBrace) || !p.expect(&i, htmlast.TokOpenBrace) {
		return false
	}
	p.skipWhitespace(&i)
	nameTok := i
	if !p.expect(&i, htmlast.TokIdentifier) {
		return false
	}
	p.skipWhitespace(&i)
	if !p.expect(&i, htmlast.TokCloseBrace) || !p.expect(&i, htmlast.TokCloseBrace) {
		return false
	}

	if !p.pushNode(nameTok) {
		return true
	}
	p.popNode(nameTok)

	p.pos = i
	return true
}

// textRun consumes a maximal run of text, whitespace, and bare identifier
// tokens. Prose between tags produces no node; only structure is retained.
func (p *treeParser) textRun() bool {
	i := p.pos
	for {
		k, ok := p.kindAt(i)
		if !ok || (k != htmlast.TokText && k != htmlast.TokWhitespace && k != htmlast.TokIdentifier) {
			break
		}
		i++
	}

	if i == p.pos {
		return false
	}
	p.pos = i
	return true
}

// whitespaceRun consumes a run of whitespace tokens standing alone.
func (p *treeParser) whitespaceRun() bool {
	i := p.pos
	if !p.expect(&i, htmlast.TokWhitespace) {
		return false
	}
	p.skipWhitespace(&i)
	p.pos = i
	return true
}

// pushNode appends a node whose parent is the current stack top and opens
// it on the stack. A full node list is a fatal capacity fault.
func (p *treeParser) pushNode(nameTok int) bool {
	if len(p.tree.Nodes) >= p.maxNodes {
		p.fail(nameTok, ErrNodeCapacity)
		return false
	}

	p.tree.Nodes = append(p.tree.Nodes, htmlast.TagNode{
		TagName: nameTok,
		Parent:  p.stack[len(p.stack)-1],
	})
	p.stack = append(p.stack, nameTok)
	return true
}

// popNode closes the nearest open element whose tag-name text matches the
// closing name, discarding any unmatched elements above it. Matching is by
// span content, not token kind, so `<div>` is closed only by `</div>`.
// With no match anywhere on the stack, the close is a no-op.
func (p *treeParser) popNode(nameTok int) {
	name := p.tree.TokenText(nameTok)
	for i := len(p.stack) - 1; i > 0; i-- {
		if runesEqual(p.tree.TokenText(p.stack[i]), name) {
			p.stack = p.stack[:i]
			return
		}
	}
}

// fail records the first fatal error, located at the token at index tok.
func (p *treeParser) fail(tok int, err error) {
	if p.err != nil {
		return
	}
	offset := 0
	if tok >= 0 && tok < len(p.tree.Tokens) {
		offset = p.tree.Tokens[tok].StartOffset
	} else if tok >= len(p.tree.Tokens) {
		offset = len(p.tree.Source)
	}
	p.err = htmlast.NewSourceError(htmlast.StageParse, offset, err)
}
