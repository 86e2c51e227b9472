// Package builder re-serializes a parsed tree into markup. Only the tag
// skeleton is reproduced: every element is emitted as an open tag and a
// matching close tag in proper nesting order, while attributes and text
// runs are dropped.
package builder

import (
	"errors"

	"github.com/webcc-dev/webcc/pkg/htmlast"
)

// ErrOutputCapacity reports that the serialized skeleton would exceed the
// configured output buffer size.
var ErrOutputCapacity = errors.New("output capacity exceeded")

// writer appends runes to a fixed-capacity output buffer. Every write is
// bound-checked; the first overflow marks the writer failed and later
// writes are ignored.
type writer struct {
	out    []rune
	max    int
	failed bool
}

func (w *writer) write(span []rune) {
	if w.failed {
		return
	}
	if len(w.out)+len(span) > w.max {
		w.failed = true
		return
	}
	w.out = append(w.out, span...)
}

var (
	litLessThan    = []rune{'<'}
	litGreaterThan = []rune{'>'}
	litSlash       = []rune{'/'}
)

// Build walks the node list in creation order and emits the tag skeleton.
// Before opening a node, every open element that is not the node's parent
// is closed, innermost first; after the last node everything still open is
// closed. On overflow the error is located at the tag-name token of the
// node being emitted, or at the end of input for trailing close tags.
func Build(tree *htmlast.Tree, limits htmlast.Limits) ([]rune, error) {
	limits = limits.Normalized()

	w := &writer{
		out: make([]rune, 0, min(limits.MaxOutput, len(tree.Source))),
		max: limits.MaxOutput,
	}

	var stack []int
	for _, n := range tree.Nodes {
		for len(stack) > 0 && stack[len(stack)-1] != n.Parent {
			w.closeTag(tree, stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		}

		w.write(litLessThan)
		w.write(tree.TokenText(n.TagName))
		w.write(litGreaterThan)
		if w.failed {
			return nil, buildError(tree, n.TagName)
		}

		stack = append(stack, n.TagName)
	}

	for i := len(stack) - 1; i >= 0; i-- {
		w.closeTag(tree, stack[i])
	}
	if w.failed {
		return nil, htmlast.NewSourceError(htmlast.StageBuild, len(tree.Source), ErrOutputCapacity)
	}

	return w.out, nil
}

func (w *writer) closeTag(tree *htmlast.Tree, tagTok int) {
	w.write(litLessThan)
	w.write(litSlash)
	w.write(tree.TokenText(tagTok))
	w.write(litGreaterThan)
}

func buildError(tree *htmlast.Tree, tagTok int) error {
	offset := 0
	if tagTok >= 0 && tagTok < len(tree.Tokens) {
		offset = tree.Tokens[tagTok].StartOffset
	}
	return htmlast.NewSourceError(htmlast.StageBuild, offset, ErrOutputCapacity)
}
