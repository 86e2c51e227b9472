package htmlast_test

import (
	"testing"

	"github.com/webcc-dev/webcc/pkg/htmlast"
)

// newFixtureTree builds a tree by hand for "<a x><b y="v"></b></a>":
// two nodes, one boolean attribute and one valued attribute.
func newFixtureTree() *htmlast.Tree {
	src := []rune(`<a x><b y="v"></b></a>`)
	return &htmlast.Tree{
		Source: src,
		Tokens: []htmlast.Token{
			{Kind: htmlast.TokLessThan, StartOffset: 0, EndOffset: 1},
			{Kind: htmlast.TokIdentifier, StartOffset: 1, EndOffset: 2},  // a
			{Kind: htmlast.TokWhitespace, StartOffset: 2, EndOffset: 3},
			{Kind: htmlast.TokIdentifier, StartOffset: 3, EndOffset: 4},  // x
			{Kind: htmlast.TokGreaterThan, StartOffset: 4, EndOffset: 5},
			{Kind: htmlast.TokLessThan, StartOffset: 5, EndOffset: 6},
			{Kind: htmlast.TokIdentifier, StartOffset: 6, EndOffset: 7},  // b
			{Kind: htmlast.TokWhitespace, StartOffset: 7, EndOffset: 8},
			{Kind: htmlast.TokIdentifier, StartOffset: 8, EndOffset: 9},  // y
			{Kind: htmlast.TokEqual, StartOffset: 9, EndOffset: 10},
			{Kind: htmlast.TokString, StartOffset: 11, EndOffset: 12},    // v
			{Kind: htmlast.TokGreaterThan, StartOffset: 13, EndOffset: 14},
		},
		Nodes: []htmlast.TagNode{
			{TagName: 1, Parent: htmlast.RootNode},
			{TagName: 6, Parent: 1},
		},
		Attrs: []htmlast.Attr{
			{Owner: 1, Name: 3, Value: htmlast.NoValue},
			{Owner: 6, Name: 8, Value: 10},
		},
	}
}

func TestTreeAccessors(t *testing.T) {
	t.Parallel()

	tree := newFixtureTree()

	if got := tree.NodeName(tree.Nodes[0]); got != "a" {
		t.Errorf("NodeName(nodes[0]) = %q, want %q", got, "a")
	}
	if got := tree.NodeName(tree.Nodes[1]); got != "b" {
		t.Errorf("NodeName(nodes[1]) = %q, want %q", got, "b")
	}

	if got := tree.TokenText(-1); got != nil {
		t.Errorf("TokenText(-1) = %q, want nil", string(got))
	}
	if got := tree.TokenText(len(tree.Tokens)); got != nil {
		t.Errorf("TokenText(out of range) = %q, want nil", string(got))
	}
}

func TestTreeAttrs(t *testing.T) {
	t.Parallel()

	tree := newFixtureTree()

	attrsA := tree.AttrsOf(1)
	if len(attrsA) != 1 {
		t.Fatalf("AttrsOf(a) returned %d attrs, want 1", len(attrsA))
	}
	if got := tree.AttrName(attrsA[0]); got != "x" {
		t.Errorf("AttrName = %q, want %q", got, "x")
	}
	if value, ok := tree.AttrValue(attrsA[0]); ok {
		t.Errorf("boolean attribute reported value %q", value)
	}

	attrsB := tree.AttrsOf(6)
	if len(attrsB) != 1 {
		t.Fatalf("AttrsOf(b) returned %d attrs, want 1", len(attrsB))
	}
	value, ok := tree.AttrValue(attrsB[0])
	if !ok || value != "v" {
		t.Errorf("AttrValue = (%q, %v), want (%q, true)", value, ok, "v")
	}
}

func TestTreeChildren(t *testing.T) {
	t.Parallel()

	tree := newFixtureTree()

	top := tree.Children(htmlast.RootNode)
	if len(top) != 1 || top[0] != 0 {
		t.Errorf("Children(RootNode) = %v, want [0]", top)
	}

	inner := tree.Children(1)
	if len(inner) != 1 || inner[0] != 1 {
		t.Errorf("Children(a) = %v, want [1]", inner)
	}

	if leaf := tree.Children(6); leaf != nil {
		t.Errorf("Children(b) = %v, want none", leaf)
	}
}
