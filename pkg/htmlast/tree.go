// Package htmlast provides the core data model for the webcc template
// front end. It defines the positional token stream, the flat tag/attribute
// tree both passes share, capacity limits, and source position mapping.
//
// Everything here is zero-copy: tokens, tag names, and attribute values are
// spans into one caller-owned rune buffer that must outlive every structure
// referencing it.
package htmlast

// Sentinel node references. Tag names and parents are identified by the
// index of their naming token in the stream, never by list position, so a
// negative index is free to act as the "no token" marker.
const (
	// RootNode is the parent of top-level elements.
	RootNode = -1

	// NoValue marks a boolean attribute (present with no "=value").
	NoValue = -1
)

// TagNode is one element of the flat parse tree. TagName indexes the token
// that named the element (an identifier or the reserved "html" keyword).
// Parent indexes the tag-name token of the enclosing element, or RootNode.
//
// Nodes are appended in the order their opening tag is recognized, so a
// parent always precedes its children.
type TagNode struct {
	TagName int
	Parent  int
}

// Attr is one attribute of an open tag. Owner indexes the tag-name token of
// the owning element, Name the attribute-name token, and Value the
// string-literal token or NoValue for boolean attributes.
type Attr struct {
	Owner int
	Name  int
	Value int
}

// Tree is the result of parsing one document: the token stream plus the
// ordered node and attribute lists. Source references the caller's buffer;
// it is never copied.
type Tree struct {
	Source []rune
	Tokens []Token
	Nodes  []TagNode
	Attrs  []Attr
}

// TokenText returns the source text of the token at index i,
// or nil if i is out of range.
func (t *Tree) TokenText(i int) []rune {
	if i < 0 || i >= len(t.Tokens) {
		return nil
	}
	return t.Tokens[i].Text(t.Source)
}

// NodeName returns the tag name text of node n.
func (t *Tree) NodeName(n TagNode) string {
	return string(t.TokenText(n.TagName))
}

// AttrName returns the name text of attribute a.
func (t *Tree) AttrName(a Attr) string {
	return string(t.TokenText(a.Name))
}

// AttrValue returns the value text of attribute a and whether a value is
// present. Boolean attributes return ("", false).
func (t *Tree) AttrValue(a Attr) (string, bool) {
	if a.Value == NoValue {
		return "", false
	}
	return string(t.TokenText(a.Value)), true
}

// AttrsOf returns the attributes owned by the node whose tag-name token is
// tagTok, in source order.
func (t *Tree) AttrsOf(tagTok int) []Attr {
	var attrs []Attr
	for _, a := range t.Attrs {
		if a.Owner == tagTok {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// Children returns the indices (into Nodes) of the direct children of the
// node whose tag-name token is parentTok. Pass RootNode for top-level nodes.
func (t *Tree) Children(parentTok int) []int {
	var children []int
	for i, n := range t.Nodes {
		if n.Parent == parentTok {
			children = append(children, i)
		}
	}
	return children
}

// WalkFunc is the callback signature for Walk. depth is 0 for top-level
// nodes. Return a non-nil error to stop the walk.
type WalkFunc func(i int, n TagNode, depth int) error

// Walk visits every node in document order, parents before children,
// reporting nesting depth. Node emission order already guarantees parents
// precede children, so this is a single forward pass with a depth lookup.
func (t *Tree) Walk(fn WalkFunc) error {
	depth := make(map[int]int, len(t.Nodes))
	for i, n := range t.Nodes {
		d := 0
		if n.Parent != RootNode {
			d = depth[n.Parent] + 1
		}
		depth[n.TagName] = d
		if err := fn(i, n, d); err != nil {
			return err
		}
	}
	return nil
}
