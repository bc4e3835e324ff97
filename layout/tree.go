package layout

import "termml/dom"

// LayoutNode is one positioned node in the laid-out tree: a back-reference
// to the source dom.Node, its resolved container box, its window into the
// flat LineBox array (if it's a text node), and its children's layout
// indices.
type LayoutNode struct {
	Ref       dom.Node
	Container BoundingBox
	Lines     LineSpan
	Children  []int
}

// Tree is the laid-out document: a flat array of LayoutNodes (index 0 is
// always the root) plus the flat LineBox array every text LayoutNode's
// Lines span indexes into.
type Tree struct {
	Nodes []LayoutNode
	Lines []LineBox
}

func (t *Tree) newNode(ref dom.Node) int {
	t.Nodes = append(t.Nodes, LayoutNode{Ref: ref})
	return len(t.Nodes) - 1
}
