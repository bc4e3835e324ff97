// Package dom holds the parsed element/text-node tree and the style
// resolver that turns raw attribute strings into resolved css.Style
// values, grounded on original_source's termml::xml::node structures.
package dom

import "termml/css"

// Kind tags which parallel array a Node refers to.
type Kind uint8

const (
	KindElement Kind = iota
	KindText
)

// Node is a tagged index into Context's element or text-node arrays. The
// tree never holds pointers or back-references; every edge is an index.
type Node struct {
	Index int
	Kind  Kind
}

// Root is the sentinel reference to the document's root element, always
// element index 0.
var Root = Node{Index: 0, Kind: KindElement}

// Element is one tag in the source tree.
type Element struct {
	Tag        string
	Attributes map[string]string
	Children   []Node
	StyleIndex int
}

// Text is one run of raw source text between tags.
type Text struct {
	Raw            string
	NormalizedText string
	StyleIndex     int
}

// Tree is the caller-supplied input per spec §6.1: an element-node array,
// a text-node array, and an implicit root at element index 0. Nothing else
// about the parser is assumed.
type Tree struct {
	Elements []Element
	Texts    []Text
}

// Element returns the element backing a Node (caller must know n.Kind is
// KindElement).
func (c *Context) Element(n Node) *Element { return &c.Tree.Elements[n.Index] }

// TextNode returns the text node backing a Node (caller must know n.Kind
// is KindText).
func (c *Context) TextNode(n Node) *Text { return &c.Tree.Texts[n.Index] }

// Style returns the resolved style attached to any node.
func (c *Context) Style(n Node) *css.Style {
	if n.Kind == KindText {
		return &c.Styles[c.Tree.Texts[n.Index].StyleIndex]
	}
	return &c.Styles[c.Tree.Elements[n.Index].StyleIndex]
}
