package dom

import "termml/css"

// Context owns one document's resolved state: the caller-supplied tree,
// the flat style array every node indexes into, and the append-only
// arena backing any text that needed rewriting during whitespace
// collapsing. Go strings are independently heap-allocated immutable
// values, so — unlike original_source's unique_ptr<string> arena, kept
// only to stabilize pointers — a plain slice of strings is already
// stable: appending never invalidates a string value handed out earlier.
type Context struct {
	Tree   Tree
	Styles []css.Style
	arena  []string
}

// NewContext builds a Context around a caller-supplied tree with no
// styles resolved yet. Call ResolveCSS before using Styles.
func NewContext(t Tree) *Context {
	return &Context{Tree: t}
}

func (c *Context) element(n Node) *Element { return &c.Tree.Elements[n.Index] }
func (c *Context) text(n Node) *Text       { return &c.Tree.Texts[n.Index] }

// internString appends an owned string to the arena and returns it. The
// arena only grows; returned strings remain valid for the Context's
// lifetime.
func (c *Context) internString(s string) string {
	c.arena = append(c.arena, s)
	return c.arena[len(c.arena)-1]
}

// ResolveCSS runs the full three-pass style resolver: the inheritance
// pre-pass, the style-tree build, whitespace collapsing, and the
// text-node style fix-up. Grounded on original_source's
// Context::resolve_css, with the ordering bug described in DESIGN.md
// corrected (collapseWhitespace reads each child's effective, inherited
// whitespace mode directly rather than the text node's still-default
// style).
func (c *Context) ResolveCSS() {
	c.Styles = c.Styles[:0]
	c.arena = c.arena[:0]
	for i := range c.Tree.Texts {
		c.Tree.Texts[i].NormalizedText = ""
	}

	c.resolveInheritance(Root)

	c.Styles = append(c.Styles, css.RootStyle())
	c.buildStyleTree(Root)
	c.collapseWhitespace(Root, css.Block, true, false)
	c.fixTextStyle(Root)
}

// resolveInheritance removes attributes literally set to "inherit" after
// copying the parent's current value down, then copies the fixed
// inheritable property set to any child that doesn't already set it.
// Grounded on resolve_css_inheritance; the source's child-attribute
// lookup compares a parent-map iterator against the wrong map's end()
// sentinel — this port does a direct, correct map-membership check
// instead.
func (c *Context) resolveInheritance(n Node) {
	if n.Kind != KindElement {
		return
	}
	el := c.element(n)

	toRemove := make([]string, 0, len(el.Attributes))
	for k, v := range el.Attributes {
		if v == "inherit" {
			toRemove = append(toRemove, k)
		}
	}
	for _, k := range toRemove {
		delete(el.Attributes, k)
	}

	for _, ch := range el.Children {
		if ch.Kind != KindElement {
			continue
		}
		child := c.element(ch)
		if child.Attributes == nil {
			child.Attributes = map[string]string{}
		}

		for k, v := range child.Attributes {
			if v != "inherit" {
				continue
			}
			if pv, ok := el.Attributes[k]; ok {
				child.Attributes[k] = pv
			}
		}

		for _, k := range css.InheritedProperties {
			if _, has := child.Attributes[k]; has {
				continue
			}
			if pv, ok := el.Attributes[k]; ok {
				child.Attributes[k] = pv
			}
		}

		c.resolveInheritance(ch)
	}
}

// buildStyleTree walks the tree depth-first, allocating and appending a
// Style per node and recording its index. Grounded on build_style_tree.
func (c *Context) buildStyleTree(n Node) {
	el := c.element(n)
	for _, ch := range el.Children {
		switch ch.Kind {
		case KindText:
			t := c.text(ch)
			t.StyleIndex = len(c.Styles)
			c.Styles = append(c.Styles, css.DefaultStyle())
		case KindElement:
			child := c.element(ch)
			parent := &c.Styles[el.StyleIndex]
			style := css.ParseProperties(child.Tag, child.Attributes, parent)
			child.StyleIndex = len(c.Styles)
			c.Styles = append(c.Styles, style)
			c.buildStyleTree(ch)
		}
	}
}
