// Package termml wires the style resolver, the two-phase layout pass, and
// the renderer together into a one-shot Document API, grounded on the
// teacher's component.go "wire a Screen and a root Component together"
// idiom — minus any run loop. Spec §5 is explicit that nothing in the
// core blocks or loops internally; a caller that wants a live frame loop
// owns that loop itself and calls Layout/Render once per frame.
package termml

import (
	"termml/device"
	"termml/dom"
	"termml/layout"
	"termml/render"
)

// Document owns one parsed tree's resolved style and layout state across
// repeated Layout/Render calls — e.g. once per frame after a resize.
type Document struct {
	ctx  *dom.Context
	tree layout.Tree
}

// NewDocument wraps a caller-built dom.Tree. The tree is assumed parsed
// already; termml has no parser of its own (spec §6.1).
func NewDocument(t dom.Tree) *Document {
	return &Document{ctx: dom.NewContext(t)}
}

// Layout runs the full pipeline — CSS resolution, the cyclic width pass,
// then the cyclic height and line-box pass — against a width x height
// viewport, replacing any previously computed tree. Call this once before
// the first Render, and again whenever the attribute tree or the
// viewport size changes.
func (d *Document) Layout(width, height int) {
	d.ctx.ResolveCSS()
	layout.ResolveWidth(d.ctx, dom.Root, width)

	d.tree = layout.Tree{}
	_, _ = layout.ResolveHeight(d.ctx, &d.tree, dom.Root, layout.Params{
		ContentBox:    layout.BoundingBox{X: 0, Y: 0, Width: width, Height: height},
		StartPosition: layout.Point{X: 0, Y: 0},
	})
}

// Render paints the most recently computed layout into dev. Safe to call
// repeatedly against the same layout (e.g. after a cell.Grid.Clear) with
// no re-layout in between.
func (d *Document) Render(dev *device.Device) {
	if len(d.tree.Nodes) == 0 {
		return
	}
	render.Render(d.ctx, &d.tree, 0, dev, false)
}

// Context exposes the underlying dom.Context, e.g. for a caller that
// wants to inspect resolved styles directly.
func (d *Document) Context() *dom.Context { return d.ctx }
