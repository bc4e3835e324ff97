// Package render walks a laid-out dom.Context/layout.Tree and paints it
// into a device.Device, grounded on original_source's layout.hpp
// render_node and the teacher's flexlayout.go Draw pass.
package render

import (
	"termml/cell"
	"termml/css"
	"termml/device"
	"termml/dom"
	"termml/layout"
)

// Render paints layout node index idx (and its subtree) into dev.
// ignoreScroll, when true, suppresses the backing-grid indirection for
// scroll containers — used by the scroll-container's own recursive call
// into its backing grid, per spec §4.8 step 2.
func Render(ctx *dom.Context, tree *layout.Tree, idx int, dev *device.Device, ignoreScroll bool) {
	node := &tree.Nodes[idx]

	if node.Ref.Kind == dom.KindText {
		style := ctx.Style(node.Ref)
		pixel := cell.FromStyle(*style)
		for i := uint(0); i < node.Lines.Size; i++ {
			line := tree.Lines[node.Lines.Start+i]
			dev.WriteText(line.Line, line.Bounds.X, line.Bounds.Y, pixel)
		}
		return
	}

	style := ctx.Style(node.Ref)

	if !ignoreScroll && isScrollContainer(*style) {
		renderScrollContainer(ctx, tree, idx, dev)
		drawBorders(dev, node.Container, *style)
		return
	}

	for _, childIdx := range node.Children {
		child := &tree.Nodes[childIdx]
		var restore func()
		if child.Ref.Kind == dom.KindElement {
			restore = dev.PushViewport(child.Container)
		}
		Render(ctx, tree, childIdx, dev, false)
		if restore != nil {
			restore()
		}
	}

	drawBorders(dev, node.Container, *style)
}

// isScrollContainer decides whether a node's children render into a
// detached backing grid instead of directly into the parent device.
// Simplification: triggered by explicit overflow:scroll on either axis;
// overflow:auto is handled by the ordinary viewport clip-guard path in
// the main recursion (step 3), which already suppresses anything drawn
// past the container's edge.
func isScrollContainer(s css.Style) bool {
	return s.OverflowX == css.Scroll || s.OverflowY == css.Scroll
}

func renderScrollContainer(ctx *dom.Context, tree *layout.Tree, idx int, dev *device.Device) {
	node := &tree.Nodes[idx]
	backing := cell.NewGrid(maxInt(node.Container.Width, 1), maxInt(node.Container.Height, 1))
	backingDev := device.New(backing)

	for _, childIdx := range node.Children {
		child := &tree.Nodes[childIdx]
		local := child.Container
		local.X -= node.Container.X
		local.Y -= node.Container.Y
		backingDev.PushViewport(local)
		Render(ctx, tree, childIdx, backingDev, true)
	}

	restore := dev.PushViewport(node.Container)
	for y := 0; y < backing.Height(); y++ {
		for x := 0; x < backing.Width(); x++ {
			c := backing.Get(x, y)
			dev.PutPixel(c.Glyph, node.Container.X+x, node.Container.Y+y, c.Style)
		}
	}
	restore()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
