package layout

import (
	"termml/css"
	"termml/dom"
)

// Params is the height pass's threaded parameter bundle (spec §4.4):
// the running height accumulator, the current content box, and the
// cursor position line-boxes/block children are placed relative to.
type Params struct {
	HeightAccum   int
	ContentBox    BoundingBox
	StartPosition Point
}

// combineMargin implements the pairwise vertical-margin collapsing rule
// (spec §8 invariant 9 / §9 design note): both non-negative -> max; mixed
// signs -> sum; both negative -> min. N-ary collapsing folds pairwise
// left to right (spec §9's resolution of that Open Question), which is
// exactly what repeated calls to this function across siblings do.
func combineMargin(a, b int) int {
	switch {
	case a >= 0 && b >= 0:
		return maxInt(a, b)
	case a < 0 && b < 0:
		return minInt(a, b)
	default:
		return a + b
	}
}

// ResolveHeight is the single recursive cyclic-height pass (spec §4.4):
// it builds the LayoutNode tree, lays text into LineBoxes, places child
// containers, and resolves vertical margins with collapsing. Returns the
// new node's layout index and the updated Params the caller folds back
// into its own accumulation.
func ResolveHeight(ctx *dom.Context, tree *Tree, n dom.Node, p Params) (int, Params) {
	if n.Kind == dom.KindText {
		return resolveTextHeight(ctx, tree, n, p)
	}
	return resolveElementHeight(ctx, tree, n, p)
}

func resolveTextHeight(ctx *dom.Context, tree *Tree, n dom.Node, p Params) (int, Params) {
	t := ctx.TextNode(n)
	style := ctx.Style(n)

	container := p.ContentBox
	container.Height = bigHeight - (p.StartPosition.Y - container.Y)

	tl := TextLayouter{Text: t.NormalizedText, Container: container, StartPosition: p.StartPosition}
	previousText := len(tree.Lines) - 1
	res := tl.Layout(&tree.Lines, previousText, *style)

	idx := tree.newNode(n)
	tree.Nodes[idx].Container = res.Container
	tree.Nodes[idx].Lines = res.Span

	newP := Params{
		HeightAccum:   res.Container.Height,
		ContentBox:    p.ContentBox,
		StartPosition: tl.StartPosition,
	}
	return idx, newP
}

const bigHeight = 1 << 28

func resolveElementHeight(ctx *dom.Context, tree *Tree, n dom.Node, p Params) (int, Params) {
	el := ctx.Element(n)
	style := ctx.Style(n)

	idx := tree.newNode(n)

	pendingMargin := 0
	tmp := p
	maxYReached := p.ContentBox.Y
	linesShiftStart := len(tree.Lines)

	var placedSinceFlush []int

	for _, ch := range el.Children {
		chStyle := ctx.Style(ch)
		isInline := chStyle.IsInlineContext()

		topMargin, bottomMargin := chStyle.Margin.Top.AsCell(), chStyle.Margin.Bottom.AsCell()
		topPadding, bottomPadding := chStyle.Padding.Top.AsCell(), chStyle.Padding.Bottom.AsCell()
		if chStyle.Display == css.Inline {
			topMargin, bottomMargin, topPadding, bottomPadding = 0, 0, 0, 0
		}

		canCollapse := chStyle.CanCollapseMargin()
		if !isInline {
			if canCollapse {
				pendingMargin = combineMargin(pendingMargin, topMargin)
			} else {
				pendingMargin += topMargin
			}
		}

		offsetX := chStyle.Padding.Left.AsCell() + chStyle.BorderLeft.BorderWidth() + chStyle.Margin.Left.AsCell()

		if !isInline {
			childX := tmp.StartPosition.X + offsetX
			childY := tmp.StartPosition.Y + pendingMargin + topPadding + chStyle.BorderTop.BorderWidth()

			overhead := chStyle.Padding.Horizontal() + chStyle.BorderLeft.BorderWidth() + chStyle.BorderRight.BorderWidth() + chStyle.Margin.Horizontal()
			contentWidth := tmp.ContentBox.Width - overhead
			if contentWidth < 0 {
				contentWidth = 0
			}
			childContentBox := BoundingBox{X: childX, Y: childY, Width: contentWidth, Height: 0}
			childParams := Params{ContentBox: childContentBox, StartPosition: Point{X: childX, Y: childY}}

			// The margin is folded into childY above; before laying the child
			// out, retroactively shift everything placed since the last flush
			// point that didn't yet know about this margin (line-boxes and
			// containers of earlier siblings sharing this collapsing run).
			shiftPendingMargin(tree, linesShiftStart, placedSinceFlush, pendingMargin)

			childIdx, res := ResolveHeight(ctx, tree, ch, childParams)
			node := &tree.Nodes[childIdx]

			childHeight := res.HeightAccum
			if chStyle.Height.Kind == css.Cell {
				childHeight = chStyle.Height.AsCell()
			}
			node.Container.X = childX
			node.Container.Y = childY
			node.Container.Width = chStyle.Width.AsCell()
			node.Container.Height = childHeight + topPadding + bottomPadding + chStyle.BorderTop.BorderWidth() + chStyle.BorderBottom.BorderWidth()

			tree.Nodes[idx].Children = append(tree.Nodes[idx].Children, childIdx)
			placedSinceFlush = append(placedSinceFlush, childIdx)

			maxYReached = maxInt(maxYReached, node.Container.MaxY())

			if canCollapse {
				pendingMargin = bottomMargin
			} else {
				pendingMargin = 0
			}
			linesShiftStart = len(tree.Lines)
			placedSinceFlush = nil

			tmp.StartPosition = Point{X: p.ContentBox.X, Y: node.Container.MaxY()}
		} else {
			childIdx, res := ResolveHeight(ctx, tree, ch, Params{ContentBox: tmp.ContentBox, StartPosition: tmp.StartPosition})
			node := &tree.Nodes[childIdx]
			tree.Nodes[idx].Children = append(tree.Nodes[idx].Children, childIdx)
			placedSinceFlush = append(placedSinceFlush, childIdx)

			// Inline fragments share the text layouter's own line-advance
			// bookkeeping; consecutive inline siblings on the same row don't
			// get a second height contribution (the "is_previous_inline &&
			// is_inline" phantom-line case from spec §4.4 step 2) — the
			// max-Y tracking below naturally absorbs that since overlapping
			// fragments land on the same row.
			maxYReached = maxInt(maxYReached, node.Container.MaxY())

			tmp.StartPosition = res.StartPosition
		}
	}

	finalHeight := maxYReached - p.ContentBox.Y
	if finalHeight < 0 {
		finalHeight = 0
	}
	if style.Height.Kind == css.Cell {
		finalHeight = style.Height.AsCell()
	}

	tree.Nodes[idx].Container = BoundingBox{
		X: p.ContentBox.X, Y: p.ContentBox.Y,
		Width: p.ContentBox.Width, Height: finalHeight,
	}

	newP := Params{
		HeightAccum:   finalHeight,
		ContentBox:    p.ContentBox,
		StartPosition: Point{X: p.ContentBox.X, Y: p.ContentBox.Y + finalHeight},
	}
	return idx, newP
}

// shiftPendingMargin applies a retroactive +margin shift to every line-box
// and child container placed since the last margin flush, per spec §4.4
// step 2's "shift all line-boxes and all child containers pushed since
// the last margin-flush" rule and §9's margin_line_start/margin_node_start
// bookkeeping.
func shiftPendingMargin(tree *Tree, linesFrom int, nodeIdxs []int, margin int) {
	if margin == 0 {
		return
	}
	for i := linesFrom; i < len(tree.Lines); i++ {
		tree.Lines[i].Bounds.Y += margin
	}
	for _, idx := range nodeIdxs {
		tree.Nodes[idx].Container.Y += margin
	}
}
