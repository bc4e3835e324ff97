package layout

import (
	"strings"

	"termml/css"
	"termml/dom"
)

// measureWidth is the maximum UTF-8 code-point count of any \n-separated
// run of s — the pure measurement helper used by both the width resolver
// and the TextLayouter.
func measureWidth(s string) int {
	width := 0
	for _, line := range strings.Split(s, "\n") {
		if n := codePointCount(line); n > width {
			width = n
		}
	}
	return width
}

func codePointCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// resolvePaddingInset resolves padding and inset percentages against
// parentW into concrete cells. Always performed regardless of whether
// width/min/max are being auto-fit resolved (spec §4.3: "Always: resolve
// padding and inset against parent_w").
func resolvePaddingInset(s *css.Style, parentW int) {
	s.Padding = s.Padding.ResolveCells(parentW)
	s.Inset = s.Inset.ResolveCells(parentW)
}

// resolveStyleWidthRelatedProps is the Go port of original_source's
// resolve_style_width_releated_props (spec §4.3). When resolveAutoFit,
// width/min/max all resolve via ResolveAll, width clamps up to min_width,
// and Clip overflow additionally clamps down to max_width and parentW.
// Otherwise only Percent values on width/min/max become concrete cells.
func resolveStyleWidthRelatedProps(s *css.Style, parentW int, resolveAutoFit bool) {
	if parentW < 0 {
		parentW = 0
	}
	if resolveAutoFit {
		width := s.Width.ResolveAll(parentW)
		minW := s.MinWidth.ResolveAll(parentW)
		maxW := s.MaxWidth.ResolveAll(parentW)
		width = maxInt(width, minW)
		if s.OverflowX == css.Clip {
			width = minInt(minInt(width, maxW), parentW)
		}
		s.Width = css.Cells(width)
		s.MinWidth = css.Cells(minW)
		s.MaxWidth = css.Cells(maxW)
	} else {
		if s.Width.IsPercent() {
			s.Width = css.Cells(s.Width.ResolvePercent(parentW))
		}
		if s.MinWidth.IsPercent() {
			s.MinWidth = css.Cells(s.MinWidth.ResolvePercent(parentW))
		}
		if s.MaxWidth.IsPercent() {
			s.MaxWidth = css.Cells(s.MaxWidth.ResolvePercent(parentW))
		}
	}
	resolvePaddingInset(s, parentW)
}

// ResolveWidth is the single recursive cyclic-width pass (spec §4.3):
// resolve(node, max_parent_width) -> container_width. Mutates each
// visited node's Style in place (Width/MinWidth/MaxWidth become concrete
// Cell values; Margin/Padding/Inset percentages resolve to cells),
// returning the node's own resolved container width.
func ResolveWidth(ctx *dom.Context, n dom.Node, maxParentWidth int) int {
	if maxParentWidth < 0 {
		maxParentWidth = 0
	}

	if n.Kind == dom.KindText {
		t := ctx.TextNode(n)
		w := measureWidth(t.NormalizedText)
		if w > maxParentWidth {
			w = maxParentWidth
		}
		ctx.Style(n).Width = css.Cells(w)
		return w
	}

	el := ctx.Element(n)
	style := &ctx.Styles[el.StyleIndex]

	content := 0
	prevInline := false

	for _, ch := range el.Children {
		if ch.Kind == dom.KindText {
			contribution := ResolveWidth(ctx, ch, maxParentWidth)
			if prevInline {
				content += contribution
			} else {
				content = maxInt(content, contribution)
			}
			prevInline = true
			continue
		}

		childStyle := ctx.Style(ch)
		childStyle.Margin = childStyle.Margin.ResolveCells(maxParentWidth)
		isInline := childStyle.IsInlineContext()

		var contribution int
		switch childStyle.Width.Kind {
		case css.Cell:
			contribution = ResolveWidth(ctx, ch, childStyle.Width.AsCell())
		case css.Percent:
			resolveStyleWidthRelatedProps(childStyle, maxParentWidth, true)
			contribution = ResolveWidth(ctx, ch, childStyle.Width.AsCell())
		default: // Auto
			parentForChild := maxParentWidth
			if style.Width.Kind == css.Cell {
				parentForChild = style.Width.AsCell()
			}
			contribution = ResolveWidth(ctx, ch, parentForChild)
		}

		if prevInline && isInline {
			content += contribution
		} else {
			content = maxInt(content, contribution)
		}
		content += childStyle.Margin.Horizontal()
		prevInline = isInline
	}

	if style.Width.Kind == css.Cell {
		containerWidth := style.Width.AsCell()
		resolvePaddingInset(style, containerWidth)
		return containerWidth
	}

	content += style.BorderLeft.BorderWidth() + style.BorderRight.BorderWidth()
	absolutePadding := 0
	pctFraction := 0.0
	for _, n := range []css.Number{style.Padding.Left, style.Padding.Right} {
		if n.IsPercent() {
			pctFraction += n.Value / 100
		} else {
			absolutePadding += n.AsCell()
		}
	}
	content += absolutePadding

	actual := float64(content)
	if 1-pctFraction >= 1e-4 {
		actual = float64(content) / (1 - pctFraction)
	}
	containerWidth := int(actual + 0.5)

	resolveStyleWidthRelatedProps(style, containerWidth, true)
	return containerWidth
}
