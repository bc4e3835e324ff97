package render

import (
	"termml/cell"
	"termml/css"
	"termml/device"
	"termml/layout"
)

// drawBorders paints a node's four border edges plus corners into box,
// per spec §4.8 step 4: each non-zero-width side draws its line glyph
// along its edge; each corner independently picks sharp/rounded from its
// own BorderType entry, sourced from the border of whichever of its two
// adjacent edges is non-zero-width (preferring the side named by the
// corner's own position when both are set).
func drawBorders(dev *device.Device, box layout.BoundingBox, s css.Style) {
	top, right, bottom, left := s.BorderTop, s.BorderRight, s.BorderBottom, s.BorderLeft

	if top.BorderWidth() > 0 {
		set := css.CharSet(top.Style, top.Width.AsCell())
		style := borderPixelStyle(top, s.ZIndex)
		for x := box.X + 1; x < box.MaxX()-1; x++ {
			dev.PutPixel(set.Horizontal, x, box.Y, style)
		}
	}
	if bottom.BorderWidth() > 0 {
		set := css.CharSet(bottom.Style, bottom.Width.AsCell())
		style := borderPixelStyle(bottom, s.ZIndex)
		for x := box.X + 1; x < box.MaxX()-1; x++ {
			dev.PutPixel(set.Horizontal, x, box.MaxY()-1, style)
		}
	}
	if left.BorderWidth() > 0 {
		set := css.CharSet(left.Style, left.Width.AsCell())
		style := borderPixelStyle(left, s.ZIndex)
		for y := box.Y + 1; y < box.MaxY()-1; y++ {
			dev.PutPixel(set.Vertical, box.X, y, style)
		}
	}
	if right.BorderWidth() > 0 {
		set := css.CharSet(right.Style, right.Width.AsCell())
		style := borderPixelStyle(right, s.ZIndex)
		for y := box.Y + 1; y < box.MaxY()-1; y++ {
			dev.PutPixel(set.Vertical, box.MaxX()-1, y, style)
		}
	}

	// Corners: top-left needs an adjacent top or left border; and so on.
	// DESIGN.md Open Question #9: the source's bottom-left draw uses the
	// bottom-*right* BorderType entry by mistake; this uses the correct
	// bottom-left entry (s.BorderType[3]).
	if top.BorderWidth() > 0 || left.BorderWidth() > 0 {
		edge := pick(top, left)
		g := css.CornerGlyph(edge.Style, edge.Width.AsCell(), s.BorderType[0], func(ls css.LineCharSet) string { return ls.TopLeft })
		dev.PutPixel(g, box.X, box.Y, borderPixelStyle(edge, s.ZIndex))
	}
	if top.BorderWidth() > 0 || right.BorderWidth() > 0 {
		edge := pick(top, right)
		g := css.CornerGlyph(edge.Style, edge.Width.AsCell(), s.BorderType[1], func(ls css.LineCharSet) string { return ls.TopRight })
		dev.PutPixel(g, box.MaxX()-1, box.Y, borderPixelStyle(edge, s.ZIndex))
	}
	if bottom.BorderWidth() > 0 || right.BorderWidth() > 0 {
		edge := pick(bottom, right)
		g := css.CornerGlyph(edge.Style, edge.Width.AsCell(), s.BorderType[2], func(ls css.LineCharSet) string { return ls.BottomRight })
		dev.PutPixel(g, box.MaxX()-1, box.MaxY()-1, borderPixelStyle(edge, s.ZIndex))
	}
	if bottom.BorderWidth() > 0 || left.BorderWidth() > 0 {
		edge := pick(bottom, left)
		g := css.CornerGlyph(edge.Style, edge.Width.AsCell(), s.BorderType[3], func(ls css.LineCharSet) string { return ls.BottomLeft })
		dev.PutPixel(g, box.X, box.MaxY()-1, borderPixelStyle(edge, s.ZIndex))
	}
}

// pick prefers whichever of two adjacent borders actually has width, so a
// corner next to one zero-width edge still renders in the other edge's
// style instead of defaulting to none.
func pick(a, b css.Border) css.Border {
	if a.BorderWidth() > 0 {
		return a
	}
	return b
}

func borderPixelStyle(b css.Border, zIndex int) cell.PixelStyle {
	return cell.PixelStyle{FG: b.Color, BG: css.Transparent(), ZIndex: zIndex}
}
