// Package layout implements the two-phase layout pass (cyclic width, then
// cyclic height and line-box construction) and the text layouter that
// turns normalized text into LineBox records.
package layout

import "math"

// BoundingBox is an axis-aligned cell-space rectangle.
type BoundingBox struct {
	X, Y, Width, Height int
}

// Inf returns the max-extent sentinel used as the default scroll
// container for unconstrained text measurement.
func Inf() BoundingBox {
	const big = math.MaxInt32 / 2
	return BoundingBox{X: -big / 2, Y: -big / 2, Width: big, Height: big}
}

func (b BoundingBox) MinX() int { return b.X }
func (b BoundingBox) MinY() int { return b.Y }
func (b BoundingBox) MaxX() int { return b.X + b.Width }
func (b BoundingBox) MaxY() int { return b.Y + b.Height }

// FromExtents builds a box from min/max coordinates. The original C++
// source computed height as min(max_y-min_y, 0), which is always zero for
// a normal increasing range — clearly wrong; this builds it as
// max(max_y-min_y, 0) instead (see DESIGN.md).
func FromExtents(minX, maxX, minY, maxY int) BoundingBox {
	w := maxX - minX
	if w < 0 {
		w = 0
	}
	h := maxY - minY
	if h < 0 {
		h = 0
	}
	return BoundingBox{X: minX, Y: minY, Width: w, Height: h}
}

// Intersects reports whether two boxes overlap (touching edges don't
// count as overlap).
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.MinX() < o.MaxX() && o.MinX() < b.MaxX() &&
		b.MinY() < o.MaxY() && o.MinY() < b.MaxY()
}

// In reports whether (x,y) lies within the box.
func (b BoundingBox) In(x, y int) bool {
	return x >= b.MinX() && x < b.MaxX() && y >= b.MinY() && y < b.MaxY()
}

// Pad shrinks the box by the given inset on each side (content box from a
// container box).
func (b BoundingBox) Pad(top, right, bottom, left int) BoundingBox {
	w := b.Width - left - right
	if w < 0 {
		w = 0
	}
	h := b.Height - top - bottom
	if h < 0 {
		h = 0
	}
	return BoundingBox{X: b.X + left, Y: b.Y + top, Width: w, Height: h}
}

// Point is a cell-space coordinate.
type Point struct{ X, Y int }
