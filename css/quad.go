package css

import "strings"

// Quad holds four Numbers in top/right/bottom/left order, used for padding,
// margin, and inset.
type Quad struct {
	Top, Right, Bottom, Left Number
}

// Uniform builds a Quad with all four sides equal.
func Uniform(n Number) Quad { return Quad{n, n, n, n} }

// ParseQuad applies CSS shorthand: 1 value = all sides, 2 = vertical/
// horizontal, 3 = top/horizontal/bottom, 4 = top,right,bottom,left in order.
func ParseQuad(s string, parse func(string) Number, def Quad) Quad {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return def
	}
	vals := make([]Number, len(fields))
	for i, f := range fields {
		vals[i] = parse(f)
	}
	switch len(vals) {
	case 1:
		return Uniform(vals[0])
	case 2:
		return Quad{Top: vals[0], Bottom: vals[0], Right: vals[1], Left: vals[1]}
	case 3:
		// top / horizontal / bottom — CSS-correct: left mirrors right.
		return Quad{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[1]}
	case 4:
		return Quad{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}
	default:
		return def
	}
}

// ResolveCells resolves every side against parent, percent -> cells.
func (q Quad) ResolveCells(parent int) Quad {
	return Quad{
		Top:    Cells(q.Top.ResolvePercent(parent)),
		Right:  Cells(q.Right.ResolvePercent(parent)),
		Bottom: Cells(q.Bottom.ResolvePercent(parent)),
		Left:   Cells(q.Left.ResolvePercent(parent)),
	}
}

// Horizontal returns Left.AsCell() + Right.AsCell().
func (q Quad) Horizontal() int { return q.Left.AsCell() + q.Right.AsCell() }

// Vertical returns Top.AsCell() + Bottom.AsCell().
func (q Quad) Vertical() int { return q.Top.AsCell() + q.Bottom.AsCell() }
