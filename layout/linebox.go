package layout

import "fmt"

// LineBox is one horizontally-placed run of glyphs produced by the text
// layouter; it never spans rows.
type LineBox struct {
	Line   string
	Bounds BoundingBox
}

func (l LineBox) String() string {
	return fmt.Sprintf("LineBox(line: %q, bounds: %+v)", l.Line, l.Bounds)
}

// LineSpan is a LayoutNode's window into the global, flat LineBox array.
type LineSpan struct {
	Start, Size uint
}

func (s LineSpan) Empty() bool { return s.Size == 0 }

func (s LineSpan) String() string {
	return fmt.Sprintf("LineSpan(start: %d, size: %d)", s.Start, s.Size)
}
