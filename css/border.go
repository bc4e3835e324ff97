package css

import "strings"

// BorderLineStyle selects the glyph family for a border edge.
type BorderLineStyle uint8

const (
	BorderNone BorderLineStyle = iota
	BorderSolid
	BorderDotted
)

// CornerStyle selects sharp or rounded corner glyphs, independently per
// corner.
type CornerStyle uint8

const (
	CornerSharp CornerStyle = iota
	CornerRounded
)

// Border is one element side's border: its resolved width (0, 1, or 2
// cells before BorderWidth() clamping), line style, and color.
type Border struct {
	Width Number
	Style BorderLineStyle
	Color Color
}

// BorderWidth clamps the configured width to {0,1} for layout purposes —
// only the line-glyph and corner-glyph selection cares about 0 vs 1 vs 2.
func (b Border) BorderWidth() int {
	if b.Width.AsCell() <= 0 {
		return 0
	}
	return 1
}

// ParseBorder parses "[thin|thick] (solid|dotted) <color>"; any component
// may be omitted. When a line style is given without an explicit width
// token, width defaults to 1 cell (see DESIGN.md Open Question #5) rather
// than staying invisible.
func ParseBorder(s string, def Border) Border {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return def
	}
	b := Border{Width: Fit(), Style: BorderNone, Color: def.Color}
	sawWidth := false
	for _, f := range fields {
		switch f {
		case "thin":
			b.Width = Cells(1)
			sawWidth = true
		case "thick":
			b.Width = Cells(2)
			sawWidth = true
		case "solid":
			b.Style = BorderSolid
		case "dotted":
			b.Style = BorderDotted
		default:
			b.Color = Parse(f, b.Color)
		}
	}
	if b.Style != BorderNone && !sawWidth {
		b.Width = Cells(1)
	}
	return b
}

// LineCharSet is the glyph set for a border's edges and box-drawing
// connectors/crosses, grounded on original_source's css/utils.hpp tables.
type LineCharSet struct {
	Vertical, Horizontal          string
	TopLeft, TopRight             string
	BottomRight, BottomLeft       string
	Cross, Plus                   string
}

var (
	lineRounded = LineCharSet{
		Vertical: "│", Horizontal: "─",
		TopLeft: "╭", TopRight: "╮", BottomRight: "╯", BottomLeft: "╰",
		Cross: "╳", Plus: "┽",
	}
	lineRoundedBold = LineCharSet{
		Vertical: "┃", Horizontal: "━",
		TopLeft: "┏", TopRight: "┓", BottomRight: "┛", BottomLeft: "┗",
		Cross: "╳", Plus: "╋",
	}
	lineRect = LineCharSet{
		Vertical: "│", Horizontal: "─",
		TopLeft: "┌", TopRight: "┐", BottomRight: "┘", BottomLeft: "└",
		Cross: "x", Plus: "+",
	}
	lineRectBold = LineCharSet{
		Vertical: "┃", Horizontal: "━",
		TopLeft: "┏", TopRight: "┓", BottomRight: "┛", BottomLeft: "┗",
		Cross: "✖", Plus: "➕",
	}
	lineDotted = LineCharSet{
		Vertical: "┆", Horizontal: "┄",
		TopLeft: "┌", TopRight: "┐", BottomRight: "┘", BottomLeft: "└",
		Cross: "x", Plus: "+",
	}
	lineDottedBold = LineCharSet{
		Vertical: "┇", Horizontal: "┉",
		TopLeft: "┏", TopRight: "┓", BottomRight: "┛", BottomLeft: "┗",
		Cross: "✖", Plus: "➕",
	}
)

// CharSet selects the glyph family for width (0/1/2 cells) and line style.
// width 2 selects the bold/double variant of the family chosen by style.
func CharSet(style BorderLineStyle, width int) LineCharSet {
	bold := width >= 2
	switch style {
	case BorderDotted:
		if bold {
			return lineDottedBold
		}
		return lineDotted
	case BorderSolid:
		if bold {
			return lineRectBold
		}
		return lineRect
	default:
		return lineRect
	}
}

// CornerGlyph selects the glyph for one corner, informed by the line style
// (sharp rectangle vs rounded) and that corner's independent CornerStyle.
func CornerGlyph(style BorderLineStyle, width int, corner CornerStyle, which func(LineCharSet) string) string {
	set := CharSet(style, width)
	if corner == CornerRounded && width < 2 {
		set = lineRounded
	} else if corner == CornerRounded {
		set = lineRoundedBold
	}
	return which(set)
}

// ParseCornerStyle parses the 1-4 token border-type shorthand, values drawn
// from {sharp, rounded}, using the same positional semantics as ParseQuad.
func ParseCornerStyle(s string, def [4]CornerStyle) [4]CornerStyle {
	fields := strings.Fields(s)
	parseOne := func(tok string) CornerStyle {
		if tok == "rounded" {
			return CornerRounded
		}
		return CornerSharp
	}
	if len(fields) == 0 {
		return def
	}
	vals := make([]CornerStyle, len(fields))
	for i, f := range fields {
		vals[i] = parseOne(f)
	}
	switch len(vals) {
	case 1:
		return [4]CornerStyle{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		// top/right/bottom/left order mirrors ParseQuad: v/h
		return [4]CornerStyle{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		return [4]CornerStyle{vals[0], vals[1], vals[2], vals[1]}
	case 4:
		return [4]CornerStyle{vals[0], vals[1], vals[2], vals[3]}
	default:
		return def
	}
}
