package css

import "strings"

// Display is the box's display mode. Flex/Grid parse but reduce to
// block/inline behavior elsewhere in the pipeline (spec Non-goals).
type Display uint8

const (
	Block Display = iota
	InlineBlock
	Inline
	Flex
	Grid
)

func (d Display) String() string {
	switch d {
	case InlineBlock:
		return "inline-block"
	case Inline:
		return "inline"
	case Flex:
		return "flex"
	case Grid:
		return "grid"
	default:
		return "block"
	}
}

// HasInlineFlow reports whether this display participates in inline flow.
func (d Display) HasInlineFlow() bool { return d == Inline || d == InlineBlock }

// IsInlineContext is an alias kept distinct per spec's own predicate list.
func (d Display) IsInlineContext() bool { return d.HasInlineFlow() }

// Overflow controls scroll/clip behavior on one axis.
type Overflow uint8

const (
	Visible Overflow = iota
	OverflowAuto
	Clip
	Scroll
)

// Whitespace selects the text-collapsing mode.
type Whitespace uint8

const (
	Normal Whitespace = iota
	NoWrap
	Pre
	PreWrap
	PreLine
)

// OverflowWrap controls whether an overlong word may be split mid-word.
type OverflowWrap uint8

const (
	OverflowWrapNormal OverflowWrap = iota
	BreakWord
)

// ItemType tags a child's participation in a flex/grid container, used
// only to decide margin-collapsing eligibility.
type ItemType uint8

const (
	ItemNone ItemType = iota
	ItemFlex
	ItemGrid
)

// TextStyle is the set of boolean text attributes a glyph can carry.
type TextStyle struct {
	Bold, Italic, Dim, Underline, Strike bool
}

// Style is the fully resolved, immutable-after-resolve style of one
// element or text node.
type Style struct {
	Display  Display
	ItemType ItemType

	Width, MinWidth, MaxWidth    Number
	Height, MinHeight, MaxHeight Number

	Padding Quad
	Margin  Quad
	Inset   Quad // top/right/bottom/left

	BorderTop, BorderRight, BorderBottom, BorderLeft Border
	// BorderType[0..3] = top-left, top-right, bottom-right, bottom-left.
	BorderType [4]CornerStyle

	ZIndex int

	OverflowX, OverflowY Overflow

	FGColor, BGColor Color

	Whitespace   Whitespace
	OverflowWrap OverflowWrap
	TextStyle    TextStyle
}

// HasInlineFlow, IsInlineContext mirror Display's predicates on the Style.
func (s Style) HasInlineFlow() bool    { return s.Display.HasInlineFlow() }
func (s Style) IsInlineContext() bool  { return s.Display.IsInlineContext() }

// IgnoreVerticalLayoutShift: Inline display never participates in the
// vertical-margin retroactive shift.
func (s Style) IgnoreVerticalLayoutShift() bool { return s.Display == Inline }

// CanCollapseMargin: only items with no flex/grid item type collapse
// margins with siblings.
func (s Style) CanCollapseMargin() bool { return s.ItemType == ItemNone }

// ContentWidth = width - horizontal borders - horizontal padding, clamped
// to >= 0.
func (s Style) ContentWidth() int {
	w := s.Width.AsCell() - s.BorderLeft.BorderWidth() - s.BorderRight.BorderWidth() - s.Padding.Horizontal()
	if w < 0 {
		return 0
	}
	return w
}

// HasStartWhitespace / HasEndWhitespace: a non-zero side padding, or any
// border, counts as a whitespace-producing boundary for the normalizer's
// inter-node rules.
func (s Style) HasStartWhitespace() bool {
	return s.Padding.Left.AsCell() > 0 || s.BorderLeft.BorderWidth() > 0
}

func (s Style) HasEndWhitespace() bool {
	return s.Padding.Right.AsCell() > 0 || s.BorderRight.BorderWidth() > 0
}

// DefaultStyle is the blank style text nodes get before the fix-up pass
// copies inherited fields onto them.
func DefaultStyle() Style {
	return Style{
		Width: Fit(), Height: Fit(),
		MinWidth: Fit(), MaxWidth: Fit(),
		MinHeight: Fit(), MaxHeight: Fit(),
		FGColor: DefaultColor(), BGColor: Transparent(),
	}
}

// RootStyle is the sentinel root style pushed before the real tree: 100%
// width and height, per spec §4.1 step 2.
func RootStyle() Style {
	s := DefaultStyle()
	s.Width = Pct(100)
	s.Height = Pct(100)
	return s
}

var inlineDefaultTags = map[string]bool{
	"text": true, "span": true, "em": true, "b": true, "strong": true, "i": true,
}

// ParseProperties parses an element's tag + attribute map into a Style,
// using parent as the inheritance/default source. This is the Go analogue
// of original_source's Style::parse_proprties, corrected per DESIGN.md's
// Open Question resolutions and extended per SPEC_FULL's supplemented
// features (text-style vocabulary, display:grid, plain-int z_index).
func ParseProperties(tag string, attrs map[string]string, parent *Style) Style {
	s := DefaultStyle()

	display := parseDisplay(attrs["display"], tag, parent)
	s.Display = display
	switch display {
	case Flex:
		s.ItemType = ItemFlex
	case Grid:
		s.ItemType = ItemGrid
	default:
		s.ItemType = ItemNone
	}

	s.FGColor = Parse(attrs["color"], parentFG(parent))
	s.BGColor = Parse(attrs["background-color"], parentBG(parent))

	s.Padding = parseQuadAttr(attrs, "padding", Fit())
	s.Margin = parseQuadAttr(attrs, "margin", Cells(0))
	s.Inset = parseInset(attrs)

	s.BorderTop, s.BorderRight, s.BorderBottom, s.BorderLeft = parseBorders(attrs, s.FGColor)
	s.BorderType = parseBorderTypes(attrs)

	defaultWidth := Fit()
	if display == Block {
		defaultWidth = Pct(100)
	}
	if inlineDefaultTags[tag] {
		defaultWidth = Fit()
	}
	s.Width = ParseNumber(attrs["width"], defaultWidth)
	s.MinWidth = ParseNumber(attrs["min-width"], Fit())
	s.MaxWidth = ParseNumber(attrs["max-width"], Fit())
	s.Height = ParseNumber(attrs["height"], Fit())
	s.MinHeight = ParseNumber(attrs["min-height"], Fit())
	s.MaxHeight = ParseNumber(attrs["max-height"], Fit())

	s.ZIndex = ParsePlainInt(attrs["z_index"], parentZIndex(parent))

	s.OverflowX, s.OverflowY = parseOverflow(attrs)

	s.Whitespace = parseWhitespace(attrs["white-space"], parent)
	s.OverflowWrap = OverflowWrapNormal
	if tag == "code" || tag == "pre" {
		s.OverflowWrap = OverflowWrapNormal
	}

	s.TextStyle = parseTextStyle(tag, attrs)

	if display == Inline {
		s.Width = Fit()
		s.Height = Fit()
		s.MinWidth, s.MaxWidth = Fit(), Fit()
		s.MinHeight, s.MaxHeight = Fit(), Fit()
		s.Margin.Top = Cells(0)
		s.Margin.Bottom = Cells(0)
	}

	return s
}

func parentFG(p *Style) Color {
	if p == nil {
		return DefaultColor()
	}
	return p.FGColor
}

func parentBG(p *Style) Color {
	if p == nil {
		return Transparent()
	}
	return p.BGColor
}

func parentZIndex(p *Style) int {
	if p == nil {
		return 0
	}
	return p.ZIndex
}

func parseDisplay(v, tag string, parent *Style) Display {
	switch v {
	case "block":
		return Block
	case "inline":
		return Inline
	case "inline-block":
		return InlineBlock
	case "flex":
		return Flex
	case "grid":
		return Grid
	}
	if inlineDefaultTags[tag] {
		return Inline
	}
	return Block
}

func parseQuadAttr(attrs map[string]string, key string, fallback Number) Quad {
	def := Uniform(fallback)
	if v, ok := attrs[key]; ok {
		def = ParseQuad(v, func(s string) Number { return ParseNumber(s, fallback) }, def)
	}
	sides := map[string]*Number{
		key + "-top":    &def.Top,
		key + "-right":  &def.Right,
		key + "-bottom": &def.Bottom,
		key + "-left":   &def.Left,
	}
	for k, dst := range sides {
		if v, ok := attrs[k]; ok {
			*dst = ParseNumber(v, *dst)
		}
	}
	return def
}

func parseInset(attrs map[string]string) Quad {
	def := Uniform(Fit())
	if v, ok := attrs["inset"]; ok {
		def = ParseQuad(v, func(s string) Number { return ParseNumber(s, Fit()) }, def)
	}
	if v, ok := attrs["top"]; ok {
		def.Top = ParseNumber(v, def.Top)
	}
	if v, ok := attrs["right"]; ok {
		def.Right = ParseNumber(v, def.Right)
	}
	if v, ok := attrs["bottom"]; ok {
		def.Bottom = ParseNumber(v, def.Bottom)
	}
	if v, ok := attrs["left"]; ok {
		def.Left = ParseNumber(v, def.Left)
	}
	return def
}

func parseBorders(attrs map[string]string, fg Color) (top, right, bottom, left Border) {
	def := Border{Width: Fit(), Style: BorderNone, Color: fg}
	if v, ok := attrs["border"]; ok {
		def = ParseBorder(v, def)
	}
	top, right, bottom, left = def, def, def, def
	if v, ok := attrs["border-top"]; ok {
		top = ParseBorder(v, def)
	}
	if v, ok := attrs["border-right"]; ok {
		right = ParseBorder(v, def)
	}
	if v, ok := attrs["border-bottom"]; ok {
		bottom = ParseBorder(v, def)
	}
	if v, ok := attrs["border-left"]; ok {
		left = ParseBorder(v, def)
	}
	return
}

func parseBorderTypes(attrs map[string]string) [4]CornerStyle {
	def := [4]CornerStyle{CornerSharp, CornerSharp, CornerSharp, CornerSharp}
	if v, ok := attrs["border-type"]; ok {
		def = ParseCornerStyle(v, def)
	}
	keys := [4]string{"border-type-top-left", "border-type-top-right", "border-type-bottom-right", "border-type-bottom-left"}
	for i, k := range keys {
		if v, ok := attrs[k]; ok {
			if v == "rounded" {
				def[i] = CornerRounded
			} else {
				def[i] = CornerSharp
			}
		}
	}
	return def
}

func parseOverflow(attrs map[string]string) (x, y Overflow) {
	parseOne := func(s string, def Overflow) Overflow {
		switch s {
		case "clip":
			return Clip
		case "auto":
			return OverflowAuto
		case "visible":
			return Visible
		case "scroll":
			return Scroll
		default:
			return def
		}
	}
	x, y = Visible, Visible
	if v, ok := attrs["overflow"]; ok {
		fields := strings.Fields(v)
		if len(fields) == 1 {
			x = parseOne(fields[0], x)
			y = x
		} else if len(fields) >= 2 {
			// overflow: <y> <x>, vertical first.
			y = parseOne(fields[0], y)
			x = parseOne(fields[1], x)
		}
	}
	if v, ok := attrs["overflow_x"]; ok {
		x = parseOne(v, x)
	}
	if v, ok := attrs["overflow_y"]; ok {
		y = parseOne(v, y)
	}
	return x, y
}

func parseWhitespace(v string, parent *Style) Whitespace {
	switch v {
	case "normal":
		return Normal
	case "nowrap":
		return NoWrap
	case "pre":
		return Pre
	case "pre-wrap":
		return PreWrap
	case "pre-line":
		return PreLine
	default:
		return Normal
	}
}

func parseTextStyle(tag string, attrs map[string]string) TextStyle {
	ts := TextStyle{}
	switch tag {
	case "b", "strong":
		ts.Bold = true
	case "i", "em":
		ts.Italic = true
	}
	if v, ok := attrs["text-style"]; ok {
		for _, tok := range strings.Fields(v) {
			switch tok {
			case "bold":
				ts.Bold = true
			case "italic":
				ts.Italic = true
			case "dim":
				ts.Dim = true
			case "underline":
				ts.Underline = true
			case "strike":
				ts.Strike = true
			}
		}
	}
	return ts
}
