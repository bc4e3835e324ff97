// Package cell implements the screen-cell grid: the z-index-arbitrated
// pixel buffer every renderer paints into, grounded on the teacher's
// tui.Buffer/Cell and forme.Screen's dirty-row diffing.
package cell

import "termml/css"

// PixelStyle is the per-cell visual style. is_same_style ignores ZIndex
// per spec §4.6 — z-index participates in write arbitration, not in the
// "did the visible style change" comparison the flusher uses.
type PixelStyle struct {
	FG        css.Color
	BG        css.Color
	Bold      bool
	Dim       bool
	Italic    bool
	Underline bool
	ZIndex    int
}

// IsSameStyle reports whether two styles would render identically,
// ignoring ZIndex.
func (s PixelStyle) IsSameStyle(o PixelStyle) bool {
	return s.FG.Equal(o.FG) && s.BG.Equal(o.BG) &&
		s.Bold == o.Bold && s.Dim == o.Dim &&
		s.Italic == o.Italic && s.Underline == o.Underline
}

// DefaultPixelStyle is the blank style empty cells carry.
func DefaultPixelStyle() PixelStyle {
	return PixelStyle{FG: css.DefaultColor(), BG: css.Transparent()}
}

// FromStyle derives a cell's PixelStyle from the resolved css.Style of the
// node writing to it (spec §4.8 step 1's "PixelStyle::from_style").
func FromStyle(s css.Style) PixelStyle {
	return PixelStyle{
		FG: s.FGColor, BG: s.BGColor,
		Bold: s.TextStyle.Bold, Dim: s.TextStyle.Dim,
		Italic: s.TextStyle.Italic, Underline: s.TextStyle.Underline,
		ZIndex: s.ZIndex,
	}
}

// Cell is one screen position: a glyph (empty string means blank), its
// style, and a dirty flag the flusher clears once emitted.
type Cell struct {
	Glyph string
	Style PixelStyle
	Dirty bool
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Glyph: " ", Style: DefaultPixelStyle()}
}
