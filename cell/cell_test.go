package cell

import (
	"testing"

	"termml/css"
)

func TestPixelStyle(t *testing.T) {
	t.Run("IsSameStyle ignores ZIndex", func(t *testing.T) {
		a := PixelStyle{FG: css.RGB(1, 2, 3), ZIndex: 1}
		b := PixelStyle{FG: css.RGB(1, 2, 3), ZIndex: 5}
		if !a.IsSameStyle(b) {
			t.Error("expected styles differing only in ZIndex to be the same style")
		}
	})

	t.Run("IsSameStyle detects attribute changes", func(t *testing.T) {
		a := PixelStyle{FG: css.RGB(1, 2, 3)}
		b := PixelStyle{FG: css.RGB(1, 2, 3), Bold: true}
		if a.IsSameStyle(b) {
			t.Error("expected Bold difference to make styles differ")
		}
	})

	t.Run("DefaultPixelStyle", func(t *testing.T) {
		s := DefaultPixelStyle()
		if !s.FG.Equal(css.DefaultColor()) {
			t.Errorf("expected default FG, got %+v", s.FG)
		}
		if !s.BG.Equal(css.Transparent()) {
			t.Errorf("expected transparent BG, got %+v", s.BG)
		}
	})

	t.Run("FromStyle carries ZIndex and attributes", func(t *testing.T) {
		s := css.DefaultStyle()
		s.FGColor = css.RGB(9, 9, 9)
		s.ZIndex = 3
		s.TextStyle.Bold = true
		p := FromStyle(s)
		if !p.FG.Equal(css.RGB(9, 9, 9)) {
			t.Errorf("expected FG carried through, got %+v", p.FG)
		}
		if p.ZIndex != 3 {
			t.Errorf("expected ZIndex 3, got %d", p.ZIndex)
		}
		if !p.Bold {
			t.Error("expected Bold carried through")
		}
	})
}

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()
	if c.Glyph != " " {
		t.Errorf("expected blank glyph, got %q", c.Glyph)
	}
	if c.Dirty {
		t.Error("expected a fresh empty cell to not be dirty")
	}
}
