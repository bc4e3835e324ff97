package layout

import (
	"testing"

	"termml/dom"
)

// resolveOneElement builds a bare root (element 0, which always gets the
// sentinel root style) holding one div (element 1) that carries attrs and
// children, and returns the div's resolved width.
func resolveOneElement(attrs map[string]string, children []dom.Node, texts []dom.Text) (*dom.Context, int) {
	tree := dom.Tree{
		Elements: []dom.Element{
			{Tag: "div", Children: []dom.Node{{Index: 1, Kind: dom.KindElement}}},
			{Tag: "div", Attributes: attrs, Children: children},
		},
		Texts: texts,
	}
	ctx := dom.NewContext(tree)
	ctx.ResolveCSS()
	w := ResolveWidth(ctx, dom.Node{Index: 1, Kind: dom.KindElement}, 80)
	return ctx, w
}

func TestResolveWidthExplicitCell(t *testing.T) {
	_, w := resolveOneElement(map[string]string{"width": "12c"}, nil, nil)
	if w != 12 {
		t.Errorf("expected explicit width to resolve to 12, got %d", w)
	}
}

func TestResolveWidthFitsText(t *testing.T) {
	_, w := resolveOneElement(nil,
		[]dom.Node{{Index: 0, Kind: dom.KindText}},
		[]dom.Text{{Raw: "hello"}},
	)
	if w != 5 {
		t.Errorf("expected fit-content width to match text length 5, got %d", w)
	}
}

func TestResolveWidthMultilineTextTakesLongestLine(t *testing.T) {
	_, w := resolveOneElement(map[string]string{"white-space": "pre"},
		[]dom.Node{{Index: 0, Kind: dom.KindText}},
		[]dom.Text{{Raw: "hi\nlonger line\nx"}},
	)
	if w != len("longer line") {
		t.Errorf("expected width to match the longest \\n-separated run, got %d", w)
	}
}

func TestResolveWidthAddsPaddingAndBorder(t *testing.T) {
	_, w := resolveOneElement(
		map[string]string{"padding": "2c", "border": "thin solid"},
		[]dom.Node{{Index: 0, Kind: dom.KindText}},
		[]dom.Text{{Raw: "ab"}},
	)
	// content(2) + padding-left(2) + padding-right(2) + border-left(1) + border-right(1)
	if w != 2+2+2+1+1 {
		t.Errorf("got %d, want %d", w, 2+2+2+1+1)
	}
}

func TestMeasureWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"multi-byte counts code points not bytes", "日本語", 3},
		{"longest of multiple lines", "a\nbbb\ncc", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := measureWidth(tt.in); got != tt.want {
				t.Errorf("measureWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
