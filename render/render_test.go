package render

import (
	"strings"
	"testing"

	"termml/cell"
	"termml/device"
	"termml/dom"
	"termml/layout"
)

// buildDocument puts attrs/children on one div (element 1) under a bare
// root (element 0, which always gets the sentinel root style) and runs the
// full style + layout pipeline, returning the laid-out tree ready to render
// into a width x height device. The div's layout node is lt.Nodes[1].
func buildDocument(attrs map[string]string, children []dom.Node, texts []dom.Text, width, height int) (*dom.Context, *layout.Tree) {
	tree := dom.Tree{
		Elements: []dom.Element{
			{Tag: "div", Children: []dom.Node{{Index: 1, Kind: dom.KindElement}}},
			{Tag: "div", Attributes: attrs, Children: children},
		},
		Texts: texts,
	}
	ctx := dom.NewContext(tree)
	ctx.ResolveCSS()
	layout.ResolveWidth(ctx, dom.Root, width)

	lt := &layout.Tree{}
	layout.ResolveHeight(ctx, lt, dom.Root, layout.Params{
		ContentBox:    layout.BoundingBox{X: 0, Y: 0, Width: width, Height: height},
		StartPosition: layout.Point{X: 0, Y: 0},
	})
	return ctx, lt
}

func TestRenderText(t *testing.T) {
	ctx, lt := buildDocument(
		map[string]string{"width": "10c"},
		[]dom.Node{{Index: 0, Kind: dom.KindText}},
		[]dom.Text{{Raw: "hi"}},
		20, 5,
	)

	g := cell.NewGrid(20, 5)
	dev := device.New(g)
	Render(ctx, lt, 0, dev, false)

	if g.Get(0, 0).Glyph != "h" || g.Get(1, 0).Glyph != "i" {
		t.Errorf("expected 'hi' written at origin, got %q%q", g.Get(0, 0).Glyph, g.Get(1, 0).Glyph)
	}
}

func TestRenderBorder(t *testing.T) {
	ctx, lt := buildDocument(
		map[string]string{"width": "5c", "height": "3c", "border": "thin solid"},
		nil, nil, 10, 10,
	)

	g := cell.NewGrid(10, 10)
	dev := device.New(g)
	Render(ctx, lt, 0, dev, false)

	// A bordered box should not leave its corners blank.
	box := lt.Nodes[1].Container
	if g.Get(box.X, box.Y).Glyph == " " {
		t.Error("expected a border glyph at the top-left corner")
	}
	if g.Get(box.MaxX()-1, box.MaxY()-1).Glyph == " " {
		t.Error("expected a border glyph at the bottom-right corner")
	}
}

func TestIsScrollContainer(t *testing.T) {
	tests := []struct {
		name          string
		overflowX     string
		overflowY     string
		wantContainer bool
	}{
		{"visible", "", "", false},
		{"scroll-x", "scroll", "", true},
		{"scroll-y", "", "scroll", true},
		{"auto does not trigger backing grid", "auto", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := map[string]string{}
			if tt.overflowX != "" {
				attrs["overflow_x"] = tt.overflowX
			}
			if tt.overflowY != "" {
				attrs["overflow_y"] = tt.overflowY
			}
			ctx, _ := buildDocument(attrs, nil, nil, 10, 10)
			got := isScrollContainer(*ctx.Style(dom.Node{Index: 1, Kind: dom.KindElement}))
			if got != tt.wantContainer {
				t.Errorf("isScrollContainer() = %v, want %v", got, tt.wantContainer)
			}
		})
	}
}

func TestRenderScrollContainerClipsOverflow(t *testing.T) {
	ctx, lt := buildDocument(
		map[string]string{"width": "4c", "height": "2c", "overflow_y": "scroll"},
		[]dom.Node{{Index: 0, Kind: dom.KindText}},
		[]dom.Text{{Raw: strings.Repeat("a", 40)}},
		10, 10,
	)

	g := cell.NewGrid(10, 10)
	dev := device.New(g)
	Render(ctx, lt, 0, dev, false)

	// Nothing should ever be drawn outside the 4x2 scroll container.
	if g.Get(5, 0).Glyph != " " {
		t.Error("expected content clipped to the scroll container's own width")
	}
}
