package dom

import "testing"

func TestResolveCSSInheritance(t *testing.T) {
	tree := Tree{
		Elements: []Element{
			{Tag: "div", Attributes: map[string]string{"color": "red"}, Children: []Node{
				{Index: 1, Kind: KindElement},
			}},
			{Tag: "span", Attributes: map[string]string{"color": "inherit"}},
		},
	}
	ctx := NewContext(tree)
	ctx.ResolveCSS()

	child := ctx.Element(Node{Index: 1, Kind: KindElement})
	if child.Attributes["color"] != "red" {
		t.Errorf("expected inherit to copy the parent's color, got %q", child.Attributes["color"])
	}
}

func TestResolveCSSBuildsOneStylePerNode(t *testing.T) {
	tree := Tree{
		Elements: []Element{
			{Tag: "div", Children: []Node{
				{Index: 0, Kind: KindText},
				{Index: 1, Kind: KindElement},
			}},
			{Tag: "span"},
		},
		Texts: []Text{{Raw: "hi"}},
	}
	ctx := NewContext(tree)
	ctx.ResolveCSS()

	// root + text + span = 3 styles.
	if len(ctx.Styles) != 3 {
		t.Fatalf("expected 3 resolved styles, got %d", len(ctx.Styles))
	}
}

func TestCollapseWhitespaceDropsAllWhitespaceBlockText(t *testing.T) {
	tree := Tree{
		Elements: []Element{
			{Tag: "div", Children: []Node{
				{Index: 0, Kind: KindText},
				{Index: 1, Kind: KindElement},
			}},
			{Tag: "span"},
		},
		Texts: []Text{{Raw: "   \n  "}},
	}
	ctx := NewContext(tree)
	ctx.ResolveCSS()

	if ctx.Tree.Texts[0].NormalizedText != "" {
		t.Errorf("expected whitespace-only block text to collapse to empty, got %q", ctx.Tree.Texts[0].NormalizedText)
	}
}

func TestCollapseWhitespaceCollapsesRuns(t *testing.T) {
	tree := Tree{
		Elements: []Element{
			{Tag: "div", Children: []Node{
				{Index: 0, Kind: KindText},
			}},
		},
		Texts: []Text{{Raw: "hello   world\t\tagain"}},
	}
	ctx := NewContext(tree)
	ctx.ResolveCSS()

	got := ctx.Tree.Texts[0].NormalizedText
	want := "hello world again"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCollapseWhitespaceKeepsTrailingSpaceOnNormalInlineText(t *testing.T) {
	// <span>hello <b>world</b></span> — span/b both default to Inline, so
	// the text node's effective whitespace mode is Normal. The trailing
	// space before <b> must survive so "hello"/"world" don't glue together.
	tree := Tree{
		Elements: []Element{
			{Tag: "div", Children: []Node{
				{Index: 1, Kind: KindElement},
			}},
			{Tag: "span", Children: []Node{
				{Index: 0, Kind: KindText},
				{Index: 2, Kind: KindElement},
			}},
			{Tag: "b", Children: []Node{
				{Index: 1, Kind: KindText},
			}},
		},
		Texts: []Text{{Raw: "hello "}, {Raw: "world"}},
	}
	ctx := NewContext(tree)
	ctx.ResolveCSS()

	got := ctx.Tree.Texts[0].NormalizedText
	want := "hello "
	if got != want {
		t.Errorf("got %q, want %q (trailing space must survive Normal-mode inline text)", got, want)
	}
	if ctx.Tree.Texts[1].NormalizedText != "world" {
		t.Errorf("got %q, want %q", ctx.Tree.Texts[1].NormalizedText, "world")
	}
}

func TestFixTextStyleCopiesFromContainingElement(t *testing.T) {
	tree := Tree{
		Elements: []Element{
			{Tag: "div", Children: []Node{{Index: 1, Kind: KindElement}}},
			{Tag: "div", Attributes: map[string]string{"color": "red", "z_index": "4"}, Children: []Node{
				{Index: 0, Kind: KindText},
			}},
		},
		Texts: []Text{{Raw: "hi"}},
	}
	ctx := NewContext(tree)
	ctx.ResolveCSS()

	textStyle := ctx.Style(Node{Index: 0, Kind: KindText})
	elStyle := ctx.Style(Node{Index: 1, Kind: KindElement})
	if !textStyle.FGColor.Equal(elStyle.FGColor) {
		t.Errorf("expected text node to inherit its element's FGColor, got %+v want %+v", textStyle.FGColor, elStyle.FGColor)
	}
	if textStyle.ZIndex != elStyle.ZIndex {
		t.Errorf("expected text node to inherit its element's ZIndex, got %d want %d", textStyle.ZIndex, elStyle.ZIndex)
	}
}

func TestResolveCSSIsIdempotentAcrossCalls(t *testing.T) {
	tree := Tree{
		Elements: []Element{{Tag: "div"}},
	}
	ctx := NewContext(tree)
	ctx.ResolveCSS()
	first := len(ctx.Styles)
	ctx.ResolveCSS()
	second := len(ctx.Styles)
	if first != second {
		t.Errorf("expected re-running ResolveCSS to produce the same style count, got %d then %d", first, second)
	}
}
