package dom

import (
	"strings"
	"unicode"

	"termml/css"
)

// normalizeText rewrites one text node's raw slice according to its
// effective whitespace mode (spec §4.2). Pre/PreWrap keep it verbatim.
// PreLine trims trailing horizontal whitespace but keeps newlines and
// collapses runs of non-newline whitespace. Normal/NoWrap collapse every
// whitespace run (including newlines) to one space; NoWrap also trims the
// trailing run, Normal keeps it. Leading whitespace is not removed here (it
// stays as is, or becomes one space when the text is rewritten);
// collapseWhitespace trims it by context.
// Returns the resulting text and whether a new interned string was
// allocated (so an all-whitespace run can be pruned by the caller without
// leaking an arena entry — mirrors original_source's pop_back on the
// empty-after-trim path).
func (c *Context) normalizeText(text string, ws css.Whitespace) (string, bool) {
	if text == "" {
		return "", false
	}
	if ws == css.Pre || ws == css.PreWrap {
		return text, false
	}

	start := strings.IndexFunc(text, func(r rune) bool { return r != ' ' })
	if start < 0 {
		start = 0
	}

	// Trailing-strip applies to PreLine (horizontal whitespace only) and to
	// NoWrap, but not to Normal: original_source's node.hpp only trims the
	// trailing run when whitespace != Normal, so a trailing space on a
	// Normal-mode text node survives into the collapse logic below and lets
	// collapseWhitespace's inline branch emit it as a real word separator
	// (e.g. "hello " before a sibling <b>world</b>).
	end := len(text)
	switch ws {
	case css.PreLine:
		end = lastIndexNotAny(text, " \t\r\f\v") + 1
	case css.NoWrap:
		end = lastIndexNotAny(text, " \n\t\r\f\v") + 1
	}
	if end < start {
		end = start
	}

	needNormalization := false
	for i := start; i < end; i++ {
		ch := text[i]
		if ch == '\n' && ws != css.PreLine {
			needNormalization = true
			break
		}
		if ch == '\t' || ch == '\r' {
			needNormalization = true
			break
		}
		if i+1 >= end {
			continue
		}
		if ch == ' ' && text[i+1] == ' ' {
			needNormalization = true
			break
		}
	}

	if !needNormalization {
		return text[:end], false
	}

	if strings.TrimSpace(text) == "" {
		return " ", false
	}

	var b strings.Builder
	b.Grow(end - start + 1)
	if start > 0 {
		b.WriteByte(' ')
	}
	for i := start; i < end; {
		ch := text[i]
		if ch == '\n' && ws == css.PreLine {
			b.WriteByte(ch)
			i++
			continue
		}
		if ch == '\r' {
			i++
			continue
		}
		if unicode.IsSpace(rune(ch)) {
			b.WriteByte(' ')
			for i < end && unicode.IsSpace(rune(text[i])) {
				i++
			}
			continue
		}
		b.WriteByte(ch)
		i++
	}
	return c.internString(b.String()), true
}

func lastIndexNotAny(s, chars string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if !strings.ContainsRune(chars, rune(s[i])) {
			return i
		}
	}
	return -1
}

// collapseWhitespace walks the tree applying the inter-node rules (spec
// §4.2): entering a non-inline container drops empty-after-trim text
// children; a "last char was whitespace" flag left-trims the next text
// run; inline text keeps its trailing space unless a right-padding
// boundary or an inline-block forces a full trim.
//
// Deviation from original_source (see DESIGN.md): the effective
// whitespace mode used to normalize each text child is read from the
// *containing element's* resolved style, not the text node's own style —
// the latter is still the untouched DefaultStyle() at this point in the
// pipeline, since fixTextStyle (which copies the real value down) runs
// afterward. Reading the element's style directly is what actually
// satisfies spec §4.2's "ws = parent's whitespace".
func (c *Context) collapseWhitespace(n Node, context css.Display, lastCharWasWhitespace bool, hasRightPadding bool) bool {
	el := c.element(n)
	elStyle := &c.Styles[el.StyleIndex]

	for _, ch := range el.Children {
		if ch.Kind == KindText {
			t := c.text(ch)
			style := &c.Styles[t.StyleIndex]
			ws := elStyle.Whitespace

			txt, _ := c.normalizeText(t.Raw, ws)

			pattern := " \n\t\r\f\v"
			if ws == css.PreLine {
				pattern = " \t\r\f\v"
			}

			if !context.IsInlineContext() {
				switch context {
				case css.Flex:
					style.ItemType = css.ItemFlex
				case css.Grid:
					style.ItemType = css.ItemGrid
				}
				style.Display = css.Block

				if strings.TrimSpace(txt) == "" {
					t.NormalizedText = ""
					continue
				}
			} else {
				style.Display = css.Inline
			}

			if txt == "" {
				continue
			}
			hasTrailingSpace := txt[len(txt)-1] == ' '

			if lastCharWasWhitespace {
				txt = strings.TrimLeft(txt, pattern)
			}

			if !context.IsInlineContext() || hasRightPadding || context == css.InlineBlock {
				t.NormalizedText = strings.Trim(txt, pattern)
				lastCharWasWhitespace = hasRightPadding
			} else {
				t.NormalizedText = txt
				lastCharWasWhitespace = hasTrailingSpace
			}
		} else {
			child := c.element(ch)
			childStyle := &c.Styles[child.StyleIndex]
			lastCharWasWhitespace = lastCharWasWhitespace || childStyle.HasStartWhitespace()
			lastCharWasWhitespace = c.collapseWhitespace(ch, childStyle.Display, lastCharWasWhitespace, childStyle.HasEndWhitespace())
		}
	}

	return lastCharWasWhitespace
}

// fixTextStyle copies the inherited text-rendering fields from each text
// node's containing element onto the text node's own style, for the
// renderer's benefit. Grounded on fix_text_style.
func (c *Context) fixTextStyle(n Node) {
	el := c.element(n)
	style := &c.Styles[el.StyleIndex]

	for _, ch := range el.Children {
		if ch.Kind == KindText {
			t := c.text(ch)
			ts := &c.Styles[t.StyleIndex]
			ts.FGColor = style.FGColor
			ts.BGColor = style.BGColor
			ts.ZIndex = style.ZIndex
			ts.OverflowWrap = style.OverflowWrap
			ts.Whitespace = style.Whitespace
			ts.TextStyle = style.TextStyle
		} else {
			c.fixTextStyle(ch)
		}
	}
}
