package layout

import (
	"unicode"
	"unicode/utf8"

	"termml/css"
)

// TextRenderResult is what one TextLayouter invocation hands back to the
// height/line-box builder.
type TextRenderResult struct {
	Container BoundingBox
	Span      LineSpan
}

// findWord returns the index of the next whitespace rune at or after pos,
// or len(text) if there is none.
func findWord(text string, pos int) int {
	for i := pos; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			return i
		}
		i += size
	}
	return len(text)
}

// TextLayouter wraps one text node's normalized content into LineBox
// records within a scroll container, honoring whitespace/overflow-wrap
// semantics. Grounded on original_source's layout::TextLayouter almost
// line-for-line (spec §4.5).
type TextLayouter struct {
	Text          string
	Container     BoundingBox // scroll container
	StartPosition Point       // position within the scroll container
}

// MeasureWidth is the content width ignoring padding/margin: the max
// UTF-8 code-point count of any \n-separated run.
func (t TextLayouter) MeasureWidth() int { return measureWidth(t.Text) }

// Layout appends LineBoxes to lines and returns the render result. Grounded
// on TextLayouter::operator() (spec §4.5): fast single-line path,
// continuation heuristic, then the whitespace/word wrap loop with
// break-word character splitting.
func (t *TextLayouter) Layout(lines *[]LineBox, previousText int, style css.Style) TextRenderResult {
	container := t.Container
	if container.Width == 0 || container.Height == 0 {
		return TextRenderResult{}
	}

	width := style.ContentWidth()
	box := container
	box.Width, box.Height = 0, 0
	if width == 0 {
		return TextRenderResult{Container: box}
	}

	dx := t.StartPosition.X - container.X
	dy := t.StartPosition.Y - container.Y
	if dx < 0 || dy < 0 {
		return TextRenderResult{Container: box}
	}

	x := container.X + dx
	y := container.Y + dy

	text := t.Text
	textLen := codePointCount(text)

	// Continuation heuristic: if this is immediately after the previous
	// line-box and that box isn't empty/a-bare-space, and we'd overflow by
	// continuing on the same row, pre-wrap before emitting anything.
	if style.Whitespace != css.NoWrap && previousText >= 0 && len(*lines) == previousText+1 {
		line := &(*lines)[previousText]
		if !(line.Line == "" || line.Line == " ") {
			if line.Bounds.MaxX() == x && line.Bounds.MinY() == y {
				if line.Bounds.MaxX()+textLen >= container.MaxX() {
					line.Bounds.X = container.MinX()
					line.Bounds.Y++
					x = line.Bounds.MaxX()
					y = line.Bounds.Y
				}
			}
		}
	}

	lineStart := uint(len(*lines))

	if x+textLen < container.MaxX() {
		box.Height = 1
		*lines = append(*lines, LineBox{Line: text, Bounds: BoundingBox{X: x, Y: y, Width: textLen, Height: 1}})
		w := codePointCount(text)
		box.Width = w
		box.X, box.Y = x, y
		t.StartPosition = Point{X: box.MaxX(), Y: y}
		return TextRenderResult{Container: box, Span: LineSpan{Start: lineStart, Size: 1}}
	}

	box.X, box.Y = x, y
	box.Width = minInt(width, container.Width)

	start := 0
	startY := y
	maxX := x

	noWrap := style.Whitespace == css.NoWrap

	for {
		if start < len(text) && isSpaceByte(text[start]) {
			if !noWrap && x+1 >= container.MaxX() {
				y++
				x = container.MinX()
				dx, dy = 0, 0
				if y >= container.MaxY() {
					break
				}
			}
			renderWhitespace := style.Whitespace == css.Pre || style.Whitespace == css.PreWrap || x != container.MinX()
			if renderWhitespace {
				xInc := 1
				if text[start] == '\n' {
					x = container.MinX()
					xInc = 0
					y++
					dx, dy = 0, 0
				}
				x += xInc
				maxX = maxInt(maxX, x)
			}
			start++
		}

		pos := findWord(text, start)
		txt := text[start:pos]
		sz := codePointCount(txt)

		if !noWrap && x-dx+sz > container.MaxX() {
			if x != container.MinX() {
				y++
				x = container.MinX()
				dx, dy = 0, 0
				if y >= container.MaxY() {
					break
				}
			}
		}

		rendered := false
		if !noWrap && style.OverflowWrap == css.BreakWord && x-dx+sz > container.MaxX() {
			lastTextEnd := 0
			lastXStart := x
			w := 0
			i := 0
			for i < len(txt) {
				r, l := utf8.DecodeRuneInString(txt[i:])
				_ = r
				maxX = maxInt(maxX, x)
				if x+1 > container.MaxX() {
					*lines = append(*lines, LineBox{Line: txt[lastTextEnd:i], Bounds: BoundingBox{X: lastXStart, Y: y, Width: w, Height: 1}})
					y++
					x = container.MinX()
					lastXStart = x
					lastTextEnd = i
					w = 0
					dx, dy = 0, 0
					if y >= container.MaxY() {
						break
					}
				}
				i += l
				w++
				x++
			}
			if lastTextEnd != len(txt) {
				*lines = append(*lines, LineBox{Line: txt[lastTextEnd:], Bounds: BoundingBox{X: lastXStart, Y: y, Width: w, Height: 1}})
			}
			rendered = true
		}

		if !rendered {
			*lines = append(*lines, LineBox{Line: txt, Bounds: BoundingBox{X: x, Y: y, Width: sz, Height: 1}})
			x += sz
		}

		maxX = maxInt(maxX, x)
		start = pos
		if start >= len(text) || y >= container.MaxY() {
			break
		}
	}

	box.Height = y - startY + 1
	t.StartPosition = Point{X: x, Y: y}
	box.Width = maxX - box.MinX()

	size := uint(len(*lines)) - lineStart
	return TextRenderResult{Container: box, Span: LineSpan{Start: lineStart, Size: size}}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
