package cell

// Grid is the put_pixel/clear contract every concrete grid and the
// measurement NullGrid both satisfy (spec §4.6). Flushing a grid to bytes
// needs more than this interface carries — the Writer below has no way to
// express color/attributes — so it isn't part of the contract; ansiterm's
// Terminal flushes a *TermGrid directly instead of going through Grid.
type Grid interface {
	Width() int
	Height() int
	PutPixel(glyph string, x, y int, style PixelStyle) bool
	Clear()
	Dirty() bool
}

// Writer is the byte-sink interface the flusher writes through (spec
// §6.2): raw writes plus an is-a-display query that suppresses SGR/cursor
// control when false.
type Writer interface {
	WriteString(s string) (int, error)
	IsDisplay() bool
}

// TermGrid is the concrete row-major cell grid, grounded on the teacher's
// tui.Buffer (storage/indexing) plus forme.Screen's dirty-row bookkeeping
// and diff-flush algorithm, generalized to z-index-aware last-writer-wins.
type TermGrid struct {
	cells  []Cell
	width  int
	height int
	dirty  bool
}

// NewGrid allocates a width x height grid of blank cells.
func NewGrid(width, height int) *TermGrid {
	g := &TermGrid{cells: make([]Cell, width*height), width: width, height: height}
	g.Clear()
	return g
}

func (g *TermGrid) Width() int  { return g.width }
func (g *TermGrid) Height() int { return g.height }
func (g *TermGrid) Dirty() bool { return g.dirty }

// MarkClean unmarks the grid-level dirty flag without touching any cell's
// content or its own per-cell Dirty bit — the flush algorithm's final
// "clear dirty" step (spec §4.6), distinct from Clear()'s full reset of
// cell content. A flusher in another package has no way to reach the
// private field this guards, so it calls this instead.
func (g *TermGrid) MarkClean() { g.dirty = false }

func (g *TermGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *TermGrid) index(x, y int) int { return y*g.width + x }

// PutPixel is the single write primitive every renderer call funnels
// through: out-of-bounds is a no-op returning false; a strictly higher
// existing z-index is a no-op returning true (spec §4.6).
func (g *TermGrid) PutPixel(glyph string, x, y int, style PixelStyle) bool {
	if !g.inBounds(x, y) {
		return false
	}
	idx := g.index(x, y)
	c := &g.cells[idx]
	if c.Style.ZIndex > style.ZIndex {
		return true
	}
	if c.Glyph != glyph || !c.Style.IsSameStyle(style) || c.Style.ZIndex != style.ZIndex {
		c.Dirty = true
		g.dirty = true
	}
	c.Glyph = glyph
	c.Style = style
	return true
}

// Get returns the cell at (x,y), or a blank cell if out of bounds. The
// returned Cell is a copy; mutating it (e.g. its Dirty field) has no effect
// on the grid — use ClearCellDirty to unmark a cell once its glyph has
// actually been flushed.
func (g *TermGrid) Get(x, y int) Cell {
	if !g.inBounds(x, y) {
		return EmptyCell()
	}
	return g.cells[g.index(x, y)]
}

// ClearCellDirty unmarks one cell's own Dirty bit, independent of the
// grid-level flag MarkClean resets. The flusher calls this once it has
// emitted a cell's glyph, per spec §4.6's "clear c.dirty" step.
func (g *TermGrid) ClearCellDirty(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)].Dirty = false
}

// Clear resets every cell to blank and unmarks dirty.
func (g *TermGrid) Clear() {
	empty := EmptyCell()
	for i := range g.cells {
		g.cells[i] = empty
	}
	g.dirty = false
}

// Resize reallocates the grid, preserving overlapping content — grounded
// on tui.Buffer.Resize.
func (g *TermGrid) Resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	next := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range next {
		next[i] = empty
	}
	minW, minH := minInt(width, g.width), minInt(height, g.height)
	for y := 0; y < minH; y++ {
		for x := 0; x < minW; x++ {
			next[y*width+x] = g.cells[y*g.width+x]
		}
	}
	g.cells, g.width, g.height = next, width, height
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// NullGrid accepts every write as a no-op; used for measurement passes
// that want a Grid without actually allocating/diffing one (spec §4.6).
type NullGrid struct{ w, h int }

func NewNullGrid(w, h int) *NullGrid { return &NullGrid{w: w, h: h} }
func (n *NullGrid) Width() int       { return n.w }
func (n *NullGrid) Height() int      { return n.h }
func (n *NullGrid) Clear()           {}
func (n *NullGrid) Dirty() bool      { return false }
func (n *NullGrid) PutPixel(string, int, int, PixelStyle) bool {
	return true
}
