// Package device wraps a cell.Grid with a viewport-scoped clip stack,
// grounded on the teacher's Region sub-view-of-a-Buffer idiom (buffer.go),
// turned into an explicit guard stack per spec §4.7.
package device

import (
	"termml/cell"
	"termml/layout"
)

// PutResult is the three-way outcome of a Device write (spec §4.7).
type PutResult uint8

const (
	Rendered PutResult = iota
	Clipped
	OutOfBound
)

// Device is a cell.Grid plus the currently-installed viewport bounding
// box. All writes funnel through PutPixel/WriteText, which clip against
// the viewport before ever reaching the grid.
type Device struct {
	Grid     cell.Grid
	viewport layout.BoundingBox
}

// New wraps grid with an initial viewport covering its full extent.
func New(grid cell.Grid) *Device {
	return &Device{
		Grid:     grid,
		viewport: layout.BoundingBox{X: 0, Y: 0, Width: grid.Width(), Height: grid.Height()},
	}
}

// Viewport returns the currently installed viewport.
func (d *Device) Viewport() layout.BoundingBox { return d.viewport }

// PushViewport installs a new viewport and returns a restore closure —
// Go's non-copyable-RAII-guard analogue, used with defer, per spec §4.7's
// "clip guard saves the prior viewport... restores on all exit paths".
func (d *Device) PushViewport(v layout.BoundingBox) func() {
	prev := d.viewport
	d.viewport = v
	return func() { d.viewport = prev }
}

// PutPixel clips against the viewport before writing to the grid (spec
// §4.7): outside the viewport is Clipped (no grid write); otherwise the
// grid's own true/false result becomes Rendered/OutOfBound.
func (d *Device) PutPixel(glyph string, x, y int, style cell.PixelStyle) PutResult {
	if !d.viewport.In(x, y) {
		return Clipped
	}
	if d.Grid.PutPixel(glyph, x, y, style) {
		return Rendered
	}
	return OutOfBound
}

// WriteText iterates text's UTF-8 code points, writing each via PutPixel
// and advancing x. Stops at the first OutOfBound result or once x/y walks
// past the viewport's far edge (spec §4.7). Returns the number of bytes
// consumed and the final x.
func (d *Device) WriteText(text string, x, y int, style cell.PixelStyle) (int, int) {
	consumed := 0
	for _, r := range text {
		if x >= d.viewport.MaxX() || y >= d.viewport.MaxY() {
			break
		}
		res := d.PutPixel(string(r), x, y, style)
		if res == OutOfBound {
			break
		}
		consumed += len(string(r))
		x++
	}
	return consumed, x
}
