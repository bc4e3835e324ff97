package ansiterm

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/colorprofile"

	"termml/cell"
	"termml/css"
)

func newTestTerminal(buf *bytes.Buffer, isTTY bool, profile colorprofile.Profile) *Terminal {
	return &Terminal{writer: buf, isTTY: isTTY, profile: profile}
}

func TestWriteInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{-3, "-3"},
		{1024, "1024"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		writeInt(&buf, tt.n)
		if buf.String() != tt.want {
			t.Errorf("writeInt(%d) = %q, want %q", tt.n, buf.String(), tt.want)
		}
	}
}

func TestRGBTo256(t *testing.T) {
	// Pure black and pure white should land at the cube's own corners.
	if got := rgbTo256(0, 0, 0); got != 16 {
		t.Errorf("rgbTo256(0,0,0) = %d, want 16", got)
	}
	if got := rgbTo256(255, 255, 255); got != 16+36*5+6*5+5 {
		t.Errorf("rgbTo256(255,255,255) = %d, want %d", got, 16+36*5+6*5+5)
	}
}

func TestWriteColor(t *testing.T) {
	t.Run("transparent foreground", func(t *testing.T) {
		var buf bytes.Buffer
		term := newTestTerminal(&buf, true, colorprofile.TrueColor)
		term.writeColor(css.Transparent(), true)
		if term.buf.String() != ";39" {
			t.Errorf("got %q, want ;39", term.buf.String())
		}
	})

	t.Run("4-bit background with bright offset", func(t *testing.T) {
		var buf bytes.Buffer
		term := newTestTerminal(&buf, true, colorprofile.TrueColor)
		term.writeColor(css.Indexed4(10), false) // bright green
		if term.buf.String() != ";102" {
			t.Errorf("got %q, want ;102", term.buf.String())
		}
	})

	t.Run("truecolor profile emits 38;2", func(t *testing.T) {
		var buf bytes.Buffer
		term := newTestTerminal(&buf, true, colorprofile.TrueColor)
		term.writeColor(css.RGB(10, 20, 30), true)
		if term.buf.String() != ";38;2;10;20;30" {
			t.Errorf("got %q, want ;38;2;10;20;30", term.buf.String())
		}
	})

	t.Run("non-truecolor profile downgrades to 256", func(t *testing.T) {
		var buf bytes.Buffer
		term := newTestTerminal(&buf, true, colorprofile.ANSI256)
		term.writeColor(css.RGB(10, 20, 30), true)
		if !bytes.HasPrefix(term.buf.Bytes(), []byte(";38;5;")) {
			t.Errorf("expected 256-color downgrade, got %q", term.buf.String())
		}
	})
}

func TestFlush(t *testing.T) {
	t.Run("clean grid writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		term := newTestTerminal(&buf, true, colorprofile.TrueColor)
		g := cell.NewGrid(4, 2)
		term.Flush(g)
		if buf.Len() != 0 {
			t.Errorf("expected no output for a clean grid, got %q", buf.String())
		}
	})

	t.Run("dirty cell emits a cursor move and the glyph", func(t *testing.T) {
		var buf bytes.Buffer
		term := newTestTerminal(&buf, true, colorprofile.TrueColor)
		g := cell.NewGrid(4, 2)
		g.PutPixel("X", 1, 0, cell.PixelStyle{})
		term.Flush(g)
		out := buf.String()
		if !bytes.Contains([]byte(out), []byte("\x1b[1;2H")) {
			t.Errorf("expected a cursor move to row 1 col 2, got %q", out)
		}
		if !bytes.Contains([]byte(out), []byte("X")) {
			t.Errorf("expected the glyph X in the output, got %q", out)
		}
	})

	t.Run("non-tty writer skips SGR but still writes glyphs", func(t *testing.T) {
		var buf bytes.Buffer
		term := newTestTerminal(&buf, false, colorprofile.TrueColor)
		g := cell.NewGrid(2, 1)
		g.PutPixel("Y", 0, 0, cell.PixelStyle{Bold: true})
		term.Flush(g)
		if bytes.Contains(buf.Bytes(), []byte("\x1b[0;1")) {
			t.Errorf("expected no SGR codes for a non-display writer, got %q", buf.String())
		}
		if !bytes.Contains(buf.Bytes(), []byte("Y")) {
			t.Error("expected the glyph to still be written")
		}
	})

	t.Run("Flush clears dirty bits so a second flush is a no-op", func(t *testing.T) {
		var buf bytes.Buffer
		term := newTestTerminal(&buf, true, colorprofile.TrueColor)
		g := cell.NewGrid(2, 1)
		g.PutPixel("Z", 0, 0, cell.PixelStyle{})
		term.Flush(g)
		if g.Dirty() {
			t.Error("expected Flush to unmark the grid-level dirty flag")
		}
		buf.Reset()
		term.Flush(g)
		if buf.Len() != 0 {
			t.Errorf("expected second flush of an unchanged grid to write nothing, got %q", buf.String())
		}
	})

	t.Run("Flush only re-emits the cell that actually changed", func(t *testing.T) {
		var buf bytes.Buffer
		term := newTestTerminal(&buf, true, colorprofile.TrueColor)
		g := cell.NewGrid(2, 1)
		g.PutPixel("A", 0, 0, cell.PixelStyle{})
		term.Flush(g)
		buf.Reset()
		g.PutPixel("B", 1, 0, cell.PixelStyle{})
		term.Flush(g)
		if bytes.Contains(buf.Bytes(), []byte("A")) {
			t.Errorf("expected the untouched cell not to be re-emitted, got %q", buf.String())
		}
		if !bytes.Contains(buf.Bytes(), []byte("B")) {
			t.Errorf("expected the newly-dirtied cell to be emitted, got %q", buf.String())
		}
	})
}

func TestFlushFull(t *testing.T) {
	var buf bytes.Buffer
	term := newTestTerminal(&buf, true, colorprofile.TrueColor)
	g := cell.NewGrid(2, 2)
	g.PutPixel("A", 0, 0, cell.PixelStyle{})
	term.FlushFull(g)
	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("\x1b[2J\x1b[H")) {
		t.Errorf("expected a full clear+home at the start, got %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("A")) {
		t.Error("expected the written glyph to appear")
	}
}
