// Package ansiterm drives a real terminal: raw-mode entry/exit, resize
// notification, and flushing a cell.Grid as minimal ANSI/SGR byte
// sequences. Grounded on the teacher's forme.Screen almost line for line,
// adapted to diff a termml cell.Grid instead of a tui.Buffer.
package ansiterm

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"termml/cell"
	"termml/css"
)

// Terminal owns the live connection to a real terminal: raw-mode state,
// resize notifications, and the byte buffer used to batch a flush into a
// single write syscall.
type Terminal struct {
	writer io.Writer
	fd     int

	width  int
	height int

	origTermios *unix.Termios
	inRawMode   bool

	resizeChan chan Size
	sigChan    chan os.Signal

	lastStyle cell.PixelStyle
	haveStyle bool
	buf       bytes.Buffer

	profile colorprofile.Profile
	isTTY   bool

	mu sync.Mutex
}

// Size is a terminal's column/row extent.
type Size struct{ Width, Height int }

// Open connects to w (nil means os.Stdout). Terminal size and TTY status
// are probed on os.Stdout's file descriptor whatever w is; color
// capability is detected from w.
func Open(w io.Writer) (*Terminal, error) {
	if w == nil {
		w = os.Stdout
	}
	fd := int(os.Stdout.Fd())
	width, height, err := getTerminalSize(fd)
	if err != nil {
		width, height = 80, 24
	}

	t := &Terminal{
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
		isTTY:      isatty.IsTerminal(uintptr(fd)),
		profile:    colorprofile.Detect(w, os.Environ()),
	}
	return t, nil
}

// getTerminalSize probes the ioctl winsize first (matching the teacher's
// screen.go exactly); when that fails — e.g. the fd isn't a real tty —
// it falls back to golang.org/x/term's own probe before giving up,
// so a wrapped or redirected fd still has a second chance at a real size
// instead of going straight to the 80x24 default in Open.
func getTerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err == nil {
		return int(ws.Col), int(ws.Row), nil
	}
	return term.GetSize(fd)
}

// WriteString implements cell.Writer.
func (t *Terminal) WriteString(s string) (int, error) { return io.WriteString(t.writer, s) }

// IsDisplay implements cell.Writer: false for redirected/non-TTY output,
// per spec §6.2's "is-a-display?" query.
func (t *Terminal) IsDisplay() bool { return t.isTTY }

// Size returns the current terminal dimensions.
func (t *Terminal) Size() Size { return Size{Width: t.width, Height: t.height} }

// ResizeChan delivers new sizes on SIGWINCH.
func (t *Terminal) ResizeChan() <-chan Size { return t.resizeChan }

// EnterRawMode switches the terminal into raw mode, the alternate screen,
// hides the cursor, and enables bracketed paste.
func (t *Terminal) EnterRawMode() error {
	if t.inRawMode {
		return nil
	}
	termios, err := unix.IoctlGetTermios(t.fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	t.origTermios = termios

	raw := *termios
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, &raw); err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	t.inRawMode = true

	signal.Notify(t.sigChan, syscall.SIGWINCH)
	go t.handleSignals()

	t.writeRaw("\x1b[?1049h\x1b[2J\x1b[H\x1b[?25l\x1b[?2004h")
	return nil
}

// ExitRawMode restores the terminal's original termios and screen state.
func (t *Terminal) ExitRawMode() error {
	if !t.inRawMode {
		return nil
	}
	t.writeRaw("\x1b[?2004l\x1b[?25h\x1b[?1049l")
	signal.Stop(t.sigChan)

	if t.origTermios != nil {
		if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, t.origTermios); err != nil {
			return fmt.Errorf("restore termios: %w", err)
		}
	}
	t.inRawMode = false
	return nil
}

func (t *Terminal) handleSignals() {
	for range t.sigChan {
		width, height, err := getTerminalSize(t.fd)
		if err != nil {
			continue
		}
		t.mu.Lock()
		if width != t.width || height != t.height {
			t.width, t.height = width, height
			t.writeRaw("\x1b[2J")
		}
		t.mu.Unlock()
		select {
		case t.resizeChan <- Size{Width: width, Height: height}:
		default:
		}
	}
}

func (t *Terminal) writeRaw(s string) { io.WriteString(t.writer, s) }

// EnableMouse opts into SGR mouse reporting with motion tracking (CSI
// ?1000h / ?1006h / ?1003h per spec §7's Flusher escape inventory).
func (t *Terminal) EnableMouse() { t.writeRaw("\x1b[?1000h\x1b[?1006h\x1b[?1003h") }

// DisableMouse reverses EnableMouse.
func (t *Terminal) DisableMouse() { t.writeRaw("\x1b[?1003l\x1b[?1006l\x1b[?1000l") }

// Flush diffs a dirty cell.TermGrid against the terminal, emitting a
// minimal byte stream: cursor moves only when the write position isn't
// the immediate continuation of the previous write, SGR transitions only
// when the visible style changes, per spec §4.6's flush algorithm.
func (t *Terminal) Flush(g *cell.TermGrid) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !g.Dirty() {
		return
	}

	t.buf.Reset()
	cursorX, cursorY := -1, -1

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.Get(x, y)
			if !c.Dirty {
				continue
			}
			if t.isTTY && (cursorX != x || cursorY != y) {
				t.moveCursor(x, y)
			}
			t.writeCell(c)
			g.ClearCellDirty(x, y)
			w := runewidth.StringWidth(c.Glyph)
			if w == 0 {
				w = 1
			}
			cursorX, cursorY = x+w, y
		}
	}

	if t.buf.Len() > 0 {
		if t.isTTY {
			t.buf.WriteString("\x1b[0m")
		}
		t.haveStyle = false
		t.writer.Write(t.buf.Bytes())
	}
	g.MarkClean()
}

// FlushFull redraws the entire grid without diffing, used after a resize
// or the first frame.
func (t *Terminal) FlushFull(g *cell.TermGrid) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf.Reset()
	if t.isTTY {
		t.buf.WriteString("\x1b[2J\x1b[H")
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t.writeCell(g.Get(x, y))
			g.ClearCellDirty(x, y)
		}
		if y < g.Height()-1 {
			t.buf.WriteString("\r\n")
		}
	}
	if t.isTTY {
		t.buf.WriteString("\x1b[0m")
	}
	t.haveStyle = false
	t.writer.Write(t.buf.Bytes())
	g.MarkClean()
}

func (t *Terminal) moveCursor(x, y int) {
	t.buf.WriteString("\x1b[")
	writeInt(&t.buf, y+1)
	t.buf.WriteByte(';')
	writeInt(&t.buf, x+1)
	t.buf.WriteByte('H')
}

func (t *Terminal) writeCell(c cell.Cell) {
	if !t.isTTY {
		writeGlyph(&t.buf, c.Glyph)
		return
	}
	if !t.haveStyle || !c.Style.IsSameStyle(t.lastStyle) {
		t.writeSGR(c.Style)
		t.lastStyle = c.Style
		t.haveStyle = true
	}
	writeGlyph(&t.buf, c.Glyph)
}

// writeGlyph writes c's grapheme clusters one at a time rather than as a
// single byte-blob WriteString, so a cell holding a combining-mark sequence
// (a base rune plus accents composed into one visible glyph by an upstream
// writer) never has a cluster boundary land in the middle of the escape
// sequences writeSGR just emitted around it.
func writeGlyph(buf *bytes.Buffer, glyph string) {
	for len(glyph) > 0 {
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(glyph, -1)
		buf.WriteString(cluster)
		glyph = rest
	}
}

func (t *Terminal) writeSGR(s cell.PixelStyle) {
	t.buf.WriteString("\x1b[0")
	if s.Bold {
		t.buf.WriteString(";1")
	}
	if s.Dim {
		t.buf.WriteString(";2")
	}
	if s.Italic {
		t.buf.WriteString(";3")
	}
	if s.Underline {
		t.buf.WriteString(";4")
	}
	t.writeColor(s.FG, true)
	t.writeColor(s.BG, false)
	t.buf.WriteString("m")
}

func (t *Terminal) writeColor(c css.Color, fg bool) {
	switch c.Kind {
	case css.ColorTransparent:
		if fg {
			t.buf.WriteString(";39")
		} else {
			t.buf.WriteString(";49")
		}
	case css.Color4Bit:
		if c.Index == css.IndexedDefault {
			if fg {
				t.buf.WriteString(";39")
			} else {
				t.buf.WriteString(";49")
			}
			return
		}
		base := 30
		if !fg {
			base = 40
		}
		idx := int(c.Index)
		if idx >= 8 {
			base += 60
			idx -= 8
		}
		t.buf.WriteByte(';')
		writeInt(&t.buf, base+idx)
	case css.Color8Bit:
		if fg {
			t.buf.WriteString(";38;5;")
		} else {
			t.buf.WriteString(";48;5;")
		}
		writeInt(&t.buf, int(c.Index))
	case css.ColorRGB:
		if t.profile < colorprofile.TrueColor {
			t.writeColor(css.Indexed8(rgbTo256(c.R, c.G, c.B)), fg)
			return
		}
		if fg {
			t.buf.WriteString(";38;2;")
		} else {
			t.buf.WriteString(";48;2;")
		}
		writeInt(&t.buf, int(c.R))
		t.buf.WriteByte(';')
		writeInt(&t.buf, int(c.G))
		t.buf.WriteByte(';')
		writeInt(&t.buf, int(c.B))
	}
}

// rgbTo256 downsamples truecolor to the 6x6x6 216-color cube used by
// ANSI-256 terminals, for profiles colorprofile reports as lacking
// truecolor support.
func rgbTo256(r, g, b uint8) uint8 {
	to6 := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	r6, g6, b6 := to6(r), to6(g), to6(b)
	return uint8(16 + 36*r6 + 6*g6 + b6)
}

func writeInt(buf *bytes.Buffer, n int) {
	if n == 0 {
		buf.WriteByte('0')
		return
	}
	if n < 0 {
		buf.WriteByte('-')
		n = -n
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	buf.Write(scratch[i:])
}
