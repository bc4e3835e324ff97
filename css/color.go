// Package css parses the markup's CSS-like attribute vocabulary into the
// Style values the layout core operates on.
package css

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorKind tags the variant held by a Color.
type ColorKind uint8

const (
	ColorRGB ColorKind = iota
	Color4Bit
	Color8Bit
	ColorTransparent
)

// IndexedDefault is the sentinel 4-bit index meaning "terminal default".
const IndexedDefault = 16

// Color is a tagged union over RGB, 4-bit indexed (0-15 plus the 16
// "default" sentinel), 8-bit indexed, and transparent.
type Color struct {
	Kind    ColorKind
	R, G, B uint8
	Index   uint8
}

// RGB builds a truecolor Color.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// Indexed4 builds a 4-bit indexed Color (0-15), or the default sentinel at 16.
func Indexed4(i uint8) Color { return Color{Kind: Color4Bit, Index: i} }

// Indexed8 builds an 8-bit indexed Color (0-255).
func Indexed8(i uint8) Color { return Color{Kind: Color8Bit, Index: i} }

// Transparent is the sentinel "paints nothing" color.
func Transparent() Color { return Color{Kind: ColorTransparent} }

// DefaultColor is the 4-bit "terminal default" sentinel.
func DefaultColor() Color { return Indexed4(IndexedDefault) }

// Equal compares tag and payload.
func (c Color) Equal(o Color) bool { return c == o }

var named4Bit = map[string]uint8{
	"black": 0, "red": 1, "green": 2, "yellow": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
	"light-black": 8, "light-red": 9, "light-green": 10, "light-yellow": 11,
	"light-blue": 12, "light-magenta": 13, "light-cyan": 14, "light-white": 15,
}

// Parse parses one of the grammars in the attribute vocabulary: #rgb,
// #rrggbb, rgb(r,g,b), hsl(h,s,l), bit(n), a named 4-bit color (with
// light-* bright variants), "default", or "transparent". Malformed input
// silently falls back to def, per the error-handling policy: parsers never
// abort layout on bad input.
func Parse(s string, def Color) Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	switch {
	case s == "default":
		return DefaultColor()
	case s == "transparent":
		return Transparent()
	case strings.HasPrefix(s, "#"):
		if c, ok := parseHex(s[1:]); ok {
			return c
		}
		return def
	case strings.HasPrefix(s, "rgb("):
		args, ok := parseArgs(s, "rgb(")
		if !ok || len(args) != 3 {
			return def
		}
		r, ok1 := parseByte(args[0])
		g, ok2 := parseByte(args[1])
		b, ok3 := parseByte(args[2])
		if !ok1 || !ok2 || !ok3 {
			return def
		}
		return RGB(r, g, b)
	case strings.HasPrefix(s, "hsl("):
		args, ok := parseArgs(s, "hsl(")
		if !ok || len(args) != 3 {
			return def
		}
		h, ok1 := parseFloat(args[0])
		sat, ok2 := parsePercentFloat(args[1])
		l, ok3 := parsePercentFloat(args[2])
		if !ok1 || !ok2 || !ok3 {
			return def
		}
		rgb := colorful.Hsl(h, sat, l)
		r, g, b := rgb.Clamped().RGB255()
		return RGB(r, g, b)
	case strings.HasPrefix(s, "bit("):
		args, ok := parseArgs(s, "bit(")
		if !ok || len(args) != 1 {
			return def
		}
		n, ok := parseByte(args[0])
		if !ok {
			return def
		}
		return Indexed8(n)
	default:
		if idx, ok := named4Bit[s]; ok {
			return Indexed4(idx)
		}
		return def
	}
}

// parseHex handles 3-digit (#rgb, CSS-correct digit-doubling) and 6-digit
// (#rrggbb) forms.
func parseHex(h string) (Color, bool) {
	switch len(h) {
	case 3:
		r, ok1 := parseHexDigit(h[0])
		g, ok2 := parseHexDigit(h[1])
		b, ok3 := parseHexDigit(h[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return RGB(r*17, g*17, b*17), true
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return RGB(uint8(v>>16), uint8(v>>8&0xFF), uint8(v&0xFF)), true
	default:
		return Color{}, false
	}
}

func parseHexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// parseArgs extracts comma-separated arguments from "prefix(a,b,c)".
func parseArgs(s, prefix string) ([]string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	inner := s[len(prefix) : len(s)-1]
	parts := strings.Split(inner, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

func parseByte(s string) (uint8, bool) {
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return uint8(v), true
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parsePercentFloat(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v / 100, true
}
