package css

import "testing"

func TestParseQuad(t *testing.T) {
	parse := func(s string) Number { return ParseNumber(s, Fit()) }
	def := Uniform(Fit())

	tests := []struct {
		name string
		in   string
		want Quad
	}{
		{"empty returns default", "", def},
		{"one value applies to all sides", "2c", Uniform(Cells(2))},
		{"two values: vertical/horizontal", "1c 2c", Quad{Top: Cells(1), Bottom: Cells(1), Right: Cells(2), Left: Cells(2)}},
		{"three values: left mirrors right", "1c 2c 3c", Quad{Top: Cells(1), Right: Cells(2), Bottom: Cells(3), Left: Cells(2)}},
		{"four values positional", "1c 2c 3c 4c", Quad{Top: Cells(1), Right: Cells(2), Bottom: Cells(3), Left: Cells(4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuad(tt.in, parse, def)
			if got != tt.want {
				t.Errorf("ParseQuad(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuadResolveCells(t *testing.T) {
	q := Quad{Top: Pct(50), Right: Cells(3), Bottom: Pct(25), Left: Fit()}
	got := q.ResolveCells(20)
	want := Quad{Top: Cells(10), Right: Cells(3), Bottom: Cells(5), Left: Cells(0)}
	if got != want {
		t.Errorf("ResolveCells(20) = %+v, want %+v", got, want)
	}
}

func TestQuadHorizontalVertical(t *testing.T) {
	q := Quad{Top: Cells(1), Right: Cells(2), Bottom: Cells(3), Left: Cells(4)}
	if got := q.Horizontal(); got != 6 {
		t.Errorf("Horizontal() = %d, want 6", got)
	}
	if got := q.Vertical(); got != 4 {
		t.Errorf("Vertical() = %d, want 4", got)
	}
}
