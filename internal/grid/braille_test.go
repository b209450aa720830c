package grid

import (
	"bytes"
	"strings"
	"testing"
)

func TestDotBit(t *testing.T) {
	tests := []struct {
		row, col int
		want     uint8
	}{
		{0, 0, 0x01},
		{0, 1, 0x08},
		{1, 0, 0x02},
		{1, 1, 0x10},
		{2, 0, 0x04},
		{2, 1, 0x20},
		{3, 0, 0x40},
		{3, 1, 0x80},
		{4, 0, 0},
		{0, 2, 0},
		{-1, 0, 0},
		{0, -1, 0},
	}
	for _, tt := range tests {
		if got := DotBit(tt.row, tt.col); got != tt.want {
			t.Errorf("DotBit(%d, %d) = %#x, want %#x", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestDotBitsCoverByte(t *testing.T) {
	var all uint8
	for r := 0; r < DotRows; r++ {
		for c := 0; c < DotCols; c++ {
			b := DotBit(r, c)
			if all&b != 0 {
				t.Fatalf("bit %#x for (%d, %d) used twice", b, r, c)
			}
			all |= b
		}
	}
	if all != 0xFF {
		t.Errorf("all dots = %#x, want 0xff", all)
	}
}

func TestGlyph(t *testing.T) {
	if got := Glyph(0); got != '\u2800' {
		t.Errorf("Glyph(0) = %U, want U+2800", got)
	}
	if got := Glyph(0xFF); got != '\u28ff' {
		t.Errorf("Glyph(0xff) = %U, want U+28FF", got)
	}
	if got := Glyph(0x36); got != '\u2836' {
		t.Errorf("Glyph(0x36) = %U, want U+2836", got)
	}
}

func TestCanvasLines(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0, DotBit(0, 0))
	c.Set(1, 2, DotBit(3, 1))
	c.Set(5, 5, 0xFF) // out of range, ignored

	lines := c.Lines()
	want := []string{"\u2801\u2800\u2800", "\u2800\u2800\u2880"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if c.Mask(1, 2) != 0x80 {
		t.Errorf("Mask(1, 2) = %#x, want 0x80", c.Mask(1, 2))
	}
}

func TestCanvasWriteTo(t *testing.T) {
	c := NewCanvas(2, 3)
	c.Set(2, 1, DotBit(1, 1))

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	want := strings.Join(c.Lines(), "\n") + "\n"
	if buf.String() != want {
		t.Errorf("WriteTo() wrote %q, want %q", buf.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() = %d bytes, want %d", n, len(want))
	}
}
