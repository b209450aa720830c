package grid

import (
	"bufio"
	"io"
)

const (
	// DotCols and DotRows are the dot matrix of one braille glyph.
	DotCols = 2
	DotRows = 4

	brailleBase = 0x2800
)

// DotBit returns the braille bit for the dot at (row, col) of a cell, or 0
// for positions outside the 4x2 matrix.
func DotBit(row, col int) uint8 {
	if col == 0 {
		switch row {
		case 0:
			return 0x01
		case 1:
			return 0x02
		case 2:
			return 0x04
		case 3:
			return 0x40
		}
	} else if col == 1 {
		switch row {
		case 0:
			return 0x08
		case 1:
			return 0x10
		case 2:
			return 0x20
		case 3:
			return 0x80
		}
	}
	return 0
}

// Glyph maps a dot mask to its code point in the Braille Patterns block.
func Glyph(mask uint8) rune {
	return rune(brailleBase + int(mask))
}

// Canvas holds one 8-bit dot mask per character cell.
type Canvas struct {
	w, h int // in cells
	m    [][]uint8
}

// NewCanvas returns a blank canvas of w columns and h rows.
func NewCanvas(w, h int) *Canvas {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &Canvas{w: w, h: h, m: m}
}

func (c *Canvas) Rows() int { return c.h }
func (c *Canvas) Cols() int { return c.w }

// Mask returns the dot mask of the cell at (row, col).
func (c *Canvas) Mask(row, col int) uint8 { return c.m[row][col] }

// Set ORs mask into the cell at (row, col); out of range cells are ignored.
func (c *Canvas) Set(row, col int, mask uint8) {
	if row < 0 || row >= c.h || col < 0 || col >= c.w {
		return
	}
	c.m[row][col] |= mask
}

// Lines returns the canvas as text, one string per row. Empty cells are
// U+2800 rather than spaces so every rune stays in the braille block.
func (c *Canvas) Lines() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			row[x] = Glyph(c.m[y][x])
		}
		out[y] = string(row)
	}
	return out
}

// WriteTo writes every row followed by a newline.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range c.Lines() {
		k, err := bw.WriteString(line)
		n += int64(k)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}
