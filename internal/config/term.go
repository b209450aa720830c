package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"

	"geomap/internal/grid"
)

// TerminalSize returns the character size of the terminal behind f.
func TerminalSize(f *os.File) (width, height int, ok bool) {
	if f == nil || !term.IsTerminal(f.Fd()) {
		return 0, 0, false
	}
	w, h, err := term.GetSize(f.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// OutputSize resolves the render size: explicit values win, missing ones
// come from the terminal (one row less than its height to leave room for the
// prompt), and finally from DefaultWidth x DefaultHeight. Only 0 means
// missing; a negative size is an error.
func OutputSize(width, height int, f *os.File) (int, int, error) {
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("output size %dx%d: %w", width, height, grid.ErrInvalidSize)
	}
	if width > 0 && height > 0 {
		return width, height, nil
	}
	tw, th, ok := TerminalSize(f)
	if !ok {
		tw, th = DefaultWidth, DefaultHeight+1
	}
	if width == 0 {
		width = tw
	}
	if height == 0 {
		height = max(1, th-1)
	}
	return width, height, nil
}
