package grid

import (
	"fmt"

	"github.com/paulmach/orb"

	"geomap/internal/geom"
)

// Options are the render parameters supplied by the invocation layer.
type Options struct {
	Width, Height int
	// Simplify is the simplification proportion, scaled by the cell count.
	Simplify float64
	// Area keeps polygons filled; otherwise only their outlines are drawn.
	Area bool
}

// Render runs the core pipeline over already normalized atoms.
func Render(atoms []geom.Atom, width, height int) (*Canvas, Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, Grid{}, fmt.Errorf("render %dx%d: %w", width, height, ErrInvalidSize)
	}
	if err := geom.CheckAtoms(atoms); err != nil {
		return nil, Grid{}, fmt.Errorf("render: %w", err)
	}
	idx := geom.BuildIndex(atoms)
	box, err := idx.Bounds()
	if err != nil {
		return nil, Grid{}, fmt.Errorf("render: %w", err)
	}
	g, err := Fit(float64(width), float64(height), box)
	if err != nil {
		return nil, Grid{}, err
	}
	return Sample(idx, g), g, nil
}

// RenderGeometries normalizes decoded geometry and renders it.
func RenderGeometries(gs []orb.Geometry, opts Options) (*Canvas, Grid, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, Grid{}, fmt.Errorf("render %dx%d: %w", opts.Width, opts.Height, ErrInvalidSize)
	}
	atoms, err := geom.NormalizeAll(gs, geom.NormalizeOptions{
		IsArea:    opts.Area,
		Tolerance: geom.Tolerance(opts.Simplify, opts.Height, opts.Width),
	})
	if err != nil {
		return nil, Grid{}, err
	}
	return Render(atoms, opts.Width, opts.Height)
}
