package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"geomap/internal/config"
	"geomap/internal/geom"
	"geomap/internal/grid"
)

// renderOpts holds the flags shared by the root command and render.
type renderOpts struct {
	width     int     // output columns; 0 uses the terminal width
	height    int     // output rows; 0 uses the terminal height minus one
	simplify  float64 // simplification proportion
	outline   bool    // draw polygon outlines instead of areas
	format    string  // input format override
	lat       string  // CSV latitude column
	lon       string  // CSV longitude column
	wktColumn string  // CSV WKT geometry column
	precision int     // encoded polyline precision
}

func (o *renderOpts) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&o.width, "width", "W", 0, "output width in characters (default: terminal width)")
	f.IntVarP(&o.height, "height", "H", 0, "output height in characters (default: terminal height - 1)")
	f.Float64VarP(&o.simplify, "simplify", "s", 0, "simplification proportion, scaled by the output cell count")
	f.BoolVar(&o.outline, "outline", false, "draw polygons as outlines instead of filled areas")
	f.StringVarP(&o.format, "format", "f", "", "input format: geojson, wkt, csv, kml, polyline, shp")
	f.StringVar(&o.lat, "lat", "", "CSV latitude column name")
	f.StringVar(&o.lon, "lon", "", "CSV longitude column name")
	f.StringVar(&o.wktColumn, "wkt-column", "", "CSV column holding WKT geometry")
	f.IntVar(&o.precision, "precision", geom.DefaultPolylinePrecision, "encoded polyline precision")
}

// merge folds explicitly set flags over the configuration. An explicit size
// must be positive; only the flag default of 0 defers to the terminal.
func (o renderOpts) merge(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	f := cmd.Flags()
	if f.Changed("width") {
		if o.width <= 0 {
			return cfg, fmt.Errorf("--width %d: %w", o.width, grid.ErrInvalidSize)
		}
		cfg.Width = o.width
	}
	if f.Changed("height") {
		if o.height <= 0 {
			return cfg, fmt.Errorf("--height %d: %w", o.height, grid.ErrInvalidSize)
		}
		cfg.Height = o.height
	}
	if f.Changed("simplify") {
		cfg.Simplify = o.simplify
	}
	if f.Changed("outline") {
		cfg.Outline = o.outline
	}
	if f.Changed("format") {
		cfg.Format = o.format
	}
	if f.Changed("lat") {
		cfg.CSV.Lat = o.lat
	}
	if f.Changed("lon") {
		cfg.CSV.Lon = o.lon
	}
	if f.Changed("wkt-column") {
		cfg.CSV.WKT = o.wktColumn
	}
	return cfg, nil
}

func (o renderOpts) loadOptions(cfg config.Config) geom.LoadOptions {
	return geom.LoadOptions{
		Format:            cfg.Format,
		CSV:               geom.CSVColumns{Lat: cfg.CSV.Lat, Lon: cfg.CSV.Lon, WKT: cfg.CSV.WKT},
		PolylinePrecision: o.precision,
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var o renderOpts
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Print a braille preview of a geometry file",
		Long:  `Render reads a geometry file (or stdin with "-") and prints a braille map sized to the terminal, or to --width x --height.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args[0], o)
		},
	}
	o.bind(cmd)
	return cmd
}

func (a *app) render(cmd *cobra.Command, path string, o renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := o.merge(cmd, a.cfg)
	if err != nil {
		return err
	}

	lo := o.loadOptions(cfg)
	lo.Stdin = a.in
	p := newProgress(logger)
	d, err := geom.Load(path, lo)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	pts, lines, polys := d.Counts()
	p.done("parsed geography", "points", pts, "lines", lines, "polygons", polys)

	var f *os.File
	if file, ok := a.out.(*os.File); ok {
		f = file
	}
	w, h, err := config.OutputSize(cfg.Width, cfg.Height, f)
	if err != nil {
		return err
	}

	p = newProgress(logger)
	canvas, g, err := grid.RenderGeometries(d.Geometries, grid.Options{
		Width:    w,
		Height:   h,
		Simplify: cfg.Simplify,
		Area:     d.Area && !cfg.Outline,
	})
	if err != nil {
		return err
	}
	p.done("rendered", "cols", g.Cols, "rows", g.Rows, "cell", fmt.Sprintf("%.6gx%.6g", g.CellSize[0], g.CellSize[1]))

	_, err = canvas.WriteTo(a.out)
	return err
}
