package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"geomap/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion records build information shown by --version.
func SetVersion(v, c string) {
	version, commit = v, c
}

// versionLine is printed by both --version and the version command.
func versionLine() string {
	return fmt.Sprintf("geomap %s (%s)\n", version, commit)
}

// app carries the streams and resolved settings shared by all commands.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool
	cfg        config.Config
}

// Execute builds the command tree and runs it with os streams.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand returns the geomap command tree bound to the given streams.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}
	ro := renderOpts{}

	root := &cobra.Command{
		Use:           "geomap [file|-]",
		Short:         "Preview vector geodata as braille in the terminal",
		Long:          `geomap renders points, lines and polygons from GeoJSON, WKT, CSV, KML, encoded polylines and shapefiles as a grid of Unicode braille characters sized to your terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.render(cmd, args[0], ro)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(versionLine())
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a TOML config file")
	ro.bind(root)

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newViewCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// setup loads configuration and attaches a logger to the command context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	level := parseLevel(cfg.LogLevel)
	if a.verbose {
		level = log.DebugLevel
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, newLogger(a.errOut, level)))
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(a.out, versionLine())
			return err
		},
	}
}
