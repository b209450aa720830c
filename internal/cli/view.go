package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"geomap/internal/tui"
)

const debugLogFile = "geomap-debug.log"

func newViewCmd(a *app) *cobra.Command {
	var o renderOpts
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Open the interactive viewer",
		Long:  `View opens a full-screen viewer with a file sidebar, a WKT paste box and an attribute table. The map re-renders on every resize.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.merge(cmd, a.cfg)
			if err != nil {
				return err
			}
			// the screen belongs to the viewer, so logs go to a file
			logger := log.New(io.Discard)
			if a.verbose {
				f, err := tea.LogToFile(debugLogFile, "geomap")
				if err != nil {
					return fmt.Errorf("view: open debug log: %w", err)
				}
				defer f.Close()
				logger = newLogger(f, log.DebugLevel)
			}
			opts := tui.Options{
				Simplify: cfg.Simplify,
				Outline:  cfg.Outline,
				Load:     o.loadOptions(cfg),
				Logger:   logger,
			}
			var m tea.Model
			if len(args) > 0 {
				m = tui.NewWithPath(args[0], opts)
			} else {
				m = tui.New(opts)
			}
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(a.in),
				tea.WithOutput(a.out),
			)
			_, err = p.Run()
			return err
		},
	}
	o.bind(cmd)
	return cmd
}
