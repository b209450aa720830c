// Package cli implements the geomap command-line interface.
//
// Commands:
//   - render: print a braille preview of a geometry file to stdout
//   - view: open the interactive viewer
//   - version: print build information
//
// All commands accept --verbose (-v) for debug logging and --config for an
// explicit TOML configuration file. Loggers travel in the command context.
package cli
