// Package config resolves geomap settings from defaults, an optional TOML
// file, a .env file and GEOMAP_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"geomap/internal/grid"
)

const (
	envPrefix     = "GEOMAP_"
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Config holds every tunable the CLI and the viewer read.
type Config struct {
	// Width and Height are the output size in characters; 0 means "use the
	// terminal size" and negative values are rejected.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Simplify is the simplification proportion; 0 disables it.
	Simplify float64 `toml:"simplify"`
	// Outline draws polygons as their exterior ring instead of filled areas.
	Outline  bool      `toml:"outline"`
	Format   string    `toml:"format"`
	CSV      CSVConfig `toml:"csv"`
	LogLevel string    `toml:"log_level"`
}

type CSVConfig struct {
	Lat string `toml:"lat"`
	Lon string `toml:"lon"`
	WKT string `toml:"wkt"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load resolves the configuration. path may be empty, in which case
// $GEOMAP_CONFIG and then $XDG_CONFIG_HOME/geomap/config.toml are tried.
// An explicit path that does not exist is an error; implicit ones are not.
func Load(path string) (Config, error) {
	cfg := Default()

	// a missing .env is normal
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(envPrefix + "CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = defaultPath()
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("config: read %q: %w", path, err)
			}
		}
		if cfg.Width < 0 || cfg.Height < 0 {
			return Config{}, fmt.Errorf("config: %q: size %dx%d: %w", path, cfg.Width, cfg.Height, grid.ErrInvalidSize)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "geomap", "config.toml")
}

// applyEnv overrides fields from GEOMAP_* variables.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(envPrefix + key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	if v, ok := get("WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sWIDTH: %w", envPrefix, err)
		}
		if n < 0 {
			return fmt.Errorf("config: %sWIDTH=%d: %w", envPrefix, n, grid.ErrInvalidSize)
		}
		cfg.Width = n
	}
	if v, ok := get("HEIGHT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sHEIGHT: %w", envPrefix, err)
		}
		if n < 0 {
			return fmt.Errorf("config: %sHEIGHT=%d: %w", envPrefix, n, grid.ErrInvalidSize)
		}
		cfg.Height = n
	}
	if v, ok := get("SIMPLIFY"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %sSIMPLIFY: %w", envPrefix, err)
		}
		cfg.Simplify = f
	}
	if v, ok := get("OUTLINE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sOUTLINE: %w", envPrefix, err)
		}
		cfg.Outline = b
	}
	if v, ok := get("FORMAT"); ok {
		cfg.Format = v
	}
	if v, ok := get("CSV_LAT"); ok {
		cfg.CSV.Lat = v
	}
	if v, ok := get("CSV_LON"); ok {
		cfg.CSV.Lon = v
	}
	if v, ok := get("CSV_WKT"); ok {
		cfg.CSV.WKT = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}
