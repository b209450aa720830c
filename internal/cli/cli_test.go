package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"geomap/internal/geom"
	"geomap/internal/grid"
)

const fixtureWKT = "LINESTRING(0 0, 4 0)\nPOINT(0 1)\n"

// run executes the command tree with isolated config and captured streams.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("GEOMAP_CONFIG", "")
	for _, k := range []string{"WIDTH", "HEIGHT", "SIMPLIFY", "OUTLINE", "FORMAT", "LOG_LEVEL"} {
		t.Setenv("GEOMAP_"+k, "")
	}

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRenderCommand(t *testing.T) {
	for _, args := range [][]string{
		{"render", "-W", "4", "-H", "4", "--format", "wkt", "-"},
		{"-W", "4", "-H", "4", "-f", "wkt", "-"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, _, err := run(t, fixtureWKT, args...)
			if err != nil {
				t.Fatalf("execute error = %v", err)
			}
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			if len(lines) != 4 {
				t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
			}
			if lines[0] != "\u2836\u2836\u2836\u2836" {
				t.Errorf("first line = %q, want four U+2836", lines[0])
			}
			for i, l := range lines {
				if n := utf8.RuneCountInString(l); n != 4 {
					t.Errorf("line %d has %d runes, want 4", i, n)
				}
			}
		})
	}
}

func TestRenderOutline(t *testing.T) {
	square := "POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))"
	area, _, err := run(t, square, "-W", "10", "-H", "5", "-f", "wkt", "-")
	if err != nil {
		t.Fatal(err)
	}
	outline, _, err := run(t, square, "-W", "10", "-H", "5", "-f", "wkt", "--outline", "-")
	if err != nil {
		t.Fatal(err)
	}
	if area == outline {
		t.Errorf("--outline did not change the output")
	}
	if !strings.Contains(area, "\u28ff\u28ff") {
		t.Errorf("area render has no filled cells:\n%s", area)
	}
}

func TestRenderConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/geomap.toml"
	if err := writeConfig(path, "width = 6\nheight = 2\nformat = \"wkt\"\n"); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, fixtureWKT, "--config", path, "-")
	if err != nil {
		t.Fatalf("execute error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 || utf8.RuneCountInString(lines[0]) != 6 {
		t.Errorf("output is not 6x2:\n%s", out)
	}

	// flags win over the file
	out, _, err = run(t, fixtureWKT, "--config", path, "-W", "3", "-")
	if err != nil {
		t.Fatal(err)
	}
	if first := strings.SplitN(out, "\n", 2)[0]; utf8.RuneCountInString(first) != 3 {
		t.Errorf("first line = %q, want 3 runes", first)
	}
}

func TestRenderErrors(t *testing.T) {
	_, _, err := run(t, "   ", "-W", "4", "-H", "4", "-f", "wkt", "-")
	if !errors.Is(err, geom.ErrNoGeometry) {
		t.Errorf("blank input error = %v, want ErrNoGeometry", err)
	}
	_, _, err = run(t, "", "render", "does-not-exist.geojson")
	if err == nil {
		t.Errorf("missing file succeeded, want error")
	}
	_, _, err = run(t, "", "--config", "/nonexistent/geomap.toml", "version")
	if err == nil {
		t.Errorf("missing --config succeeded, want error")
	}
	_, _, err = run(t, "", "render")
	if err == nil {
		t.Errorf("render without a file succeeded, want error")
	}
}

func TestRenderInvalidSize(t *testing.T) {
	for _, args := range [][]string{
		{"-W", "-3", "-H", "4", "-f", "wkt", "-"},
		{"-W", "4", "-H", "0", "-f", "wkt", "-"},
		{"render", "--width", "0", "-f", "wkt", "-"},
		{"view", "-H", "-1"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, _, err := run(t, fixtureWKT, args...)
			if !errors.Is(err, grid.ErrInvalidSize) {
				t.Errorf("error = %v, want ErrInvalidSize", err)
			}
			if out != "" {
				t.Errorf("rendered despite the invalid size:\n%s", out)
			}
		})
	}

	path := t.TempDir() + "/geomap.toml"
	if err := writeConfig(path, "height = -2\nformat = \"wkt\"\n"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, fixtureWKT, "--config", path, "-"); !errors.Is(err, grid.ErrInvalidSize) {
		t.Errorf("negative height in config error = %v, want ErrInvalidSize", err)
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, fixtureWKT, "-v", "-W", "4", "-H", "4", "-f", "wkt", "-")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"parsed geography", "rendered", "took"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}

	_, stderr, err = run(t, fixtureWKT, "-W", "4", "-H", "4", "-f", "wkt", "-")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("stderr without -v = %q, want empty", stderr)
	}
}

func TestRootHelpAndVersion(t *testing.T) {
	out, _, err := run(t, "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("root without args did not print help:\n%s", out)
	}

	out, _, err = run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	want := "geomap " + version + " (" + commit + ")\n"
	if out != want {
		t.Errorf("version = %q, want %q", out, want)
	}

	out, _, err = run(t, "", "--version")
	if err != nil {
		t.Fatal(err)
	}
	if out != want {
		t.Errorf("--version = %q, want %q", out, want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"":      log.InfoLevel,
		"debug": log.DebugLevel,
		"WARN":  log.WarnLevel,
		"error": log.ErrorLevel,
		"bogus": log.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Errorf("empty context did not fall back to log.Default()")
	}
	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), l)
	if loggerFromContext(ctx) != l {
		t.Fatalf("loggerFromContext did not return the attached logger")
	}
	newProgress(l).done("stage", "n", 1)
	if !strings.Contains(buf.String(), "stage") || !strings.Contains(buf.String(), "took=") {
		t.Errorf("progress output = %q", buf.String())
	}
}

func writeConfig(path, body string) error {
	return os.WriteFile(path, []byte(body), 0o644)
}
