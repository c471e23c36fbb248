// Command cintgen renders the cint color space records from spaces.yaml.
//
// It is run through go generate in the repository root:
//
//	//go:generate go run ./cmd/cintgen -table spaces.yaml -out spaces_gen.go -test-out spaces_gen_test.go
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/cint/internal/gen"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// config holds the parsed command line.
type config struct {
	table    string
	out      string
	testOut  string
	pkg      string
	logLevel string
	logFile  string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("cintgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.table, "table", "spaces.yaml", "space table to read")
	fs.StringVar(&cfg.out, "out", "spaces_gen.go", "generated source file")
	fs.StringVar(&cfg.testOut, "test-out", "", "generated test file (skipped when empty)")
	fs.StringVar(&cfg.pkg, "package", "cint", "package clause of the generated files")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFile, "log-file", "", "also write JSON logs to this rotated file")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "cintgen:", err)
		return 2
	}

	logger, closeLog := newLogger(cfg, stderr)
	defer closeLog()
	gen.SetLogger(logger)
	defer gen.SetLogger(nil)

	if err := generate(cfg); err != nil {
		logger.Error("generation failed", "err", err)
		return 1
	}
	return 0
}

func generate(cfg config) error {
	t, err := gen.LoadFile(cfg.table)
	if err != nil {
		return err
	}
	opts := gen.Options{Package: cfg.pkg, Source: filepath.Base(cfg.table)}

	if err := writeFile(cfg.out, func(w io.Writer) error { return gen.Render(w, t, opts) }); err != nil {
		return err
	}
	if cfg.testOut == "" {
		return nil
	}
	return writeFile(cfg.testOut, func(w io.Writer) error { return gen.RenderTests(w, t, opts) })
}

// writeFile renders into memory first so a failed render leaves the
// previous file in place.
func writeFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // generated source is world-readable
		return fmt.Errorf("write %s: %w", path, err)
	}
	gen.Logger().Info("wrote file", "path", path, "bytes", buf.Len())
	return nil
}

// newLogger builds a text logger on stderr and, when cfg.logFile is set, a
// JSON logger on a rotated file. The returned func closes the file.
func newLogger(cfg config, stderr io.Writer) (*slog.Logger, func()) {
	lvl := parseLevel(cfg.logLevel)
	console := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl})
	if strings.TrimSpace(cfg.logFile) == "" {
		return slog.New(console), func() {}
	}

	w := &lj.Logger{Filename: cfg.logFile, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
	file := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(&multi{hs: []slog.Handler{console, file}}), func() { _ = w.Close() }
}

// parseLevel converts a flag value to a slog level. Unknown values fall
// back to warn.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// multi fans out log records to several handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
