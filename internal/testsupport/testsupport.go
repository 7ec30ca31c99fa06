// Package testsupport provides helpers for constructing test configurations
// with isolated directories and stubbed external binaries.
package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"subfetch/internal/config"
)

// Option customizes the configuration produced by NewConfig.
type Option func(*options)

type options struct {
	binaries []string
	language string
	formats  []string
}

// WithStubbedBinaries creates executable stub scripts for the named binaries
// inside the temp directory and points the config at them. With no names the
// download tool stub is created.
func WithStubbedBinaries(names ...string) Option {
	return func(o *options) {
		if len(names) == 0 {
			names = []string{"yt-dlp"}
		}
		o.binaries = names
	}
}

// WithLanguage overrides the default subtitle language.
func WithLanguage(lang string) Option {
	return func(o *options) {
		o.language = lang
	}
}

// WithFormats overrides the default output formats.
func WithFormats(formats ...string) Option {
	return func(o *options) {
		o.formats = formats
	}
}

// NewConfig returns a validated configuration rooted in a per-test temp
// directory.
func NewConfig(t *testing.T, opts ...Option) *config.Config {
	t.Helper()

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if o.language != "" {
		cfg.Download.Language = o.language
	}
	if len(o.formats) > 0 {
		cfg.Download.Formats = o.formats
	}

	for _, name := range o.binaries {
		path := stubBinary(t, base, name)
		if name == "yt-dlp" || name == cfg.Download.Tool {
			cfg.Download.Tool = path
		}
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

func stubBinary(t *testing.T, base, name string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub binaries require a POSIX shell")
	}
	dir := filepath.Join(base, "bin")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create stub directory: %v", err)
	}
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\nexit 0\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}
