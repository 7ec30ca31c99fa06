package config

import (
	"errors"
	"fmt"

	"subfetch/internal/subtitle"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDownload(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	return nil
}

func (c *Config) validateDownload() error {
	if c.Download.Tool == "" {
		return errors.New("download.tool must be set")
	}
	if c.Download.Language == "" {
		return errors.New("download.language must be set")
	}
	if len(c.Download.Formats) == 0 {
		return errors.New("download.formats must include at least one of vtt, srt, json")
	}
	for _, format := range c.Download.Formats {
		if _, err := subtitle.ParseFormat(format); err != nil {
			return fmt.Errorf("download.formats: %w", err)
		}
	}
	if c.Download.TimeoutSeconds < 0 {
		return errors.New("download.timeout_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
