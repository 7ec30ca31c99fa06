// Package config loads, normalizes, and validates subfetch configuration.
//
// Configuration lives in a TOML file, by default at
// ~/.config/subfetch/config.toml with a subfetch.toml project-file fallback.
// Every command-line flag overrides its config counterpart.
package config
