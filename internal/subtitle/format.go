package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported subtitle file format.
type Format string

const (
	FormatVTT  Format = "vtt"
	FormatSRT  Format = "srt"
	FormatJSON Format = "json"
)

// Formats lists every supported format in canonical order.
func Formats() []Format {
	return []Format{FormatVTT, FormatSRT, FormatJSON}
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "vtt", "webvtt":
		return FormatVTT, nil
	case "srt", "subrip":
		return FormatSRT, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported subtitle format %q (expected vtt, srt, or json)", value)
	}
}

// FormatForPath infers the format from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return FormatVTT, true
	case ".srt":
		return FormatSRT, true
	case ".json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}
