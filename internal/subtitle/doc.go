// Package subtitle converts between plain-text subtitle formats.
//
// The package parses WebVTT and SubRip files into an ordered sequence of
// timed cues, serializes that sequence back into VTT, SRT, or JSON, and
// provides case-insensitive substring search over cue text. Parsing is
// best-effort: blocks without a usable timestamp line are skipped and
// reported as diagnostics rather than failing the whole file.
package subtitle
