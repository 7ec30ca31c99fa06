// Package language normalizes subtitle language codes. yt-dlp and the saved
// file names use ISO 639-1 two-letter codes; user input may arrive as
// three-letter codes or full language names.
package language
