package config

const (
	defaultLibraryDir = "~/subtitles"
	defaultLogDir     = "~/.local/share/subfetch/logs"
	defaultTool       = "yt-dlp"
	defaultLanguage   = "es"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults. The download
// deadline is disabled by default: subtitle fetches block until the external
// tool finishes or the operator interrupts the process.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
		},
		Download: Download{
			Tool:     defaultTool,
			Language: defaultLanguage,
			Formats:  []string{"vtt", "srt", "json"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
