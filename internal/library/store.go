// Package library manages the directory of saved subtitle files: listing,
// converting between formats, and searching across files.
package library

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"subfetch/internal/language"
	"subfetch/internal/logging"
	"subfetch/internal/subtitle"
)

// Store provides access to the subtitle library directory. The library is a
// flat directory of subtitle files; there is no index to maintain, so every
// operation works directly against the filesystem.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a store rooted at dir. A nil logger is replaced with a
// no-op logger.
func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "library"),
	}
}

// Dir returns the library directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Entry describes one subtitle file in the library.
type Entry struct {
	Name     string
	Path     string
	Language string
	Format   subtitle.Format
	Size     int64
	ModTime  time.Time
}

// List returns every subtitle file in the library directory, sorted by name.
// A missing or empty directory yields an empty slice, not an error.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		format, ok := subtitle.FormatForPath(de.Name())
		if !ok {
			continue
		}
		info, err := de.Info()
		if err != nil {
			s.logger.Warn("skipping unreadable entry",
				logging.String("name", de.Name()), logging.Error(err))
			continue
		}
		entries = append(entries, Entry{
			Name:     de.Name(),
			Path:     filepath.Join(s.dir, de.Name()),
			Language: inferLanguage(de.Name()),
			Format:   format,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// inferLanguage extracts the language code from yt-dlp style file names,
// which look like "Video Title.es.vtt". Returns "" when no recognized code
// is present.
func inferLanguage(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	idx := strings.LastIndexByte(base, '.')
	if idx < 0 {
		return ""
	}
	code := base[idx+1:]
	if language.IsKnown(code) {
		return language.ToISO2(code)
	}
	return ""
}
