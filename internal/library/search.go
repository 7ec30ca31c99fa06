package library

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"time"

	"subfetch/internal/services"
	"subfetch/internal/subtitle"
)

// FileMatch is a search hit tagged with the file it came from.
type FileMatch struct {
	File  string
	Start time.Duration
	Text  string
}

// Search scans library files for cue lines containing term. When file is
// non-empty only that file is searched; otherwise every .vtt and .srt file
// in the library is. The sequence yields a non-nil error for files that
// cannot be read or a missing explicit file, pairing it with a zero match.
func (s *Store) Search(term, file string) iter.Seq2[FileMatch, error] {
	return func(yield func(FileMatch, error) bool) {
		if file != "" {
			path := file
			if !filepath.IsAbs(path) {
				path = filepath.Join(s.dir, path)
			}
			s.searchFile(path, term, yield)
			return
		}

		entries, err := s.List()
		if err != nil {
			yield(FileMatch{}, err)
			return
		}
		for _, entry := range entries {
			if entry.Format == subtitle.FormatJSON {
				continue
			}
			if !s.searchFile(entry.Path, term, yield) {
				return
			}
		}
	}
}

// searchFile parses one file and yields its matches. Returns false when the
// consumer stopped iterating.
func (s *Store) searchFile(path, term string, yield func(FileMatch, error) bool) bool {
	format, ok := subtitle.FormatForPath(path)
	if !ok {
		return yield(FileMatch{}, services.Wrap(services.ErrValidation, "library", "search",
			"unsupported file type "+filepath.Base(path), nil))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return yield(FileMatch{}, services.Wrap(services.ErrNotFound, "library", "search", path, nil))
		}
		return yield(FileMatch{}, services.Wrap(nil, "library", "search", "read "+path, err))
	}

	doc, _, err := subtitle.Parse(data, format)
	if err != nil {
		return yield(FileMatch{}, services.Wrap(services.ErrValidation, "library", "search", path, err))
	}

	name := filepath.Base(path)
	for match := range subtitle.Search(doc, term) {
		if !yield(FileMatch{File: name, Start: match.Start, Text: match.Text}, nil) {
			return false
		}
	}
	return true
}
