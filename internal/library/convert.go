package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/creachadair/atomicfile"

	"subfetch/internal/logging"
	"subfetch/internal/services"
	"subfetch/internal/subtitle"
	"subfetch/internal/textutil"
)

// ConvertResult reports the outcome of a format conversion.
type ConvertResult struct {
	OutputPath string
	Cues       subtitle.Document
	Skipped    []subtitle.Diagnostic
}

// Convert reads the subtitle file at path, parses it, and writes the cues in
// the target format to outputPath. When outputPath is empty the output lands
// next to the source with the target extension. Malformed cue blocks are
// skipped and reported in the result rather than failing the conversion.
func (s *Store) Convert(path string, target subtitle.Format, outputPath string) (ConvertResult, error) {
	source, ok := subtitle.FormatForPath(path)
	if !ok {
		return ConvertResult{}, services.Wrap(services.ErrValidation, "library", "convert",
			fmt.Sprintf("cannot determine format of %s", filepath.Base(path)), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ConvertResult{}, services.Wrap(services.ErrNotFound, "library", "convert", path, nil)
		}
		return ConvertResult{}, services.Wrap(nil, "library", "convert", "read source", err)
	}

	doc, diags, err := subtitle.Parse(data, source)
	if err != nil {
		return ConvertResult{}, services.Wrap(services.ErrValidation, "library", "convert", "parse source", err)
	}

	encoded, err := subtitle.Serialize(doc, target)
	if err != nil {
		return ConvertResult{}, services.Wrap(services.ErrValidation, "library", "convert", "", err)
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(path, target)
	}
	if err := writeAtomic(outputPath, encoded); err != nil {
		return ConvertResult{}, services.Wrap(nil, "library", "convert", "write output", err)
	}

	s.logger.Info("converted subtitle file",
		logging.String("source", path),
		logging.String("output", outputPath),
		logging.Int("cues", len(doc)))
	return ConvertResult{OutputPath: outputPath, Cues: doc, Skipped: diags}, nil
}

// defaultOutputPath swaps the source extension for the target's, sanitizing
// the base name in case it carries characters unsafe for the filesystem.
func defaultOutputPath(path string, target subtitle.Format) string {
	dir := filepath.Dir(path)
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = textutil.SanitizeFileName(base)
	return filepath.Join(dir, base+target.Extension())
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := atomicfile.New(path, 0644)
	if err != nil {
		return err
	}
	defer f.Cancel()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Close()
}
