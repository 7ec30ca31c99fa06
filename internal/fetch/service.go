// Package fetch orchestrates subtitle downloads: URL validation, dependency
// checks, invoking yt-dlp per format, and deriving JSON output from fetched
// VTT tracks.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"subfetch/internal/config"
	"subfetch/internal/deps"
	"subfetch/internal/language"
	"subfetch/internal/library"
	"subfetch/internal/logging"
	"subfetch/internal/services"
	"subfetch/internal/services/ytdlp"
	"subfetch/internal/subtitle"
	"subfetch/internal/youtube"
)

// lockFileName guards the library directory against concurrent fetch runs
// writing the same files.
const lockFileName = ".subfetch.lock"

// Request describes one fetch operation. Empty fields fall back to the
// configured defaults.
type Request struct {
	URL       string
	Language  string
	Formats   []subtitle.Format
	OutputDir string
}

// FormatResult reports the outcome for a single requested format.
type FormatResult struct {
	Format subtitle.Format
	Path   string
	Err    error
}

// Result summarizes a fetch session across all requested formats.
type Result struct {
	SessionID string
	Language  string
	Formats   []FormatResult
}

// Failed reports whether every requested format failed.
func (r Result) Failed() bool {
	for _, fr := range r.Formats {
		if fr.Err == nil {
			return false
		}
	}
	return len(r.Formats) > 0
}

// Service coordinates subtitle fetching.
type Service struct {
	cfg     *config.Config
	logger  *slog.Logger
	fetcher ytdlp.Fetcher
}

// NewService builds a fetch service. A nil fetcher constructs the real
// yt-dlp client from configuration.
func NewService(cfg *config.Config, logger *slog.Logger, fetcher ytdlp.Fetcher) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config required")
	}
	componentLogger := logging.NewComponentLogger(logger, "fetch")
	if fetcher == nil {
		client, err := ytdlp.New(cfg.Download.Tool, cfg.Download.TimeoutSeconds)
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, "fetch", "init", "", err)
		}
		fetcher = client
	}
	return &Service{cfg: cfg, logger: componentLogger, fetcher: fetcher}, nil
}

// Fetch downloads subtitles for one video in every requested format. The
// returned result carries per-format outcomes; the error is non-nil only
// when validation fails or no format produced a file.
func (s *Service) Fetch(ctx context.Context, req Request) (Result, error) {
	lang, err := s.resolveLanguage(req.Language)
	if err != nil {
		return Result{}, err
	}
	if !youtube.ValidateURL(req.URL) {
		return Result{}, services.Wrap(services.ErrInvalidURL, "fetch", "validate",
			fmt.Sprintf("%s is not a recognized YouTube video url", req.URL), nil)
	}
	formats, err := s.resolveFormats(req.Formats)
	if err != nil {
		return Result{}, err
	}
	if err := deps.EnsureTool(s.cfg.Download.Tool); err != nil {
		return Result{}, err
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = s.cfg.Paths.LibraryDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Result{}, services.Wrap(nil, "fetch", "prepare", "create output directory", err)
	}

	lock := flock.New(filepath.Join(outputDir, lockFileName))
	if err := lock.Lock(); err != nil {
		return Result{}, services.Wrap(nil, "fetch", "prepare", "lock library directory", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	result := Result{SessionID: uuid.NewString(), Language: lang}
	s.logger.Info("starting fetch",
		logging.String("session", result.SessionID),
		logging.String("url", req.URL),
		logging.String("video", youtube.VideoID(req.URL)),
		logging.String("language", lang))

	var vttPath string
	wantJSON := false
	for _, format := range formats {
		if format == subtitle.FormatJSON {
			wantJSON = true
			continue
		}
		path, err := s.fetchNative(ctx, req.URL, lang, format, outputDir)
		if err == nil && format == subtitle.FormatVTT {
			vttPath = path
		}
		result.Formats = append(result.Formats, FormatResult{Format: format, Path: path, Err: err})
	}

	if wantJSON {
		path, err := s.deriveJSON(ctx, req.URL, lang, vttPath, outputDir)
		result.Formats = append(result.Formats, FormatResult{Format: subtitle.FormatJSON, Path: path, Err: err})
	}

	for _, fr := range result.Formats {
		if fr.Err != nil {
			s.logger.Warn("format failed",
				logging.String("session", result.SessionID),
				logging.String("format", string(fr.Format)),
				logging.Error(fr.Err))
			continue
		}
		s.logger.Info("subtitle saved",
			logging.String("session", result.SessionID),
			logging.String("format", string(fr.Format)),
			logging.String("path", fr.Path))
	}

	if result.Failed() {
		errs := make([]error, 0, len(result.Formats))
		for _, fr := range result.Formats {
			errs = append(errs, fr.Err)
		}
		return result, errors.Join(errs...)
	}
	return result, nil
}

func (s *Service) resolveLanguage(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		value = s.cfg.Download.Language
	}
	lang := language.ToISO2(value)
	if lang == "" {
		return "", services.Wrap(services.ErrValidation, "fetch", "validate",
			fmt.Sprintf("unrecognized language %q", value), nil)
	}
	return lang, nil
}

func (s *Service) resolveFormats(requested []subtitle.Format) ([]subtitle.Format, error) {
	if len(requested) == 0 {
		requested = make([]subtitle.Format, 0, len(s.cfg.Download.Formats))
		for _, raw := range s.cfg.Download.Formats {
			format, err := subtitle.ParseFormat(raw)
			if err != nil {
				return nil, services.Wrap(services.ErrValidation, "fetch", "validate", "", err)
			}
			requested = append(requested, format)
		}
	}
	if len(requested) == 0 {
		return nil, services.Wrap(services.ErrValidation, "fetch", "validate", "no output formats requested", nil)
	}
	seen := make(map[subtitle.Format]bool, len(requested))
	formats := make([]subtitle.Format, 0, len(requested))
	for _, format := range requested {
		if seen[format] {
			continue
		}
		seen[format] = true
		formats = append(formats, format)
	}
	return formats, nil
}

func (s *Service) fetchNative(ctx context.Context, url, lang string, format subtitle.Format, outputDir string) (string, error) {
	res, err := s.fetcher.Fetch(ctx, ytdlp.Request{
		URL:               url,
		Language:          lang,
		Format:            format,
		OutputDir:         outputDir,
		RestrictFilenames: s.cfg.Download.RestrictFilenames,
	})
	if err != nil {
		if errors.Is(err, ytdlp.ErrNoSubtitles) {
			return "", services.Wrap(services.ErrNoSubtitles, "fetch", string(format), lang, nil)
		}
		return "", services.Wrap(services.ErrExternalTool, "fetch", string(format), "", err)
	}
	if len(res.Paths) == 0 {
		return "", services.Wrap(services.ErrExternalTool, "fetch", string(format), "downloader reported no output files", nil)
	}
	return res.Paths[0], nil
}

// deriveJSON builds the JSON output from a VTT track. When the session
// already fetched VTT the existing file is converted in place; otherwise a
// throwaway VTT is downloaded to a temporary directory first.
func (s *Service) deriveJSON(ctx context.Context, url, lang, vttPath, outputDir string) (string, error) {
	cleanup := func() {}
	if vttPath == "" {
		tempDir, err := os.MkdirTemp("", "subfetch-json-")
		if err != nil {
			return "", services.Wrap(nil, "fetch", "json", "create temp directory", err)
		}
		cleanup = func() { _ = os.RemoveAll(tempDir) }
		vttPath, err = s.fetchNative(ctx, url, lang, subtitle.FormatVTT, tempDir)
		if err != nil {
			cleanup()
			return "", err
		}
	}
	defer cleanup()

	base := strings.TrimSuffix(filepath.Base(vttPath), filepath.Ext(vttPath))
	outputPath := filepath.Join(outputDir, base+subtitle.FormatJSON.Extension())
	store := library.NewStore(outputDir, s.logger)
	converted, err := store.Convert(vttPath, subtitle.FormatJSON, outputPath)
	if err != nil {
		return "", err
	}
	return converted.OutputPath, nil
}
