package ytdlp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"subfetch/internal/subtitle"
)

// ErrNoSubtitles reports that the video has no subtitle track for the
// requested language.
var ErrNoSubtitles = errors.New("no subtitles for requested language")

// Request describes one subtitle download invocation.
type Request struct {
	URL               string
	Language          string
	Format            subtitle.Format
	OutputDir         string
	RestrictFilenames bool
}

// Result reports the subtitle files yt-dlp wrote.
type Result struct {
	Paths []string
}

// Fetcher is the narrow downloader interface the fetch service depends on,
// so conversion and search logic can be tested without a real subprocess.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (Result, error)
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onLine func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps yt-dlp CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
	exec    Executor
}

// New constructs a yt-dlp client. A timeout of zero disables the deadline;
// the download then runs until yt-dlp exits or the operator interrupts it.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("yt-dlp binary required")
	}
	client := &Client{
		binary:  binary,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Fetch runs yt-dlp for a single (url, language, format) combination and
// returns the subtitle files it wrote.
func (c *Client) Fetch(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.URL) == "" {
		return Result{}, errors.New("video url required")
	}
	if strings.TrimSpace(req.Language) == "" {
		return Result{}, errors.New("subtitle language required")
	}
	if req.Format != subtitle.FormatVTT && req.Format != subtitle.FormatSRT {
		return Result{}, fmt.Errorf("format %q cannot be fetched directly", req.Format)
	}
	if req.OutputDir == "" {
		return Result{}, errors.New("output directory required")
	}
	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}

	fetchCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// The executor delivers stdout and stderr lines from separate goroutines.
	var mu sync.Mutex
	var paths []string
	noSubtitles := false
	runErr := c.exec.Run(fetchCtx, c.binary, buildArgs(req), func(line string) {
		mu.Lock()
		defer mu.Unlock()
		if path, ok := parseSubtitleDestination(line); ok {
			paths = append(paths, path)
			return
		}
		if mentionsMissingSubtitles(line) {
			noSubtitles = true
		}
	})
	if noSubtitles {
		return Result{}, fmt.Errorf("%w: %s", ErrNoSubtitles, req.Language)
	}
	if runErr != nil {
		return Result{}, fmt.Errorf("yt-dlp fetch: %w", runErr)
	}
	if len(paths) == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNoSubtitles, req.Language)
	}

	resolved := make([]string, 0, len(paths))
	for _, path := range paths {
		resolved = append(resolved, resolveOutputPath(path, req.Format))
	}
	return Result{Paths: resolved}, nil
}

func buildArgs(req Request) []string {
	args := []string{
		"--skip-download",
		"--write-subs",
		"--no-playlist",
		"--sub-langs", req.Language,
	}
	switch req.Format {
	case subtitle.FormatSRT:
		// YouTube rarely serves SRT natively; let yt-dlp convert.
		args = append(args, "--convert-subs", "srt")
	default:
		args = append(args, "--sub-format", string(req.Format))
	}
	if req.RestrictFilenames {
		args = append(args, "--restrict-filenames")
	}
	args = append(args,
		"-o", filepath.Join(req.OutputDir, "%(title)s.%(ext)s"),
		req.URL,
	)
	return args
}

// parseSubtitleDestination extracts the output path from yt-dlp's
// "[info] Writing video subtitles to: <path>" progress line.
func parseSubtitleDestination(line string) (string, bool) {
	const marker = "Writing video subtitles to:"
	idx := strings.Index(line, marker)
	if idx == -1 {
		return "", false
	}
	path := strings.TrimSpace(line[idx+len(marker):])
	if path == "" {
		return "", false
	}
	return path, true
}

func mentionsMissingSubtitles(line string) bool {
	lowered := strings.ToLower(line)
	if !strings.Contains(lowered, "subtitle") {
		return false
	}
	return strings.Contains(lowered, "no subtitles") ||
		strings.Contains(lowered, "there are no subtitles") ||
		strings.Contains(lowered, "unable to download video subtitles")
}

// resolveOutputPath accounts for yt-dlp post-conversion: the "Writing" line
// reports the pre-conversion file, but --convert-subs replaces it with the
// target extension on disk.
func resolveOutputPath(path string, format subtitle.Format) string {
	if strings.EqualFold(filepath.Ext(path), format.Extension()) {
		return path
	}
	converted := strings.TrimSuffix(path, filepath.Ext(path)) + format.Extension()
	if _, err := os.Stat(converted); err == nil {
		return converted
	}
	return path
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onLine func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var scanErr error
	var once sync.Once

	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if onLine != nil {
				onLine(scanner.Text())
			}
		}
		if err := scanner.Err(); err != nil {
			once.Do(func() {
				scanErr = err
			})
		}
	}

	wg.Add(2)
	go scan(stdout)
	go scan(stderr)

	wg.Wait()
	if scanErr != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
