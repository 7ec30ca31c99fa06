package ytdlp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"subfetch/internal/subtitle"
)

type fakeExecutor struct {
	binary string
	args   []string
	lines  []string
	err    error
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string, onLine func(string)) error {
	f.binary = binary
	f.args = args
	for _, line := range f.lines {
		onLine(line)
	}
	return f.err
}

func newTestClient(t *testing.T, exec Executor) *Client {
	t.Helper()
	client, err := New("yt-dlp", 0, WithExecutor(exec))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestFetchBuildsVTTArgs(t *testing.T) {
	dir := t.TempDir()
	exec := &fakeExecutor{lines: []string{
		"[info] Writing video subtitles to: " + filepath.Join(dir, "Video.es.vtt"),
	}}
	client := newTestClient(t, exec)

	result, err := client.Fetch(context.Background(), Request{
		URL:       "https://youtu.be/abc123",
		Language:  "es",
		Format:    subtitle.FormatVTT,
		OutputDir: dir,
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(result.Paths) != 1 || filepath.Base(result.Paths[0]) != "Video.es.vtt" {
		t.Fatalf("unexpected result paths: %v", result.Paths)
	}
	if exec.binary != "yt-dlp" {
		t.Fatalf("unexpected binary: %s", exec.binary)
	}
	for _, want := range []string{"--skip-download", "--write-subs", "--no-playlist"} {
		if !slices.Contains(exec.args, want) {
			t.Fatalf("expected %s in args: %v", want, exec.args)
		}
	}
	if !slices.Contains(exec.args, "--sub-format") || !slices.Contains(exec.args, "vtt") {
		t.Fatalf("expected vtt sub-format in args: %v", exec.args)
	}
	if exec.args[len(exec.args)-1] != "https://youtu.be/abc123" {
		t.Fatalf("expected url as final argument: %v", exec.args)
	}
}

func TestFetchSRTRequestsConversion(t *testing.T) {
	dir := t.TempDir()
	// yt-dlp reports the pre-conversion vtt path; the converted srt is what
	// lands on disk.
	converted := filepath.Join(dir, "Video.es.srt")
	if err := os.WriteFile(converted, []byte("1\n00:00:01,000 --> 00:00:02,000\nHola\n"), 0o644); err != nil {
		t.Fatalf("write converted file: %v", err)
	}
	exec := &fakeExecutor{lines: []string{
		"[info] Writing video subtitles to: " + filepath.Join(dir, "Video.es.vtt"),
	}}
	client := newTestClient(t, exec)

	result, err := client.Fetch(context.Background(), Request{
		URL:       "https://youtu.be/abc123",
		Language:  "es",
		Format:    subtitle.FormatSRT,
		OutputDir: dir,
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !slices.Contains(exec.args, "--convert-subs") {
		t.Fatalf("expected --convert-subs in args: %v", exec.args)
	}
	if len(result.Paths) != 1 || result.Paths[0] != converted {
		t.Fatalf("expected converted srt path, got %v", result.Paths)
	}
}

func TestFetchReportsMissingSubtitles(t *testing.T) {
	exec := &fakeExecutor{lines: []string{
		"[info] There are no subtitles for the requested languages",
	}}
	client := newTestClient(t, exec)

	_, err := client.Fetch(context.Background(), Request{
		URL:       "https://youtu.be/abc123",
		Language:  "fi",
		Format:    subtitle.FormatVTT,
		OutputDir: t.TempDir(),
	})
	if !errors.Is(err, ErrNoSubtitles) {
		t.Fatalf("expected ErrNoSubtitles, got %v", err)
	}
}

func TestFetchNoOutputMeansNoSubtitles(t *testing.T) {
	client := newTestClient(t, &fakeExecutor{})
	_, err := client.Fetch(context.Background(), Request{
		URL:       "https://youtu.be/abc123",
		Language:  "es",
		Format:    subtitle.FormatVTT,
		OutputDir: t.TempDir(),
	})
	if !errors.Is(err, ErrNoSubtitles) {
		t.Fatalf("expected ErrNoSubtitles, got %v", err)
	}
}

func TestFetchPropagatesExecutorError(t *testing.T) {
	cause := errors.New("exit status 1")
	client := newTestClient(t, &fakeExecutor{err: cause})
	_, err := client.Fetch(context.Background(), Request{
		URL:       "https://youtu.be/abc123",
		Language:  "es",
		Format:    subtitle.FormatVTT,
		OutputDir: t.TempDir(),
	})
	if !errors.Is(err, cause) {
		t.Fatalf("expected executor error, got %v", err)
	}
}

func TestFetchRejectsJSONFormat(t *testing.T) {
	client := newTestClient(t, &fakeExecutor{})
	_, err := client.Fetch(context.Background(), Request{
		URL:       "https://youtu.be/abc123",
		Language:  "es",
		Format:    subtitle.FormatJSON,
		OutputDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for json fetch request")
	}
}

// concurrentExecutor delivers lines from two goroutines the way the real
// executor scans stdout and stderr in parallel.
type concurrentExecutor struct {
	stdout []string
	stderr []string
}

func (c *concurrentExecutor) Run(_ context.Context, _ string, _ []string, onLine func(string)) error {
	var wg sync.WaitGroup
	for _, lines := range [][]string{c.stdout, c.stderr} {
		wg.Add(1)
		go func(lines []string) {
			defer wg.Done()
			for _, line := range lines {
				onLine(line)
			}
		}(lines)
	}
	wg.Wait()
	return nil
}

func TestFetchCollectsConcurrentOutput(t *testing.T) {
	dir := t.TempDir()
	destination := "[info] Writing video subtitles to: " + filepath.Join(dir, "Video.es.vtt")
	exec := &concurrentExecutor{
		stdout: []string{destination, destination, destination, destination},
		stderr: []string{destination, destination, destination, destination},
	}
	client := newTestClient(t, exec)

	result, err := client.Fetch(context.Background(), Request{
		URL:       "https://youtu.be/abc123",
		Language:  "es",
		Format:    subtitle.FormatVTT,
		OutputDir: dir,
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(result.Paths) != 8 {
		t.Fatalf("expected 8 captured paths, got %d", len(result.Paths))
	}
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := New("  ", 0); err == nil {
		t.Fatal("expected error for empty binary")
	}
}
