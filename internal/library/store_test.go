package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"subfetch/internal/services"
	"subfetch/internal/subtitle"
)

const sampleVTT = `WEBVTT

00:00:01.000 --> 00:00:03.000
Hello there

00:00:04.000 --> 00:00:06.000
General greeting
`

const sampleSRT = `1
00:00:01,000 --> 00:00:03,000
Bonjour tout le monde
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestListMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	entries, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Zebra Talk.es.vtt", sampleVTT)
	writeFile(t, dir, "Another Video.fr.srt", sampleSRT)
	writeFile(t, dir, "notes.txt", "not a subtitle")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir, nil)
	entries, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Another Video.fr.srt" || entries[1].Name != "Zebra Talk.es.vtt" {
		t.Fatalf("unexpected order: %q, %q", entries[0].Name, entries[1].Name)
	}
	if entries[0].Language != "fr" || entries[0].Format != subtitle.FormatSRT {
		t.Fatalf("unexpected metadata: %+v", entries[0])
	}
	if entries[1].Language != "es" {
		t.Fatalf("language not inferred: %+v", entries[1])
	}
	if entries[1].Size == 0 {
		t.Fatal("size not recorded")
	}
}

func TestInferLanguage(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Video Title.es.vtt", "es"},
		{"Video Title.eng.srt", "en"},
		{"Video Title.pt-BR.vtt", "pt-BR"},
		{"Plain Name.vtt", ""},
		{"Dotted.Name.vtt", ""},
	}
	for _, tc := range cases {
		if got := inferLanguage(tc.name); got != tc.want {
			t.Errorf("inferLanguage(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestConvertDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "Talk.es.vtt", sampleVTT)

	store := NewStore(dir, nil)
	result, err := store.Convert(source, subtitle.FormatJSON, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := filepath.Join(dir, "Talk.es.json")
	if result.OutputPath != want {
		t.Fatalf("output path = %q, want %q", result.OutputPath, want)
	}
	if len(result.Cues) != 2 || len(result.Skipped) != 0 {
		t.Fatalf("unexpected result: %d cues, %d skipped", len(result.Cues), len(result.Skipped))
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc, _, err := subtitle.Parse(data, subtitle.FormatJSON)
	if err != nil {
		t.Fatalf("reparse output: %v", err)
	}
	if len(doc) != 2 || doc[0].Text[0] != "Hello there" {
		t.Fatalf("round trip lost content: %+v", doc)
	}
}

func TestConvertExplicitOutputAndSkipped(t *testing.T) {
	dir := t.TempDir()
	malformed := sampleSRT + "\nbroken block without timestamps\n"
	source := writeFile(t, dir, "clip.srt", malformed)
	out := filepath.Join(dir, "sub", "clip.vtt")

	store := NewStore(dir, nil)
	result, err := store.Convert(source, subtitle.FormatVTT, out)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if result.OutputPath != out {
		t.Fatalf("output path = %q", result.OutputPath)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skipped block, got %d", len(result.Skipped))
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestConvertMissingFile(t *testing.T) {
	store := NewStore(t.TempDir(), nil)
	_, err := store.Convert(filepath.Join(store.Dir(), "nope.vtt"), subtitle.FormatSRT, "")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConvertUnknownSourceFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "file.txt", "hello")
	store := NewStore(dir, nil)
	_, err := store.Convert(path, subtitle.FormatJSON, "")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
