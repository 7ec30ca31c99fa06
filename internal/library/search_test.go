package library

import (
	"errors"
	"testing"
	"time"

	"subfetch/internal/services"
)

func TestSearchAcrossLibrary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.en.vtt", sampleVTT)
	writeFile(t, dir, "b.fr.srt", sampleSRT)
	writeFile(t, dir, "c.en.json", "[]")

	store := NewStore(dir, nil)
	var matches []FileMatch
	for match, err := range store.Search("greeting", "") {
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		matches = append(matches, match)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].File != "a.en.vtt" || matches[0].Start != 4*time.Second {
		t.Fatalf("unexpected match: %+v", matches[0])
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.en.vtt", sampleVTT)

	store := NewStore(dir, nil)
	count := 0
	for _, err := range store.Search("HELLO", "") {
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		count++
	}
	if count != 1 {
		t.Fatalf("expected 1 match, got %d", count)
	}
}

func TestSearchSingleFileRelativeName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.en.vtt", sampleVTT)
	writeFile(t, dir, "b.fr.srt", sampleSRT)

	store := NewStore(dir, nil)
	var files []string
	for match, err := range store.Search("o", "b.fr.srt") {
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		files = append(files, match.File)
	}
	if len(files) != 1 || files[0] != "b.fr.srt" {
		t.Fatalf("unexpected matches: %v", files)
	}
}

func TestSearchMissingFile(t *testing.T) {
	store := NewStore(t.TempDir(), nil)
	var sawErr error
	for _, err := range store.Search("x", "absent.vtt") {
		sawErr = err
	}
	if !errors.Is(sawErr, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", sawErr)
	}
}

func TestSearchEarlyStop(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.en.vtt", sampleVTT)
	writeFile(t, dir, "b.en.vtt", sampleVTT)

	store := NewStore(dir, nil)
	count := 0
	for _, err := range store.Search("e", "") {
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		count++
		if count == 1 {
			break
		}
	}
	if count != 1 {
		t.Fatalf("iteration continued past break: %d", count)
	}
}
