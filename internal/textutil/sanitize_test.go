package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"Plain Title":          "Plain Title",
		"a/b\\c:d*e":           "a-b-c-d-e",
		"what?\"<>|":           "what",
		"  padded  ":           "padded",
		"":                     "",
		"Video: Part 1/2?":     "Video- Part 1-2",
	}
	for input, want := range cases {
		if got := SanitizeFileName(input); got != want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", input, got, want)
		}
	}
}
