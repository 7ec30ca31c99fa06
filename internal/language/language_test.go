package language

import "testing"

func TestToISO2(t *testing.T) {
	cases := map[string]string{
		"es":      "es",
		"ES":      "es",
		"spa":     "es",
		"spanish": "es",
		"fre":     "fr",
		"pt-br":   "pt-BR",
		"xx":      "xx",
		"xyz":     "",
		"":        "",
	}
	for input, want := range cases {
		if got := ToISO2(input); got != want {
			t.Fatalf("ToISO2(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"es":    "Spanish",
		"eng":   "English",
		"pt-BR": "Portuguese",
		"xx":    "XX",
		"":      "Unknown",
	}
	for input, want := range cases {
		if got := DisplayName(input); got != want {
			t.Fatalf("DisplayName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown("es") || !IsKnown("spanish") || !IsKnown("pt-BR") {
		t.Fatal("expected recognized codes to be known")
	}
	if IsKnown("xx") || IsKnown("") {
		t.Fatal("expected unrecognized codes to be unknown")
	}
}
