package subtitle

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSRTRoundTrip(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n2\n00:00:03,000 --> 00:00:04,500\nWorld\n"
	doc, _, err := Parse([]byte(input), FormatSRT)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := Serialize(doc, FormatSRT)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if string(out) != input {
		t.Fatalf("round trip mismatch:\n%q\nwant\n%q", out, input)
	}
}

func TestConvertSRTToJSONPreservesOrderAndTimestamps(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n2\n00:00:03,000 --> 00:00:04,500\nWorld\n"
	doc, _, err := Parse([]byte(input), FormatSRT)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := Serialize(doc, FormatJSON)
	if err != nil {
		t.Fatalf("serialize json: %v", err)
	}
	var cues []struct {
		Start string `json:"start"`
		End   string `json:"end"`
		Text  string `json:"text"`
	}
	if err := json.Unmarshal(out, &cues); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Text != "Hello" || cues[1].Text != "World" {
		t.Fatalf("cue order not preserved: %+v", cues)
	}
	if cues[0].Start != "00:00:01.000" || cues[0].End != "00:00:02.000" {
		t.Fatalf("unexpected first cue timestamps: %+v", cues[0])
	}
	if cues[1].End != "00:00:04.500" {
		t.Fatalf("millisecond precision lost: %+v", cues[1])
	}
}

func TestVTTThroughJSONKeepsCues(t *testing.T) {
	input := "WEBVTT\n\n00:00:01.234 --> 00:00:02.000\nHello\n\n00:00:03.000 --> 00:00:04.567\nWorld\n"
	doc, _, err := Parse([]byte(input), FormatVTT)
	if err != nil {
		t.Fatalf("parse vtt: %v", err)
	}
	asJSON, err := Serialize(doc, FormatJSON)
	if err != nil {
		t.Fatalf("serialize json: %v", err)
	}
	reparsed, diags, err := Parse(asJSON, FormatJSON)
	if err != nil {
		t.Fatalf("reparse json: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	asVTT, err := Serialize(reparsed, FormatVTT)
	if err != nil {
		t.Fatalf("serialize vtt: %v", err)
	}
	if string(asVTT) != input {
		t.Fatalf("vtt/json round trip mismatch:\n%q\nwant\n%q", asVTT, input)
	}
	if reparsed[0].Start != 1234*time.Millisecond {
		t.Fatalf("millisecond precision lost: %v", reparsed[0].Start)
	}
}

func TestSerializeEmptyDocument(t *testing.T) {
	for format, want := range map[Format]string{
		FormatVTT:  "WEBVTT\n",
		FormatSRT:  "",
		FormatJSON: "[]\n",
	} {
		out, err := Serialize(Document{}, format)
		if err != nil {
			t.Fatalf("serialize empty %s: %v", format, err)
		}
		if string(out) != want {
			t.Fatalf("empty %s output %q, want %q", format, out, want)
		}
	}
}

func TestSerializeJSONStripsMarkup(t *testing.T) {
	doc := Document{{Start: time.Second, End: 2 * time.Second, Text: []string{"<c>Hello</c> <00:00:01.500>there"}}}
	out, err := Serialize(doc, FormatJSON)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.Contains(string(out), `"Hello there"`) {
		t.Fatalf("markup not stripped: %s", out)
	}
}
