package subtitle

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Diagnostic records a cue block that was skipped during parsing.
type Diagnostic struct {
	Block  int
	Reason string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("block %d: %s", d.Block, d.Reason)
}

// Parse converts raw subtitle file contents into a Document. Malformed cue
// blocks are skipped and reported via the returned diagnostics; only an
// unsupported format or unreadable JSON produces an error.
func Parse(data []byte, format Format) (Document, []Diagnostic, error) {
	switch format {
	case FormatSRT:
		doc, diags := parseCueBlocks(string(data), false)
		return doc, diags, nil
	case FormatVTT:
		doc, diags := parseCueBlocks(string(data), true)
		return doc, diags, nil
	case FormatJSON:
		return parseJSON(data)
	default:
		return nil, nil, fmt.Errorf("unsupported subtitle format %q", format)
	}
}

// parseCueBlocks handles both SRT and VTT input. The formats share the same
// block shape: an optional identifier line, a timestamp line containing the
// --> separator, and the remaining lines as display text.
func parseCueBlocks(content string, vtt bool) (Document, []Diagnostic) {
	doc := Document{}
	var diags []Diagnostic
	for index, block := range splitBlocks(content) {
		if vtt && isVTTMetadataBlock(block) {
			continue
		}
		cue, reason := parseCue(block, vtt)
		if reason != "" {
			diags = append(diags, Diagnostic{Block: index + 1, Reason: reason})
			continue
		}
		doc = append(doc, cue)
	}
	return doc, diags
}

func parseCue(block []string, vtt bool) (Cue, string) {
	tsLine := -1
	for i, line := range block {
		if strings.Contains(line, "-->") {
			tsLine = i
			break
		}
	}
	if tsLine == -1 {
		return Cue{}, "missing --> timestamp line"
	}
	startText, endText, _ := strings.Cut(block[tsLine], "-->")
	if vtt {
		// Drop cue settings that follow the end timestamp.
		endText = strings.TrimSpace(endText)
		if fields := strings.Fields(endText); len(fields) > 0 {
			endText = fields[0]
		}
	}
	start, err := ParseTimestamp(startText)
	if err != nil {
		return Cue{}, fmt.Sprintf("start timestamp: %v", err)
	}
	end, err := ParseTimestamp(endText)
	if err != nil {
		return Cue{}, fmt.Sprintf("end timestamp: %v", err)
	}
	text := make([]string, 0, len(block)-tsLine-1)
	for _, line := range block[tsLine+1:] {
		text = append(text, line)
	}
	return Cue{Start: start, End: end, Text: text}, ""
}

// splitBlocks separates the input into blank-line-delimited blocks of
// non-empty lines. Carriage returns are stripped.
func splitBlocks(content string) [][]string {
	var blocks [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

// isVTTMetadataBlock reports whether a block is a WebVTT header or one of the
// non-cue block types (NOTE, STYLE, REGION). A block that merely resembles a
// cue identifier is left for parseCue to reject.
func isVTTMetadataBlock(block []string) bool {
	if len(block) == 0 {
		return true
	}
	first := strings.TrimSpace(block[0])
	for _, prefix := range []string{"WEBVTT", "NOTE", "STYLE", "REGION"} {
		if strings.HasPrefix(first, prefix) {
			// A header block never contains a cue timestamp line.
			for _, line := range block {
				if strings.Contains(line, "-->") {
					return false
				}
			}
			return true
		}
	}
	// Bare numeric counters between header and cues (seen in some generators).
	if len(block) == 1 {
		if _, err := strconv.Atoi(first); err == nil {
			return true
		}
	}
	return false
}

type jsonCue struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Text  string `json:"text"`
}

func parseJSON(data []byte) (Document, []Diagnostic, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return Document{}, nil, nil
	}
	var cues []jsonCue
	if err := json.Unmarshal([]byte(trimmed), &cues); err != nil {
		return nil, nil, fmt.Errorf("decode subtitle json: %w", err)
	}
	doc := Document{}
	var diags []Diagnostic
	for i, cue := range cues {
		start, err := ParseTimestamp(cue.Start)
		if err != nil {
			diags = append(diags, Diagnostic{Block: i + 1, Reason: fmt.Sprintf("start timestamp: %v", err)})
			continue
		}
		end, err := ParseTimestamp(cue.End)
		if err != nil {
			diags = append(diags, Diagnostic{Block: i + 1, Reason: fmt.Sprintf("end timestamp: %v", err)})
			continue
		}
		var text []string
		if cue.Text != "" {
			text = strings.Split(cue.Text, "\n")
		}
		doc = append(doc, Cue{Start: start, End: end, Text: text})
	}
	return doc, diags, nil
}
