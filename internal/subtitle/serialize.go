package subtitle

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders a Document in the requested format. An empty document
// produces a valid empty-body file for every format.
func Serialize(doc Document, format Format) ([]byte, error) {
	switch format {
	case FormatVTT:
		return serializeVTT(doc), nil
	case FormatSRT:
		return serializeSRT(doc), nil
	case FormatJSON:
		return serializeJSON(doc)
	default:
		return nil, fmt.Errorf("unsupported subtitle format %q", format)
	}
}

func serializeVTT(doc Document) []byte {
	var b strings.Builder
	b.WriteString("WEBVTT\n")
	for _, cue := range doc {
		b.WriteByte('\n')
		b.WriteString(FormatTimestampVTT(cue.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatTimestampVTT(cue.End))
		b.WriteByte('\n')
		for _, line := range cue.Text {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}

func serializeSRT(doc Document) []byte {
	var b strings.Builder
	for i, cue := range doc {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte('\n')
		b.WriteString(FormatTimestampSRT(cue.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatTimestampSRT(cue.End))
		b.WriteByte('\n')
		for _, line := range cue.Text {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}

func serializeJSON(doc Document) ([]byte, error) {
	cues := make([]jsonCue, 0, len(doc))
	for _, cue := range doc {
		cues = append(cues, jsonCue{
			Start: FormatTimestampVTT(cue.Start),
			End:   FormatTimestampVTT(cue.End),
			Text:  StripMarkup(strings.Join(cue.Text, "\n")),
		})
	}
	data, err := json.MarshalIndent(cues, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode subtitle json: %w", err)
	}
	return append(data, '\n'), nil
}
