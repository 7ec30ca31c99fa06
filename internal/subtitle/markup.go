package subtitle

import (
	"regexp"
	"strings"
)

// tagPattern matches inline WebVTT styling and karaoke timing tags, e.g.
// <c>, </c>, <v Speaker>, <00:00:01.500>.
var tagPattern = regexp.MustCompile(`<[^<>]*>`)

// StripMarkup removes inline styling markup from cue text. VTT and SRT
// serialization pass text through verbatim; JSON output and search operate
// on the stripped form.
func StripMarkup(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	return tagPattern.ReplaceAllString(text, "")
}
