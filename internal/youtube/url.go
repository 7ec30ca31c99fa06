// Package youtube validates video URLs and extracts video identifiers.
package youtube

import (
	"net/url"
	"strings"
)

var recognizedHosts = map[string]bool{
	"youtube.com":       true,
	"www.youtube.com":   true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
	"youtu.be":          true,
}

// ValidateURL reports whether raw looks like a YouTube video URL. A missing
// scheme is tolerated; anything outside the recognized YouTube hosts is not.
func ValidateURL(raw string) bool {
	parsed, ok := parse(raw)
	if !ok {
		return false
	}
	return recognizedHosts[strings.ToLower(parsed.Host)]
}

// VideoID extracts the video identifier from the common YouTube URL shapes
// (watch, short link, shorts, embed, live). It returns an empty string when
// no identifier is present.
func VideoID(raw string) string {
	parsed, ok := parse(raw)
	if !ok || !recognizedHosts[strings.ToLower(parsed.Host)] {
		return ""
	}
	if strings.EqualFold(parsed.Host, "youtu.be") {
		return firstPathSegment(parsed.Path)
	}
	switch {
	case parsed.Path == "/watch":
		return parsed.Query().Get("v")
	case strings.HasPrefix(parsed.Path, "/shorts/"):
		return firstPathSegment(strings.TrimPrefix(parsed.Path, "/shorts"))
	case strings.HasPrefix(parsed.Path, "/embed/"):
		return firstPathSegment(strings.TrimPrefix(parsed.Path, "/embed"))
	case strings.HasPrefix(parsed.Path, "/live/"):
		return firstPathSegment(strings.TrimPrefix(parsed.Path, "/live"))
	default:
		return ""
	}
}

func parse(raw string) (*url.URL, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return nil, false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, false
	}
	return parsed, true
}

func firstPathSegment(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			return segment
		}
	}
	return ""
}
