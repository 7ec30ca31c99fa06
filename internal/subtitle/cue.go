package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cue is a single timed subtitle entry.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  []string
}

// Document is an ordered sequence of cues. Sequence order is display order;
// the parser never reorders entries.
type Document []Cue

// ParseTimestamp parses an SRT or VTT timestamp. Both millisecond separators
// (comma and dot) are accepted, and the VTT short form without an hour field
// is recognized.
func ParseTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	normalized := strings.ReplaceAll(value, ",", ".")
	main, msPart, ok := strings.Cut(normalized, ".")
	if !ok {
		return 0, fmt.Errorf("timestamp %q missing millisecond field", value)
	}
	fields := strings.Split(main, ":")
	var hours, minutes, seconds string
	switch len(fields) {
	case 3:
		hours, minutes, seconds = fields[0], fields[1], fields[2]
	case 2:
		hours, minutes, seconds = "0", fields[0], fields[1]
	default:
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	h, errH := strconv.Atoi(strings.TrimSpace(hours))
	m, errM := strconv.Atoi(strings.TrimSpace(minutes))
	s, errS := strconv.Atoi(strings.TrimSpace(seconds))
	ms, errMS := parseMillis(msPart)
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if h < 0 || m < 0 || s < 0 {
		return 0, fmt.Errorf("negative timestamp %q", value)
	}
	total := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond
	return total, nil
}

// parseMillis interprets the fraction field as a decimal fraction of a
// second, so "5" means 500ms and "50" means 500ms. Fractions longer than
// three digits are truncated to millisecond precision.
func parseMillis(field string) (int, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, fmt.Errorf("empty millisecond field")
	}
	if len(field) > 3 {
		field = field[:3]
	}
	ms, err := strconv.Atoi(field)
	if err != nil || ms < 0 {
		return 0, fmt.Errorf("invalid millisecond field %q", field)
	}
	for i := len(field); i < 3; i++ {
		ms *= 10
	}
	return ms, nil
}

// FormatTimestampVTT renders a duration as HH:MM:SS.mmm.
func FormatTimestampVTT(d time.Duration) string {
	return formatTimestamp(d, '.')
}

// FormatTimestampSRT renders a duration as HH:MM:SS,mmm.
func FormatTimestampSRT(d time.Duration) string {
	return formatTimestamp(d, ',')
}

func formatTimestamp(d time.Duration, separator byte) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	hours := ms / 3_600_000
	ms -= hours * 3_600_000
	minutes := ms / 60_000
	ms -= minutes * 60_000
	seconds := ms / 1_000
	ms -= seconds * 1_000
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, seconds, separator, ms)
}
