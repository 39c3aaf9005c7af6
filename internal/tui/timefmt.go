package tui

import (
	"strings"
	"time"
)

// timestampPlaceholder is rendered when a log timestamp fails to parse, so
// one malformed entry never blocks the rest of the list.
const timestampPlaceholder = "--:--:--.---"

// formatLogTimestamp parses an ISO-8601 timestamp, interpreting zone-less
// values as UTC, and renders it in 24-hour local time with millisecond
// precision.
func formatLogTimestamp(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return timestampPlaceholder
	}
	if !hasZoneMarker(s) {
		s += "Z"
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return timestampPlaceholder
	}
	return t.Local().Format("15:04:05.000")
}

// hasZoneMarker reports whether the time portion carries an explicit zone
// (trailing Z or a +hh:mm / -hh:mm offset).
func hasZoneMarker(s string) bool {
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		return true
	}
	i := strings.IndexByte(s, 'T')
	if i < 0 {
		return false
	}
	rest := s[i+1:]
	return strings.ContainsAny(rest, "+-")
}
