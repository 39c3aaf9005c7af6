package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLogTimestamp(t *testing.T) {
	// Zone-less timestamps are interpreted as UTC, so they must render the
	// same as their explicit-Z counterparts regardless of the host zone.
	bare := formatLogTimestamp("2026-08-24T12:34:56.789123")
	explicit := formatLogTimestamp("2026-08-24T12:34:56.789123Z")
	assert.Equal(t, explicit, bare)
	assert.NotEqual(t, timestampPlaceholder, bare)

	// An offset timestamp naming the same instant renders identically too.
	offset := formatLogTimestamp("2026-08-24T14:34:56.789123+02:00")
	assert.Equal(t, explicit, offset)
}

func TestFormatLogTimestampFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"garbage", "not-a-time"},
		{"date only", "2026-08-24"},
		{"truncated", "2026-08-24T12:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, timestampPlaceholder, formatLogTimestamp(tt.raw))
		})
	}
}

func TestHasZoneMarker(t *testing.T) {
	assert.True(t, hasZoneMarker("2026-08-24T12:00:00Z"))
	assert.True(t, hasZoneMarker("2026-08-24T12:00:00+02:00"))
	assert.True(t, hasZoneMarker("2026-08-24T12:00:00-05:00"))
	assert.False(t, hasZoneMarker("2026-08-24T12:00:00"))
	assert.False(t, hasZoneMarker("2026-08-24T12:00:00.123456"))
}
