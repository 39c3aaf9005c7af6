package tui

import (
	"github.com/bidscope-io/bidscope/internal/models"
)

// HandshakeResultMsg carries the settled result of an integrity poll.
// Exactly one of Status and Err is meaningful.
type HandshakeResultMsg struct {
	Status *models.HandshakeStatus
	Err    error
}

// KeywordsResultMsg carries the settled result of a keyword poll.
type KeywordsResultMsg struct {
	Keywords []models.Keyword
	Err      error
}

// LogsResultMsg carries the settled result of a unified log poll.
type LogsResultMsg struct {
	Count   int
	Entries []models.UnifiedLogEntry
	Err     error
}

// SettingsReloadedMsg delivers hot-reloaded settings from the fsnotify
// watcher.
type SettingsReloadedMsg struct {
	Settings *models.Settings
}

// Tick messages re-arm each panel's poll. A tick is only scheduled when the
// previous request has settled, so at most one request is in flight per
// panel and a slow response stretches the cadence instead of stacking
// requests.
type (
	handshakeTickMsg struct{}
	keywordsTickMsg  struct{}
	logsTickMsg      struct{}
)
