package models

import "time"

// BackendConfig points the dashboard at the bidding backend.
type BackendConfig struct {
	BaseURL   string `yaml:"base_url"`
	AuthToken string `yaml:"auth_token,omitempty"`
}

// PollingConfig holds per-panel poll intervals as duration strings
// (e.g. "60s"). Invalid or empty values fall back to the defaults.
type PollingConfig struct {
	Handshake string `yaml:"handshake"`
	Keywords  string `yaml:"keywords"`
	Logs      string `yaml:"logs"`
}

// LimitsConfig bounds how many records each poll requests.
type LimitsConfig struct {
	Keywords int `yaml:"keywords"`
	Logs     int `yaml:"logs"`
}

// Default poll intervals and fetch limits.
const (
	DefaultHandshakeEvery = 60 * time.Second
	DefaultKeywordsEvery  = 30 * time.Second
	DefaultLogsEvery      = 2 * time.Second
	DefaultKeywordLimit   = 50
	DefaultLogLimit       = 100
)

// Settings represents the dashboard configuration.
// This corresponds to ~/.bidscope/settings.yaml.
type Settings struct {
	Version int           `yaml:"version"`
	Backend BackendConfig `yaml:"backend"`
	Polling PollingConfig `yaml:"polling"`
	Limits  LimitsConfig  `yaml:"limits"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Backend: BackendConfig{
			BaseURL: "http://localhost:8000",
		},
		Polling: PollingConfig{
			Handshake: "60s",
			Keywords:  "30s",
			Logs:      "2s",
		},
		Limits: LimitsConfig{
			Keywords: DefaultKeywordLimit,
			Logs:     DefaultLogLimit,
		},
	}
}

// HandshakeEvery returns the integrity poll interval.
func (p PollingConfig) HandshakeEvery() time.Duration {
	return parseEvery(p.Handshake, DefaultHandshakeEvery)
}

// KeywordsEvery returns the keyword poll interval.
func (p PollingConfig) KeywordsEvery() time.Duration {
	return parseEvery(p.Keywords, DefaultKeywordsEvery)
}

// LogsEvery returns the unified log poll interval.
func (p PollingConfig) LogsEvery() time.Duration {
	return parseEvery(p.Logs, DefaultLogsEvery)
}

func parseEvery(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// KeywordLimit returns the keyword fetch limit, defaulted when unset.
func (l LimitsConfig) KeywordLimit() int {
	if l.Keywords <= 0 {
		return DefaultKeywordLimit
	}
	return l.Keywords
}

// LogLimit returns the unified log fetch limit, defaulted when unset.
func (l LimitsConfig) LogLimit() int {
	if l.Logs <= 0 {
		return DefaultLogLimit
	}
	return l.Logs
}
