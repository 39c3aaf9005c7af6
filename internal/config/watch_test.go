package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidscope-io/bidscope/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatchSettingsDeliversReload(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	reloaded := make(chan *models.Settings, 1)
	watcher, err := WatchSettings(func(s *models.Settings) {
		select {
		case reloaded <- s:
		default:
		}
	})
	require.NoError(t, err)
	defer watcher.Stop()

	settings := models.NewSettings()
	settings.Backend.BaseURL = "http://backend:9000"
	require.NoError(t, SaveSettings(settings))

	select {
	case s := <-reloaded:
		assert.Equal(t, "http://backend:9000", s.Backend.BaseURL)
	case <-time.After(3 * time.Second):
		t.Fatal("settings change was not delivered")
	}
}

func TestWatchSettingsStopIsIdempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	watcher, err := WatchSettings(func(*models.Settings) {})
	require.NoError(t, err)

	watcher.Stop()
	watcher.Stop()
}
