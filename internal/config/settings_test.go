package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidscope-io/bidscope/internal/models"
)

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", settings.Backend.BaseURL)
	assert.Equal(t, models.DefaultLogLimit, settings.Limits.LogLimit())
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings := models.NewSettings()
	settings.Backend.BaseURL = "http://backend:9000"
	settings.Backend.AuthToken = "tok"
	settings.Polling.Logs = "5s"
	require.NoError(t, SaveSettings(settings))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", loaded.Backend.BaseURL)
	assert.Equal(t, "tok", loaded.Backend.AuthToken)
	assert.Equal(t, "5s", loaded.Polling.Logs)
}

func TestLoadYAMLOrDefaultBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	writeFile(t, path, "backend: [not a map")

	_, err := LoadYAMLOrDefault(path, models.NewSettings)
	assert.Error(t, err)
}

func TestSettingsFileUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := SettingsFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, GlobalDirName, SettingsFileName), path)
}
