package config

import (
	"github.com/bidscope-io/bidscope/internal/models"
)

// LoadSettings loads the dashboard settings from ~/.bidscope/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the dashboard settings to ~/.bidscope/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := SettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
