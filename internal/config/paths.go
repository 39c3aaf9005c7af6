// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global Bidscope directory.
	GlobalDirName = ".bidscope"

	// SettingsFileName is the settings file within the global directory.
	SettingsFileName = "settings.yaml"

	// DebugLogFileName is the debug log file within the global directory.
	DebugLogFileName = "debug.log"
)

// GlobalDir returns the path to the global Bidscope directory (~/.bidscope/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// SettingsFile returns the path to the settings.yaml file.
func SettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// DebugLogFile returns the path to the debug log file.
func DebugLogFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DebugLogFileName), nil
}

// EnsureGlobalDir creates the global Bidscope directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
