package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bidscope-io/bidscope/internal/config"
	"github.com/bidscope-io/bidscope/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Configure backend connection and polling",
	Long: `Configure bidscope settings interactively.

This allows you to modify:
  - Backend base URL
  - Auth token
  - Polling intervals (handshake, keywords, logs)

Press Enter to keep the current value for any setting. The dashboard
picks up saved changes without a restart.`,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if !promptSettings(bufio.NewReader(os.Stdin), settings) {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	path, err := config.SettingsFile()
	if err != nil {
		return err
	}
	fmt.Println("\n" + render(styleSuccess, "Settings saved.") + " " +
		render(styleHint, path))
	return nil
}

// promptSettings walks the user through each setting and reports whether
// anything changed. Empty input keeps the current value.
func promptSettings(reader *bufio.Reader, settings *models.Settings) bool {
	changed := false

	fmt.Printf("Backend URL [%s]: ", settings.Backend.BaseURL)
	url := readLine(reader)
	if url != "" && url != settings.Backend.BaseURL {
		settings.Backend.BaseURL = url
		changed = true
	}

	fmt.Printf("Auth token [%s]: ", maskToken(settings.Backend.AuthToken))
	token := readLine(reader)
	if token != "" && token != settings.Backend.AuthToken {
		settings.Backend.AuthToken = token
		changed = true
	}

	fmt.Println("\nPolling intervals:")
	changed = promptInterval(reader, "Handshake", &settings.Polling.Handshake) || changed
	changed = promptInterval(reader, "Keywords", &settings.Polling.Keywords) || changed
	changed = promptInterval(reader, "Logs", &settings.Polling.Logs) || changed

	return changed
}

// promptInterval prompts for a poll interval and reports whether it changed.
// Invalid durations are rejected and the current value kept.
func promptInterval(reader *bufio.Reader, label string, value *string) bool {
	fmt.Printf("  %s [%s]: ", label, *value)
	input := readLine(reader)
	if input == "" || input == *value {
		return false
	}
	if _, err := time.ParseDuration(input); err != nil {
		fmt.Printf("  %s\n", render(styleWarning, "invalid duration, keeping "+*value))
		return false
	}
	*value = input
	return true
}

func readLine(reader *bufio.Reader) string {
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return ""
	}
	return strings.TrimSpace(line)
}

func maskToken(token string) string {
	if token == "" {
		return "none"
	}
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "****" + token[len(token)-4:]
}
