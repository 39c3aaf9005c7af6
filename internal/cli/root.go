// Package cli implements the bidscope CLI commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bidscope-io/bidscope/internal/config"
	"github.com/bidscope-io/bidscope/internal/logging"
	"github.com/bidscope-io/bidscope/internal/tui"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "bidscope",
	Short: "Dashboard for the shadow bidding backend",
	Long: `Bidscope is a read-only dashboard for a shadow bidding backend.
It verifies backend integrity, derives tactical insights from keyword
bids, and streams the unified agent log.

Running bidscope without a subcommand opens the interactive dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		logger, err := logging.New(debugFlag)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		return tui.Run(settings, logger)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug output to ~/.bidscope/debug.log")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
