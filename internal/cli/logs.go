package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bidscope-io/bidscope/internal/models"
)

var logsTypeFlag string

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print a snapshot of the unified agent log",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, client, err := loadBackend()
		if err != nil {
			return err
		}

		count, entries, err := client.UnifiedLogs(cmd.Context(), settings.Limits.LogLimit())
		if err != nil {
			return fmt.Errorf("failed to fetch logs: %w", err)
		}

		want := models.LogType(strings.ToUpper(logsTypeFlag))
		shown := 0
		for _, e := range entries {
			if logsTypeFlag != "" && e.Type != want {
				continue
			}
			fmt.Printf("%s %s %s\n",
				render(styleHint, e.Timestamp),
				render(styleLabel, fmt.Sprintf("%-9s", e.Type)),
				logLine(e))
			shown++
		}

		fmt.Printf("\n%s\n", render(styleHint,
			fmt.Sprintf("%d shown of %d total backend entries", shown, count)))
		return nil
	},
}

func init() {
	logsCmd.Flags().StringVarP(&logsTypeFlag, "type", "t", "",
		"only show entries of one type: thought, handshake, bid")
}

func logLine(e models.UnifiedLogEntry) string {
	switch {
	case e.Thought != nil:
		return fmt.Sprintf("%s·%s %dms %s",
			e.Thought.Agent, e.Thought.Model, e.Thought.LatencyMS, e.Thought.Response)
	case e.Handshake != nil:
		return fmt.Sprintf("%s→%s %s",
			e.Handshake.Sender, e.Handshake.Receiver, e.Handshake.Message)
	case e.Bid != nil:
		return fmt.Sprintf("%s $%.2f→$%.2f %s",
			e.Bid.Keyword, e.Bid.CurrentBid, e.Bid.OptimalBid, e.Bid.State)
	default:
		return render(styleHint, "(unrecognized payload)")
	}
}
