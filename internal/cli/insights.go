package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bidscope-io/bidscope/internal/insights"
)

var insightsFilterFlag string

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Derive tactical insights from current keyword bids",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, client, err := loadBackend()
		if err != nil {
			return err
		}

		keywords, err := client.Keywords(cmd.Context(), settings.Limits.KeywordLimit())
		if err != nil {
			return fmt.Errorf("failed to fetch keywords: %w", err)
		}

		filter, err := parseFilter(insightsFilterFlag)
		if err != nil {
			return err
		}

		list := filter.Apply(insights.Derive(keywords))
		if len(list) == 0 {
			fmt.Println(render(styleHint, "No insights."))
			return nil
		}

		for _, in := range list {
			badge := severityBadge(in.Severity)
			fmt.Printf("%s %s %s\n", badge,
				render(styleValue, in.Title),
				render(styleBrand, in.Keyword))
			fmt.Printf("    %s\n", render(styleValue, in.Metric))
			fmt.Printf("    %s\n", render(styleHint, in.SubMetric))
			fmt.Printf("    %s $%+d\n", render(styleLabel, "delta"), in.Delta)
			fmt.Printf("    %s\n", render(styleAction, "→ "+in.Action))
		}

		t := insights.Aggregate(list)
		fmt.Printf("\n%s $%d  %s $%d  %s $%+d\n",
			render(styleLabel, "waste"), t.Waste,
			render(styleLabel, "opportunity"), t.Opportunity,
			render(styleLabel, "net alpha"), t.Net)
		return nil
	},
}

func init() {
	insightsCmd.Flags().StringVarP(&insightsFilterFlag, "filter", "f", "all",
		"filter insights: all, leaky, gem, auction")
}

func parseFilter(s string) (insights.Filter, error) {
	switch s {
	case "all":
		return insights.FilterAll, nil
	case "leaky":
		return insights.FilterLeaky, nil
	case "gem":
		return insights.FilterGem, nil
	case "auction":
		return insights.FilterAuction, nil
	default:
		return insights.FilterAll, fmt.Errorf("unknown filter %q (want all, leaky, gem, or auction)", s)
	}
}

func severityBadge(s insights.Severity) string {
	switch s {
	case insights.SeverityCritical:
		return render(styleError, "●")
	case insights.SeverityOpportunity:
		return render(styleSuccess, "●")
	default:
		return render(styleWarning, "●")
	}
}
