package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfrestrepo/ideas/internal/clock"
	"github.com/dfrestrepo/ideas/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [idea-id|dev]",
	Short: "Show session history and invested time",
	Long: `Show the session history for one owner, or every owner with --all.

Examples:
  ideas report 42      # Sessions and total time for idea #42
  ideas report dev     # Standalone development time
  ideas report --all   # Per-owner totals across everything`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		all, _ := cmd.Flags().GetBool("all")

		if all {
			summaries, err := aggregator.SummarizeAll()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if len(summaries) == 0 {
				fmt.Println("No sessions recorded yet")
				return
			}
			for _, summary := range summaries {
				printSummary(summary)
				fmt.Println()
			}
			return
		}

		if len(args) == 0 {
			fmt.Println("Error: give an idea ID, 'dev', or --all")
			return
		}

		ownerID, _, err := resolveOwner(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		summary, err := aggregator.Summarize(ownerID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printSummary(summary)
	}),
}

func printSummary(summary *report.Summary) {
	fmt.Printf("📊 %s — total %s\n", ownerLabel(summary.OwnerID), formatDuration(summary.Total))

	loc := displayZone()

	if summary.Open != nil {
		started := clock.Display(summary.Open.Session.StartedAt, loc)
		fmt.Printf("  ▶ in progress since %s (%s elapsed)\n",
			started.Format("15:04:05"), formatDuration(summary.Open.Duration))
	}

	for _, entry := range summary.Entries {
		if entry.Invalid {
			fmt.Printf("  ⚠ session #%d has an unreadable timestamp, skipped\n", entry.Session.ID)
			continue
		}
		started := clock.Display(entry.Session.StartedAt, loc)
		fmt.Printf("  • %s  %s\n", started.Format("2006-01-02 15:04"), formatDuration(entry.Duration))
	}
}

func init() {
	reportCmd.Flags().Bool("all", false, "Report every owner with recorded sessions")
}
