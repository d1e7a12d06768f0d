package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsFormatFlag string

// statsCmd prints per-habit statistics and the cross-habit summary
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show habit statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := store.Tasks()
		out := cmd.OutOrStdout()

		if statsFormatFlag != "" {
			format, err := parseFormat(statsFormatFlag)
			if err != nil {
				return err
			}
			return formatStats(out, format, tasks)
		}

		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks added yet. Add your first task to start building streaks!")
			return nil
		}

		report := buildStatsReport(tasks)
		for _, r := range report.Tasks {
			fmt.Fprintf(out, "%s\n", r.Title)
			writeTaskStats(out, r.Stats)
			fmt.Fprintln(out)
		}

		fmt.Fprintf(out, "Tasks: %d  Active: %d  Completions: %d  Total Streaks: %d\n",
			report.Summary.TotalTasks,
			report.Summary.ActiveTasks,
			report.Summary.TotalCompletions,
			report.Summary.TotalStreaks,
		)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsFormatFlag, "format", "", "Output format (json, tsv, csv)")
}
