package cli

import (
	"fmt"

	"github.com/MikeBiancalana/streak/internal/task"
	"github.com/spf13/cobra"
)

// calendarCmd prints the month grid across all habits
var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show a month calendar of completions",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month, err := resolveMonthFlag()
		if err != nil {
			return err
		}

		grid := task.Month(store.Tasks(), year, month, store.Today(), settings.WeekStart)
		out := cmd.OutOrStdout()
		fmt.Fprint(out, renderMonth(grid))

		completedDays := 0
		for _, d := range grid.Days {
			if d.Completed > 0 {
				completedDays++
			}
		}
		fmt.Fprintf(out, "\n%d day(s) with completions\n", completedDays)
		return nil
	},
}

func init() {
	calendarCmd.Flags().StringVar(&monthFlag, "month", "", "Month to show (YYYY-MM, default current)")
}
