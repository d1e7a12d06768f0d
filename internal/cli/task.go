package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/MikeBiancalana/streak/internal/task"
	"github.com/spf13/cobra"
)

var (
	dateFlag   string
	formatFlag string
	monthFlag  string
)

// listCmd lists tasks with their status on the selected date
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits and whether they are done on a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDateFlag()
		if err != nil {
			return err
		}

		tasks := store.Tasks()
		out := cmd.OutOrStdout()

		if formatFlag != "" {
			format, err := parseFormat(formatFlag)
			if err != nil {
				return err
			}
			return formatTasks(out, format, tasks, date)
		}

		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks added yet. Add your first task to start building streaks!")
			return nil
		}

		fmt.Fprintf(out, "%s (%s)\n\n", date, task.DescribeDate(date, store.Today()))
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tDONE\tSTREAK\tTITLE")
		for _, t := range tasks {
			done := "[ ]"
			if t.IsCompletedOn(date) {
				done = "[x]"
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", t.ShortID(), done, t.Streak, t.Title)
		}
		tw.Flush()

		fmt.Fprintf(out, "\nTotal Streaks: %d\n", task.Summarize(tasks).TotalStreaks)
		return nil
	},
}

// doneCmd toggles completion for a date
var doneCmd = &cobra.Command{
	Use:     "done [task-id]",
	Aliases: []string{"toggle"},
	Short:   "Toggle a habit's completion on a date (default today)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := store.Find(args[0])
		if err != nil {
			return err
		}
		date, err := resolveDateFlag()
		if err != nil {
			return err
		}

		marked, err := store.ToggleCompletion(t.ID, date)
		if err != nil {
			return fmt.Errorf("failed to toggle task: %w", err)
		}
		updated, _ := store.Get(t.ID)

		out := cmd.OutOrStdout()
		if marked {
			fmt.Fprintf(out, "✓ %s done on %s\n", t.Title, date)
		} else {
			fmt.Fprintf(out, "○ %s un-marked on %s\n", t.Title, date)
		}
		fmt.Fprintf(out, "  Streak: %d\n", updated.Streak)
		return nil
	},
}

// checkCmd reports whether a task is completed on a date
var checkCmd = &cobra.Command{
	Use:   "check [task-id]",
	Short: "Report whether a habit is done on a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := store.Find(args[0])
		if err != nil {
			return err
		}
		date, err := resolveDateFlag()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), store.IsCompletedOn(t.ID, date))
		return nil
	},
}

// deleteCmd removes a task
var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a habit and its history",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := store.Find(args[0])
		if err != nil {
			return err
		}

		if _, err := store.DeleteTask(t.ID); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted task %s (%s)\n", t.ShortID(), t.Title)
		return nil
	},
}

// showCmd prints a task's details, statistics, and calendar
var showCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show habit details with its calendar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := store.Find(args[0])
		if err != nil {
			return err
		}
		year, month, err := resolveMonthFlag()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		stats := task.ComputeStats(t)

		fmt.Fprintf(out, "%s\n", t.Title)
		if t.Description != "" {
			fmt.Fprintf(out, "  %s\n", t.Description)
		}
		fmt.Fprintf(out, "  ID: %s\n", t.ID)
		if last := t.LastCompletedString(); last != "" {
			fmt.Fprintf(out, "  Last completed: %s\n", last)
		}
		fmt.Fprintln(out)
		writeTaskStats(out, stats)
		fmt.Fprintln(out)

		grid := task.TaskMonth(t, year, month, store.Today(), settings.WeekStart)
		fmt.Fprint(out, renderMonth(grid))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{listCmd, doneCmd, checkCmd} {
		c.Flags().StringVar(&dateFlag, "date", "today", "Date: YYYY-MM-DD, t, y, -3d, -1w, mon-sun")
	}
	listCmd.Flags().StringVar(&formatFlag, "format", "", "Output format (json, tsv, csv)")
	showCmd.Flags().StringVar(&monthFlag, "month", "", "Month to show (YYYY-MM, default current)")
}

// GetTaskCommands returns the task management commands
func GetTaskCommands() []*cobra.Command {
	return []*cobra.Command{listCmd, doneCmd, checkCmd, deleteCmd, showCmd}
}

func resolveDateFlag() (string, error) {
	date, err := task.ResolveDate(dateFlag, store.Today())
	if err != nil {
		return "", fmt.Errorf("invalid --date: %w", err)
	}
	return date, nil
}

func resolveMonthFlag() (int, time.Month, error) {
	if monthFlag == "" {
		today, _ := task.ParseDate(store.Today())
		return today.Year(), today.Month(), nil
	}
	m, err := time.Parse("2006-01", monthFlag)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --month %q: want YYYY-MM", monthFlag)
	}
	return m.Year(), m.Month(), nil
}
