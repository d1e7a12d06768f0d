package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MikeBiancalana/streak/internal/task"
)

type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatTSV  OutputFormat = "tsv"
	FormatCSV  OutputFormat = "csv"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "tsv":
		return FormatTSV, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: json, tsv, csv)", s)
	}
}

// taskRow is the flattened view of a task used by the list formats
type taskRow struct {
	task.Task
	Done bool `json:"done"`
}

func formatTasks(w io.Writer, format OutputFormat, tasks []task.Task, date string) error {
	switch format {
	case FormatJSON:
		return formatTasksJSON(w, tasks, date)
	case FormatTSV:
		return formatTasksTSV(w, tasks, date)
	default:
		return formatTasksCSV(w, tasks, date)
	}
}

func formatTasksJSON(w io.Writer, tasks []task.Task, date string) error {
	rows := make([]taskRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, taskRow{Task: t, Done: t.IsCompletedOn(date)})
	}
	return json.NewEncoder(w).Encode(rows)
}

func formatTasksTSV(w io.Writer, tasks []task.Task, date string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(tw, "ID\tDONE\tSTREAK\tLAST\tTITLE")
	for _, t := range tasks {
		last := t.LastCompletedString()
		if last == "" {
			last = "-"
		}
		fmt.Fprintf(tw, "%s\t%t\t%d\t%s\t%s\n", t.ShortID(), t.IsCompletedOn(date), t.Streak, last, t.Title)
	}
	return tw.Flush()
}

func formatTasksCSV(w io.Writer, tasks []task.Task, date string) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"ID", "DONE", "STREAK", "LAST", "TITLE", "DESCRIPTION"})
	for _, t := range tasks {
		record := []string{
			t.ID,
			strconv.FormatBool(t.IsCompletedOn(date)),
			strconv.Itoa(t.Streak),
			t.LastCompletedString(),
			t.Title,
			t.Description,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// taskStatsRow pairs a task with its derived statistics
type taskStatsRow struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Stats task.Stats `json:"stats"`
}

type statsReport struct {
	Summary task.Summary   `json:"summary"`
	Tasks   []taskStatsRow `json:"tasks"`
}

func buildStatsReport(tasks []task.Task) statsReport {
	report := statsReport{
		Summary: task.Summarize(tasks),
		Tasks:   make([]taskStatsRow, 0, len(tasks)),
	}
	for _, t := range tasks {
		report.Tasks = append(report.Tasks, taskStatsRow{
			ID:    t.ID,
			Title: t.Title,
			Stats: task.ComputeStats(t),
		})
	}
	return report
}

func formatStats(w io.Writer, format OutputFormat, tasks []task.Task) error {
	report := buildStatsReport(tasks)
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(report)
	case FormatTSV:
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
		fmt.Fprintln(tw, "ID\tTOTAL\tRATE\tLONGEST\tCURRENT\tTITLE")
		for _, r := range report.Tasks {
			fmt.Fprintf(tw, "%.8s\t%d\t%s\t%d\t%d\t%s\n",
				r.ID, r.Stats.TotalDays, r.Stats.CompletionRateFormatted(),
				r.Stats.LongestStreak, r.Stats.CurrentStreak, r.Title)
		}
		return tw.Flush()
	default:
		cw := csv.NewWriter(w)
		cw.Write([]string{"ID", "TOTAL", "RATE", "LONGEST", "CURRENT", "TITLE"})
		for _, r := range report.Tasks {
			record := []string{
				r.ID,
				strconv.Itoa(r.Stats.TotalDays),
				strconv.FormatFloat(r.Stats.CompletionRate, 'f', 1, 64),
				strconv.Itoa(r.Stats.LongestStreak),
				strconv.Itoa(r.Stats.CurrentStreak),
				r.Title,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	}
}

func writeTaskStats(w io.Writer, s task.Stats) {
	fmt.Fprintf(w, "  Total Days:      %d\n", s.TotalDays)
	fmt.Fprintf(w, "  Completion Rate: %s\n", s.CompletionRateFormatted())
	fmt.Fprintf(w, "  Longest Streak:  %d\n", s.LongestStreak)
	fmt.Fprintf(w, "  Current Streak:  %d\n", s.CurrentStreak)
}

// renderMonth draws a plain-text month grid. Completed days are marked
// with '*', today is bracketed, and future days are dimmed with '.'.
func renderMonth(g task.MonthGrid) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", g.Month, g.Year)
	fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", max(0, (28-len(title))/2)), title)
	for _, h := range g.WeekdayHeaders() {
		fmt.Fprintf(&b, " %s ", h)
	}
	b.WriteString("\n")

	for _, week := range g.Weeks() {
		for _, d := range week {
			b.WriteString(renderCell(d))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(d *task.Day) string {
	if d == nil {
		return "    "
	}
	mark := " "
	switch {
	case d.Future:
		mark = "."
	case d.Completed > 0:
		mark = "*"
	}
	if d.Today {
		return fmt.Sprintf("[%2d]", d.Day)
	}
	return fmt.Sprintf("%2d%s ", d.Day, mark)
}
