package task

import "fmt"

// Stats are recomputed from a task's full completion history.
// CurrentStreak is the cached streak, not a recomputation.
type Stats struct {
	TotalDays      int     `json:"totalDays"`
	CompletionRate float64 `json:"completionRate"`
	LongestStreak  int     `json:"longestStreak"`
	CurrentStreak  int     `json:"currentStreak"`
}

// CompletionRateFormatted renders the rate with one decimal, e.g. "20.0%"
func (s Stats) CompletionRateFormatted() string {
	return fmt.Sprintf("%.1f%%", s.CompletionRate)
}

// ComputeStats derives statistics for a single task
func ComputeStats(t Task) Stats {
	return Stats{
		TotalDays:      len(t.CompletedDates),
		CompletionRate: CompletionRate(t.CompletedDates),
		LongestStreak:  LongestRun(t.CompletedDates),
		CurrentStreak:  t.Streak,
	}
}

// CompletionRate is completions / (days from first to last, inclusive) * 100.
// It is 0 when fewer than two completions exist.
func CompletionRate(dates []string) float64 {
	if len(dates) < 2 {
		return 0
	}
	span, err := DaysBetween(dates[0], dates[len(dates)-1])
	if err != nil || span <= 0 {
		return 0
	}
	return float64(len(dates)) / float64(span+1) * 100
}

// Summary aggregates across all tasks
type Summary struct {
	TotalTasks       int `json:"totalTasks"`
	ActiveTasks      int `json:"activeTasks"`
	TotalCompletions int `json:"totalCompletions"`
	TotalStreaks     int `json:"totalStreaks"`
}

// Summarize computes cross-task statistics
func Summarize(tasks []Task) Summary {
	s := Summary{TotalTasks: len(tasks)}
	for _, t := range tasks {
		if t.Streak > 0 {
			s.ActiveTasks++
		}
		s.TotalCompletions += len(t.CompletedDates)
		s.TotalStreaks += t.Streak
	}
	return s
}
