package task

import (
	"github.com/MikeBiancalana/streak/internal/config"
)

// Toggle flips the completion of t on date and updates the cached streak.
// It returns true when the date is now marked done.
//
// In incremental mode un-marking only decrements the streak by one, which is
// exact when date was the trailing day of the run. Un-marking an earlier day
// leaves the cached value higher than the true run; recompute mode avoids
// that by rebuilding the trailing run from the full history.
func Toggle(t *Task, date string, mode config.StreakMode) (bool, error) {
	d, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	date = d.Format(DateLayout)

	marked := !t.IsCompletedOn(date)
	if marked {
		t.addDate(date)
	} else {
		t.removeDate(date)
	}

	if mode == config.StreakRecompute {
		recomputeStreak(t)
		return marked, nil
	}

	if !marked {
		t.Streak = max(t.Streak-1, 0)
		return false, nil
	}

	yesterday := d.AddDate(0, 0, -1).Format(DateLayout)
	if t.LastCompleted != nil && *t.LastCompleted == yesterday {
		t.Streak++
	} else {
		t.Streak = 1
	}
	last := date
	t.LastCompleted = &last

	return true, nil
}

// recomputeStreak sets Streak to the run ending at the latest completion.
func recomputeStreak(t *Task) {
	n := len(t.CompletedDates)
	if n == 0 {
		t.Streak = 0
		t.LastCompleted = nil
		return
	}
	last := t.CompletedDates[n-1]
	t.LastCompleted = &last
	t.Streak = TrailingRun(t.CompletedDates)
}

// TrailingRun returns the number of consecutive days ending at the last
// entry of a sorted date list.
func TrailingRun(dates []string) int {
	if len(dates) == 0 {
		return 0
	}
	run := 1
	for i := len(dates) - 1; i > 0; i-- {
		if gap, err := DaysBetween(dates[i-1], dates[i]); err != nil || gap != 1 {
			break
		}
		run++
	}
	return run
}

// LongestRun returns the longest run of consecutive days in a sorted date list.
func LongestRun(dates []string) int {
	longest, run := 0, 0
	for i, date := range dates {
		if i == 0 {
			run = 1
		} else if gap, err := DaysBetween(dates[i-1], date); err == nil && gap == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}
