package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ResolveDate turns a user-supplied date reference into YYYY-MM-DD,
// relative to today. Completions can only be recorded for today or
// earlier, so references that land after today are rejected.
// Supports:
// - "t" or "today"
// - "y" or "yesterday"
// - "-3d" - 3 days ago
// - "-2w" - 2 weeks ago
// - "mon" ... "sun" - most recent such weekday, today included
// - "YYYY-MM-DD"
func ResolveDate(input, today string) (string, error) {
	now, err := ParseDate(today)
	if err != nil {
		return "", err
	}

	input = strings.TrimSpace(strings.ToLower(input))
	var result time.Time

	switch {
	case input == "":
		return "", fmt.Errorf("%w: empty input", ErrInvalidDate)

	case input == "t" || input == "today":
		result = now

	case input == "y" || input == "yesterday":
		result = now.AddDate(0, 0, -1)

	case strings.HasPrefix(input, "-") && (strings.HasSuffix(input, "d") || strings.HasSuffix(input, "w")):
		unit := input[len(input)-1]
		n, err := strconv.Atoi(input[1 : len(input)-1])
		if err != nil || n < 0 {
			return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
		}
		if unit == 'w' {
			n *= 7
		}
		result = now.AddDate(0, 0, -n)

	default:
		if wd, ok := weekdays[input]; ok {
			back := (int(now.Weekday()) - int(wd) + 7) % 7
			result = now.AddDate(0, 0, -back)
			break
		}
		result, err = ParseDate(input)
		if err != nil {
			return "", err
		}
	}

	if result.After(now) {
		return "", fmt.Errorf("date is in the future: %s", result.Format(DateLayout))
	}
	return result.Format(DateLayout), nil
}

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// DescribeDate renders date relative to today ("today", "yesterday",
// "3 days ago") or as the weekday and date for anything older than a week.
func DescribeDate(date, today string) string {
	n, err := DaysBetween(date, today)
	if err != nil {
		return date
	}
	switch {
	case n == 0:
		return "today"
	case n == 1:
		return "yesterday"
	case n > 1 && n < 7:
		return fmt.Sprintf("%d days ago", n)
	case n < 0:
		return "in the future"
	}
	d, _ := ParseDate(date)
	return d.Format("Mon, Jan 2 2006")
}
