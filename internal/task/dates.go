package task

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used everywhere in the store
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned for strings that are not YYYY-MM-DD calendar days
var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a YYYY-MM-DD string as a naive UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate renders the calendar day of t, ignoring its location.
func FormatDate(t time.Time) string {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// IsValidDate reports whether s parses as YYYY-MM-DD
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// AddDays shifts a date string by n days
func AddDays(date string, n int) (string, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, n).Format(DateLayout), nil
}

// DaysBetween returns the whole-day difference to - from
func DaysBetween(from, to string) (int, error) {
	a, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	b, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	// both are UTC midnights; Sub would saturate past ~292 years
	return int((b.Unix() - a.Unix()) / 86400), nil
}
