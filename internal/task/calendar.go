package task

import (
	"time"

	"github.com/MikeBiancalana/streak/internal/config"
)

// Day is one cell of a month grid
type Day struct {
	Date            string `json:"date"`
	Day             int    `json:"day"`
	Completed       int    `json:"completed"`       // tasks completed on this date
	StreakContinues bool   `json:"streakContinues"` // some task completed both this date and the day before
	Future          bool   `json:"future"`          // after today, not selectable
	Today           bool   `json:"today"`
}

// MonthGrid holds the days of one month plus the leading blank cells
// needed to align the first day under its weekday column.
type MonthGrid struct {
	Year      int              `json:"year"`
	Month     time.Month       `json:"month"`
	Offset    int              `json:"offset"`
	WeekStart config.WeekStart `json:"weekStart"`
	Days      []Day            `json:"days"`
}

// Month builds the calendar grid for year/month. today is the injected
// reference date used for the Future and Today flags.
func Month(tasks []Task, year int, month time.Month, today string, weekStart config.WeekStart) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	offset := int(first.Weekday())
	if weekStart == config.WeekStartMonday {
		offset = (offset + 6) % 7
	}

	sets := make([]map[string]struct{}, len(tasks))
	for i, t := range tasks {
		set := make(map[string]struct{}, len(t.CompletedDates))
		for _, d := range t.CompletedDates {
			set[d] = struct{}{}
		}
		sets[i] = set
	}

	grid := MonthGrid{
		Year:      first.Year(),
		Month:     first.Month(),
		Offset:    offset,
		WeekStart: weekStart,
		Days:      make([]Day, 0, daysInMonth),
	}

	for n := 1; n <= daysInMonth; n++ {
		day := first.AddDate(0, 0, n-1)
		date := day.Format(DateLayout)
		prev := day.AddDate(0, 0, -1).Format(DateLayout)

		cell := Day{
			Date:   date,
			Day:    n,
			Future: today != "" && date > today,
			Today:  date == today,
		}
		for _, set := range sets {
			if _, ok := set[date]; !ok {
				continue
			}
			cell.Completed++
			if _, ok := set[prev]; ok {
				cell.StreakContinues = true
			}
		}
		grid.Days = append(grid.Days, cell)
	}

	return grid
}

// TaskMonth builds the grid for a single task's detail calendar
func TaskMonth(t Task, year int, month time.Month, today string, weekStart config.WeekStart) MonthGrid {
	return Month([]Task{t}, year, month, today, weekStart)
}

// Weeks splits the grid into rows of seven cells; blanks are nil.
func (g MonthGrid) Weeks() [][]*Day {
	cells := make([]*Day, g.Offset, g.Offset+len(g.Days))
	for i := range g.Days {
		cells = append(cells, &g.Days[i])
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}

	weeks := make([][]*Day, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// Lookup returns the cell for date, or nil if date is outside the month
func (g MonthGrid) Lookup(date string) *Day {
	for i := range g.Days {
		if g.Days[i].Date == date {
			return &g.Days[i]
		}
	}
	return nil
}

// WeekdayHeaders returns two-letter weekday labels in grid column order
func (g MonthGrid) WeekdayHeaders() []string {
	headers := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	if g.WeekStart == config.WeekStartMonday {
		return append(headers[1:], headers[0])
	}
	return headers
}

// ShiftMonth returns the year/month n months away from year/month
func ShiftMonth(year int, month time.Month, n int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return t.Year(), t.Month()
}
