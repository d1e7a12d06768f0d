package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "2024-1-1", "2024-02-30", "yesterday", "2024-01-01T00:00:00Z"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDate(in)
			assert.ErrorIs(t, err, ErrInvalidDate)
			assert.False(t, IsValidDate(in))
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2023-03-01", -1, "2023-02-28"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-03-10", 1, "2024-03-11"}, // US DST start has no effect on naive dates
	}
	for _, tt := range tests {
		got, err := AddDays(tt.date, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %+d", tt.date, tt.n)
	}
}

func TestDaysBetween(t *testing.T) {
	n, err := DaysBetween("2024-01-01", "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	n, err = DaysBetween("2024-01-10", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, -9, n)

	n, err = DaysBetween("1500-01-01", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 191387, n)

	_, err = DaysBetween("bad", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFormatDate_IgnoresLocation(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	ts := time.Date(2024, 6, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, "2024-06-01", FormatDate(ts))
}
