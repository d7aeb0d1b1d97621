package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2025, time.January))
	assert.Equal(t, 28, DaysIn(2025, time.February))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 30, DaysIn(2025, time.April))
	assert.Equal(t, 31, DaysIn(2025, time.December))
}

func TestClampedDate(t *testing.T) {
	cases := []struct {
		name     string
		year     int
		month    time.Month
		day      int
		expected string
	}{
		{"valid", 2025, time.March, 5, "2025-03-05"},
		{"31 in april", 2025, time.April, 31, "2025-04-30"},
		{"31 in february", 2025, time.February, 31, "2025-02-28"},
		{"30 in leap february", 2024, time.February, 30, "2024-02-29"},
		{"zero day", 2025, time.March, 0, "2025-03-01"},
		{"month overflow", 2025, time.Month(14), 31, "2026-02-28"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClampedDate(tc.year, tc.month, tc.day).Format(DateFormat))
		})
	}
}

func TestAddMonths(t *testing.T) {
	jan31 := NewDate(2025, time.January, 31)
	assert.Equal(t, "2025-01-31", AddMonths(jan31, 0).Format(DateFormat))
	assert.Equal(t, "2025-02-28", AddMonths(jan31, 1).Format(DateFormat))
	assert.Equal(t, "2025-03-31", AddMonths(jan31, 2).Format(DateFormat))
	assert.Equal(t, "2025-04-30", AddMonths(jan31, 3).Format(DateFormat))
	assert.Equal(t, "2026-01-31", AddMonths(jan31, 12).Format(DateFormat))

	nov15 := NewDate(2025, time.November, 15)
	assert.Equal(t, "2026-02-15", AddMonths(nov15, 3).Format(DateFormat))
}

func TestMonthWindow(t *testing.T) {
	first, last := MonthWindow(NewDate(2024, time.February, 17))
	assert.Equal(t, "2024-02-01", first.Format(DateFormat))
	assert.Equal(t, "2024-02-29", last.Format(DateFormat))

	first, last = MonthWindow(time.Date(2025, time.June, 30, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2025-06-01", first.Format(DateFormat))
	assert.Equal(t, "2025-06-30", last.Format(DateFormat))
}

func TestInWindow(t *testing.T) {
	first, last := MonthWindow(NewDate(2025, time.March, 1))
	assert.True(t, InWindow(NewDate(2025, time.March, 1), first, last))
	assert.True(t, InWindow(NewDate(2025, time.March, 31), first, last))
	assert.True(t, InWindow(time.Date(2025, time.March, 31, 18, 0, 0, 0, time.UTC), first, last))
	assert.False(t, InWindow(NewDate(2025, time.April, 1), first, last))
	assert.False(t, InWindow(NewDate(2025, time.February, 28), first, last))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-05")
	require.NoError(t, err)
	assert.True(t, d.Equal(NewDate(2025, time.March, 5)))

	_, err = ParseDate("05/03/2025")
	assert.Error(t, err)
}
