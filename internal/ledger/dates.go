package ledger

import "time"

// DateFormat is the wire and storage format of a calendar day.
const DateFormat = "2006-01-02"

// NewDate returns the calendar day at midnight UTC. Out of range values are
// normalized the way time.Date does it.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day truncates t to its calendar day, keeping the wall clock date of t.
func Day(t time.Time) time.Time {
	return NewDate(t.Date())
}

// ParseDate parses a YYYY-MM-DD day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return NewDate(year, month+1, 0).Day()
}

// ClampedDate returns year-month-day, with day clamped into [1, DaysIn(year, month)].
// Day 31 in April becomes April 30, day 30 in February becomes the 28th or 29th.
func ClampedDate(year int, month time.Month, day int) time.Time {
	// normalize month overflow first so DaysIn sees a real month
	first := NewDate(year, month, 1)
	year, month = first.Year(), first.Month()

	if day < 1 {
		day = 1
	}
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return NewDate(year, month, day)
}

// AddMonths moves date by n calendar months keeping the day of month, clamped
// to the last day of the target month. Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	return ClampedDate(y, m+time.Month(n), d)
}

// MonthWindow returns the first and last calendar day of the month containing date.
func MonthWindow(date time.Time) (first, last time.Time) {
	y, m, _ := date.Date()
	return NewDate(y, m, 1), NewDate(y, m, DaysIn(y, m))
}

// InMonth reports whether date falls in the given month of year.
func InMonth(date time.Time, year int, month time.Month) bool {
	y, m, _ := date.Date()
	return y == year && m == month
}

// InWindow reports whether date lies within [first, last] inclusive, by calendar day.
func InWindow(date, first, last time.Time) bool {
	d := Day(date)
	return !d.Before(first) && !d.After(last)
}
