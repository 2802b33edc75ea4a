package util

import "time"

// DayFloor truncates t to midnight of its UTC calendar day.
func DayFloor(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the first and last instant of t's UTC calendar day.
// The end bound carries microsecond resolution to stay inclusive of every
// frame timestamp recorded within the day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := DayFloor(t)
	return start, start.AddDate(0, 0, 1).Add(-time.Microsecond)
}

// MonthStart returns midnight UTC of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns midnight UTC of the last day of t's month. Day 28 plus
// four days always lands in the following month, whose first day minus one
// day is the last day of t's month, leap years included.
func MonthEnd(t time.Time) time.Time {
	t = t.UTC()
	pivot := time.Date(t.Year(), t.Month(), 28, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 4)
	firstOfNext := time.Date(pivot.Year(), pivot.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1)
}

// MonthBounds returns the first instant of the first day and the last
// instant of the last day of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	_, end := DayBounds(MonthEnd(t))
	return MonthStart(t), end
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	return MonthEnd(t).Day()
}
