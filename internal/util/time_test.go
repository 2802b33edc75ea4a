package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthEnd(t *testing.T) {
	cases := []struct {
		name  string
		in    time.Time
		wantD int
	}{
		{"february", date(2023, time.February, 1), 28},
		{"february leap", date(2024, time.February, 15), 29},
		{"century non-leap", date(1900, time.February, 1), 28},
		{"april", date(2023, time.April, 30), 30},
		{"december", date(2023, time.December, 5), 31},
		{"january", date(2024, time.January, 31), 31},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			end := MonthEnd(c.in)
			assert.Equal(t, c.wantD, end.Day())
			assert.Equal(t, c.in.Month(), end.Month())
			assert.Equal(t, c.in.Year(), end.Year())
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(date(2023, time.February, 1)))
	assert.Equal(t, 29, DaysInMonth(date(2024, time.February, 1)))
	assert.Equal(t, 31, DaysInMonth(date(2023, time.July, 12)))
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(time.Date(2023, time.June, 14, 13, 37, 42, 0, time.UTC))

	assert.Equal(t, date(2023, time.June, 14), start)
	assert.Equal(t, time.Date(2023, time.June, 14, 23, 59, 59, 999999000, time.UTC), end)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(date(2024, time.February, 10))

	assert.Equal(t, date(2024, time.February, 1), start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999999000, time.UTC), end)
}

func TestDayFloorNormalizesZone(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	// 00:30 at UTC+2 is still the previous day in UTC
	floored := DayFloor(time.Date(2023, time.June, 14, 0, 30, 0, 0, loc))

	assert.Equal(t, date(2023, time.June, 13), floored)
}
