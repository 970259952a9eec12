package calendar

import (
	"fmt"
	"time"
)

// StartOfDay returns midnight at the beginning of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// MonthStart returns the first day of t's month at day granularity.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of t's month at day granularity.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// MonthGridDays returns the minimal set of whole Sunday-to-Saturday weeks
// covering every day of anchor's month, padded with adjacent-month days on
// both ends. Only anchor's year and month matter; its day and time of day
// are ignored.
func MonthGridDays(anchor time.Time) []time.Time {
	monthStart := MonthStart(anchor)
	monthEnd := MonthEnd(anchor)

	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, int(time.Saturday-monthEnd.Weekday()))

	var days []time.Time
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WeekRange returns the Sunday and Saturday of the week containing anchor,
// both at day granularity.
func WeekRange(anchor time.Time) (start, end time.Time) {
	start = StartOfDay(anchor).AddDate(0, 0, -int(anchor.Weekday()))
	end = start.AddDate(0, 0, 6)
	return start, end
}

// DaysInMonth returns the number of days in the given month, applying the
// Gregorian leap-year rule for February. An out-of-range month is a caller
// bug and panics rather than being silently clamped.
func DaysInMonth(year int, month time.Month) int {
	checkMonth(month)
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, -1).Day()
}

// FirstWeekdayOfMonth returns the weekday of the first day of the given
// month.
func FirstWeekdayOfMonth(year int, month time.Month) time.Weekday {
	checkMonth(month)
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()
}

func checkMonth(month time.Month) {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("calendar: month out of range: %d", int(month)))
	}
}
