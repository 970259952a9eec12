package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a date field from the event form. Accepts ISO dates
// (2024-06-12), US dates (6/12/2024), and the shortcuts "today" and
// "tomorrow" resolved against now.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	switch strings.ToLower(input) {
	case "today":
		return startOfDay(now), nil
	case "tomorrow":
		return startOfDay(now).AddDate(0, 0, 1), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", input, now.Location()); err == nil {
		return t, nil
	}

	// MM/DD/YYYY or MM-DD-YYYY
	dateRe := regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	if matches := dateRe.FindStringSubmatch(input); matches != nil {
		month, _ := strconv.Atoi(matches[1])
		day, _ := strconv.Atoi(matches[2])
		year, _ := strconv.Atoi(matches[3])

		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, fmt.Errorf("invalid date: %s", input)
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), nil
	}

	return time.Time{}, fmt.Errorf("invalid date: %s", input)
}

// ParseClock parses a time-of-day field. Accepts 24-hour times (14:00),
// 12-hour times with am/pm (2pm, 2:30pm), and the named times noon and
// midnight.
func ParseClock(input string) (hour, minute int, err error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return 0, 0, fmt.Errorf("empty time")
	}

	switch input {
	case "noon":
		return 12, 0, nil
	case "midnight":
		return 0, 0, nil
	}

	timeRe := regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
	matches := timeRe.FindStringSubmatch(input)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid time: %s", input)
	}

	hour, _ = strconv.Atoi(matches[1])
	if matches[2] != "" {
		minute, _ = strconv.Atoi(matches[2])
	}

	// Handle AM/PM
	switch matches[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time: %s", input)
	}
	return hour, minute, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
