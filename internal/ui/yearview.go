package ui

import (
	"fmt"
	"time"

	"almanac/internal/calendar"

	"github.com/charmbracelet/lipgloss/v2"
)

const miniMonthsPerRow = 3

func (m *Model) viewYear() string {
	year := m.state.CurrentDate.Year()

	var rows []string
	rows = append(rows, m.styles.Header.Render(fmt.Sprintf("%d", year)))

	for month := time.January; month <= time.December; month += miniMonthsPerRow {
		var minis []string
		for i := 0; i < miniMonthsPerRow; i++ {
			minis = append(minis, m.renderMiniMonth(year, month+time.Month(i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, minis...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderMiniMonth renders one month of the year grid, Sunday first.
// Days carrying events render in the first event's color.
func (m *Model) renderMiniMonth(year int, month time.Month) string {
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, m.state.CurrentDate.Location())

	var lines []string
	lines = append(lines, m.styles.Normal.Render(anchor.Format("January")))
	lines = append(lines, m.styles.Help.Render("Su Mo Tu We Th Fr Sa"))

	days := calendar.MonthGridDays(anchor)
	selected := m.selectedDate()

	for week := 0; week < len(days)/7; week++ {
		line := ""
		for weekday := 0; weekday < 7; weekday++ {
			day := days[week*7+weekday]
			dayStr := fmt.Sprintf("%2d", day.Day())

			switch {
			case day.Month() != month:
				dayStr = "  "
			case calendar.SameDay(day, selected):
				dayStr = m.styles.Selected.Render(dayStr)
			case calendar.SameDay(day, m.clock):
				dayStr = m.styles.Today.Render(dayStr)
			default:
				if events := calendar.EventsOnDate(m.state.Events, day); len(events) > 0 {
					dayStr = eventStyle(events[0].Color).Render(dayStr)
				} else if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
					dayStr = m.styles.Weekend.Render(dayStr)
				} else {
					dayStr = m.styles.Normal.Render(dayStr)
				}
			}

			line += dayStr
			if weekday < 6 {
				line += " "
			}
		}
		lines = append(lines, line)
	}

	return m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
