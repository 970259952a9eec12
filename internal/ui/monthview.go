package ui

import (
	"fmt"
	"strings"
	"time"

	"almanac/internal/calendar"

	"github.com/charmbracelet/lipgloss/v2"
)

const maxEventLinesPerCell = 3

func (m *Model) viewMonth() string {
	cellWidth := (m.width - 1) / 7
	if cellWidth < 8 {
		cellWidth = 8
	}

	var lines []string

	header := m.state.CurrentDate.Format("January 2006")
	lines = append(lines, m.styles.Header.Render(header))

	var headerRow strings.Builder
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		headerRow.WriteString(pad(name, cellWidth))
	}
	lines = append(lines, m.styles.Normal.Render(headerRow.String()))

	days := calendar.MonthGridDays(m.state.CurrentDate)
	for week := 0; week < len(days)/7; week++ {
		var cells []string
		for weekday := 0; weekday < 7; weekday++ {
			cells = append(cells, m.renderMonthCell(days[week*7+weekday], cellWidth))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderMonthCell renders one day of the month grid: the styled day
// number, up to three event titles, and an overflow count.
func (m *Model) renderMonthCell(day time.Time, cellWidth int) string {
	selected := m.selectedDate()
	inMonth := day.Month() == m.state.CurrentDate.Month()

	dayStr := fmt.Sprintf("%2d", day.Day())
	switch {
	case calendar.SameDay(day, selected):
		dayStr = m.styles.Selected.Render(dayStr)
	case calendar.SameDay(day, m.clock):
		dayStr = m.styles.Today.Render(dayStr)
	case !inMonth:
		dayStr = m.styles.Dimmed.Render(dayStr)
	case day.Weekday() == time.Saturday || day.Weekday() == time.Sunday:
		dayStr = m.styles.Weekend.Render(dayStr)
	default:
		dayStr = m.styles.Normal.Render(dayStr)
	}

	cellLines := []string{dayStr + strings.Repeat(" ", cellWidth-2)}

	events := calendar.EventsOnDate(m.state.Events, day)
	shown := len(events)
	if shown > maxEventLinesPerCell {
		shown = maxEventLinesPerCell
	}

	for _, ev := range events[:shown] {
		title := truncate(ev.Title, cellWidth-1)
		style := eventStyle(ev.Color)
		if !inMonth {
			style = m.styles.Dimmed
		}
		cellLines = append(cellLines, style.Render(pad(title, cellWidth)))
	}

	if overflow := len(events) - shown; overflow > 0 {
		cellLines = append(cellLines,
			m.styles.Help.Render(pad(fmt.Sprintf("+%d more", overflow), cellWidth)))
	}

	for len(cellLines) < maxEventLinesPerCell+2 {
		cellLines = append(cellLines, strings.Repeat(" ", cellWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cellLines...)
}
