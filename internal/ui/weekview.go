package ui

import (
	"fmt"
	"strings"
	"time"

	"almanac/internal/calendar"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// scheduleCell is one hour slot of one column in a timed schedule.
type scheduleCell struct {
	text     string
	color    calendar.Color
	occupied bool
}

func (m *Model) viewWeek() string {
	weekStart, weekEnd := calendar.WeekRange(m.state.CurrentDate)

	// Column geometry: one time gutter plus seven day columns.
	xs := make([]int, 9)
	for day := 0; day < 7; day++ {
		left, width := calendar.WeekColumnPosition(day, 8, 1)
		xs[day+1] = int(left * float64(m.width) / 100)
		xs[day+2] = int((left + width) * float64(m.width) / 100)
	}
	timeColWidth := xs[1]
	if timeColWidth < 6 {
		timeColWidth = 6
	}

	dayWidth := func(day int) int {
		w := xs[day+2] - xs[day+1]
		if w < 8 {
			w = 8
		}
		return w
	}

	var lines []string

	title := fmt.Sprintf("%s - %s",
		weekStart.Format("Jan 2"), weekEnd.Format("Jan 2, 2006"))
	lines = append(lines, m.styles.Header.Render(title))

	// Day-of-week header.
	var header strings.Builder
	header.WriteString(strings.Repeat(" ", timeColWidth))
	for day := 0; day < 7; day++ {
		date := weekStart.AddDate(0, 0, day)
		label := date.Format("Mon 2")
		style := m.styles.Normal
		if calendar.SameDay(date, m.clock) {
			style = m.styles.Today
		} else if calendar.SameDay(date, m.selectedDate()) {
			style = m.styles.Selected
		}
		header.WriteString(style.Render(pad(truncate(label, dayWidth(day)), dayWidth(day))))
	}
	lines = append(lines, header.String())

	// All-day lane above the timed grid.
	var allDayLane strings.Builder
	allDayLane.WriteString(m.styles.Help.Render(pad("all", timeColWidth)))
	laneUsed := false
	for day := 0; day < 7; day++ {
		date := weekStart.AddDate(0, 0, day)
		w := dayWidth(day)
		allDay := calendar.AllDayEvents(calendar.EventsOnDate(m.state.Events, date))
		if len(allDay) == 0 {
			allDayLane.WriteString(strings.Repeat(" ", w))
			continue
		}
		laneUsed = true
		label := allDay[0].Title
		if len(allDay) > 1 {
			label = fmt.Sprintf("%s +%d", label, len(allDay)-1)
		}
		allDayLane.WriteString(eventBlockStyle(allDay[0].Color).Render(pad(truncate(label, w), w)))
	}
	if laneUsed {
		lines = append(lines, allDayLane.String())
	}

	// Timed grid, one row per hour.
	var grid [24][7]scheduleCell
	for day := 0; day < 7; day++ {
		date := weekStart.AddDate(0, 0, day)
		for _, ev := range calendar.TimedEvents(calendar.EventsOnDate(m.state.Events, date)) {
			if !calendar.SameDay(ev.Start, date) {
				continue
			}
			placeEvent(&grid, day, ev)
		}
	}

	nowOffset, nowVisible := calendar.CurrentTimeIndicator(m.clock, weekStart, weekEnd)
	nowRow, nowDay := -1, -1
	if nowVisible {
		nowRow = int(nowOffset) / 60
		nowDay = int(m.clock.Sub(calendar.StartOfDay(weekStart)).Hours() / 24)
	}

	for hour := 0; hour < 24; hour++ {
		var row strings.Builder

		label := fmt.Sprintf("%02d:00", hour)
		if hour == nowRow {
			row.WriteString(m.styles.TimeMark.Render(pad(label, timeColWidth)))
		} else {
			row.WriteString(m.styles.Help.Render(pad(label, timeColWidth)))
		}

		for day := 0; day < 7; day++ {
			w := dayWidth(day)
			cell := grid[hour][day]
			switch {
			case cell.occupied:
				row.WriteString(eventBlockStyle(cell.color).Render(pad(truncate(cell.text, w), w)))
			case hour == nowRow && day == nowDay:
				row.WriteString(m.styles.TimeMark.Render(pad(strings.Repeat("─", w-1), w)))
			default:
				row.WriteString(strings.Repeat(" ", w))
			}
		}
		lines = append(lines, row.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// placeEvent marks the hour rows an event covers in one day column.
// The title goes on the first row; later rows stay blank but colored.
func placeEvent(grid *[24][7]scheduleCell, day int, ev calendar.Event) {
	top, height := calendar.VerticalPosition(ev)

	startRow := int(top) / calendar.PixelsPerHour
	endRow := int(top+height-1) / calendar.PixelsPerHour
	if startRow < 0 {
		startRow = 0
	}
	if endRow > 23 {
		endRow = 23
	}

	for row := startRow; row <= endRow; row++ {
		if grid[row][day].occupied {
			continue
		}
		cell := scheduleCell{color: ev.Color, occupied: true}
		if row == startRow {
			cell.text = fmt.Sprintf("%s %s", ev.Start.Format("15:04"), ev.Title)
		}
		grid[row][day] = cell
	}
}

func (m *Model) viewDay() string {
	date := m.selectedDate()
	events := calendar.EventsOnDate(m.state.Events, date)
	timed := calendar.TimedEvents(events)

	scheduleWidth := m.width * 2 / 3
	if scheduleWidth < 40 {
		scheduleWidth = 40
	}
	detailWidth := m.width - scheduleWidth - 4
	if detailWidth < 30 {
		detailWidth = 30
	}

	schedule := m.renderDaySchedule(date, timed, scheduleWidth)
	details := m.renderDayDetails(date, events, detailWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, schedule, details)
}

func (m *Model) renderDaySchedule(date time.Time, timed []calendar.Event, width int) string {
	const timeColWidth = 6

	columns := calendar.AssignColumns(timed)
	numCols := 1
	for _, col := range columns {
		if col+1 > numCols {
			numCols = col + 1
		}
	}

	subWidth := (width - timeColWidth) / numCols
	if subWidth < 8 {
		subWidth = 8
	}

	var grid [24][calendar.MaxOverlapColumns]scheduleCell
	for _, ev := range timed {
		if !calendar.SameDay(ev.Start, date) {
			continue
		}
		col := columns[ev.ID]
		top, height := calendar.VerticalPosition(ev)
		startRow := int(top) / calendar.PixelsPerHour
		endRow := int(top+height-1) / calendar.PixelsPerHour
		if endRow > 23 {
			endRow = 23
		}
		for row := startRow; row <= endRow; row++ {
			cell := scheduleCell{color: ev.Color, occupied: true}
			if row == startRow {
				cell.text = fmt.Sprintf("%s %s", ev.Start.Format("15:04"), ev.Title)
			}
			grid[row][col] = cell
		}
	}

	var lines []string
	lines = append(lines, m.styles.Header.Render(date.Format("Monday, "+m.config.DateFormat)))

	dayStart := calendar.StartOfDay(date)
	nowOffset, nowVisible := calendar.CurrentTimeIndicator(m.clock, dayStart, calendar.EndOfDay(date))
	nowRow := -1
	if nowVisible {
		nowRow = int(nowOffset) / 60
	}

	for hour := 0; hour < 24; hour++ {
		var row strings.Builder

		label := fmt.Sprintf("%02d:00", hour)
		if hour == nowRow {
			row.WriteString(m.styles.TimeMark.Render(pad(label, timeColWidth)))
		} else {
			row.WriteString(m.styles.Help.Render(pad(label, timeColWidth)))
		}

		for col := 0; col < numCols; col++ {
			cell := grid[hour][col]
			if cell.occupied {
				row.WriteString(eventBlockStyle(cell.color).Render(pad(truncate(cell.text, subWidth), subWidth)))
			} else if hour == nowRow && col == 0 {
				row.WriteString(m.styles.TimeMark.Render(pad(strings.Repeat("─", subWidth-1), subWidth)))
			} else {
				row.WriteString(strings.Repeat(" ", subWidth))
			}
		}
		lines = append(lines, row.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderDayDetails renders the bordered pane listing the day's events
// with wrapped descriptions. The cursor event is highlighted.
func (m *Model) renderDayDetails(date time.Time, events []calendar.Event, width int) string {
	var lines []string
	lines = append(lines, m.styles.Header.Render(date.Format("Jan 2")))

	if len(events) == 0 {
		lines = append(lines, "", m.styles.Help.Render("(no events)"))
	}

	cursor := 0
	if len(events) > 0 {
		cursor = m.eventCursor % len(events)
	}

	for i, ev := range events {
		if i > 0 {
			lines = append(lines, "")
		}

		timeRange := "all day"
		if !ev.AllDay {
			timeRange = fmt.Sprintf("%s - %s",
				ev.Start.Format(m.config.TimeFormat), ev.End.Format(m.config.TimeFormat))
		}

		title := ev.Title
		if i == cursor {
			title = "▸ " + title
			lines = append(lines, m.styles.Selected.Render(title))
		} else {
			lines = append(lines, eventStyle(ev.Color).Render(title))
		}
		lines = append(lines, m.styles.Help.Render(timeRange))

		if ev.Description != "" {
			maxWidth := width - 4
			if maxWidth < 20 {
				maxWidth = 20
			}
			for _, line := range strings.Split(wordwrap.String(ev.Description, maxWidth), "\n") {
				if line != "" {
					lines = append(lines, m.styles.Normal.Render(line))
				}
			}
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.Border.Width(width).Render(content)
}
