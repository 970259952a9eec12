package ui

import (
	"fmt"
	"strings"
	"time"

	"almanac/internal/calendar"
	"almanac/internal/parser"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"
)

// Form field order. The text fields come first so they can share the
// input editing code; the all-day toggle and color picker follow.
const (
	fieldTitle = iota
	fieldDescription
	fieldStartDate
	fieldStartTime
	fieldEndDate
	fieldEndTime
	fieldAllDay
	fieldColor
	fieldCount

	textFieldCount = fieldAllDay
)

var fieldLabels = [textFieldCount]string{
	"Title",
	"Description",
	"Start date",
	"Start time",
	"End date",
	"End time",
}

type eventForm struct {
	editingID string
	inputs    [textFieldCount]string
	allDay    bool
	color     calendar.Color
	focus     int
	errMsg    string
}

// newEventForm prefills a blank form for the selected date with a
// one-hour slot starting at the next full hour.
func (m *Model) newEventForm() *eventForm {
	date := m.selectedDate()
	start := time.Date(date.Year(), date.Month(), date.Day(),
		m.clock.Hour(), 0, 0, 0, date.Location()).Add(time.Hour)
	end := start.Add(time.Hour)

	f := &eventForm{color: calendar.ColorBlue}
	f.inputs[fieldStartDate] = start.Format("2006-01-02")
	f.inputs[fieldStartTime] = start.Format("15:04")
	f.inputs[fieldEndDate] = end.Format("2006-01-02")
	f.inputs[fieldEndTime] = end.Format("15:04")
	return f
}

func formForEvent(ev calendar.Event) *eventForm {
	f := &eventForm{
		editingID: ev.ID,
		allDay:    ev.AllDay,
		color:     ev.Color,
	}
	f.inputs[fieldTitle] = ev.Title
	f.inputs[fieldDescription] = ev.Description
	f.inputs[fieldStartDate] = ev.Start.Format("2006-01-02")
	f.inputs[fieldStartTime] = ev.Start.Format("15:04")
	f.inputs[fieldEndDate] = ev.End.Format("2006-01-02")
	f.inputs[fieldEndTime] = ev.End.Format("15:04")
	return f
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form

	switch msg.Type {
	case tea.KeyEscape:
		m.closeForm()
		return m, nil

	case tea.KeyEnter:
		return m.submitForm()

	case tea.KeyTab, tea.KeyDown:
		f.focus = (f.focus + 1) % fieldCount
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		f.focus = (f.focus + fieldCount - 1) % fieldCount
		return m, nil

	case tea.KeyLeft:
		if f.focus == fieldColor {
			f.color = cycleColor(f.color, -1)
		}
		return m, nil

	case tea.KeyRight:
		if f.focus == fieldColor {
			f.color = cycleColor(f.color, 1)
		}
		return m, nil

	case tea.KeySpace:
		switch f.focus {
		case fieldAllDay:
			f.allDay = !f.allDay
		case fieldColor:
			f.color = cycleColor(f.color, 1)
		default:
			f.inputs[f.focus] += " "
		}
		return m, nil

	case tea.KeyBackspace:
		if f.focus < textFieldCount {
			if in := f.inputs[f.focus]; in != "" {
				f.inputs[f.focus] = in[:len(in)-1]
			}
		}
		return m, nil

	case tea.KeyRunes:
		if f.focus < textFieldCount {
			f.inputs[f.focus] += string(msg.Runes)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) closeForm() {
	m.form = nil
	m.dispatch(calendar.CloseEventModal{})
}

func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form

	data, err := f.buildEventData(m.clock)
	if err != nil {
		f.errMsg = err.Error()
		return m, nil
	}

	if f.editingID != "" {
		m.dispatch(calendar.UpdateEvent{Event: data.Build(f.editingID)})
	} else {
		m.dispatch(calendar.AddEvent{Data: data})
	}
	m.form = nil

	if f.editingID != "" {
		return m, m.showMessage("Event updated")
	}
	return m, m.showMessage("Event added")
}

func (f *eventForm) buildEventData(now time.Time) (calendar.EventData, error) {
	var data calendar.EventData

	title := strings.TrimSpace(f.inputs[fieldTitle])
	if title == "" {
		return data, fmt.Errorf("title is required")
	}

	startDay, err := parser.ParseDate(f.inputs[fieldStartDate], now)
	if err != nil {
		return data, fmt.Errorf("start date: %w", err)
	}
	endDay, err := parser.ParseDate(f.inputs[fieldEndDate], now)
	if err != nil {
		return data, fmt.Errorf("end date: %w", err)
	}

	start := startDay
	end := endDay
	if !f.allDay {
		h, min, err := parser.ParseClock(f.inputs[fieldStartTime])
		if err != nil {
			return data, fmt.Errorf("start time: %w", err)
		}
		start = startDay.Add(time.Duration(h)*time.Hour + time.Duration(min)*time.Minute)

		h, min, err = parser.ParseClock(f.inputs[fieldEndTime])
		if err != nil {
			return data, fmt.Errorf("end time: %w", err)
		}
		end = endDay.Add(time.Duration(h)*time.Hour + time.Duration(min)*time.Minute)

		if !end.After(start) {
			return data, fmt.Errorf("end must be after start")
		}
	} else if endDay.Before(startDay) {
		return data, fmt.Errorf("end must not be before start")
	}

	return calendar.EventData{
		Title:       title,
		Description: strings.TrimSpace(f.inputs[fieldDescription]),
		Start:       start,
		End:         end,
		Color:       f.color,
		AllDay:      f.allDay,
	}, nil
}

func cycleColor(c calendar.Color, dir int) calendar.Color {
	for i, known := range calendar.Colors {
		if known == c {
			n := len(calendar.Colors)
			return calendar.Colors[(i+dir+n)%n]
		}
	}
	return calendar.Colors[0]
}

func (m *Model) viewForm() string {
	f := m.form

	title := "New Event"
	if f.editingID != "" {
		title = "Edit Event"
	}

	sections := []string{m.styles.Header.Render(title), ""}

	for i := 0; i < textFieldCount; i++ {
		if f.allDay && (i == fieldStartTime || i == fieldEndTime) {
			continue
		}

		label := fmt.Sprintf("%-12s", fieldLabels[i]+":")
		value := f.inputs[i]
		if i == f.focus {
			value += "█"
			sections = append(sections, m.styles.Normal.Render(label)+m.styles.Selected.Render(value))
		} else {
			sections = append(sections, m.styles.Normal.Render(label)+value)
		}
	}

	allDay := "[ ]"
	if f.allDay {
		allDay = "[x]"
	}
	line := fmt.Sprintf("%-12s%s", "All day:", allDay)
	if f.focus == fieldAllDay {
		sections = append(sections, m.styles.Selected.Render(line))
	} else {
		sections = append(sections, m.styles.Normal.Render(line))
	}

	colorLine := fmt.Sprintf("%-12s", "Color:") + eventStyle(f.color).Render("■ "+string(f.color))
	if f.focus == fieldColor {
		colorLine += m.styles.Selected.Render(" ◄ ►")
	}
	sections = append(sections, colorLine)

	if f.errMsg != "" {
		sections = append(sections, "", m.styles.Error.Render(f.errMsg))
	}

	sections = append(sections, "",
		m.styles.Help.Render("Tab to move, Space to toggle, Enter to save, Esc to cancel"))

	return m.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
