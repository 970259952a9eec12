package ui

import (
	"fmt"
	"strings"

	"almanac/internal/calendar"

	"github.com/charmbracelet/lipgloss/v2"
)

func (m *Model) viewHelp() string {
	bound := func(action string) string {
		for key, a := range m.config.KeyBindings {
			if a == action {
				return key
			}
		}
		return "-"
	}

	entry := func(action, desc string) string {
		return m.styles.Help.Render(fmt.Sprintf("  %-7s - %s", bound(action), desc))
	}

	help := []string{
		m.styles.Header.Render("Almanac Help"),
		"",
		m.styles.Normal.Render("Navigation:"),
		entry("previous_day", "Previous day"),
		entry("next_day", "Next day"),
		entry("previous_week", "Previous week"),
		entry("next_week", "Next week"),
		entry("previous_period", "Previous period"),
		entry("next_period", "Next period"),
		entry("today", "Jump to today"),
		"",
		m.styles.Normal.Render("Views:"),
		entry("year_view", "Year view"),
		entry("month_view", "Month view"),
		entry("week_view", "Week view"),
		entry("day_view", "Day view"),
		"",
		m.styles.Normal.Render("Events:"),
		entry("new_event", "New event"),
		entry("edit_event", "Edit selected event"),
		entry("delete_event", "Delete selected event"),
		entry("next_event", "Cycle events on day"),
		entry("open_event", "Open selected event"),
		entry("reload", "Reload events file"),
		"",
		entry("help", "Toggle help"),
		entry("quit", "Quit"),
		"",
		m.styles.Help.Render("Press any key to return..."),
	}

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s | %s | Events: %d",
		m.selectedDate().Format(m.config.DateFormat),
		m.state.CurrentView,
		len(calendar.EventsOnDate(m.state.Events, m.selectedDate())))

	right := "? for help | q to quit"
	if m.message != "" {
		right = m.styles.Message.Render(m.message)
	}

	width := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if width < 0 {
		width = 0
	}

	return m.styles.Help.Render(left) + strings.Repeat(" ", width) + right
}

// truncate shortens s to width cells, appending an ellipsis when text
// is dropped.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// pad right-pads s with spaces to exactly width cells.
func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
