package ui

import (
	"fmt"
	"time"

	"almanac/internal/calendar"
	"almanac/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"
)

// FileChangedMsg is sent from outside the program when the events file
// changes on disk.
type FileChangedMsg struct{}

type tickMsg time.Time
type messageTimeoutMsg struct{}
type eventsReloadedMsg struct {
	events []calendar.Event
	err    error
}

// ReloadFunc re-reads the event source and returns the fresh event set.
type ReloadFunc func() ([]calendar.Event, error)

type Model struct {
	config  *config.Config
	machine *calendar.Machine
	state   calendar.State

	now    func() time.Time
	clock  time.Time
	reload ReloadFunc

	// UI state
	width         int
	height        int
	helpVisible   bool
	message       string
	pendingDelete string
	eventCursor   int

	form *eventForm

	styles Styles
}

type ModelOption func(*Model)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// WithReload installs the function used by the reload key and by
// FileChangedMsg to re-read events from disk.
func WithReload(fn ReloadFunc) ModelOption {
	return func(m *Model) { m.reload = fn }
}

func NewModel(cfg *config.Config, events []calendar.Event, opts ...ModelOption) *Model {
	m := &Model{
		config: cfg,
		now:    time.Now,
		styles: StylesFromConfig(cfg),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.machine = calendar.NewMachine(calendar.WithNow(m.now))
	m.clock = m.now()

	m.state = calendar.State{
		CurrentDate: m.clock,
		CurrentView: calendar.ParseView(cfg.StartupView),
		Events:      events,
	}

	return m
}

// State exposes the current calendar state, for tests.
func (m *Model) State() calendar.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.tickCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		m.clock = time.Time(msg)
		return m, m.tickCmd()

	case FileChangedMsg:
		return m, m.reloadCmd()

	case eventsReloadedMsg:
		if msg.err != nil {
			return m, m.showMessage(fmt.Sprintf("Reload failed: %v", msg.err))
		}
		m.state.Events = msg.events
		return m, m.showMessage(fmt.Sprintf("Loaded %d events", len(msg.events)))

	case messageTimeoutMsg:
		m.message = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.form != nil {
		return m.viewForm()
	}
	if m.helpVisible {
		return m.viewHelp()
	}

	var body string
	switch m.state.CurrentView {
	case calendar.ViewYear:
		body = m.viewYear()
	case calendar.ViewWeek:
		body = m.viewWeek()
	case calendar.ViewDay:
		body = m.viewDay()
	default:
		body = m.viewMonth()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.form != nil {
		return m.handleFormKeys(msg)
	}

	if m.pendingDelete != "" {
		id := m.pendingDelete
		m.pendingDelete = ""
		if key == "y" || key == "Y" {
			m.dispatch(calendar.DeleteEvent{ID: id})
			m.eventCursor = 0
			return m, m.showMessage("Event deleted")
		}
		return m, m.showMessage("Delete cancelled")
	}

	if m.helpVisible {
		m.helpVisible = false
		return m, nil
	}

	// Arrow keys share bindings with hjkl.
	switch key {
	case "left":
		key = "h"
	case "right":
		key = "l"
	case "down":
		key = "j"
	case "up":
		key = "k"
	}

	switch m.config.KeyBindings[key] {
	case "quit":
		return m, tea.Quit

	case "help":
		m.helpVisible = true

	case "today":
		m.dispatch(calendar.NavigateToToday{})
		m.eventCursor = 0

	case "reload":
		return m, m.reloadCmd()

	case "new_event":
		m.dispatch(calendar.OpenEventModal{})
		m.form = m.newEventForm()

	case "edit_event", "open_event":
		if ev, ok := m.cursorEvent(); ok {
			m.dispatch(calendar.OpenEventModal{EventID: ev.ID})
			m.form = formForEvent(ev)
		} else {
			return m, m.showMessage("No event selected")
		}

	case "delete_event":
		ev, ok := m.cursorEvent()
		if !ok {
			return m, m.showMessage("No event selected")
		}
		if m.config.ConfirmDelete {
			m.pendingDelete = ev.ID
			m.message = fmt.Sprintf("Delete %q? (y/n)", ev.Title)
			return m, nil
		}
		m.dispatch(calendar.DeleteEvent{ID: ev.ID})
		m.eventCursor = 0
		return m, m.showMessage("Event deleted")

	case "previous_day":
		m.moveSelection(-1)
	case "next_day":
		m.moveSelection(1)
	case "previous_week":
		m.moveSelection(-7)
	case "next_week":
		m.moveSelection(7)

	case "previous_period":
		m.dispatch(calendar.NavigatePrevious{})
		m.eventCursor = 0
	case "next_period":
		m.dispatch(calendar.NavigateNext{})
		m.eventCursor = 0

	case "year_view":
		m.dispatch(calendar.SetView{View: calendar.ViewYear})
	case "month_view":
		m.dispatch(calendar.SetView{View: calendar.ViewMonth})
	case "week_view":
		m.dispatch(calendar.SetView{View: calendar.ViewWeek})
	case "day_view":
		m.dispatch(calendar.SetView{View: calendar.ViewDay})

	case "next_event":
		if n := len(calendar.EventsOnDate(m.state.Events, m.selectedDate())); n > 0 {
			m.eventCursor = (m.eventCursor + 1) % n
		}
	}

	return m, nil
}

func (m *Model) dispatch(a calendar.Action) {
	m.state = m.machine.Apply(m.state, a)
}

func (m *Model) selectedDate() time.Time {
	if m.state.SelectedDate != nil {
		return *m.state.SelectedDate
	}
	return m.state.CurrentDate
}

func (m *Model) moveSelection(days int) {
	d := m.selectedDate().AddDate(0, 0, days)
	m.dispatch(calendar.SetSelectedDate{Date: &d})
	m.dispatch(calendar.SetCurrentDate{Date: d})
	m.eventCursor = 0
}

// cursorEvent returns the event under the cursor on the selected date.
func (m *Model) cursorEvent() (calendar.Event, bool) {
	events := calendar.EventsOnDate(m.state.Events, m.selectedDate())
	if len(events) == 0 {
		return calendar.Event{}, false
	}
	return events[m.eventCursor%len(events)], true
}

func (m *Model) showMessage(msg string) tea.Cmd {
	m.message = msg
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return messageTimeoutMsg{}
	})
}

func (m *Model) reloadCmd() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	reload := m.reload
	return func() tea.Msg {
		events, err := reload()
		return eventsReloadedMsg{events: events, err: err}
	}
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.config.RefreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
