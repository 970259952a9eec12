package calendar

import "time"

// View is the active display granularity. It determines both the visible
// date range and the step size of previous/next navigation.
type View int

const (
	ViewYear View = iota
	ViewMonth
	ViewWeek
	ViewDay
)

func (v View) String() string {
	switch v {
	case ViewYear:
		return "year"
	case ViewMonth:
		return "month"
	case ViewWeek:
		return "week"
	case ViewDay:
		return "day"
	default:
		return "unknown"
	}
}

// ParseView maps a view name to its View, defaulting to month.
func ParseView(s string) View {
	switch s {
	case "year":
		return ViewYear
	case "week":
		return ViewWeek
	case "day":
		return ViewDay
	default:
		return ViewMonth
	}
}

// State is the complete calendar state. The machine owns the event list;
// everything else reads it and derives values without mutating.
//
// EditingID holds the id of the event being edited rather than a copy of
// the event, so the authoritative record always lives in Events; resolve
// it at use time with EditingEvent.
type State struct {
	CurrentDate  time.Time
	CurrentView  View
	Events       []Event
	SelectedDate *time.Time
	ModalOpen    bool
	EditingID    string
}

// EditingEvent resolves EditingID against the event list. ok is false in
// create mode or when the id no longer exists.
func (s State) EditingEvent() (Event, bool) {
	if s.EditingID == "" {
		return Event{}, false
	}
	return EventByID(s.Events, s.EditingID)
}

// Action is a request to transition the calendar state.
type Action interface{ isAction() }

type SetView struct{ View View }

type SetCurrentDate struct{ Date time.Time }

type NavigateToToday struct{}

type NavigatePrevious struct{}

type NavigateNext struct{}

type AddEvent struct{ Data EventData }

type UpdateEvent struct{ Event Event }

type DeleteEvent struct{ ID string }

// OpenEventModal starts an edit session. An empty EventID means create
// mode.
type OpenEventModal struct{ EventID string }

type CloseEventModal struct{}

type SetSelectedDate struct{ Date *time.Time }

func (SetView) isAction()         {}
func (SetCurrentDate) isAction()  {}
func (NavigateToToday) isAction() {}
func (NavigatePrevious) isAction() {}
func (NavigateNext) isAction()    {}
func (AddEvent) isAction()        {}
func (UpdateEvent) isAction()     {}
func (DeleteEvent) isAction()     {}
func (OpenEventModal) isAction()  {}
func (CloseEventModal) isAction() {}
func (SetSelectedDate) isAction() {}

// Machine applies actions to calendar state. The clock is injectable so
// NavigateToToday is deterministic under test.
type Machine struct {
	now func() time.Time
}

// Option configures a Machine.
type Option func(*Machine)

// WithNow overrides the machine's time source.
func WithNow(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// NewMachine builds a machine using the real clock unless overridden.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply is a pure reducer: it returns the state after the action without
// mutating its input. Update or delete of an unknown id is a silent no-op
// that still closes the modal; idempotence is preferred over failure
// signaling here since payloads are pre-validated by the form layer.
func (m *Machine) Apply(s State, action Action) State {
	switch a := action.(type) {
	case SetView:
		s.CurrentView = a.View

	case SetCurrentDate:
		s.CurrentDate = a.Date

	case NavigateToToday:
		s.CurrentDate = m.now()

	case NavigatePrevious:
		s.CurrentDate = step(s.CurrentDate, s.CurrentView, -1)

	case NavigateNext:
		s.CurrentDate = step(s.CurrentDate, s.CurrentView, 1)

	case AddEvent:
		events := make([]Event, 0, len(s.Events)+1)
		events = append(events, s.Events...)
		s.Events = append(events, NewEvent(a.Data))
		s.ModalOpen = false
		s.SelectedDate = nil

	case UpdateEvent:
		events := make([]Event, len(s.Events))
		copy(events, s.Events)
		for i := range events {
			if events[i].ID == a.Event.ID {
				events[i] = NormalizeAllDay(a.Event)
			}
		}
		s.Events = events
		s.ModalOpen = false
		s.EditingID = ""

	case DeleteEvent:
		events := make([]Event, 0, len(s.Events))
		for _, ev := range s.Events {
			if ev.ID != a.ID {
				events = append(events, ev)
			}
		}
		s.Events = events
		s.ModalOpen = false
		s.EditingID = ""

	case OpenEventModal:
		s.ModalOpen = true
		s.EditingID = a.EventID

	case CloseEventModal:
		s.ModalOpen = false
		s.EditingID = ""
		s.SelectedDate = nil

	case SetSelectedDate:
		s.SelectedDate = a.Date
	}

	return s
}

// step moves the anchor date by one unit of the active granularity.
// AddDate handles month and year rollover, so January minus one month
// lands in the previous December.
func step(date time.Time, view View, dir int) time.Time {
	switch view {
	case ViewYear:
		return date.AddDate(dir, 0, 0)
	case ViewMonth:
		return date.AddDate(0, dir, 0)
	case ViewWeek:
		return date.AddDate(0, 0, 7*dir)
	default:
		return date.AddDate(0, 0, dir)
	}
}
