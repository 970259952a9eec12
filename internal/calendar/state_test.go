package calendar

import (
	"testing"
	"time"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNavigationStepByView(t *testing.T) {
	anchor := time.Date(2024, 6, 12, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		view   View
		action Action
		want   time.Time
	}{
		{"Year previous", ViewYear, NavigatePrevious{}, anchor.AddDate(-1, 0, 0)},
		{"Year next", ViewYear, NavigateNext{}, anchor.AddDate(1, 0, 0)},
		{"Month previous", ViewMonth, NavigatePrevious{}, anchor.AddDate(0, -1, 0)},
		{"Month next", ViewMonth, NavigateNext{}, anchor.AddDate(0, 1, 0)},
		{"Week previous", ViewWeek, NavigatePrevious{}, anchor.AddDate(0, 0, -7)},
		{"Week next", ViewWeek, NavigateNext{}, anchor.AddDate(0, 0, 7)},
		{"Day previous", ViewDay, NavigatePrevious{}, anchor.AddDate(0, 0, -1)},
		{"Day next", ViewDay, NavigateNext{}, anchor.AddDate(0, 0, 1)},
	}

	m := NewMachine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{CurrentDate: anchor, CurrentView: tt.view}
			s = m.Apply(s, tt.action)
			if !s.CurrentDate.Equal(tt.want) {
				t.Errorf("CurrentDate = %v, want %v", s.CurrentDate, tt.want)
			}
		})
	}
}

func TestNavigationMonthRollover(t *testing.T) {
	m := NewMachine()

	s := State{
		CurrentDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
		CurrentView: ViewMonth,
	}
	s = m.Apply(s, NavigatePrevious{})
	if s.CurrentDate.Month() != time.December || s.CurrentDate.Year() != 2023 {
		t.Errorf("January previous = %v, want December 2023", s.CurrentDate)
	}

	s = State{
		CurrentDate: time.Date(2024, 12, 15, 0, 0, 0, 0, time.Local),
		CurrentView: ViewMonth,
	}
	s = m.Apply(s, NavigateNext{})
	if s.CurrentDate.Month() != time.January || s.CurrentDate.Year() != 2025 {
		t.Errorf("December next = %v, want January 2025", s.CurrentDate)
	}
}

func TestNavigateToToday(t *testing.T) {
	today := time.Date(2024, 6, 12, 9, 30, 0, 0, time.Local)
	m := NewMachine(WithNow(fixedNow(today)))

	s := State{CurrentDate: time.Date(1999, 1, 1, 0, 0, 0, 0, time.Local), CurrentView: ViewMonth}
	s = m.Apply(s, NavigateToToday{})

	if !s.CurrentDate.Equal(today) {
		t.Errorf("CurrentDate = %v, want %v", s.CurrentDate, today)
	}
}

func TestSetViewKeepsCurrentDate(t *testing.T) {
	m := NewMachine()
	anchor := time.Date(2024, 6, 12, 0, 0, 0, 0, time.Local)

	s := State{CurrentDate: anchor, CurrentView: ViewMonth}
	s = m.Apply(s, SetView{View: ViewWeek})

	if s.CurrentView != ViewWeek {
		t.Errorf("CurrentView = %v, want week", s.CurrentView)
	}
	if !s.CurrentDate.Equal(anchor) {
		t.Errorf("SetView moved CurrentDate to %v", s.CurrentDate)
	}
}

func TestAddEvent(t *testing.T) {
	m := NewMachine()
	selected := time.Date(2024, 6, 12, 0, 0, 0, 0, time.Local)

	s := State{
		ModalOpen:    true,
		SelectedDate: &selected,
	}
	s = m.Apply(s, AddEvent{Data: EventData{
		Title: "Team Standup",
		Start: time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local),
		End:   time.Date(2024, 6, 12, 9, 30, 0, 0, time.Local),
		Color: ColorBlue,
	}})

	if len(s.Events) != 1 {
		t.Fatalf("Got %d events, want 1", len(s.Events))
	}
	if s.Events[0].ID == "" {
		t.Error("Added event has no id")
	}
	if s.ModalOpen {
		t.Error("AddEvent should close the modal")
	}
	if s.SelectedDate != nil {
		t.Error("AddEvent should clear the selected date")
	}
}

func TestAddEventGeneratesUniqueIDs(t *testing.T) {
	m := NewMachine()
	data := EventData{
		Title: "Standup",
		Start: time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local),
		End:   time.Date(2024, 6, 12, 9, 30, 0, 0, time.Local),
	}

	var s State
	s = m.Apply(s, AddEvent{Data: data})
	s = m.Apply(s, AddEvent{Data: data})

	if len(s.Events) != 2 {
		t.Fatalf("Got %d events, want 2", len(s.Events))
	}
	if s.Events[0].ID == s.Events[1].ID {
		t.Errorf("Duplicate event id %s", s.Events[0].ID)
	}
}

func TestAddAllDayEventNormalizes(t *testing.T) {
	m := NewMachine()

	var s State
	s = m.Apply(s, AddEvent{Data: EventData{
		Title:  "Conference",
		Start:  time.Date(2024, 6, 25, 10, 15, 0, 0, time.Local),
		End:    time.Date(2024, 6, 25, 11, 0, 0, 0, time.Local),
		AllDay: true,
	}})

	ev := s.Events[0]
	if ev.Start.Hour() != 0 || ev.Start.Minute() != 0 {
		t.Errorf("All-day start = %v, want midnight", ev.Start)
	}
	if ev.End.Hour() != 23 || ev.End.Minute() != 59 {
		t.Errorf("All-day end = %v, want end of day", ev.End)
	}
}

func TestUpdateEvent(t *testing.T) {
	m := NewMachine()
	start := time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local)

	var s State
	s = m.Apply(s, AddEvent{Data: EventData{Title: "Standup", Start: start, End: start.Add(30 * time.Minute)}})
	id := s.Events[0].ID
	s = m.Apply(s, OpenEventModal{EventID: id})

	updated := s.Events[0]
	updated.Title = "Standup (moved)"
	updated.Start = start.Add(time.Hour)
	updated.End = start.Add(90 * time.Minute)
	s = m.Apply(s, UpdateEvent{Event: updated})

	if len(s.Events) != 1 {
		t.Fatalf("Got %d events, want 1", len(s.Events))
	}
	if s.Events[0].Title != "Standup (moved)" {
		t.Errorf("Title = %s", s.Events[0].Title)
	}
	if s.ModalOpen || s.EditingID != "" {
		t.Error("UpdateEvent should close the modal and clear the editing id")
	}
}

func TestUpdateEventUnknownIDIsNoOp(t *testing.T) {
	m := NewMachine()
	start := time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local)

	var s State
	s = m.Apply(s, AddEvent{Data: EventData{Title: "Standup", Start: start, End: start.Add(time.Hour)}})
	s.ModalOpen = true

	before := s.Events[0]
	s = m.Apply(s, UpdateEvent{Event: Event{ID: "nonexistent", Title: "Ghost"}})

	if len(s.Events) != 1 {
		t.Fatalf("Got %d events, want 1", len(s.Events))
	}
	if s.Events[0] != before {
		t.Error("Unknown-id update changed the event list")
	}
	if s.ModalOpen {
		t.Error("Unknown-id update should still close the modal")
	}
}

func TestDeleteEvent(t *testing.T) {
	m := NewMachine()
	start := time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local)

	var s State
	s = m.Apply(s, AddEvent{Data: EventData{Title: "First", Start: start, End: start.Add(time.Hour)}})
	s = m.Apply(s, AddEvent{Data: EventData{Title: "Second", Start: start, End: start.Add(time.Hour)}})
	id := s.Events[0].ID

	s = m.Apply(s, DeleteEvent{ID: id})
	if len(s.Events) != 1 || s.Events[0].Title != "Second" {
		t.Errorf("Events after delete = %v", s.Events)
	}

	// Deleting again is a silent no-op
	s = m.Apply(s, DeleteEvent{ID: id})
	if len(s.Events) != 1 {
		t.Errorf("Repeated delete changed the list: %v", s.Events)
	}
}

func TestModalSession(t *testing.T) {
	m := NewMachine()
	start := time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local)
	selected := start

	var s State
	s = m.Apply(s, AddEvent{Data: EventData{Title: "Standup", Start: start, End: start.Add(time.Hour)}})
	id := s.Events[0].ID

	s = m.Apply(s, SetSelectedDate{Date: &selected})
	s = m.Apply(s, OpenEventModal{EventID: id})

	if !s.ModalOpen || s.EditingID != id {
		t.Errorf("Open: ModalOpen=%v EditingID=%s", s.ModalOpen, s.EditingID)
	}
	if ev, ok := s.EditingEvent(); !ok || ev.ID != id {
		t.Errorf("EditingEvent = %v, %v", ev, ok)
	}

	s = m.Apply(s, CloseEventModal{})
	if s.ModalOpen || s.EditingID != "" || s.SelectedDate != nil {
		t.Error("Close should clear modal, editing id, and selected date")
	}
	if _, ok := s.EditingEvent(); ok {
		t.Error("EditingEvent should miss after close")
	}
}

func TestOpenEventModalCreateMode(t *testing.T) {
	m := NewMachine()

	var s State
	s = m.Apply(s, OpenEventModal{})

	if !s.ModalOpen {
		t.Error("Modal should be open")
	}
	if _, ok := s.EditingEvent(); ok {
		t.Error("Create mode should have no editing event")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	m := NewMachine()
	start := time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local)

	var s State
	s = m.Apply(s, AddEvent{Data: EventData{Title: "Original", Start: start, End: start.Add(time.Hour)}})

	before := s
	beforeTitle := s.Events[0].Title

	updated := s.Events[0]
	updated.Title = "Changed"
	_ = m.Apply(s, UpdateEvent{Event: updated})
	_ = m.Apply(s, DeleteEvent{ID: s.Events[0].ID})

	if before.Events[0].Title != beforeTitle {
		t.Error("Apply mutated the input state's event list")
	}
	if len(before.Events) != 1 {
		t.Error("Apply changed the input state's event count")
	}
}
