package calendar

import "time"

// EventsOnDate returns the events occurring on date's calendar day,
// preserving input order. All-day events match their start day only;
// timed events match every day their [Start, End] interval touches, so a
// timed event straddling midnight shows up on both days.
func EventsOnDate(events []Event, date time.Time) []Event {
	dayStart := StartOfDay(date)
	dayEnd := EndOfDay(date)

	var out []Event
	for _, ev := range events {
		if ev.AllDay {
			if SameDay(ev.Start, date) {
				out = append(out, ev)
			}
			continue
		}
		if !ev.Start.After(dayEnd) && !ev.End.Before(dayStart) {
			out = append(out, ev)
		}
	}
	return out
}

// EventsInRange returns the events whose [Start, End] interval intersects
// [start, end], preserving input order.
func EventsInRange(events []Event, start, end time.Time) []Event {
	var out []Event
	for _, ev := range events {
		if !ev.Start.After(end) && !ev.End.Before(start) {
			out = append(out, ev)
		}
	}
	return out
}

// TimedEvents filters out all-day events, preserving order.
func TimedEvents(events []Event) []Event {
	var out []Event
	for _, ev := range events {
		if !ev.AllDay {
			out = append(out, ev)
		}
	}
	return out
}

// AllDayEvents keeps only all-day events, preserving order.
func AllDayEvents(events []Event) []Event {
	var out []Event
	for _, ev := range events {
		if ev.AllDay {
			out = append(out, ev)
		}
	}
	return out
}

// EventByID looks an event up by id.
func EventByID(events []Event, id string) (Event, bool) {
	for _, ev := range events {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}
