package calendar

import (
	"time"

	"github.com/google/uuid"
)

// Color is the fixed palette an event can be tagged with.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
)

// Colors lists the palette in display order, for pickers.
var Colors = []Color{ColorBlue, ColorGreen, ColorRed, ColorPurple, ColorOrange}

// Event is a single calendar entry. Start and End are local times with
// End after Start; the form layer validates payloads before they reach
// this package.
type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       Color
	AllDay      bool
}

// EventData is a validated create/update payload as produced by the form
// layer.
type EventData struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       Color
	AllDay      bool
}

// NewEvent builds an event from a validated payload, assigning a fresh id.
func NewEvent(data EventData) Event {
	return data.Build(uuid.NewString())
}

// Build turns the payload into an event carrying the given id. All-day
// events are pinned to the boundaries of their calendar days.
func (d EventData) Build(id string) Event {
	return NormalizeAllDay(Event{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Start:       d.Start,
		End:         d.End,
		Color:       d.Color,
		AllDay:      d.AllDay,
	})
}

// NormalizeAllDay returns the event with Start/End snapped to day
// boundaries when the all-day flag is set. Timed events pass through
// unchanged.
func NormalizeAllDay(ev Event) Event {
	if ev.AllDay {
		ev.Start = StartOfDay(ev.Start)
		ev.End = EndOfDay(ev.End)
	}
	return ev
}
