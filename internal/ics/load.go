package ics

import (
	"errors"
	"fmt"
	"os"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"almanac/internal/calendar"
)

// LoadFile reads an iCalendar file and converts its VEVENTs into calendar
// events. A malformed VEVENT is skipped so one bad entry does not take
// down the whole seed list.
func LoadFile(path string) ([]calendar.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cal, err := ical.ParseCalendar(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var events []calendar.Event
	for _, ve := range cal.Events() {
		ev, err := convertVEvent(ve)
		if err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func convertVEvent(ve *ical.VEvent) (calendar.Event, error) {
	var ev calendar.Event

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil && p.Value != "" {
		ev.ID = p.Value
	} else {
		ev.ID = uuid.NewString()
	}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Title = p.Value
	}
	if ev.Title == "" {
		return ev, errors.New("missing summary")
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		ev.Description = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return ev, fmt.Errorf("bad DTSTART: %w", err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return ev, fmt.Errorf("bad DTEND: %w", err)
	}
	ev.Start = start
	ev.End = end

	ev.AllDay = isAllDay(ve)
	if !ev.AllDay && !ev.End.After(ev.Start) {
		return ev, errors.New("end not after start")
	}

	ev.Color = eventColor(ve)

	return calendar.NormalizeAllDay(ev), nil
}

// isAllDay detects date-only DTSTART values: either VALUE=DATE or a value
// without a time component.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}

// eventColor maps a COLOR property onto the fixed palette, defaulting to
// blue for absent or unrecognized values.
func eventColor(ve *ical.VEvent) calendar.Color {
	p := ve.GetProperty("COLOR")
	if p == nil {
		return calendar.ColorBlue
	}
	switch strings.ToLower(strings.TrimSpace(p.Value)) {
	case "green":
		return calendar.ColorGreen
	case "red":
		return calendar.ColorRed
	case "purple":
		return calendar.ColorPurple
	case "orange":
		return calendar.ColorOrange
	default:
		return calendar.ColorBlue
	}
}
