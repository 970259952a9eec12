package calendar

import "time"

// Time-grid scale. Positions are abstract pixel units; renderers map them
// onto whatever medium they draw into.
const (
	PixelsPerHour  = 60
	MinEventHeight = 30

	// Overlapping events are packed into at most this many side-by-side
	// columns; an event that cannot fit wraps back to column 0.
	MaxOverlapColumns = 4
)

// EventLayout is the screen-space rectangle for one timed event. Top and
// Height are pixel units on the 24-hour grid; Left and Width are
// percentages of the grid width.
type EventLayout struct {
	Top    float64
	Height float64
	Left   float64
	Width  float64
}

// VerticalPosition computes the top offset and height of an event block
// from its start and end time of day. Height never drops below
// MinEventHeight so very short events stay visible.
//
// An event whose end time of day precedes its start (one that notionally
// crosses midnight) is not split across days; the raw hour difference is
// negative and the block collapses to the minimum height on the start day.
func VerticalPosition(ev Event) (top, height float64) {
	startHour := float64(ev.Start.Hour()) + float64(ev.Start.Minute())/60
	endHour := float64(ev.End.Hour()) + float64(ev.End.Minute())/60

	top = startHour * PixelsPerHour
	height = (endHour - startHour) * PixelsPerHour
	if height < MinEventHeight {
		height = MinEventHeight
	}
	return top, height
}

// WeekColumnPosition places a day column within a grid of totalColumns
// columns. timeColOffset reserves leading columns for hour labels: 1 in
// week view, 0 in day view. Left and Width are percentages.
func WeekColumnPosition(dayIndex, totalColumns, timeColOffset int) (left, width float64) {
	width = 100 / float64(totalColumns)
	left = float64(dayIndex+timeColOffset) * width
	return left, width
}

// CurrentTimeIndicator returns the vertical offset of the "now" line when
// now's calendar day falls within [rangeStart, rangeEnd]. ok is false for
// ranges not containing today, in which case no indicator is drawn.
func CurrentTimeIndicator(now, rangeStart, rangeEnd time.Time) (offset float64, ok bool) {
	if now.Before(StartOfDay(rangeStart)) || now.After(EndOfDay(rangeEnd)) {
		return 0, false
	}
	return float64(now.Hour()*PixelsPerHour + now.Minute()), true
}

// AssignColumns assigns each timed event a column index so overlapping
// events render side by side. Events are placed greedily in input order
// into the first free column; all-day events are skipped. The result maps
// event id to column.
func AssignColumns(events []Event) map[string]int {
	type placed struct {
		start, end time.Time
		col        int
	}

	cols := make(map[string]int, len(events))
	var occupied []placed

	for _, ev := range events {
		if ev.AllDay {
			continue
		}

		col := 0
		for col < MaxOverlapColumns {
			free := true
			for _, p := range occupied {
				if p.col == col && ev.Start.Before(p.end) && ev.End.After(p.start) {
					free = false
					break
				}
			}
			if free {
				break
			}
			col++
		}
		if col == MaxOverlapColumns {
			col = 0
		}

		cols[ev.ID] = col
		occupied = append(occupied, placed{ev.Start, ev.End, col})
	}
	return cols
}
