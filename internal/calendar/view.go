package calendar

import (
	"sort"
	"time"

	"phrasebot/internal/domain"
)

// MaxVisibleEvents caps how many events a month cell lists before the
// rest collapse into a "+N more" count
const MaxVisibleEvents = 4

// MinEventMinutes is the rendered floor for very short timed events so
// they stay visible on the timeline
const MinEventMinutes = 30

// DayCell is one dated cell of the month grid
type DayCell struct {
	Date      time.Time
	Visible   []domain.CalendarEvent
	MoreCount int
}

// EventCount returns the full number of events on this day
func (c DayCell) EventCount() int {
	return len(c.Visible) + c.MoreCount
}

// MonthGrid is the month view model: leading blanks up to the weekday of
// day 1 (Sunday = 0), then one cell per calendar day. Both views are pure
// functions of the event collection and a reference date.
type MonthGrid struct {
	Reference     time.Time
	LeadingBlanks int
	Days          []DayCell
}

// TrailingBlanks pads the grid to full 7-wide rows
func (g MonthGrid) TrailingBlanks() int {
	rem := (g.LeadingBlanks + len(g.Days)) % 7
	if rem == 0 {
		return 0
	}
	return 7 - rem
}

// BuildMonthGrid lays out the month containing ref. Events are bucketed
// into day cells by calendar-day equality of their start, never by time.
func BuildMonthGrid(ref time.Time, events []domain.CalendarEvent) MonthGrid {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := MonthGrid{
		Reference:     first,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]DayCell, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, ref.Location())
		dayEvents := EventsOnDate(events, date)

		cell := DayCell{Date: date}
		if len(dayEvents) > MaxVisibleEvents {
			cell.Visible = dayEvents[:MaxVisibleEvents]
			cell.MoreCount = len(dayEvents) - MaxVisibleEvents
		} else {
			cell.Visible = dayEvents
		}
		grid.Days = append(grid.Days, cell)
	}
	return grid
}

// TimedEvent is an event positioned on the day timeline. Offset and
// length are minutes from midnight, with the length floored so short
// events remain visible.
type TimedEvent struct {
	Event         domain.CalendarEvent
	OffsetMinutes int
	LengthMinutes int
}

// DayTimeline is the day view model: all-day events listed apart from
// the timed ones positioned on a 24-hour track
type DayTimeline struct {
	Date   time.Time
	AllDay []domain.CalendarEvent
	Timed  []TimedEvent
}

// Empty reports whether the day has no events at all
func (t DayTimeline) Empty() bool {
	return len(t.AllDay) == 0 && len(t.Timed) == 0
}

// BuildDayTimeline lays out one day. Events are taken by start date,
// sorted by start time, and split into the all-day section and the
// hourly timeline.
func BuildDayTimeline(date time.Time, events []domain.CalendarEvent) DayTimeline {
	dayEvents := EventsOnDate(events, date)

	timeline := DayTimeline{Date: date}
	for _, e := range dayEvents {
		if e.AllDay {
			timeline.AllDay = append(timeline.AllDay, e)
			continue
		}

		offset := e.Start.Hour()*60 + e.Start.Minute()
		length := e.End.Hour()*60 + e.End.Minute() - offset
		if length < MinEventMinutes {
			length = MinEventMinutes
		}
		timeline.Timed = append(timeline.Timed, TimedEvent{
			Event:         e,
			OffsetMinutes: offset,
			LengthMinutes: length,
		})
	}
	return timeline
}

// EventsOnDate returns the events starting on the given calendar day,
// sorted by start time
func EventsOnDate(events []domain.CalendarEvent, date time.Time) []domain.CalendarEvent {
	var matched []domain.CalendarEvent
	for _, e := range events {
		if e.OnDate(date) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Start.Before(matched[j].Start)
	})
	return matched
}

// Navigation only moves the reference date, never the event data.

// NextMonth returns the first day of the following month
func NextMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, 1, 0)
}

// PrevMonth returns the first day of the preceding month
func PrevMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, -1, 0)
}

// NextDay returns the following day
func NextDay(date time.Time) time.Time {
	return date.AddDate(0, 0, 1)
}

// PrevDay returns the preceding day
func PrevDay(date time.Time) time.Time {
	return date.AddDate(0, 0, -1)
}

// MonthTitle returns e.g. "December 2024"
func MonthTitle(ref time.Time) string {
	return ref.Format("January 2006")
}

// DayTitle returns e.g. "Sunday, December 15, 2024"
func DayTitle(date time.Time) string {
	return date.Format("Monday, January 2, 2006")
}

// ClockTime returns e.g. "2:05 PM"
func ClockTime(t time.Time) string {
	return t.Format("3:04 PM")
}
