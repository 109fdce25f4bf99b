package domain

import (
	"fmt"
	"time"
)

// EventType distinguishes regular events from reminders
type EventType string

const (
	EventTypeEvent    EventType = "event"
	EventTypeReminder EventType = "reminder"
)

// Valid reports whether the event type is known
func (t EventType) Valid() bool {
	return t == EventTypeEvent || t == EventTypeReminder
}

// EventColor is one of the fixed palette colors
type EventColor string

const (
	ColorBlue   EventColor = "blue"
	ColorGreen  EventColor = "green"
	ColorRed    EventColor = "red"
	ColorPurple EventColor = "purple"
	ColorOrange EventColor = "orange"
)

// Valid reports whether the color belongs to the palette
func (c EventColor) Valid() bool {
	switch c {
	case ColorBlue, ColorGreen, ColorRed, ColorPurple, ColorOrange:
		return true
	}
	return false
}

// DefaultEventColor is used when no color was chosen
const DefaultEventColor = ColorBlue

// CalendarEvent is a planner entry. Events live only in memory in this
// application; nothing is sent to the backend.
type CalendarEvent struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Type        EventType
	Color       EventColor
	AllDay      bool
}

// Validate checks the invariants of a planner entry
func (e *CalendarEvent) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidEvent)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	if !e.Color.Valid() {
		return fmt.Errorf("%w: unknown color %q", ErrInvalidEvent, e.Color)
	}
	if e.End.Before(e.Start) {
		return fmt.Errorf("%w: end before start", ErrInvalidEvent)
	}
	return nil
}

// OnDate reports whether the event starts on the given calendar day.
// Matching is by day/month/year, never by time of day.
func (e *CalendarEvent) OnDate(date time.Time) bool {
	return e.Start.Year() == date.Year() &&
		e.Start.Month() == date.Month() &&
		e.Start.Day() == date.Day()
}
