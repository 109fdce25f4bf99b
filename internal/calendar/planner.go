package calendar

import (
	"sync"
	"time"

	"phrasebot/internal/domain"

	"github.com/google/uuid"
)

// Planner holds the calendar events. The whole lifecycle is local: the
// list is seeded at startup and mutated only in memory, nothing is sent
// to the backend.
type Planner struct {
	mu     sync.RWMutex
	events []domain.CalendarEvent
}

// NewPlanner creates a planner holding the given events
func NewPlanner(seed []domain.CalendarEvent) *Planner {
	return &Planner{events: append([]domain.CalendarEvent(nil), seed...)}
}

// SeedEvents returns the fixed starter event list
func SeedEvents() []domain.CalendarEvent {
	return []domain.CalendarEvent{
		{
			ID:          uuid.NewString(),
			Title:       "Team Meeting",
			Description: "Weekly team sync",
			Start:       time.Date(2024, time.December, 15, 10, 0, 0, 0, time.Local),
			End:         time.Date(2024, time.December, 15, 11, 0, 0, 0, time.Local),
			Type:        domain.EventTypeEvent,
			Color:       domain.ColorBlue,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Project Deadline",
			Description: "Submit final project deliverables",
			Start:       time.Date(2024, time.December, 20, 9, 0, 0, 0, time.Local),
			End:         time.Date(2024, time.December, 20, 17, 0, 0, 0, time.Local),
			Type:        domain.EventTypeReminder,
			Color:       domain.ColorRed,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Conference",
			Description: "Annual tech conference",
			Start:       time.Date(2024, time.December, 25, 0, 0, 0, 0, time.Local),
			End:         time.Date(2024, time.December, 25, 23, 59, 0, 0, time.Local),
			Type:        domain.EventTypeEvent,
			Color:       domain.ColorGreen,
			AllDay:      true,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Client Call",
			Description: "Quarterly review with client",
			Start:       time.Date(2024, time.December, 18, 14, 0, 0, 0, time.Local),
			End:         time.Date(2024, time.December, 18, 15, 30, 0, 0, time.Local),
			Type:        domain.EventTypeEvent,
			Color:       domain.ColorPurple,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Doctor Appointment",
			Description: "Annual checkup",
			Start:       time.Date(2024, time.December, 22, 11, 0, 0, 0, time.Local),
			End:         time.Date(2024, time.December, 22, 12, 0, 0, 0, time.Local),
			Type:        domain.EventTypeReminder,
			Color:       domain.ColorOrange,
		},
	}
}

// Add stores a new event, assigning it an id and the default color when
// none was chosen
func (p *Planner) Add(event domain.CalendarEvent) (domain.CalendarEvent, error) {
	event.ID = uuid.NewString()
	if event.Color == "" {
		event.Color = domain.DefaultEventColor
	}
	if err := event.Validate(); err != nil {
		return domain.CalendarEvent{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return event, nil
}

// Update replaces the stored event with the same id
func (p *Planner) Update(event domain.CalendarEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.events {
		if p.events[i].ID == event.ID {
			p.events[i] = event
			return nil
		}
	}
	return domain.ErrEventNotFound
}

// Remove deletes the event with the given id
func (p *Planner) Remove(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.events {
		if p.events[i].ID == id {
			p.events = append(p.events[:i], p.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrEventNotFound
}

// Get returns the event with the given id
func (p *Planner) Get(id string) (domain.CalendarEvent, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, e := range p.events {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.CalendarEvent{}, domain.ErrEventNotFound
}

// Events returns a copy of all stored events
func (p *Planner) Events() []domain.CalendarEvent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]domain.CalendarEvent(nil), p.events...)
}

// Counts returns the number of events and reminders
func (p *Planner) Counts() (events, reminders int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, e := range p.events {
		if e.Type == domain.EventTypeReminder {
			reminders++
		} else {
			events++
		}
	}
	return events, reminders
}
