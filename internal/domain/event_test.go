package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarEvent_OnDate(t *testing.T) {
	event := CalendarEvent{
		ID:    "1",
		Title: "Team Meeting",
		Start: time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 12, 15, 11, 0, 0, 0, time.UTC),
		Type:  EventTypeEvent,
		Color: ColorBlue,
	}

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{
			name:     "same day different time",
			date:     time.Date(2024, 12, 15, 23, 59, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "same day midnight",
			date:     time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "day before",
			date:     time.Date(2024, 12, 14, 10, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "same day different month",
			date:     time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "same day different year",
			date:     time.Date(2023, 12, 15, 10, 0, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, event.OnDate(tt.date))
		})
	}
}

func TestCalendarEvent_Validate(t *testing.T) {
	start := time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   CalendarEvent
		wantErr bool
	}{
		{
			name: "valid event",
			event: CalendarEvent{
				Title: "Call", Start: start, End: start.Add(time.Hour),
				Type: EventTypeEvent, Color: ColorBlue,
			},
		},
		{
			name: "missing title",
			event: CalendarEvent{
				Start: start, End: start.Add(time.Hour),
				Type: EventTypeEvent, Color: ColorBlue,
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			event: CalendarEvent{
				Title: "Call", Start: start, End: start.Add(time.Hour),
				Type: "meeting", Color: ColorBlue,
			},
			wantErr: true,
		},
		{
			name: "unknown color",
			event: CalendarEvent{
				Title: "Call", Start: start, End: start.Add(time.Hour),
				Type: EventTypeEvent, Color: "pink",
			},
			wantErr: true,
		},
		{
			name: "end before start",
			event: CalendarEvent{
				Title: "Call", Start: start, End: start.Add(-time.Hour),
				Type: EventTypeEvent, Color: ColorBlue,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEvent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
