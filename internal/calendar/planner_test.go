package calendar

import (
	"testing"
	"time"

	"phrasebot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedEvents(t *testing.T) {
	seed := SeedEvents()

	assert.Len(t, seed, 5)
	for _, e := range seed {
		assert.NotEmpty(t, e.ID)
		assert.NoError(t, e.Validate())
	}
}

func TestPlanner_Add(t *testing.T) {
	planner := NewPlanner(nil)

	added, err := planner.Add(domain.CalendarEvent{
		Title: "Standup",
		Start: day(2024, time.December, 16).Add(9 * time.Hour),
		End:   day(2024, time.December, 16).Add(9*time.Hour + 15*time.Minute),
		Type:  domain.EventTypeEvent,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, added.ID)
	assert.Equal(t, domain.DefaultEventColor, added.Color)

	stored, err := planner.Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, stored)
}

func TestPlanner_AddRejectsInvalidEvent(t *testing.T) {
	planner := NewPlanner(nil)

	_, err := planner.Add(domain.CalendarEvent{
		Start: day(2024, time.December, 16),
		End:   day(2024, time.December, 16),
		Type:  domain.EventTypeEvent,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)
	assert.Empty(t, planner.Events())
}

func TestPlanner_Update(t *testing.T) {
	planner := NewPlanner(SeedEvents())
	original := planner.Events()[0]

	renamed := original
	renamed.Title = "Renamed"
	require.NoError(t, planner.Update(renamed))

	stored, err := planner.Get(original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
}

func TestPlanner_UpdateUnknownID(t *testing.T) {
	planner := NewPlanner(nil)

	err := planner.Update(domain.CalendarEvent{
		ID:    "missing",
		Title: "Ghost",
		Start: day(2024, time.December, 16),
		End:   day(2024, time.December, 16).Add(time.Hour),
		Type:  domain.EventTypeEvent,
		Color: domain.ColorBlue,
	})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestPlanner_Remove(t *testing.T) {
	planner := NewPlanner(SeedEvents())
	victim := planner.Events()[2]

	require.NoError(t, planner.Remove(victim.ID))
	assert.Len(t, planner.Events(), 4)

	_, err := planner.Get(victim.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	assert.ErrorIs(t, planner.Remove(victim.ID), domain.ErrEventNotFound)
}

func TestPlanner_Counts(t *testing.T) {
	planner := NewPlanner(SeedEvents())

	events, reminders := planner.Counts()
	assert.Equal(t, 3, events)
	assert.Equal(t, 2, reminders)
}

func TestPlanner_EventsReturnsCopy(t *testing.T) {
	planner := NewPlanner(SeedEvents())

	events := planner.Events()
	events[0].Title = "Mutated"

	stored, err := planner.Get(events[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Mutated", stored.Title)
}
