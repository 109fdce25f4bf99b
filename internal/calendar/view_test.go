package calendar

import (
	"testing"
	"time"

	"phrasebot/internal/domain"
	"phrasebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildMonthGrid_LeadingBlanks(t *testing.T) {
	tests := []struct {
		name           string
		ref            time.Time
		expectedBlanks int
		expectedDays   int
	}{
		{
			// December 1, 2024 is a Sunday
			name:           "month starting on Sunday",
			ref:            day(2024, time.December, 15),
			expectedBlanks: 0,
			expectedDays:   31,
		},
		{
			// June 1, 2024 is a Saturday
			name:           "month starting on Saturday",
			ref:            day(2024, time.June, 1),
			expectedBlanks: 6,
			expectedDays:   30,
		},
		{
			// February 1, 2024 is a Thursday, leap year
			name:           "leap February",
			ref:            day(2024, time.February, 10),
			expectedBlanks: 4,
			expectedDays:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildMonthGrid(tt.ref, nil)

			assert.Equal(t, tt.expectedBlanks, grid.LeadingBlanks)
			assert.Len(t, grid.Days, tt.expectedDays)
			// Blanks on both sides pad the grid to full weeks
			cells := grid.LeadingBlanks + len(grid.Days) + grid.TrailingBlanks()
			assert.Zero(t, cells%7)
		})
	}
}

func TestBuildMonthGrid_BucketsByDateNotTime(t *testing.T) {
	events := []domain.CalendarEvent{
		testutil.NewTestEvent("a", "Early", day(2024, time.December, 15).Add(15*time.Minute)),
		testutil.NewTestEvent("b", "Late", day(2024, time.December, 15).Add(23*time.Hour)),
		testutil.NewTestEvent("c", "Other day", day(2024, time.December, 16)),
	}

	grid := BuildMonthGrid(day(2024, time.December, 1), events)

	assert.Equal(t, 2, grid.Days[14].EventCount())
	assert.Equal(t, 1, grid.Days[15].EventCount())
	assert.Equal(t, 0, grid.Days[16].EventCount())
}

func TestBuildMonthGrid_CollapsesBusyDays(t *testing.T) {
	date := day(2024, time.December, 15)
	var events []domain.CalendarEvent
	for i := 0; i < 6; i++ {
		events = append(events, testutil.NewTestEvent(
			string(rune('a'+i)), "Busy", date.Add(time.Duration(i)*time.Hour)))
	}

	grid := BuildMonthGrid(date, events)

	cell := grid.Days[14]
	assert.Len(t, cell.Visible, MaxVisibleEvents)
	assert.Equal(t, 2, cell.MoreCount)
	assert.Equal(t, 6, cell.EventCount())
}

func TestBuildDayTimeline_SeparatesAllDayFromTimed(t *testing.T) {
	date := day(2024, time.December, 25)
	allDay := domain.CalendarEvent{
		ID:     "conf",
		Title:  "Conference",
		Start:  date,
		End:    date.Add(23*time.Hour + 59*time.Minute),
		Type:   domain.EventTypeEvent,
		Color:  domain.ColorGreen,
		AllDay: true,
	}
	timed := testutil.NewTestEvent("call", "Call", date.Add(14*time.Hour))

	timeline := BuildDayTimeline(date, []domain.CalendarEvent{allDay, timed})

	require.Len(t, timeline.AllDay, 1)
	assert.Equal(t, "conf", timeline.AllDay[0].ID)
	require.Len(t, timeline.Timed, 1)
	assert.Equal(t, "call", timeline.Timed[0].Event.ID)
	assert.False(t, timeline.Empty())
}

func TestBuildDayTimeline_PositionsTimedEvents(t *testing.T) {
	date := day(2024, time.December, 18)
	event := domain.CalendarEvent{
		ID:    "call",
		Title: "Client Call",
		Start: date.Add(14 * time.Hour),
		End:   date.Add(15*time.Hour + 30*time.Minute),
		Type:  domain.EventTypeEvent,
		Color: domain.ColorPurple,
	}

	timeline := BuildDayTimeline(date, []domain.CalendarEvent{event})

	require.Len(t, timeline.Timed, 1)
	assert.Equal(t, 14*60, timeline.Timed[0].OffsetMinutes)
	assert.Equal(t, 90, timeline.Timed[0].LengthMinutes)
}

func TestBuildDayTimeline_FloorsShortEvents(t *testing.T) {
	date := day(2024, time.December, 18)
	event := domain.CalendarEvent{
		ID:    "ping",
		Title: "Quick ping",
		Start: date.Add(9 * time.Hour),
		End:   date.Add(9*time.Hour + 10*time.Minute),
		Type:  domain.EventTypeReminder,
		Color: domain.ColorBlue,
	}

	timeline := BuildDayTimeline(date, []domain.CalendarEvent{event})

	require.Len(t, timeline.Timed, 1)
	assert.Equal(t, MinEventMinutes, timeline.Timed[0].LengthMinutes)
}

func TestBuildDayTimeline_EmptyDay(t *testing.T) {
	timeline := BuildDayTimeline(day(2024, time.December, 1), nil)
	assert.True(t, timeline.Empty())
}

func TestEventsOnDate_SortedByStart(t *testing.T) {
	date := day(2024, time.December, 15)
	events := []domain.CalendarEvent{
		testutil.NewTestEvent("b", "Noon", date.Add(12*time.Hour)),
		testutil.NewTestEvent("a", "Morning", date.Add(8*time.Hour)),
	}

	matched := EventsOnDate(events, date)

	require.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].ID)
	assert.Equal(t, "b", matched[1].ID)
}

func TestNavigation(t *testing.T) {
	ref := day(2024, time.December, 15)

	next := NextMonth(ref)
	assert.Equal(t, day(2025, time.January, 1), next)
	assert.Equal(t, day(2024, time.November, 1), PrevMonth(ref))
	// Round trip lands back on the first of the month
	assert.Equal(t, day(2024, time.December, 1), PrevMonth(next))

	assert.Equal(t, day(2024, time.December, 16), NextDay(ref))
	assert.Equal(t, day(2024, time.December, 14), PrevDay(ref))
	// Day navigation crosses month boundaries
	assert.Equal(t, day(2025, time.January, 1), NextDay(day(2024, time.December, 31)))
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "December 2024", MonthTitle(day(2024, time.December, 15)))
	assert.Equal(t, "Sunday, December 15, 2024", DayTitle(day(2024, time.December, 15)))
	assert.Equal(t, "2:30 PM", ClockTime(day(2024, time.December, 15).Add(14*time.Hour+30*time.Minute)))
}
