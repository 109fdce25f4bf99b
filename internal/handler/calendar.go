package handler

import (
	"fmt"
	"strings"
	"time"

	"phrasebot/internal/calendar"
	"phrasebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const dayKeyLayout = "20060102"

// handleCalendarMonth shows the month grid for the user's reference date
func (h *Handler) handleCalendarMonth(c tele.Context) error {
	return h.showMonth(c, c.Sender().ID, true)
}

// showMonth renders the month view
func (h *Handler) showMonth(c tele.Context, userID int64, edit bool) error {
	ref := h.calRef(userID)
	events := h.planner.Events()
	grid := calendar.BuildMonthGrid(ref, events)
	eventCount, reminderCount := h.planner.Counts()

	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s\n", calendar.MonthTitle(grid.Reference))
	fmt.Fprintf(&b, "%d events, %d reminders\n\n", eventCount, reminderCount)
	b.WriteString("Su Mo Tu We Th Fr Sa\n")

	col := 0
	for i := 0; i < grid.LeadingBlanks; i++ {
		b.WriteString("   ")
		col++
	}
	for _, cell := range grid.Days {
		if cell.EventCount() > 0 {
			fmt.Fprintf(&b, "%2d•", cell.Date.Day())
		} else {
			fmt.Fprintf(&b, "%2d ", cell.Date.Day())
		}
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n• days with entries — pick one below")

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	var dayRow tele.Row
	for _, cell := range grid.Days {
		if cell.EventCount() == 0 {
			continue
		}
		label := fmt.Sprintf("%s %d (%d)", cell.Date.Format("Jan"), cell.Date.Day(), cell.EventCount())
		dayRow = append(dayRow, markup.Data(label, "calday_"+cell.Date.Format(dayKeyLayout)))
		if len(dayRow) == 3 {
			rows = append(rows, dayRow)
			dayRow = nil
		}
	}
	if len(dayRow) > 0 {
		rows = append(rows, dayRow)
	}

	rows = append(rows, markup.Row(
		markup.Data("⬅️", "calprev"),
		markup.Data("➕ Add", "caladd"),
		markup.Data("➡️", "calnext"),
	))
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return h.reply(c, userID, edit, b.String(), markup)
}

// handleCalendarNav moves the month reference date
func (h *Handler) handleCalendarNav(c tele.Context, data string) error {
	userID := c.Sender().ID

	ref := h.calRef(userID)
	if data == "calprev" {
		h.setCalRef(userID, calendar.PrevMonth(ref))
	} else {
		h.setCalRef(userID, calendar.NextMonth(ref))
	}
	return h.showMonth(c, userID, true)
}

// handleCalendarDay shows the day view for the picked date
func (h *Handler) handleCalendarDay(c tele.Context, data string) error {
	userID := c.Sender().ID

	date, err := parseDayKey(data)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Bad date"})
	}
	return h.showDay(c, userID, date, true)
}

// showDay renders one day: the all-day section apart from the hourly
// timeline
func (h *Handler) showDay(c tele.Context, userID int64, date time.Time, edit bool) error {
	timeline := calendar.BuildDayTimeline(date, h.planner.Events())

	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s\n", calendar.DayTitle(date))

	if timeline.Empty() {
		b.WriteString("\nNo events or reminders for this day")
	}

	if len(timeline.AllDay) > 0 {
		b.WriteString("\nAll Day\n")
		for _, e := range timeline.AllDay {
			fmt.Fprintf(&b, "  %s %s\n", typeIcon(e.Type), e.Title)
		}
	}

	if len(timeline.Timed) > 0 {
		b.WriteString("\nTimeline\n")
		for _, te := range timeline.Timed {
			fmt.Fprintf(&b, "  %s – %s  %s %s\n",
				calendar.ClockTime(te.Event.Start),
				calendar.ClockTime(te.Event.End),
				typeIcon(te.Event.Type),
				te.Event.Title,
			)
		}
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, e := range calendar.EventsOnDate(h.planner.Events(), date) {
		rows = append(rows, markup.Row(markup.Data(typeIcon(e.Type)+" "+e.Title, "calev_"+e.ID)))
	}
	key := date.Format(dayKeyLayout)
	rows = append(rows, markup.Row(
		markup.Data("⬅️", "caldayprev_"+key),
		markup.Data("➕ Add", "caladd"),
		markup.Data("➡️", "caldaynext_"+key),
	))
	rows = append(rows, markup.Row(markup.Data("◀️ Back to month", "calback"), btnMainMenu))
	markup.Inline(rows...)

	return h.reply(c, userID, edit, b.String(), markup)
}

// handleCalendarDayNav moves the day view one day back or forward
func (h *Handler) handleCalendarDayNav(c tele.Context, data string) error {
	userID := c.Sender().ID

	forward := strings.HasPrefix(data, "caldaynext_")
	date, err := parseDayKey(data)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Bad date"})
	}

	if forward {
		date = calendar.NextDay(date)
	} else {
		date = calendar.PrevDay(date)
	}
	return h.showDay(c, userID, date, true)
}

// handleEventDetail shows one event with rename and delete affordances
func (h *Handler) handleEventDetail(c tele.Context, data string) error {
	return h.showEventDetail(c, c.Sender().ID, strings.TrimPrefix(data, "calev_"), true)
}

// sendEventDetail shows the event as a new message (after a text dialog)
func (h *Handler) sendEventDetail(c tele.Context, id string) error {
	return h.showEventDetail(c, c.Sender().ID, id, false)
}

func (h *Handler) showEventDetail(c tele.Context, userID int64, id string, edit bool) error {
	event, err := h.planner.Get(id)
	if err != nil {
		return h.reply(c, userID, edit, "That event is gone.", mainMenuMarkup())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", typeIcon(event.Type), event.Title)
	if event.Description != "" {
		fmt.Fprintf(&b, "%s\n", event.Description)
	}
	if event.AllDay {
		fmt.Fprintf(&b, "🕐 %s, all day\n", event.Start.Format("Jan 2, 2006"))
	} else {
		fmt.Fprintf(&b, "🕐 %s, %s – %s\n",
			event.Start.Format("Jan 2, 2006"),
			calendar.ClockTime(event.Start),
			calendar.ClockTime(event.End),
		)
	}
	fmt.Fprintf(&b, "Color: %s", event.Color)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("✏️ Rename", "evedit_"+id),
			markup.Data("🗑 Delete", "caldel_"+id),
		),
		markup.Row(
			markup.Data("◀️ Back to day", "calday_"+event.Start.Format(dayKeyLayout)),
			btnMainMenu,
		),
	)

	return h.reply(c, userID, edit, b.String(), markup)
}

// handleEventDelete removes the event and returns to its day
func (h *Handler) handleEventDelete(c tele.Context, data string) error {
	userID := c.Sender().ID
	id := strings.TrimPrefix(data, "caldel_")

	event, err := h.planner.Get(id)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Already gone"})
	}

	if err := h.planner.Remove(id); err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't delete the event"})
	}

	h.logger.Info("Calendar event removed",
		zap.Int64("user_id", userID),
		zap.String("title", event.Title),
	)
	return h.showDay(c, userID, event.Start, true)
}

// handleEventRename starts the rename dialog
func (h *Handler) handleEventRename(c tele.Context, data string) error {
	userID := c.Sender().ID
	id := strings.TrimPrefix(data, "evedit_")

	state := h.GetState(userID)
	state.State = domain.StateEventTitle
	state.EditID = id
	h.SetState(userID, state)

	if err := c.Edit("Send the new title:", cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send("Send the new title:", cancelMarkup())
	}
	return c.Respond()
}

// handleEventAdd starts the add-event dialog
func (h *Handler) handleEventAdd(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	state.State = domain.StateEventTitle
	state.EditID = ""
	state.EventDraft = domain.CalendarEvent{
		Type:  domain.EventTypeEvent,
		Color: domain.DefaultEventColor,
	}
	h.SetState(userID, state)

	if err := c.Edit("What's the event called?", cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send("What's the event called?", cancelMarkup())
	}
	return c.Respond()
}

// eventTypeMarkup offers the two entry kinds
func eventTypeMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("📌 Event", "evtype_"+string(domain.EventTypeEvent)),
			markup.Data("🔔 Reminder", "evtype_"+string(domain.EventTypeReminder)),
		),
		markup.Row(btnCancel),
	)
	return markup
}

// handleEventTypeChosen records the entry kind and asks about all-day
func (h *Handler) handleEventTypeChosen(c tele.Context, data string) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	eventType := domain.EventType(strings.TrimPrefix(data, "evtype_"))
	if !eventType.Valid() {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown type"})
	}
	state.EventDraft.Type = eventType
	h.SetState(userID, state)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("📅 All day", "evallday_yes"),
			markup.Data("⏰ Timed", "evallday_no"),
		),
		markup.Row(btnCancel),
	)

	if err := c.Edit("Does it take the whole day?", markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send("Does it take the whole day?", markup)
	}
	return c.Respond()
}

// handleEventAllDayChosen finishes the add-event dialog
func (h *Handler) handleEventAllDayChosen(c tele.Context, data string) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	state.EventDraft.AllDay = data == "evallday_yes"

	event, err := h.planner.Add(state.EventDraft)
	if err != nil {
		h.logger.Error("Failed to add calendar event", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{
			Text:      "Couldn't save the event",
			ShowAlert: true,
		})
	}

	h.logger.Info("Calendar event added",
		zap.Int64("user_id", userID),
		zap.String("title", event.Title),
	)
	h.ResetState(userID)
	return h.showDay(c, userID, event.Start, true)
}

func typeIcon(t domain.EventType) string {
	if t == domain.EventTypeReminder {
		return "🔔"
	}
	return "📌"
}

func parseDayKey(data string) (time.Time, error) {
	idx := strings.LastIndex(data, "_")
	if idx < 0 {
		return time.Time{}, fmt.Errorf("no day key in %q", data)
	}
	return time.ParseInLocation(dayKeyLayout, data[idx+1:], time.Local)
}
