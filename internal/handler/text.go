package handler

import (
	"strings"
	"time"

	"phrasebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const timeLayout = "2006-01-02 15:04"

// handleText handles all text messages based on the user's dialog state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// If not signed in, any text is a password attempt
	if !h.authService.IsSignedIn(userID) {
		if h.authService.CheckPassword(text) {
			h.authService.SignIn(userID)
			h.logger.Info("User signed in", zap.Int64("user_id", userID))
			h.ResetState(userID)
			return c.Send("✅ Signed in!\n\n"+mainMenuText, mainMenuMarkup())
		}
		return c.Send("Wrong password, try again:")
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingSearch:
		state.Search = text
		state.State = domain.StateIdle
		h.SetState(userID, state)
		return h.sendTrainer(c, userID)

	case domain.StateAddContent:
		state.Draft.Content = text
		state.State = domain.StateAddTranslation
		h.SetState(userID, state)
		return c.Send("Now send the translation:", cancelMarkup())

	case domain.StateAddTranslation:
		state.Draft.Translation = text
		state.State = domain.StateAddExample
		h.SetState(userID, state)
		return c.Send("Send an example sentence, or \"-\" to skip:", cancelMarkup())

	case domain.StateAddExample:
		if text != "-" {
			state.Draft.Example = text
		}
		state.State = domain.StateAddType
		h.SetState(userID, state)
		return c.Send("What kind of item is it?", itemTypeMarkup())

	case domain.StateEditValue:
		return h.applyItemEdit(c, userID, state, text)

	case domain.StateEventTitle:
		return h.applyEventTitle(c, userID, state, text)

	case domain.StateEventStart:
		start, err := time.ParseInLocation(timeLayout, text, time.Local)
		if err != nil {
			return c.Send("Can't read that time. Use the format 2024-12-15 10:00:", cancelMarkup())
		}
		state.EventDraft.Start = start
		state.State = domain.StateEventEnd
		h.SetState(userID, state)
		return c.Send("When does it end? (same format)", cancelMarkup())

	case domain.StateEventEnd:
		end, err := time.ParseInLocation(timeLayout, text, time.Local)
		if err != nil {
			return c.Send("Can't read that time. Use the format 2024-12-15 11:00:", cancelMarkup())
		}
		if end.Before(state.EventDraft.Start) {
			return c.Send("The end is before the start. Send the end time again:", cancelMarkup())
		}
		state.EventDraft.End = end
		h.SetState(userID, state)
		return c.Send("Is it an event or a reminder?", eventTypeMarkup())

	default:
		// Any free text on the idle screen is a search
		state.Search = text
		h.SetState(userID, state)
		return h.sendTrainer(c, userID)
	}
}

// applyItemEdit performs the partial update for a single edited field.
// On failure the dialog state stays so the user can retry without
// re-entering anything.
func (h *Handler) applyItemEdit(c tele.Context, userID int64, state *domain.StateData, text string) error {
	update := domain.ItemUpdate{}
	switch state.EditField {
	case "content":
		update.Content = &text
	case "translation":
		update.Translation = &text
	case "example":
		if text == "-" {
			text = ""
		}
		update.Example = &text
	default:
		h.ResetState(userID)
		return c.Send("Unknown field, editing cancelled.")
	}

	if _, err := h.itemService.Update(reqCtx(), state.EditID, update); err != nil {
		h.logger.Error("Failed to update item",
			zap.String("item_id", state.EditID),
			zap.Error(err),
		)
		return c.Send("Couldn't save the change. Send the new value again or /start to cancel.")
	}

	h.ResetState(userID)
	if err := c.Send("✅ Saved!"); err != nil {
		return err
	}
	return h.sendTrainer(c, userID)
}

// applyEventTitle finishes a title edit or moves the add-event dialog on
func (h *Handler) applyEventTitle(c tele.Context, userID int64, state *domain.StateData, text string) error {
	if state.EditID != "" {
		event, err := h.planner.Get(state.EditID)
		if err != nil {
			h.ResetState(userID)
			return c.Send("That event is gone.")
		}
		event.Title = text
		if err := h.planner.Update(event); err != nil {
			return c.Send("Couldn't rename the event. Send the title again:", cancelMarkup())
		}
		h.ResetState(userID)
		return h.sendEventDetail(c, event.ID)
	}

	state.EventDraft.Title = text
	state.State = domain.StateEventStart
	h.SetState(userID, state)
	return c.Send("When does it start? Send it like 2024-12-15 10:00:", cancelMarkup())
}
