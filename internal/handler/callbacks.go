package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not
// modified, just acknowledge the callback; otherwise acknowledge and
// return the error so the caller can send a new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback routes ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons registered by Unique come through here when the
	// Unique got lost in transit
	unique := callback.Unique
	if unique == "" {
		unique = data
	}
	switch unique {
	case "trainer":
		return h.handleTrainer(c)
	case "quiz_start":
		return h.handleQuizStart(c)
	case "calendar":
		return h.handleCalendarMonth(c)
	case "sign_out":
		return h.handleSignOut(c)
	case "main_menu":
		return h.handleMainMenu(c)
	case "items_search":
		return h.handleSearchPrompt(c)
	case "items_add":
		return h.handleAddItemStart(c)
	case "items_more":
		return h.handleLoadMore(c)
	case "cancel":
		return h.handleCancel(c)
	}

	// Dynamic buttons routed by data prefix
	switch {
	case data == "items_back":
		return h.showTrainer(c, c.Sender().ID, true)
	case strings.HasPrefix(data, "itemtype_"):
		return h.handleItemTypeChosen(c, data)
	case strings.HasPrefix(data, "item_"):
		return h.handleItemCard(c, data)
	case strings.HasPrefix(data, "edit_"):
		return h.handleEditField(c, data)
	case strings.HasPrefix(data, "delyes_"):
		return h.handleDeleteConfirmed(c, data)
	case strings.HasPrefix(data, "del_"):
		return h.handleDeletePrompt(c, data)

	case strings.HasPrefix(data, "quizopt_"):
		return h.handleQuizOption(c, data)
	case data == "quiznext":
		return h.handleQuizNext(c)
	case data == "quizcloseyes", data == "quizfinish":
		return h.handleQuizCloseConfirmed(c)
	case data == "quizcloseno":
		return h.handleQuizCloseCancelled(c)
	case data == "quizclose":
		return h.handleQuizClose(c)
	case data == "quizretry":
		return h.handleQuizRetry(c)

	case data == "calprev", data == "calnext":
		return h.handleCalendarNav(c, data)
	case data == "calback":
		return h.showMonth(c, c.Sender().ID, true)
	case data == "caladd":
		return h.handleEventAdd(c)
	case strings.HasPrefix(data, "calday_"):
		return h.handleCalendarDay(c, data)
	case strings.HasPrefix(data, "caldayprev_"), strings.HasPrefix(data, "caldaynext_"):
		return h.handleCalendarDayNav(c, data)
	case strings.HasPrefix(data, "calev_"):
		return h.handleEventDetail(c, data)
	case strings.HasPrefix(data, "caldel_"):
		return h.handleEventDelete(c, data)
	case strings.HasPrefix(data, "evedit_"):
		return h.handleEventRename(c, data)
	case strings.HasPrefix(data, "evtype_"):
		return h.handleEventTypeChosen(c, data)
	case strings.HasPrefix(data, "evallday_"):
		return h.handleEventAllDayChosen(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
