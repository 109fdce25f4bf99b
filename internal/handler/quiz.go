package handler

import (
	"fmt"
	"strconv"
	"strings"

	"phrasebot/internal/quiz"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleQuizStart opens a fresh quiz session and fetches the first question
func (h *Handler) handleQuizStart(c tele.Context) error {
	userID := c.Sender().ID

	session := quiz.NewSession(h.exerciseService, h.quizQuestions, h.logger)
	h.setSession(userID, session)

	if err := session.LoadQuestion(reqCtx()); err != nil {
		h.logger.Error("Failed to load first quiz question", zap.Error(err))
	}
	return h.renderQuiz(c, userID)
}

// renderQuiz draws the screen matching the session's current state
func (h *Handler) renderQuiz(c tele.Context, userID int64) error {
	session := h.session(userID)
	if session == nil {
		return h.handleMainMenu(c)
	}

	markup := &tele.ReplyMarkup{}

	switch session.State() {
	case quiz.StateFinished:
		text := fmt.Sprintf("🏁 Exercise result\n\nYour score: %d / %d", session.Score(), session.Size())
		markup.Inline(markup.Row(markup.Data("Finish", "quizfinish")))
		return h.reply(c, userID, true, text, markup)

	case quiz.StateConfirmingClose:
		text := "Are you sure? Your progress will be lost."
		markup.Inline(markup.Row(
			markup.Data("Yes, close", "quizcloseyes"),
			markup.Data("Keep going", "quizcloseno"),
		))
		return h.reply(c, userID, true, text, markup)

	case quiz.StateAwaitingAnswer:
		question := session.Question()
		var b strings.Builder
		fmt.Fprintf(&b, "🎯 Question %d of %d\n\n%s", session.Step()+1, session.Size(), question.TestItem)

		rows := []tele.Row{}
		for i, opt := range question.Options {
			label := opt
			if opt == session.Selection() {
				label = "✅ " + opt
			}
			rows = append(rows, markup.Row(markup.Data(label, "quizopt_"+strconv.Itoa(i))))
		}

		nextLabel := "Next"
		if session.Step() == session.Size()-1 {
			nextLabel = "Finish"
		}
		rows = append(rows, markup.Row(markup.Data(nextLabel, "quiznext")))
		rows = append(rows, markup.Row(markup.Data("❌ Close", "quizclose")))
		markup.Inline(rows...)
		return h.reply(c, userID, true, b.String(), markup)

	default:
		// Awaiting a question: either still loading failed, or mid-fetch
		text := "Loading question..."
		if err := session.LoadError(); err != nil {
			text = "Couldn't load a question. The trainer API may be down."
		}
		markup.Inline(
			markup.Row(markup.Data("🔄 Retry", "quizretry")),
			markup.Row(markup.Data("❌ Close", "quizclose")),
		)
		return h.reply(c, userID, true, text, markup)
	}
}

// handleQuizOption records a (replaceable) answer selection
func (h *Handler) handleQuizOption(c tele.Context, data string) error {
	userID := c.Sender().ID
	session := h.session(userID)
	if session == nil {
		return c.Respond()
	}

	question := session.Question()
	idx, err := strconv.Atoi(strings.TrimPrefix(data, "quizopt_"))
	if err != nil || question == nil || idx < 0 || idx >= len(question.Options) {
		return c.Respond(&tele.CallbackResponse{Text: "Bad answer option"})
	}

	if err := session.Select(question.Options[idx]); err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Can't select an answer right now"})
	}
	return h.renderQuiz(c, userID)
}

// handleQuizNext submits the current selection and moves the session on
func (h *Handler) handleQuizNext(c tele.Context) error {
	userID := c.Sender().ID
	session := h.session(userID)
	if session == nil {
		return c.Respond()
	}

	if err := session.Submit(reqCtx()); err != nil {
		switch err {
		case quiz.ErrNoSelection:
			return c.Respond(&tele.CallbackResponse{Text: "Pick an answer first"})
		case quiz.ErrNotAnswerable:
			// A check is already in flight or the session moved on
			return c.Respond()
		default:
			return c.Respond(&tele.CallbackResponse{
				Text:      "Couldn't check your answer, try again",
				ShowAlert: true,
			})
		}
	}

	if session.State() == quiz.StateAwaitingQuestion {
		if err := session.LoadQuestion(reqCtx()); err != nil {
			h.logger.Error("Failed to load next quiz question", zap.Error(err))
		}
	}
	return h.renderQuiz(c, userID)
}

// handleQuizClose asks for confirmation when progress would be lost
func (h *Handler) handleQuizClose(c tele.Context) error {
	userID := c.Sender().ID
	session := h.session(userID)
	if session == nil {
		return h.handleMainMenu(c)
	}

	if session.RequestClose() {
		return h.renderQuiz(c, userID)
	}

	// Nothing answered yet, or already finished: no confirmation needed
	h.setSession(userID, nil)
	return h.handleMainMenu(c)
}

// handleQuizCloseConfirmed discards the session
func (h *Handler) handleQuizCloseConfirmed(c tele.Context) error {
	h.setSession(c.Sender().ID, nil)
	return h.handleMainMenu(c)
}

// handleQuizCloseCancelled returns to where the session was
func (h *Handler) handleQuizCloseCancelled(c tele.Context) error {
	userID := c.Sender().ID
	if session := h.session(userID); session != nil {
		session.CancelClose()
	}
	return h.renderQuiz(c, userID)
}

// handleQuizRetry retries loading a question after a failure
func (h *Handler) handleQuizRetry(c tele.Context) error {
	userID := c.Sender().ID
	session := h.session(userID)
	if session == nil {
		return h.handleMainMenu(c)
	}

	if err := session.LoadQuestion(reqCtx()); err != nil {
		h.logger.Error("Failed to reload quiz question", zap.Error(err))
	}
	return h.renderQuiz(c, userID)
}
