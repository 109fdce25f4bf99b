package handler

import (
	"phrasebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const mainMenuText = "🏠 Main menu\n\nChoose what to do:"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if !h.authService.IsSignedIn(userID) {
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingPassword})
		return c.Send("Welcome back! Sign in to continue — send the password:")
	}

	h.ResetState(userID)
	return c.Send(mainMenuText, mainMenuMarkup())
}

// handleMainMenu returns to the main menu from any screen
func (h *Handler) handleMainMenu(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	if err := c.Edit(mainMenuText, mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(mainMenuText, mainMenuMarkup())
	}
	return c.Respond()
}

// handleSignOut closes the user's session
func (h *Handler) handleSignOut(c tele.Context) error {
	userID := c.Sender().ID

	h.authService.SignOut(userID)
	h.setSession(userID, nil)
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingPassword})

	h.logger.Info("User signed out", zap.Int64("user_id", userID))

	if err := c.Edit("Signed out. Send the password to sign in again:"); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send("Signed out. Send the password to sign in again:")
	}
	return c.Respond()
}

// handleCancel cancels the current dialog and returns to the main menu
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	h.ResetState(userID)

	if err := c.Edit(mainMenuText, mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(mainMenuText, mainMenuMarkup())
	}
	return c.Respond()
}
