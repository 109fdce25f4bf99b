package middleware

import (
	"phrasebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware gates button handlers behind the simulated sign-in
// session. Text messages pass through: a signed-out user's text is their
// password attempt and the text handler deals with it.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if !authService.IsSignedIn(userID) && c.Callback() != nil {
				logger.Debug("Blocked callback from signed-out user",
					zap.Int64("user_id", userID),
				)
				return c.Respond(&tele.CallbackResponse{
					Text: "Please sign in first",
				})
			}

			return next(c)
		}
	}
}
