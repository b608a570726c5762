package bot

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const mainMenuText = "🏠 Main menu\n\nChoose an action:"

// handleStart handles /start command and the back buttons
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("Chat opened main menu",
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(c.Chat().ID)

	if c.Callback() != nil {
		if err := c.Edit(mainMenuText, mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c); handleErr == nil {
				return nil
			}
			return c.Send(mainMenuText, mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(mainMenuText, mainMenuMarkup())
}
