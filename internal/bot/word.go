package bot

import (
	"errors"
	"fmt"
	"strings"

	"wordpairs/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// pairSeparators split "english - foreign" one-line input
var pairSeparators = []string{" - ", " — ", "="}

// parsePairText splits one-line input into a draft. ok is false when text holds a single word.
func parsePairText(text string) (domain.Draft, bool) {
	for _, sep := range pairSeparators {
		english, foreign, found := strings.Cut(text, sep)
		if !found {
			continue
		}
		draft := domain.Draft{EnglishWord: english, ForeignWord: foreign}.Normalize()
		if draft.EnglishWord == "" || draft.ForeignWord == "" {
			return domain.Draft{}, false
		}
		return draft, true
	}
	return domain.Draft{}, false
}

// handleAddPair starts the two-step add flow
func (h *Handler) handleAddPair(c tele.Context) error {
	h.SetState(c.Chat().ID, &StateData{State: StateWaitingEnglishWord})

	text := "Send me the English word\n\nOr send a whole pair at once: hello - hola"
	if err := c.Edit(text, cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c); handleErr == nil {
			return nil
		}
		return c.Send(text, cancelMarkup())
	}
	return c.Respond()
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Chat().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if draft, ok := parsePairText(text); ok {
		return h.savePair(c, draft)
	}

	state := h.GetState(chatID)

	switch state.State {
	case StateWaitingForeignWord:
		return h.savePair(c, domain.Draft{EnglishWord: state.EnglishWord, ForeignWord: text})

	default:
		// Idle or waiting for the English word - take the text as the English word
		if text == "" {
			return c.Send("Send me the English word", cancelMarkup())
		}

		h.SetState(chatID, &StateData{
			State:       StateWaitingForeignWord,
			EnglishWord: text,
		})

		return c.Send(fmt.Sprintf("Now send the translation of %q", text), cancelMarkup())
	}
}

// savePair stores the draft and reports the outcome to the chat
func (h *Handler) savePair(c tele.Context, draft domain.Draft) error {
	chatID := c.Chat().ID

	pair, err := h.wordPairService.Create(draft)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateKey), errors.Is(err, domain.ErrValidation):
			h.ResetState(chatID)
			return c.Send("⚠️ "+err.Error(), mainMenuMarkup())
		default:
			h.logger.Error("Failed to save word pair",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
			)
			return c.Send("Could not save the word pair. Please try again.")
		}
	}

	h.logger.Info("Word pair saved from chat",
		zap.Int64("chat_id", chatID),
		zap.String("id", pair.ID),
	)

	// Ready for the next word
	h.SetState(chatID, &StateData{State: StateWaitingEnglishWord})

	return c.Send(
		fmt.Sprintf("✅ Saved: %s — %s\n\nSend the next English word or go back with /start", pair.EnglishWord, pair.ForeignWord),
	)
}
