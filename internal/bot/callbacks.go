package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"wordpairs/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Dynamic callback data prefixes
const (
	prefixPage     = "page_"
	prefixPair     = "pair_"
	prefixFavorite = "fav_"
	prefixDelete   = "del_"
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

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("chat_id", c.Chat().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", c.Chat().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend replaces the callback's message, falling back to a new message
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCallback handles ALL callback queries not matched by a static button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("chat_id", c.Chat().ID),
	)

	switch data {
	case btnAddPair.Unique:
		return h.handleAddPair(c)
	case btnListPairs.Unique, btnBackToList.Unique:
		return h.handleListPairs(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnBack.Unique:
		return h.handleStart(c)
	}

	action, arg := parseCallbackData(data)
	switch action {
	case prefixPage:
		page, err := strconv.Atoi(arg)
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
		}
		return h.showPage(c, page)
	case prefixPair:
		return h.handlePairSelection(c, arg)
	case prefixFavorite:
		return h.handleToggleFavorite(c, arg)
	case prefixDelete:
		return h.handleDeletePair(c, arg)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// parseCallbackData splits dynamic callback data into its prefix and argument
func parseCallbackData(data string) (string, string) {
	for _, prefix := range []string{prefixPage, prefixPair, prefixFavorite, prefixDelete} {
		if arg, ok := strings.CutPrefix(data, prefix); ok {
			return prefix, strings.SplitN(arg, "|", 2)[0]
		}
	}
	return "", data
}

// handleListPairs shows the first page of word pairs
func (h *Handler) handleListPairs(c tele.Context) error {
	return h.showPage(c, 1)
}

// showPage renders one page of word pairs as buttons
func (h *Handler) showPage(c tele.Context, page int) error {
	pairs, totalPages, err := h.wordPairService.ListPage(domain.QueryOptions{Page: page, Limit: pageSize})
	if err != nil {
		h.logger.Error("Failed to list word pairs", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load word pairs"})
	}

	if len(pairs) == 0 {
		if page <= 1 {
			return c.Respond(&tele.CallbackResponse{
				Text:      "You have no word pairs yet",
				ShowAlert: true,
			})
		}
		return c.Respond(&tele.CallbackResponse{Text: "No more word pairs"})
	}

	text, markup := pageView(pairs, page, totalPages)
	return h.editOrSend(c, text, markup)
}

// pageView builds the message and keyboard for one page of word pairs
func pageView(pairs []domain.WordPair, page, totalPages int) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("📚 Your word pairs (page %d of %d):", page, totalPages)
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(pairs)+2)

	for _, pair := range pairs {
		btn := markup.Data(pairLabel(pair), prefixPair+pair.ID)
		rows = append(rows, markup.Row(btn))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("%s%d", prefixPage, page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("%s%d", prefixPage, page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}

	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)

	return text, markup
}

func pairLabel(pair domain.WordPair) string {
	label := pair.EnglishWord + " — " + pair.ForeignWord
	if pair.Favorite {
		label = "⭐ " + label
	}
	return label
}

// handlePairSelection shows one word pair with its actions
func (h *Handler) handlePairSelection(c tele.Context, id string) error {
	pair, err := h.wordPairService.Get(id)
	if err != nil {
		return h.respondPairError(c, err)
	}

	text, markup := pairView(pair)
	return h.editOrSend(c, text, markup)
}

// pairView builds the message and keyboard for a single word pair
func pairView(pair domain.WordPair) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("📝 %s\n🔄 %s\n\nAdded %s",
		pair.EnglishWord,
		pair.ForeignWord,
		pair.CreatedAt.Format("2 Jan 2006"),
	)

	favText := "⭐ Add to favorites"
	if pair.Favorite {
		text = "⭐ " + text
		favText = "☆ Remove from favorites"
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(favText, prefixFavorite+pair.ID)),
		markup.Row(markup.Data("🗑 Delete", prefixDelete+pair.ID)),
		markup.Row(btnBackToList, btnBack),
	)
	return text, markup
}

// handleToggleFavorite flips the favorite flag and redraws the pair
func (h *Handler) handleToggleFavorite(c tele.Context, id string) error {
	pair, err := h.wordPairService.ToggleFavorite(id)
	if err != nil {
		return h.respondPairError(c, err)
	}

	text, markup := pairView(pair)
	return h.editOrSend(c, text, markup)
}

// handleDeletePair deletes the pair and goes back to the list
func (h *Handler) handleDeletePair(c tele.Context, id string) error {
	if err := h.wordPairService.Delete(id); err != nil {
		return h.respondPairError(c, err)
	}

	count, err := h.wordPairService.Count()
	if err == nil && count == 0 {
		return h.editOrSend(c, "🗑 Deleted. You have no word pairs left.\n\n"+mainMenuText, mainMenuMarkup())
	}
	return h.showPage(c, 1)
}

// respondPairError reports a failed single-pair operation as a callback alert
func (h *Handler) respondPairError(c tele.Context, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Respond(&tele.CallbackResponse{
			Text:      "This word pair no longer exists",
			ShowAlert: true,
		})
	}

	h.logger.Error("Word pair operation failed", zap.Error(err))
	return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Chat().ID)
	return h.editOrSend(c, mainMenuText, mainMenuMarkup())
}
