// Package bot is an optional Telegram front-end over the word pair service.
package bot

import (
	"sync"

	"wordpairs/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// pageSize is the number of word pairs shown per list page
const pageSize = 5

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	wordPairService *service.WordPairService
	logger          *zap.Logger

	// Chat states (in-memory state machine)
	states   map[int64]*StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	wordPairService *service.WordPairService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		wordPairService: wordPairService,
		logger:          logger,
		states:          make(map[int64]*StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnAddPair, h.handleAddPair)
	h.bot.Handle(&btnListPairs, h.handleListPairs)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnBack, h.handleStart)
	h.bot.Handle(&btnBackToList, h.handleListPairs)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns the chat's current state
func (h *Handler) GetState(chatID int64) *StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[chatID]
	if !exists {
		return &StateData{State: StateIdle}
	}
	return state
}

// SetState sets the chat's state
func (h *Handler) SetState(chatID int64, state *StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[chatID] = state
}

// ResetState resets the chat to idle state
func (h *Handler) ResetState(chatID int64) {
	h.SetState(chatID, &StateData{State: StateIdle})
}

// Inline keyboard buttons
var (
	btnAddPair = tele.Btn{
		Unique: "add_pair",
		Text:   "➕ Add word pair",
	}
	btnListPairs = tele.Btn{
		Unique: "list_pairs",
		Text:   "📚 My word pairs",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Back",
	}
	btnBackToList = tele.Btn{
		Unique: "back_to_list",
		Text:   "◀️ To list",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAddPair),
		menu.Row(btnListPairs),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
