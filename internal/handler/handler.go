package handler

import (
	"net/http"

	"wordpairs/internal/service"

	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// Handler serves the word pair HTTP API
type Handler struct {
	wordPairService *service.WordPairService
	logger          *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(wordPairService *service.WordPairService, logger *zap.Logger) *Handler {
	return &Handler{
		wordPairService: wordPairService,
		logger:          logger,
	}
}

// RegisterRoutes registers all API routes on mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleRouteIndex)
	mux.HandleFunc("GET /healthz", h.handleHealth)

	mux.HandleFunc("GET /word-pairs", h.handleListWordPairs)
	mux.HandleFunc("POST /word-pairs", h.handleCreateWordPair)
	mux.HandleFunc("GET /word-pairs/{id}", h.handleGetWordPair)
	mux.HandleFunc("PATCH /word-pairs/{id}", h.handleEditWordPair)
	mux.HandleFunc("DELETE /word-pairs/{id}", h.handleDeleteWordPair)
}
