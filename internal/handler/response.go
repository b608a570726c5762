package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordpairs/internal/domain"

	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
)

// WordPairData wraps a single word pair in the success envelope
type WordPairData struct {
	WordPair domain.WordPair `json:"word_pair"`
}

// SingleWordPairResponse is the success envelope for one word pair
type SingleWordPairResponse struct {
	Status string       `json:"status"`
	Data   WordPairData `json:"data"`
}

// WordPairListResponse is the success envelope for a page of word pairs
type WordPairListResponse struct {
	Status    string            `json:"status"`
	Results   int               `json:"results"`
	WordPairs []domain.WordPair `json:"word_pairs"`
}

// GenericResponse is the envelope for failures and plain messages
type GenericResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func newSingleResponse(pair domain.WordPair) SingleWordPairResponse {
	return SingleWordPairResponse{
		Status: statusSuccess,
		Data:   WordPairData{WordPair: pair},
	}
}

func newListResponse(pairs []domain.WordPair) WordPairListResponse {
	if pairs == nil {
		pairs = []domain.WordPair{}
	}
	return WordPairListResponse{
		Status:    statusSuccess,
		Results:   len(pairs),
		WordPairs: pairs,
	}
}

// statusForError maps a service error to its HTTP status and client message.
// Unknown errors never leak their text.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// writeJSON writes data with the given status code and logs encoding errors
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeFail writes the fail envelope
func (h *Handler) writeFail(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, GenericResponse{Status: statusFail, Message: message})
}

// writeError renders a service error into the fail envelope
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	h.writeFail(w, status, message)
}
