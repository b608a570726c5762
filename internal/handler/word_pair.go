package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"wordpairs/internal/domain"

	"github.com/google/uuid"
)

// handleListWordPairs returns one page of word pairs
func (h *Handler) handleListWordPairs(w http.ResponseWriter, r *http.Request) {
	opts, err := parseQueryOptions(r)
	if err != nil {
		h.writeFail(w, http.StatusBadRequest, err.Error())
		return
	}

	pairs, err := h.wordPairService.List(opts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newListResponse(pairs))
}

// handleCreateWordPair stores a new word pair
func (h *Handler) handleCreateWordPair(w http.ResponseWriter, r *http.Request) {
	var draft domain.Draft
	if err := decodeBody(w, r, &draft); err != nil {
		h.writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.wordPairService.Create(draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, newSingleResponse(pair))
}

// handleGetWordPair returns a single word pair
func (h *Handler) handleGetWordPair(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	pair, err := h.wordPairService.Get(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newSingleResponse(pair))
}

// handleEditWordPair applies a partial update
func (h *Handler) handleEditWordPair(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var payload domain.UpdatePayload
	if err := decodeBody(w, r, &payload); err != nil {
		h.writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.wordPairService.Edit(id, payload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newSingleResponse(pair))
}

// handleDeleteWordPair removes a word pair and answers with an empty body
func (h *Handler) handleDeleteWordPair(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.wordPairService.Delete(id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID extracts the canonical UUID from the {id} path segment.
// On failure it has already written a 400 response.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.writeFail(w, http.StatusBadRequest, fmt.Sprintf("Invalid word pair ID: %s", raw))
		return "", false
	}
	return id.String(), true
}

// parseQueryOptions reads the optional page and limit query parameters
func parseQueryOptions(r *http.Request) (domain.QueryOptions, error) {
	var opts domain.QueryOptions
	query := r.URL.Query()

	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("invalid page: %s", v)
		}
		opts.Page = page
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("invalid limit: %s", v)
		}
		opts.Limit = limit
	}

	return opts, nil
}

// decodeBody reads exactly one JSON object with only known fields into dst
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
