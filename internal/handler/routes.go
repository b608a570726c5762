package handler

import (
	"net/http"
)

// RouteInfo describes one method of an API route
type RouteInfo struct {
	Description string `json:"description"`
	Parameters  string `json:"parameters"`
}

// RouteIndexResponse lists the available API routes
type RouteIndexResponse struct {
	Status          string                          `json:"status"`
	AvailableRoutes map[string]map[string]RouteInfo `json:"available_routes"`
}

var availableRoutes = map[string]map[string]RouteInfo{
	"/word-pairs": {
		http.MethodGet: {
			Description: "List word pairs",
			Parameters:  "page (optional, default 1), limit (optional, default 10)",
		},
		http.MethodPost: {
			Description: "Create word pair",
			Parameters:  "english_word (unique), foreign_word",
		},
	},
	"/word-pairs/{id}": {
		http.MethodGet: {
			Description: "Get word pair",
			Parameters:  "id",
		},
		http.MethodPatch: {
			Description: "Update word pair",
			Parameters:  "id, english_word (optional), foreign_word (optional), favorite (optional)",
		},
		http.MethodDelete: {
			Description: "Delete word pair",
			Parameters:  "id",
		},
	},
}

// handleRouteIndex describes the API
func (h *Handler) handleRouteIndex(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, RouteIndexResponse{
		Status:          statusSuccess,
		AvailableRoutes: availableRoutes,
	})
}

// handleHealth reports liveness
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, GenericResponse{Status: statusSuccess, Message: "ok"})
}
