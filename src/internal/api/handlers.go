package api

import (
	"encoding/json"
	"net/http"

	"github.com/maksimkurb/newsletter-lists/src/internal/log"
	"github.com/maksimkurb/newsletter-lists/src/internal/newsletter"
	"github.com/maksimkurb/newsletter-lists/src/internal/service"
)

// ListProvider gives handlers access to the lists currently in use.
// *service.ListService implements it.
type ListProvider interface {
	Collection() *newsletter.Collection
	CheckConfig() error
	Status() service.Status
	Reload() (bool, error)
}

// Handler serves all API endpoints.
type Handler struct {
	lists ListProvider
}

// NewHandler creates a new API handler.
func NewHandler(lists ListProvider) *Handler {
	return &Handler{lists: lists}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(DataResponse{Data: data}); err != nil {
		log.Warnf("Failed to write response: %v", err)
	}
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}
