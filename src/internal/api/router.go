package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(lists ListProvider) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Recovery)
	r.Use(Logger)
	r.Use(CORS)

	h := NewHandler(lists)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/lists", h.GetLists)
		r.Get("/default-list", h.GetDefaultList)
		r.Get("/lists/{name}", h.GetList)

		r.Get("/status", h.GetStatus)
		r.Post("/reload", h.Reload)
	})

	r.Get("/health", h.CheckHealth)

	return r
}
