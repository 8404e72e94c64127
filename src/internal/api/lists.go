package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maksimkurb/newsletter-lists/src/internal/newsletter"
)

// GetLists returns all configured lists.
// GET /api/v1/lists
func (h *Handler) GetLists(w http.ResponseWriter, r *http.Request) {
	collection := h.lists.Collection()

	lists := collection.Lists()
	response := ListsResponse{
		Lists:           make([]ListInfo, 0, len(lists)),
		DefaultListName: collection.DefaultListName(),
	}
	for _, list := range lists {
		response.Lists = append(response.Lists, toListInfo(list, collection))
	}

	writeJSONData(w, response)
}

// GetDefaultList returns the default list.
// GET /api/v1/default-list
func (h *Handler) GetDefaultList(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, "")
}

// GetList returns a list by name.
// GET /api/v1/lists/{name}
func (h *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		// an empty path segment must not fall back to the default list
		WriteValidationError(w, "list name is required", nil)
		return
	}
	h.resolve(w, name)
}

func (h *Handler) resolve(w http.ResponseWriter, name string) {
	collection := h.lists.Collection()

	list, err := collection.FindByName(name)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	writeJSONData(w, toListInfo(list, collection))
}

func writeResolveError(w http.ResponseWriter, err error) {
	var invalid *newsletter.InvalidListError
	if !errors.As(err, &invalid) {
		WriteInternalError(w, err.Error())
		return
	}

	details := map[string]any{
		"list_name": invalid.ListName,
		"reason":    invalid.Reason,
	}

	switch invalid.Reason {
	case newsletter.ReasonDefaultMisconfigured:
		WriteError(w, http.StatusInternalServerError, NewAPIError(ErrCodeMisconfigured, err.Error()).WithDetails(details))
	default:
		WriteError(w, http.StatusNotFound, NewAPIError(ErrCodeNotFound, err.Error()).WithDetails(details))
	}
}

func toListInfo(list newsletter.List, collection *newsletter.Collection) ListInfo {
	return ListInfo{
		Name:    list.Name(),
		ID:      list.ID(),
		Default: list.Name() == collection.DefaultListName(),
	}
}
