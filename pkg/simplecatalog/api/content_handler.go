package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog"
)

// ContentHandler handles HTTP requests for the unified content feed
type ContentHandler struct {
	service simplecatalog.Service
}

// NewContentHandler creates a new content handler
func NewContentHandler(service simplecatalog.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// Routes returns the routes for the content feed
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListContent)

	return r
}

// ListContent returns one alphabetically sorted page of the catalog,
// optionally filtered by the type query parameter
func (h *ContentHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	req := simplecatalog.ListContentRequest{
		Page:  queryInt(r, "page", simplecatalog.DefaultPage),
		Limit: queryInt(r, "limit", simplecatalog.DefaultLimit),
	}

	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		kind := simplecatalog.MediaKind(typeParam)
		if !kind.IsValid() {
			slog.Error("Invalid content type filter", "type", typeParam)
			writeError(w, r, http.StatusBadRequest, "invalid content type: "+typeParam)
			return
		}
		req.Kind = &kind
	}

	page, err := h.service.ListContent(r.Context(), req)
	if err != nil {
		slog.Error("Failed to list content", "error", err)
		writeServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, page)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
