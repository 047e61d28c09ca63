package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog"
)

// AddListItemRequest is the request body for adding a content item to a list
type AddListItemRequest struct {
	Username  string `json:"username"`
	ContentID string `json:"content_id"`
}

// MessageResponse is the response body for operations that return no entity
type MessageResponse struct {
	Message string `json:"message"`
}

// MyListHandler handles HTTP requests for per-user lists
type MyListHandler struct {
	service simplecatalog.Service
}

// NewMyListHandler creates a new my-list handler
func NewMyListHandler(service simplecatalog.Service) *MyListHandler {
	return &MyListHandler{service: service}
}

// Routes returns the routes for my-list operations
func (h *MyListHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.AddItem)
	r.Get("/", h.ListItems)
	r.Delete("/{username}/{contentID}", h.RemoveItem)

	return r
}

// AddItem adds a content item to the user's list
func (h *MyListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddListItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.Username == "" {
		writeError(w, r, http.StatusBadRequest, "username is required")
		return
	}

	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		slog.Error("Invalid content ID", "content_id", req.ContentID, "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid content ID")
		return
	}

	item, err := h.service.AddListItem(r.Context(), simplecatalog.AddListItemRequest{
		Username:  req.Username,
		ContentID: contentID,
	})
	if err != nil {
		slog.Error("Failed to add list item", "username", req.Username, "content_id", req.ContentID, "error", err)
		writeServiceError(w, r, err)
		return
	}

	slog.Info("List item added", "username", req.Username, "content_id", req.ContentID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, item)
}

// ListItems returns one page of the user's list with content details joined in
func (h *MyListHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeError(w, r, http.StatusBadRequest, "username is required")
		return
	}

	page, err := h.service.ListUserItems(r.Context(), simplecatalog.ListUserItemsRequest{
		Username: username,
		Page:     queryInt(r, "page", simplecatalog.DefaultPage),
		Limit:    queryInt(r, "limit", simplecatalog.DefaultLimit),
	})
	if err != nil {
		slog.Error("Failed to list user items", "username", username, "error", err)
		writeServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, page)
}

// RemoveItem removes a content item from the user's list
func (h *MyListHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	idStr := chi.URLParam(r, "contentID")
	contentID, err := uuid.Parse(idStr)
	if err != nil {
		slog.Error("Invalid content ID", "content_id", idStr, "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid content ID")
		return
	}

	if err := h.service.RemoveListItem(r.Context(), username, contentID); err != nil {
		slog.Error("Failed to remove list item", "username", username, "content_id", idStr, "error", err)
		writeServiceError(w, r, err)
		return
	}

	slog.Info("List item removed", "username", username, "content_id", idStr)
	render.Status(r, http.StatusOK)
	render.JSON(w, r, MessageResponse{Message: "item removed from list"})
}
