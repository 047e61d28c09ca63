package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog"
)

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Username       string                `json:"username"`
	FavoriteGenres []simplecatalog.Genre `json:"favorite_genres"`
	DislikedGenres []simplecatalog.Genre `json:"disliked_genres"`
}

// UserHandler handles HTTP requests for the user directory
type UserHandler struct {
	service simplecatalog.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(service simplecatalog.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Routes returns the routes for user operations
func (h *UserHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreateUser)
	r.Get("/", h.GetUser)
	r.Delete("/{username}", h.DeleteUser)

	return r
}

// CreateUser registers a new user
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.CreateUser(r.Context(), simplecatalog.CreateUserRequest{
		Username:       req.Username,
		FavoriteGenres: req.FavoriteGenres,
		DislikedGenres: req.DislikedGenres,
	})
	if err != nil {
		slog.Error("Failed to create user", "username", req.Username, "error", err)
		writeServiceError(w, r, err)
		return
	}

	slog.Info("User created", "username", user.Username, "user_id", user.ID.String())
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, user)
}

// GetUser looks up a user by username
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeError(w, r, http.StatusBadRequest, "username is required")
		return
	}

	user, err := h.service.GetUser(r.Context(), username)
	if err != nil {
		slog.Error("Failed to get user", "username", username, "error", err)
		writeServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, user)
}

// DeleteUser removes a user by username
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.service.DeleteUser(r.Context(), username); err != nil {
		slog.Error("Failed to delete user", "username", username, "error", err)
		writeServiceError(w, r, err)
		return
	}

	slog.Info("User deleted", "username", username)
	render.Status(r, http.StatusOK)
	render.JSON(w, r, MessageResponse{Message: "user deleted"})
}
