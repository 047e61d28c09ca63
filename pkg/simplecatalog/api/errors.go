package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog"
)

// ErrorResponse is the JSON body written for failed requests
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusForError maps service errors to HTTP status codes. Wrapped errors are
// matched through errors.Is, so repository-level sentinels surface correctly
// even when the service layer has wrapped them.
func statusForError(err error) int {
	switch {
	case errors.Is(err, simplecatalog.ErrUserNotFound),
		errors.Is(err, simplecatalog.ErrContentNotFound),
		errors.Is(err, simplecatalog.ErrListItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, simplecatalog.ErrListItemExists),
		errors.Is(err, simplecatalog.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, simplecatalog.ErrInvalidMediaKind),
		errors.Is(err, simplecatalog.ErrInvalidGenre),
		errors.Is(err, simplecatalog.ErrTitleRequired),
		errors.Is(err, simplecatalog.ErrUsernameRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	})
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, statusForError(err), err.Error())
}
