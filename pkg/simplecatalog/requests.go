package simplecatalog

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// ListContentRequest contains parameters for listing the unified content feed.
// Kind nil means both variants. Page and Limit fall back to the defaults when
// not positive.
type ListContentRequest struct {
	Kind  *MediaKind
	Page  int
	Limit int
}

// CreateMovieRequest contains parameters for creating a movie.
type CreateMovieRequest struct {
	Title       string
	Description string
	Genres      []Genre
	ReleaseDate *time.Time
	Director    string
	Actors      []string
}

// CreateTVShowRequest contains parameters for creating a TV show.
type CreateTVShowRequest struct {
	Title       string
	Description string
	Genres      []Genre
	Episodes    []Episode
}

// AddListItemRequest contains parameters for adding a content item to a
// user's list.
type AddListItemRequest struct {
	Username  string
	ContentID uuid.UUID
}

// ListUserItemsRequest contains parameters for listing a user's list.
type ListUserItemsRequest struct {
	Username string
	Page     int
	Limit    int
}

// CreateUserRequest contains parameters for creating a user.
type CreateUserRequest struct {
	Username       string
	FavoriteGenres []Genre
	DislikedGenres []Genre
}
