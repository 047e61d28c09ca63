package simplecatalog

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the main interface for the simple-catalog library
type Service interface {
	// Catalog operations
	ListContent(ctx context.Context, req ListContentRequest) (*ContentPage, error)
	ResolveKind(ctx context.Context, contentID uuid.UUID) (MediaKind, error)
	CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error)
	CreateTVShow(ctx context.Context, req CreateTVShowRequest) (*TVShow, error)
	DeleteContent(ctx context.Context, contentID uuid.UUID) error

	// My-list operations
	AddListItem(ctx context.Context, req AddListItemRequest) (*ListItem, error)
	RemoveListItem(ctx context.Context, username string, contentID uuid.UUID) error
	ListUserItems(ctx context.Context, req ListUserItemsRequest) (*ListItemPage, error)

	// User operations
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, username string) (*User, error)
	DeleteUser(ctx context.Context, username string) error
}
