package simplecatalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for catalog, user, and my-list persistence.
//
// Implementations must enforce two invariants at the persistence boundary:
// usernames are unique, and at most one my-list entry exists per
// (user, content) pair. The service performs advisory checks before writing,
// but the repository's own enforcement is authoritative under concurrency;
// violating writes must fail with ErrUsernameTaken or ErrListItemExists.
type Repository interface {
	// Movie operations
	CreateMovie(ctx context.Context, movie *Movie) error
	GetMovie(ctx context.Context, id uuid.UUID) (*Movie, error)
	ListMovies(ctx context.Context) ([]*Movie, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error

	// TV show operations
	CreateTVShow(ctx context.Context, show *TVShow) error
	GetTVShow(ctx context.Context, id uuid.UUID) (*TVShow, error)
	ListTVShows(ctx context.Context) ([]*TVShow, error)
	DeleteTVShow(ctx context.Context, id uuid.UUID) error

	// User operations
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	DeleteUserByUsername(ctx context.Context, username string) error

	// My-list operations. ListItemsByUser pages at the storage layer;
	// DeleteListItem uses the delete count as the sole existence check and
	// returns ErrListItemNotFound when nothing was deleted.
	CreateListItem(ctx context.Context, item *ListItem) error
	GetListItem(ctx context.Context, userID, contentID uuid.UUID) (*ListItem, error)
	DeleteListItem(ctx context.Context, userID, contentID uuid.UUID) error
	ListItemsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ListItem, error)
	CountItemsByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
