package simplecatalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// service implements the Service interface
type service struct {
	repository Repository
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

// Catalog operations

// ListContent returns one page of the unified feed. The full candidate set is
// always materialized before sorting and slicing: cross-variant ordering
// requires seeing all rows, and Total must count the set before the slice.
func (s *service) ListContent(ctx context.Context, req ListContentRequest) (*ContentPage, error) {
	page, limit := normalizePagination(req.Page, req.Limit)

	var items []*ContentItem
	switch {
	case req.Kind == nil:
		movies, err := s.repository.ListMovies(ctx)
		if err != nil {
			return nil, err
		}
		shows, err := s.repository.ListTVShows(ctx)
		if err != nil {
			return nil, err
		}
		items = make([]*ContentItem, 0, len(movies)+len(shows))
		for _, m := range movies {
			items = append(items, m.ContentItem())
		}
		for _, sh := range shows {
			items = append(items, sh.ContentItem())
		}
	case *req.Kind == MediaKindMovie:
		movies, err := s.repository.ListMovies(ctx)
		if err != nil {
			return nil, err
		}
		items = make([]*ContentItem, 0, len(movies))
		for _, m := range movies {
			items = append(items, m.ContentItem())
		}
	case *req.Kind == MediaKindTVShow:
		shows, err := s.repository.ListTVShows(ctx)
		if err != nil {
			return nil, err
		}
		items = make([]*ContentItem, 0, len(shows))
		for _, sh := range shows {
			items = append(items, sh.ContentItem())
		}
	default:
		return nil, ErrInvalidMediaKind
	}

	sortByTitle(items)

	total := len(items)
	lo, hi := pageBounds(page, limit, total)

	return &ContentPage{
		Data:       items[lo:hi],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// ResolveKind resolves an opaque content identifier to its variant. The movie
// store is consulted first, then the TV show store; the precedence is part of
// the contract.
func (s *service) ResolveKind(ctx context.Context, contentID uuid.UUID) (MediaKind, error) {
	if _, err := s.repository.GetMovie(ctx, contentID); err == nil {
		return MediaKindMovie, nil
	} else if !errors.Is(err, ErrContentNotFound) {
		return "", err
	}

	if _, err := s.repository.GetTVShow(ctx, contentID); err == nil {
		return MediaKindTVShow, nil
	} else if !errors.Is(err, ErrContentNotFound) {
		return "", err
	}

	return "", ErrContentNotFound
}

func (s *service) CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if err := validGenres(req.Genres); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	movie := &Movie{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Genres:      req.Genres,
		ReleaseDate: req.ReleaseDate,
		Director:    req.Director,
		Actors:      req.Actors,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repository.CreateMovie(ctx, movie); err != nil {
		return nil, &ContentError{ContentID: movie.ID, Op: "create_movie", Err: err}
	}

	return movie, nil
}

func (s *service) CreateTVShow(ctx context.Context, req CreateTVShowRequest) (*TVShow, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if err := validGenres(req.Genres); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	show := &TVShow{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Genres:      req.Genres,
		Episodes:    req.Episodes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repository.CreateTVShow(ctx, show); err != nil {
		return nil, &ContentError{ContentID: show.ID, Op: "create_tvshow", Err: err}
	}

	return show, nil
}

// DeleteContent resolves the identifier's variant, then deletes from that
// variant's store. Existing my-list entries referencing the content are left
// in place; listing tolerates the stale reference.
func (s *service) DeleteContent(ctx context.Context, contentID uuid.UUID) error {
	kind, err := s.ResolveKind(ctx, contentID)
	if err != nil {
		return err
	}

	if kind == MediaKindMovie {
		err = s.repository.DeleteMovie(ctx, contentID)
	} else {
		err = s.repository.DeleteTVShow(ctx, contentID)
	}
	if err != nil {
		return &ContentError{ContentID: contentID, Op: "delete", Err: err}
	}

	return nil
}

// My-list operations

// AddListItem adds a content item to the user's list. The duplicate check
// here is a fast path; the repository's uniqueness enforcement on
// (user, content) is authoritative under concurrent adds.
func (s *service) AddListItem(ctx context.Context, req AddListItemRequest) (*ListItem, error) {
	user, err := s.repository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	kind, err := s.ResolveKind(ctx, req.ContentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repository.GetListItem(ctx, user.ID, req.ContentID); err == nil {
		return nil, ErrListItemExists
	} else if !errors.Is(err, ErrListItemNotFound) {
		return nil, err
	}

	item := &ListItem{
		ID:          uuid.New(),
		UserID:      user.ID,
		ContentID:   req.ContentID,
		ContentType: kind,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repository.CreateListItem(ctx, item); err != nil {
		return nil, &ListError{Username: req.Username, ContentID: req.ContentID, Op: "add", Err: err}
	}

	return item, nil
}

// RemoveListItem deletes the (user, content) entry. The delete count is the
// sole existence check; there is no read before the delete.
func (s *service) RemoveListItem(ctx context.Context, username string, contentID uuid.UUID) error {
	user, err := s.repository.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.repository.DeleteListItem(ctx, user.ID, contentID); err != nil {
		if errors.Is(err, ErrListItemNotFound) {
			return err
		}
		return &ListError{Username: username, ContentID: contentID, Op: "remove", Err: err}
	}

	return nil
}

// ListUserItems returns one page of the user's list with joined content
// details. Unlike the unified feed there is no cross-variant ordering, so
// limit/offset are pushed down to the repository. Details are fetched by the
// entry's cached content type; a deleted content item yields a nil detail
// rather than an error.
func (s *service) ListUserItems(ctx context.Context, req ListUserItemsRequest) (*ListItemPage, error) {
	user, err := s.repository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	page, limit := normalizePagination(req.Page, req.Limit)

	// An extreme page would overflow the multiplication; degrade to the
	// maximum offset, which the store resolves to an empty window.
	offset := math.MaxInt
	if page-1 <= math.MaxInt/limit {
		offset = (page - 1) * limit
	}

	entries, err := s.repository.ListItemsByUser(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	details := make([]*ListItemDetail, 0, len(entries))
	for _, entry := range entries {
		detail := &ListItemDetail{ListItem: *entry}

		switch entry.ContentType {
		case MediaKindMovie:
			movie, err := s.repository.GetMovie(ctx, entry.ContentID)
			if err == nil {
				detail.Content = movie.ContentItem()
			} else if !errors.Is(err, ErrContentNotFound) {
				return nil, err
			}
		case MediaKindTVShow:
			show, err := s.repository.GetTVShow(ctx, entry.ContentID)
			if err == nil {
				detail.Content = show.ContentItem()
			} else if !errors.Is(err, ErrContentNotFound) {
				return nil, err
			}
		}

		details = append(details, detail)
	}

	// Counted after the page fetch; a remove landing between the two reads
	// can make Total disagree with the page.
	total, err := s.repository.CountItemsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &ListItemPage{
		Data:       details,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// User operations

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, ErrUsernameRequired
	}
	if err := validGenres(req.FavoriteGenres); err != nil {
		return nil, err
	}
	if err := validGenres(req.DislikedGenres); err != nil {
		return nil, err
	}

	if _, err := s.repository.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Username:       req.Username,
		FavoriteGenres: req.FavoriteGenres,
		DislikedGenres: req.DislikedGenres,
		WatchHistory:   []WatchEvent{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repository.CreateUser(ctx, user); err != nil {
		return nil, &UserError{Username: req.Username, Op: "create", Err: err}
	}

	return user, nil
}

func (s *service) GetUser(ctx context.Context, username string) (*User, error) {
	return s.repository.GetUserByUsername(ctx, username)
}

func (s *service) DeleteUser(ctx context.Context, username string) error {
	return s.repository.DeleteUserByUsername(ctx, username)
}

func validGenres(genres []Genre) error {
	for _, g := range genres {
		if !g.IsValid() {
			return fmt.Errorf("%w: %s", ErrInvalidGenre, g)
		}
	}
	return nil
}
