package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog"
)

// Repository implements simplecatalog.Repository using in-memory storage.
// Insertion order is preserved per collection so the feed's stable title sort
// has a deterministic tie-break, matching the storage-order contract.
type Repository struct {
	mu          sync.RWMutex
	movies      map[uuid.UUID]*simplecatalog.Movie
	movieOrder  []uuid.UUID
	tvshows     map[uuid.UUID]*simplecatalog.TVShow
	tvshowOrder []uuid.UUID
	users       map[uuid.UUID]*simplecatalog.User
	usersByName map[string]uuid.UUID
	listItems   map[uuid.UUID]*simplecatalog.ListItem
	listByUser  map[uuid.UUID][]uuid.UUID // user_id -> []item_id, insertion order
	listByPair  map[string]uuid.UUID      // "user:content" -> item_id
}

// New creates a new in-memory repository
func New() simplecatalog.Repository {
	return &Repository{
		movies:      make(map[uuid.UUID]*simplecatalog.Movie),
		tvshows:     make(map[uuid.UUID]*simplecatalog.TVShow),
		users:       make(map[uuid.UUID]*simplecatalog.User),
		usersByName: make(map[string]uuid.UUID),
		listItems:   make(map[uuid.UUID]*simplecatalog.ListItem),
		listByUser:  make(map[uuid.UUID][]uuid.UUID),
		listByPair:  make(map[string]uuid.UUID),
	}
}

func pairKey(userID, contentID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", userID, contentID)
}

// Movie operations

func (r *Repository) CreateMovie(ctx context.Context, movie *simplecatalog.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Create a copy to avoid external modifications
	movieCopy := *movie
	if _, exists := r.movies[movie.ID]; !exists {
		r.movieOrder = append(r.movieOrder, movie.ID)
	}
	r.movies[movie.ID] = &movieCopy

	return nil
}

func (r *Repository) GetMovie(ctx context.Context, id uuid.UUID) (*simplecatalog.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, exists := r.movies[id]
	if !exists {
		return nil, simplecatalog.ErrContentNotFound
	}

	movieCopy := *movie
	return &movieCopy, nil
}

func (r *Repository) ListMovies(ctx context.Context) ([]*simplecatalog.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*simplecatalog.Movie, 0, len(r.movieOrder))
	for _, id := range r.movieOrder {
		if movie, exists := r.movies[id]; exists {
			movieCopy := *movie
			result = append(result, &movieCopy)
		}
	}

	return result, nil
}

func (r *Repository) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.movies[id]; !exists {
		return simplecatalog.ErrContentNotFound
	}

	delete(r.movies, id)
	r.movieOrder = removeID(r.movieOrder, id)
	return nil
}

// TV show operations

func (r *Repository) CreateTVShow(ctx context.Context, show *simplecatalog.TVShow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	showCopy := *show
	if _, exists := r.tvshows[show.ID]; !exists {
		r.tvshowOrder = append(r.tvshowOrder, show.ID)
	}
	r.tvshows[show.ID] = &showCopy

	return nil
}

func (r *Repository) GetTVShow(ctx context.Context, id uuid.UUID) (*simplecatalog.TVShow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	show, exists := r.tvshows[id]
	if !exists {
		return nil, simplecatalog.ErrContentNotFound
	}

	showCopy := *show
	return &showCopy, nil
}

func (r *Repository) ListTVShows(ctx context.Context) ([]*simplecatalog.TVShow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*simplecatalog.TVShow, 0, len(r.tvshowOrder))
	for _, id := range r.tvshowOrder {
		if show, exists := r.tvshows[id]; exists {
			showCopy := *show
			result = append(result, &showCopy)
		}
	}

	return result, nil
}

func (r *Repository) DeleteTVShow(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tvshows[id]; !exists {
		return simplecatalog.ErrContentNotFound
	}

	delete(r.tvshows, id)
	r.tvshowOrder = removeID(r.tvshowOrder, id)
	return nil
}

// User operations

func (r *Repository) CreateUser(ctx context.Context, user *simplecatalog.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.usersByName[user.Username]; exists {
		return simplecatalog.ErrUsernameTaken
	}

	userCopy := *user
	r.users[user.ID] = &userCopy
	r.usersByName[user.Username] = user.ID

	return nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*simplecatalog.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.usersByName[username]
	if !exists {
		return nil, simplecatalog.ErrUserNotFound
	}

	userCopy := *r.users[id]
	return &userCopy, nil
}

func (r *Repository) DeleteUserByUsername(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, exists := r.usersByName[username]
	if !exists {
		return simplecatalog.ErrUserNotFound
	}

	delete(r.users, id)
	delete(r.usersByName, username)
	return nil
}

// My-list operations

// CreateListItem inserts the entry. The (user, content) uniqueness check and
// the insert happen under one write lock, so concurrent duplicate adds cannot
// both succeed.
func (r *Repository) CreateListItem(ctx context.Context, item *simplecatalog.ListItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(item.UserID, item.ContentID)
	if _, exists := r.listByPair[key]; exists {
		return simplecatalog.ErrListItemExists
	}

	itemCopy := *item
	r.listItems[item.ID] = &itemCopy
	r.listByUser[item.UserID] = append(r.listByUser[item.UserID], item.ID)
	r.listByPair[key] = item.ID

	return nil
}

func (r *Repository) GetListItem(ctx context.Context, userID, contentID uuid.UUID) (*simplecatalog.ListItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.listByPair[pairKey(userID, contentID)]
	if !exists {
		return nil, simplecatalog.ErrListItemNotFound
	}

	itemCopy := *r.listItems[id]
	return &itemCopy, nil
}

func (r *Repository) DeleteListItem(ctx context.Context, userID, contentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(userID, contentID)
	id, exists := r.listByPair[key]
	if !exists {
		return simplecatalog.ErrListItemNotFound
	}

	delete(r.listItems, id)
	delete(r.listByPair, key)
	r.listByUser[userID] = removeID(r.listByUser[userID], id)

	return nil
}

func (r *Repository) ListItemsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*simplecatalog.ListItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}

	ids := r.listByUser[userID]
	if offset >= len(ids) {
		return []*simplecatalog.ListItem{}, nil
	}

	ids = ids[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}

	result := make([]*simplecatalog.ListItem, 0, len(ids))
	for _, id := range ids {
		if item, exists := r.listItems[id]; exists {
			itemCopy := *item
			result = append(result, &itemCopy)
		}
	}

	return result, nil
}

func (r *Repository) CountItemsByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.listByUser[userID]), nil
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
