package simplecatalog

import (
	"time"

	"github.com/google/uuid"
)

// MediaKind is the domain type for the two content variants.
type MediaKind string

// Media kind constants (typed).
const (
	MediaKindMovie  MediaKind = "Movie"
	MediaKindTVShow MediaKind = "TVShow"
)

// IsValid reports whether k is a known media kind.
func (k MediaKind) IsValid() bool {
	return k == MediaKindMovie || k == MediaKindTVShow
}

// Genre is the domain type for content genres.
type Genre string

// Genre constants (typed).
const (
	GenreAction  Genre = "Action"
	GenreComedy  Genre = "Comedy"
	GenreDrama   Genre = "Drama"
	GenreFantasy Genre = "Fantasy"
	GenreHorror  Genre = "Horror"
	GenreRomance Genre = "Romance"
	GenreSciFi   Genre = "SciFi"
)

// IsValid reports whether g is a known genre.
func (g Genre) IsValid() bool {
	switch g {
	case GenreAction, GenreComedy, GenreDrama, GenreFantasy, GenreHorror, GenreRomance, GenreSciFi:
		return true
	}
	return false
}

// Movie represents the movie content variant.
type Movie struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Genres      []Genre    `json:"genres,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Director    string     `json:"director,omitempty"`
	Actors      []string   `json:"actors,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Episode represents a single episode of a TV show.
type Episode struct {
	EpisodeNumber int        `json:"episode_number"`
	SeasonNumber  int        `json:"season_number"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	Director      string     `json:"director,omitempty"`
	Actors        []string   `json:"actors,omitempty"`
}

// TVShow represents the TV show content variant.
type TVShow struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Genres      []Genre   `json:"genres,omitempty"`
	Episodes    []Episode `json:"episodes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContentItem is the unified feed item over both content variants. The Kind
// tag says which variant the item came from; variant-specific fields are
// populated only for that kind.
type ContentItem struct {
	ID          uuid.UUID  `json:"id"`
	Kind        MediaKind  `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Genres      []Genre    `json:"genres,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Director    string     `json:"director,omitempty"`
	Actors      []string   `json:"actors,omitempty"`
	Episodes    []Episode  `json:"episodes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ContentItem converts the movie into a unified feed item.
func (m *Movie) ContentItem() *ContentItem {
	return &ContentItem{
		ID:          m.ID,
		Kind:        MediaKindMovie,
		Title:       m.Title,
		Description: m.Description,
		Genres:      m.Genres,
		ReleaseDate: m.ReleaseDate,
		Director:    m.Director,
		Actors:      m.Actors,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ContentItem converts the TV show into a unified feed item.
func (s *TVShow) ContentItem() *ContentItem {
	return &ContentItem{
		ID:          s.ID,
		Kind:        MediaKindTVShow,
		Title:       s.Title,
		Description: s.Description,
		Genres:      s.Genres,
		Episodes:    s.Episodes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// WatchEvent is one entry in a user's watch history. The core never mutates
// watch history; it is carried for the user profile only.
type WatchEvent struct {
	ContentID uuid.UUID `json:"content_id"`
	WatchedOn time.Time `json:"watched_on"`
	Rating    *int      `json:"rating,omitempty"`
}

// User represents a user profile.
type User struct {
	ID             uuid.UUID    `json:"id"`
	Username       string       `json:"username"`
	FavoriteGenres []Genre      `json:"favorite_genres,omitempty"`
	DislikedGenres []Genre      `json:"disliked_genres,omitempty"`
	WatchHistory   []WatchEvent `json:"watch_history,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ListItem is a my-list membership entry joining one user to one content
// item. ContentType caches the variant resolved at insertion time so listing
// never has to re-resolve the identifier. The (UserID, ContentID) pair is
// unique.
type ListItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ContentID   uuid.UUID `json:"content_id"`
	ContentType MediaKind `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListItemDetail is a membership entry joined with its content detail.
// Content is nil when the referenced content has been deleted since the entry
// was created; the entry itself is still returned.
type ListItemDetail struct {
	ListItem
	Content *ContentItem `json:"content_details"`
}

// ContentPage is one page of the unified content feed. Total counts the full
// filtered set before slicing.
type ContentPage struct {
	Data       []*ContentItem `json:"data"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// ListItemPage is one page of a user's my-list entries with joined content
// details.
type ListItemPage struct {
	Data       []*ListItemDetail `json:"data"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
