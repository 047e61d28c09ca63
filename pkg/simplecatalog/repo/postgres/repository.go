package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements simplecatalog.Repository using PostgreSQL. The
// mylist_items table carries a unique index on (user_id, content_id); a
// violating insert surfaces as ErrListItemExists, which makes the store the
// authoritative enforcement point for the membership uniqueness invariant.
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) simplecatalog.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) simplecatalog.Repository {
	return &Repository{db: pool}
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "mylist") {
				return simplecatalog.ErrListItemExists
			}
			if strings.Contains(pgErr.ConstraintName, "username") {
				return simplecatalog.ErrUsernameTaken
			}
			return fmt.Errorf("duplicate entry")
		case "23503": // foreign_key_violation
			return fmt.Errorf("referenced record not found")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

// Movie operations

func (r *Repository) CreateMovie(ctx context.Context, movie *simplecatalog.Movie) error {
	query := `
		INSERT INTO movies (
			id, title, description, genres, release_date, director, actors,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		movie.ID, movie.Title, movie.Description, genreStrings(movie.Genres),
		movie.ReleaseDate, movie.Director, movie.Actors,
		movie.CreatedAt, movie.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create movie", err)
	}

	return nil
}

func (r *Repository) GetMovie(ctx context.Context, id uuid.UUID) (*simplecatalog.Movie, error) {
	query := `
		SELECT id, title, description, genres, release_date, director, actors,
		       created_at, updated_at
		FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecatalog.ErrContentNotFound
		}
		return nil, r.handlePostgresError("get movie", err)
	}

	return movie, nil
}

// ListMovies loads the full movie set ordered by insertion (created_at, id),
// which is the storage order the feed's stable sort ties back to.
func (r *Repository) ListMovies(ctx context.Context) ([]*simplecatalog.Movie, error) {
	query := `
		SELECT id, title, description, genres, release_date, director, actors,
		       created_at, updated_at
		FROM movies ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handlePostgresError("list movies", err)
	}
	defer rows.Close()

	var result []*simplecatalog.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, r.handlePostgresError("list movies", err)
		}
		result = append(result, movie)
	}

	return result, rows.Err()
}

func (r *Repository) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete movie", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecatalog.ErrContentNotFound
	}
	return nil
}

// TV show operations

func (r *Repository) CreateTVShow(ctx context.Context, show *simplecatalog.TVShow) error {
	episodes, err := json.Marshal(show.Episodes)
	if err != nil {
		return fmt.Errorf("marshal episodes: %w", err)
	}

	query := `
		INSERT INTO tvshows (
			id, title, description, genres, episodes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.Exec(ctx, query,
		show.ID, show.Title, show.Description, genreStrings(show.Genres),
		episodes, show.CreatedAt, show.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create tvshow", err)
	}

	return nil
}

func (r *Repository) GetTVShow(ctx context.Context, id uuid.UUID) (*simplecatalog.TVShow, error) {
	query := `
		SELECT id, title, description, genres, episodes, created_at, updated_at
		FROM tvshows WHERE id = $1`

	show, err := scanTVShow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecatalog.ErrContentNotFound
		}
		return nil, r.handlePostgresError("get tvshow", err)
	}

	return show, nil
}

func (r *Repository) ListTVShows(ctx context.Context) ([]*simplecatalog.TVShow, error) {
	query := `
		SELECT id, title, description, genres, episodes, created_at, updated_at
		FROM tvshows ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handlePostgresError("list tvshows", err)
	}
	defer rows.Close()

	var result []*simplecatalog.TVShow
	for rows.Next() {
		show, err := scanTVShow(rows)
		if err != nil {
			return nil, r.handlePostgresError("list tvshows", err)
		}
		result = append(result, show)
	}

	return result, rows.Err()
}

func (r *Repository) DeleteTVShow(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tvshows WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete tvshow", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecatalog.ErrContentNotFound
	}
	return nil
}

// User operations

func (r *Repository) CreateUser(ctx context.Context, user *simplecatalog.User) error {
	history, err := json.Marshal(user.WatchHistory)
	if err != nil {
		return fmt.Errorf("marshal watch history: %w", err)
	}

	query := `
		INSERT INTO users (
			id, username, favorite_genres, disliked_genres, watch_history,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.Exec(ctx, query,
		user.ID, user.Username, genreStrings(user.FavoriteGenres),
		genreStrings(user.DislikedGenres), history,
		user.CreatedAt, user.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create user", err)
	}

	return nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*simplecatalog.User, error) {
	query := `
		SELECT id, username, favorite_genres, disliked_genres, watch_history,
		       created_at, updated_at
		FROM users WHERE username = $1`

	var (
		user      simplecatalog.User
		favorites []string
		disliked  []string
		history   []byte
	)
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &favorites, &disliked, &history,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecatalog.ErrUserNotFound
		}
		return nil, r.handlePostgresError("get user", err)
	}

	user.FavoriteGenres = genresFromStrings(favorites)
	user.DislikedGenres = genresFromStrings(disliked)
	if len(history) > 0 {
		if err := json.Unmarshal(history, &user.WatchHistory); err != nil {
			return nil, fmt.Errorf("unmarshal watch history: %w", err)
		}
	}

	return &user, nil
}

func (r *Repository) DeleteUserByUsername(ctx context.Context, username string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return r.handlePostgresError("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecatalog.ErrUserNotFound
	}
	return nil
}

// My-list operations

func (r *Repository) CreateListItem(ctx context.Context, item *simplecatalog.ListItem) error {
	query := `
		INSERT INTO mylist_items (id, user_id, content_id, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		item.ID, item.UserID, item.ContentID, string(item.ContentType), item.CreatedAt)

	if err != nil {
		return r.handlePostgresError("create list item", err)
	}

	return nil
}

func (r *Repository) GetListItem(ctx context.Context, userID, contentID uuid.UUID) (*simplecatalog.ListItem, error) {
	query := `
		SELECT id, user_id, content_id, content_type, created_at
		FROM mylist_items WHERE user_id = $1 AND content_id = $2`

	var (
		item        simplecatalog.ListItem
		contentType string
	)
	err := r.db.QueryRow(ctx, query, userID, contentID).Scan(
		&item.ID, &item.UserID, &item.ContentID, &contentType, &item.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecatalog.ErrListItemNotFound
		}
		return nil, r.handlePostgresError("get list item", err)
	}

	item.ContentType = simplecatalog.MediaKind(contentType)
	return &item, nil
}

// DeleteListItem deletes by pair and inspects the affected-row count; zero
// rows means not found. No existence read happens before the delete.
func (r *Repository) DeleteListItem(ctx context.Context, userID, contentID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM mylist_items WHERE user_id = $1 AND content_id = $2`,
		userID, contentID)
	if err != nil {
		return r.handlePostgresError("delete list item", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecatalog.ErrListItemNotFound
	}
	return nil
}

func (r *Repository) ListItemsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*simplecatalog.ListItem, error) {
	// A negative OFFSET is a postgres error, not an empty result.
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, user_id, content_id, content_type, created_at
		FROM mylist_items WHERE user_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, r.handlePostgresError("list items by user", err)
	}
	defer rows.Close()

	var result []*simplecatalog.ListItem
	for rows.Next() {
		var (
			item        simplecatalog.ListItem
			contentType string
		)
		if err := rows.Scan(&item.ID, &item.UserID, &item.ContentID, &contentType, &item.CreatedAt); err != nil {
			return nil, r.handlePostgresError("list items by user", err)
		}
		item.ContentType = simplecatalog.MediaKind(contentType)
		result = append(result, &item)
	}

	return result, rows.Err()
}

func (r *Repository) CountItemsByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM mylist_items WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, r.handlePostgresError("count items by user", err)
	}
	return count, nil
}

// Scan helpers

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMovie(row rowScanner) (*simplecatalog.Movie, error) {
	var (
		movie  simplecatalog.Movie
		genres []string
	)
	err := row.Scan(
		&movie.ID, &movie.Title, &movie.Description, &genres,
		&movie.ReleaseDate, &movie.Director, &movie.Actors,
		&movie.CreatedAt, &movie.UpdatedAt)
	if err != nil {
		return nil, err
	}
	movie.Genres = genresFromStrings(genres)
	return &movie, nil
}

func scanTVShow(row rowScanner) (*simplecatalog.TVShow, error) {
	var (
		show     simplecatalog.TVShow
		genres   []string
		episodes []byte
	)
	err := row.Scan(
		&show.ID, &show.Title, &show.Description, &genres, &episodes,
		&show.CreatedAt, &show.UpdatedAt)
	if err != nil {
		return nil, err
	}
	show.Genres = genresFromStrings(genres)
	if len(episodes) > 0 {
		if err := json.Unmarshal(episodes, &show.Episodes); err != nil {
			return nil, fmt.Errorf("unmarshal episodes: %w", err)
		}
	}
	return &show, nil
}

func genreStrings(genres []simplecatalog.Genre) []string {
	if genres == nil {
		return nil
	}
	result := make([]string, len(genres))
	for i, g := range genres {
		result[i] = string(g)
	}
	return result
}

func genresFromStrings(values []string) []simplecatalog.Genre {
	if values == nil {
		return nil
	}
	result := make([]simplecatalog.Genre, len(values))
	for i, v := range values {
		result[i] = simplecatalog.Genre(v)
	}
	return result
}
