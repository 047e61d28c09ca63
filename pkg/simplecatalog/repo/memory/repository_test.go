package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog/repo/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMovie(title string) *simplecatalog.Movie {
	now := time.Now().UTC()
	return &simplecatalog.Movie{ID: uuid.New(), Title: title, CreatedAt: now, UpdatedAt: now}
}

func newTVShow(title string) *simplecatalog.TVShow {
	now := time.Now().UTC()
	return &simplecatalog.TVShow{ID: uuid.New(), Title: title, CreatedAt: now, UpdatedAt: now}
}

func newUser(username string) *simplecatalog.User {
	now := time.Now().UTC()
	return &simplecatalog.User{ID: uuid.New(), Username: username, CreatedAt: now, UpdatedAt: now}
}

func newListItem(userID, contentID uuid.UUID) *simplecatalog.ListItem {
	return &simplecatalog.ListItem{
		ID:          uuid.New(),
		UserID:      userID,
		ContentID:   contentID,
		ContentType: simplecatalog.MediaKindMovie,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestMovieCRUD(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	movie := newMovie("Alien")
	require.NoError(t, repo.CreateMovie(ctx, movie))

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := repo.GetMovie(ctx, movie.ID)
		require.NoError(t, err)
		assert.Equal(t, movie.Title, got.Title)

		got.Title = "mutated"
		again, err := repo.GetMovie(ctx, movie.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alien", again.Title)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := repo.GetMovie(ctx, uuid.New())
		assert.ErrorIs(t, err, simplecatalog.ErrContentNotFound)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		second := newMovie("Blade Runner")
		require.NoError(t, repo.CreateMovie(ctx, second))

		movies, err := repo.ListMovies(ctx)
		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, movie.ID, movies[0].ID)
		assert.Equal(t, second.ID, movies[1].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteMovie(ctx, movie.ID))

		_, err := repo.GetMovie(ctx, movie.ID)
		assert.ErrorIs(t, err, simplecatalog.ErrContentNotFound)

		err = repo.DeleteMovie(ctx, movie.ID)
		assert.ErrorIs(t, err, simplecatalog.ErrContentNotFound)
	})
}

func TestTVShowCRUD(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	show := newTVShow("Breaking Bad")
	require.NoError(t, repo.CreateTVShow(ctx, show))

	got, err := repo.GetTVShow(ctx, show.ID)
	require.NoError(t, err)
	assert.Equal(t, show.Title, got.Title)

	shows, err := repo.ListTVShows(ctx)
	require.NoError(t, err)
	assert.Len(t, shows, 1)

	require.NoError(t, repo.DeleteTVShow(ctx, show.ID))
	assert.ErrorIs(t, repo.DeleteTVShow(ctx, show.ID), simplecatalog.ErrContentNotFound)
}

func TestUserOperations(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	user := newUser("alex")
	require.NoError(t, repo.CreateUser(ctx, user))

	t.Run("duplicate username rejected", func(t *testing.T) {
		err := repo.CreateUser(ctx, newUser("alex"))
		assert.ErrorIs(t, err, simplecatalog.ErrUsernameTaken)
	})

	t.Run("lookup by username", func(t *testing.T) {
		got, err := repo.GetUserByUsername(ctx, "alex")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		_, err = repo.GetUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, simplecatalog.ErrUserNotFound)
	})

	t.Run("delete by username", func(t *testing.T) {
		require.NoError(t, repo.DeleteUserByUsername(ctx, "alex"))
		assert.ErrorIs(t, repo.DeleteUserByUsername(ctx, "alex"), simplecatalog.ErrUserNotFound)
	})
}

func TestListItemOperations(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	userID := uuid.New()
	contentID := uuid.New()

	t.Run("create and get by pair", func(t *testing.T) {
		item := newListItem(userID, contentID)
		require.NoError(t, repo.CreateListItem(ctx, item))

		got, err := repo.GetListItem(ctx, userID, contentID)
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
	})

	t.Run("duplicate pair rejected", func(t *testing.T) {
		err := repo.CreateListItem(ctx, newListItem(userID, contentID))
		assert.ErrorIs(t, err, simplecatalog.ErrListItemExists)
	})

	t.Run("delete by pair", func(t *testing.T) {
		require.NoError(t, repo.DeleteListItem(ctx, userID, contentID))

		_, err := repo.GetListItem(ctx, userID, contentID)
		assert.ErrorIs(t, err, simplecatalog.ErrListItemNotFound)

		err = repo.DeleteListItem(ctx, userID, contentID)
		assert.ErrorIs(t, err, simplecatalog.ErrListItemNotFound)
	})
}

func TestListItemsByUser(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	userID := uuid.New()
	var contentIDs []uuid.UUID
	for i := 0; i < 5; i++ {
		item := newListItem(userID, uuid.New())
		contentIDs = append(contentIDs, item.ContentID)
		require.NoError(t, repo.CreateListItem(ctx, item))
	}

	t.Run("offset and limit window", func(t *testing.T) {
		items, err := repo.ListItemsByUser(ctx, userID, 2, 1)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, contentIDs[1], items[0].ContentID)
		assert.Equal(t, contentIDs[2], items[1].ContentID)
	})

	t.Run("negative offset treated as zero", func(t *testing.T) {
		items, err := repo.ListItemsByUser(ctx, userID, 2, -5)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, contentIDs[0], items[0].ContentID)
	})

	t.Run("offset past the end", func(t *testing.T) {
		items, err := repo.ListItemsByUser(ctx, userID, 10, 99)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.CountItemsByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 5, count)

		count, err = repo.CountItemsByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestConcurrentDuplicateAdds(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	userID := uuid.New()
	contentID := uuid.New()

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.CreateListItem(ctx, newListItem(userID, contentID))
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, simplecatalog.ErrListItemExists):
			rejected++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)

	count, err := repo.CountItemsByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
