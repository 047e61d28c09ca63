package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog/api"
	"github.com/mediakit/simple-catalog/pkg/simplecatalog/repo/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) (*httptest.Server, simplecatalog.Service) {
	t.Helper()

	svc, err := simplecatalog.New(simplecatalog.WithRepository(memory.New()))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Mount("/content", api.NewContentHandler(svc).Routes())
	r.Mount("/mylist", api.NewMyListHandler(svc).Routes())
	r.Mount("/user", api.NewUserHandler(svc).Routes())

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server, svc
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func seedContent(t *testing.T, svc simplecatalog.Service, movieTitles, showTitles []string) {
	t.Helper()
	ctx := context.Background()

	for _, title := range movieTitles {
		_, err := svc.CreateMovie(ctx, simplecatalog.CreateMovieRequest{Title: title})
		require.NoError(t, err)
	}
	for _, title := range showTitles {
		_, err := svc.CreateTVShow(ctx, simplecatalog.CreateTVShowRequest{Title: title})
		require.NoError(t, err)
	}
}

func TestListContentEndpoint(t *testing.T) {
	server, svc := setupTestServer(t)
	seedContent(t, svc, []string{"Inception", "Alien"}, []string{"Breaking Bad"})

	t.Run("full sorted feed", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/content")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var page simplecatalog.ContentPage
		decodeBody(t, resp, &page)

		require.Len(t, page.Data, 3)
		assert.Equal(t, "Alien", page.Data[0].Title)
		assert.Equal(t, "Breaking Bad", page.Data[1].Title)
		assert.Equal(t, "Inception", page.Data[2].Title)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("type filter", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/content?type=TVShow")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var page simplecatalog.ContentPage
		decodeBody(t, resp, &page)

		require.Len(t, page.Data, 1)
		assert.Equal(t, "Breaking Bad", page.Data[0].Title)
	})

	t.Run("pagination parameters", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/content?page=2&limit=2")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var page simplecatalog.ContentPage
		decodeBody(t, resp, &page)

		require.Len(t, page.Data, 1)
		assert.Equal(t, "Inception", page.Data[0].Title)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("huge page value yields empty data", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/content?page=9223372036854775807&limit=2")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var page simplecatalog.ContentPage
		decodeBody(t, resp, &page)
		assert.Empty(t, page.Data)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/content?type=Documentary")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body api.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, http.StatusBadRequest, body.Status)
	})

	t.Run("malformed pagination falls back to defaults", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/content?page=abc&limit=xyz")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var page simplecatalog.ContentPage
		decodeBody(t, resp, &page)
		assert.Equal(t, simplecatalog.DefaultPage, page.Page)
		assert.Equal(t, simplecatalog.DefaultLimit, page.Limit)
	})
}

func TestMyListEndpoints(t *testing.T) {
	server, svc := setupTestServer(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, simplecatalog.CreateUserRequest{Username: "u1"})
	require.NoError(t, err)

	movie, err := svc.CreateMovie(ctx, simplecatalog.CreateMovieRequest{Title: "Inception"})
	require.NoError(t, err)

	t.Run("add item", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/mylist", api.AddListItemRequest{
			Username:  user.Username,
			ContentID: movie.ID.String(),
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var item simplecatalog.ListItem
		decodeBody(t, resp, &item)
		assert.Equal(t, movie.ID, item.ContentID)
		assert.Equal(t, simplecatalog.MediaKindMovie, item.ContentType)
	})

	t.Run("duplicate add conflicts", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/mylist", api.AddListItemRequest{
			Username:  user.Username,
			ContentID: movie.ID.String(),
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/mylist", api.AddListItemRequest{
			Username:  "nobody",
			ContentID: movie.ID.String(),
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("malformed content id", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/mylist", api.AddListItemRequest{
			Username:  user.Username,
			ContentID: "not-a-uuid",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("list with details", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/mylist?username=" + user.Username)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var page simplecatalog.ListItemPage
		decodeBody(t, resp, &page)

		require.Len(t, page.Data, 1)
		require.NotNil(t, page.Data[0].Content)
		assert.Equal(t, "Inception", page.Data[0].Content.Title)
		assert.Equal(t, 1, page.Total)
	})

	t.Run("list requires username", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/mylist")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("remove item", func(t *testing.T) {
		resp := doJSON(t, http.MethodDelete, server.URL+"/mylist/"+user.Username+"/"+movie.ID.String(), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, http.MethodDelete, server.URL+"/mylist/"+user.Username+"/"+movie.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestUserEndpoints(t *testing.T) {
	server, _ := setupTestServer(t)

	t.Run("create user", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/user", api.CreateUserRequest{
			Username:       "alex",
			FavoriteGenres: []simplecatalog.Genre{simplecatalog.GenreSciFi},
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var user simplecatalog.User
		decodeBody(t, resp, &user)
		assert.Equal(t, "alex", user.Username)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/user", api.CreateUserRequest{Username: "alex"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("blank username rejected", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/user", api.CreateUserRequest{Username: "  "})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body api.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, http.StatusBadRequest, body.Status)
	})

	t.Run("invalid genre rejected", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, server.URL+"/user", api.CreateUserRequest{
			Username:       "casey",
			FavoriteGenres: []simplecatalog.Genre{"Thriller"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("get user", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/user?username=alex")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var user simplecatalog.User
		decodeBody(t, resp, &user)
		assert.Equal(t, "alex", user.Username)
	})

	t.Run("get unknown user", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/user?username=nobody")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("delete user", func(t *testing.T) {
		resp := doJSON(t, http.MethodDelete, server.URL+"/user/alex", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, http.MethodDelete, server.URL+"/user/alex", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}
