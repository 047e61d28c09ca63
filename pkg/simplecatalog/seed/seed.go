// Package seed loads a small demo catalog and a pair of sample users, for
// local development and examples.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mediakit/simple-catalog/pkg/simplecatalog"
)

// Apply loads the demo catalog into the service. Seeding is idempotent at the
// run level: if the feed already has content the catalog is left untouched,
// and sample users that already exist are skipped.
func Apply(ctx context.Context, svc simplecatalog.Service) error {
	page, err := svc.ListContent(ctx, simplecatalog.ListContentRequest{Page: 1, Limit: 1})
	if err != nil {
		return fmt.Errorf("check existing catalog: %w", err)
	}

	if page.Total == 0 {
		if err := seedCatalog(ctx, svc); err != nil {
			return err
		}
	} else {
		slog.Info("Catalog already populated, skipping content seed", "total", page.Total)
	}

	return seedUsers(ctx, svc)
}

func seedCatalog(ctx context.Context, svc simplecatalog.Service) error {
	for _, req := range demoMovies() {
		movie, err := svc.CreateMovie(ctx, req)
		if err != nil {
			return fmt.Errorf("seed movie %q: %w", req.Title, err)
		}
		slog.Info("Seeded movie", "title", movie.Title, "id", movie.ID.String())
	}

	for _, req := range demoTVShows() {
		show, err := svc.CreateTVShow(ctx, req)
		if err != nil {
			return fmt.Errorf("seed tvshow %q: %w", req.Title, err)
		}
		slog.Info("Seeded tvshow", "title", show.Title, "id", show.ID.String())
	}

	return nil
}

func seedUsers(ctx context.Context, svc simplecatalog.Service) error {
	for _, req := range demoUsers() {
		_, err := svc.CreateUser(ctx, req)
		if errors.Is(err, simplecatalog.ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed user %q: %w", req.Username, err)
		}
		slog.Info("Seeded user", "username", req.Username)
	}
	return nil
}

func demoMovies() []simplecatalog.CreateMovieRequest {
	return []simplecatalog.CreateMovieRequest{
		{
			Title:       "The Shawshank Redemption",
			Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			Genres:      []simplecatalog.Genre{simplecatalog.GenreDrama},
			ReleaseDate: date(1994, time.September, 23),
			Director:    "Frank Darabont",
			Actors:      []string{"Tim Robbins", "Morgan Freeman"},
		},
		{
			Title:       "The Godfather",
			Description: "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
			Genres:      []simplecatalog.Genre{simplecatalog.GenreDrama},
			ReleaseDate: date(1972, time.March, 24),
			Director:    "Francis Ford Coppola",
			Actors:      []string{"Marlon Brando", "Al Pacino"},
		},
		{
			Title:       "The Dark Knight",
			Description: "Batman faces the Joker, a criminal mastermind who plunges Gotham City into anarchy.",
			Genres:      []simplecatalog.Genre{simplecatalog.GenreAction, simplecatalog.GenreDrama},
			ReleaseDate: date(2008, time.July, 18),
			Director:    "Christopher Nolan",
			Actors:      []string{"Christian Bale", "Heath Ledger"},
		},
		{
			Title:       "Inception",
			Description: "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea.",
			Genres:      []simplecatalog.Genre{simplecatalog.GenreAction, simplecatalog.GenreSciFi},
			ReleaseDate: date(2010, time.July, 16),
			Director:    "Christopher Nolan",
			Actors:      []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt"},
		},
	}
}

func demoTVShows() []simplecatalog.CreateTVShowRequest {
	return []simplecatalog.CreateTVShowRequest{
		{
			Title:       "Breaking Bad",
			Description: "A high school chemistry teacher turned methamphetamine producer navigates the criminal underworld.",
			Genres:      []simplecatalog.Genre{simplecatalog.GenreDrama},
			Episodes: []simplecatalog.Episode{
				{EpisodeNumber: 1, SeasonNumber: 1, ReleaseDate: date(2008, time.January, 20), Director: "Vince Gilligan", Actors: []string{"Bryan Cranston", "Aaron Paul"}},
				{EpisodeNumber: 2, SeasonNumber: 1, ReleaseDate: date(2008, time.January, 27), Director: "Adam Bernstein", Actors: []string{"Bryan Cranston", "Aaron Paul"}},
			},
		},
		{
			Title:       "Game of Thrones",
			Description: "Noble families vie for control of the Iron Throne in the Seven Kingdoms of Westeros.",
			Genres:      []simplecatalog.Genre{simplecatalog.GenreAction, simplecatalog.GenreDrama, simplecatalog.GenreFantasy},
			Episodes: []simplecatalog.Episode{
				{EpisodeNumber: 1, SeasonNumber: 1, ReleaseDate: date(2011, time.April, 17), Director: "Tim Van Patten", Actors: []string{"Sean Bean", "Emilia Clarke"}},
			},
		},
		{
			Title:       "Stranger Things",
			Description: "A group of kids in a small town uncover supernatural mysteries and secret government experiments.",
			Genres:      []simplecatalog.Genre{simplecatalog.GenreDrama, simplecatalog.GenreFantasy, simplecatalog.GenreHorror},
			Episodes: []simplecatalog.Episode{
				{EpisodeNumber: 1, SeasonNumber: 1, ReleaseDate: date(2016, time.July, 15), Director: "The Duffer Brothers", Actors: []string{"Winona Ryder", "Millie Bobby Brown"}},
			},
		},
		{
			Title:       "The Office",
			Description: "A mockumentary on the everyday lives of office employees at the Dunder Mifflin paper company.",
			Genres:      []simplecatalog.Genre{simplecatalog.GenreComedy},
			Episodes: []simplecatalog.Episode{
				{EpisodeNumber: 1, SeasonNumber: 1, ReleaseDate: date(2005, time.March, 24), Director: "Ken Kwapis", Actors: []string{"Steve Carell", "Rainn Wilson"}},
			},
		},
	}
}

func demoUsers() []simplecatalog.CreateUserRequest {
	return []simplecatalog.CreateUserRequest{
		{
			Username:       "u1",
			FavoriteGenres: []simplecatalog.Genre{simplecatalog.GenreAction, simplecatalog.GenreSciFi},
			DislikedGenres: []simplecatalog.Genre{simplecatalog.GenreRomance},
		},
		{
			Username:       "u2",
			FavoriteGenres: []simplecatalog.Genre{simplecatalog.GenreDrama, simplecatalog.GenreComedy},
			DislikedGenres: []simplecatalog.Genre{simplecatalog.GenreHorror},
		},
	}
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
