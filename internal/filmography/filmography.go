// Package filmography turns a person's TMDB movie credits into the list of movies shown on an actor's page.
package filmography

import (
	"cmp"
	"github.com/clambin/actorsearch/pkg/tmdb"
	"slices"
	"strconv"
)

// UntitledMovie is the title of a credit that has neither a title nor a name.
const UntitledMovie = "Untitled"

// Movie is a normalized movie credit.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseYear string  `json:"releaseYear"`
	PosterURL   *string `json:"posterUrl"`
}

// NormalizeMovieCredits returns the movies of the cast credits, most recent first. Credits that are neither movies
// nor have a release date are dropped. Movies released in the same year keep their order. Movies without a
// release year are listed last.
func NormalizeMovieCredits(credits tmdb.MovieCredits) []Movie {
	movies := make([]Movie, 0, len(credits.Cast))
	for _, credit := range credits.Cast {
		if credit.MediaType != "movie" && credit.ReleaseDate == "" {
			continue
		}
		movies = append(movies, normalize(credit))
	}
	slices.SortStableFunc(movies, func(a, b Movie) int {
		return -cmp.Compare(yearOrder(a.ReleaseYear), yearOrder(b.ReleaseYear))
	})
	return movies
}

func normalize(credit tmdb.MovieCredit) Movie {
	m := Movie{
		ID:          credit.Id,
		Title:       cmp.Or(credit.Title, credit.Name, UntitledMovie),
		ReleaseYear: ReleaseYear(credit.ReleaseDate),
	}
	if credit.PosterPath != nil && *credit.PosterPath != "" {
		posterURL := tmdb.ImageURL(*credit.PosterPath, tmdb.PosterSize)
		m.PosterURL = &posterURL
	}
	return m
}

// ReleaseYear returns the year of a "YYYY-MM-DD" date, or an empty string if date doesn't start with a four-digit year.
func ReleaseYear(date string) string {
	if len(date) < 4 {
		return ""
	}
	for _, c := range date[:4] {
		if c < '0' || c > '9' {
			return ""
		}
	}
	return date[:4]
}

func yearOrder(year string) int {
	if y, err := strconv.Atoi(year); err == nil {
		return y
	}
	return -1
}
