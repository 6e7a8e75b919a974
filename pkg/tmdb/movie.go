package tmdb

import (
	"context"
	"errors"
)

var ErrInvalidTimeWindow = errors.New("invalid time window")

// TimeWindow selects the period over which TMDB computes trending content.
type TimeWindow string

const (
	TimeWindowDay  TimeWindow = "day"
	TimeWindowWeek TimeWindow = "week"
)

type MoviesPage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type Movie struct {
	Adult            bool    `json:"adult"`
	BackdropPath     *string `json:"backdrop_path"`
	GenreIds         []int   `json:"genre_ids"`
	Id               int     `json:"id"`
	MediaType        string  `json:"media_type"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       *string `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Title            string  `json:"title"`
	Video            bool    `json:"video"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
}

// GetTrendingMovies returns the first page of trending movies. An empty window defaults to TimeWindowDay.
func (c Client) GetTrendingMovies(ctx context.Context, window TimeWindow) (MoviesPage, error) {
	switch window {
	case "":
		window = TimeWindowDay
	case TimeWindowDay, TimeWindowWeek:
	default:
		return MoviesPage{}, ErrInvalidTimeWindow
	}
	return call[MoviesPage](ctx, c, c.BaseURL+"/3/trending/movie/"+string(window), nil)
}
