package server

import (
	"cmp"
	"github.com/clambin/actorsearch/pkg/tmdb"
	"net/http"
	"slices"
	"strings"
)

type PersonSummary struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	ProfilePath *string `json:"profile_path"`
}

type PersonsResponse struct {
	Results []PersonSummary `json:"results"`
}

func summarize(persons []tmdb.Person, limit int) []PersonSummary {
	persons = persons[:min(len(persons), limit)]
	summaries := make([]PersonSummary, len(persons))
	for i, p := range persons {
		summaries[i] = PersonSummary{ID: p.Id, Name: p.Name, ProfilePath: p.ProfilePath}
	}
	return summaries
}

// suggest returns the best matches for a partial name. The UI only calls it for three or more characters,
// but any non-blank query is accepted.
func (s *Server) suggest(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusOK, PersonsResponse{Results: []PersonSummary{}})
		return
	}

	people, err := s.TMDBClient.SearchPerson(r.Context(), q)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PersonsResponse{Results: summarize(people, maxSuggestions)})
}

func (s *Server) trendingActors(w http.ResponseWriter, r *http.Request) {
	page, err := s.TMDBClient.GetPopularPersons(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PersonsResponse{Results: summarize(page.Results, maxTrendingActors)})
}

type TrendingMovie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	Overview     string  `json:"overview"`
	Popularity   float64 `json:"popularity"`
}

type MoviesResponse struct {
	Results []TrendingMovie `json:"results"`
}

// trendingMovies returns this week's most popular movies. Movies with the same popularity keep TMDB's order.
func (s *Server) trendingMovies(w http.ResponseWriter, r *http.Request) {
	page, err := s.TMDBClient.GetTrendingMovies(r.Context(), tmdb.TimeWindowWeek)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	movies := slices.Clone(page.Results)
	slices.SortStableFunc(movies, func(a, b tmdb.Movie) int {
		return -cmp.Compare(a.Popularity, b.Popularity)
	})
	movies = movies[:min(len(movies), maxTrendingMovies)]

	results := make([]TrendingMovie, len(movies))
	for i, m := range movies {
		results[i] = TrendingMovie{
			ID:           m.Id,
			Title:        m.Title,
			PosterPath:   m.PosterPath,
			BackdropPath: m.BackdropPath,
			ReleaseDate:  m.ReleaseDate,
			VoteAverage:  m.VoteAverage,
			Overview:     m.Overview,
			Popularity:   m.Popularity,
		}
	}
	writeJSON(w, http.StatusOK, MoviesResponse{Results: results})
}
