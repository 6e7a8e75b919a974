// Package server implements the HTTP API used by the actor search pages.
package server

import (
	"context"
	"github.com/clambin/actorsearch/pkg/tmdb"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"log/slog"
	"net/http"
)

const (
	maxSuggestions    = 10
	maxTrendingActors = 10
	maxTrendingMovies = 20
	maxPhotos         = 15
)

type TMDBClient interface {
	SearchPerson(ctx context.Context, name string) ([]tmdb.Person, error)
	GetPersonMovieCredits(ctx context.Context, id int) (tmdb.MovieCredits, error)
	GetPersonImages(ctx context.Context, id int) (tmdb.PersonImages, error)
	GetPopularPersons(ctx context.Context) (tmdb.PersonsPage, error)
	GetTrendingMovies(ctx context.Context, window tmdb.TimeWindow) (tmdb.MoviesPage, error)
}

var _ TMDBClient = tmdb.Client{}

var _ http.Handler = &Server{}
var _ prometheus.Collector = &Server{}

type Server struct {
	TMDBClient TMDBClient
	logger     *slog.Logger
	metrics    *metrics
	handler    http.Handler
}

func New(client TMDBClient, logger *slog.Logger) *Server {
	s := Server{
		TMDBClient: client,
		logger:     logger,
		metrics:    newMetrics(),
	}

	m := http.NewServeMux()
	s.handle(m, "GET /api/actor", s.actor)
	s.handle(m, "GET /api/actor/profile", s.actorProfile)
	s.handle(m, "GET /api/actor/suggest", s.suggest)
	s.handle(m, "GET /api/actor/trending", s.trendingActors)
	s.handle(m, "GET /api/movies/trending", s.trendingMovies)
	s.handler = withRequestID(m)

	return &s
}

func (s *Server) handle(m *http.ServeMux, pattern string, f http.HandlerFunc) {
	m.Handle(pattern, s.metrics.instrument(pattern, f))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) Describe(ch chan<- *prometheus.Desc) {
	s.metrics.Describe(ch)
}

func (s *Server) Collect(ch chan<- prometheus.Metric) {
	s.metrics.Collect(ch)
}

const requestIDHeader = "X-Request-Id"

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
