package server_test

import (
	"encoding/json"
	"errors"
	"github.com/clambin/actorsearch/internal/server"
	"github.com/clambin/actorsearch/internal/server/mocks"
	"github.com/clambin/actorsearch/pkg/tmdb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func TestServer_Actor(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(*mocks.TMDBClient)
		wantCode int
		wantBody string
	}{
		{
			name:     "missing name",
			target:   "/api/actor",
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing 'name' query parameter"}`,
		},
		{
			name:     "blank name",
			target:   "/api/actor?name=%20%20",
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing 'name' query parameter"}`,
		},
		{
			name:   "not found",
			target: "/api/actor?name=Nonexistent+Actor+Xyz123",
			setup: func(c *mocks.TMDBClient) {
				c.EXPECT().SearchPerson(mock.Anything, "Nonexistent Actor Xyz123").Return([]tmdb.Person{}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"actor":null,"movies":[]}`,
		},
		{
			name:   "found",
			target: "/api/actor?name=+tom+hanks+",
			setup: func(c *mocks.TMDBClient) {
				c.EXPECT().SearchPerson(mock.Anything, "tom hanks").Return([]tmdb.Person{
					{Id: 31, Name: "Tom Hanks"},
					{Id: 32, Name: "Tom Hanks Jr."},
				}, nil)
				c.EXPECT().GetPersonMovieCredits(mock.Anything, 31).Return(tmdb.MovieCredits{
					Id: 31,
					Cast: []tmdb.MovieCredit{
						{Id: 13, Title: "Forrest Gump", ReleaseDate: "1994-06-23", PosterPath: ptr("/forrest.jpg")},
						{Id: 14, Name: "Some Show"},
						{Id: 15, Title: "Cast Away", ReleaseDate: "2000-12-22"},
					},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"actor":{"id":31,"name":"Tom Hanks"},"movies":[` +
				`{"id":15,"title":"Cast Away","releaseYear":"2000","posterUrl":null},` +
				`{"id":13,"title":"Forrest Gump","releaseYear":"1994","posterUrl":"https://image.tmdb.org/t/p/w342/forrest.jpg"}]}`,
		},
		{
			name:   "search fails",
			target: "/api/actor?name=tom",
			setup: func(c *mocks.TMDBClient) {
				c.EXPECT().SearchPerson(mock.Anything, "tom").Return(nil, &tmdb.UpstreamError{StatusCode: http.StatusServiceUnavailable, Status: "503 Service Unavailable"})
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"TMDB request failed 503 Service Unavailable"}`,
		},
		{
			name:   "missing api key",
			target: "/api/actor?name=tom",
			setup: func(c *mocks.TMDBClient) {
				c.EXPECT().SearchPerson(mock.Anything, "tom").Return(nil, tmdb.ErrMissingAPIKey)
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"TMDB_API_KEY environment variable not set"}`,
		},
		{
			name:   "credits fail",
			target: "/api/actor?name=tom",
			setup: func(c *mocks.TMDBClient) {
				c.EXPECT().SearchPerson(mock.Anything, "tom").Return([]tmdb.Person{{Id: 31, Name: "Tom Hanks"}}, nil)
				c.EXPECT().GetPersonMovieCredits(mock.Anything, 31).Return(tmdb.MovieCredits{}, errors.New("failed"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := mocks.NewTMDBClient(t)
			if tt.setup != nil {
				tt.setup(c)
			}
			s := server.New(c, slog.Default())

			w := httptest.NewRecorder()
			s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestServer_ActorProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := mocks.NewTMDBClient(t)
		c.EXPECT().SearchPerson(mock.Anything, "tom hanks").Return([]tmdb.Person{{Id: 31, Name: "Tom Hanks", ProfilePath: ptr("/tom.jpg")}}, nil)
		var profiles []tmdb.ImageProfile
		for i := range 20 {
			profiles = append(profiles, tmdb.ImageProfile{FilePath: "/" + strconv.Itoa(i) + ".jpg"})
		}
		c.EXPECT().GetPersonImages(mock.Anything, 31).Return(tmdb.PersonImages{Id: 31, Profiles: profiles}, nil)
		c.EXPECT().GetPersonMovieCredits(mock.Anything, 31).Return(tmdb.MovieCredits{
			Id:   31,
			Cast: []tmdb.MovieCredit{{Id: 13, Title: "Forrest Gump", ReleaseDate: "1994-06-23"}},
		}, nil)
		s := server.New(c, slog.Default())

		w := httptest.NewRecorder()
		s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actor/profile?name=tom+hanks", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp server.ProfileResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.NotNil(t, resp.Actor)
		assert.Equal(t, "Tom Hanks", resp.Actor.Name)
		require.NotNil(t, resp.Actor.ProfileURL)
		assert.Equal(t, "https://image.tmdb.org/t/p/w185/tom.jpg", *resp.Actor.ProfileURL)
		require.Len(t, resp.Photos, 15)
		assert.Equal(t, server.Photo{URL: "https://image.tmdb.org/t/p/w780/0.jpg", Alt: "Tom Hanks photo"}, resp.Photos[0])
		require.Len(t, resp.Movies, 1)
		assert.Equal(t, "1994", resp.Movies[0].ReleaseYear)
	})

	t.Run("wire format", func(t *testing.T) {
		c := mocks.NewTMDBClient(t)
		c.EXPECT().SearchPerson(mock.Anything, "tom hanks").Return([]tmdb.Person{{Id: 31, Name: "Tom Hanks", ProfilePath: ptr("/tom.jpg")}}, nil)
		c.EXPECT().GetPersonImages(mock.Anything, 31).Return(tmdb.PersonImages{Id: 31, Profiles: []tmdb.ImageProfile{{FilePath: "/1.jpg"}}}, nil)
		c.EXPECT().GetPersonMovieCredits(mock.Anything, 31).Return(tmdb.MovieCredits{Id: 31}, nil)
		s := server.New(c, slog.Default())

		w := httptest.NewRecorder()
		s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actor/profile?name=tom+hanks", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
	"actor":{"id":31,"name":"Tom Hanks","profileUrl":"https://image.tmdb.org/t/p/w185/tom.jpg"},
	"photos":[{"url":"https://image.tmdb.org/t/p/w780/1.jpg","alt":"Tom Hanks photo"}],
	"movies":[]
}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		c := mocks.NewTMDBClient(t)
		c.EXPECT().SearchPerson(mock.Anything, "nobody").Return(nil, nil)
		s := server.New(c, slog.Default())

		w := httptest.NewRecorder()
		s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actor/profile?name=nobody", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"actor":null,"photos":[],"movies":[]}`, w.Body.String())
	})

	t.Run("images fail", func(t *testing.T) {
		c := mocks.NewTMDBClient(t)
		c.EXPECT().SearchPerson(mock.Anything, "tom").Return([]tmdb.Person{{Id: 31, Name: "Tom Hanks"}}, nil)
		c.EXPECT().GetPersonImages(mock.Anything, 31).Return(tmdb.PersonImages{}, errors.New("failed"))
		c.EXPECT().GetPersonMovieCredits(mock.Anything, 31).Return(tmdb.MovieCredits{}, nil).Maybe()
		s := server.New(c, slog.Default())

		w := httptest.NewRecorder()
		s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actor/profile?name=tom", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed"}`, w.Body.String())
	})

	t.Run("missing name", func(t *testing.T) {
		s := server.New(mocks.NewTMDBClient(t), slog.Default())
		w := httptest.NewRecorder()
		s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actor/profile", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_Suggest(t *testing.T) {
	var persons []tmdb.Person
	for i := range 25 {
		persons = append(persons, tmdb.Person{Id: i, Name: "actor" + strconv.Itoa(i)})
	}
	persons[0].ProfilePath = ptr("/actor0.jpg")

	c := mocks.NewTMDBClient(t)
	c.EXPECT().SearchPerson(mock.Anything, "act").Return(persons, nil).Once()
	c.EXPECT().SearchPerson(mock.Anything, "fail").Return(nil, errors.New("failed")).Once()
	s := server.New(c, slog.Default())

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actor/suggest?q=act", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp server.PersonsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Results, 10)
	assert.Equal(t, server.PersonSummary{ID: 0, Name: "actor0", ProfilePath: ptr("/actor0.jpg")}, resp.Results[0])
	assert.Equal(t, "actor9", resp.Results[9].Name)

	for _, target := range []string{"/api/actor/suggest", "/api/actor/suggest?q=+"} {
		w = httptest.NewRecorder()
		s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"results":[]}`, w.Body.String())
	}

	w = httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actor/suggest?q=fail", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_TrendingActors(t *testing.T) {
	var persons []tmdb.Person
	for i := range 20 {
		persons = append(persons, tmdb.Person{Id: i, Name: "actor" + strconv.Itoa(i), Popularity: float64(i)})
	}

	c := mocks.NewTMDBClient(t)
	c.EXPECT().GetPopularPersons(mock.Anything).Return(tmdb.PersonsPage{Page: 1, Results: persons}, nil).Once()
	c.EXPECT().GetPopularPersons(mock.Anything).Return(tmdb.PersonsPage{}, errors.New("failed")).Once()
	s := server.New(c, slog.Default())

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actor/trending", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp server.PersonsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Results, 10)
	for i, p := range resp.Results {
		assert.Equal(t, i, p.ID)
	}

	w = httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actor/trending", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed"}`, w.Body.String())
}

func TestServer_TrendingMovies(t *testing.T) {
	var movies []tmdb.Movie
	for i := range 30 {
		movies = append(movies, tmdb.Movie{Id: i, Title: "movie" + strconv.Itoa(i), Popularity: float64(i % 7)})
	}

	c := mocks.NewTMDBClient(t)
	c.EXPECT().GetTrendingMovies(mock.Anything, tmdb.TimeWindowWeek).Return(tmdb.MoviesPage{Page: 1, Results: movies}, nil).Once()
	c.EXPECT().GetTrendingMovies(mock.Anything, tmdb.TimeWindowWeek).Return(tmdb.MoviesPage{}, errors.New("failed")).Once()
	s := server.New(c, slog.Default())

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/trending", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp server.MoviesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Results, 20)
	for i := 1; i < len(resp.Results); i++ {
		prev, cur := resp.Results[i-1], resp.Results[i]
		assert.GreaterOrEqual(t, prev.Popularity, cur.Popularity)
		if prev.Popularity == cur.Popularity {
			// ties keep TMDB's order
			assert.Less(t, prev.ID, cur.ID)
		}
	}
	assert.Equal(t, 6, resp.Results[0].ID)

	w = httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/trending", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_RequestID(t *testing.T) {
	s := server.New(mocks.NewTMDBClient(t), slog.Default())

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actor", nil))
	assert.Len(t, w.Header().Get("X-Request-Id"), 36)

	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/actor", nil)
	r.Header.Set("X-Request-Id", "foo")
	s.ServeHTTP(w, r)
	assert.Equal(t, "foo", w.Header().Get("X-Request-Id"))
}

func TestServer_Metrics(t *testing.T) {
	c := mocks.NewTMDBClient(t)
	c.EXPECT().SearchPerson(mock.Anything, "foo").Return(nil, nil)
	s := server.New(c, slog.Default())

	for _, target := range []string{"/api/actor", "/api/actor?name=foo", "/api/actor/suggest"} {
		s.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, 3, testutil.CollectAndCount(s, "actorsearch_http_requests_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(s, "actorsearch_http_request_duration_seconds"))
}

func ptr[T any](v T) *T {
	return &v
}
