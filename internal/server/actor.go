package server

import (
	"github.com/clambin/actorsearch/internal/filmography"
	"github.com/clambin/actorsearch/pkg/tmdb"
	"golang.org/x/sync/errgroup"
	"net/http"
)

type Actor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ActorResponse struct {
	Actor  *Actor              `json:"actor"`
	Movies []filmography.Movie `json:"movies"`
}

// actor looks up the movies of the first person matching the name parameter.
func (s *Server) actor(w http.ResponseWriter, r *http.Request) {
	name, err := requiredParameter(r, "name")
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	people, err := s.TMDBClient.SearchPerson(r.Context(), name)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if len(people) == 0 {
		writeJSON(w, http.StatusOK, ActorResponse{Movies: []filmography.Movie{}})
		return
	}

	// no disambiguation: the best match wins
	actor := people[0]
	credits, err := s.TMDBClient.GetPersonMovieCredits(r.Context(), actor.Id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ActorResponse{
		Actor:  &Actor{ID: actor.Id, Name: actor.Name},
		Movies: filmography.NormalizeMovieCredits(credits),
	})
}

type ProfileActor struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	ProfileURL *string `json:"profileUrl"`
}

type Photo struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type ProfileResponse struct {
	Actor  *ProfileActor       `json:"actor"`
	Photos []Photo             `json:"photos"`
	Movies []filmography.Movie `json:"movies"`
}

// actorProfile returns everything shown on an actor's page. Images and credits are retrieved concurrently.
func (s *Server) actorProfile(w http.ResponseWriter, r *http.Request) {
	name, err := requiredParameter(r, "name")
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	people, err := s.TMDBClient.SearchPerson(r.Context(), name)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if len(people) == 0 {
		writeJSON(w, http.StatusOK, ProfileResponse{Photos: []Photo{}, Movies: []filmography.Movie{}})
		return
	}
	actor := people[0]

	var images tmdb.PersonImages
	var credits tmdb.MovieCredits
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		images, err = s.TMDBClient.GetPersonImages(ctx, actor.Id)
		return err
	})
	g.Go(func() (err error) {
		credits, err = s.TMDBClient.GetPersonMovieCredits(ctx, actor.Id)
		return err
	})
	if err = g.Wait(); err != nil {
		s.handleError(w, r, err)
		return
	}

	profiles := images.Profiles[:min(len(images.Profiles), maxPhotos)]
	photos := make([]Photo, len(profiles))
	for i, p := range profiles {
		photos[i] = Photo{URL: tmdb.ImageURL(p.FilePath, tmdb.ProfileSize), Alt: actor.Name + " photo"}
	}

	resp := ProfileResponse{
		Actor:  &ProfileActor{ID: actor.Id, Name: actor.Name},
		Photos: photos,
		Movies: filmography.NormalizeMovieCredits(credits),
	}
	if actor.ProfilePath != nil && *actor.ProfilePath != "" {
		profileURL := tmdb.ImageURL(*actor.ProfilePath, tmdb.ThumbnailSize)
		resp.Actor.ProfileURL = &profileURL
	}
	writeJSON(w, http.StatusOK, resp)
}
