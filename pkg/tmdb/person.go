package tmdb

import (
	"context"
	"net/url"
	"strconv"
)

type PersonsPage struct {
	Page         int      `json:"page"`
	Results      []Person `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

type Person struct {
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	Id                 int     `json:"id"`
	KnownForDepartment string  `json:"known_for_department"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        *string `json:"profile_path"`
}

// SearchPerson returns the first page of persons matching name, in the order TMDB ranks them.
func (c Client) SearchPerson(ctx context.Context, name string) ([]Person, error) {
	values := url.Values{
		"query":         []string{name},
		"include_adult": []string{c.IncludeAdult},
	}

	result, err := call[PersonsPage](ctx, c, c.BaseURL+"/3/search/person", values)
	return result.Results, err
}

// GetPopularPersons returns the first page of TMDB's popular persons.
func (c Client) GetPopularPersons(ctx context.Context) (PersonsPage, error) {
	return call[PersonsPage](ctx, c, c.BaseURL+"/3/person/popular", nil)
}

type MovieCredits struct {
	Id   int           `json:"id"`
	Cast []MovieCredit `json:"cast"`
	Crew []MovieCredit `json:"crew"`
}

// MovieCredit is a cast or crew entry of a person's movie credits. Depending on the entry, TMDB populates either
// Title and ReleaseDate (movies) or Name and FirstAirDate (tv).
type MovieCredit struct {
	Id           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	PosterPath   *string `json:"poster_path"`
	MediaType    string  `json:"media_type,omitempty"`
	Character    string  `json:"character,omitempty"`
	Department   string  `json:"department,omitempty"`
	Job          string  `json:"job,omitempty"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
}

func (c Client) GetPersonMovieCredits(ctx context.Context, id int) (MovieCredits, error) {
	return call[MovieCredits](ctx, c, c.BaseURL+"/3/person/"+strconv.Itoa(id)+"/movie_credits", nil)
}

type PersonImages struct {
	Id       int            `json:"id"`
	Profiles []ImageProfile `json:"profiles"`
}

type ImageProfile struct {
	AspectRatio float64 `json:"aspect_ratio"`
	FilePath    string  `json:"file_path"`
	Height      int     `json:"height"`
	Width       int     `json:"width"`
	Language    *string `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// GetPersonImages returns the profile images of a person. Only English and language-agnostic images are requested.
func (c Client) GetPersonImages(ctx context.Context, id int) (PersonImages, error) {
	values := url.Values{
		"include_image_language": []string{"en,null"},
	}
	return call[PersonImages](ctx, c, c.BaseURL+"/3/person/"+strconv.Itoa(id)+"/images", values)
}
