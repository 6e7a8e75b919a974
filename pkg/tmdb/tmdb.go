package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrMissingAPIKey is returned by every call when the Client was created without an API key.
var ErrMissingAPIKey = errors.New("TMDB_API_KEY environment variable not set")

// UpstreamError is returned when TMDB responds with anything other than 200 OK.
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return "TMDB request failed " + e.Status
}

type Client struct {
	IncludeAdult string
	Language     string
	BaseURL      string
	authKey      string
	httpClient   *http.Client
}

// New returns a Client for the TMDB API. The authKey is added as the api_key query parameter of each request.
// An empty authKey is accepted: calls will then fail with ErrMissingAPIKey.
func New(authKey string, httpClient *http.Client) *Client {
	var hc http.Client
	if httpClient != nil {
		hc = *httpClient
	}
	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}
	hc.Transport = auth{
		authKey: authKey,
		next:    hc.Transport,
	}
	return &Client{
		IncludeAdult: "false",
		Language:     "en-US",
		BaseURL:      "https://api.themoviedb.org",
		authKey:      authKey,
		httpClient:   &hc,
	}
}

// IsConfigured reports whether the client has an API key.
func (c Client) IsConfigured() bool {
	return c.authKey != ""
}

func (c Client) baseForm() url.Values {
	form := make(url.Values)
	form.Add("language", c.Language)
	return form
}

var _ http.RoundTripper = auth{}

type auth struct {
	authKey string
	next    http.RoundTripper
}

func (a auth) RoundTrip(r *http.Request) (*http.Response, error) {
	// RoundTrip must not modify the caller's request
	r = r.Clone(r.Context())
	q := r.URL.Query()
	q.Set("api_key", a.authKey)
	r.URL.RawQuery = q.Encode()
	return a.next.RoundTrip(r)
}

func call[T any](ctx context.Context, c Client, url string, values url.Values) (T, error) {
	var result T
	if !c.IsConfigured() {
		return result, ErrMissingAPIKey
	}

	form := c.baseForm()
	for key, v := range values {
		for _, value := range v {
			form.Add(key, value)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+"?"+form.Encode(), nil)
	if err != nil {
		return result, err
	}
	req.Header.Add("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, err
	}
	defer func(Body io.ReadCloser) { _ = Body.Close() }(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return result, &UpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("decode: %w", err)
	}

	return result, nil
}
