package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/clambin/actorsearch/internal/server"
	"io"
	"net/http"
	"net/url"
)

var _ Source = HTTPSource{}

// HTTPSource gets suggestions from the server's /api/actor/suggest endpoint.
type HTTPSource struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (h HTTPSource) Suggest(ctx context.Context, query string) ([]server.PersonSummary, error) {
	target := h.BaseURL + "/api/actor/suggest?" + url.Values{"q": []string{query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	httpClient := h.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) { _ = Body.Close() }(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var result server.PersonsResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return result.Results, nil
}
