package aviationstack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/skyfare/flight-search-service/internal/domain"
)

// Client is a thin HTTP client for the aviationstack /flights endpoint.
// There is no retry, caching or timeout policy here: a request either
// resolves or the caller bears the failure.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a client for the given base URL and access key.
// A nil httpClient falls back to http.DefaultClient.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// fetch performs one GET /flights call with the given query parameters.
// Non-2xx responses and error payloads both surface as domain.ErrProviderFailure;
// they are never converted to an empty result set.
func (c *Client) fetch(ctx context.Context, params url.Values) (*apiResponse, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	query.Set("access_key", c.apiKey)

	endpoint := fmt.Sprintf("%s/flights?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %s", domain.ErrProviderFailure, resp.Status)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrProviderFailure, err)
	}

	if payload.Error != nil {
		info := payload.Error.Info
		if info == "" {
			info = "unknown error"
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderFailure, info)
	}

	return &payload, nil
}
