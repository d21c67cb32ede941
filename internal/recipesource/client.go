// Package recipesource is the client for the external recipe search API.
package recipesource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.spoonacular.com"

// searchLimit caps the number of summaries requested per search.
const searchLimit = 20

// Client calls the external recipe API. The search call is best-effort: a
// non-success status yields an empty result set rather than an error.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *DetailCache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithDetailCache enables transparent caching of detail lookups.
func WithDetailCache(cache *DetailCache) Option {
	return func(c *Client) { c.cache = cache }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries the search endpoint and returns summaries in API order.
// A non-2xx response or malformed body returns an empty slice, not an error;
// only transport-level failures are reported.
func (c *Client) Search(ctx context.Context, query, diet string) ([]Summary, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("number", strconv.Itoa(searchLimit))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	if query != "" {
		params.Set("query", query)
	}
	if diet != "" {
		params.Set("diet", diet)
	}

	reqURL := fmt.Sprintf("%s/recipes/complexSearch?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recipe search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, nil
	}
	return body.Results, nil
}

// Details fetches the per-recipe information record with nutrition included.
// Any failure returns an error; the caller drops that item.
func (c *Client) Details(ctx context.Context, id int) (*Detail, error) {
	if c.cache != nil {
		if detail, ok := c.cache.Get(ctx, id); ok {
			return detail, nil
		}
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("includeNutrition", "true")

	reqURL := fmt.Sprintf("%s/recipes/%d/information?%s", c.baseURL, id, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recipe detail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe detail request returned status %d", resp.StatusCode)
	}

	var detail Detail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("decoding recipe detail: %w", err)
	}

	if c.cache != nil {
		c.cache.Set(ctx, id, &detail)
	}
	return &detail, nil
}
