package wynncraft

import (
	"context"
	"net/http"
	"net/url"
)

// Config controls how the client reaches the Wynncraft API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client fetches Wynncraft API resources and maps them into typed records.
// It keeps no state between calls and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient httpDoer
	userAgent  string
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = userAgent
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		userAgent:  ua,
	}
}

// BaseURL reports the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// fetchObject fetches path and requires the document root to be an object.
func (c *Client) fetchObject(ctx context.Context, path string, query url.Values) (object, error) {
	doc, err := c.getDocument(ctx, path, query)
	if err != nil {
		return object{}, err
	}
	return asObject(doc, "")
}

// fetchArray fetches path and requires the document root to be an array.
func (c *Client) fetchArray(ctx context.Context, path string, query url.Values) (array, error) {
	doc, err := c.getDocument(ctx, path, query)
	if err != nil {
		return array{}, err
	}
	return asArray(doc, "")
}

func identifierQuery(key string, id Identifier) url.Values {
	q := url.Values{}
	q.Set(key, id.param())
	return q
}
