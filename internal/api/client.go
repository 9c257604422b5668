package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Client is a read-only HTTP client for the backend API. It performs the two
// reads the front end needs (greeting and user list) plus the health probe.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client, useful for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Greeting fetches the greeting message from GET /api/hello.
func (c *Client) Greeting(ctx context.Context) (string, error) {
	var body greetingResponse
	if err := c.getJSON(ctx, "/api/hello", &body); err != nil {
		return "", err
	}
	return body.Message, nil
}

// Users fetches the user listing from GET /api/usuarios. The slice keeps the
// server's ordering; records are passed through without validation.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.getJSON(ctx, "/api/usuarios", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Health probes GET /api/health and returns an error unless the backend
// reports "ok".
func (c *Client) Health(ctx context.Context) error {
	var body healthResponse
	if err := c.getJSON(ctx, "/api/health", &body); err != nil {
		return err
	}
	if body.Status != "ok" {
		return fmt.Errorf("backend reported status %q", body.Status)
	}
	return nil
}

// getJSON performs a GET against path and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: unexpected status %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
