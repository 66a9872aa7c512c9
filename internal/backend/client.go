package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNoAuthURL is returned when the login endpoint answers without a URL.
var ErrNoAuthURL = errors.New("backend: login response has no auth_url")

// maxErrorBody bounds how much of a failed response is read.
const maxErrorBody = 1 << 20

// Client talks to the analysis backend. The http.Client is expected to carry
// the browser session's cookie jar; the backend keeps its session in cookies.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for baseURL, e.g. "http://localhost:5000/api".
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the API root the client calls.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type authURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// GetAuthURL asks the backend for the provider login URL.
func (c *Client) GetAuthURL(ctx context.Context) (string, error) {
	resp, err := c.get(ctx, "/auth/login")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return "", fmt.Errorf("backend: get auth url: %s", resp.Status)
	}

	var body authURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("backend: decode auth url: %w", err)
	}
	if body.AuthURL == "" {
		return "", ErrNoAuthURL
	}
	return body.AuthURL, nil
}

// Logout ends the backend session. The response body is ignored; callers
// treat the user as logged out whatever the outcome.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.get(ctx, "/auth/logout")
	if err != nil {
		return err
	}
	defer drain(resp)

	if !ok(resp) {
		return fmt.Errorf("backend: logout: %s", resp.Status)
	}
	return nil
}

// Ping reports whether the backend answers HTTP at all.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.get(ctx, "/auth/status")
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("backend: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: GET %s: %w", path, err)
	}
	return resp, nil
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
}
