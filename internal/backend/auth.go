package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"harmonyminds/internal/logging"
)

// ErrLoginFailed means the backend rejected the provider callback.
var ErrLoginFailed = errors.New("backend: login failed")

// AuthStatus is the outcome of an auth status check.
type AuthStatus int

const (
	// CheckFailed means the backend could not be asked or gave no usable answer.
	CheckFailed AuthStatus = iota
	Unauthenticated
	Authenticated
)

func (s AuthStatus) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "check_failed"
	}
}

// IsAuthenticated is the downgrade policy: an unknown status counts as logged out.
func (s AuthStatus) IsAuthenticated() bool {
	return s == Authenticated
}

type statusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// AuthStatus asks the backend whether this session is linked to a provider
// account. It never returns an error; failures are reported as CheckFailed.
func (c *Client) AuthStatus(ctx context.Context) AuthStatus {
	log := logging.WithContext(ctx)

	resp, err := c.get(ctx, "/auth/status")
	if err != nil {
		log.Warn().Err(err).Msg("Auth status check failed")
		return CheckFailed
	}
	defer resp.Body.Close()

	if !ok(resp) {
		log.Warn().Int("status_code", resp.StatusCode).Msg("Auth status check returned an error status")
		return CheckFailed
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Warn().Err(err).Msg("Auth status response could not be decoded")
		return CheckFailed
	}

	if body.Authenticated {
		return Authenticated
	}
	return Unauthenticated
}

// CheckAuthStatus reports whether the session is authenticated, treating a
// failed check as not authenticated.
func (c *Client) CheckAuthStatus(ctx context.Context) bool {
	return c.AuthStatus(ctx).IsAuthenticated()
}

// CallbackURL is where the backend receives the provider's OAuth redirect.
// It sits at the backend origin, outside the API prefix.
func (c *Client) CallbackURL() (*url.URL, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: parse base url: %w", err)
	}
	u.Path = strings.TrimSuffix(strings.TrimSuffix(u.Path, "/"), "/api") + "/callback"
	u.RawQuery = ""
	return u, nil
}

// CompleteLogin relays the provider's callback query to the backend. The
// backend's redirect is not followed, so the session cookie it sets is
// captured by the client's jar.
func (c *Client) CompleteLogin(ctx context.Context, rawQuery string) error {
	target, err := c.CallbackURL()
	if err != nil {
		return err
	}
	target.RawQuery = rawQuery

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("backend: create callback request: %w", err)
	}

	noFollow := *c.httpClient
	noFollow.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := noFollow.Do(req)
	if err != nil {
		return fmt.Errorf("backend: callback: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: callback returned %s", ErrLoginFailed, resp.Status)
	}

	if loc := resp.Header.Get("Location"); loc != "" {
		if u, err := url.Parse(loc); err == nil && u.Query().Get("error") != "" {
			return fmt.Errorf("%w: %s", ErrLoginFailed, u.Query().Get("error"))
		}
	}
	return nil
}
