package stashsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SessionCookieName is the cookie the service stores the session token in.
const SessionCookieName = "STASH_SESSION"

// Client talks to a Stash service. It keeps the session cookie in its own
// jar, so one Client is one signed-in browser.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with an empty cookie jar.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// SessionToken returns the session cookie value currently held, if any.
func (c *Client) SessionToken() string {
	u, err := url.Parse(c.BaseURL + "/")
	if err != nil || c.HTTPClient.Jar == nil {
		return ""
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(u) {
		if ck.Name == SessionCookieName {
			return ck.Value
		}
	}
	return ""
}

// SetSessionToken replaces the held session cookie. Useful for presenting a
// token obtained elsewhere.
func (c *Client) SetSessionToken(token string) {
	u, err := url.Parse(c.BaseURL + "/")
	if err != nil || c.HTTPClient.Jar == nil {
		return
	}
	c.HTTPClient.Jar.SetCookies(u, []*http.Cookie{{Name: SessionCookieName, Value: token, Path: "/"}})
}

// Register creates an account and signs in as it.
func (c *Client) Register(ctx context.Context, name, password string) (*SessionResponse, error) {
	return c.session(ctx, "/v1/accounts/register", http.StatusCreated, name, password)
}

// Login signs in to an existing account.
func (c *Client) Login(ctx context.Context, name, password string) (*SessionResponse, error) {
	return c.session(ctx, "/v1/accounts/login", http.StatusOK, name, password)
}

func (c *Client) session(ctx context.Context, path string, want int, name, password string) (*SessionResponse, error) {
	resp, err := c.doForm(ctx, path, url.Values{"name": {name}, "password": {password}})
	if err != nil {
		return nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, want); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout drops the session cookie on both sides.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doForm(ctx, "/v1/accounts/logout", url.Values{})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Me returns the signed-in account.
func (c *Client) Me(ctx context.Context) (*AccountResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/accounts/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var out AccountResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendClip stores content. A non-empty passphrase stores it encrypted.
func (c *Client) SendClip(ctx context.Context, content, passphrase string) (*SendClipResponse, error) {
	form := url.Values{"content": {content}}
	if passphrase != "" {
		form.Set("passphrase", passphrase)
	}

	resp, err := c.doForm(ctx, "/v1/clips", form)
	if err != nil {
		return nil, err
	}

	var out SendClipResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetClip reads an unprotected clip.
func (c *Client) GetClip(ctx context.Context, code int) (*ClipResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/clips/"+strconv.Itoa(code), nil, nil)
	if err != nil {
		return nil, err
	}

	var out ClipResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenClip reads a clip, decrypting it with passphrase when protected.
func (c *Client) OpenClip(ctx context.Context, code int, passphrase string) (*ClipResponse, error) {
	resp, err := c.doForm(ctx, "/v1/clips/"+strconv.Itoa(code)+"/open", url.Values{"passphrase": {passphrase}})
	if err != nil {
		return nil, err
	}

	var out ClipResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
