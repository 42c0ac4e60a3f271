package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

const (
	DefaultBaseURL = "https://leetcode.com"
	DefaultTimeout = 10 * time.Second
)

// Client talks to the platform's GraphQL endpoint and its REST judge
// endpoints. It holds no state besides the session cookie.
type Client struct {
	baseURL string
	http    *http.Client
	session session
}

type Option func(*Client)

// WithBaseURL points the client at another origin, e.g. leetcode.cn or a test server.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// New builds a client. An empty cookie yields an anonymous client, which is
// enough for public problem content.
func New(cookie string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		session: newSession(cookie),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticated reports whether requests carry the session cookie.
func (c *Client) Authenticated() bool {
	return c.session.present()
}

// ProblemURL is the public page of a problem.
func (c *Client) ProblemURL(slug string) string {
	return fmt.Sprintf("%s/problems/%s/", c.baseURL, slug)
}

type requestOptions struct {
	slug string
}

type RequestOption func(*requestOptions)

// ForProblem scopes a request to a problem: its page is sent as Referer.
func ForProblem(slug string) RequestOption {
	return func(o *requestOptions) {
		o.slug = slug
	}
}

// PostJSON posts body to a path under the origin and returns the raw JSON response.
func (c *Client) PostJSON(ctx context.Context, path string, body any, authenticated bool, opts ...RequestOption) ([]byte, error) {
	return c.do(ctx, http.MethodPost, c.baseURL+path, body, authenticated, opts...)
}

// GetJSON fetches a path under the origin and returns the raw JSON response.
func (c *Client) GetJSON(ctx context.Context, path string, authenticated bool, opts ...RequestOption) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.baseURL+path, nil, authenticated, opts...)
}

func (c *Client) do(ctx context.Context, method, url string, body any, authenticated bool, opts ...RequestOption) ([]byte, error) {
	if authenticated && !c.session.present() {
		return nil, fmt.Errorf("%w, this command needs a session cookie, set it with 'leetcode config cookie <value>'", lcerrors.ErrMissingConfigKey)
	}

	var ro requestOptions
	for _, opt := range opts {
		opt(&ro)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w, cannot encode request body, %w", lcerrors.ErrDecode, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &lcerrors.FetchError{Kind: lcerrors.FetchNetwork, URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if ro.slug != "" {
		req.Header.Set("Referer", c.ProblemURL(ro.slug))
	}
	if authenticated {
		c.session.apply(req.Header)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &lcerrors.FetchError{Kind: lcerrors.FetchNetwork, URL: url, Err: err}
	}
	defer func() { _ = res.Body.Close() }()

	log.WithFields(log.Fields{
		"method": method,
		"url":    url,
		"status": res.StatusCode,
		"auth":   authenticated,
	}).Debug("platform request")

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &lcerrors.FetchError{Kind: lcerrors.FetchNetwork, URL: url, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &lcerrors.FetchError{
			Kind:    lcerrors.FetchHTTP,
			URL:     url,
			Status:  res.StatusCode,
			Details: strings.TrimSpace(string(data)),
		}
	}

	if !json.Valid(data) {
		return nil, &lcerrors.FetchError{
			Kind: lcerrors.FetchDecode,
			URL:  url,
			Err:  fmt.Errorf("body is not JSON (%d bytes)", len(data)),
		}
	}
	return data, nil
}
