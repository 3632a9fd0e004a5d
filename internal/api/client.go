package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/MBahyeldin/online-shoping/domain"
)

// envelope is the backend's uniform JSON response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client wraps all outbound calls to the cake-shop backend. It attaches the
// persisted bearer token to every request, tears the session down on any 401,
// and normalizes every failure to exactly one *domain.APIError so callers
// only ever handle one error shape.
type Client struct {
	baseURL        *url.URL
	httpc          *http.Client
	creds          domain.CredentialStore
	onUnauthorized func(ctx context.Context)
	log            *logrus.Entry
}

// Option configures a Client.
type Option func(*Client)

// WithUnauthorizedHook installs the session-teardown hook invoked once per
// 401 response. The default hook clears the credential store.
func WithUnauthorizedHook(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, creds domain.CredentialStore, logger *logrus.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL %q: %w", baseURL, err)
	}
	// Cookie jar so the backend's parallel cookie credential channel works.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	c := &Client{
		baseURL: u,
		httpc:   &http.Client{Timeout: 30 * time.Second, Jar: jar},
		creds:   creds,
		log:     logger.WithField("component", "api_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.onUnauthorized == nil {
		c.onUnauthorized = func(ctx context.Context) {
			if err := creds.Clear(ctx); err != nil {
				c.log.WithError(err).Warn("failed to clear persisted credentials")
			}
		}
	}
	return c, nil
}

// Get issues a GET and unmarshals the envelope data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Bearer token sourced from persisted storage, attached when present.
	if token, _, err := c.creds.Load(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Transport failure: normalized to the same shape as backend errors,
		// indistinguishable to the caller.
		return &domain.APIError{Status: 0, Message: transportMessage(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{Status: resp.StatusCode, Message: transportMessage(err)}
	}

	var env envelope
	decodable := json.Unmarshal(raw, &env) == nil

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.WithField("path", path).Info("authorization failure, tearing down session")
		c.onUnauthorized(ctx)
		return &domain.APIError{Status: resp.StatusCode, Message: errorMessage(env, resp, decodable)}
	}

	if resp.StatusCode >= 400 || (decodable && !env.Success) {
		return &domain.APIError{Status: resp.StatusCode, Message: errorMessage(env, resp, decodable)}
	}

	if out != nil {
		// A 2xx body that is not the response envelope surfaces as the same
		// normalized error shape as everything else, never as a silently
		// zero-valued result.
		if !decodable {
			return &domain.APIError{Status: resp.StatusCode, Message: domain.GenericErrorMessage}
		}
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return fmt.Errorf("decode response data: %w", err)
			}
		}
	}
	return nil
}

// errorMessage extracts the human-readable message: backend envelope first,
// then the HTTP status text, then the generic fallback.
func errorMessage(env envelope, resp *http.Response, decodable bool) string {
	if decodable && env.Error != "" {
		return env.Error
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return domain.GenericErrorMessage
}

func transportMessage(err error) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return domain.GenericErrorMessage
}
