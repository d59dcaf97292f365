package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	consts "portfolio/pkg/constants"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every read and JSON write. Uploads have no
// timeout and are bounded by their context only.
const DefaultTimeout = 10 * time.Second

// Client talks to the content API at {base}/api/{resource}.
type Client struct {
	base   *url.URL // nil when unconfigured
	http   *http.Client
	upload *http.Client
	logger *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the client used for reads and JSON writes.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUploadClient replaces the client used for multipart uploads.
func WithUploadClient(h *http.Client) Option {
	return func(c *Client) { c.upload = h }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New builds a client for backendURL. An empty URL yields a client whose
// every call fails with ErrNotConfigured.
func New(backendURL string, opts ...Option) (*Client, error) {
	c := &Client{
		http:   &http.Client{Timeout: DefaultTimeout},
		upload: &http.Client{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	backendURL = strings.TrimRight(strings.TrimSpace(backendURL), "/")
	if backendURL == "" {
		return c, nil
	}
	u, err := url.Parse(backendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL %q: %w", backendURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q: need http(s)://host", backendURL)
	}
	c.base = u
	return c, nil
}

func (c *Client) Configured() bool { return c.base != nil }

func (c *Client) BaseURL() string {
	if c.base == nil {
		return ""
	}
	return c.base.String()
}

// ResolveURL turns a media path returned by the API into an absolute URL.
// Absolute URLs (S3) pass through unchanged.
func (c *Client) ResolveURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || c.base == nil {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.base.Scheme + "://" + c.base.Host + path
}

func (c *Client) endpoint(resource string, query url.Values, segments ...string) (string, error) {
	if c.base == nil {
		return "", otherError(ErrNotConfigured)
	}
	u := *c.base
	parts := append([]string{consts.APIPrefix, strings.Trim(resource, "/")}, segments...)
	u.Path = strings.TrimRight(u.Path, "/") + strings.Join(parts, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// Get fetches a singleton resource (personal, social).
func (c *Client) Get(ctx context.Context, resource string, out any) error {
	return c.List(ctx, resource, "", out)
}

// List fetches a collection, filtered by category when it is not empty.
func (c *Client) List(ctx context.Context, resource, category string, out any) error {
	var q url.Values
	if category != "" {
		q = url.Values{"category": {category}}
	}
	target, err := c.endpoint(resource, q)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodGet, target, nil, out)
}

func (c *Client) Create(ctx context.Context, resource string, payload, out any) error {
	target, err := c.endpoint(resource, nil)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, target, payload, out)
}

// Update sends a partial update. An empty id addresses a singleton.
func (c *Client) Update(ctx context.Context, resource, id string, payload, out any) error {
	var segments []string
	if id != "" {
		segments = append(segments, id)
	}
	target, err := c.endpoint(resource, nil, segments...)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPut, target, payload, out)
}

func (c *Client) Delete(ctx context.Context, resource, id string) error {
	target, err := c.endpoint(resource, nil, id)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, target, nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, target string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return otherError(fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return otherError(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(ctx, c.http, req, out)
}

func (c *Client) send(ctx context.Context, hc *http.Client, req *http.Request, out any) error {
	resp, err := hc.Do(req)
	if err != nil {
		err = transportError(ctx, err)
		c.logger.Debug("request failed", zap.String("method", req.Method), zap.String("url", req.URL.String()), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := serverError(resp)
		c.logger.Debug("server error", zap.String("method", req.Method), zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode), zap.Error(err))
		return err
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return otherError(ctxErr)
		}
		return otherError(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
