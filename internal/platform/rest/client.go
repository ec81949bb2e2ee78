package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"restoBotClient/internal/shared/port"
)

const (
	defaultBaseURL   = "http://localhost:8000/api/v1"
	defaultUserAgent = "restobot-client/1.0"
	errorBodyLimit   = 2048
)

// Client wraps http.Client with base URL handling, JSON encoding and status mapping so the
// service façades only deal with paths and typed payloads.
type Client struct {
	baseURL   string
	client    *http.Client
	timeout   time.Duration
	token     string
	userAgent string
	metrics   *Metrics
	requestID func() string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout bounds every request. Non-positive values fall back to the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeoutOrDefault(timeout)
	}
}

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(agent); trimmed != "" {
			c.userAgent = trimmed
		}
	}
}

// WithMetrics records request counters and latencies on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithRequestID overrides the X-Request-ID generator.
func WithRequestID(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.requestID = fn
		}
	}
}

// NewClient builds a Client rooted at baseURL (e.g. http://localhost:8000/api/v1).
func NewClient(baseURL string, opts ...Option) *Client {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	c := &Client{
		baseURL:   strings.TrimRight(trimmed, "/"),
		timeout:   timeoutOrDefault(0),
		userAgent: defaultUserAgent,
		requestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewRequest joins endpoint onto the base URL. Any query already present in endpoint is kept.
func (c *Client) NewRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	return http.NewRequestWithContext(ctx, method, target, body)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.NewRequest(ctx, method, path, reader)
	if err != nil {
		slog.Error("rest request build failed", slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return err
	}
	mergeQuery(req.URL, query)

	requestID := c.requestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	route := RouteLabel(path)
	slog.Debug("rest request", slog.String("method", method), slog.String("url", req.URL.String()), slog.String("requestId", requestID))

	started := time.Now()
	res, err := c.client.Do(req)
	if err != nil {
		c.metrics.observe(method, route, "error", time.Since(started))
		slog.Warn("rest request error", slog.String("method", method), slog.String("path", path), slog.String("requestId", requestID), slog.Any("error", err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()
	c.metrics.observe(method, route, strconv.Itoa(res.StatusCode), time.Since(started))
	slog.Debug("rest response", slog.Int("status", res.StatusCode), slog.String("url", req.URL.String()), slog.String("requestId", requestID))

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, errorBodyLimit))
		statusErr := &StatusError{Method: method, Path: path, StatusCode: res.StatusCode, Body: strings.TrimSpace(string(raw))}
		slog.Warn("rest unexpected status", slog.Int("status", res.StatusCode), slog.String("url", req.URL.String()), slog.String("detail", statusErr.Detail()))
		return statusErr
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func mergeQuery(target *url.URL, query url.Values) {
	if len(query) == 0 {
		return
	}
	encoded := query.Encode()
	if target.RawQuery == "" {
		target.RawQuery = encoded
		return
	}
	target.RawQuery += "&" + encoded
}

// RouteLabel collapses numeric path segments and drops the query so metric cardinality stays bounded.
func RouteLabel(path string) string {
	trimmed := strings.TrimSpace(path)
	if idx := strings.IndexByte(trimmed, '?'); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	segments := strings.Split(strings.Trim(trimmed, "/"), "/")
	for i, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			segments[i] = "{id}"
		}
	}
	return "/" + strings.Join(segments, "/")
}

func timeoutOrDefault(value time.Duration) time.Duration {
	if value <= 0 {
		return 10 * time.Second
	}
	return value
}

var _ port.APIClient = (*Client)(nil)
