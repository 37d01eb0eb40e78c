// Package client issues authenticated GET requests against the market data API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/guttosm/marketprobe/internal/logger"
)

const (
	// AccessKeyParam is the query parameter carrying the API key.
	AccessKeyParam = "access_key"
	// RequestIDHeader is sent with every request for log correlation.
	RequestIDHeader = "X-Request-ID"

	redacted = "REDACTED"
)

// Config holds the target API location and credentials.
type Config struct {
	BaseURL    string // e.g. https://api.marketstack.com
	APIVersion string // e.g. /v1
	AccessKey  string
}

// Response is the raw outcome of one request. Non-2xx statuses are returned
// as responses, not errors; callers inspect StatusCode and Body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// URL is the request URL with the access key redacted.
	URL       string
	RequestID string
	Elapsed   time.Duration
}

// JSON unmarshals the body into v without any shape validation.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Client performs single, blocking GET requests. No retries are attempted.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport, e.g. for httptest servers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for cfg.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:  cfg,
		http: NewHTTPClient(),
		log:  logger.Component("client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the versioned API root.
func (c *Client) BaseURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + c.cfg.APIVersion
}

// Get requests endpoint with params, adding the access key automatically.
// A caller-supplied access_key entry is overwritten.
//
// Transport failures are returned as errors; HTTP error statuses are not.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string) (*Response, error) {
	u, err := url.Parse(c.BaseURL() + endpoint)
	if err != nil {
		return nil, fmt.Errorf("build url for %s: %w", endpoint, err)
	}

	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set(AccessKeyParam, c.cfg.AccessKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request for %s: %w", endpoint, err)
	}
	rid := uuid.NewString()
	req.Header.Set(RequestIDHeader, rid)
	req.Header.Set("Accept", "application/json")

	safeURL := redactURL(u)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error repeats the full URL, key included.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		c.log.Error().Err(err).Str("request_id", rid).Str("url", safeURL).Msg("api_request_failed")
		return nil, fmt.Errorf("GET %s: %w", safeURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of GET %s: %w", safeURL, err)
	}
	elapsed := time.Since(start)

	c.log.Info().
		Str("request_id", rid).
		Str("method", http.MethodGet).
		Str("url", safeURL).
		Int("status", resp.StatusCode).
		Int64("latency_ms", elapsed.Milliseconds()).
		Int("bytes", len(body)).
		Msg("api_request")

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		URL:        safeURL,
		RequestID:  rid,
		Elapsed:    elapsed,
	}, nil
}

func redactURL(u *url.URL) string {
	cp := *u
	q := cp.Query()
	if q.Has(AccessKeyParam) {
		q.Set(AccessKeyParam, redacted)
	}
	cp.RawQuery = q.Encode()
	return cp.String()
}
