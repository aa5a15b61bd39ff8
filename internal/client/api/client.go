package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultTimeout = 5 * time.Second

	maxResponseBytes int64 = 10 << 20
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

type options struct {
	timeout   time.Duration
	transport http.RoundTripper
	logger    logging.Logger
}

type Option func(*options)

// WithTimeout overrides the 5 second per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithTransport replaces http.DefaultTransport underneath the bearer layer.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New returns a Client for baseURL. tokens may be nil, in which case no
// Authorization header is ever sent.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	o := options{
		timeout:   DefaultTimeout,
		transport: http.DefaultTransport,
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   o.timeout,
			Transport: &bearerTransport{base: o.transport, tokens: tokens},
		},
		logger: o.logger.With("component", "api"),
	}
}

// BaseURL returns the URL every path is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// Do sends one request. body, when non-nil, is sent as JSON. On a 2xx
// response a non-empty body is decoded into out (when out is non-nil).
// Every failure is returned as *Error.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	requestID := uuid.NewString()
	log := c.logger.With("method", method, "path", path, "request_id", requestID)

	err := c.do(ctx, method, path, requestID, body, out)
	if err != nil {
		log.Error(ctx, "api request failed", "status", err.Status, "message", err.Message)
		return err
	}
	log.Debug(ctx, "api request ok")
	return nil
}

func (c *Client) do(ctx context.Context, method, path, requestID string, body, out any) *Error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Normalize(fmt.Errorf("encode request body: %w", err), "")
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return Normalize(err, "")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return Normalize(err, "")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		e := Normalize(fmt.Errorf("read response body: %w", err), "")
		e.Status = resp.StatusCode
		return e
	}
	if int64(len(data)) > maxResponseBytes {
		return &Error{
			Message: fmt.Sprintf("response body exceeds %d bytes", maxResponseBytes),
			Status:  resp.StatusCode,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newResponseError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{
			Message: fmt.Sprintf("invalid response body: %v", err),
			Status:  resp.StatusCode,
			Data:    rawData(data),
			err:     err,
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}
