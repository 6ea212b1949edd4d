package api

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
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/crudpanel/internal/model"
)

const headerRequestID = "X-Request-ID"

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithRootURL sets the liveness endpoint. Defaults to the base URL's origin.
func WithRootURL(root string) Option {
	return func(c *Client) {
		if strings.TrimSpace(root) != "" {
			c.rootURL = root
		}
	}
}

// WithTimeout bounds every request. Zero keeps the transport default (none).
// Applied after all other options, on a copy of the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// Client sends requests to a single CRUD endpoint. No retries.
type Client struct {
	baseURL    string
	rootURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        *slog.Logger
}

// NewClient creates a Client for the provided CRUD endpoint.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("api: base URL is required")
	}
	root, err := OriginOf(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:    baseURL,
		rootURL:    root,
		httpClient: &http.Client{},
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// OriginOf returns scheme://host/ for an absolute URL.
func OriginOf(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("api: invalid URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("api: URL must be absolute: %q", raw)
	}
	return u.Scheme + "://" + u.Host + "/", nil
}

func (c *Client) BaseURL() string { return c.baseURL }
func (c *Client) RootURL() string { return c.rootURL }

// Do sends r to the CRUD endpoint and decodes the response envelope.
func (c *Client) Do(ctx context.Context, r model.Request) (*model.Envelope, error) {
	var body io.Reader
	if r.Method.HasBody() {
		p := r.Body
		if p == nil {
			sample := model.SamplePayload(r.Method)
			p = &sample
		}
		data, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("api: marshal body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	raw, err := c.send(ctx, string(r.Method), c.baseURL, body)
	if err != nil {
		return nil, err
	}
	var env model.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &DecodeError{Body: raw, Err: err}
	}
	return &env, nil
}

// Ping performs the liveness GET against the server root.
func (c *Client) Ping(ctx context.Context) (*model.Greeting, error) {
	raw, err := c.send(ctx, http.MethodGet, c.rootURL, nil)
	if err != nil {
		return nil, err
	}
	var g model.Greeting
	if err := json.Unmarshal(raw, &g); err != nil {
		// A reachable root is enough; the greeting is informational.
		c.log.Debug("liveness.greeting_undecodable", "error", err)
	}
	return &g, nil
}

func (c *Client) send(ctx context.Context, method, target string, body io.Reader) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("api: create request: %w", err)
	}
	id := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, id)

	log := c.log.With("request_id", id, "method", method, "url", target)
	start := time.Now()
	log.Info("request.sent", "has_body", body != nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request.transport_failed", "error", err)
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("request.read_failed", "error", err)
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}
	log.Info("request.done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: raw}
	}
	return raw, nil
}
