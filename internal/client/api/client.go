package api

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/ruralportal/internal/logging"
	"golang.org/x/sync/singleflight"
)

// Client holds the per-process settings shared by all backend calls.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	origin     string
	httpClient *http.Client
	timeout    time.Duration
	tokens     TokenSource
	log        logging.Logger
	metrics    *Metrics

	reads singleflight.Group
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithOrigin sets the origin reported in connectivity diagnostics.
func WithOrigin(origin string) Option {
	return func(c *Client) { c.origin = origin }
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a Client for the given backend address. The address is
// normalized here and never again.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    NormalizeBaseURL(baseURL),
		httpClient: http.DefaultClient,
		tokens:     tokens,
		log:        logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Origin() string {
	return c.origin
}
