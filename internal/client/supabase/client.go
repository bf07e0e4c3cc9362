// Package supabase is a read-only PostgREST client for the portal's
// managed database. It is only used as a secondary source when the main
// backend cannot be reached.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

var ErrNotConfigured = errors.New("supabase is not configured")

type Config struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New returns ErrNotConfigured when either URL or APIKey is empty.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" || cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: hc,
	}, nil
}

// Profiles reads one page of the profiles table.
func (c *Client) Profiles(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	params := url.Values{}
	params.Set("select", "*")
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}

	var out []models.Profile
	if err := c.get(ctx, "profiles", params, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Profile{}
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, table string, params url.Values, dst any) error {
	reqURL := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("query %s: %w", table, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", table, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("query %s: status %d: %s", table, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w", table, err)
	}
	return nil
}
