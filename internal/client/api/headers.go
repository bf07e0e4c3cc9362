package api

import (
	"context"
	"net/http"
)

// TokenSource yields the current bearer token. An empty token with a nil
// error means "not logged in".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken is a TokenSource that always returns the same value.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) { return string(t), nil }

// AuthHeaders builds the JSON and authorization headers for one request.
// The token is read on every call, so a login or logout is picked up by
// the next request. Without a token the Authorization header is present
// but empty.
func (c *Client) AuthHeaders(ctx context.Context) http.Header {
	h := make(http.Header, 2)
	h.Set("Content-Type", "application/json")

	token := ""
	if c.tokens != nil {
		t, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Warn(ctx, "token read failed, sending request without credentials", "error", err)
		} else {
			token = t
		}
	}

	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	} else {
		h.Set("Authorization", "")
	}
	return h
}
