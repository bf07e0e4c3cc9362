package api

import (
	"context"
	"net/http"
)

const (
	ModeOnline  = "Backend online"
	ModeOffline = "Offline"
)

// Status is the advisory reachability of the backend.
type Status struct {
	Online bool
	Mode   string
}

// CheckStatus issues GET /health. Any failure, including cancellation,
// reports offline; it never returns an error.
func (c *Client) CheckStatus(ctx context.Context) Status {
	_, _, err := c.dispatch(ctx, Request{Method: http.MethodGet, Path: "/health", Context: "check backend status"})
	if err != nil {
		c.log.Debug(ctx, "health probe failed", "error", err)
		return Status{Online: false, Mode: ModeOffline}
	}
	return Status{Online: true, Mode: ModeOnline}
}
