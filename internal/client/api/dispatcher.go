package api

import (
	"bytes"
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
)

// Request describes one backend call.
type Request struct {
	Method string
	// Path is relative to the base URL and starts with "/".
	Path  string
	Query url.Values
	// Body is sent as JSON. Ignored when Form is set.
	Body any
	// Form is sent as application/x-www-form-urlencoded.
	Form url.Values
	// Context names the operation in error messages and logs.
	Context string
}

// ErrFallbackMethod is returned by DoWithFallback for non-GET requests.
var ErrFallbackMethod = errors.New("fallback is only allowed for GET requests")

// Do performs req and decodes a 2xx JSON body into T. An empty body
// decodes to the zero value.
func Do[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var zero T

	status, body, err := c.dispatch(ctx, req)
	if err != nil {
		return zero, err
	}
	return decode[T](status, body, req.Context)
}

// DoWithFallback behaves like Do, except that a connectivity failure
// returns fallback() and a nil error. Auth and server failures are
// returned unchanged.
func DoWithFallback[T any](ctx context.Context, c *Client, req Request, fallback func() T) (T, error) {
	var zero T

	if method(req) != http.MethodGet {
		return zero, fmt.Errorf("%s %s: %w", method(req), req.Path, ErrFallbackMethod)
	}
	if fallback == nil {
		return Do[T](ctx, c, req)
	}

	v, err := Do[T](ctx, c, req)
	if err == nil {
		return v, nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindConnectivity {
		c.log.Warn(ctx, "backend unreachable, using fallback data",
			"context", req.Context, "path", req.Path, "error", apiErr.Err)
		c.metrics.fallback(req.Context)
		return fallback(), nil
	}
	return zero, err
}

func method(req Request) string {
	if req.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(req.Method)
}

func decode[T any](status int, body []byte, context string) (T, error) {
	var v T
	if len(bytes.TrimSpace(body)) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(body, &v); err != nil {
		var zero T
		return zero, decodeError(status, context, err)
	}
	return v, nil
}

type result struct {
	status int
	body   []byte
}

// dispatch sends the request and returns the status and body of a 2xx
// response, or a classified *Error. Identical concurrent GETs made with
// the same token share one round trip.
func (c *Client) dispatch(ctx context.Context, req Request) (int, []byte, error) {
	m := method(req)
	target := c.url(req)
	headers := c.AuthHeaders(ctx)

	if m != http.MethodGet {
		return c.roundTrip(ctx, m, target, headers, req)
	}

	key := target + "\x00" + headers.Get("Authorization")
	ch := c.reads.DoChan(key, func() (any, error) {
		// The shared call must not die with whichever caller started it.
		status, body, err := c.roundTrip(context.WithoutCancel(ctx), m, target, headers, req)
		return result{status: status, body: body}, err
	})

	select {
	case <-ctx.Done():
		return 0, nil, c.contextError(ctx, req)
	case r := <-ch:
		if r.Err != nil {
			return 0, nil, r.Err
		}
		res := r.Val.(result)
		return res.status, res.body, nil
	}
}

func (c *Client) contextError(ctx context.Context, req Request) error {
	err := ctx.Err()
	c.metrics.request(method(req), outcomeCanceled, 0)
	if errors.Is(err, context.Canceled) {
		return err
	}
	return c.connectivityError(req.Context, err)
}

func (c *Client) roundTrip(ctx context.Context, m, target string, headers http.Header, req Request) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return 0, nil, fmt.Errorf("encode %s body: %w", req.Context, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, m, target, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s request: %w", req.Context, err)
	}
	httpReq.Header = headers.Clone()
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-ID", requestID)

	log := c.log.With("method", m, "path", req.Path, "request_id", requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.metrics.request(m, outcomeCanceled, time.Since(start))
			return 0, nil, context.Canceled
		}
		log.Debug(ctx, "request failed without response", "error", err)
		c.metrics.request(m, outcomeConnectivity, time.Since(start))
		return 0, nil, c.connectivityError(req.Context, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Info(ctx, "request rejected", "status", resp.StatusCode)
		c.metrics.request(m, outcomeAuth, time.Since(start))
		return 0, nil, authError(resp.StatusCode, req.Context)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.metrics.request(m, outcomeCanceled, time.Since(start))
			return 0, nil, context.Canceled
		}
		c.metrics.request(m, outcomeConnectivity, time.Since(start))
		return 0, nil, c.connectivityError(req.Context, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Info(ctx, "request failed", "status", resp.StatusCode)
		c.metrics.request(m, outcomeServer, time.Since(start))
		return 0, nil, serverError(resp.StatusCode, req.Context, data)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))
	c.metrics.request(m, outcomeOK, time.Since(start))
	return resp.StatusCode, data, nil
}

func (c *Client) url(req Request) string {
	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.baseURL + path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	return u
}

func encodeBody(req Request) (io.Reader, string, error) {
	switch {
	case req.Form != nil:
		return strings.NewReader(req.Form.Encode()), "application/x-www-form-urlencoded", nil
	case req.Body != nil:
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(b), "", nil
	}
	return nil, "", nil
}
