package api

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure classes of a backend call.
type Kind int

const (
	KindAuth Kind = iota + 1
	KindConnectivity
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindConnectivity:
		return "connectivity"
	case KindServer:
		return "server"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
	ErrServer       = errors.New("server error")
)

const msgUnauthorized = "session expired or insufficient permissions"

// Error is returned by Do and DoWithFallback for every classified failure.
type Error struct {
	Kind Kind
	// Status is the HTTP status code, zero for connectivity failures.
	Status int
	// Message is the human-readable text shown to the user.
	Message string
	// Context names the operation, e.g. "list members".
	Context string
	BaseURL string
	Origin  string
	// Err is the underlying transport or decode error, if any.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels so callers can write
// errors.Is(err, api.ErrUnauthorized).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindAuth
	case ErrUnavailable:
		return e.Kind == KindConnectivity
	case ErrServer:
		return e.Kind == KindServer
	}
	return false
}

func authError(status int, context string) *Error {
	return &Error{Kind: KindAuth, Status: status, Message: msgUnauthorized, Context: context}
}

func (c *Client) connectivityError(context string, err error) *Error {
	origin := c.origin
	if origin == "" {
		origin = "unknown"
	}
	return &Error{
		Kind: KindConnectivity,
		Message: fmt.Sprintf(
			"could not reach the server configured at %s while trying to %s; check that the backend is running and that it accepts requests from origin %s (CORS)",
			c.baseURL, context, origin),
		Context: context,
		BaseURL: c.baseURL,
		Origin:  c.origin,
		Err:     err,
	}
}

func serverError(status int, context string, body []byte) *Error {
	msg := serverMessage(body)
	if msg == "" {
		msg = fmt.Sprintf("server error (status %d) in %s", status, context)
	}
	return &Error{Kind: KindServer, Status: status, Message: msg, Context: context}
}

func decodeError(status int, context string, err error) *Error {
	return &Error{
		Kind:    KindServer,
		Status:  status,
		Message: fmt.Sprintf("invalid response (status %d) in %s", status, context),
		Context: context,
		Err:     err,
	}
}
