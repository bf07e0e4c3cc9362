// Package services wraps every backend endpoint the portal uses in a typed
// method. Reads choose api.DoWithFallback with an explicit offline value;
// writes use api.Do and surface every failure.
package services

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit  = 100
	DefaultOffset = 0
)

var (
	// ErrQuotaFull is returned before contacting the backend when a free
	// plan commerce is requested while the chamber's free quota is used up.
	ErrQuotaFull       = errors.New("free commerce quota is full")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyToken      = errors.New("backend returned an empty access token")
)

// Page selects a window of a list endpoint. Zero values mean defaults.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) normalized() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}
	return p
}

func (p Page) query() url.Values {
	p = p.normalized()
	return url.Values{
		"limit":  {strconv.Itoa(p.Limit)},
		"offset": {strconv.Itoa(p.Offset)},
	}
}

// pathID escapes one path segment and rejects blanks.
func pathID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidArgument
	}
	return url.PathEscape(id), nil
}

func emptyList[T any]() func() []T {
	return func() []T { return []T{} }
}
