package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the backend puts in its access tokens. They are
// read without signature verification and only ever displayed; the
// backend remains the authority on whether a token is valid.
type Claims struct {
	Subject   string
	Role      string
	UserID    string
	ChamberID string
	ExpiresAt time.Time
}

// Expired reports whether ExpiresAt is set and before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

type tokenClaims struct {
	Role      string `json:"role"`
	UID       string `json:"uid"`
	ChamberID string `json:"camara_id"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the payload of a bearer token.
func ParseClaims(token string) (Claims, error) {
	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &tc); err != nil {
		return Claims{}, fmt.Errorf("parse token claims: %w", err)
	}

	c := Claims{
		Subject:   tc.Subject,
		Role:      tc.Role,
		UserID:    tc.UID,
		ChamberID: tc.ChamberID,
	}
	if tc.ExpiresAt != nil {
		c.ExpiresAt = tc.ExpiresAt.Time
	}
	return c, nil
}
