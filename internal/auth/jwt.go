// Package auth inspects session tokens and OAuth redirects on the client side.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the part of a session token the client reads locally.
type Claims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time // zero when the token has no exp claim
}

// Expired reports whether the token is past its exp at now.
// Tokens without exp never expire locally.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Inspect decodes token without verifying its signature. Only the server
// holds the signing key; the client uses the claims to skip tokens it
// already knows are expired.
func Inspect(token string) (Claims, error) {
	if token == "" {
		return Claims{}, errors.New("token is empty")
	}

	var sc sessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &sc); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	c := Claims{Subject: sc.Subject, Email: sc.Email}
	if sc.ExpiresAt != nil {
		c.ExpiresAt = sc.ExpiresAt.Time
	}
	if c.Email == "" {
		c.Email = sc.Subject
	}
	return c, nil
}
