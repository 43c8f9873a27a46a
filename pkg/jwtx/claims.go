package jwtx

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the full claim set of a session token. Only the
// expiration and the caller's payload are carried.
type SessionClaims[T any] struct {
	Exp  *jwt.NumericDate `json:"exp"`
	Info T                `json:"info"`
}

var _ jwt.Claims = (*SessionClaims[string])(nil)

func (c *SessionClaims[T]) GetExpirationTime() (*jwt.NumericDate, error) { return c.Exp, nil }
func (c *SessionClaims[T]) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (c *SessionClaims[T]) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c *SessionClaims[T]) GetIssuer() (string, error)                   { return "", nil }
func (c *SessionClaims[T]) GetSubject() (string, error)                  { return "", nil }
func (c *SessionClaims[T]) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }
