package jwtx

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionSigner signs and verifies HS256 session tokens with one
// process-wide secret. It holds no mutable state and is safe for
// concurrent use.
type SessionSigner struct {
	key []byte
	now func() time.Time
}

// Option configures a SessionSigner.
type Option func(*SessionSigner)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *SessionSigner) { s.now = now }
}

// NewSessionSigner creates a signer for the given HMAC secret.
func NewSessionSigner(key []byte, opts ...Option) (*SessionSigner, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	s := &SessionSigner{key: bytes.Clone(key), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *SessionSigner) parser() *jwt.Parser {
	return jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
}

func (s *SessionSigner) keyFunc(*jwt.Token) (any, error) { return s.key, nil }

// Sign wraps payload and expiresAt into a signed compact token.
func Sign[T any](s *SessionSigner, payload T, expiresAt time.Time) (string, error) {
	claims := &SessionClaims[T]{
		Exp:  jwt.NewNumericDate(expiresAt),
		Info: payload,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}
	return token, nil
}

// checkSignature verifies the HMAC over the raw header and claims
// segments before anything in them is decoded, so any edit to a
// well-formed token is reported as ErrInvalidSig.
func (s *SessionSigner) checkSignature(token string) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrMalformed
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return ErrMalformed
	}
	// Non-zero trailing bits decode to the same MAC.
	if base64.RawURLEncoding.EncodeToString(sig) != parts[2] {
		return ErrInvalidSig
	}
	signingString := token[:len(parts[0])+1+len(parts[1])]
	if err := jwt.SigningMethodHS256.Verify(signingString, sig, s.key); err != nil {
		return ErrInvalidSig
	}
	return nil
}

// Verify checks the signature and expiration of token and returns the
// payload it carries. Errors are one of ErrMalformed, ErrInvalidSig or
// ErrExpired.
func Verify[T any](s *SessionSigner, token string) (T, error) {
	var zero T

	if err := s.checkSignature(token); err != nil {
		return zero, err
	}

	claims := &SessionClaims[T]{}
	parsed, err := s.parser().ParseWithClaims(token, claims, s.keyFunc)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return zero, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return zero, ErrExpired
		default:
			return zero, ErrMalformed
		}
	}
	if !parsed.Valid {
		return zero, ErrMalformed
	}

	return claims.Info, nil
}
