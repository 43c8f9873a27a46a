package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/stash/pkg/jwtx"
	"github.com/google/uuid"
)

// DefaultSessionTTL is used when SessionService.TTL is not set.
const DefaultSessionTTL = 7 * 24 * time.Hour

var ErrUnauthenticated = errors.New("unauthenticated")

// SessionService issues and resolves session tokens that carry an account
// ID. Sessions are stateless; a token is valid until it expires.
type SessionService struct {
	Signer *jwtx.SessionSigner
	TTL    time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// Issue signs a session token for accountID.
func (s *SessionService) Issue(accountID string) (string, time.Time, error) {
	// Token expiry has second precision.
	expiresAt := s.now().Add(s.ttl()).Truncate(time.Second)

	token, err := jwtx.Sign(s.Signer, accountID, expiresAt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue session: %w", err)
	}
	return token, expiresAt, nil
}

// Resolve returns the account ID carried by token. Every failure matches
// ErrUnauthenticated.
func (s *SessionService) Resolve(token string) (string, error) {
	accountID, err := jwtx.Verify[string](s.Signer, token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if _, err := uuid.Parse(accountID); err != nil {
		return "", fmt.Errorf("%w: payload is not an account id", ErrUnauthenticated)
	}
	return accountID, nil
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultSessionTTL
	}
	return s.TTL
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
