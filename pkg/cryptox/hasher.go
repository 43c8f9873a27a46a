package cryptox

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/argon2"
)

// Argon2 cost parameters. These match the defaults the account table was
// populated with, so changing any of them invalidates every stored credential.
const (
	iterations  = 3        // Passes over memory
	memory      = 4 * 1024 // Memory usage in KiB (4 MiB)
	parallelism = 1        // Lanes
	keyLength   = 32       // Length of the generated digest

	// MinSaltLength is the shortest salt accepted by ParseSalt.
	MinSaltLength = 8
)

var (
	ErrSaltTooShort      = fmt.Errorf("cryptox: salt must be at least %d bytes", MinSaltLength)
	ErrInvalidCredential = errors.New("cryptox: credential must be 32 bytes")
)

// Salt is the process-wide salt mixed into every digest.
type Salt []byte

// ParseSalt validates a configured salt string.
func ParseSalt(s string) (Salt, error) {
	if len(s) < MinSaltLength {
		return nil, ErrSaltTooShort
	}
	return Salt(s), nil
}

// String keeps the salt out of logs and fmt output.
func (Salt) String() string { return "[REDACTED]" }

// LogValue implements slog.LogValuer.
func (Salt) LogValue() slog.Value { return slog.StringValue("[REDACTED]") }

// Credential is a one-way digest of a secret. Two credentials are compared,
// never decrypted.
type Credential [keyLength]byte

// CredentialFromBytes converts a stored digest back into a Credential.
func CredentialFromBytes(b []byte) (Credential, error) {
	var c Credential
	if len(b) != keyLength {
		return c, ErrInvalidCredential
	}
	copy(c[:], b)
	return c, nil
}

// Bytes returns a copy of the digest suitable for persistence.
func (c Credential) Bytes() []byte {
	b := make([]byte, keyLength)
	copy(b, c[:])
	return b
}

// Equal compares two credentials in constant time.
func (c Credential) Equal(other Credential) bool {
	return subtle.ConstantTimeCompare(c[:], other[:]) == 1
}

// IsZero reports whether the credential was never set.
func (c Credential) IsZero() bool {
	return c == Credential{}
}

func (Credential) String() string { return "[REDACTED]" }

// LogValue implements slog.LogValuer.
func (Credential) LogValue() slog.Value { return slog.StringValue("[REDACTED]") }

// Hasher derives credentials from secrets with Argon2 and a fixed salt. It
// holds no mutable state and is safe for concurrent use.
type Hasher struct {
	salt Salt
}

// NewHasher returns a Hasher bound to salt. The salt is copied.
func NewHasher(salt Salt) *Hasher {
	s := make(Salt, len(salt))
	copy(s, salt)
	return &Hasher{salt: s}
}

// Hash derives the credential for secret. Identical secrets always produce
// identical credentials under the same salt.
func (h *Hasher) Hash(secret []byte) Credential {
	var c Credential
	copy(c[:], argon2.IDKey(secret, h.salt, iterations, memory, parallelism, keyLength))
	return c
}

// HashString is Hash for string secrets.
func (h *Hasher) HashString(secret string) Credential {
	return h.Hash([]byte(secret))
}

// Verify re-hashes secret and compares it against want in constant time.
func (h *Hasher) Verify(secret []byte, want Credential) bool {
	return h.Hash(secret).Equal(want)
}
