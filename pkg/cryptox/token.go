package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// KeySize is the length of generated signing secrets in bytes.
const KeySize = 32

// GenerateKey returns size bytes from the system CSPRNG.
func GenerateKey(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cryptox: key size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("cryptox: read random: %w", err)
	}
	return buf, nil
}

// EncodeKey renders a key as base64url text (URL-safe, no padding) so it
// can live in a file or environment variable.
func EncodeKey(key []byte) string {
	return base64.RawURLEncoding.EncodeToString(key)
}

// DecodeKey parses text written by EncodeKey. Surrounding whitespace is
// ignored.
func DecodeKey(s string) ([]byte, error) {
	key, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("cryptox: decode key: %w", err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("cryptox: decode key: empty")
	}
	return key, nil
}

// FingerprintToken returns a short, stable SHA-256 fingerprint of a bearer
// value. Logs carry the fingerprint so a session can be followed across
// requests without the token itself ever being written out.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
