package slogx

import (
	"log/slog"
	"strings"
)

// Redacted replaces the value of any masked attribute.
const Redacted = "[REDACTED]"

var sensitiveKeys = []string{
	"password",
	"passphrase",
	"token",
	"secret",
	"salt",
	"credential",
	"cookie",
}

// RedactSecrets is a slog ReplaceAttr func. Any attribute whose key contains
// one of the sensitive words is masked, whatever its value. Keys ending in
// "_fp" are fingerprints and pass through.
func RedactSecrets(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		return a
	}
	if isSensitive(a.Key) {
		return slog.String(a.Key, Redacted)
	}
	return a
}

func isSensitive(key string) bool {
	k := strings.ToLower(key)
	if strings.HasSuffix(k, "_fp") {
		return false
	}
	for _, s := range sensitiveKeys {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}
