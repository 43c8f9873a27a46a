package jwtx_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/stash/pkg/jwtx"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// For any payload and any expiry in the future, Verify(Sign(p)) returns p.
// For any expiry in the past, Verify reports ErrExpired.
func TestSessionTokenRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	s, err := jwtx.NewSessionSigner(testKey, jwtx.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatal(err)
	}

	properties.Property("future expiry round-trips the payload", prop.ForAll(
		func(payload string, secs int64) bool {
			token, err := jwtx.Sign(s, payload, now.Add(time.Duration(secs)*time.Second))
			if err != nil {
				t.Logf("sign: %v", err)
				return false
			}
			got, err := jwtx.Verify[string](s, token)
			if err != nil {
				t.Logf("verify: %v", err)
				return false
			}
			return got == payload
		},
		gen.AnyString(),
		gen.Int64Range(1, 365*24*60*60),
	))

	properties.Property("past expiry is rejected as expired", prop.ForAll(
		func(payload string, secs int64) bool {
			token, err := jwtx.Sign(s, payload, now.Add(-time.Duration(secs)*time.Second))
			if err != nil {
				return false
			}
			_, err = jwtx.Verify[string](s, token)
			return err == jwtx.ErrExpired
		},
		gen.AlphaString(),
		gen.Int64Range(1, 365*24*60*60),
	))

	properties.Property("any single character change is a bad signature", prop.ForAll(
		func(payload string, pos int) bool {
			token, err := jwtx.Sign(s, payload, now.Add(time.Hour))
			if err != nil {
				return false
			}
			i := pos % len(token)
			if token[i] == '.' {
				return true
			}
			repl := byte('A')
			if token[i] == 'A' {
				repl = 'B'
			}
			_, err = jwtx.Verify[string](s, token[:i]+string(repl)+token[i+1:])
			return errors.Is(err, jwtx.ErrInvalidSig)
		},
		gen.AnyString(),
		gen.IntRange(0, 1<<16),
	))

	properties.TestingRun(t)
}
