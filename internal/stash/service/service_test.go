package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/stash/internal/stash/store/drivers/sqlite"
	"github.com/aussiebroadwan/stash/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "stash.db") + "?_pragma=busy_timeout(5000)"

	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestHasher(t *testing.T) *cryptox.Hasher {
	t.Helper()
	salt, err := cryptox.ParseSalt("service-test-salt")
	require.NoError(t, err)
	return cryptox.NewHasher(salt)
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
