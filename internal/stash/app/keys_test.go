package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aussiebroadwan/stash/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadSigningKey_GeneratesWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signing.key")

	key, err := LoadSigningKey(path, discardLogger())
	require.NoError(t, err)
	require.Len(t, key, cryptox.KeySize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	again, err := LoadSigningKey(path, discardLogger())
	require.NoError(t, err)
	require.Equal(t, key, again, "an existing key is reused")
}

func TestLoadSigningKey_ReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signing.key")
	want, err := cryptox.GenerateKey(48)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(cryptox.EncodeKey(want)+"\n"), 0o600))

	got, err := LoadSigningKey(path, discardLogger())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadSigningKey_Rejects(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.key")
	require.NoError(t, os.WriteFile(short, []byte(cryptox.EncodeKey([]byte("too-short"))), 0o600))
	_, err := LoadSigningKey(short, discardLogger())
	require.ErrorIs(t, err, ErrWeakSigningKey)

	garbage := filepath.Join(dir, "garbage.key")
	require.NoError(t, os.WriteFile(garbage, []byte("not base64 !!"), 0o600))
	_, err = LoadSigningKey(garbage, discardLogger())
	require.Error(t, err)

	_, err = LoadSigningKey(filepath.Join(dir, "missing-dir", "signing.key"), discardLogger())
	require.Error(t, err)
}

func TestLoadSigningKey_ConcurrentGeneration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signing.key")

	const workers = 8
	keys := make([][]byte, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			keys[i], errs[i] = LoadSigningKey(path, discardLogger())
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i], "worker %d", i)
		require.Equal(t, keys[0], keys[i], "worker %d", i)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files are cleaned up")
	require.Equal(t, "signing.key", entries[0].Name())
}
