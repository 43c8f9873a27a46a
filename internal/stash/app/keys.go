package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/stash/pkg/cryptox"
)

var ErrWeakSigningKey = fmt.Errorf("signing key must be at least %d bytes", cryptox.KeySize)

// LoadSigningKey reads the base64url session signing secret at path. When the
// file does not exist a new random key is written there with 0600 perms.
func LoadSigningKey(path string, logger *slog.Logger) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return generateSigningKey(path, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Mode().Perm()&0o077 != 0 {
		logger.Warn("signing key file is readable by other users",
			"path", path,
			"mode", info.Mode().Perm().String(),
		)
	}

	key, err := cryptox.DecodeKey(string(raw))
	if err != nil {
		return nil, fmt.Errorf("signing key %s: %w", path, err)
	}
	if len(key) < cryptox.KeySize {
		return nil, ErrWeakSigningKey
	}

	logger.Info("signing key loaded", "path", path)
	return key, nil
}

func generateSigningKey(path string, logger *slog.Logger) ([]byte, error) {
	key, err := cryptox.GenerateKey(cryptox.KeySize)
	if err != nil {
		return nil, err
	}

	// The key is written to a temp file in the same directory and linked into
	// place, so path only ever names a complete key.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".signing-key-*")
	if err != nil {
		return nil, fmt.Errorf("create signing key: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("create signing key: %w", err)
	}
	if _, err := tmp.WriteString(cryptox.EncodeKey(key) + "\n"); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("write signing key: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("write signing key: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("write signing key: %w", err)
	}

	// Link fails if another process published a key first; use theirs.
	if err := os.Link(tmp.Name(), path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return LoadSigningKey(path, logger)
		}
		return nil, fmt.Errorf("publish signing key: %w", err)
	}

	logger.Warn("no signing key found, generated a new one; existing sessions are invalid", "path", path)
	return key, nil
}
